package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pecbr/acaboi/internal/service/dashboard"
)

// DashboardHandler exposes the landing-page summary.
type DashboardHandler struct {
	svc    *dashboard.Service
	logger *zap.Logger
}

// NewDashboardHandler constructs the HTTP handler adapter.
func NewDashboardHandler(svc *dashboard.Service, logger *zap.Logger) *DashboardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardHandler{svc: svc, logger: logger}
}

// Resumo computes the summary honoring the optional query filters.
func (h *DashboardHandler) Resumo(c *gin.Context) {
	resumo, err := h.svc.Resumo(c.Request.Context(), abateFilterFrom(c))
	if err != nil {
		h.logger.Error("resumo do dashboard", zap.Error(err))
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, resumo)
}

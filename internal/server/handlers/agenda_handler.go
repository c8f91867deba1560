package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pecbr/acaboi/internal/service/agenda"
)

// AgendaHandler exposes the weekly calendar, both the authenticated view and
// the public read-only share.
type AgendaHandler struct {
	svc    *agenda.Service
	logger *zap.Logger
}

// NewAgendaHandler constructs the HTTP handler adapter.
func NewAgendaHandler(svc *agenda.Service, logger *zap.Logger) *AgendaHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AgendaHandler{svc: svc, logger: logger}
}

// Semana returns the calendar for ?semana=&ano=, defaulting to the current
// week. Optional filters: id_frigorifico, id_produtor, id_tecnico.
func (h *AgendaHandler) Semana(c *gin.Context) {
	ano := queryInt(c, "ano", time.Now().Year())
	semana := queryInt(c, "semana", agenda.CurrentWeek())
	if semana < 1 || semana > agenda.WeeksInYear(ano) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "semana fora do intervalo do ano"})
		return
	}

	week, err := h.svc.Semana(c.Request.Context(), ano, semana, agenda.Filter{
		IDFrigorifico: queryUint(c, "id_frigorifico"),
		IDProdutor:    queryUint(c, "id_produtor"),
		IDTecnico:     queryUint(c, "id_tecnico"),
	})
	if err != nil {
		h.logger.Error("agenda da semana", zap.Int("ano", ano), zap.Int("semana", semana), zap.Error(err))
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, week)
}

// Opcoes returns the week/year picker bounds for ?ano=.
func (h *AgendaHandler) Opcoes(c *gin.Context) {
	ano := queryInt(c, "ano", time.Now().Year())
	c.JSON(http.StatusOK, h.svc.Opcoes(ano))
}

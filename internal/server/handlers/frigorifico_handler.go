package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pecbr/acaboi/internal/domain/models"
	"github.com/pecbr/acaboi/internal/repository/postgres"
)

// FrigorificoHandler exposes slaughterhouse CRUD.
type FrigorificoHandler struct {
	repo   postgres.FrigorificoRepository
	logger *zap.Logger
}

// NewFrigorificoHandler constructs the HTTP handler adapter.
func NewFrigorificoHandler(repo postgres.FrigorificoRepository, logger *zap.Logger) *FrigorificoHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FrigorificoHandler{repo: repo, logger: logger}
}

// List returns every slaughterhouse.
func (h *FrigorificoHandler) List(c *gin.Context) {
	frigorificos, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list frigorificos", zap.Error(err))
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, frigorificos)
}

// Get returns one slaughterhouse.
func (h *FrigorificoHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	frigorifico, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, frigorifico)
}

// Create inserts a slaughterhouse.
func (h *FrigorificoHandler) Create(c *gin.Context) {
	var frigorifico models.Frigorifico
	if err := c.ShouldBindJSON(&frigorifico); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dados do frigorífico inválidos"})
		return
	}
	if err := h.repo.Create(c.Request.Context(), &frigorifico); err != nil {
		h.logger.Error("create frigorifico", zap.Error(err))
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, frigorifico)
}

// Update rewrites a slaughterhouse.
func (h *FrigorificoHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var frigorifico models.Frigorifico
	if err := c.ShouldBindJSON(&frigorifico); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dados do frigorífico inválidos"})
		return
	}
	frigorifico.ID = id
	if err := h.repo.Update(c.Request.Context(), &frigorifico); err != nil {
		h.logger.Error("update frigorifico", zap.Uint("id", id), zap.Error(err))
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, frigorifico)
}

// Delete removes a slaughterhouse.
func (h *FrigorificoHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		h.logger.Error("delete frigorifico", zap.Uint("id", id), zap.Error(err))
		respondStorageError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

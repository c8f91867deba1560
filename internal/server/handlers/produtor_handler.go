package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pecbr/acaboi/internal/domain/models"
	"github.com/pecbr/acaboi/internal/repository/postgres"
)

// ProdutorHandler exposes producer CRUD.
type ProdutorHandler struct {
	repo   postgres.ProdutorRepository
	logger *zap.Logger
}

// NewProdutorHandler constructs the HTTP handler adapter.
func NewProdutorHandler(repo postgres.ProdutorRepository, logger *zap.Logger) *ProdutorHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProdutorHandler{repo: repo, logger: logger}
}

// List returns every producer with its properties.
func (h *ProdutorHandler) List(c *gin.Context) {
	produtores, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list produtores", zap.Error(err))
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, produtores)
}

// Get returns one producer.
func (h *ProdutorHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	produtor, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, produtor)
}

// Create inserts a producer.
func (h *ProdutorHandler) Create(c *gin.Context) {
	var produtor models.Produtor
	if err := c.ShouldBindJSON(&produtor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dados do produtor inválidos"})
		return
	}
	if err := h.repo.Create(c.Request.Context(), &produtor); err != nil {
		h.logger.Error("create produtor", zap.Error(err))
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, produtor)
}

// Update rewrites a producer.
func (h *ProdutorHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var produtor models.Produtor
	if err := c.ShouldBindJSON(&produtor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dados do produtor inválidos"})
		return
	}
	produtor.ID = id
	if err := h.repo.Update(c.Request.Context(), &produtor); err != nil {
		h.logger.Error("update produtor", zap.Uint("id", id), zap.Error(err))
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, produtor)
}

// Delete removes a producer.
func (h *ProdutorHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		h.logger.Error("delete produtor", zap.Uint("id", id), zap.Error(err))
		respondStorageError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

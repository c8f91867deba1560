package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pecbr/acaboi/internal/domain/models"
	"github.com/pecbr/acaboi/internal/repository/postgres"
)

// CategoriaHandler exposes animal category CRUD.
type CategoriaHandler struct {
	repo   postgres.CategoriaRepository
	logger *zap.Logger
}

// NewCategoriaHandler constructs the HTTP handler adapter.
func NewCategoriaHandler(repo postgres.CategoriaRepository, logger *zap.Logger) *CategoriaHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CategoriaHandler{repo: repo, logger: logger}
}

// List returns every animal category.
func (h *CategoriaHandler) List(c *gin.Context) {
	categorias, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list categorias", zap.Error(err))
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, categorias)
}

// Get returns one animal category.
func (h *CategoriaHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	categoria, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, categoria)
}

// Create inserts an animal category.
func (h *CategoriaHandler) Create(c *gin.Context) {
	var categoria models.CategoriaAnimal
	if err := c.ShouldBindJSON(&categoria); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dados da categoria inválidos"})
		return
	}
	if err := h.repo.Create(c.Request.Context(), &categoria); err != nil {
		h.logger.Error("create categoria", zap.Error(err))
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, categoria)
}

// Update rewrites an animal category.
func (h *CategoriaHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var categoria models.CategoriaAnimal
	if err := c.ShouldBindJSON(&categoria); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dados da categoria inválidos"})
		return
	}
	categoria.ID = id
	if err := h.repo.Update(c.Request.Context(), &categoria); err != nil {
		h.logger.Error("update categoria", zap.Uint("id", id), zap.Error(err))
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, categoria)
}

// Delete removes an animal category.
func (h *CategoriaHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		h.logger.Error("delete categoria", zap.Uint("id", id), zap.Error(err))
		respondStorageError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

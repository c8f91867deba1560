package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pecbr/acaboi/internal/domain/models"
	"github.com/pecbr/acaboi/internal/repository/postgres"
)

// PropriedadeHandler exposes property CRUD.
type PropriedadeHandler struct {
	repo   postgres.PropriedadeRepository
	logger *zap.Logger
}

// NewPropriedadeHandler constructs the HTTP handler adapter.
func NewPropriedadeHandler(repo postgres.PropriedadeRepository, logger *zap.Logger) *PropriedadeHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PropriedadeHandler{repo: repo, logger: logger}
}

// List returns properties, optionally restricted to one producer via
// ?id_produtor=.
func (h *PropriedadeHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if produtorID := queryUint(c, "id_produtor"); produtorID != 0 {
		propriedades, err := h.repo.ListByProdutor(ctx, produtorID)
		if err != nil {
			h.logger.Error("list propriedades do produtor", zap.Uint("id_produtor", produtorID), zap.Error(err))
			respondStorageError(c, err)
			return
		}
		c.JSON(http.StatusOK, propriedades)
		return
	}

	propriedades, err := h.repo.List(ctx)
	if err != nil {
		h.logger.Error("list propriedades", zap.Error(err))
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, propriedades)
}

// Get returns one property.
func (h *PropriedadeHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	propriedade, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, propriedade)
}

// Create inserts a property after checking the classification value.
func (h *PropriedadeHandler) Create(c *gin.Context) {
	var propriedade models.Propriedade
	if err := c.ShouldBindJSON(&propriedade); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dados da propriedade inválidos"})
		return
	}
	if propriedade.Classificacao != "" && !models.ClassificacaoValida(propriedade.Classificacao) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "classificação deve ser A, B ou C"})
		return
	}
	if err := h.repo.Create(c.Request.Context(), &propriedade); err != nil {
		h.logger.Error("create propriedade", zap.Error(err))
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, propriedade)
}

// Update rewrites a property.
func (h *PropriedadeHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var propriedade models.Propriedade
	if err := c.ShouldBindJSON(&propriedade); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dados da propriedade inválidos"})
		return
	}
	if propriedade.Classificacao != "" && !models.ClassificacaoValida(propriedade.Classificacao) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "classificação deve ser A, B ou C"})
		return
	}
	propriedade.ID = id
	if err := h.repo.Update(c.Request.Context(), &propriedade); err != nil {
		h.logger.Error("update propriedade", zap.Uint("id", id), zap.Error(err))
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, propriedade)
}

// Delete removes a property.
func (h *PropriedadeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		h.logger.Error("delete propriedade", zap.Uint("id", id), zap.Error(err))
		respondStorageError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pecbr/acaboi/internal/domain/models"
	"github.com/pecbr/acaboi/internal/repository/postgres"
)

// AbateHandler exposes slaughter event CRUD with query filters.
type AbateHandler struct {
	repo   postgres.AbateRepository
	logger *zap.Logger
}

// NewAbateHandler constructs the HTTP handler adapter.
func NewAbateHandler(repo postgres.AbateRepository, logger *zap.Logger) *AbateHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AbateHandler{repo: repo, logger: logger}
}

func abateFilterFrom(c *gin.Context) postgres.AbateFilter {
	return postgres.AbateFilter{
		DataInicio:    c.Query("data_inicio"),
		DataFim:       c.Query("data_fim"),
		IDProdutor:    queryUint(c, "id_produtor"),
		IDFrigorifico: queryUint(c, "id_frigorifico"),
		IDCategoria:   queryUint(c, "id_categoria_animal"),
	}
}

// List returns slaughter events honoring the optional query filters. A lone
// producer or slaughterhouse filter takes the dedicated listing, which keeps
// the newest-first ordering of those detail pages.
func (h *AbateHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	filter := abateFilterFrom(c)

	var abates []models.Abate
	var err error
	switch {
	case filter.IDProdutor != 0 && filter == (postgres.AbateFilter{IDProdutor: filter.IDProdutor}):
		abates, err = h.repo.ListByProdutor(ctx, filter.IDProdutor)
	case filter.IDFrigorifico != 0 && filter == (postgres.AbateFilter{IDFrigorifico: filter.IDFrigorifico}):
		abates, err = h.repo.ListByFrigorifico(ctx, filter.IDFrigorifico)
	case filter == (postgres.AbateFilter{}):
		abates, err = h.repo.List(ctx)
	default:
		abates, err = h.repo.ListFiltered(ctx, filter)
	}
	if err != nil {
		h.logger.Error("list abates", zap.Error(err))
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, abates)
}

// Get returns one slaughter event with the joined lookups.
func (h *AbateHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	abate, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, abate)
}

// validateAbate guards form input: positive quantity and values, all lookups
// present. The form always carries a farm; only imports may omit it.
func validateAbate(a *models.Abate) string {
	switch {
	case a.DataAbate == "":
		return "data de abate é obrigatória"
	case a.Quantidade <= 0:
		return "quantidade deve ser maior que zero"
	case a.ValorArrobaNegociada <= 0:
		return "valor da arroba deve ser maior que zero"
	case a.ValorTotalAcerto <= 0:
		return "valor total deve ser maior que zero"
	case a.IDProdutor == 0 || a.IDPropriedade == nil || *a.IDPropriedade == 0 || a.IDFrigorifico == 0 || a.IDCategoriaAnimal == 0:
		return "produtor, propriedade, frigorífico e categoria são obrigatórios"
	}
	return ""
}

// Create inserts a slaughter event.
func (h *AbateHandler) Create(c *gin.Context) {
	var abate models.Abate
	if err := c.ShouldBindJSON(&abate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dados do abate inválidos"})
		return
	}
	if msg := validateAbate(&abate); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	if err := h.repo.Create(c.Request.Context(), &abate); err != nil {
		h.logger.Error("create abate", zap.Error(err))
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, abate)
}

// Update rewrites a slaughter event.
func (h *AbateHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var abate models.Abate
	if err := c.ShouldBindJSON(&abate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dados do abate inválidos"})
		return
	}
	if msg := validateAbate(&abate); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	abate.ID = id
	if err := h.repo.Update(c.Request.Context(), &abate); err != nil {
		h.logger.Error("update abate", zap.Uint("id", id), zap.Error(err))
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, abate)
}

// Delete removes a slaughter event.
func (h *AbateHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		h.logger.Error("delete abate", zap.Uint("id", id), zap.Error(err))
		respondStorageError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

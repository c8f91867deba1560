package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pecbr/acaboi/internal/domain/models"
	"github.com/pecbr/acaboi/internal/repository/postgres"
)

// EscalaHandler exposes schedule entry CRUD and the form lookup lists.
type EscalaHandler struct {
	repo   postgres.EscalaRepository
	logger *zap.Logger
}

// NewEscalaHandler constructs the HTTP handler adapter.
func NewEscalaHandler(repo postgres.EscalaRepository, logger *zap.Logger) *EscalaHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EscalaHandler{repo: repo, logger: logger}
}

// List returns schedule entries honoring the optional query filters.
func (h *EscalaHandler) List(c *gin.Context) {
	escalas, err := h.repo.ListFiltered(c.Request.Context(), postgres.EscalaFilter{
		DataInicio:    c.Query("data_inicio"),
		DataFim:       c.Query("data_fim"),
		IDFrigorifico: queryUint(c, "id_frigorifico"),
		IDProdutor:    queryUint(c, "id_produtor"),
		IDTecnico:     queryUint(c, "id_tecnico"),
	})
	if err != nil {
		h.logger.Error("list escala", zap.Error(err))
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, escalas)
}

// Get returns one schedule entry with the joined lookups.
func (h *EscalaHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	escala, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, escala)
}

func validateEscala(e *models.EscalaAbate) string {
	switch {
	case e.TipoServico == "":
		return "tipo de serviço é obrigatório"
	case e.DataAbate == "":
		return "data de abate é obrigatória"
	case e.Quantidade <= 0:
		return "quantidade deve ser maior que zero"
	case e.IDFrigorifico == 0 || e.IDProdutor == 0 || e.IDPropriedade == 0:
		return "frigorífico, produtor e propriedade são obrigatórios"
	}
	return ""
}

// Create inserts a schedule entry.
func (h *EscalaHandler) Create(c *gin.Context) {
	var escala models.EscalaAbate
	if err := c.ShouldBindJSON(&escala); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dados da escala inválidos"})
		return
	}
	if msg := validateEscala(&escala); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	if err := h.repo.Create(c.Request.Context(), &escala); err != nil {
		h.logger.Error("create escala", zap.Error(err))
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, escala)
}

// Update rewrites a schedule entry.
func (h *EscalaHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var escala models.EscalaAbate
	if err := c.ShouldBindJSON(&escala); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dados da escala inválidos"})
		return
	}
	if msg := validateEscala(&escala); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	escala.ID = id
	if err := h.repo.Update(c.Request.Context(), &escala); err != nil {
		h.logger.Error("update escala", zap.Uint("id", id), zap.Error(err))
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, escala)
}

// Delete removes a schedule entry.
func (h *EscalaHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		h.logger.Error("delete escala", zap.Uint("id", id), zap.Error(err))
		respondStorageError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Opcoes returns the lookup lists the schedule form offers: protocols,
// technicians and the static service, negotiation and payment options.
func (h *EscalaHandler) Opcoes(c *gin.Context) {
	ctx := c.Request.Context()

	protocolos, err := h.repo.ListProtocolos(ctx)
	if err != nil {
		h.logger.Error("list protocolos", zap.Error(err))
		respondStorageError(c, err)
		return
	}
	tecnicos, err := h.repo.ListTecnicos(ctx)
	if err != nil {
		h.logger.Error("list tecnicos", zap.Error(err))
		respondStorageError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"protocolos":       protocolos,
		"tecnicos":         tecnicos,
		"tipos_servico":    models.TiposServico,
		"tipos_negociacao": models.TiposNegociacao,
		"formas_pagamento": models.FormasPagamento,
	})
}

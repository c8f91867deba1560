package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pecbr/acaboi/internal/service/auth"
)

// UserHandler exposes the admin user management.
type UserHandler struct {
	svc    *auth.Service
	logger *zap.Logger
}

// NewUserHandler constructs the HTTP handler adapter.
func NewUserHandler(svc *auth.Service, logger *zap.Logger) *UserHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserHandler{svc: svc, logger: logger}
}

func pathUUID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return uuid.Nil, false
	}
	return id, true
}

// List returns every profile.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.svc.ListUsers(c.Request.Context())
	if err != nil {
		h.logger.Error("list usuarios", zap.Error(err))
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Create provisions a new auth user plus profile.
func (h *UserHandler) Create(c *gin.Context) {
	var input auth.UserInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "informe email, senha e tipo do usuário"})
		return
	}

	profile, err := h.svc.CreateUser(c.Request.Context(), input)
	if err != nil {
		h.logger.Error("create usuario", zap.String("email", input.Email), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// Update changes name, role and optionally the password.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c)
	if !ok {
		return
	}
	var input auth.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dados do usuário inválidos"})
		return
	}

	profile, err := h.svc.UpdateUser(c.Request.Context(), id, input)
	if err != nil {
		h.logger.Error("update usuario", zap.String("id", id.String()), zap.Error(err))
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

type activeRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// SetActive toggles a profile on or off.
func (h *UserHandler) SetActive(c *gin.Context) {
	id, ok := pathUUID(c)
	if !ok {
		return
	}
	var req activeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "informe o campo active"})
		return
	}

	profile, err := h.svc.SetUserActive(c.Request.Context(), id, *req.Active)
	if err != nil {
		h.logger.Error("set active", zap.String("id", id.String()), zap.Error(err))
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Delete removes profile and auth user.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteUser(c.Request.Context(), id); err != nil {
		h.logger.Error("delete usuario", zap.String("id", id.String()), zap.Error(err))
		respondStorageError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pecbr/acaboi/internal/server/middleware"
	"github.com/pecbr/acaboi/internal/service/auth"
)

// AuthHandler exposes login, logout, recovery and the current-user lookup.
type AuthHandler struct {
	svc    *auth.Service
	logger *zap.Logger
}

// NewAuthHandler constructs the HTTP handler adapter.
func NewAuthHandler(svc *auth.Service, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{svc: svc, logger: logger}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates by email and password.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "informe email e senha"})
		return
	}

	result, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Warn("login recusado", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "credenciais inválidas"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Logout revokes the current session token.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if err := h.svc.Logout(c.Request.Context(), strings.TrimSpace(token)); err != nil {
		h.logger.Warn("logout falhou", zap.Error(err))
	}
	c.Status(http.StatusNoContent)
}

type recoverRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Recover sends a password recovery mail. The response never reveals whether
// the address exists.
func (h *AuthHandler) Recover(c *gin.Context) {
	var req recoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "informe o email"})
		return
	}
	if err := h.svc.RecoverPassword(c.Request.Context(), req.Email); err != nil {
		h.logger.Warn("recuperação de senha falhou", zap.String("email", req.Email), zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"message": "se o email existir, as instruções foram enviadas"})
}

// Me returns the authenticated profile.
func (h *AuthHandler) Me(c *gin.Context) {
	profile, ok := middleware.ProfileFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "não autenticado"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

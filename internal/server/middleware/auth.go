// Package middleware holds the authentication and authorization gin
// middlewares.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pecbr/acaboi/internal/domain/models"
)

// profileKey is the gin context key the authenticated profile travels under.
const profileKey = "profile"

// TokenVerifier resolves a bearer token to an active profile.
type TokenVerifier interface {
	Verify(ctx context.Context, accessToken string) (*models.Profile, error)
}

// RequireAuth extracts the bearer token, resolves it to a profile and stores
// the profile in the request context. Requests without a valid token get 401.
func RequireAuth(verifier TokenVerifier, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "não autenticado"})
			return
		}

		profile, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			logger.Warn("token rejeitado", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "não autenticado"})
			return
		}

		c.Set(profileKey, profile)
		c.Next()
	}
}

// RequirePermission guards a route group behind a page-level permission.
// Must run after RequireAuth.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, ok := ProfileFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "não autenticado"})
			return
		}
		if !models.HasPermission(profile.Type, permission) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "acesso restrito"})
			return
		}
		c.Next()
	}
}

// ProfileFrom reads the authenticated profile placed by RequireAuth.
func ProfileFrom(c *gin.Context) (*models.Profile, bool) {
	v, ok := c.Get(profileKey)
	if !ok {
		return nil, false
	}
	profile, ok := v.(*models.Profile)
	return profile, ok
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

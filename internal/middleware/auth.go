package middleware

import (
	"net/http"
	"strings"

	"hospital-coordination-backend/internal/service"
	"hospital-coordination-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware
const (
	ContextPrincipalID = "principalID"
	ContextRole        = "role"
)

// AuthMiddleware validates JWT access token from Authorization header
func AuthMiddleware(tokens *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Extract token from Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.AbortWithError(c, http.StatusUnauthorized, "Authorization header required")
			return
		}

		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			utils.AbortWithError(c, http.StatusUnauthorized, "Invalid authorization format. Use: Bearer <token>")
			return
		}

		claims, err := tokens.ValidateAccessToken(strings.TrimSpace(token))
		if err != nil {
			utils.AbortWithError(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		principalID, err := claims.PrincipalID()
		if err != nil {
			utils.AbortWithError(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		// Inject claims into context
		c.Set(ContextPrincipalID, principalID)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// RequireRole lets through only sessions whose role is in roles
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			utils.AbortWithError(c, http.StatusUnauthorized, "Authentication required")
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		utils.AbortWithError(c, http.StatusForbidden, strings.Join(roles, " or ")+" access required")
	}
}

// CurrentActor returns the session principal set by AuthMiddleware
func CurrentActor(c *gin.Context) (service.Actor, bool) {
	id, ok := c.Get(ContextPrincipalID)
	if !ok {
		return service.Actor{}, false
	}
	role, ok := c.Get(ContextRole)
	if !ok {
		return service.Actor{}, false
	}
	return service.Actor{ID: id.(uint), Role: role.(string)}, true
}

package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/jwt"
)

const (
	userIDContextKey    = "user_id"
	userRolesContextKey = "user_roles"
)

// TokenVerifier is the subset of jwt.Service the auth middleware needs.
type TokenVerifier interface {
	ValidateAndParse(token string) (*jwt.Token, error)
}

// Auth returns a gin middleware that verifies a Bearer token on every
// request and stores the caller's identity and roles in the context.
// Token issuance lives elsewhere; this middleware only verifies.
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(c, "no token provided")
			return
		}

		token, err := verifier.ValidateAndParse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		c.Set(userIDContextKey, token.UserID)
		c.Set(userRolesContextKey, token.Roles)
		c.Next()
	}
}

// GetUserID extracts the authenticated user's ID from the gin.Context.
// Returns an empty string when the request is unauthenticated.
func GetUserID(c *gin.Context) string {
	if v, ok := c.Get(userIDContextKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// GetUserRoles extracts the authenticated user's roles from the gin.Context.
func GetUserRoles(c *gin.Context) []string {
	if v, ok := c.Get(userRolesContextKey); ok {
		if roles, ok := v.([]string); ok {
			return roles
		}
	}
	return nil
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status": "error",
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
		"meta": gin.H{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		},
	})
}

package middleware

import (
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// RequireRole returns a gin middleware that rejects requests whose
// authenticated caller holds none of the allowed roles. It must run after
// Auth; a request with no identity in context is treated as unauthorized
// rather than forbidden.
func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserID(c) == "" {
			abortUnauthorized(c, "authentication required")
			return
		}

		roles := GetUserRoles(c)
		for _, role := range roles {
			if slices.Contains(allowedRoles, role) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"status": "error",
			"error": gin.H{
				"code":    "FORBIDDEN",
				"message": "access denied, required roles: " + strings.Join(allowedRoles, ", "),
			},
			"meta": gin.H{
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			},
		})
	}
}

// Authz bundles the authentication and authorization middleware handed to
// feature modules at route-registration time. When auth is disabled in
// config, Noop() supplies passthrough handlers so route tables stay
// identical across modes.
type Authz struct {
	Authenticate gin.HandlerFunc
	RequireRole  func(roles ...string) gin.HandlerFunc
}

// NewAuthz builds the production Authz from a token verifier.
func NewAuthz(verifier TokenVerifier) Authz {
	return Authz{
		Authenticate: Auth(verifier),
		RequireRole:  RequireRole,
	}
}

// Noop returns an Authz whose handlers admit every request.
func Noop() Authz {
	pass := func(c *gin.Context) { c.Next() }
	return Authz{
		Authenticate: pass,
		RequireRole: func(...string) gin.HandlerFunc {
			return pass
		},
	}
}

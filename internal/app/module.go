package app

import (
	"github.com/gin-gonic/gin"

	"github.com/codezest/catalog/internal/middleware"
)

// Module defines the contract for a self-registering business module.
// Each module registers its own routes under the API group, using the
// provided authz middleware for its protected endpoints.
type Module interface {
	RegisterRoutes(api *gin.RouterGroup, authz middleware.Authz)
}

package language

import (
	"github.com/gin-gonic/gin"

	"github.com/codezest/catalog/internal/domain"
	"github.com/codezest/catalog/internal/middleware"
)

// Module implements the app.Module interface for the language resource.
type Module struct {
	handler *Handler
}

// NewModule creates a language Module. Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("language.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers language routes. Reads are public; writes require
// authentication, and delete is restricted to admins.
func (m *Module) RegisterRoutes(api *gin.RouterGroup, authz middleware.Authz) {
	languages := api.Group("/languages")

	languages.GET("", m.handler.List)
	languages.GET("/slug/:slug", m.handler.GetBySlug)
	languages.GET("/:id", m.handler.Get)

	writes := languages.Group("", authz.Authenticate)
	writes.POST("", authz.RequireRole(domain.RoleAdmin, domain.RoleUser), m.handler.Create)
	writes.PUT("/:id", authz.RequireRole(domain.RoleAdmin, domain.RoleUser), m.handler.Update)
	writes.POST("/:id/activate", authz.RequireRole(domain.RoleAdmin, domain.RoleUser), m.handler.Activate)
	writes.POST("/:id/deactivate", authz.RequireRole(domain.RoleAdmin, domain.RoleUser), m.handler.Deactivate)
	writes.DELETE("/:id", authz.RequireRole(domain.RoleAdmin), m.handler.Delete)
}

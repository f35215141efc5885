package material

import (
	"github.com/gin-gonic/gin"

	"github.com/codezest/catalog/internal/domain"
	"github.com/codezest/catalog/internal/middleware"
)

// Module implements the app.Module interface for the material resource.
type Module struct {
	handler *Handler
}

// NewModule creates a material Module. Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("material.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers material routes. Reads are public; writes require
// authentication, and delete is restricted to admins.
func (m *Module) RegisterRoutes(api *gin.RouterGroup, authz middleware.Authz) {
	materials := api.Group("/materials")

	materials.GET("", m.handler.List)
	materials.GET("/module/:moduleId", m.handler.ListByModule)
	materials.GET("/:id", m.handler.Get)

	writes := materials.Group("", authz.Authenticate)
	writes.POST("", authz.RequireRole(domain.RoleAdmin, domain.RoleUser), m.handler.Create)
	writes.PUT("/:id", authz.RequireRole(domain.RoleAdmin, domain.RoleUser), m.handler.Update)
	writes.POST("/module/:moduleId/reorder", authz.RequireRole(domain.RoleAdmin, domain.RoleUser), m.handler.Reorder)
	writes.DELETE("/:id", authz.RequireRole(domain.RoleAdmin), m.handler.Delete)
}

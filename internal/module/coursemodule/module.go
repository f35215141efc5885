package coursemodule

import (
	"github.com/gin-gonic/gin"

	"github.com/codezest/catalog/internal/domain"
	"github.com/codezest/catalog/internal/middleware"
)

// Module implements the app.Module interface for the course-module resource.
type Module struct {
	handler *Handler
}

// NewModule creates a course-module Module. Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("coursemodule.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers module routes. Reads are public; writes require
// authentication, and delete is restricted to admins.
func (m *Module) RegisterRoutes(api *gin.RouterGroup, authz middleware.Authz) {
	modules := api.Group("/modules")

	modules.GET("", m.handler.List)
	modules.GET("/language/:languageId", m.handler.ListByLanguage)
	modules.GET("/language/:languageId/slug/:slug", m.handler.GetByLanguageAndSlug)
	modules.GET("/:id", m.handler.Get)

	writes := modules.Group("", authz.Authenticate)
	writes.POST("", authz.RequireRole(domain.RoleAdmin, domain.RoleUser), m.handler.Create)
	writes.PUT("/:id", authz.RequireRole(domain.RoleAdmin, domain.RoleUser), m.handler.Update)
	writes.POST("/language/:languageId/reorder", authz.RequireRole(domain.RoleAdmin, domain.RoleUser), m.handler.Reorder)
	writes.DELETE("/:id", authz.RequireRole(domain.RoleAdmin), m.handler.Delete)
}

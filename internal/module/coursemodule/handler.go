package coursemodule

import (
	"github.com/gin-gonic/gin"

	"github.com/codezest/catalog/internal/domain"
	"github.com/codezest/catalog/internal/pkg"
)

// Handler handles REST API requests for the module resource.
type Handler struct {
	svc Service
}

// NewHandler creates a Handler with the given service.
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /api/v1/modules.
func (h *Handler) List(c *gin.Context) {
	var q ListModulesQuery
	if !pkg.BindQuery(c, &q) {
		return
	}
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.List(c.Request.Context(), q.query(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Paginated(c, pkg.MapPage(result, func(m domain.Module) ModuleResponse {
		return toResponse(&m)
	}))
}

// Get handles GET /api/v1/modules/:id.
func (h *Handler) Get(c *gin.Context) {
	module, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, toResponse(module))
}

// ListByLanguage handles GET /api/v1/modules/language/:languageId.
func (h *Handler) ListByLanguage(c *gin.Context) {
	modules, err := h.svc.ListByLanguage(c.Request.Context(), c.Param("languageId"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, toResponseList(modules))
}

// GetByLanguageAndSlug handles GET /api/v1/modules/language/:languageId/slug/:slug.
func (h *Handler) GetByLanguageAndSlug(c *gin.Context) {
	module, err := h.svc.GetByLanguageAndSlug(c.Request.Context(),
		c.Param("languageId"), c.Param("slug"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, toResponse(module))
}

// Create handles POST /api/v1/modules.
func (h *Handler) Create(c *gin.Context) {
	var req CreateModuleRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	module, err := h.svc.Create(c.Request.Context(),
		req.LanguageID, req.Title, req.Slug, req.Order, req.Description, req.Syllabus)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, toResponse(module))
}

// Update handles PUT /api/v1/modules/:id.
func (h *Handler) Update(c *gin.Context) {
	var req UpdateModuleRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	module, err := h.svc.Update(c.Request.Context(), c.Param("id"), req.patch())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, toResponse(module))
}

// Delete handles DELETE /api/v1/modules/:id.
func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}

// Reorder handles POST /api/v1/modules/language/:languageId/reorder.
func (h *Handler) Reorder(c *gin.Context) {
	var req ReorderRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	if err := h.svc.Reorder(c.Request.Context(), c.Param("languageId"), req.Updates); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, gin.H{"reordered": len(req.Updates)})
}

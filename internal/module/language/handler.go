package language

import (
	"github.com/gin-gonic/gin"

	"github.com/codezest/catalog/internal/domain"
	"github.com/codezest/catalog/internal/pkg"
)

// Handler handles REST API requests for the language resource.
type Handler struct {
	svc Service
}

// NewHandler creates a Handler with the given service.
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /api/v1/languages.
func (h *Handler) List(c *gin.Context) {
	var q ListLanguagesQuery
	if !pkg.BindQuery(c, &q) {
		return
	}
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.List(c.Request.Context(), q.query(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Paginated(c, pkg.MapPage(result, func(l domain.Language) LanguageResponse {
		return toResponse(&l)
	}))
}

// Get handles GET /api/v1/languages/:id.
func (h *Handler) Get(c *gin.Context) {
	language, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, toResponse(language))
}

// GetBySlug handles GET /api/v1/languages/slug/:slug.
func (h *Handler) GetBySlug(c *gin.Context) {
	language, err := h.svc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, toResponse(language))
}

// Create handles POST /api/v1/languages.
func (h *Handler) Create(c *gin.Context) {
	var req CreateLanguageRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	language, err := h.svc.Create(c.Request.Context(),
		req.Name, req.Slug, domain.Difficulty(req.Difficulty), req.Description, req.Icon)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, toResponse(language))
}

// Update handles PUT /api/v1/languages/:id.
func (h *Handler) Update(c *gin.Context) {
	var req UpdateLanguageRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	language, err := h.svc.Update(c.Request.Context(), c.Param("id"), req.patch())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, toResponse(language))
}

// Delete handles DELETE /api/v1/languages/:id.
func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}

// Activate handles POST /api/v1/languages/:id/activate.
func (h *Handler) Activate(c *gin.Context) {
	language, err := h.svc.Activate(c.Request.Context(), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, toResponse(language))
}

// Deactivate handles POST /api/v1/languages/:id/deactivate.
func (h *Handler) Deactivate(c *gin.Context) {
	language, err := h.svc.Deactivate(c.Request.Context(), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, toResponse(language))
}

package material

import (
	"github.com/gin-gonic/gin"

	"github.com/codezest/catalog/internal/domain"
	"github.com/codezest/catalog/internal/pkg"
)

// Handler handles REST API requests for the material resource.
type Handler struct {
	svc Service
}

// NewHandler creates a Handler with the given service.
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /api/v1/materials.
func (h *Handler) List(c *gin.Context) {
	var q ListMaterialsQuery
	if !pkg.BindQuery(c, &q) {
		return
	}
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.List(c.Request.Context(), q.query(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Paginated(c, pkg.MapPage(result, func(m domain.Material) MaterialResponse {
		return toResponse(&m)
	}))
}

// Get handles GET /api/v1/materials/:id.
func (h *Handler) Get(c *gin.Context) {
	material, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, toResponse(material))
}

// ListByModule handles GET /api/v1/materials/module/:moduleId.
func (h *Handler) ListByModule(c *gin.Context) {
	materials, err := h.svc.ListByModule(c.Request.Context(), c.Param("moduleId"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, toResponseList(materials))
}

// Create handles POST /api/v1/materials.
func (h *Handler) Create(c *gin.Context) {
	var req CreateMaterialRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	material, err := h.svc.Create(c.Request.Context(),
		req.ModuleID, req.Title, domain.MaterialType(req.Type), req.Content, req.Order, req.Duration)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, toResponse(material))
}

// Update handles PUT /api/v1/materials/:id.
func (h *Handler) Update(c *gin.Context) {
	var req UpdateMaterialRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	material, err := h.svc.Update(c.Request.Context(), c.Param("id"), req.patch())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, toResponse(material))
}

// Delete handles DELETE /api/v1/materials/:id.
func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}

// Reorder handles POST /api/v1/materials/module/:moduleId/reorder.
func (h *Handler) Reorder(c *gin.Context) {
	var req ReorderRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	if err := h.svc.Reorder(c.Request.Context(), c.Param("moduleId"), req.Updates); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, gin.H{"reordered": len(req.Updates)})
}

package material

import (
	"time"

	"github.com/codezest/catalog/internal/domain"
)

// CreateMaterialRequest is the input for creating a material.
type CreateMaterialRequest struct {
	ModuleID string `json:"moduleId" binding:"required,uuid"`
	Title    string `json:"title" binding:"required,max=200"`
	Type     string `json:"type" binding:"required,oneof=VIDEO ARTICLE CODE_EXAMPLE INTERACTIVE"`
	Content  string `json:"content" binding:"required,max=10000"`
	Duration *int   `json:"duration" binding:"omitempty,min=0"`
	Order    int    `json:"order" binding:"min=0"`
}

// UpdateMaterialRequest is the input for a partial update. Absent fields are
// left untouched; duration and order accept zero values.
type UpdateMaterialRequest struct {
	Title    *string `json:"title" binding:"omitempty,max=200"`
	Type     *string `json:"type" binding:"omitempty,oneof=VIDEO ARTICLE CODE_EXAMPLE INTERACTIVE"`
	Content  *string `json:"content" binding:"omitempty,max=10000"`
	Duration *int    `json:"duration" binding:"omitempty,min=0"`
	Order    *int    `json:"order" binding:"omitempty,min=0"`
}

// ListMaterialsQuery holds the list filters.
type ListMaterialsQuery struct {
	ModuleID string `form:"moduleId" binding:"omitempty,uuid"`
	Type     string `form:"type" binding:"omitempty,oneof=VIDEO ARTICLE CODE_EXAMPLE INTERACTIVE"`
}

// ReorderRequest is the input for a reorder batch.
type ReorderRequest struct {
	Updates []domain.OrderUpdate `json:"updates" binding:"required,min=1,dive"`
}

// MaterialResponse is the wire representation of a material.
type MaterialResponse struct {
	ID        string `json:"id"`
	ModuleID  string `json:"moduleId"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	Content   string `json:"content"`
	Duration  *int   `json:"duration"`
	Order     int    `json:"order"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func (r UpdateMaterialRequest) patch() domain.MaterialPatch {
	p := domain.MaterialPatch{
		Title:    r.Title,
		Content:  r.Content,
		Duration: r.Duration,
		Order:    r.Order,
	}
	if r.Type != nil {
		t := domain.MaterialType(*r.Type)
		p.Type = &t
	}
	return p
}

func (q ListMaterialsQuery) query() domain.MaterialQuery {
	return domain.MaterialQuery{
		ModuleID: q.ModuleID,
		Type:     domain.MaterialType(q.Type),
	}
}

// toResponse converts a domain material to its wire form with RFC3339 UTC
// timestamps.
func toResponse(m *domain.Material) MaterialResponse {
	return MaterialResponse{
		ID:        m.ID,
		ModuleID:  m.ModuleID,
		Title:     m.Title,
		Type:      string(m.Type),
		Content:   m.Content,
		Duration:  m.Duration,
		Order:     m.SortOrder,
		CreatedAt: m.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: m.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toResponseList(materials []domain.Material) []MaterialResponse {
	out := make([]MaterialResponse, 0, len(materials))
	for i := range materials {
		out = append(out, toResponse(&materials[i]))
	}
	return out
}

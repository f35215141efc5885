package coursemodule

import (
	"time"

	"github.com/codezest/catalog/internal/domain"
)

// CreateModuleRequest is the input for creating a module.
type CreateModuleRequest struct {
	LanguageID  string  `json:"languageId" binding:"required,uuid"`
	Title       string  `json:"title" binding:"required,max=200"`
	Slug        string  `json:"slug" binding:"required,max=200"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Syllabus    *string `json:"syllabus" binding:"omitempty,max=5000"`
	Order       int     `json:"order" binding:"min=0"`
}

// UpdateModuleRequest is the input for a partial update. Absent fields are
// left untouched; description, syllabus, and order accept empty/zero values.
type UpdateModuleRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Syllabus    *string `json:"syllabus" binding:"omitempty,max=5000"`
	Order       *int    `json:"order" binding:"omitempty,min=0"`
}

// ListModulesQuery holds the list filters.
type ListModulesQuery struct {
	Search     string `form:"search"`
	LanguageID string `form:"languageId" binding:"omitempty,uuid"`
}

// ReorderRequest is the input for a reorder batch.
type ReorderRequest struct {
	Updates []domain.OrderUpdate `json:"updates" binding:"required,min=1,dive"`
}

// ModuleResponse is the wire representation of a module.
type ModuleResponse struct {
	ID          string  `json:"id"`
	LanguageID  string  `json:"languageId"`
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	Syllabus    *string `json:"syllabus"`
	Order       int     `json:"order"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

func (r UpdateModuleRequest) patch() domain.ModulePatch {
	return domain.ModulePatch{
		Title:       r.Title,
		Description: r.Description,
		Syllabus:    r.Syllabus,
		Order:       r.Order,
	}
}

func (q ListModulesQuery) query() domain.ModuleQuery {
	return domain.ModuleQuery{
		Search:     q.Search,
		LanguageID: q.LanguageID,
	}
}

// toResponse converts a domain module to its wire form with RFC3339 UTC
// timestamps.
func toResponse(m *domain.Module) ModuleResponse {
	return ModuleResponse{
		ID:          m.ID,
		LanguageID:  m.LanguageID,
		Title:       m.Title,
		Slug:        m.Slug,
		Description: m.Description,
		Syllabus:    m.Syllabus,
		Order:       m.SortOrder,
		CreatedAt:   m.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   m.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toResponseList(modules []domain.Module) []ModuleResponse {
	out := make([]ModuleResponse, 0, len(modules))
	for i := range modules {
		out = append(out, toResponse(&modules[i]))
	}
	return out
}

package language

import (
	"time"

	"github.com/codezest/catalog/internal/domain"
)

// CreateLanguageRequest is the input for creating a language.
type CreateLanguageRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Slug        string  `json:"slug" binding:"required,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Icon        *string `json:"icon" binding:"omitempty,max=500"`
	Difficulty  string  `json:"difficulty" binding:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
}

// UpdateLanguageRequest is the input for a partial update. Absent fields are
// left untouched; description and icon accept empty strings as stored values.
type UpdateLanguageRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Icon        *string `json:"icon" binding:"omitempty,max=500"`
	Difficulty  *string `json:"difficulty" binding:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
}

// ListLanguagesQuery holds the list filters.
type ListLanguagesQuery struct {
	Search     string `form:"search"`
	Difficulty string `form:"difficulty" binding:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	IsActive   *bool  `form:"isActive"`
}

// LanguageResponse is the wire representation of a language.
type LanguageResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Difficulty  string  `json:"difficulty"`
	IsActive    bool    `json:"isActive"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

func (r UpdateLanguageRequest) patch() domain.LanguagePatch {
	p := domain.LanguagePatch{
		Name:        r.Name,
		Description: r.Description,
		Icon:        r.Icon,
	}
	if r.Difficulty != nil {
		d := domain.Difficulty(*r.Difficulty)
		p.Difficulty = &d
	}
	return p
}

func (q ListLanguagesQuery) query() domain.LanguageQuery {
	return domain.LanguageQuery{
		Search:     q.Search,
		Difficulty: domain.Difficulty(q.Difficulty),
		IsActive:   q.IsActive,
	}
}

// toResponse converts a domain language to its wire form with RFC3339 UTC
// timestamps.
func toResponse(l *domain.Language) LanguageResponse {
	return LanguageResponse{
		ID:          l.ID,
		Name:        l.Name,
		Slug:        l.Slug,
		Description: l.Description,
		Icon:        l.Icon,
		Difficulty:  string(l.Difficulty),
		IsActive:    l.IsActive,
		CreatedAt:   l.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   l.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel is the common base struct for all domain models.
// IDs are opaque UUID strings assigned on first insert; the empty string
// marks an entity that has not been persisted yet.
type BaseModel struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns a UUID when the entity is persisted without one.
func (m *BaseModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// Touch refreshes the modified timestamp. Every mutation path calls it,
// whether or not a field actually changed value.
func (m *BaseModel) Touch() {
	m.UpdatedAt = time.Now()
}

// Pagination bounds and defaults shared by every list endpoint.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageRequest holds validated pagination parameters.
type PageRequest struct {
	Page  int
	Limit int
}

// Skip returns the number of records to skip for the requested page.
func (r PageRequest) Skip() int {
	return (r.Page - 1) * r.Limit
}

// Normalize clamps page and limit into their allowed ranges.
func (r PageRequest) Normalize() PageRequest {
	if r.Page < 1 {
		r.Page = DefaultPage
	}
	if r.Limit < 1 {
		r.Limit = DefaultLimit
	}
	if r.Limit > MaxLimit {
		r.Limit = MaxLimit
	}
	return r
}

// PageMeta is the pagination metadata attached to every list response.
//
// TotalPages uses ceiling division. HasPrev is computed from the requested
// page even when it lies beyond the last page; out-of-range requests return
// empty data with truthful metadata rather than clamping.
type PageMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// NewPageMeta builds pagination metadata for the given request and total.
func NewPageMeta(req PageRequest, total int64) PageMeta {
	totalPages := 0
	if req.Limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(req.Limit)))
	}
	return PageMeta{
		Page:       req.Page,
		Limit:      req.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    req.Page < totalPages,
		HasPrev:    req.Page > 1,
	}
}

// PageResult is one page of results plus its pagination metadata.
type PageResult[T any] struct {
	Data       []T      `json:"data"`
	Pagination PageMeta `json:"pagination"`
}

// OrderUpdate is one (child id, new order) pair in a reorder batch.
// Order values need not be unique or contiguous; they are applied as given.
type OrderUpdate struct {
	ID    string `json:"id" binding:"required,uuid"`
	Order int    `json:"order" binding:"min=0"`
}

// Roles recognized by the authorization middleware.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

package domain

import "context"

// MaterialType classifies a learning material.
type MaterialType string

const (
	MaterialVideo       MaterialType = "VIDEO"
	MaterialArticle     MaterialType = "ARTICLE"
	MaterialCodeExample MaterialType = "CODE_EXAMPLE"
	MaterialInteractive MaterialType = "INTERACTIVE"
)

// Valid reports whether t is one of the known material types.
func (t MaterialType) Valid() bool {
	switch t {
	case MaterialVideo, MaterialArticle, MaterialCodeExample, MaterialInteractive:
		return true
	}
	return false
}

// Material is a single learning material inside a module. Duration is in
// minutes and only meaningful for timed material.
type Material struct {
	BaseModel
	ModuleID  string       `gorm:"size:36;index;not null" json:"moduleId"`
	Title     string       `gorm:"size:200;not null" json:"title"`
	Type      MaterialType `gorm:"size:20;not null" json:"type"`
	Content   string       `gorm:"size:10000;not null" json:"content"`
	Duration  *int         `json:"duration,omitempty"`
	SortOrder int          `gorm:"not null" json:"order"`
}

// NewMaterial builds an unpersisted material.
func NewMaterial(moduleID, title string, typ MaterialType, content string, order int, duration *int) *Material {
	m := &Material{
		ModuleID:  moduleID,
		Title:     title,
		Type:      typ,
		Content:   content,
		Duration:  duration,
		SortOrder: order,
	}
	m.Touch()
	m.CreatedAt = m.UpdatedAt
	return m
}

// MaterialPatch carries optional field updates. Title, Content, and Type
// ignore empty strings; Duration and Order apply any present value.
type MaterialPatch struct {
	Title    *string
	Type     *MaterialType
	Content  *string
	Duration *int
	Order    *int
}

// Update applies the patch and refreshes the modified timestamp.
func (m *Material) Update(p MaterialPatch) {
	if p.Title != nil && *p.Title != "" {
		m.Title = *p.Title
	}
	if p.Content != nil && *p.Content != "" {
		m.Content = *p.Content
	}
	if p.Duration != nil {
		m.Duration = p.Duration
	}
	if p.Order != nil {
		m.SortOrder = *p.Order
	}
	if p.Type != nil && *p.Type != "" {
		m.Type = *p.Type
	}
	m.Touch()
}

// Reorder assigns a new position within the parent module.
func (m *Material) Reorder(order int) {
	m.SortOrder = order
	m.Touch()
}

// IsVideo reports whether the material is a video.
func (m *Material) IsVideo() bool { return m.Type == MaterialVideo }

// IsArticle reports whether the material is an article.
func (m *Material) IsArticle() bool { return m.Type == MaterialArticle }

// MaterialQuery holds the optional list filters, honored one combination at
// a time: ModuleID+Type, then ModuleID, then Type.
type MaterialQuery struct {
	ModuleID string
	Type     MaterialType
}

// MaterialRepository defines the data access interface for materials.
type MaterialRepository interface {
	Create(ctx context.Context, material *Material) error
	FindByID(ctx context.Context, id string) (*Material, error)
	FindAll(ctx context.Context) ([]Material, error)
	FindPage(ctx context.Context, skip, take int) ([]Material, error)
	FindByModuleIDOrdered(ctx context.Context, moduleID string) ([]Material, error)
	FindByType(ctx context.Context, moduleID string, typ MaterialType) ([]Material, error)
	Update(ctx context.Context, material *Material) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	Exists(ctx context.Context, id string) (bool, error)
	// ReorderMaterials applies every order update in one transaction; on any
	// failure no row is changed.
	ReorderMaterials(ctx context.Context, updates []OrderUpdate) error
}

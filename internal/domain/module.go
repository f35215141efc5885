package domain

import "context"

// Module is a course module belonging to one language. SortOrder defines the
// display sequence among siblings; values need not be unique, and listings
// break ties by creation time, then ID.
type Module struct {
	BaseModel
	LanguageID  string  `gorm:"size:36;index;not null" json:"languageId"`
	Title       string  `gorm:"size:200;not null" json:"title"`
	Slug        string  `gorm:"size:200;not null;uniqueIndex:idx_modules_language_slug" json:"slug"`
	Description *string `gorm:"size:1000" json:"description,omitempty"`
	Syllabus    *string `gorm:"size:5000" json:"syllabus,omitempty"`
	SortOrder   int     `gorm:"not null" json:"order"`
}

// TableName places the composite unique index on (language_id, slug).
func (Module) TableName() string { return "modules" }

// NewModule builds an unpersisted module.
func NewModule(languageID, title, slug string, order int, description, syllabus *string) *Module {
	m := &Module{
		LanguageID:  languageID,
		Title:       title,
		Slug:        slug,
		Description: description,
		Syllabus:    syllabus,
		SortOrder:   order,
	}
	m.Touch()
	m.CreatedAt = m.UpdatedAt
	return m
}

// ModulePatch carries optional field updates. Title ignores empty strings;
// Description, Syllabus, and Order apply any present value, including empty
// strings and zero.
type ModulePatch struct {
	Title       *string
	Description *string
	Syllabus    *string
	Order       *int
}

// Update applies the patch and refreshes the modified timestamp.
func (m *Module) Update(p ModulePatch) {
	if p.Title != nil && *p.Title != "" {
		m.Title = *p.Title
	}
	if p.Description != nil {
		m.Description = p.Description
	}
	if p.Syllabus != nil {
		m.Syllabus = p.Syllabus
	}
	if p.Order != nil {
		m.SortOrder = *p.Order
	}
	m.Touch()
}

// Reorder assigns a new position within the parent language.
func (m *Module) Reorder(order int) {
	m.SortOrder = order
	m.Touch()
}

// ModuleQuery holds the optional list filters, honored one at a time:
// Search, then LanguageID.
type ModuleQuery struct {
	LanguageID string
	Search     string
}

// ModuleRepository defines the data access interface for modules.
type ModuleRepository interface {
	Create(ctx context.Context, module *Module) error
	FindByID(ctx context.Context, id string) (*Module, error)
	FindAll(ctx context.Context) ([]Module, error)
	FindPage(ctx context.Context, skip, take int) ([]Module, error)
	FindByLanguageID(ctx context.Context, languageID string) ([]Module, error)
	FindByLanguageIDOrdered(ctx context.Context, languageID string) ([]Module, error)
	FindByLanguageAndSlug(ctx context.Context, languageID, slug string) (*Module, error)
	SearchByTitle(ctx context.Context, title string) ([]Module, error)
	Update(ctx context.Context, module *Module) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	Exists(ctx context.Context, id string) (bool, error)
	// ReorderModules applies every order update in one transaction; on any
	// failure no row is changed.
	ReorderModules(ctx context.Context, updates []OrderUpdate) error
}

package domain

import "context"

// Difficulty grades a language or assignment.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "BEGINNER"
	DifficultyIntermediate Difficulty = "INTERMEDIATE"
	DifficultyAdvanced     Difficulty = "ADVANCED"
)

// Valid reports whether d is one of the known difficulty values.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Language represents a programming language in the catalog.
// Description and Icon are nullable; an empty string is a stored value
// ("no icon") distinct from an absent one.
type Language struct {
	BaseModel
	Name        string     `gorm:"size:100;not null" json:"name"`
	Slug        string     `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Description *string    `gorm:"size:500" json:"description,omitempty"`
	Icon        *string    `gorm:"size:500" json:"icon,omitempty"`
	Difficulty  Difficulty `gorm:"size:20;not null" json:"difficulty"`
	IsActive    bool       `gorm:"not null;default:true" json:"isActive"`
}

// TableName keeps the historical table name used by the catalog schema.
func (Language) TableName() string { return "programming_languages" }

// NewLanguage builds an unpersisted language. The ID stays empty until the
// repository assigns one; new languages start active.
func NewLanguage(name, slug string, difficulty Difficulty, description, icon *string) *Language {
	if difficulty == "" {
		difficulty = DifficultyBeginner
	}
	l := &Language{
		Name:        name,
		Slug:        slug,
		Description: description,
		Icon:        icon,
		Difficulty:  difficulty,
		IsActive:    true,
	}
	l.Touch()
	l.CreatedAt = l.UpdatedAt
	return l
}

// LanguagePatch carries optional field updates. A nil pointer means "leave
// the field alone"; Description and Icon accept an empty string as a stored
// value, while Name and Difficulty ignore empty strings entirely.
type LanguagePatch struct {
	Name        *string
	Description *string
	Icon        *string
	Difficulty  *Difficulty
}

// Update applies the patch. The modified timestamp is refreshed on every
// call, even when no field changes value.
func (l *Language) Update(p LanguagePatch) {
	if p.Name != nil && *p.Name != "" {
		l.Name = *p.Name
	}
	if p.Description != nil {
		l.Description = p.Description
	}
	if p.Icon != nil {
		l.Icon = p.Icon
	}
	if p.Difficulty != nil && *p.Difficulty != "" {
		l.Difficulty = *p.Difficulty
	}
	l.Touch()
}

// Activate marks the language as active.
func (l *Language) Activate() {
	l.IsActive = true
	l.Touch()
}

// Deactivate marks the language as inactive.
func (l *Language) Deactivate() {
	l.IsActive = false
	l.Touch()
}

// LanguageQuery holds the optional list filters. Exactly one filter mode is
// honored per request: Search, then Difficulty, then IsActive.
type LanguageQuery struct {
	Search     string
	Difficulty Difficulty
	IsActive   *bool
}

// LanguageRepository defines the data access interface for languages.
type LanguageRepository interface {
	Create(ctx context.Context, language *Language) error
	FindByID(ctx context.Context, id string) (*Language, error)
	FindBySlug(ctx context.Context, slug string) (*Language, error)
	FindAll(ctx context.Context) ([]Language, error)
	FindPage(ctx context.Context, skip, take int) ([]Language, error)
	FindByDifficulty(ctx context.Context, difficulty Difficulty) ([]Language, error)
	FindByActive(ctx context.Context, active bool) ([]Language, error)
	SearchByName(ctx context.Context, name string) ([]Language, error)
	Update(ctx context.Context, language *Language) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	Exists(ctx context.Context, id string) (bool, error)
}

package language

import (
	"context"

	"gorm.io/gorm"

	"github.com/codezest/catalog/internal/domain"
	"github.com/codezest/catalog/internal/pkg"
)

// languageRepository implements domain.LanguageRepository using GORM.
type languageRepository struct {
	db *gorm.DB
}

// NewRepository creates a LanguageRepository backed by the given GORM database.
func NewRepository(db *gorm.DB) domain.LanguageRepository {
	return &languageRepository{db: db}
}

// Create inserts a new language.
func (r *languageRepository) Create(ctx context.Context, language *domain.Language) error {
	if err := r.db.WithContext(ctx).Create(language).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// FindByID retrieves a language by its primary key.
func (r *languageRepository) FindByID(ctx context.Context, id string) (*domain.Language, error) {
	var language domain.Language
	if err := r.db.WithContext(ctx).First(&language, "id = ?", id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &language, nil
}

// FindBySlug retrieves a language by its unique slug.
func (r *languageRepository) FindBySlug(ctx context.Context, slug string) (*domain.Language, error) {
	var language domain.Language
	if err := r.db.WithContext(ctx).First(&language, "slug = ?", slug).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &language, nil
}

// FindAll returns every language, newest first.
func (r *languageRepository) FindAll(ctx context.Context) ([]domain.Language, error) {
	var languages []domain.Language
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&languages).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return languages, nil
}

// FindPage returns one storage-level page of languages, newest first.
func (r *languageRepository) FindPage(ctx context.Context, skip, take int) ([]domain.Language, error) {
	var languages []domain.Language
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(skip).Limit(take).
		Find(&languages).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return languages, nil
}

// FindByDifficulty returns every language with the given difficulty.
func (r *languageRepository) FindByDifficulty(ctx context.Context, difficulty domain.Difficulty) ([]domain.Language, error) {
	var languages []domain.Language
	if err := r.db.WithContext(ctx).
		Where("difficulty = ?", difficulty).
		Order("created_at DESC").
		Find(&languages).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return languages, nil
}

// FindByActive returns every language with the given active flag.
func (r *languageRepository) FindByActive(ctx context.Context, active bool) ([]domain.Language, error) {
	var languages []domain.Language
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", active).
		Order("created_at DESC").
		Find(&languages).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return languages, nil
}

// SearchByName returns every language whose name contains the given fragment,
// case-insensitively.
func (r *languageRepository) SearchByName(ctx context.Context, name string) ([]domain.Language, error) {
	var languages []domain.Language
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%").
		Order("created_at DESC").
		Find(&languages).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return languages, nil
}

// Update saves changes to an existing language.
func (r *languageRepository) Update(ctx context.Context, language *domain.Language) error {
	if err := r.db.WithContext(ctx).Save(language).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// Delete removes a language by ID.
func (r *languageRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.Language{}, "id = ?", id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Count returns the total number of languages.
func (r *languageRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Language{}).Count(&total).Error; err != nil {
		return 0, pkg.MapDBError(err)
	}
	return total, nil
}

// Exists reports whether a language with the given ID exists.
func (r *languageRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Language{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, pkg.MapDBError(err)
	}
	return count > 0, nil
}

package coursemodule

import (
	"context"

	"gorm.io/gorm"

	"github.com/codezest/catalog/internal/domain"
	"github.com/codezest/catalog/internal/pkg"
)

// Ordered sibling listings sort by position, breaking ties by creation time
// and then ID so results are stable across storage engines.
const siblingOrder = "sort_order ASC, created_at ASC, id ASC"

// moduleRepository implements domain.ModuleRepository using GORM.
type moduleRepository struct {
	db *gorm.DB
}

// NewRepository creates a ModuleRepository backed by the given GORM database.
func NewRepository(db *gorm.DB) domain.ModuleRepository {
	return &moduleRepository{db: db}
}

// Create inserts a new module.
func (r *moduleRepository) Create(ctx context.Context, module *domain.Module) error {
	if err := r.db.WithContext(ctx).Create(module).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// FindByID retrieves a module by its primary key.
func (r *moduleRepository) FindByID(ctx context.Context, id string) (*domain.Module, error) {
	var module domain.Module
	if err := r.db.WithContext(ctx).First(&module, "id = ?", id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &module, nil
}

// FindAll returns every module, newest first.
func (r *moduleRepository) FindAll(ctx context.Context) ([]domain.Module, error) {
	var modules []domain.Module
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&modules).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return modules, nil
}

// FindPage returns one storage-level page of modules, newest first.
func (r *moduleRepository) FindPage(ctx context.Context, skip, take int) ([]domain.Module, error) {
	var modules []domain.Module
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(skip).Limit(take).
		Find(&modules).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return modules, nil
}

// FindByLanguageID returns every module of a language, unordered.
func (r *moduleRepository) FindByLanguageID(ctx context.Context, languageID string) ([]domain.Module, error) {
	var modules []domain.Module
	if err := r.db.WithContext(ctx).
		Where("language_id = ?", languageID).
		Find(&modules).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return modules, nil
}

// FindByLanguageIDOrdered returns every module of a language in display order.
func (r *moduleRepository) FindByLanguageIDOrdered(ctx context.Context, languageID string) ([]domain.Module, error) {
	var modules []domain.Module
	if err := r.db.WithContext(ctx).
		Where("language_id = ?", languageID).
		Order(siblingOrder).
		Find(&modules).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return modules, nil
}

// FindByLanguageAndSlug retrieves a module by its per-language unique slug.
func (r *moduleRepository) FindByLanguageAndSlug(ctx context.Context, languageID, slug string) (*domain.Module, error) {
	var module domain.Module
	if err := r.db.WithContext(ctx).
		First(&module, "language_id = ? AND slug = ?", languageID, slug).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &module, nil
}

// SearchByTitle returns every module whose title contains the given fragment,
// case-insensitively.
func (r *moduleRepository) SearchByTitle(ctx context.Context, title string) ([]domain.Module, error) {
	var modules []domain.Module
	if err := r.db.WithContext(ctx).
		Where("LOWER(title) LIKE LOWER(?)", "%"+title+"%").
		Order("created_at DESC").
		Find(&modules).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return modules, nil
}

// Update saves changes to an existing module.
func (r *moduleRepository) Update(ctx context.Context, module *domain.Module) error {
	if err := r.db.WithContext(ctx).Save(module).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// Delete removes a module by ID.
func (r *moduleRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.Module{}, "id = ?", id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Count returns the total number of modules.
func (r *moduleRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Module{}).Count(&total).Error; err != nil {
		return 0, pkg.MapDBError(err)
	}
	return total, nil
}

// Exists reports whether a module with the given ID exists.
func (r *moduleRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Module{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, pkg.MapDBError(err)
	}
	return count > 0, nil
}

// ReorderModules applies every order update in a single transaction. GORM's
// Update also refreshes updated_at on each touched row.
func (r *moduleRepository) ReorderModules(ctx context.Context, updates []domain.OrderUpdate) error {
	err := pkg.WithTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		for _, u := range updates {
			result := tx.Model(&domain.Module{}).
				Where("id = ?", u.ID).
				Update("sort_order", u.Order)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return domain.NotFoundError("Module", u.ID)
			}
		}
		return nil
	})
	if err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		return pkg.MapDBError(err)
	}
	return nil
}

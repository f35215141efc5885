package material

import (
	"context"

	"gorm.io/gorm"

	"github.com/codezest/catalog/internal/domain"
	"github.com/codezest/catalog/internal/pkg"
)

// Ordered sibling listings sort by position, breaking ties by creation time
// and then ID so results are stable across storage engines.
const siblingOrder = "sort_order ASC, created_at ASC, id ASC"

// materialRepository implements domain.MaterialRepository using GORM.
type materialRepository struct {
	db *gorm.DB
}

// NewRepository creates a MaterialRepository backed by the given GORM database.
func NewRepository(db *gorm.DB) domain.MaterialRepository {
	return &materialRepository{db: db}
}

// Create inserts a new material.
func (r *materialRepository) Create(ctx context.Context, material *domain.Material) error {
	if err := r.db.WithContext(ctx).Create(material).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// FindByID retrieves a material by its primary key.
func (r *materialRepository) FindByID(ctx context.Context, id string) (*domain.Material, error) {
	var material domain.Material
	if err := r.db.WithContext(ctx).First(&material, "id = ?", id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &material, nil
}

// FindAll returns every material, newest first.
func (r *materialRepository) FindAll(ctx context.Context) ([]domain.Material, error) {
	var materials []domain.Material
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&materials).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return materials, nil
}

// FindPage returns one storage-level page of materials, newest first.
func (r *materialRepository) FindPage(ctx context.Context, skip, take int) ([]domain.Material, error) {
	var materials []domain.Material
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(skip).Limit(take).
		Find(&materials).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return materials, nil
}

// FindByModuleIDOrdered returns every material of a module in display order.
func (r *materialRepository) FindByModuleIDOrdered(ctx context.Context, moduleID string) ([]domain.Material, error) {
	var materials []domain.Material
	if err := r.db.WithContext(ctx).
		Where("module_id = ?", moduleID).
		Order(siblingOrder).
		Find(&materials).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return materials, nil
}

// FindByType returns every material of the given type, scoped to a module
// when moduleID is non-empty.
func (r *materialRepository) FindByType(ctx context.Context, moduleID string, typ domain.MaterialType) ([]domain.Material, error) {
	q := r.db.WithContext(ctx).Where("type = ?", typ)
	if moduleID != "" {
		q = q.Where("module_id = ?", moduleID)
	}

	var materials []domain.Material
	if err := q.Order(siblingOrder).Find(&materials).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return materials, nil
}

// Update saves changes to an existing material.
func (r *materialRepository) Update(ctx context.Context, material *domain.Material) error {
	if err := r.db.WithContext(ctx).Save(material).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// Delete removes a material by ID.
func (r *materialRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.Material{}, "id = ?", id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Count returns the total number of materials.
func (r *materialRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Material{}).Count(&total).Error; err != nil {
		return 0, pkg.MapDBError(err)
	}
	return total, nil
}

// Exists reports whether a material with the given ID exists.
func (r *materialRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Material{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, pkg.MapDBError(err)
	}
	return count > 0, nil
}

// ReorderMaterials applies every order update in a single transaction. GORM's
// Update also refreshes updated_at on each touched row.
func (r *materialRepository) ReorderMaterials(ctx context.Context, updates []domain.OrderUpdate) error {
	err := pkg.WithTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		for _, u := range updates {
			result := tx.Model(&domain.Material{}).
				Where("id = ?", u.ID).
				Update("sort_order", u.Order)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return domain.NotFoundError("Material", u.ID)
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

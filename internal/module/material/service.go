package material

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/codezest/catalog/internal/domain"
	"github.com/codezest/catalog/internal/pkg"
)

// Service defines the business operations on materials.
type Service interface {
	List(ctx context.Context, q domain.MaterialQuery, req domain.PageRequest) (*domain.PageResult[domain.Material], error)
	Get(ctx context.Context, id string) (*domain.Material, error)
	ListByModule(ctx context.Context, moduleID string) ([]domain.Material, error)
	Create(ctx context.Context, moduleID, title string, typ domain.MaterialType, content string, order int, duration *int) (*domain.Material, error)
	Update(ctx context.Context, id string, patch domain.MaterialPatch) (*domain.Material, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, moduleID string, updates []domain.OrderUpdate) error
}

// materialService implements Service.
type materialService struct {
	repo      domain.MaterialRepository
	modules   domain.ModuleRepository
	reorderer *pkg.Reorderer[domain.Material]
}

// NewService creates a material Service. The module repository is used to
// verify parent modules on create and reorder.
func NewService(repo domain.MaterialRepository, modules domain.ModuleRepository) Service {
	return &materialService{
		repo:    repo,
		modules: modules,
		reorderer: pkg.NewReorderer(
			"Material",
			repo.FindByID,
			func(m *domain.Material) string { return m.ModuleID },
			repo.ReorderMaterials,
		),
	}
}

// List returns one page of materials. Filter combinations are honored one at
// a time in precedence order: moduleId+type, then moduleId (display order),
// then type.
func (s *materialService) List(ctx context.Context, q domain.MaterialQuery, req domain.PageRequest) (*domain.PageResult[domain.Material], error) {
	branches := []pkg.Branch[domain.Material]{
		{
			When: q.ModuleID != "" && q.Type != "",
			Fetch: func(ctx context.Context) ([]domain.Material, error) {
				return s.repo.FindByType(ctx, q.ModuleID, q.Type)
			},
		},
		{
			When: q.ModuleID != "",
			Fetch: func(ctx context.Context) ([]domain.Material, error) {
				return s.repo.FindByModuleIDOrdered(ctx, q.ModuleID)
			},
		},
		{
			When: q.Type != "",
			Fetch: func(ctx context.Context) ([]domain.Material, error) {
				return s.repo.FindByType(ctx, "", q.Type)
			},
		},
	}

	return pkg.ResolveList(ctx, req, branches, func(ctx context.Context, skip, take int) ([]domain.Material, int64, error) {
		total, err := s.repo.Count(ctx)
		if err != nil {
			return nil, 0, err
		}
		data, err := s.repo.FindPage(ctx, skip, take)
		if err != nil {
			return nil, 0, err
		}
		return data, total, nil
	})
}

// Get retrieves a material by ID.
func (s *materialService) Get(ctx context.Context, id string) (*domain.Material, error) {
	material, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NotFoundError("Material", id)
		}
		return nil, err
	}
	return material, nil
}

// ListByModule returns every material of a module in display order.
// The module must exist.
func (s *materialService) ListByModule(ctx context.Context, moduleID string) ([]domain.Material, error) {
	if err := s.requireModule(ctx, moduleID); err != nil {
		return nil, err
	}
	return s.repo.FindByModuleIDOrdered(ctx, moduleID)
}

// Create validates input, verifies the parent module, and persists a new
// material.
func (s *materialService) Create(ctx context.Context, moduleID, title string, typ domain.MaterialType, content string, order int, duration *int) (*domain.Material, error) {
	title = strings.TrimSpace(title)

	if err := validateTitleContent(title, content); err != nil {
		return nil, err
	}
	if !typ.Valid() {
		return nil, domain.ValidationError(fmt.Sprintf("invalid material type %q", typ))
	}
	if order < 0 {
		return nil, domain.ValidationError("order must not be negative")
	}
	if duration != nil && *duration < 0 {
		return nil, domain.ValidationError("duration must not be negative")
	}

	if err := s.requireModule(ctx, moduleID); err != nil {
		return nil, err
	}

	material := domain.NewMaterial(moduleID, title, typ, content, order, duration)
	if err := s.repo.Create(ctx, material); err != nil {
		return nil, err
	}
	return material, nil
}

// Update loads the existing material, applies the patch, and persists it.
func (s *materialService) Update(ctx context.Context, id string, patch domain.MaterialPatch) (*domain.Material, error) {
	if patch.Title != nil {
		trimmed := strings.TrimSpace(*patch.Title)
		patch.Title = &trimmed
	}
	if patch.Type != nil && *patch.Type != "" && !patch.Type.Valid() {
		return nil, domain.ValidationError(fmt.Sprintf("invalid material type %q", *patch.Type))
	}
	if patch.Order != nil && *patch.Order < 0 {
		return nil, domain.ValidationError("order must not be negative")
	}
	if patch.Duration != nil && *patch.Duration < 0 {
		return nil, domain.ValidationError("duration must not be negative")
	}

	material, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	material.Update(patch)
	if err := s.repo.Update(ctx, material); err != nil {
		return nil, err
	}
	return material, nil
}

// Delete removes a material by ID.
func (s *materialService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Reorder applies a batch of order updates to the materials of one module.
// Every referenced material must exist and belong to that module; nothing is
// written otherwise.
func (s *materialService) Reorder(ctx context.Context, moduleID string, updates []domain.OrderUpdate) error {
	if len(updates) == 0 {
		return domain.ValidationError("updates must not be empty")
	}
	if err := s.requireModule(ctx, moduleID); err != nil {
		return err
	}
	return s.reorderer.Reorder(ctx, moduleID, updates)
}

func (s *materialService) requireModule(ctx context.Context, moduleID string) error {
	ok, err := s.modules.Exists(ctx, moduleID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFoundError("Module", moduleID)
	}
	return nil
}

// validateTitleContent checks the required material fields.
func validateTitleContent(title, content string) error {
	if title == "" {
		return domain.ValidationError("title is required")
	}
	if utf8.RuneCountInString(title) > 200 {
		return domain.ValidationError("title must be at most 200 characters")
	}
	if content == "" {
		return domain.ValidationError("content is required")
	}
	if utf8.RuneCountInString(content) > 10000 {
		return domain.ValidationError("content must be at most 10000 characters")
	}
	return nil
}

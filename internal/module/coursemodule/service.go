package coursemodule

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/codezest/catalog/internal/domain"
	"github.com/codezest/catalog/internal/pkg"
)

// Service defines the business operations on course modules.
type Service interface {
	List(ctx context.Context, q domain.ModuleQuery, req domain.PageRequest) (*domain.PageResult[domain.Module], error)
	Get(ctx context.Context, id string) (*domain.Module, error)
	ListByLanguage(ctx context.Context, languageID string) ([]domain.Module, error)
	GetByLanguageAndSlug(ctx context.Context, languageID, slug string) (*domain.Module, error)
	Create(ctx context.Context, languageID, title, slug string, order int, description, syllabus *string) (*domain.Module, error)
	Update(ctx context.Context, id string, patch domain.ModulePatch) (*domain.Module, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, languageID string, updates []domain.OrderUpdate) error
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// moduleService implements Service.
type moduleService struct {
	repo      domain.ModuleRepository
	languages domain.LanguageRepository
	reorderer *pkg.Reorderer[domain.Module]
}

// NewService creates a module Service. The language repository is used to
// verify parent languages on create and reorder.
func NewService(repo domain.ModuleRepository, languages domain.LanguageRepository) Service {
	return &moduleService{
		repo:      repo,
		languages: languages,
		reorderer: pkg.NewReorderer(
			"Module",
			repo.FindByID,
			func(m *domain.Module) string { return m.LanguageID },
			repo.ReorderModules,
		),
	}
}

// List returns one page of modules. Filters are honored one at a time in
// precedence order: search, then languageId. The languageId branch returns
// siblings in display order.
func (s *moduleService) List(ctx context.Context, q domain.ModuleQuery, req domain.PageRequest) (*domain.PageResult[domain.Module], error) {
	branches := []pkg.Branch[domain.Module]{
		{
			When: q.Search != "",
			Fetch: func(ctx context.Context) ([]domain.Module, error) {
				return s.repo.SearchByTitle(ctx, q.Search)
			},
		},
		{
			When: q.LanguageID != "",
			Fetch: func(ctx context.Context) ([]domain.Module, error) {
				return s.repo.FindByLanguageIDOrdered(ctx, q.LanguageID)
			},
		},
	}

	return pkg.ResolveList(ctx, req, branches, func(ctx context.Context, skip, take int) ([]domain.Module, int64, error) {
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

// Get retrieves a module by ID.
func (s *moduleService) Get(ctx context.Context, id string) (*domain.Module, error) {
	module, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NotFoundError("Module", id)
		}
		return nil, err
	}
	return module, nil
}

// ListByLanguage returns every module of a language in display order.
// The language must exist.
func (s *moduleService) ListByLanguage(ctx context.Context, languageID string) ([]domain.Module, error) {
	if err := s.requireLanguage(ctx, languageID); err != nil {
		return nil, err
	}
	return s.repo.FindByLanguageIDOrdered(ctx, languageID)
}

// GetByLanguageAndSlug retrieves a module by its per-language slug.
func (s *moduleService) GetByLanguageAndSlug(ctx context.Context, languageID, slug string) (*domain.Module, error) {
	module, err := s.repo.FindByLanguageAndSlug(ctx, languageID, slug)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewAppError(domain.CodeNotFound,
				fmt.Sprintf("Module with slug %s not found in language %s", slug, languageID), nil)
		}
		return nil, err
	}
	return module, nil
}

// Create validates input, verifies the parent language, checks per-language
// slug uniqueness, and persists a new module.
func (s *moduleService) Create(ctx context.Context, languageID, title, slug string, order int, description, syllabus *string) (*domain.Module, error) {
	title = strings.TrimSpace(title)
	slug = strings.TrimSpace(slug)

	if err := validateTitleSlug(title, slug); err != nil {
		return nil, err
	}
	if order < 0 {
		return nil, domain.ValidationError("order must not be negative")
	}

	if err := s.requireLanguage(ctx, languageID); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByLanguageAndSlug(ctx, languageID, slug); err == nil {
		return nil, domain.ValidationError(
			fmt.Sprintf("Module with slug %s already exists in this language", slug))
	} else if !domain.IsNotFound(err) {
		return nil, err
	}

	module := domain.NewModule(languageID, title, slug, order, description, syllabus)
	if err := s.repo.Create(ctx, module); err != nil {
		return nil, err
	}
	return module, nil
}

// Update loads the existing module, applies the patch, and persists it.
func (s *moduleService) Update(ctx context.Context, id string, patch domain.ModulePatch) (*domain.Module, error) {
	if patch.Title != nil {
		trimmed := strings.TrimSpace(*patch.Title)
		patch.Title = &trimmed
	}
	if patch.Order != nil && *patch.Order < 0 {
		return nil, domain.ValidationError("order must not be negative")
	}

	module, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	module.Update(patch)
	if err := s.repo.Update(ctx, module); err != nil {
		return nil, err
	}
	return module, nil
}

// Delete removes a module by ID.
func (s *moduleService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Reorder applies a batch of order updates to the modules of one language.
// Every referenced module must exist and belong to that language; nothing is
// written otherwise.
func (s *moduleService) Reorder(ctx context.Context, languageID string, updates []domain.OrderUpdate) error {
	if len(updates) == 0 {
		return domain.ValidationError("updates must not be empty")
	}
	if err := s.requireLanguage(ctx, languageID); err != nil {
		return err
	}
	return s.reorderer.Reorder(ctx, languageID, updates)
}

func (s *moduleService) requireLanguage(ctx context.Context, languageID string) error {
	ok, err := s.languages.Exists(ctx, languageID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFoundError("Language", languageID)
	}
	return nil
}

// validateTitleSlug checks required fields and the slug format.
func validateTitleSlug(title, slug string) error {
	if title == "" {
		return domain.ValidationError("title is required")
	}
	if utf8.RuneCountInString(title) > 200 {
		return domain.ValidationError("title must be at most 200 characters")
	}
	if slug == "" {
		return domain.ValidationError("slug is required")
	}
	if len(slug) > 200 {
		return domain.ValidationError("slug must be at most 200 characters")
	}
	if !slugPattern.MatchString(slug) {
		return domain.ValidationError("slug must contain only lowercase letters, digits, and hyphens")
	}
	return nil
}

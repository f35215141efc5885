package language

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/codezest/catalog/internal/cache"
	"github.com/codezest/catalog/internal/domain"
	"github.com/codezest/catalog/internal/pkg"
)

// Service defines the business operations on languages.
type Service interface {
	List(ctx context.Context, q domain.LanguageQuery, req domain.PageRequest) (*domain.PageResult[domain.Language], error)
	Get(ctx context.Context, id string) (*domain.Language, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Language, error)
	Create(ctx context.Context, name, slug string, difficulty domain.Difficulty, description, icon *string) (*domain.Language, error)
	Update(ctx context.Context, id string, patch domain.LanguagePatch) (*domain.Language, error)
	Delete(ctx context.Context, id string) error
	Activate(ctx context.Context, id string) (*domain.Language, error)
	Deactivate(ctx context.Context, id string) (*domain.Language, error)
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// languageService implements Service.
type languageService struct {
	repo     domain.LanguageRepository
	cache    *cache.Cache
	cacheTTL time.Duration
}

// NewService creates a language Service. c may be nil, which disables the
// slug-lookup cache.
func NewService(repo domain.LanguageRepository, c *cache.Cache, cacheTTL time.Duration) Service {
	return &languageService{repo: repo, cache: c, cacheTTL: cacheTTL}
}

// List returns one page of languages. Filters are honored one at a time in
// precedence order: search, then difficulty, then isActive. Filtered branches
// materialize the full matching set and slice it in memory; the unfiltered
// path pushes pagination down to storage.
func (s *languageService) List(ctx context.Context, q domain.LanguageQuery, req domain.PageRequest) (*domain.PageResult[domain.Language], error) {
	branches := []pkg.Branch[domain.Language]{
		{
			When: q.Search != "",
			Fetch: func(ctx context.Context) ([]domain.Language, error) {
				return s.repo.SearchByName(ctx, q.Search)
			},
		},
		{
			When: q.Difficulty != "",
			Fetch: func(ctx context.Context) ([]domain.Language, error) {
				return s.repo.FindByDifficulty(ctx, q.Difficulty)
			},
		},
		{
			When: q.IsActive != nil,
			Fetch: func(ctx context.Context) ([]domain.Language, error) {
				return s.repo.FindByActive(ctx, *q.IsActive)
			},
		},
	}

	return pkg.ResolveList(ctx, req, branches, func(ctx context.Context, skip, take int) ([]domain.Language, int64, error) {
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

// Get retrieves a language by ID.
func (s *languageService) Get(ctx context.Context, id string) (*domain.Language, error) {
	language, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NotFoundError("Language", id)
		}
		return nil, err
	}
	return language, nil
}

// GetBySlug retrieves a language by slug, consulting the cache first.
// Cache failures are ignored; the lookup falls through to the database.
func (s *languageService) GetBySlug(ctx context.Context, slug string) (*domain.Language, error) {
	key := slugCacheKey(slug)
	if b, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		var cached domain.Language
		if err := json.Unmarshal(b, &cached); err == nil {
			return &cached, nil
		}
	}

	language, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewAppError(domain.CodeNotFound,
				fmt.Sprintf("Language with slug %s not found", slug), nil)
		}
		return nil, err
	}

	if b, err := json.Marshal(language); err == nil {
		_ = s.cache.Set(ctx, key, b, s.cacheTTL)
	}
	return language, nil
}

// Create validates input, checks slug uniqueness, and persists a new language.
func (s *languageService) Create(ctx context.Context, name, slug string, difficulty domain.Difficulty, description, icon *string) (*domain.Language, error) {
	name = strings.TrimSpace(name)
	slug = strings.TrimSpace(slug)

	if err := validateNameSlug(name, slug); err != nil {
		return nil, err
	}
	if difficulty != "" && !difficulty.Valid() {
		return nil, domain.ValidationError(fmt.Sprintf("invalid difficulty %q", difficulty))
	}

	if _, err := s.repo.FindBySlug(ctx, slug); err == nil {
		return nil, domain.ValidationError(fmt.Sprintf("Language with slug %s already exists", slug))
	} else if !domain.IsNotFound(err) {
		return nil, err
	}

	language := domain.NewLanguage(name, slug, difficulty, description, icon)
	if err := s.repo.Create(ctx, language); err != nil {
		return nil, err
	}
	return language, nil
}

// Update loads the existing language, applies the patch, and persists it.
func (s *languageService) Update(ctx context.Context, id string, patch domain.LanguagePatch) (*domain.Language, error) {
	if patch.Name != nil {
		trimmed := strings.TrimSpace(*patch.Name)
		patch.Name = &trimmed
	}
	if patch.Difficulty != nil && *patch.Difficulty != "" && !patch.Difficulty.Valid() {
		return nil, domain.ValidationError(fmt.Sprintf("invalid difficulty %q", *patch.Difficulty))
	}

	language, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	language.Update(patch)
	if err := s.repo.Update(ctx, language); err != nil {
		return nil, err
	}

	s.invalidate(ctx, language.Slug)
	return language, nil
}

// Delete removes a language by ID.
func (s *languageService) Delete(ctx context.Context, id string) error {
	language, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, language.Slug)
	return nil
}

// Activate marks a language as active.
func (s *languageService) Activate(ctx context.Context, id string) (*domain.Language, error) {
	return s.setActive(ctx, id, true)
}

// Deactivate marks a language as inactive.
func (s *languageService) Deactivate(ctx context.Context, id string) (*domain.Language, error) {
	return s.setActive(ctx, id, false)
}

func (s *languageService) setActive(ctx context.Context, id string, active bool) (*domain.Language, error) {
	language, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if active {
		language.Activate()
	} else {
		language.Deactivate()
	}

	if err := s.repo.Update(ctx, language); err != nil {
		return nil, err
	}
	s.invalidate(ctx, language.Slug)
	return language, nil
}

// invalidate drops the cached slug lookup after a mutation. Best effort.
func (s *languageService) invalidate(ctx context.Context, slug string) {
	_ = s.cache.Delete(ctx, slugCacheKey(slug))
}

func slugCacheKey(slug string) string {
	return "language:slug:" + slug
}

// validateNameSlug checks required fields and the slug format.
func validateNameSlug(name, slug string) error {
	if name == "" {
		return domain.ValidationError("name is required")
	}
	if utf8.RuneCountInString(name) > 100 {
		return domain.ValidationError("name must be at most 100 characters")
	}
	if slug == "" {
		return domain.ValidationError("slug is required")
	}
	if len(slug) > 100 {
		return domain.ValidationError("slug must be at most 100 characters")
	}
	if !slugPattern.MatchString(slug) {
		return domain.ValidationError("slug must contain only lowercase letters, digits, and hyphens")
	}
	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/store"
	"github.com/MKhiriev/recipe-keeper/models"
)

// catalogService implements CatalogService for tags and ingredients on top
// of the matching repository. Names are stored trimmed.
type catalogService[T models.CatalogEntry] struct {
	repository store.CatalogRepository[T]
	kind       string

	logger *logger.Logger
}

// NewTagService constructs a TagService backed by repository.
func NewTagService(repository store.TagRepository, logger *logger.Logger) TagService {
	return &catalogService[models.Tag]{repository: repository, kind: "tag", logger: logger}
}

// NewIngredientService constructs an IngredientService backed by repository.
func NewIngredientService(repository store.IngredientRepository, logger *logger.Logger) IngredientService {
	return &catalogService[models.Ingredient]{repository: repository, kind: "ingredient", logger: logger}
}

func (s *catalogService[T]) List(ctx context.Context, filter models.CatalogFilter) ([]T, error) {
	entries, err := s.repository.List(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*catalogService.List").Str("kind", s.kind).Msg("listing failed")
		return nil, fmt.Errorf("listing %ss failed: %w", s.kind, err)
	}

	return entries, nil
}

func (s *catalogService[T]) Create(ctx context.Context, userID int64, in models.CatalogInput) (T, error) {
	entry := T(models.CatalogItem{UserID: userID, Name: trimmed(in.Name)})

	created, err := s.repository.Create(ctx, entry)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*catalogService.Create").Str("kind", s.kind).Msg("creation failed")
		return created, fmt.Errorf("creating %s failed: %w", s.kind, err)
	}

	return created, nil
}

func (s *catalogService[T]) Get(ctx context.Context, id, userID int64) (T, error) {
	entry, err := s.repository.Get(ctx, id, userID)
	if err != nil {
		return entry, s.wrap(ctx, "Get", err)
	}

	return entry, nil
}

// Update renames the entry when a name is given; without one it returns
// the entry unchanged.
func (s *catalogService[T]) Update(ctx context.Context, id, userID int64, in models.CatalogInput) (T, error) {
	if in.Name == nil {
		return s.Get(ctx, id, userID)
	}

	return s.Replace(ctx, id, userID, in)
}

func (s *catalogService[T]) Replace(ctx context.Context, id, userID int64, in models.CatalogInput) (T, error) {
	entry := T(models.CatalogItem{ID: id, UserID: userID, Name: trimmed(in.Name)})

	updated, err := s.repository.Update(ctx, entry)
	if err != nil {
		return updated, s.wrap(ctx, "Replace", err)
	}

	return updated, nil
}

func (s *catalogService[T]) Delete(ctx context.Context, id, userID int64) error {
	if err := s.repository.Delete(ctx, id, userID); err != nil {
		return s.wrap(ctx, "Delete", err)
	}

	return nil
}

// wrap logs unexpected failures; a missing or foreign entry is routine.
func (s *catalogService[T]) wrap(ctx context.Context, op string, err error) error {
	if !errors.Is(err, store.ErrNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*catalogService."+op).Str("kind", s.kind).Msg("operation failed")
	}
	return fmt.Errorf("%s %s: %w", strings.ToLower(op), s.kind, err)
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"path"
	"regexp"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/store"
	"github.com/MKhiriev/recipe-keeper/internal/utils"
	"github.com/MKhiriev/recipe-keeper/models"
)

// RecipeImageDir is the storage prefix of uploaded recipe images.
const RecipeImageDir = "uploads/recipe"

var (
	imageExtension = regexp.MustCompile(`^\.[a-z0-9]{1,10}$`)
	imageNames     = utils.NewUUIDGenerator()
)

// recipeService implements RecipeService over a RecipeRepository and an
// ImageStorage.
type recipeService struct {
	recipeRepository store.RecipeRepository
	imageStorage     store.ImageStorage

	logger *logger.Logger
}

// NewRecipeService constructs a RecipeService.
func NewRecipeService(recipeRepository store.RecipeRepository, imageStorage store.ImageStorage, logger *logger.Logger) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		imageStorage:     imageStorage,
		logger:           logger,
	}
}

func (s *recipeService) List(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error) {
	recipes, err := s.recipeRepository.List(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*recipeService.List").Msg("listing recipes failed")
		return nil, fmt.Errorf("listing recipes failed: %w", err)
	}

	return recipes, nil
}

func (s *recipeService) Get(ctx context.Context, id, userID int64) (models.RecipeDetail, error) {
	recipe, err := s.recipeRepository.Get(ctx, id, userID)
	if err != nil {
		return models.RecipeDetail{}, s.wrap(ctx, "get", err)
	}

	return recipe, nil
}

// Create stores a recipe owned by userID. Unset optional fields default to
// an empty link and empty association sets.
func (s *recipeService) Create(ctx context.Context, userID int64, in models.RecipeInput) (models.Recipe, error) {
	recipe := models.Recipe{
		UserID: userID,
		Title:  trimmed(in.Title),
		Link:   trimmed(in.Link),
	}
	if in.TimeMinutes != nil {
		recipe.TimeMinutes = *in.TimeMinutes
	}
	if in.Price != nil {
		recipe.Price = *in.Price
	}
	if in.TagIDs != nil {
		recipe.TagIDs = *in.TagIDs
	}
	if in.IngredientIDs != nil {
		recipe.IngredientIDs = *in.IngredientIDs
	}

	created, err := s.recipeRepository.Create(ctx, recipe)
	if err != nil {
		return models.Recipe{}, s.wrap(ctx, "create", err)
	}

	return created, nil
}

// Update merges the present fields of in into the recipe. An association
// list replaces its set only when present.
func (s *recipeService) Update(ctx context.Context, id, userID int64, in models.RecipeInput) (models.Recipe, error) {
	in.Title = trimmedPtr(in.Title)
	in.Link = trimmedPtr(in.Link)

	updated, err := s.recipeRepository.Update(ctx, id, userID, in)
	if err != nil {
		return models.Recipe{}, s.wrap(ctx, "update", err)
	}

	return updated, nil
}

// Replace overwrites the recipe. An absent link becomes empty and absent
// association lists clear their sets.
func (s *recipeService) Replace(ctx context.Context, id, userID int64, in models.RecipeInput) (models.Recipe, error) {
	if in.Link == nil {
		in.Link = new(string)
	}
	if in.TagIDs == nil {
		in.TagIDs = &[]int64{}
	}
	if in.IngredientIDs == nil {
		in.IngredientIDs = &[]int64{}
	}

	return s.Update(ctx, id, userID, in)
}

// Delete removes the recipe with its association rows, then its image.
// Tags and ingredients are kept. A failure to remove the image file is
// logged and does not fail the call since the row is already gone.
func (s *recipeService) Delete(ctx context.Context, id, userID int64) error {
	image, err := s.recipeRepository.Delete(ctx, id, userID)
	if err != nil {
		return s.wrap(ctx, "delete", err)
	}

	if image != nil {
		s.dropImage(ctx, *image)
	}

	return nil
}

// UploadImage stores the upload under a fresh name and points the recipe at
// it. The previous image is removed only after the row has been updated, so
// a failed upload leaves the recipe untouched.
func (s *recipeService) UploadImage(ctx context.Context, id, userID int64, upload models.ImageUpload) (models.RecipeImage, error) {
	log := logger.FromContext(ctx)

	_, format, err := image.Decode(bytes.NewReader(upload.Data))
	if err != nil {
		log.Info().Err(err).Int64("recipe_id", id).Msg("uploaded file is not a decodable image")
		return models.RecipeImage{}, models.NewValidationError("image", MsgInvalidImage)
	}

	key := imageKey(upload.Filename, format)
	if err = s.imageStorage.Save(ctx, key, upload.Data); err != nil {
		log.Err(err).Str("func", "*recipeService.UploadImage").Msg("saving image failed")
		return models.RecipeImage{}, fmt.Errorf("saving image failed: %w", err)
	}

	previous, err := s.recipeRepository.SetImage(ctx, id, userID, key)
	if err != nil {
		s.dropImage(ctx, key)
		return models.RecipeImage{}, s.wrap(ctx, "upload image", err)
	}

	if previous != nil && *previous != key {
		s.dropImage(ctx, *previous)
	}

	return models.RecipeImage{ID: id, Image: &key}, nil
}

func (s *recipeService) dropImage(ctx context.Context, key string) {
	if err := s.imageStorage.Delete(ctx, key); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("key", key).Msg("removing stored image failed")
	}
}

// wrap turns a rejected association into a field error and annotates the
// rest. Missing and foreign recipes are not logged.
func (s *recipeService) wrap(ctx context.Context, op string, err error) error {
	var refErr *store.ReferenceError
	if errors.As(err, &refErr) {
		return models.NewValidationError(refErr.Field, fmt.Sprintf(msgInvalidPK, refErr.ID))
	}

	if !errors.Is(err, store.ErrNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*recipeService").Str("op", op).Msg("recipe operation failed")
	}

	return fmt.Errorf("%s recipe: %w", op, err)
}

// imageKey builds "uploads/recipe/recipe_image_<uuid>.<ext>". The extension
// of the client file name is kept when it looks like one, otherwise the
// decoded format names it.
func imageKey(filename, format string) string {
	ext := strings.ToLower(path.Ext(filename))
	if !imageExtension.MatchString(ext) {
		ext = "." + format
	}

	return fmt.Sprintf("%s/recipe_image_%s%s", RecipeImageDir, imageNames.Generate(), ext)
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

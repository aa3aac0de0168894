package service

import (
	"context"

	"github.com/MKhiriev/recipe-keeper/internal/validators"
	"github.com/MKhiriev/recipe-keeper/models"
)

// requiredRecipeFields must be present on create and full update.
var requiredRecipeFields = []string{
	validators.FieldTitle,
	validators.FieldTimeMinutes,
	validators.FieldPrice,
}

// RecipeValidationService validates recipe bodies and uploads before
// handing them to the wrapped RecipeService.
type RecipeValidationService struct {
	inner     RecipeService
	validator validators.Validator
}

func NewRecipeValidationService() RecipeServiceWrapper {
	return &RecipeValidationService{
		validator: validators.NewRecipeValidator(),
	}
}

func (v *RecipeValidationService) List(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error) {
	return v.inner.List(ctx, filter)
}

func (v *RecipeValidationService) Get(ctx context.Context, id, userID int64) (models.RecipeDetail, error) {
	return v.inner.Get(ctx, id, userID)
}

func (v *RecipeValidationService) Create(ctx context.Context, userID int64, in models.RecipeInput) (models.Recipe, error) {
	if err := v.validator.Validate(ctx, in, requiredRecipeFields...); err != nil {
		return models.Recipe{}, err
	}

	return v.inner.Create(ctx, userID, in)
}

func (v *RecipeValidationService) Update(ctx context.Context, id, userID int64, in models.RecipeInput) (models.Recipe, error) {
	if err := v.validator.Validate(ctx, in); err != nil {
		return models.Recipe{}, err
	}

	return v.inner.Update(ctx, id, userID, in)
}

func (v *RecipeValidationService) Replace(ctx context.Context, id, userID int64, in models.RecipeInput) (models.Recipe, error) {
	if err := v.validator.Validate(ctx, in, requiredRecipeFields...); err != nil {
		return models.Recipe{}, err
	}

	return v.inner.Replace(ctx, id, userID, in)
}

func (v *RecipeValidationService) Delete(ctx context.Context, id, userID int64) error {
	return v.inner.Delete(ctx, id, userID)
}

func (v *RecipeValidationService) UploadImage(ctx context.Context, id, userID int64, upload models.ImageUpload) (models.RecipeImage, error) {
	if len(upload.Data) == 0 {
		return models.RecipeImage{}, models.NewValidationError(validators.FieldImage, MsgNoImage)
	}

	return v.inner.UploadImage(ctx, id, userID, upload)
}

func (v *RecipeValidationService) Wrap(wrapper RecipeService) RecipeService {
	v.inner = wrapper
	return v
}

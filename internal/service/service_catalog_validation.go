package service

import (
	"context"

	"github.com/MKhiriev/recipe-keeper/internal/validators"
	"github.com/MKhiriev/recipe-keeper/models"
)

// CatalogValidationService validates tag and ingredient bodies before
// handing them to the wrapped CatalogService.
type CatalogValidationService[T models.CatalogEntry] struct {
	inner     CatalogService[T]
	validator validators.Validator
}

func NewCatalogValidationService[T models.CatalogEntry]() CatalogServiceWrapper[T] {
	return &CatalogValidationService[T]{
		validator: validators.NewRecipeValidator(),
	}
}

func (v *CatalogValidationService[T]) List(ctx context.Context, filter models.CatalogFilter) ([]T, error) {
	return v.inner.List(ctx, filter)
}

func (v *CatalogValidationService[T]) Create(ctx context.Context, userID int64, in models.CatalogInput) (T, error) {
	if err := v.validator.Validate(ctx, in, validators.FieldName); err != nil {
		var zero T
		return zero, err
	}

	return v.inner.Create(ctx, userID, in)
}

func (v *CatalogValidationService[T]) Get(ctx context.Context, id, userID int64) (T, error) {
	return v.inner.Get(ctx, id, userID)
}

func (v *CatalogValidationService[T]) Update(ctx context.Context, id, userID int64, in models.CatalogInput) (T, error) {
	if err := v.validator.Validate(ctx, in); err != nil {
		var zero T
		return zero, err
	}

	return v.inner.Update(ctx, id, userID, in)
}

func (v *CatalogValidationService[T]) Replace(ctx context.Context, id, userID int64, in models.CatalogInput) (T, error) {
	if err := v.validator.Validate(ctx, in, validators.FieldName); err != nil {
		var zero T
		return zero, err
	}

	return v.inner.Replace(ctx, id, userID, in)
}

func (v *CatalogValidationService[T]) Delete(ctx context.Context, id, userID int64) error {
	return v.inner.Delete(ctx, id, userID)
}

func (v *CatalogValidationService[T]) Wrap(wrapper CatalogService[T]) CatalogService[T] {
	v.inner = wrapper
	return v
}

package validators

import (
	"context"

	"github.com/MKhiriev/recipe-keeper/models"
)

// Field name constants used to list the fields that must be present.
const (
	FieldName        = "name"
	FieldTitle       = "title"
	FieldTimeMinutes = "time_minutes"
	FieldPrice       = "price"
	FieldLink        = "link"
	FieldTags        = "tags"
	FieldIngredients = "ingredients"
	FieldImage       = "image"
)

const (
	rulesName  = "notblank,max=255"
	rulesTitle = "notblank,max=255"
	rulesTime  = "min=1"
	rulesLink  = "max=255"
	rulesID    = "gt=0"
)

// RecipeValidator validates the bodies of recipe, tag and ingredient
// requests: [models.RecipeInput] and [models.CatalogInput].
type RecipeValidator struct {
	engine *engine
}

// NewRecipeValidator constructs a RecipeValidator.
func NewRecipeValidator() Validator {
	return &RecipeValidator{engine: newEngine()}
}

// Validate dispatches on the concrete type of obj. Both value and pointer
// forms are accepted.
func (v *RecipeValidator) Validate(ctx context.Context, obj any, required ...string) error {
	switch value := obj.(type) {
	case models.RecipeInput:
		return v.validateRecipeInput(value, required...)
	case *models.RecipeInput:
		return v.validateRecipeInput(*value, required...)

	case models.CatalogInput:
		return v.validateCatalogInput(value, required...)
	case *models.CatalogInput:
		return v.validateCatalogInput(*value, required...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecipeValidator) validateRecipeInput(in models.RecipeInput, required ...string) error {
	errs := models.ValidationError{}

	for _, f := range required {
		switch f {
		case FieldTitle:
			requirePresent(errs, f, in.Title != nil)
		case FieldTimeMinutes:
			requirePresent(errs, f, in.TimeMinutes != nil)
		case FieldPrice:
			requirePresent(errs, f, in.Price != nil)
		case FieldLink:
			requirePresent(errs, f, in.Link != nil)
		case FieldTags:
			requirePresent(errs, f, in.TagIDs != nil)
		case FieldIngredients:
			requirePresent(errs, f, in.IngredientIDs != nil)
		default:
			return ErrUnknownField
		}
	}

	if in.Title != nil {
		v.engine.check(errs, FieldTitle, *in.Title, rulesTitle)
	}
	if in.TimeMinutes != nil {
		v.engine.check(errs, FieldTimeMinutes, *in.TimeMinutes, rulesTime)
	}
	if in.Price != nil {
		checkPrice(errs, FieldPrice, *in.Price)
	}
	if in.Link != nil {
		v.engine.check(errs, FieldLink, *in.Link, rulesLink)
	}
	if in.TagIDs != nil {
		v.checkIDs(errs, FieldTags, *in.TagIDs)
	}
	if in.IngredientIDs != nil {
		v.checkIDs(errs, FieldIngredients, *in.IngredientIDs)
	}

	return errs.Err()
}

func (v *RecipeValidator) validateCatalogInput(in models.CatalogInput, required ...string) error {
	errs := models.ValidationError{}

	for _, f := range required {
		switch f {
		case FieldName:
			requirePresent(errs, f, in.Name != nil)
		default:
			return ErrUnknownField
		}
	}

	if in.Name != nil {
		v.engine.check(errs, FieldName, *in.Name, rulesName)
	}

	return errs.Err()
}

func (v *RecipeValidator) checkIDs(errs models.ValidationError, field string, ids []int64) {
	for _, id := range ids {
		v.engine.check(errs, field, id, rulesID)
	}
}

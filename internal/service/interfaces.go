package service

import (
	"context"

	"github.com/MKhiriev/recipe-keeper/models"
)

// AuthService manages accounts and the tokens that authenticate them.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	GetProfile(ctx context.Context, userID int64) (models.User, error)
	UpdateProfile(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)

	CreateSuperuser(ctx context.Context, user models.User) (models.User, error)
}

// CatalogService manages an owner-scoped name catalog. Update applies a
// partial change, Replace a full one.
type CatalogService[T models.CatalogEntry] interface {
	List(ctx context.Context, filter models.CatalogFilter) ([]T, error)
	Create(ctx context.Context, userID int64, in models.CatalogInput) (T, error)
	Get(ctx context.Context, id, userID int64) (T, error)
	Update(ctx context.Context, id, userID int64, in models.CatalogInput) (T, error)
	Replace(ctx context.Context, id, userID int64, in models.CatalogInput) (T, error)
	Delete(ctx context.Context, id, userID int64) error
}

// TagService manages tags.
type TagService interface {
	CatalogService[models.Tag]
}

// IngredientService manages ingredients.
type IngredientService interface {
	CatalogService[models.Ingredient]
}

// RecipeService manages recipes, their associations and images.
type RecipeService interface {
	List(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error)
	Get(ctx context.Context, id, userID int64) (models.RecipeDetail, error)
	Create(ctx context.Context, userID int64, in models.RecipeInput) (models.Recipe, error)
	Update(ctx context.Context, id, userID int64, in models.RecipeInput) (models.Recipe, error)
	Replace(ctx context.Context, id, userID int64, in models.RecipeInput) (models.Recipe, error)
	Delete(ctx context.Context, id, userID int64) error
	UploadImage(ctx context.Context, id, userID int64, upload models.ImageUpload) (models.RecipeImage, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// CatalogServiceWrapper defines middleware composition for CatalogService.
type CatalogServiceWrapper[T models.CatalogEntry] interface {
	Wrap(CatalogService[T]) CatalogService[T]
}

// RecipeServiceWrapper defines middleware composition for RecipeService.
type RecipeServiceWrapper interface {
	Wrap(RecipeService) RecipeService
}

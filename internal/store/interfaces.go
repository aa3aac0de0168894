package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/recipe-keeper/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
}

// CatalogRepository persists an owner-scoped name catalog. Every lookup by
// id is filtered by owner: a row owned by someone else reads as
// [ErrNotFound].
type CatalogRepository[T models.CatalogEntry] interface {
	List(ctx context.Context, filter models.CatalogFilter) ([]T, error)
	Create(ctx context.Context, entry T) (T, error)
	Get(ctx context.Context, id, userID int64) (T, error)
	Update(ctx context.Context, entry T) (T, error)
	Delete(ctx context.Context, id, userID int64) error
}

// TagRepository persists tags.
type TagRepository interface {
	CatalogRepository[models.Tag]
}

// IngredientRepository persists ingredients.
type IngredientRepository interface {
	CatalogRepository[models.Ingredient]
}

// RecipeRepository persists recipes and their tag/ingredient links.
type RecipeRepository interface {
	List(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error)
	Get(ctx context.Context, id, userID int64) (models.RecipeDetail, error)
	Create(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
	Update(ctx context.Context, id, userID int64, in models.RecipeInput) (models.Recipe, error)
	SetImage(ctx context.Context, id, userID int64, image string) (*string, error)
	Delete(ctx context.Context, id, userID int64) (*string, error)
}

// ImageStorage stores uploaded recipe images by relative key, e.g.
// "uploads/recipe/recipe_image_<uuid>.png".
type ImageStorage interface {
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

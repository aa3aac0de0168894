// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the recipe-keeper REST API.
//
// [APIAdapter] hides the transport from callers. The package ships an HTTP
// implementation built on resty ([NewHTTPAPIAdapter]).
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel errors in
// errors.go so that callers can use [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/recipe-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_adapter_mock.go -package=mock

// Catalog names a tag-like collection.
type Catalog string

const (
	CatalogTags        Catalog = "tags"
	CatalogIngredients Catalog = "ingredients"
)

// APIAdapter talks to the recipe-keeper API on behalf of one user.
type APIAdapter interface {
	// SetToken stores the token attached to every authenticated request.
	SetToken(token string)

	// Token returns the stored token, or "" when none is set.
	Token() string

	Version(ctx context.Context) (string, error)

	CreateUser(ctx context.Context, user models.User) (models.UserProfile, error)

	// CreateToken exchanges credentials for a token and stores it via
	// SetToken.
	CreateToken(ctx context.Context, credentials models.Credentials) (string, error)

	GetProfile(ctx context.Context) (models.UserProfile, error)
	UpdateProfile(ctx context.Context, update models.UserUpdate) (models.UserProfile, error)

	ListCatalog(ctx context.Context, catalog Catalog, assignedOnly bool) ([]models.CatalogItem, error)
	CreateCatalogEntry(ctx context.Context, catalog Catalog, name string) (models.CatalogItem, error)
	RenameCatalogEntry(ctx context.Context, catalog Catalog, id int64, name string) (models.CatalogItem, error)
	DeleteCatalogEntry(ctx context.Context, catalog Catalog, id int64) error

	ListRecipes(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error)
	GetRecipe(ctx context.Context, id int64) (models.RecipeDetail, error)
	CreateRecipe(ctx context.Context, in models.RecipeInput) (models.Recipe, error)

	// UpdateRecipe applies a partial update; nil fields are left as is.
	UpdateRecipe(ctx context.Context, id int64, in models.RecipeInput) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, id int64) error
	UploadRecipeImage(ctx context.Context, id int64, filename string, data []byte) (models.RecipeImage, error)
}

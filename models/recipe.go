// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Recipe is the summary projection of a recipe: associations are
// rendered as id lists.
type Recipe struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"-"`
	Title         string  `json:"title"`
	TimeMinutes   int     `json:"time_minutes"`
	Price         Price   `json:"price"`
	Link          string  `json:"link"`
	Image         *string `json:"image"`
	TagIDs        []int64 `json:"tags"`
	IngredientIDs []int64 `json:"ingredients"`
}

// TableName returns the name of the database table
// associated with the Recipe model.
func (r Recipe) TableName() string {
	return "recipes"
}

// RecipeDetail is the retrieve projection of a recipe with nested
// tag and ingredient objects.
type RecipeDetail struct {
	ID          int64        `json:"id"`
	UserID      int64        `json:"-"`
	Title       string       `json:"title"`
	TimeMinutes int          `json:"time_minutes"`
	Price       Price        `json:"price"`
	Link        string       `json:"link"`
	Image       *string      `json:"image"`
	Tags        []Tag        `json:"tags"`
	Ingredients []Ingredient `json:"ingredients"`
}

// RecipeInput is the request body of recipe create and update calls.
//
// Every field is optional at the decoding level; a nil field means the
// key was absent. Create and full update enforce their required fields
// in the validation layer, partial update applies only non-nil fields.
// A non-nil TagIDs or IngredientIDs replaces the whole association set.
type RecipeInput struct {
	Title         *string  `json:"title"`
	TimeMinutes   *int     `json:"time_minutes"`
	Price         *Price   `json:"price"`
	Link          *string  `json:"link"`
	TagIDs        *[]int64 `json:"tags"`
	IngredientIDs *[]int64 `json:"ingredients"`
}

// RecipeFilter narrows a recipe listing. Empty id slices do not filter.
type RecipeFilter struct {
	UserID        int64
	TagIDs        []int64
	IngredientIDs []int64
}

// RecipeImage is the response of an image upload.
type RecipeImage struct {
	ID    int64   `json:"id"`
	Image *string `json:"image"`
}

// ImageUpload is an uploaded image file as received from the client.
type ImageUpload struct {
	Filename string
	Data     []byte
}

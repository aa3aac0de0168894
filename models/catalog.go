// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CatalogItem is the shared shape of the owner-scoped name catalogs
// (tags and ingredients) a recipe can reference.
type CatalogItem struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"-"`
	Name   string `json:"name"`
}

// Tag is a short label attached to recipes, e.g. "Vegan".
type Tag CatalogItem

// Ingredient is a named ingredient referenced by recipes.
type Ingredient CatalogItem

// CatalogEntry is satisfied by the catalog entity types. Both share the
// CatalogItem layout, so values convert freely in either direction.
type CatalogEntry interface {
	Tag | Ingredient
}

// CatalogInput is the request body for creating or updating a catalog
// entry. Name is a pointer so a partial update can tell "absent" from "".
type CatalogInput struct {
	Name *string `json:"name"`
}

// CatalogFilter narrows a catalog listing.
type CatalogFilter struct {
	// UserID is the owner whose rows are listed.
	UserID int64

	// AssignedOnly restricts the listing to entries referenced by at
	// least one of the owner's recipes.
	AssignedOnly bool
}

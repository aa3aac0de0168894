// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/models"
)

var recipeRowColumns = []string{"id", "user_id", "title", "time_minutes", "price", "link", "image"}

func newTestRecipeRepo(t *testing.T) (*recipeRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &recipeRepository{db: db, logger: logger.Nop()}, mock
}

func ptr[T any](v T) *T {
	return &v
}

func expectLinkedIDs(mock sqlmock.Sqlmock, table string, rows *sqlmock.Rows) {
	mock.ExpectQuery(regexp.QuoteMeta("SELECT recipe_id, " + table)).WillReturnRows(rows)
}

func TestRecipeList_FiltersAndAssociations(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM recipes WHERE recipes.user_id = $1 " +
			"AND recipes.id IN (SELECT recipe_id FROM recipe_tags WHERE tag_id IN ($2,$3)) " +
			"AND recipes.id IN (SELECT recipe_id FROM recipe_ingredients WHERE ingredient_id IN ($4)) " +
			"ORDER BY recipes.id DESC",
	)).
		WithArgs(int64(1), int64(10), int64(11), int64(20)).
		WillReturnRows(sqlmock.NewRows(recipeRowColumns).
			AddRow(2, 1, "Soup", 20, "5.5", "", nil).
			AddRow(1, 1, "Cake", 60, "12.00", "https://example.com", "uploads/recipe/a.png"))

	expectLinkedIDs(mock, "tag_id", sqlmock.NewRows([]string{"recipe_id", "tag_id"}).
		AddRow(1, 10).
		AddRow(2, 10).
		AddRow(2, 11))
	expectLinkedIDs(mock, "ingredient_id", sqlmock.NewRows([]string{"recipe_id", "ingredient_id"}).
		AddRow(2, 20))

	recipes, err := repo.List(context.Background(), models.RecipeFilter{
		UserID:        1,
		TagIDs:        []int64{10, 11},
		IngredientIDs: []int64{20},
	})
	require.NoError(t, err)
	require.Len(t, recipes, 2)

	assert.Equal(t, int64(2), recipes[0].ID)
	assert.Equal(t, []int64{10, 11}, recipes[0].TagIDs)
	assert.Equal(t, []int64{20}, recipes[0].IngredientIDs)
	assert.Equal(t, "5.50", recipes[0].Price.StringFixed(2))
	assert.Nil(t, recipes[0].Image)

	assert.Equal(t, []int64{10}, recipes[1].TagIDs)
	assert.Equal(t, []int64{}, recipes[1].IngredientIDs)
	require.NotNil(t, recipes[1].Image)
	assert.Equal(t, "uploads/recipe/a.png", *recipes[1].Image)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeList_Empty(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)

	mock.ExpectQuery("FROM recipes").WillReturnRows(sqlmock.NewRows(recipeRowColumns))

	recipes, err := repo.List(context.Background(), models.RecipeFilter{UserID: 1})
	require.NoError(t, err)
	assert.Empty(t, recipes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeGet_Detail(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM recipes WHERE recipes.id = $1 AND recipes.user_id = $2")).
		WithArgs(int64(3), int64(1)).
		WillReturnRows(sqlmock.NewRows(recipeRowColumns).AddRow(3, 1, "Soup", 20, "5.50", "", nil))
	mock.ExpectQuery(regexp.QuoteMeta("FROM tags JOIN recipe_tags ON recipe_tags.tag_id = tags.id WHERE recipe_tags.recipe_id = $1")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name"}).AddRow(10, 1, "Vegan"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM ingredients JOIN recipe_ingredients")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name"}))

	detail, err := repo.Get(context.Background(), 3, 1)
	require.NoError(t, err)
	assert.Equal(t, "Soup", detail.Title)
	assert.Equal(t, []models.Tag{{ID: 10, UserID: 1, Name: "Vegan"}}, detail.Tags)
	assert.Equal(t, []models.Ingredient{}, detail.Ingredients)
}

func TestRecipeGet_NotFound(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)

	mock.ExpectQuery("FROM recipes").WillReturnRows(sqlmock.NewRows(recipeRowColumns))

	_, err := repo.Get(context.Background(), 3, 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecipeCreate_WithAssociations(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO recipes (user_id,title,time_minutes,price,link) VALUES ($1,$2,$3,$4,$5) RETURNING id",
	)).
		WithArgs(int64(1), "Soup", 20, "5.5", "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT tags.id FROM tags WHERE tags.id IN ($1,$2) AND tags.user_id = $3")).
		WithArgs(int64(11), int64(10), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10).AddRow(11))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO recipe_tags (recipe_id,tag_id) VALUES ($1,$2)")).
		WithArgs(int64(7), int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO recipe_tags (recipe_id,tag_id) VALUES ($1,$2)")).
		WithArgs(int64(7), int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	created, err := repo.Create(context.Background(), models.Recipe{
		UserID:      1,
		Title:       "Soup",
		TimeMinutes: 20,
		Price:       models.MustPrice("5.5"),
		TagIDs:      []int64{11, 10, 11},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, []int64{10, 11}, created.TagIDs)
	assert.Equal(t, []int64{}, created.IngredientIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeCreate_ForeignTagRollsBack(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO recipes").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery("SELECT tags.id FROM tags").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), models.Recipe{
		UserID: 1,
		Title:  "Soup",
		Price:  models.MustPrice("1"),
		TagIDs: []int64{10, 99},
	})

	var refErr *ReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "tags", refErr.Field)
	assert.Equal(t, int64(99), refErr.ID)
	assert.ErrorIs(t, err, ErrInvalidReference)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeCreate_TagDeletedAfterOwnershipCheck(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO recipes").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery("SELECT tags.id FROM tags").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10).AddRow(11))
	mock.ExpectExec("INSERT INTO recipe_tags").
		WithArgs(int64(7), int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO recipe_tags").
		WithArgs(int64(7), int64(11)).
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), models.Recipe{
		UserID: 1,
		Title:  "Soup",
		Price:  models.MustPrice("1"),
		TagIDs: []int64{10, 11},
	})

	var refErr *ReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "tags", refErr.Field)
	assert.Equal(t, int64(11), refErr.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeUpdate_PartialKeepsOtherFields(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FROM recipes WHERE recipes.id").
		WillReturnRows(sqlmock.NewRows(recipeRowColumns).AddRow(3, 1, "Soup", 20, "5.50", "", nil))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE recipes SET title = $1 WHERE recipes.id = $2 AND recipes.user_id = $3")).
		WithArgs("Better soup", int64(3), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM recipe_tags WHERE recipe_id = $1")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	expectLinkedIDs(mock, "tag_id", sqlmock.NewRows([]string{"recipe_id", "tag_id"}))
	expectLinkedIDs(mock, "ingredient_id", sqlmock.NewRows([]string{"recipe_id", "ingredient_id"}).AddRow(3, 20))
	mock.ExpectCommit()

	updated, err := repo.Update(context.Background(), 3, 1, models.RecipeInput{
		Title:  ptr("Better soup"),
		TagIDs: ptr([]int64{}),
	})
	require.NoError(t, err)
	assert.Equal(t, "Better soup", updated.Title)
	assert.Equal(t, 20, updated.TimeMinutes)
	assert.Equal(t, []int64{}, updated.TagIDs)
	assert.Equal(t, []int64{20}, updated.IngredientIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeUpdate_NotFound(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FROM recipes").WillReturnRows(sqlmock.NewRows(recipeRowColumns))
	mock.ExpectRollback()

	_, err := repo.Update(context.Background(), 3, 2, models.RecipeInput{Title: ptr("x")})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeSetImage_ReturnsPrevious(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FROM recipes").
		WillReturnRows(sqlmock.NewRows(recipeRowColumns).AddRow(3, 1, "Soup", 20, "5.50", "", "uploads/recipe/old.png"))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE recipes SET image = $1")).
		WithArgs("uploads/recipe/new.png", int64(3), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	previous, err := repo.SetImage(context.Background(), 3, 1, "uploads/recipe/new.png")
	require.NoError(t, err)
	require.NotNil(t, previous)
	assert.Equal(t, "uploads/recipe/old.png", *previous)
}

func TestRecipeDelete_ReturnsImage(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FROM recipes").
		WillReturnRows(sqlmock.NewRows(recipeRowColumns).AddRow(3, 1, "Soup", 20, "5.50", "", "uploads/recipe/a.png"))
	mock.ExpectExec("DELETE FROM recipe_tags").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM recipe_ingredients").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM recipes WHERE recipes.id = $1 AND recipes.user_id = $2")).
		WithArgs(int64(3), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	image, err := repo.Delete(context.Background(), 3, 1)
	require.NoError(t, err)
	require.NotNil(t, image)
	assert.Equal(t, "uploads/recipe/a.png", *image)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeDelete_CommitError(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FROM recipes").
		WillReturnRows(sqlmock.NewRows(recipeRowColumns).AddRow(3, 1, "Soup", 20, "5.50", "", nil))
	mock.ExpectExec("DELETE FROM recipe_tags").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM recipe_ingredients").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM recipes").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	_, err := repo.Delete(context.Background(), 3, 1)
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

func TestUniqueIDs(t *testing.T) {
	assert.Equal(t, []int64{3, 1, 2}, uniqueIDs([]int64{3, 1, 3, 2, 1}))
	assert.Empty(t, uniqueIDs(nil))
}

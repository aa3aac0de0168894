// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/models"
)

var recipeColumns = []string{
	"recipes.id", "recipes.user_id", "recipes.title", "recipes.time_minutes",
	"recipes.price", "recipes.link", "recipes.image",
}

// recipeRepository is the SQL implementation of [RecipeRepository].
//
// Writes that touch the recipe row and its tag/ingredient links run in a
// single transaction, so a rejected association leaves nothing behind.
type recipeRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewRecipeRepository constructs a [RecipeRepository] backed by db.
func NewRecipeRepository(db *DB, logger *logger.Logger) RecipeRepository {
	logger.Debug().Msg("creating recipe repository")
	return &recipeRepository{
		db:     db,
		logger: logger,
	}
}

// List returns the owner's recipes, newest first. Non-empty filter.TagIDs
// and filter.IngredientIDs each keep recipes linked to any of the listed
// ids; both together must hold. Every recipe appears once.
func (r *recipeRepository) List(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error) {
	log := logger.FromContext(ctx)

	builder := r.db.builder.
		Select(recipeColumns...).
		From(models.Recipe{}.TableName()).
		Where(ownedBy("recipes", filter.UserID))
	if len(filter.TagIDs) > 0 {
		builder = builder.Where(referencesAny(tagsTable, filter.TagIDs))
	}
	if len(filter.IngredientIDs) > 0 {
		builder = builder.Where(referencesAny(ingredientsTable, filter.IngredientIDs))
	}

	query, args, err := builder.OrderBy("recipes.id DESC").ToSql()
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.List").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.List").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	recipes := make([]models.Recipe, 0)
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			log.Err(err).Str("func", "*recipeRepository.List").Msg("error scanning recipe")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		recipes = append(recipes, recipe)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if err = r.loadAssociationIDs(ctx, r.db, recipes); err != nil {
		log.Err(err).Str("func", "*recipeRepository.List").Msg("error loading associations")
		return nil, err
	}

	return recipes, nil
}

// Get returns the owned recipe with its tags and ingredients expanded.
func (r *recipeRepository) Get(ctx context.Context, id, userID int64) (models.RecipeDetail, error) {
	log := logger.FromContext(ctx)

	recipe, err := r.getRecipe(ctx, r.db, id, userID)
	if err != nil {
		return models.RecipeDetail{}, err
	}

	tags, err := listLinked[models.Tag](ctx, r.db, tagsTable, id)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.Get").Msg("error loading tags")
		return models.RecipeDetail{}, err
	}

	ingredients, err := listLinked[models.Ingredient](ctx, r.db, ingredientsTable, id)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.Get").Msg("error loading ingredients")
		return models.RecipeDetail{}, err
	}

	return models.RecipeDetail{
		ID:          recipe.ID,
		UserID:      recipe.UserID,
		Title:       recipe.Title,
		TimeMinutes: recipe.TimeMinutes,
		Price:       recipe.Price,
		Link:        recipe.Link,
		Image:       recipe.Image,
		Tags:        tags,
		Ingredients: ingredients,
	}, nil
}

// Create inserts recipe with its links. Every linked id must name a tag or
// ingredient owned by recipe.UserID, otherwise a [*ReferenceError] is
// returned and nothing is written.
func (r *recipeRepository) Create(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		query, args, err := r.db.builder.
			Insert(recipe.TableName()).
			Columns("user_id", "title", "time_minutes", "price", "link").
			Values(recipe.UserID, recipe.Title, recipe.TimeMinutes, recipe.Price, recipe.Link).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if err = tx.QueryRowContext(ctx, query, args...).Scan(&recipe.ID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if recipe.TagIDs, err = r.link(ctx, tx, tagsTable, recipe.ID, recipe.UserID, recipe.TagIDs); err != nil {
			return err
		}
		recipe.IngredientIDs, err = r.link(ctx, tx, ingredientsTable, recipe.ID, recipe.UserID, recipe.IngredientIDs)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.Create").Msg("error creating recipe")
		return models.Recipe{}, err
	}

	recipe.Image = nil
	return recipe, nil
}

// Update applies the non-nil fields of in to the owned recipe. A non-nil
// association list replaces the stored set entirely.
func (r *recipeRepository) Update(ctx context.Context, id, userID int64, in models.RecipeInput) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	var recipe models.Recipe
	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		current, err := r.getRecipe(ctx, tx, id, userID)
		if err != nil {
			return err
		}
		recipe = current

		builder := r.db.builder.
			Update(recipe.TableName()).
			Where(sq.Eq{"recipes.id": id}).
			Where(ownedBy("recipes", userID))
		changed := false
		if in.Title != nil {
			builder, recipe.Title, changed = builder.Set("title", *in.Title), *in.Title, true
		}
		if in.TimeMinutes != nil {
			builder, recipe.TimeMinutes, changed = builder.Set("time_minutes", *in.TimeMinutes), *in.TimeMinutes, true
		}
		if in.Price != nil {
			builder, recipe.Price, changed = builder.Set("price", *in.Price), *in.Price, true
		}
		if in.Link != nil {
			builder, recipe.Link, changed = builder.Set("link", *in.Link), *in.Link, true
		}

		if changed {
			query, args, err := builder.ToSql()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}

		if in.TagIDs != nil {
			if err = r.unlinkAll(ctx, tx, tagsTable, id); err != nil {
				return err
			}
			if _, err = r.link(ctx, tx, tagsTable, id, userID, *in.TagIDs); err != nil {
				return err
			}
		}
		if in.IngredientIDs != nil {
			if err = r.unlinkAll(ctx, tx, ingredientsTable, id); err != nil {
				return err
			}
			if _, err = r.link(ctx, tx, ingredientsTable, id, userID, *in.IngredientIDs); err != nil {
				return err
			}
		}

		recipes := []models.Recipe{recipe}
		if err = r.loadAssociationIDs(ctx, tx, recipes); err != nil {
			return err
		}
		recipe = recipes[0]

		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).Str("func", "*recipeRepository.Update").Msg("error updating recipe")
		}
		return models.Recipe{}, err
	}

	return recipe, nil
}

// SetImage stores image as the recipe's image path and returns the path it
// replaced, if any.
func (r *recipeRepository) SetImage(ctx context.Context, id, userID int64, image string) (*string, error) {
	log := logger.FromContext(ctx)

	var previous *string
	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		current, err := r.getRecipe(ctx, tx, id, userID)
		if err != nil {
			return err
		}
		previous = current.Image

		query, args, err := r.db.builder.
			Update(current.TableName()).
			Set("image", image).
			Where(sq.Eq{"recipes.id": id}).
			Where(ownedBy("recipes", userID)).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).Str("func", "*recipeRepository.SetImage").Msg("error setting recipe image")
		}
		return nil, err
	}

	return previous, nil
}

// Delete removes the owned recipe with its links and returns the image path
// it held, so the caller can drop the stored file.
func (r *recipeRepository) Delete(ctx context.Context, id, userID int64) (*string, error) {
	log := logger.FromContext(ctx)

	var image *string
	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		current, err := r.getRecipe(ctx, tx, id, userID)
		if err != nil {
			return err
		}
		image = current.Image

		if err = r.unlinkAll(ctx, tx, tagsTable, id); err != nil {
			return err
		}
		if err = r.unlinkAll(ctx, tx, ingredientsTable, id); err != nil {
			return err
		}

		query, args, err := r.db.builder.
			Delete(current.TableName()).
			Where(sq.Eq{"recipes.id": id}).
			Where(ownedBy("recipes", userID)).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).Str("func", "*recipeRepository.Delete").Msg("error deleting recipe")
		}
		return nil, err
	}

	return image, nil
}

func (r *recipeRepository) getRecipe(ctx context.Context, q querier, id, userID int64) (models.Recipe, error) {
	query, args, err := r.db.builder.
		Select(recipeColumns...).
		From(models.Recipe{}.TableName()).
		Where(sq.Eq{"recipes.id": id}).
		Where(ownedBy("recipes", userID)).
		ToSql()
	if err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	recipe, err := scanRecipe(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Recipe{}, ErrNotFound
	}
	if err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return recipe, nil
}

// link checks that every id names a row of table owned by userID and
// attaches them to the recipe. Duplicates are collapsed. The stored ids are
// returned in ascending order.
func (r *recipeRepository) link(ctx context.Context, tx *sql.Tx, table catalogTable, recipeID, userID int64, ids []int64) ([]int64, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return []int64{}, nil
	}

	query, args, err := r.db.builder.
		Select(table.name + ".id").
		From(table.name).
		Where(sq.Eq{table.name + ".id": ids}).
		Where(ownedBy(table.name, userID)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	owned := make(map[int64]struct{}, len(ids))
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		owned[id] = struct{}{}
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	for _, id := range ids {
		if _, ok := owned[id]; !ok {
			return nil, &ReferenceError{Field: table.name, ID: id}
		}
	}

	// One row per statement so a row deleted since the ownership check is
	// reported by its own id.
	for _, id := range ids {
		query, args, err = r.db.builder.
			Insert(table.joinTable).
			Columns("recipe_id", table.joinColumn).
			Values(recipeID, id).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			switch r.db.errorClassificator.Classify(err) {
			case ForeignKeyViolation:
				return nil, &ReferenceError{Field: table.name, ID: id}
			default:
				return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
	}

	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	return sorted, nil
}

func (r *recipeRepository) unlinkAll(ctx context.Context, tx *sql.Tx, table catalogTable, recipeID int64) error {
	query, args, err := r.db.builder.
		Delete(table.joinTable).
		Where(sq.Eq{"recipe_id": recipeID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// loadAssociationIDs fills TagIDs and IngredientIDs of every recipe with two
// queries in total.
func (r *recipeRepository) loadAssociationIDs(ctx context.Context, q querier, recipes []models.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}

	ids := make([]int64, len(recipes))
	for i, recipe := range recipes {
		ids[i] = recipe.ID
	}

	tagIDs, err := r.linkedIDs(ctx, q, tagsTable, ids)
	if err != nil {
		return err
	}
	ingredientIDs, err := r.linkedIDs(ctx, q, ingredientsTable, ids)
	if err != nil {
		return err
	}

	for i := range recipes {
		recipes[i].TagIDs = orEmpty(tagIDs[recipes[i].ID])
		recipes[i].IngredientIDs = orEmpty(ingredientIDs[recipes[i].ID])
	}

	return nil
}

func (r *recipeRepository) linkedIDs(ctx context.Context, q querier, table catalogTable, recipeIDs []int64) (map[int64][]int64, error) {
	query, args, err := r.db.builder.
		Select("recipe_id", table.joinColumn).
		From(table.joinTable).
		Where(sq.Eq{"recipe_id": recipeIDs}).
		OrderBy("recipe_id", table.joinColumn).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	linked := make(map[int64][]int64, len(recipeIDs))
	for rows.Next() {
		var recipeID, id int64
		if err = rows.Scan(&recipeID, &id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		linked[recipeID] = append(linked[recipeID], id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return linked, nil
}

// listLinked returns the catalog rows attached to recipeID ordered by id.
func listLinked[T models.CatalogEntry](ctx context.Context, db *DB, table catalogTable, recipeID int64) ([]T, error) {
	t := table.name
	query, args, err := db.builder.
		Select(t+".id", t+".user_id", t+".name").
		From(t).
		Join(fmt.Sprintf("%[1]s ON %[1]s.%[2]s = %[3]s.id", table.joinTable, table.joinColumn, t)).
		Where(sq.Eq{table.joinTable + ".recipe_id": recipeID}).
		OrderBy(t + ".id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanCatalog[T](rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipe(row rowScanner) (models.Recipe, error) {
	var (
		recipe models.Recipe
		image  sql.NullString
	)
	if err := row.Scan(
		&recipe.ID, &recipe.UserID, &recipe.Title, &recipe.TimeMinutes,
		&recipe.Price.Decimal, &recipe.Link, &image,
	); err != nil {
		return models.Recipe{}, err
	}

	if image.Valid && image.String != "" {
		recipe.Image = &image.String
	}

	return recipe, nil
}

// uniqueIDs drops repeated ids keeping the first occurrence order.
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}

func orEmpty(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/models"
)

// catalogRepository is the SQL implementation of [CatalogRepository]. Tags
// and ingredients share the table layout (id, user_id, name), so a single
// generic type serves both; only the table description differs.
type catalogRepository[T models.CatalogEntry] struct {
	db     *DB
	table  catalogTable
	logger *logger.Logger
}

// NewTagRepository constructs a [TagRepository] over the "tags" table.
func NewTagRepository(db *DB, logger *logger.Logger) TagRepository {
	logger.Debug().Msg("creating tag repository")
	return &catalogRepository[models.Tag]{db: db, table: tagsTable, logger: logger}
}

// NewIngredientRepository constructs an [IngredientRepository] over the
// "ingredients" table.
func NewIngredientRepository(db *DB, logger *logger.Logger) IngredientRepository {
	logger.Debug().Msg("creating ingredient repository")
	return &catalogRepository[models.Ingredient]{db: db, table: ingredientsTable, logger: logger}
}

// List returns the owner's entries ordered by name descending, ties broken
// by id descending. With filter.AssignedOnly only entries referenced by one
// of the owner's recipes are returned, each at most once.
func (r *catalogRepository[T]) List(ctx context.Context, filter models.CatalogFilter) ([]T, error) {
	log := logger.FromContext(ctx)
	t := r.table.name

	builder := r.db.builder.
		Select(t+".id", t+".user_id", t+".name").
		From(t).
		Where(ownedBy(t, filter.UserID))
	if filter.AssignedOnly {
		builder = builder.Where(assignedOnly(r.table))
	}

	query, args, err := builder.OrderBy(t+".name DESC", t+".id DESC").ToSql()
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.List").Str("table", t).Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.List").Str("table", t).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanCatalog[T](rows)
}

// Create inserts a new entry owned by entry's UserID and returns it with its id.
func (r *catalogRepository[T]) Create(ctx context.Context, entry T) (T, error) {
	log := logger.FromContext(ctx)
	item := models.CatalogItem(entry)

	query, args, err := r.db.builder.
		Insert(r.table.name).
		Columns("user_id", "name").
		Values(item.UserID, item.Name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.Create").Str("table", r.table.name).Msg("error building query")
		return entry, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&item.ID); err != nil {
		log.Err(err).Str("func", "*catalogRepository.Create").Str("table", r.table.name).Msg("error inserting entry")
		return entry, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return T(item), nil
}

// Get returns the entry with the given id if userID owns it, [ErrNotFound]
// otherwise.
func (r *catalogRepository[T]) Get(ctx context.Context, id, userID int64) (T, error) {
	log := logger.FromContext(ctx)
	t := r.table.name

	var zero T
	query, args, err := r.db.builder.
		Select(t+".id", t+".user_id", t+".name").
		From(t).
		Where(sq.Eq{t + ".id": id}).
		Where(ownedBy(t, userID)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.Get").Str("table", t).Msg("error building query")
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var item models.CatalogItem
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&item.ID, &item.UserID, &item.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.Get").Str("table", t).Msg("error scanning entry")
		return zero, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return T(item), nil
}

// Update renames the entry identified by entry's ID and UserID. It returns
// [ErrNotFound] when no owned row matches.
func (r *catalogRepository[T]) Update(ctx context.Context, entry T) (T, error) {
	log := logger.FromContext(ctx)
	item := models.CatalogItem(entry)
	t := r.table.name

	query, args, err := r.db.builder.
		Update(t).
		Set("name", item.Name).
		Where(sq.Eq{t + ".id": item.ID}).
		Where(ownedBy(t, item.UserID)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.Update").Str("table", t).Msg("error building query")
		return entry, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffecting(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*catalogRepository.Update").Str("table", t).Msg("error updating entry")
		return entry, err
	}

	return entry, nil
}

// Delete removes the owned entry; recipe links to it go with it through the
// join table's cascading foreign key.
func (r *catalogRepository[T]) Delete(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)
	t := r.table.name

	query, args, err := r.db.builder.
		Delete(t).
		Where(sq.Eq{t + ".id": id}).
		Where(ownedBy(t, userID)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.Delete").Str("table", t).Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffecting(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*catalogRepository.Delete").Str("table", t).Msg("error deleting entry")
		return err
	}

	return nil
}

// execAffecting runs a statement that must touch at least one row.
func (r *catalogRepository[T]) execAffecting(ctx context.Context, query string, args ...any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func scanCatalog[T models.CatalogEntry](rows *sql.Rows) ([]T, error) {
	entries := make([]T, 0)
	for rows.Next() {
		var item models.CatalogItem
		if err := rows.Scan(&item.ID, &item.UserID, &item.Name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, T(item))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

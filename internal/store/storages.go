package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/recipe-keeper/internal/config"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
)

// Storages bundles every repository and the image store over one database
// connection.
type Storages struct {
	DB                   *DB
	UserRepository       UserRepository
	TagRepository        TagRepository
	IngredientRepository IngredientRepository
	RecipeRepository     RecipeRepository
	ImageStorage         ImageStorage
}

// NewStorages connects to the database, applies migrations and builds the
// repositories and the configured image store.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	images, err := NewImageStorage(ctx, cfg.Images, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		DB:                   db,
		UserRepository:       NewUserRepository(db, log),
		TagRepository:        NewTagRepository(db, log),
		IngredientRepository: NewIngredientRepository(db, log),
		RecipeRepository:     NewRecipeRepository(db, log),
		ImageStorage:         images,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	return s.DB.Close()
}

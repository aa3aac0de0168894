package service

import (
	"github.com/MKhiriev/recipe-keeper/internal/config"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/store"
	"github.com/MKhiriev/recipe-keeper/models"
)

type Services struct {
	AuthService       AuthService
	TagService        TagService
	IngredientService IngredientService
	RecipeService     RecipeService
	AppInfoService    AppInfoService
}

// NewServices builds the request-facing services: every domain service is
// wrapped by its validation decorator.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService: NewAuthValidationService(cfg.App.PasswordMinLength).
			Wrap(NewAuthService(storages.UserRepository, cfg.App, logger)),
		TagService: NewCatalogValidationService[models.Tag]().
			Wrap(NewTagService(storages.TagRepository, logger)),
		IngredientService: NewCatalogValidationService[models.Ingredient]().
			Wrap(NewIngredientService(storages.IngredientRepository, logger)),
		RecipeService: NewRecipeValidationService().
			Wrap(NewRecipeService(storages.RecipeRepository, storages.ImageStorage, logger)),
		AppInfoService: appInfoService,
	}, nil
}

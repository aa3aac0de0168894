package service

import (
	"context"

	"github.com/MKhiriev/recipe-keeper/internal/validators"
	"github.com/MKhiriev/recipe-keeper/models"
)

// AuthValidationService validates account requests before handing them to
// the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService(passwordMinLength int) AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewUserValidator(passwordMinLength),
	}
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	if err := v.validator.Validate(ctx, user); err != nil {
		return models.User{}, err
	}

	return v.inner.RegisterUser(ctx, user)
}

// Login rejects blank credentials per field; wrong ones are left to the
// wrapped service.
func (v *AuthValidationService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return models.User{}, err
	}

	return v.inner.Login(ctx, credentials)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	return v.inner.GetProfile(ctx, userID)
}

func (v *AuthValidationService) UpdateProfile(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.User{}, err
	}

	return v.inner.UpdateProfile(ctx, userID, update)
}

func (v *AuthValidationService) CreateSuperuser(ctx context.Context, user models.User) (models.User, error) {
	if err := v.validator.Validate(ctx, user); err != nil {
		return models.User{}, err
	}

	return v.inner.CreateSuperuser(ctx, user)
}

func (v *AuthValidationService) Wrap(wrapper AuthService) AuthService {
	v.inner = wrapper
	return v
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/recipe-keeper/internal/config"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/store"
	"github.com/MKhiriev/recipe-keeper/internal/utils"
	"github.com/MKhiriev/recipe-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles account creation, credential verification, profile changes and
// the JWT token lifecycle. Passwords are stored as bcrypt hashes.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service does no input validation; wrap it with
// NewAuthValidationService for request-facing use.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates an active regular account. The email is normalised
// and the password replaced by its hash before persistence.
//
// A taken email is reported as a [models.ValidationError] on "email".
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	user.IsActive = true
	user.IsStaff = false
	user.IsSuperuser = false

	return a.createUser(ctx, user)
}

// CreateSuperuser creates an active account with staff and superuser flags.
func (a *authService) CreateSuperuser(ctx context.Context, user models.User) (models.User, error) {
	user.IsActive = true
	user.IsStaff = true
	user.IsSuperuser = true

	return a.createUser(ctx, user)
}

// Login authenticates an account by email and password.
//
// Unknown email, wrong password and inactive account all yield
// ErrInvalidCredentials so callers cannot probe which emails exist.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, normalizeEmail(credentials.Email))
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(foundUser.PasswordHash, credentials.Password) {
		log.Info().Int64("id", foundUser.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	if !foundUser.IsActive {
		log.Info().Int64("id", foundUser.ID).Msg("inactive user tried to log in")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string and checks that its user
// still exists and is active.
//
// Any validation failure (expired, wrong issuer, wrong algorithm, malformed,
// deleted or deactivated user) is normalised to ErrTokenIsExpiredOrInvalid so
// that callers do not need to inspect low-level JWT errors. Other lookup
// failures are returned wrapped.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.ParseToken").Int64("id", token.UserID).Msg("token user lookup failed")
		return models.Token{}, fmt.Errorf("token user lookup failed: %w", err)
	}
	if !user.IsActive {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// GetProfile returns the account of userID.
func (a *authService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.GetProfile").Int64("id", userID).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}

// UpdateProfile applies the non-nil fields of update to the account. A new
// password is hashed; a new email is normalised and must stay unique.
func (a *authService) UpdateProfile(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.GetProfile(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	if update.Email != nil {
		user.Email = normalizeEmail(*update.Email)
	}
	if update.Username != nil {
		user.Username = strings.TrimSpace(*update.Username)
	}
	if update.Password != nil {
		if user.PasswordHash, err = hashPassword(*update.Password); err != nil {
			return models.User{}, err
		}
	}

	updated, err := a.userRepository.UpdateUser(ctx, user)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.User{}, models.NewValidationError("email", MsgEmailTaken)
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.UpdateProfile").Int64("id", userID).Msg("user update failed")
		return models.User{}, fmt.Errorf("user update failed: %w", err)
	}

	return updated, nil
}

func (a *authService) createUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var err error
	user.Email = normalizeEmail(user.Email)
	user.Username = strings.TrimSpace(user.Username)
	if user.PasswordHash, err = hashPassword(user.Password); err != nil {
		return models.User{}, err
	}
	user.Password = ""

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.User{}, models.NewValidationError("email", MsgEmailTaken)
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.createUser").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// hashPassword reports bcrypt's input limit as a field error.
func hashPassword(password string) (string, error) {
	hash, err := utils.HashPassword(password)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", models.NewValidationError("password", MsgPasswordTooLong)
	}
	return hash, err
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

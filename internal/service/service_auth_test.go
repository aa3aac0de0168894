package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/recipe-keeper/internal/config"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/mock"
	"github.com/MKhiriev/recipe-keeper/internal/store"
	"github.com/MKhiriev/recipe-keeper/internal/utils"
	"github.com/MKhiriev/recipe-keeper/models"
)

var testAppConfig = config.App{
	TokenSignKey:      "test-sign-key",
	TokenIssuer:       "recipe-keeper-test",
	TokenDuration:     time.Hour,
	PasswordMinLength: 5,
	Version:           "test",
}

func newTestAuthSvc(t *testing.T) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	return NewAuthService(repo, testAppConfig, logger.Nop()), repo
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return hash
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_NormalisesAndHashes(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "john@example.com", u.Email)
			assert.Empty(t, u.Password, "plaintext password must not reach the store")
			assert.True(t, utils.CheckPassword(u.PasswordHash, "secret1"))
			assert.True(t, u.IsActive)
			assert.False(t, u.IsStaff)
			assert.False(t, u.IsSuperuser)
			u.ID = 1
			return u, nil
		},
	)

	user, err := svc.RegisterUser(ctx, models.User{Email: "  John@Example.COM ", Password: "secret1", Username: "john"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, models.UserProfile{Email: "john@example.com", Username: "john"}, user.Profile())
}

func TestAuthService_RegisterUser_EmailTaken(t *testing.T) {
	svc, repo := newTestAuthSvc(t)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.User{Email: "a@b.co", Password: "secret1"})

	var verr models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{MsgEmailTaken}, verr["email"])
}

func TestAuthService_RegisterUser_PasswordTooLong(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	_, err := svc.RegisterUser(context.Background(), models.User{Email: "a@b.co", Password: strings.Repeat("x", 73)})

	var verr models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{MsgPasswordTooLong}, verr["password"])
}

func TestAuthService_CreateSuperuser_SetsFlags(t *testing.T) {
	svc, repo := newTestAuthSvc(t)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.True(t, u.IsStaff)
			assert.True(t, u.IsSuperuser)
			assert.True(t, u.IsActive)
			return u, nil
		},
	)

	_, err := svc.CreateSuperuser(context.Background(), models.User{Email: "admin@example.com", Password: "secret1"})
	require.NoError(t, err)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	hash := mustHash(t, "secret1")

	tests := []struct {
		name     string
		found    models.User
		findErr  error
		password string
		wantErr  error
	}{
		{
			name:     "success",
			found:    models.User{ID: 1, Email: "john@example.com", PasswordHash: hash, IsActive: true},
			password: "secret1",
		},
		{
			name:     "wrong password",
			found:    models.User{ID: 1, PasswordHash: hash, IsActive: true},
			password: "wrong",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			findErr:  store.ErrNoUserWasFound,
			password: "secret1",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "inactive user",
			found:    models.User{ID: 1, PasswordHash: hash, IsActive: false},
			password: "secret1",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "store failure",
			findErr:  store.ErrScanningRow,
			password: "secret1",
			wantErr:  store.ErrScanningRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestAuthSvc(t)

			repo.EXPECT().FindUserByEmail(gomock.Any(), "john@example.com").Return(tt.found, tt.findErr)

			user, err := svc.Login(context.Background(), models.Credentials{Email: "John@example.com", Password: tt.password})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), user.ID)
		})
	}
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_CreateAndParseToken(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{ID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	repo.EXPECT().FindUserByID(ctx, int64(42)).Return(models.User{ID: 42, IsActive: true}, nil)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_ParseToken_UserGone(t *testing.T) {
	tests := []struct {
		name    string
		user    models.User
		findErr error
		wantErr error
	}{
		{
			name:    "deactivated user",
			user:    models.User{ID: 42, IsActive: false},
			wantErr: ErrTokenIsExpiredOrInvalid,
		},
		{
			name:    "deleted user",
			findErr: store.ErrNoUserWasFound,
			wantErr: ErrTokenIsExpiredOrInvalid,
		},
		{
			name:    "lookup failure",
			findErr: store.ErrExecutingQuery,
			wantErr: store.ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestAuthSvc(t)
			ctx := context.Background()

			token, err := svc.CreateToken(ctx, models.User{ID: 42})
			require.NoError(t, err)

			repo.EXPECT().FindUserByID(ctx, int64(42)).Return(tt.user, tt.findErr)

			_, err = svc.ParseToken(ctx, token.SignedString)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantErr == store.ErrExecutingQuery {
				assert.NotErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
			}
		})
	}
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	_, err := svc.ParseToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_ForeignIssuer(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	foreign, err := utils.GenerateJWTToken("someone-else", 1, time.Hour, testAppConfig.TokenSignKey)
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), foreign.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

// ── Profile ──────────────────────────────────────────────────────────────────

func TestAuthService_UpdateProfile_Partial(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	current := models.User{ID: 3, Email: "old@example.com", Username: "old", PasswordHash: "old-hash", IsActive: true}
	repo.EXPECT().FindUserByID(ctx, int64(3)).Return(current, nil)
	repo.EXPECT().UpdateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "old@example.com", u.Email, "absent email must be kept")
			assert.Equal(t, "new", u.Username)
			assert.True(t, utils.CheckPassword(u.PasswordHash, "newpass"))
			return u, nil
		},
	)

	username, password := "new", "newpass"
	updated, err := svc.UpdateProfile(ctx, 3, models.UserUpdate{Username: &username, Password: &password})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Username)
}

func TestAuthService_UpdateProfile_EmailTaken(t *testing.T) {
	svc, repo := newTestAuthSvc(t)

	repo.EXPECT().FindUserByID(gomock.Any(), int64(3)).Return(models.User{ID: 3}, nil)
	repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	email := "Taken@example.com"
	_, err := svc.UpdateProfile(context.Background(), 3, models.UserUpdate{Email: &email})

	var verr models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr, "email")
}

func TestAuthService_GetProfile_Missing(t *testing.T) {
	svc, repo := newTestAuthSvc(t)

	repo.EXPECT().FindUserByID(gomock.Any(), int64(9)).Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.GetProfile(context.Background(), 9)
	assert.True(t, errors.Is(err, store.ErrNoUserWasFound))
}

// ── Validation decorator ─────────────────────────────────────────────────────

func TestAuthValidationService_RejectsShortPasswordWithoutStoring(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	// no CreateUser expectation: the store must not be reached
	svc := NewAuthValidationService(5).Wrap(NewAuthService(repo, testAppConfig, logger.Nop()))

	_, err := svc.RegisterUser(context.Background(), models.User{Email: "a@b.co", Password: "abc"})

	var verr models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr, "password")
}

func TestAuthValidationService_BlankCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthValidationService(5).Wrap(NewAuthService(repo, testAppConfig, logger.Nop()))

	_, err := svc.Login(context.Background(), models.Credentials{})

	var verr models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr, "email")
	assert.Contains(t, verr, "password")
}

func TestAuthValidationService_UpdateProfile_InvalidEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthValidationService(5).Wrap(NewAuthService(repo, testAppConfig, logger.Nop()))

	email := "not-an-email"
	_, err := svc.UpdateProfile(context.Background(), 1, models.UserUpdate{Email: &email})

	var verr models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr, "email")
}

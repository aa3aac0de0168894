package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/MKhiriev/recipe-keeper/internal/config"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/service"
	"github.com/MKhiriev/recipe-keeper/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn    func(ctx context.Context, user models.User) (models.User, error)
	loginFn           func(ctx context.Context, credentials models.Credentials) (models.User, error)
	createTokenFn     func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn      func(ctx context.Context, tokenString string) (models.Token, error)
	getProfileFn      func(ctx context.Context, userID int64) (models.User, error)
	updateProfileFn   func(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
	createSuperuserFn func(ctx context.Context, user models.User) (models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return m.loginFn(ctx, credentials)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

// ParseToken accepts testToken for testUserID unless parseTokenFn is set.
func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	if tokenString != testToken {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return models.Token{UserID: testUserID}, nil
}

func (m *mockAuthService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	return m.getProfileFn(ctx, userID)
}

func (m *mockAuthService) UpdateProfile(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	return m.updateProfileFn(ctx, userID, update)
}

func (m *mockAuthService) CreateSuperuser(ctx context.Context, user models.User) (models.User, error) {
	return m.createSuperuserFn(ctx, user)
}

// mockCatalogService implements service.CatalogService[T].
type mockCatalogService[T models.CatalogEntry] struct {
	listFn    func(ctx context.Context, filter models.CatalogFilter) ([]T, error)
	createFn  func(ctx context.Context, userID int64, in models.CatalogInput) (T, error)
	getFn     func(ctx context.Context, id, userID int64) (T, error)
	updateFn  func(ctx context.Context, id, userID int64, in models.CatalogInput) (T, error)
	replaceFn func(ctx context.Context, id, userID int64, in models.CatalogInput) (T, error)
	deleteFn  func(ctx context.Context, id, userID int64) error
}

func (m *mockCatalogService[T]) List(ctx context.Context, filter models.CatalogFilter) ([]T, error) {
	return m.listFn(ctx, filter)
}

func (m *mockCatalogService[T]) Create(ctx context.Context, userID int64, in models.CatalogInput) (T, error) {
	return m.createFn(ctx, userID, in)
}

func (m *mockCatalogService[T]) Get(ctx context.Context, id, userID int64) (T, error) {
	return m.getFn(ctx, id, userID)
}

func (m *mockCatalogService[T]) Update(ctx context.Context, id, userID int64, in models.CatalogInput) (T, error) {
	return m.updateFn(ctx, id, userID, in)
}

func (m *mockCatalogService[T]) Replace(ctx context.Context, id, userID int64, in models.CatalogInput) (T, error) {
	return m.replaceFn(ctx, id, userID, in)
}

func (m *mockCatalogService[T]) Delete(ctx context.Context, id, userID int64) error {
	return m.deleteFn(ctx, id, userID)
}

// mockRecipeService implements service.RecipeService.
type mockRecipeService struct {
	listFn        func(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error)
	getFn         func(ctx context.Context, id, userID int64) (models.RecipeDetail, error)
	createFn      func(ctx context.Context, userID int64, in models.RecipeInput) (models.Recipe, error)
	updateFn      func(ctx context.Context, id, userID int64, in models.RecipeInput) (models.Recipe, error)
	replaceFn     func(ctx context.Context, id, userID int64, in models.RecipeInput) (models.Recipe, error)
	deleteFn      func(ctx context.Context, id, userID int64) error
	uploadImageFn func(ctx context.Context, id, userID int64, upload models.ImageUpload) (models.RecipeImage, error)
}

func (m *mockRecipeService) List(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error) {
	return m.listFn(ctx, filter)
}

func (m *mockRecipeService) Get(ctx context.Context, id, userID int64) (models.RecipeDetail, error) {
	return m.getFn(ctx, id, userID)
}

func (m *mockRecipeService) Create(ctx context.Context, userID int64, in models.RecipeInput) (models.Recipe, error) {
	return m.createFn(ctx, userID, in)
}

func (m *mockRecipeService) Update(ctx context.Context, id, userID int64, in models.RecipeInput) (models.Recipe, error) {
	return m.updateFn(ctx, id, userID, in)
}

func (m *mockRecipeService) Replace(ctx context.Context, id, userID int64, in models.RecipeInput) (models.Recipe, error) {
	return m.replaceFn(ctx, id, userID, in)
}

func (m *mockRecipeService) Delete(ctx context.Context, id, userID int64) error {
	return m.deleteFn(ctx, id, userID)
}

func (m *mockRecipeService) UploadImage(ctx context.Context, id, userID int64, upload models.ImageUpload) (models.RecipeImage, error) {
	return m.uploadImageFn(ctx, id, userID, upload)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testToken  = "good-token"
	testUserID = int64(7)
)

var errUnexpected = errors.New("unexpected")

// testServices returns services whose auth accepts testToken. Fields left
// nil in the argument are filled with empty mocks.
func testServices(s service.Services) *service.Services {
	if s.AuthService == nil {
		s.AuthService = &mockAuthService{}
	}
	if s.TagService == nil {
		s.TagService = &mockCatalogService[models.Tag]{}
	}
	if s.IngredientService == nil {
		s.IngredientService = &mockCatalogService[models.Ingredient]{}
	}
	if s.RecipeService == nil {
		s.RecipeService = &mockRecipeService{}
	}
	if s.AppInfoService == nil {
		s.AppInfoService = &mockAppInfoService{version: "test-version"}
	}
	return &s
}

func testServerConfig() config.Server {
	return config.Server{HTTPAddress: "localhost:8080"}
}

func testImagesConfig() config.Images {
	return config.Images{Backend: config.ImagesBackendS3, MaxUploadSize: 1 << 20}
}

func newTestRouter(s service.Services) http.Handler {
	return NewHandler(testServices(s), testServerConfig(), testImagesConfig(), logger.Nop()).Init()
}

// serve sends an authenticated request with an optional JSON body.
func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", "Bearer "+testToken)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

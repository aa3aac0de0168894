package adapter

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/recipe-keeper/internal/config"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/utils"
	"github.com/MKhiriev/recipe-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	pathVersion     = "/api/version"
	pathUserCreate  = "/api/user/create"
	pathUserToken   = "/api/user/token"
	pathUserMe      = "/api/user/me"
	pathCatalogBase = "/api/recipe/"
	pathRecipes     = "/api/recipe/recipes"

	imageFormField = "image"
)

type httpAPIAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAPIAdapter constructs an HTTP/REST implementation of [APIAdapter].
// cfg.HTTPAddress may omit the scheme, "http" is assumed then. cfg.Token,
// when set, is attached to authenticated requests right away.
func NewHTTPAPIAdapter(cfg config.Adapter, logger *logger.Logger) (APIAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpAPIAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	a.SetToken(cfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAPIAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Version reads the plain-text GET /api/version response.
func (h *httpAPIAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get(pathVersion)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpAPIAdapter) CreateUser(ctx context.Context, user models.User) (models.UserProfile, error) {
	var profile models.UserProfile

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(user).
		SetResult(&profile).
		Post(pathUserCreate)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserProfile{}, err
	}

	return profile, nil
}

// CreateToken posts the credentials to POST /api/user/token. On success the
// returned token is stored for subsequent requests.
func (h *httpAPIAdapter) CreateToken(ctx context.Context, credentials models.Credentials) (string, error) {
	var token models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		SetResult(&token).
		Post(pathUserToken)
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if token.Token == "" {
		return "", fmt.Errorf("create token: empty token in response")
	}

	h.SetToken(token.Token)
	return token.Token, nil
}

func (h *httpAPIAdapter) GetProfile(ctx context.Context) (models.UserProfile, error) {
	var profile models.UserProfile

	resp, err := h.authedRequest(ctx).SetResult(&profile).Get(pathUserMe)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("get profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserProfile{}, err
	}

	return profile, nil
}

func (h *httpAPIAdapter) UpdateProfile(ctx context.Context, update models.UserUpdate) (models.UserProfile, error) {
	var profile models.UserProfile

	resp, err := h.authedRequest(ctx).
		SetBody(update).
		SetResult(&profile).
		Patch(pathUserMe)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserProfile{}, err
	}

	return profile, nil
}

func (h *httpAPIAdapter) ListCatalog(ctx context.Context, catalog Catalog, assignedOnly bool) ([]models.CatalogItem, error) {
	var items []models.CatalogItem

	req := h.authedRequest(ctx).SetResult(&items)
	if assignedOnly {
		req.SetQueryParam("assigned_only", "1")
	}

	resp, err := req.Get(catalogPath(catalog))
	if err != nil {
		return nil, fmt.Errorf("list %s request: %w", catalog, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return items, nil
}

func (h *httpAPIAdapter) CreateCatalogEntry(ctx context.Context, catalog Catalog, name string) (models.CatalogItem, error) {
	var item models.CatalogItem

	resp, err := h.authedRequest(ctx).
		SetBody(models.CatalogInput{Name: &name}).
		SetResult(&item).
		Post(catalogPath(catalog))
	if err != nil {
		return models.CatalogItem{}, fmt.Errorf("create %s request: %w", catalog, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CatalogItem{}, err
	}

	return item, nil
}

func (h *httpAPIAdapter) RenameCatalogEntry(ctx context.Context, catalog Catalog, id int64, name string) (models.CatalogItem, error) {
	var item models.CatalogItem

	resp, err := h.authedRequest(ctx).
		SetBody(models.CatalogInput{Name: &name}).
		SetResult(&item).
		Patch(catalogPath(catalog) + "/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.CatalogItem{}, fmt.Errorf("rename %s request: %w", catalog, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CatalogItem{}, err
	}

	return item, nil
}

func (h *httpAPIAdapter) DeleteCatalogEntry(ctx context.Context, catalog Catalog, id int64) error {
	resp, err := h.authedRequest(ctx).Delete(catalogPath(catalog) + "/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("delete %s request: %w", catalog, err)
	}

	return mapHTTPError(resp)
}

// ListRecipes sends the filter ids as comma-separated tags and ingredients
// query parameters. filter.UserID is ignored, the server scopes by token.
func (h *httpAPIAdapter) ListRecipes(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error) {
	var recipes []models.Recipe

	req := h.authedRequest(ctx).SetResult(&recipes)
	if len(filter.TagIDs) > 0 {
		req.SetQueryParam("tags", joinIDs(filter.TagIDs))
	}
	if len(filter.IngredientIDs) > 0 {
		req.SetQueryParam("ingredients", joinIDs(filter.IngredientIDs))
	}

	resp, err := req.Get(pathRecipes)
	if err != nil {
		return nil, fmt.Errorf("list recipes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return recipes, nil
}

func (h *httpAPIAdapter) GetRecipe(ctx context.Context, id int64) (models.RecipeDetail, error) {
	var recipe models.RecipeDetail

	resp, err := h.authedRequest(ctx).SetResult(&recipe).Get(recipePath(id))
	if err != nil {
		return models.RecipeDetail{}, fmt.Errorf("get recipe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RecipeDetail{}, err
	}

	return recipe, nil
}

func (h *httpAPIAdapter) CreateRecipe(ctx context.Context, in models.RecipeInput) (models.Recipe, error) {
	var recipe models.Recipe

	resp, err := h.authedRequest(ctx).
		SetBody(in).
		SetResult(&recipe).
		Post(pathRecipes)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("create recipe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Recipe{}, err
	}

	return recipe, nil
}

func (h *httpAPIAdapter) UpdateRecipe(ctx context.Context, id int64, in models.RecipeInput) (models.Recipe, error) {
	var recipe models.Recipe

	resp, err := h.authedRequest(ctx).
		SetBody(omitNil(in)).
		SetResult(&recipe).
		Patch(recipePath(id))
	if err != nil {
		return models.Recipe{}, fmt.Errorf("update recipe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Recipe{}, err
	}

	return recipe, nil
}

func (h *httpAPIAdapter) DeleteRecipe(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).Delete(recipePath(id))
	if err != nil {
		return fmt.Errorf("delete recipe request: %w", err)
	}

	return mapHTTPError(resp)
}

// UploadRecipeImage sends data as the "image" part of a multipart form.
func (h *httpAPIAdapter) UploadRecipeImage(ctx context.Context, id int64, filename string, data []byte) (models.RecipeImage, error) {
	var image models.RecipeImage

	resp, err := h.authedRequest(ctx).
		SetFileReader(imageFormField, filename, bytes.NewReader(data)).
		SetResult(&image).
		Post(recipePath(id) + "/upload-image")
	if err != nil {
		return models.RecipeImage{}, fmt.Errorf("upload image request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RecipeImage{}, err
	}

	h.logger.Debug().Int64("recipe_id", id).Int("size", len(data)).Msg("recipe image uploaded")
	return image, nil
}

func (h *httpAPIAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthScheme("Bearer").SetAuthToken(token)
	}
	return req
}

func catalogPath(catalog Catalog) string {
	return pathCatalogBase + string(catalog)
}

func recipePath(id int64) string {
	return pathRecipes + "/" + strconv.FormatInt(id, 10)
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}

// omitNil turns a partial update into a map so that unset fields are left
// out of the body instead of being sent as null.
func omitNil(in models.RecipeInput) map[string]any {
	body := make(map[string]any)
	if in.Title != nil {
		body["title"] = *in.Title
	}
	if in.TimeMinutes != nil {
		body["time_minutes"] = *in.TimeMinutes
	}
	if in.Price != nil {
		body["price"] = *in.Price
	}
	if in.Link != nil {
		body["link"] = *in.Link
	}
	if in.TagIDs != nil {
		body["tags"] = *in.TagIDs
	}
	if in.IngredientIDs != nil {
		body["ingredients"] = *in.IngredientIDs
	}
	return body
}

package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/MKhiriev/recipe-keeper/internal/app"
	"github.com/MKhiriev/recipe-keeper/internal/config"
	"github.com/MKhiriev/recipe-keeper/models"
)

// Init builds the router with every API route and the middleware chain.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withTraceID,
		h.withLogging,
		middleware.Recoverer,
		middleware.StripSlashes,
		withSecureHeaders,
		middleware.Compress(5, "application/json", "text/plain"),
	)
	if h.server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.server.RequestTimeout))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed(router))

	router.Get("/api/version", h.getServerVersion)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(h.authRateLimit())
		r.Post("/api/user/create", h.createUser)
		r.Post("/api/user/token", h.createToken)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user/me", h.getProfile)
		r.Put("/api/user/me", h.replaceProfile)
		r.Patch("/api/user/me", h.updateProfile)

		newCatalogHandler[models.Tag](h.services.TagService).register(r, "/api/recipe/tags")
		newCatalogHandler[models.Ingredient](h.services.IngredientService).register(r, "/api/recipe/ingredients")

		r.Get("/api/recipe/recipes", h.listRecipes)
		r.Post("/api/recipe/recipes", h.createRecipe)
		r.Get("/api/recipe/recipes/{id}", h.getRecipe)
		r.Put("/api/recipe/recipes/{id}", h.replaceRecipe)
		r.Patch("/api/recipe/recipes/{id}", h.updateRecipe)
		r.Delete("/api/recipe/recipes/{id}", h.deleteRecipe)
		r.Post("/api/recipe/recipes/{id}/upload-image", h.uploadRecipeImage)
	})

	if h.images.Backend == config.ImagesBackendLocal && h.images.MediaRoot != "" {
		router.Handle("/media/*", mediaHandler(h.images.MediaRoot))
	}

	return router
}

// authRateLimit limits signup and token requests per client IP. A
// non-positive limit disables it.
func (h *Handler) authRateLimit() func(http.Handler) http.Handler {
	if h.server.AuthRateLimit <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return httprate.Limit(
		h.server.AuthRateLimit,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
			writeDetail(w, app.MsgThrottled, http.StatusTooManyRequests)
		}),
	)
}

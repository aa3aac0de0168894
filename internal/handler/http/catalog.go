package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/service"
	"github.com/MKhiriev/recipe-keeper/internal/utils"
	"github.com/MKhiriev/recipe-keeper/models"
)

// catalogHandler serves the tag and ingredient endpoints, which differ only
// in the service behind them.
type catalogHandler[T models.CatalogEntry] struct {
	service service.CatalogService[T]
}

func newCatalogHandler[T models.CatalogEntry](svc service.CatalogService[T]) catalogHandler[T] {
	return catalogHandler[T]{service: svc}
}

// register adds the collection routes at pattern and the item routes
// below it.
func (c catalogHandler[T]) register(r chi.Router, pattern string) {
	r.Get(pattern, c.list)
	r.Post(pattern, c.create)
	r.Get(pattern+"/{id}", c.get)
	r.Put(pattern+"/{id}", c.replace)
	r.Patch(pattern+"/{id}", c.update)
	r.Delete(pattern+"/{id}", c.delete)
}

func (c catalogHandler[T]) list(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	assignedOnly, err := assignedOnlyParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	entries, err := c.service.List(r.Context(), models.CatalogFilter{UserID: userID, AssignedOnly: assignedOnly})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (c catalogHandler[T]) create(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var in models.CatalogInput
	if err = decodeJSON(r, &in); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "catalogHandler.create").Msg("invalid request body")
		writeError(w, r, err)
		return
	}

	entry, err := c.service.Create(r.Context(), userID, in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, entry, http.StatusCreated)
}

func (c catalogHandler[T]) get(w http.ResponseWriter, r *http.Request) {
	userID, id, err := ownedID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	entry, err := c.service.Get(r.Context(), id, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

func (c catalogHandler[T]) update(w http.ResponseWriter, r *http.Request) {
	c.save(w, r, c.service.Update)
}

func (c catalogHandler[T]) replace(w http.ResponseWriter, r *http.Request) {
	c.save(w, r, c.service.Replace)
}

func (c catalogHandler[T]) save(w http.ResponseWriter, r *http.Request, apply func(ctx context.Context, id, userID int64, in models.CatalogInput) (T, error)) {
	userID, id, err := ownedID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var in models.CatalogInput
	if err = decodeJSON(r, &in); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "catalogHandler.save").Msg("invalid request body")
		writeError(w, r, err)
		return
	}

	entry, err := apply(r.Context(), id, userID, in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

func (c catalogHandler[T]) delete(w http.ResponseWriter, r *http.Request) {
	userID, id, err := ownedID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = c.service.Delete(r.Context(), id, userID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ownedID returns the caller id and the {id} path parameter.
func ownedID(r *http.Request) (userID, id int64, err error) {
	if userID, err = userIDFromRequest(r); err != nil {
		return 0, 0, err
	}
	if id, err = pathID(r); err != nil {
		return 0, 0, err
	}
	return userID, id, nil
}

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/recipe-keeper/internal/app"
	"github.com/MKhiriev/recipe-keeper/internal/store"
	"github.com/MKhiriev/recipe-keeper/models"
)

const (
	queryAssignedOnly = "assigned_only"
	queryTags         = "tags"
	queryIngredients  = "ingredients"
)

// jsonError carries a body that is not valid JSON.
type jsonError struct {
	cause error
}

func (e *jsonError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidJSON, e.cause)
}

func (e *jsonError) Unwrap() []error {
	return []error{ErrInvalidJSON, e.cause}
}

// decodeJSON decodes the request body into v. An empty body leaves v
// untouched. A value of the wrong type is reported as a field error, any
// other decoding failure as a *jsonError.
func decodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		field, _, _ := strings.Cut(typeErr.Field, ".")
		return models.NewValidationError(field, typeMessage(typeErr.Type))
	}

	return &jsonError{cause: err}
}

func typeMessage(t reflect.Type) string {
	if t == nil {
		return app.MsgExpectedString
	}
	if t == reflect.TypeFor[models.Price]() {
		return app.MsgExpectedNumber
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return app.MsgExpectedInteger
	case reflect.Float32, reflect.Float64:
		return app.MsgExpectedNumber
	case reflect.Bool:
		return app.MsgExpectedBoolean
	case reflect.Slice, reflect.Array:
		return app.MsgExpectedList
	default:
		return app.MsgExpectedString
	}
}

// pathID returns the {id} URL parameter. Ids that cannot name a row are
// reported as store.ErrNotFound.
func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id %q", store.ErrNotFound, raw)
	}
	return id, nil
}

// assignedOnlyParam parses ?assigned_only=0|1. Absent means 0.
func assignedOnlyParam(r *http.Request) (bool, error) {
	switch raw := r.URL.Query().Get(queryAssignedOnly); raw {
	case "", "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, models.NewValidationError(queryAssignedOnly, fmt.Sprintf(app.MsgInvalidChoice, raw))
	}
}

// idsParam parses a comma separated id list such as ?tags=1,2.
func idsParam(r *http.Request, name string) ([]int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, models.NewValidationError(name, app.MsgExpectedInteger)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

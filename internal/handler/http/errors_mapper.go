package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/recipe-keeper/internal/app"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/service"
	"github.com/MKhiriev/recipe-keeper/internal/store"
	"github.com/MKhiriev/recipe-keeper/internal/utils"
	"github.com/MKhiriev/recipe-keeper/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	ErrNoUserInContext:                 http.StatusUnauthorized,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrInvalidReference:   http.StatusBadRequest,
	store.ErrNoUserWasFound:     http.StatusUnauthorized,
	store.ErrNotFound:           http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
	store.ErrSavingImage:          http.StatusInternalServerError,
	store.ErrDeletingImage:        http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError renders err. Validation errors keep their field map, bad
// credentials become a non-field error. Everything else is reduced to a
// detail message matching its status.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr models.ValidationError
	if errors.As(err, &validationErr) {
		utils.WriteJSON(w, validationErr, http.StatusBadRequest)
		return
	}
	var jsonErr *jsonError
	if errors.As(err, &jsonErr) {
		writeDetail(w, fmt.Sprintf(app.MsgMalformedJSON, jsonErr.cause), http.StatusBadRequest)
		return
	}
	if errors.Is(err, service.ErrInvalidCredentials) {
		utils.WriteJSON(w, models.NewValidationError(models.NonFieldErrors, service.MsgInvalidCredentials), http.StatusBadRequest)
		return
	}

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("func", "writeError").Msg("request failed")
	}
	writeDetail(w, detailFromStatus(status), status)
}

func writeDetail(w http.ResponseWriter, detail string, status int) {
	utils.WriteJSON(w, models.ErrorResponse{Detail: detail}, status)
}

func detailFromStatus(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return app.MsgInvalidToken
	case http.StatusNotFound:
		return app.MsgNotFound
	case http.StatusRequestEntityTooLarge:
		return app.MsgRequestTooLarge
	case http.StatusInternalServerError:
		return app.MsgServerError
	default:
		return http.StatusText(status) + "."
	}
}

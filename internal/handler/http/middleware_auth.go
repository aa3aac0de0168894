package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/recipe-keeper/internal/app"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/service"
	"github.com/MKhiriev/recipe-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces token authentication.
//
// It reads the "Authorization" header ("Bearer <jwt>" or "Token <jwt>"),
// validates the token via [service.AuthService.ParseToken] and stores the
// caller's id in the request context under [utils.UserIDCtxKey].
//
// A missing header, a malformed one and an invalid or expired token are all
// rejected with 401 and a JSON detail. So is a token of a deleted or
// deactivated user.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Str("func", "*Handler.auth").Send()
			unauthorized(w, app.MsgNotAuthenticated)
			return
		}

		tokenString, err := utils.ParseAuthorizationHeader(authHeader)
		if err != nil {
			log.Err(err).Str("func", "*Handler.auth").Msg("malformed authorization header")
			unauthorized(w, app.MsgInvalidToken)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if errors.Is(err, service.ErrTokenIsExpiredOrInvalid) {
			log.Err(err).Str("func", "*Handler.auth").Msg("error occurred during parsing token")
			unauthorized(w, app.MsgInvalidToken)
			return
		}
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}

func unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
	writeDetail(w, detail, http.StatusUnauthorized)
}

// userIDFromRequest returns the caller id stored by auth.
func userIDFromRequest(r *http.Request) (int64, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return 0, ErrNoUserInContext
	}
	return userID, nil
}

package http

import (
	"net/http"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/utils"
	"github.com/MKhiriev/recipe-keeper/internal/validators"
	"github.com/MKhiriev/recipe-keeper/models"
)

// createUser handles POST /api/user/create.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var user models.User
	if err := decodeJSON(r, &user); err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Msg("invalid request body")
		writeError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", registeredUser.ID).Msg("user registered")
	utils.WriteJSON(w, registeredUser.Profile(), http.StatusCreated)
}

// createToken handles POST /api/user/token.
func (h *Handler) createToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := decodeJSON(r, &credentials); err != nil {
		log.Err(err).Str("func", "*Handler.createToken").Msg("invalid request body")
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createToken").Msg("creation of token failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}

// getProfile handles GET /api/user/me.
func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user.Profile(), http.StatusOK)
}

// updateProfile handles PATCH /api/user/me.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	h.saveProfile(w, r, false)
}

// replaceProfile handles PUT /api/user/me. Email and password are required.
func (h *Handler) replaceProfile(w http.ResponseWriter, r *http.Request) {
	h.saveProfile(w, r, true)
}

func (h *Handler) saveProfile(w http.ResponseWriter, r *http.Request, full bool) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.UserUpdate
	if err = decodeJSON(r, &update); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.saveProfile").Msg("invalid request body")
		writeError(w, r, err)
		return
	}

	if full {
		missing := models.ValidationError{}
		if update.Email == nil {
			missing.Add(validators.FieldEmail, validators.MsgRequired)
		}
		if update.Password == nil {
			missing.Add(validators.FieldPassword, validators.MsgRequired)
		}
		if err = missing.Err(); err != nil {
			writeError(w, r, err)
			return
		}
	}

	user, err := h.services.AuthService.UpdateProfile(r.Context(), userID, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user.Profile(), http.StatusOK)
}

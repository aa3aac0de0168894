package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/recipe-keeper/internal/app"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/utils"
	"github.com/MKhiriev/recipe-keeper/internal/validators"
	"github.com/MKhiriev/recipe-keeper/models"
)

func (h *Handler) listRecipes(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	filter := models.RecipeFilter{UserID: userID}
	if filter.TagIDs, err = idsParam(r, queryTags); err != nil {
		writeError(w, r, err)
		return
	}
	if filter.IngredientIDs, err = idsParam(r, queryIngredients); err != nil {
		writeError(w, r, err)
		return
	}

	recipes, err := h.services.RecipeService.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, recipes, http.StatusOK)
}

func (h *Handler) getRecipe(w http.ResponseWriter, r *http.Request) {
	userID, id, err := ownedID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	recipe, err := h.services.RecipeService.Get(r.Context(), id, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, recipe, http.StatusOK)
}

func (h *Handler) createRecipe(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var in models.RecipeInput
	if err = decodeJSON(r, &in); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.createRecipe").Msg("invalid request body")
		writeError(w, r, err)
		return
	}

	recipe, err := h.services.RecipeService.Create(r.Context(), userID, in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, recipe, http.StatusCreated)
}

func (h *Handler) updateRecipe(w http.ResponseWriter, r *http.Request) {
	h.saveRecipe(w, r, h.services.RecipeService.Update)
}

func (h *Handler) replaceRecipe(w http.ResponseWriter, r *http.Request) {
	h.saveRecipe(w, r, h.services.RecipeService.Replace)
}

func (h *Handler) saveRecipe(w http.ResponseWriter, r *http.Request, apply func(ctx context.Context, id, userID int64, in models.RecipeInput) (models.Recipe, error)) {
	userID, id, err := ownedID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var in models.RecipeInput
	if err = decodeJSON(r, &in); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.saveRecipe").Msg("invalid request body")
		writeError(w, r, err)
		return
	}

	recipe, err := apply(r.Context(), id, userID, in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, recipe, http.StatusOK)
}

func (h *Handler) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	userID, id, err := ownedID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.RecipeService.Delete(r.Context(), id, userID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// uploadRecipeImage handles the multipart "image" upload. Bodies above the
// configured size limit are rejected with 413.
func (h *Handler) uploadRecipeImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, id, err := ownedID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.images.MaxUploadSize)
	if err = r.ParseMultipartForm(h.images.MaxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesErr):
			writeDetail(w, app.MsgRequestTooLarge, http.StatusRequestEntityTooLarge)
		case errors.Is(err, http.ErrNotMultipart):
			writeDetail(w, fmt.Sprintf(app.MsgUnsupportedMediaType, r.Header.Get("Content-Type")), http.StatusUnsupportedMediaType)
		default:
			log.Err(err).Str("func", "*Handler.uploadRecipeImage").Msg("malformed multipart body")
			writeDetail(w, fmt.Sprintf(app.MsgMalformedMultipart, err), http.StatusBadRequest)
		}
		return
	}
	defer r.MultipartForm.RemoveAll()

	upload, err := readUpload(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.uploadRecipeImage").Msg("error reading uploaded file")
		writeError(w, r, err)
		return
	}

	image, err := h.services.RecipeService.UploadImage(r.Context(), id, userID, upload)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, image, http.StatusOK)
}

// readUpload returns the "image" part. A missing part yields an empty
// upload, which the service rejects.
func readUpload(r *http.Request) (models.ImageUpload, error) {
	file, header, err := r.FormFile(validators.FieldImage)
	if errors.Is(err, http.ErrMissingFile) {
		return models.ImageUpload{}, nil
	}
	if err != nil {
		return models.ImageUpload{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return models.ImageUpload{}, err
	}

	return models.ImageUpload{Filename: header.Filename, Data: data}, nil
}

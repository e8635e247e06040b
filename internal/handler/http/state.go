package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/lacnutry/internal/utils"
	"github.com/MKhiriev/lacnutry/models"
	"github.com/go-chi/chi/v5"
)

type favoriteResponse struct {
	RecipeID string `json:"recipeId"`
	Favorite bool   `json:"favorite"`
}

func (h *Handler) getState(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.services.ProfileStore.Snapshot(), http.StatusOK)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.services.ProfileStore.Profile(), http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.UserProfile
	if err := decodeBody(r, &profile); err != nil {
		writeError(w, r, err, "*Handler.updateProfile")
		return
	}

	if err := h.validator.Validate(r.Context(), profile); err != nil {
		writeError(w, r, err, "*Handler.updateProfile")
		return
	}

	h.services.ProfileStore.UpdateProfile(profile)
	_, _ = utils.WriteJSON(w, h.services.ProfileStore.Profile(), http.StatusOK)
}

func (h *Handler) getFavorites(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.services.ProfileStore.Favorites(), http.StatusOK)
}

func (h *Handler) isFavorite(w http.ResponseWriter, r *http.Request) {
	recipeID := chi.URLParam(r, "recipeID")
	_, _ = utils.WriteJSON(w, favoriteResponse{
		RecipeID: recipeID,
		Favorite: h.services.ProfileStore.IsFavorite(recipeID),
	}, http.StatusOK)
}

func (h *Handler) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	recipeID := chi.URLParam(r, "recipeID")
	if _, err := h.services.CatalogService.Get(recipeID); err != nil {
		writeError(w, r, err, "*Handler.toggleFavorite")
		return
	}

	_, _ = utils.WriteJSON(w, favoriteResponse{
		RecipeID: recipeID,
		Favorite: h.services.ProfileStore.ToggleFavorite(recipeID),
	}, http.StatusOK)
}

func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.services.ProfileStore.History(), http.StatusOK)
}

func (h *Handler) addToHistory(w http.ResponseWriter, r *http.Request) {
	var record models.ScanRecord
	if err := decodeBody(r, &record); err != nil {
		writeError(w, r, err, "*Handler.addToHistory")
		return
	}
	if err := h.validator.Validate(r.Context(), record); err != nil {
		writeError(w, r, err, "*Handler.addToHistory")
		return
	}

	stored := h.services.ProfileStore.AddToHistory(record)
	_, _ = utils.WriteJSON(w, stored, http.StatusCreated)
}

func (h *Handler) clearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ProfileStore.ClearHistory(r.Context()); err != nil {
		writeError(w, r, err, "*Handler.clearHistory")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.services.ProfileStore.Stats(), http.StatusOK)
}

// decodeBody decodes a JSON request body, tagging syntax and schema errors
// with ErrInvalidJSON.
func decodeBody(r *http.Request, dst any) error {
	err := utils.DecodeJSON(r, dst)
	if err == nil || errors.Is(err, utils.ErrEmptyBody) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
}

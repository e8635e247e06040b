package http

import (
	"net/http"

	"github.com/MKhiriev/lacnutry/internal/utils"
	"github.com/MKhiriev/lacnutry/models"
)

func (h *Handler) generateRecipe(w http.ResponseWriter, r *http.Request) {
	var req models.RecipeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err, "*Handler.generateRecipe")
		return
	}

	answer, err := h.services.AssistantService.GenerateRecipe(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "*Handler.generateRecipe")
		return
	}
	_, _ = utils.WriteJSON(w, answer, http.StatusOK)
}

func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err, "*Handler.chat")
		return
	}

	reply, err := h.services.AssistantService.Chat(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "*Handler.chat")
		return
	}
	_, _ = utils.WriteJSON(w, reply, http.StatusOK)
}

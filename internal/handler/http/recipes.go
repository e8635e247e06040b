package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/lacnutry/internal/utils"
	"github.com/MKhiriev/lacnutry/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listRecipes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.RecipeFilter{Tag: query.Get("tag")}

	if raw := query.Get("lactoseFree"); raw != "" {
		onlyLactoseFree, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: lactoseFree=%q", ErrInvalidQueryParam, raw), "*Handler.listRecipes")
			return
		}
		filter.OnlyLactoseFree = onlyLactoseFree
	}

	_, _ = utils.WriteJSON(w, h.services.CatalogService.List(filter), http.StatusOK)
}

func (h *Handler) getRecipe(w http.ResponseWriter, r *http.Request) {
	recipe, err := h.services.CatalogService.Get(chi.URLParam(r, "recipeID"))
	if err != nil {
		writeError(w, r, err, "*Handler.getRecipe")
		return
	}
	_, _ = utils.WriteJSON(w, recipe, http.StatusOK)
}

func (h *Handler) favoriteRecipes(w http.ResponseWriter, r *http.Request) {
	favorites := h.services.ProfileStore.Favorites()
	_, _ = utils.WriteJSON(w, h.services.CatalogService.Favorites(favorites), http.StatusOK)
}

package http

import (
	"net/http"

	"github.com/MKhiriev/lacnutry/internal/utils"
)

func (h *Handler) getAppVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())
	_, _ = utils.WriteJSON(w, version, http.StatusOK)
}

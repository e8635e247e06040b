package http

import (
	"net/http"

	"github.com/MKhiriev/lacnutry/internal/service"
)

// withReady answers 503 until the profile store has finished loading.
func (h *Handler) withReady(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-h.services.ProfileStore.Ready():
			next.ServeHTTP(w, r)
		default:
			w.Header().Set("Retry-After", "1")
			writeError(w, r, service.ErrNotReady, "*Handler.withReady")
		}
	})
}

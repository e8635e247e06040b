package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/lacnutry/internal/utils"
)

type purchaseRequest struct {
	PlanID string `json:"planId"`
}

func (h *Handler) getSubscription(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.services.SubscriptionService.Status(), http.StatusOK)
}

func (h *Handler) getPlans(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.services.SubscriptionService.Plans(), http.StatusOK)
}

// purchase only starts the store flow; the outcome shows up later in
// GET /api/subscription.
func (h *Handler) purchase(w http.ResponseWriter, r *http.Request) {
	var req purchaseRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err, "*Handler.purchase")
		return
	}
	planID := strings.TrimSpace(req.PlanID)
	if planID == "" {
		writeError(w, r, ErrMissingPlanID, "*Handler.purchase")
		return
	}

	if err := h.services.SubscriptionService.Purchase(r.Context(), planID); err != nil {
		writeError(w, r, err, "*Handler.purchase")
		return
	}
	_, _ = utils.WriteJSON(w, h.services.SubscriptionService.Status(), http.StatusAccepted)
}

func (h *Handler) restore(w http.ResponseWriter, r *http.Request) {
	if err := h.services.SubscriptionService.Restore(r.Context()); err != nil {
		writeError(w, r, err, "*Handler.restore")
		return
	}
	_, _ = utils.WriteJSON(w, h.services.SubscriptionService.Status(), http.StatusOK)
}

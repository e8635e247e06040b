package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/lacnutry/internal/logger"
	"github.com/MKhiriev/lacnutry/internal/service"
	"github.com/MKhiriev/lacnutry/internal/utils"
	"github.com/MKhiriev/lacnutry/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:        http.StatusBadRequest,
	ErrMissingOptionIndex: http.StatusBadRequest,
	ErrMissingPlanID:      http.StatusBadRequest,
	ErrInvalidQueryParam:  http.StatusBadRequest,
	ErrRouteNotFound:      http.StatusNotFound,
	utils.ErrEmptyBody:    http.StatusBadRequest,

	service.ErrNotReady:      http.StatusServiceUnavailable,
	context.DeadlineExceeded: http.StatusServiceUnavailable,

	service.ErrSessionNotFound:     http.StatusNotFound,
	service.ErrQuizCompleted:       http.StatusConflict,
	service.ErrUnexpectedQuizInput: http.StatusConflict,
	service.ErrInvalidQuizAnswer:   http.StatusBadRequest,

	service.ErrPlanNotFound:         http.StatusNotFound,
	service.ErrProductUnavailable:   http.StatusUnprocessableEntity,
	service.ErrBillingUnavailable:   http.StatusServiceUnavailable,
	service.ErrNoPurchasesToRestore: http.StatusNotFound,
	service.ErrPurchaseNotVerified:  http.StatusPaymentRequired,

	service.ErrNoIngredients:        http.StatusBadRequest,
	service.ErrAssistantDisabled:    http.StatusServiceUnavailable,
	service.ErrConversationNotFound: http.StatusNotFound,

	service.ErrRecipeNotFound:  http.StatusNotFound,
	service.ErrUpstreamFailure: http.StatusBadGateway,

	validators.ErrEmptyName:        http.StatusBadRequest,
	validators.ErrInvalidEmail:     http.StatusBadRequest,
	validators.ErrInvalidPhone:     http.StatusBadRequest,
	validators.ErrEmptyListEntry:   http.StatusBadRequest,
	validators.ErrEmptyProductName: http.StatusBadRequest,
	validators.ErrInvalidScanDate:  http.StatusBadRequest,
	validators.ErrInvalidScanID:    http.StatusBadRequest,
	validators.ErrInvalidOption:    http.StatusBadRequest,
	validators.ErrEmptyIngredients: http.StatusBadRequest,
	validators.ErrEmptyMessage:     http.StatusBadRequest,
	validators.ErrMessageTooLong:   http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err. Internal errors are
// not echoed to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(status)
	}
	utils.WriteError(w, message, status)
}

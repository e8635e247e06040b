package http

import (
	"github.com/MKhiriev/lacnutry/internal/logger"
	"github.com/MKhiriev/lacnutry/internal/metrics"
	"github.com/MKhiriev/lacnutry/internal/service"
	"github.com/MKhiriev/lacnutry/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator
	metrics   *metrics.Metrics

	logger *logger.Logger
}

// NewHandler builds the API handler. metrics may be nil, in which case
// /metrics is not served and requests are not measured.
func NewHandler(services *service.Services, metrics *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewProfileValidator(),
		metrics:   metrics,
		logger:    logger,
	}
}

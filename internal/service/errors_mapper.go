// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/lacnutry/internal/adapter"
	"github.com/MKhiriev/lacnutry/internal/utils"
)

// mapAdapterError translates a billing or receipt adapter error into a
// service business error. Anything not recognised is an upstream failure.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err

	case errors.Is(err, adapter.ErrBillingNotConnected):
		return fmt.Errorf("%w: %w", ErrBillingUnavailable, err)

	case errors.Is(err, adapter.ErrUnknownProduct):
		return fmt.Errorf("%w: %w", ErrProductUnavailable, err)

	case errors.Is(err, utils.ErrInvalidEntitlement),
		errors.Is(err, adapter.ErrInvalidSignature):
		return fmt.Errorf("%w: %w", ErrPurchaseNotVerified, err)

	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %s", ErrPurchaseNotVerified, extractBody(err))
	}

	return fmt.Errorf("%w: %w", ErrUpstreamFailure, err)
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}

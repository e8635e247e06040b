// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while decoding requests. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when the request body is not valid JSON for
	// the endpoint.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrMissingOptionIndex is returned when a quiz answer omits optionIndex.
	ErrMissingOptionIndex = errors.New("optionIndex is required")

	// ErrMissingPlanID is returned when a purchase request omits planId.
	ErrMissingPlanID = errors.New("planId is required")

	// ErrInvalidQueryParam is returned when a query parameter cannot be
	// parsed.
	ErrInvalidQueryParam = errors.New("invalid query parameter")

	// ErrRouteNotFound is written for unknown paths and unsupported methods.
	ErrRouteNotFound = errors.New("route not found")
)

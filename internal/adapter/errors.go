package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	ErrInvalidAddress   = errors.New("invalid adapter address")
	ErrInvalidSignature = errors.New("response signature mismatch")
	ErrEmptyCompletion  = errors.New("text generator returned no content")

	ErrBillingNotConnected = errors.New("billing provider is not connected")
	ErrUnknownProduct      = errors.New("product is not offered by the store")
)

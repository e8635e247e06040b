package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates an unknown storage driver or a
	// driver missing its DSN or file path.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (unknown timezone or log level, non-positive limits).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates negative server timeouts.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidTextGenConfigs indicates an unknown provider or a provider
	// without a model.
	ErrInvalidTextGenConfigs = errors.New("invalid text generation configuration")
	// ErrInvalidBillingConfigs indicates an unknown billing provider or an
	// invalid plan list.
	ErrInvalidBillingConfigs = errors.New("invalid billing configuration")
)

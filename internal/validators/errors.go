package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName        = errors.New("name is required")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrInvalidPhone     = errors.New("invalid phone")
	ErrEmptyListEntry   = errors.New("list entries cannot be empty")
	ErrEmptyProductName = errors.New("product name is required")
	ErrInvalidScanDate  = errors.New("scan date must be RFC 3339")
	ErrInvalidScanID    = errors.New("invalid scan id")
	ErrInvalidOption    = errors.New("invalid option index")
	ErrEmptyIngredients = errors.New("ingredients are required")
	ErrEmptyMessage     = errors.New("message is required")
	ErrMessageTooLong   = errors.New("message is too long")
)

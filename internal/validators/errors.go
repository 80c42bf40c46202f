package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName     = errors.New("name is required")
	ErrInvalidName   = errors.New("invalid name")
	ErrInvalidValue  = errors.New("value is not valid UTF-8")
	ErrEmptyPassword = errors.New("master password is required")
)

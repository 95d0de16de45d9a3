package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyPayload    = errors.New("payload is required")
	ErrPayloadTooLarge = errors.New("payload exceeds maximum size")
	ErrEmptyPassword   = errors.New("password is required")
)

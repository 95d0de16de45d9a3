package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrValidationNoPayload       = fmt.Errorf("%w: no payload provided", ErrInvalidDataProvided)
	ErrValidationNoPassword      = fmt.Errorf("%w: no password provided", ErrInvalidDataProvided)
	ErrValidationPayloadTooLarge = errors.New("payload too large")

	ErrVersionIsNotSpecified = errors.New("version is not specified")

	ErrRemoteUnavailable = errors.New("remote unpack server unavailable")
)

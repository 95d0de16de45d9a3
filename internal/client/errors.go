package client

import "errors"

var (
	ErrNoServices      = errors.New("client services are not configured")
	ErrNoPayloadSource = errors.New("no payload source configured")
	ErrEmptyPayload    = errors.New("payload source is empty")
	ErrNoPassword      = errors.New("no password given and stdin is not a terminal")
	ErrTooManyAttempts = errors.New("too many failed password attempts")
)

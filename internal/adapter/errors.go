package adapter

import "errors"

var (
	ErrBadRequest            = errors.New("bad request")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrNotFound              = errors.New("not found")
	ErrRequestEntityTooLarge = errors.New("request entity too large")
	ErrInternalServerError   = errors.New("internal server error")
	ErrServiceUnavailable    = errors.New("service unavailable")
)

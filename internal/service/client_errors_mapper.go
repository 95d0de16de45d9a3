// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/vault-unpacker/internal/adapter"
	"github.com/MKhiriev/vault-unpacker/internal/app"
	"github.com/MKhiriev/vault-unpacker/internal/crypto"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		case app.MsgInvalidPayloadFormat:
			return fmt.Errorf("remote unpack: %w", crypto.ErrFormat)
		case app.MsgNoPayloadProvided:
			return ErrValidationNoPayload
		case app.MsgNoPasswordProvided:
			return ErrValidationNoPassword
		}
		return fmt.Errorf("%w: %s", ErrInvalidDataProvided, msg)

	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("remote unpack: %w", crypto.ErrAuthentication)

	case errors.Is(err, adapter.ErrRequestEntityTooLarge):
		return ErrValidationPayloadTooLarge

	case errors.Is(err, adapter.ErrServiceUnavailable):
		return fmt.Errorf("%w: %s", ErrRemoteUnavailable, msg)

	case errors.Is(err, adapter.ErrInternalServerError):
		if msg == app.MsgVersionIsNotSpecified {
			return ErrVersionIsNotSpecified
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}

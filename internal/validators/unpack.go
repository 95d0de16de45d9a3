// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/vault-unpacker/models"
)

// Field name constants used to restrict validation of an UnpackRequest.
const (
	// FieldPayload targets the packed payload.
	FieldPayload = "payload"

	// FieldPassword targets the vault password.
	FieldPassword = "password"
)

// MaxPayloadSize bounds the packed payload length accepted for unpacking.
const MaxPayloadSize = 1 << 20

// UnpackRequestValidator implements the Validator interface for
// models.UnpackRequest in both value and pointer form.
type UnpackRequestValidator struct {
}

// NewUnpackRequestValidator constructs a new UnpackRequestValidator and
// returns it as the Validator interface.
func NewUnpackRequestValidator() Validator {
	return &UnpackRequestValidator{}
}

// Validate dispatches on the dynamic type of obj. When fields is empty both
// the payload and the password are checked.
//
// The payload is only checked for presence and size here; its structure is
// the unpacker's concern.
func (v *UnpackRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UnpackRequest:
		return v.validateUnpackRequest(ctx, value, fields...)
	case *models.UnpackRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateUnpackRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UnpackRequestValidator) validateUnpackRequest(ctx context.Context, req models.UnpackRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPayload, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldPayload:
			if strings.TrimSpace(req.Payload) == "" {
				return ErrEmptyPayload
			}
			if len(req.Payload) > MaxPayloadSize {
				return fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(req.Payload))
			}
		case FieldPassword:
			// An empty password is a legitimate PBKDF2 input, but no
			// producer ever packs with one.
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

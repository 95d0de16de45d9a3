// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound unpack requests before any key
// derivation is attempted.
//
// Validators are injected into the service layer through a wrapper, so the
// HTTP handler and the command-line unpacker reject the same inputs with the
// same errors.
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrMissingSignature is logged when signing is enabled and the request
	// carries no HashSHA256 header.
	ErrMissingSignature = errors.New("missing request signature")

	// ErrSignatureMismatch is logged when the HashSHA256 header does not
	// match the request body.
	ErrSignatureMismatch = errors.New("request signature mismatch")
)

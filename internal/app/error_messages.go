// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message constants shared by the HTTP handlers and
// the client-side error mapper.
//
// The handler writes a Msg* constant as the response body and the client
// maps the same text back to a sentinel error, so the wording must stay
// identical on both sides.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded as JSON.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgIntegrityCheckFailed is returned when the request body does not
	// match its HashSHA256 signature.
	MsgIntegrityCheckFailed = "integrity check failed"

	// MsgNoPayloadProvided is returned when the request carries no packed
	// payload.
	MsgNoPayloadProvided = "no payload provided"

	// MsgNoPasswordProvided is returned when the request carries no
	// password.
	MsgNoPasswordProvided = "no password provided"

	// MsgPayloadTooLarge is returned when the packed payload exceeds the
	// accepted size.
	MsgPayloadTooLarge = "payload too large"

	// MsgInvalidPayloadFormat is returned when the packed payload cannot be
	// parsed.
	MsgInvalidPayloadFormat = "invalid payload format"

	// MsgAuthenticationFailed is returned when the payload does not verify
	// under the given password.
	MsgAuthenticationFailed = "payload authentication failed"

	// MsgRequestTimeout is returned when unpacking does not finish within
	// the server's request timeout.
	MsgRequestTimeout = "request timeout"

	// MsgVersionIsNotSpecified is returned by the version endpoint when the
	// server was started without a version.
	MsgVersionIsNotSpecified = "version is not specified"

	// MsgInternalServerError is returned for any failure the client cannot
	// resolve.
	MsgInternalServerError = "internal server error"
)

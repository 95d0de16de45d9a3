// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport to a remote unpack
// server.
//
// [ServerAdapter] decouples the service layer from the protocol. The
// package ships an HTTP/JSON implementation ([NewHTTPServerAdapter]) built
// on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] regardless of transport
// (e.g. [ErrUnauthorized] for 401). The response body is kept in the error
// text after a ": " separator.
package adapter

import (
	"context"

	"github.com/MKhiriev/vault-unpacker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with a remote unpack server.
type ServerAdapter interface {
	// Unpack sends req to POST /api/unpack and returns the decoded
	// response. Non-2xx statuses are returned as errors wrapping the
	// sentinels of this package.
	Unpack(ctx context.Context, req models.UnpackRequest) (models.UnpackResponse, error)

	// Version fetches the server version from GET /api/version/.
	Version(ctx context.Context) (string, error)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the business layer between the transports
// (HTTP handler, command-line unpacker) and the crypto core.
//
// Two [UnpackService] implementations exist: a local one that runs the
// [crypto.Unpacker] in-process and a remote one that delegates to a
// server through [adapter.ServerAdapter]. Both are wrapped by the same
// validation decorator and report the same sentinel errors, so callers can
// retry on [crypto.ErrAuthentication] without knowing where the payload was
// opened.
package service

import (
	"context"

	"github.com/MKhiriev/vault-unpacker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=UnpackServiceWrapper

// UnpackService recovers the plaintext of a packed payload.
type UnpackService interface {
	// Unpack opens req.Payload with req.Password. When the plaintext is a
	// JSON array of vault entries, they are decoded into the result.
	Unpack(ctx context.Context, req models.UnpackRequest) (models.UnpackResult, error)
}

// AppInfoService exposes build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ServerInfoService exposes information about a remote unpack server.
type ServerInfoService interface {
	GetServerVersion(ctx context.Context) (string, error)
}

// UnpackServiceWrapper defines middleware composition for UnpackService.
type UnpackServiceWrapper interface {
	Wrap(UnpackService) UnpackService // returns a decorated UnpackService
}

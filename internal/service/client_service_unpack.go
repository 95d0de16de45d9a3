// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/vault-unpacker/internal/adapter"
	"github.com/MKhiriev/vault-unpacker/internal/logger"
	"github.com/MKhiriev/vault-unpacker/models"
)

type remoteUnpackService struct {
	serverAdapter adapter.ServerAdapter

	logger *logger.Logger
}

// NewRemoteUnpackService returns an [UnpackService] that opens payloads on
// a remote server. Transport errors are translated by mapAdapterError so
// that callers see the same sentinels as with local unpacking.
func NewRemoteUnpackService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) UnpackService {
	return &remoteUnpackService{
		serverAdapter: serverAdapter,
		logger:        logger,
	}
}

// Unpack implements [UnpackService].
func (s *remoteUnpackService) Unpack(ctx context.Context, req models.UnpackRequest) (models.UnpackResult, error) {
	resp, err := s.serverAdapter.Unpack(ctx, req)
	if err != nil {
		s.logger.Info().Err(err).Msg("remote unpack failed")
		return models.UnpackResult{}, mapAdapterError(err)
	}

	return resp.Result(), nil
}

// GetServerVersion implements [ServerInfoService].
func (s *remoteUnpackService) GetServerVersion(ctx context.Context) (string, error) {
	version, err := s.serverAdapter.Version(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return version, nil
}

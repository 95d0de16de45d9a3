// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/vault-unpacker/internal/crypto"
	"github.com/MKhiriev/vault-unpacker/internal/logger"
	"github.com/MKhiriev/vault-unpacker/models"
)

type unpackService struct {
	unpacker crypto.Unpacker

	logger *logger.Logger
}

// NewUnpackService returns an [UnpackService] that opens payloads in
// process with unpacker.
func NewUnpackService(unpacker crypto.Unpacker, logger *logger.Logger) UnpackService {
	return &unpackService{
		unpacker: unpacker,
		logger:   logger,
	}
}

type unpackOutcome struct {
	plaintext string
	err       error
}

// Unpack implements [UnpackService].
//
// Key derivation cannot be interrupted, so it runs in its own goroutine and
// the call returns ctx.Err() as soon as ctx is done. The goroutine finishes
// in the background and its result is dropped.
func (s *unpackService) Unpack(ctx context.Context, req models.UnpackRequest) (models.UnpackResult, error) {
	if err := ctx.Err(); err != nil {
		return models.UnpackResult{}, err
	}

	done := make(chan unpackOutcome, 1)
	go func() {
		plaintext, err := s.unpacker.Unpack(req.Payload, req.Password)
		done <- unpackOutcome{plaintext: plaintext, err: err}
	}()

	var out unpackOutcome
	select {
	case <-ctx.Done():
		s.logger.Warn().Err(ctx.Err()).Msg("unpack abandoned")
		return models.UnpackResult{}, ctx.Err()
	case out = <-done:
	}

	if out.err != nil {
		s.logger.Info().Err(out.err).Int("payload_len", len(req.Payload)).Msg("unpack failed")
		return models.UnpackResult{}, fmt.Errorf("error unpacking payload: %w", out.err)
	}

	entries := decodeVaultEntries(out.plaintext)
	s.logger.Info().
		Int("payload_len", len(req.Payload)).
		Bool("vault", entries != nil).
		Int("entries", len(entries)).
		Msg("payload unpacked")

	return models.UnpackResult{
		Plaintext: out.plaintext,
		Entries:   entries,
	}, nil
}

// decodeVaultEntries returns the entries of a SecureVault export, or nil
// when plaintext is anything other than a JSON array of objects. An empty
// array yields an empty, non-nil slice.
func decodeVaultEntries(plaintext string) []models.VaultEntry {
	trimmed := strings.TrimSpace(plaintext)
	if !strings.HasPrefix(trimmed, "[") {
		return nil
	}

	var entries []models.VaultEntry
	if err := json.Unmarshal([]byte(trimmed), &entries); err != nil {
		return nil
	}
	if entries == nil {
		entries = []models.VaultEntry{}
	}

	return entries
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/vault-unpacker/internal/crypto"
	"github.com/MKhiriev/vault-unpacker/internal/service"
)

// ErrUserQuit is returned when the user closes the password prompt.
var ErrUserQuit = errors.New("user quit")

// HumanizeError turns an unpack error into a short line for the prompt.
func HumanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, crypto.ErrAuthentication):
		return "Wrong password or damaged payload"
	case errors.Is(err, crypto.ErrFormat):
		return "Payload is not a SecureVault export"
	case errors.Is(err, service.ErrRemoteUnavailable):
		return "Server is unavailable"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or server is unavailable"
	}

	return err.Error()
}

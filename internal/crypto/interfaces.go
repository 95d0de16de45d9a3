// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto recovers plaintext from SecureVault packed payloads.
//
// A packed payload is produced by the companion mobile application and has
// the following layout:
//
//	base64( base64(nonce) ":" base64(ciphertext ‖ tag) )
//
// The key is never transmitted. It is derived on every call from the user's
// password and an application-wide salt via PBKDF2-HMAC-SHA256, and the
// payload is opened with AES-256-GCM. Nothing derived here is cached or
// persisted.
//
// Two error kinds are reported, both matchable with [errors.Is]:
//   - [ErrFormat]         the payload layout or encoding is broken;
//   - [ErrAuthentication] the tag did not verify (wrong password, wrong salt
//     or iteration count, or tampered data).
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/unpacker_mock.go -package=mock

// Unpacker turns a packed payload back into plaintext.
//
// Implementations are stateless with respect to individual calls and are
// safe for concurrent use.
type Unpacker interface {
	// Unpack decodes packed, derives the key from password and verifies and
	// decrypts the payload. The plaintext is returned only when the
	// authentication tag matches; otherwise an error wrapping
	// [ErrAuthentication] is returned. Malformed payloads produce an error
	// wrapping [ErrFormat].
	Unpack(packed, password string) (string, error)

	// DeriveKey returns the 32-byte AES-256 key for password using the
	// salt and iteration count the Unpacker was configured with.
	DeriveKey(password string) []byte
}

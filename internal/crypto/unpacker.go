// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultSalt is the salt the companion application embeds in its
	// SecureVault. It is not a secret; it only has to match the producer.
	DefaultSalt = "SKYSYS_PRO_SALT_99821_Bokachondro985"

	// DefaultIterations is the PBKDF2 iteration count used by the producer.
	DefaultIterations = 2000

	// KeySize is the derived key length (AES-256).
	KeySize = 32

	// TagSize is the AES-GCM authentication tag length appended to the
	// ciphertext.
	TagSize = 16

	payloadSeparator = ":"
)

// Params holds the key-derivation constants shared out-of-band with the
// payload producer.
type Params struct {
	// Salt is fed to PBKDF2 as raw UTF-8 bytes.
	Salt string
	// Iterations is the PBKDF2 iteration count.
	Iterations int
}

// DefaultParams returns the parameters of the reference SecureVault producer.
func DefaultParams() Params {
	return Params{
		Salt:       DefaultSalt,
		Iterations: DefaultIterations,
	}
}

// unpacker is the private implementation of [Unpacker].
type unpacker struct {
	salt       []byte
	iterations int
}

// NewUnpacker constructs an [Unpacker] for the given key-derivation
// parameters. Returns [ErrEmptySalt] or [ErrInvalidIterations] when params
// cannot match any producer.
func NewUnpacker(params Params) (Unpacker, error) {
	if params.Salt == "" {
		return nil, ErrEmptySalt
	}
	if params.Iterations <= 0 {
		return nil, ErrInvalidIterations
	}

	return &unpacker{
		salt:       []byte(params.Salt),
		iterations: params.Iterations,
	}, nil
}

// DeriveKey implements [Unpacker]. PBKDF2 with HMAC-SHA256 as the PRF.
func (u *unpacker) DeriveKey(password string) []byte {
	return pbkdf2.Key([]byte(password), u.salt, u.iterations, KeySize, sha256.New)
}

// Unpack implements [Unpacker].
func (u *unpacker) Unpack(packed, password string) (string, error) {
	// 1-2. Outer wrapper, then nonce and sealed ciphertext
	nonce, sealed, err := splitPayload(packed)
	if err != nil {
		return "", err
	}

	// 3. Derive key
	key := u.DeriveKey(password)

	// 4-5. Verify tag and decrypt
	plaintext, err := open(key, nonce, sealed)
	if err != nil {
		return "", err
	}

	// 6. Plaintext is UTF-8 text
	if !utf8.Valid(plaintext) {
		return "", fmt.Errorf("%w: plaintext is not valid UTF-8", ErrFormat)
	}

	return string(plaintext), nil
}

// splitPayload decodes the outer base64 wrapper and returns the nonce and
// the tag-appended ciphertext.
func splitPayload(packed string) (nonce, sealed []byte, err error) {
	wrapper, err := base64.StdEncoding.DecodeString(strings.TrimSpace(packed))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: decode wrapper: %w", ErrFormat, err)
	}
	if !utf8.Valid(wrapper) {
		return nil, nil, fmt.Errorf("%w: wrapper is not valid UTF-8", ErrFormat)
	}

	parts := strings.Split(string(wrapper), payloadSeparator)
	if len(parts) != 2 {
		return nil, nil, fmt.Errorf("%w: expected 2 colon-separated parts, got %d", ErrFormat, len(parts))
	}

	nonce, err = base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: decode nonce: %w", ErrFormat, err)
	}
	if len(nonce) == 0 {
		return nil, nil, fmt.Errorf("%w: empty nonce", ErrFormat)
	}

	sealed, err = base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: decode ciphertext: %w", ErrFormat, err)
	}
	if len(sealed) < TagSize {
		return nil, nil, ErrCiphertextTooShort
	}

	return nonce, sealed, nil
}

// open verifies and decrypts sealed (ciphertext ‖ 16-byte tag) with
// AES-256-GCM. The producer does not use the standard 12-byte GCM nonce, so
// the cipher is built for whatever nonce length the payload carries.
func open(key, nonce, sealed []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCMWithNonceSize(block, len(nonce))
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	// Open checks the trailing tag before releasing any plaintext.
	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, ErrAuthentication
	}

	return plaintext, nil
}

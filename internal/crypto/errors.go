package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat is returned when the packed payload cannot be parsed: invalid
	// base64, a wrapper that is not valid UTF-8, a wrapper that does not split
	// into exactly two colon-separated parts, or a ciphertext field too short
	// to hold the authentication tag.
	ErrFormat = errors.New("invalid packed payload format")

	// ErrAuthentication is returned when AES-GCM tag verification fails.
	// The cause is deliberately not distinguished: a wrong password, a salt or
	// iteration mismatch and tampered ciphertext all look the same.
	ErrAuthentication = errors.New("payload authentication failed")

	// ErrCiphertextTooShort is returned when the ciphertext field holds fewer
	// bytes than the GCM tag. It wraps [ErrFormat].
	ErrCiphertextTooShort = fmt.Errorf("%w: ciphertext shorter than authentication tag", ErrFormat)

	// ErrEmptySalt is returned by [NewUnpacker] when no salt is configured.
	ErrEmptySalt = errors.New("kdf salt is empty")

	// ErrInvalidIterations is returned by [NewUnpacker] for a non-positive
	// iteration count.
	ErrInvalidIterations = errors.New("kdf iteration count must be positive")
)

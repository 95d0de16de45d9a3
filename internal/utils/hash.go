package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// HashHeader carries the hex-encoded HMAC-SHA256 of a request body.
const HashHeader = "HashSHA256"

// Hasher computes keyed HMAC-SHA256 digests over request bodies.
// A zero-length key disables hashing; see Enabled.
//
// Hasher is safe for concurrent use. HMAC instances are pooled to avoid an
// allocation per request.
type Hasher struct {
	key  []byte
	pool sync.Pool
}

// NewHasher returns a Hasher for key.
func NewHasher(key string) *Hasher {
	h := &Hasher{key: []byte(key)}
	h.pool.New = func() any {
		return hmac.New(sha256.New, h.key)
	}
	return h
}

// Enabled reports whether a key was configured.
func (h *Hasher) Enabled() bool {
	return h != nil && len(h.key) > 0
}

// Sum returns the raw HMAC-SHA256 of data.
func (h *Hasher) Sum(data []byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	mac.Reset()

	mac.Write(data)
	sum := mac.Sum(nil)

	mac.Reset()
	h.pool.Put(mac)

	return sum
}

// SumHex returns Sum(data) hex-encoded, the form sent in HashHeader.
func (h *Hasher) SumHex(data []byte) string {
	return hex.EncodeToString(h.Sum(data))
}

// Verify reports whether signature is the hex HMAC of data. The comparison
// is constant-time.
func (h *Hasher) Verify(data []byte, signature string) bool {
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(got, h.Sum(data))
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"
)

const testHashKey = "test-secret-key"

func TestHasher_Sum(t *testing.T) {
	h := NewHasher(testHashKey)
	data := []byte(`{"payload":"abc","password":"pw"}`)

	sum1 := h.Sum(data)
	sum2 := h.Sum(data)

	if !bytes.Equal(sum1, sum2) {
		t.Fatal("hash must be deterministic for the same input")
	}

	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write(data)
	if want := mac.Sum(nil); !bytes.Equal(sum1, want) {
		t.Fatalf("unexpected hash value\nwant: %x\ngot:  %x", want, sum1)
	}
}

func TestHasher_SumHex(t *testing.T) {
	h := NewHasher(testHashKey)
	data := []byte("body")

	if got, want := h.SumHex(data), hex.EncodeToString(h.Sum(data)); got != want {
		t.Errorf("SumHex mismatch:\n  got:  %s\n  want: %s", got, want)
	}
}

func TestHasher_DifferentKeys(t *testing.T) {
	data := []byte("body")

	if NewHasher("key-1").SumHex(data) == NewHasher("key-2").SumHex(data) {
		t.Error("different keys must produce different digests")
	}
}

func TestHasher_DifferentData(t *testing.T) {
	h := NewHasher(testHashKey)

	if h.SumHex([]byte("a")) == h.SumHex([]byte("b")) {
		t.Error("different data must produce different digests")
	}
}

func TestHasher_Verify(t *testing.T) {
	h := NewHasher(testHashKey)
	data := []byte("body")
	sig := h.SumHex(data)

	if !h.Verify(data, sig) {
		t.Error("expected signature to verify")
	}
	if h.Verify([]byte("other"), sig) {
		t.Error("expected signature over other data to fail")
	}
	if h.Verify(data, "not-hex") {
		t.Error("expected malformed signature to fail")
	}
	if h.Verify(data, "") {
		t.Error("expected empty signature to fail")
	}
}

func TestHasher_Enabled(t *testing.T) {
	if NewHasher("").Enabled() {
		t.Error("empty key must disable hashing")
	}
	if !NewHasher("k").Enabled() {
		t.Error("non-empty key must enable hashing")
	}
	var nilHasher *Hasher
	if nilHasher.Enabled() {
		t.Error("nil hasher must be disabled")
	}
}

func TestHasher_Concurrent(t *testing.T) {
	h := NewHasher(testHashKey)
	data := []byte("concurrent")
	want := h.SumHex(data)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := h.SumHex(data); got != want {
				t.Errorf("got %s, want %s", got, want)
			}
		}()
	}
	wg.Wait()
}

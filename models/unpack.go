// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UnpackRequest carries a packed SecureVault payload together with the
// password needed to open it. It is the body of POST /api/unpack.
type UnpackRequest struct {
	// Payload is the packed payload as exported by the producer:
	// base64(base64(nonce) ":" base64(ciphertext ‖ tag)).
	Payload string `json:"payload"`

	// Password is the user's vault password. It is used only to derive the
	// decryption key and is never logged or stored.
	Password string `json:"password"`
}

// UnpackResult is the service-level outcome of a successful unpack.
type UnpackResult struct {
	// Plaintext is the verified, decrypted UTF-8 text.
	Plaintext string

	// Entries holds the decoded vault records when Plaintext is a JSON array
	// of [VaultEntry] objects; nil otherwise.
	Entries []VaultEntry
}

// IsVault reports whether the plaintext was recognised as a vault export.
func (r UnpackResult) IsVault() bool {
	return r.Entries != nil
}

// UnpackResponse is the JSON body returned by POST /api/unpack.
type UnpackResponse struct {
	// Plaintext is the decrypted payload.
	Plaintext string `json:"plaintext"`

	// Entries is the decoded vault, null when the plaintext is not a vault
	// export.
	Entries []VaultEntry `json:"entries"`

	// Length is the number of entries. Provided so that clients can
	// validate the response without iterating the slice.
	Length int `json:"length"`
}

// NewUnpackResponse converts a service result into its wire form.
func NewUnpackResponse(result UnpackResult) UnpackResponse {
	return UnpackResponse{
		Plaintext: result.Plaintext,
		Entries:   result.Entries,
		Length:    len(result.Entries),
	}
}

// Result converts a wire response back into a service result.
func (r UnpackResponse) Result() UnpackResult {
	return UnpackResult{
		Plaintext: r.Plaintext,
		Entries:   r.Entries,
	}
}

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/vault-unpacker/internal/validators"
)

// maxRequestBodySize leaves room for the JSON envelope and the password
// around the largest accepted payload. Reads past it fail with
// [*http.MaxBytesError].
const maxRequestBodySize = validators.MaxPayloadSize + 64<<10

// withTimeout bounds the request context by the configured request timeout.
// A zero timeout leaves the context untouched.
func (h *Handler) withTimeout(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.requestTimeout <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

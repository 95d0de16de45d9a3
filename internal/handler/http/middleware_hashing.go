package http

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/vault-unpacker/internal/app"
	"github.com/MKhiriev/vault-unpacker/internal/logger"
	"github.com/MKhiriev/vault-unpacker/internal/utils"
)

// withHashing verifies the HashSHA256 header against the raw request body
// when a signing key is configured. Without a key requests pass unchecked.
func (h *Handler) withHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.hasher.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				http.Error(w, app.MsgPayloadTooLarge, http.StatusRequestEntityTooLarge)
				return
			}
			log.Err(err).Str("func", "*Handler.withHashing").Msg("failed to read request body")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		signature := r.Header.Get(utils.HashHeader)
		if signature == "" {
			log.Err(ErrMissingSignature).Str("func", "*Handler.withHashing").Msg("integrity check failed")
			http.Error(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		if !h.hasher.Verify(body, signature) {
			log.Err(ErrSignatureMismatch).Str("func", "*Handler.withHashing").Msg("integrity check failed")
			http.Error(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		log.Debug().Str("func", "*Handler.withHashing").Msg("request signature verified")
		next.ServeHTTP(w, r)
	})
}

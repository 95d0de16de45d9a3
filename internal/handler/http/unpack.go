// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/vault-unpacker/internal/app"
	"github.com/MKhiriev/vault-unpacker/internal/logger"
	"github.com/MKhiriev/vault-unpacker/internal/utils"
	"github.com/MKhiriev/vault-unpacker/models"
)

// unpack handles POST /api/unpack.
//
// The body is a [models.UnpackRequest]. On success the recovered plaintext
// is returned as a [models.UnpackResponse]; failures are reported as a
// plain-text app.Msg* body with the status chosen by responseFromError.
func (h *Handler) unpack(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.UnpackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			log.Warn().Str("func", "*Handler.unpack").Int64("limit", maxBytesErr.Limit).Msg("request body too large")
			http.Error(w, app.MsgPayloadTooLarge, http.StatusRequestEntityTooLarge)
			return
		}
		log.Err(err).Str("func", "*Handler.unpack").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	result, err := h.services.UnpackService.Unpack(r.Context(), req)
	if err != nil {
		status, message := responseFromError(err)
		event := log.Warn()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.Err(err).Str("func", "*Handler.unpack").Int("status", status).Msg("unpack failed")
		http.Error(w, message, status)
		return
	}

	if _, err := utils.WriteJSON(w, models.NewUnpackResponse(result), http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.unpack").Msg("failed to write response")
	}
}

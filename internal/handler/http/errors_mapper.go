package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/vault-unpacker/internal/app"
	"github.com/MKhiriev/vault-unpacker/internal/crypto"
	"github.com/MKhiriev/vault-unpacker/internal/service"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order: the specific validation errors come
// before service.ErrInvalidDataProvided, which they wrap.
var errorResponses = []errorResponse{
	{service.ErrValidationNoPayload, http.StatusBadRequest, app.MsgNoPayloadProvided},
	{service.ErrValidationNoPassword, http.StatusBadRequest, app.MsgNoPasswordProvided},
	{service.ErrValidationPayloadTooLarge, http.StatusRequestEntityTooLarge, app.MsgPayloadTooLarge},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{crypto.ErrFormat, http.StatusBadRequest, app.MsgInvalidPayloadFormat},
	{crypto.ErrAuthentication, http.StatusUnauthorized, app.MsgAuthenticationFailed},

	{context.DeadlineExceeded, http.StatusServiceUnavailable, app.MsgRequestTimeout},
	{service.ErrVersionIsNotSpecified, http.StatusInternalServerError, app.MsgVersionIsNotSpecified},
}

func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

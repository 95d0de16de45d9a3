package http

import (
	"net/http"

	"github.com/MKhiriev/vault-unpacker/internal/app"
	"github.com/MKhiriev/vault-unpacker/internal/logger"
	"github.com/MKhiriev/vault-unpacker/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())
	if serverVersion == "" {
		logger.FromRequest(r).Error().Str("func", "*Handler.getServerVersion").Msg("server version is empty")
		http.Error(w, app.MsgVersionIsNotSpecified, http.StatusInternalServerError)
		return
	}

	utils.WriteText(w, serverVersion, http.StatusOK)
}

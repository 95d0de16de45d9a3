package http

import (
	"time"

	"github.com/MKhiriev/vault-unpacker/internal/config"
	"github.com/MKhiriev/vault-unpacker/internal/logger"
	"github.com/MKhiriev/vault-unpacker/internal/service"
	"github.com/MKhiriev/vault-unpacker/internal/utils"
)

type Handler struct {
	services *service.Services

	hasher         *utils.Hasher
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.ServerConfig, logger *logger.Logger) *Handler {
	logger.Info().
		Bool("signing", cfg.App.HashKey != "").
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Msg("http handler created")

	return &Handler{
		services:       services,
		hasher:         utils.NewHasher(cfg.App.HashKey),
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}

package main

import (
	"fmt"

	"github.com/MKhiriev/vault-unpacker/internal/config"
	"github.com/MKhiriev/vault-unpacker/internal/handler"
	"github.com/MKhiriev/vault-unpacker/internal/logger"
	"github.com/MKhiriev/vault-unpacker/internal/server"
	"github.com/MKhiriev/vault-unpacker/internal/service"
	"github.com/MKhiriev/vault-unpacker/models"
)

const role = "vault-unpacker-server"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	log := logger.NewLogger(role, "")
	cfg, err := config.GetServerConfig(buildInfo.BuildVersion())
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log = logger.NewLogger(role, cfg.App.LogLevel)
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Int("kdf_iterations", cfg.App.KDFIterations).
		Bool("signing", cfg.App.HashKey != "").
		Msg("received configs")

	services, err := service.NewServices(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}

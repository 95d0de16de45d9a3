package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/vault-unpacker/internal/adapter"
	"github.com/MKhiriev/vault-unpacker/internal/client"
	"github.com/MKhiriev/vault-unpacker/internal/config"
	"github.com/MKhiriev/vault-unpacker/internal/logger"
	"github.com/MKhiriev/vault-unpacker/internal/service"
	"github.com/MKhiriev/vault-unpacker/internal/tui"
	"github.com/MKhiriev/vault-unpacker/models"
)

const role = "vault-unpacker"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

// run returns the process exit code: 0 on success, 1 on failure, 2 on bad
// configuration and 130 when the user leaves the password prompt.
func run() int {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return 2
	}

	log := logger.NewClientLogger(role, cfg.App.LogLevel)

	var serverAdapter adapter.ServerAdapter
	if cfg.Remote() {
		serverAdapter, err = adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
		if err != nil {
			log.Error().Err(err).Msg("create server adapter")
			fmt.Fprintf(os.Stderr, "server adapter: %v\n", err)
			return 2
		}
	}

	services, err := service.NewClientServices(cfg.App, serverAdapter, log)
	if err != nil {
		log.Error().Err(err).Msg("create client services")
		fmt.Fprintf(os.Stderr, "client services: %v\n", err)
		return 2
	}

	app, err := client.NewApp(*cfg, services, tui.New(log), buildInfo, log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		fmt.Fprintf(os.Stderr, "init: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return 130
		}
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "error: %s\n", tui.HumanizeError(err))
		return 1
	}

	return 0
}

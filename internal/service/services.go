package service

import (
	"fmt"

	"github.com/MKhiriev/vault-unpacker/internal/config"
	"github.com/MKhiriev/vault-unpacker/internal/crypto"
	"github.com/MKhiriev/vault-unpacker/internal/logger"
)

type Services struct {
	UnpackService  UnpackService
	AppInfoService AppInfoService
}

// NewServices builds the server-side services. Unpacking is local and
// validated.
func NewServices(cfg config.ServerConfig, logger *logger.Logger) (*Services, error) {
	unpacker, err := newUnpacker(cfg.App)
	if err != nil {
		return nil, err
	}

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		UnpackService:  NewUnpackValidationService().Wrap(NewUnpackService(unpacker, logger)),
		AppInfoService: appInfo,
	}, nil
}

func newUnpacker(cfg config.App) (crypto.Unpacker, error) {
	unpacker, err := crypto.NewUnpacker(crypto.Params{
		Salt:       cfg.Salt,
		Iterations: cfg.KDFIterations,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating unpacker: %w", err)
	}
	return unpacker, nil
}

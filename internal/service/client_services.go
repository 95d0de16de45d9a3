package service

import (
	"github.com/MKhiriev/vault-unpacker/internal/adapter"
	"github.com/MKhiriev/vault-unpacker/internal/config"
	"github.com/MKhiriev/vault-unpacker/internal/logger"
)

type ClientServices struct {
	UnpackService UnpackService

	// ServerInfoService is nil when unpacking locally.
	ServerInfoService ServerInfoService
}

// NewClientServices builds the command-line services. With a non-nil
// serverAdapter payloads are opened remotely; otherwise locally with the
// key-derivation constants from cfg.
func NewClientServices(cfg config.App, serverAdapter adapter.ServerAdapter, logger *logger.Logger) (*ClientServices, error) {
	validation := NewUnpackValidationService()

	if serverAdapter != nil {
		remote := &remoteUnpackService{serverAdapter: serverAdapter, logger: logger}
		return &ClientServices{
			UnpackService:     validation.Wrap(remote),
			ServerInfoService: remote,
		}, nil
	}

	unpacker, err := newUnpacker(cfg)
	if err != nil {
		return nil, err
	}

	return &ClientServices{
		UnpackService: validation.Wrap(NewUnpackService(unpacker, logger)),
	}, nil
}

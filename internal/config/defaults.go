package config

import (
	"time"

	"github.com/MKhiriev/vault-unpacker/internal/crypto"
)

const (
	defaultServerAddress         = "localhost:8080"
	defaultServerRequestTimeout  = 30 * time.Second
	defaultAdapterRequestTimeout = 15 * time.Second
	defaultLogLevel              = "info"
)

// defaults returns the lowest-priority configuration source.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Salt:          crypto.DefaultSalt,
			KDFIterations: crypto.DefaultIterations,
			LogLevel:      defaultLogLevel,
		},
		Server: Server{
			HTTPAddress:    defaultServerAddress,
			RequestTimeout: defaultServerRequestTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: defaultAdapterRequestTimeout,
		},
	}
}

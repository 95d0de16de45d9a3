package config

import "fmt"

// ServerConfig is the view of [StructuredConfig] consumed by the HTTP
// service.
type ServerConfig struct {
	// App carries the key-derivation constants, version and log level.
	App App
	// Server carries the listen address and request timeout.
	Server Server
}

// GetServerConfig loads the merged configuration with the server flag set,
// falls back to buildVersion when no version is configured, and validates
// the resulting [ServerConfig].
func GetServerConfig(buildVersion string) (*ServerConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(ParseServerFlags).
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App:    cfg.App,
		Server: cfg.Server,
	}
	if serverCfg.App.Version == "" {
		serverCfg.App.Version = buildVersion
	}

	if err = serverCfg.validate(); err != nil {
		return nil, err
	}

	return serverCfg, nil
}

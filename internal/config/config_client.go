// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// ClientConfig is the view of [StructuredConfig] consumed by the
// command-line unpacker.
type ClientConfig struct {
	// App carries the key-derivation constants and log level.
	App App
	// Adapter carries the optional remote unpack server. An empty
	// HTTPAddress means unpacking happens locally.
	Adapter Adapter
	// Input carries the payload source, password and output switches.
	Input Input
}

// Remote reports whether the CLI should unpack through a remote server.
func (c *ClientConfig) Remote() bool {
	return c.Adapter.HTTPAddress != ""
}

// GetClientConfig loads the merged configuration with the client flag set
// and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(ParseClientFlags).
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App:     cfg.App,
		Adapter: cfg.Adapter,
		Input:   cfg.Input,
	}

	if err = clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}

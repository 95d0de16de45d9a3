// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the merged [StructuredConfig] for values that are wrong
// regardless of which binary consumes it. Missing values are left to the
// per-binary views.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.KDFIterations < 0 {
		return fmt.Errorf("%w: negative kdf iterations", ErrInvalidAppConfigs)
	}
	if cfg.Server.RequestTimeout < 0 || cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *App) validate() error {
	if cfg.Salt == "" {
		return fmt.Errorf("%w: empty salt", ErrInvalidAppConfigs)
	}
	if cfg.KDFIterations <= 0 {
		return fmt.Errorf("%w: kdf iterations must be positive", ErrInvalidAppConfigs)
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if err := cfg.App.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout == 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.Version == "" {
		return fmt.Errorf("%w: empty version", ErrInvalidAppConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Input.ShowVersion {
		return nil
	}

	if err := cfg.App.validate(); err != nil {
		return err
	}

	if cfg.Adapter.HTTPAddress != "" && cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	hasPayload := cfg.Input.Payload != ""
	hasFile := cfg.Input.PayloadFile != ""
	switch {
	case !hasPayload && !hasFile:
		return fmt.Errorf("%w: no payload given", ErrInvalidInputConfigs)
	case hasPayload && hasFile:
		return fmt.Errorf("%w: payload and payload file are mutually exclusive", ErrInvalidInputConfigs)
	}

	return nil
}

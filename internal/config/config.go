// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by both
// binaries. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, an optional JSON
// file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the key-derivation constants, the application version and
	// the log level.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the address of a remote unpack server. When set, the
	// CLI unpacks through it instead of locally.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Input holds the CLI input and output switches.
	Input Input `envPrefix:"UNPACKER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Salt is the PBKDF2 salt shared with the payload producer.
	// Env: APP_SALT
	Salt string `env:"SALT"`

	// KDFIterations is the PBKDF2 iteration count shared with the payload
	// producer.
	// Env: APP_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// HashKey is the shared HMAC key used to sign request bodies between
	// the CLI and the server. Empty disables signing.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds settings for the outbound connection to a remote unpack
// server.
type Adapter struct {
	// HTTPAddress is the remote server address, "host:port" or a full URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout for a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Input holds what the CLI unpacks and how it presents the result.
type Input struct {
	// Payload is the packed payload given inline.
	// Env: UNPACKER_PAYLOAD
	Payload string `env:"PAYLOAD"`

	// PayloadFile is a path to a file holding the packed payload; "-" reads
	// standard input.
	// Env: UNPACKER_PAYLOAD_FILE
	PayloadFile string `env:"PAYLOAD_FILE"`

	// Password is the vault password. When empty the CLI prompts for it.
	// Env: UNPACKER_PASSWORD
	Password string `env:"PASSWORD"`

	// Reveal prints recovered passwords instead of masking them.
	// Env: UNPACKER_REVEAL
	Reveal bool `env:"REVEAL"`

	// Copy copies the recovered plaintext to the system clipboard.
	// Env: UNPACKER_COPY
	Copy bool `env:"COPY"`

	// ShowVersion prints build information and exits.
	ShowVersion bool
}

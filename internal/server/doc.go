// Package server runs the unpack HTTP server.
//
// It owns the listener lifecycle: startup, signal handling (SIGTERM, SIGINT
// and SIGQUIT) and graceful shutdown of in-flight requests.
package server

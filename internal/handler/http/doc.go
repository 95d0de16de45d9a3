// Package http implements the HTTP transport of the unpack server.
//
// Routes:
//
//	POST /api/unpack    unpack a payload, body is models.UnpackRequest
//	GET  /api/version/  server version as plain text
//
// Every request passes panic recovery, trace ID propagation, access logging
// and gzip handling. The unpack route additionally limits the body size,
// verifies the optional HMAC body signature and bounds the work with the
// configured request timeout.
package http

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/vault-unpacker/internal/config"
	"github.com/MKhiriev/vault-unpacker/internal/logger"
	"github.com/MKhiriev/vault-unpacker/internal/utils"
	"github.com/MKhiriev/vault-unpacker/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/JSON implementation of
// [ServerAdapter]. The base URL is taken from adapterCfg.HTTPAddress ("http://"
// is assumed when no scheme is given). When appCfg.HashKey is set, request
// bodies are signed so the server can verify them.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a URL.
func NewHTTPServerAdapter(adapterCfg config.Adapter, appCfg config.App, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(utils.NewHasher(appCfg.HashKey))
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Unpack implements [ServerAdapter]. The body is marshalled here rather
// than by resty so the exact bytes on the wire can be signed.
func (h *httpServerAdapter) Unpack(ctx context.Context, req models.UnpackRequest) (models.UnpackResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return models.UnpackResponse{}, fmt.Errorf("encode unpack request: %w", err)
	}

	var result models.UnpackResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&result).
		Post("/api/unpack")
	if err != nil {
		return models.UnpackResponse{}, fmt.Errorf("unpack request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Int("status", resp.StatusCode()).Msg("unpack request rejected by server")
		return models.UnpackResponse{}, err
	}

	if result.Length != len(result.Entries) {
		return models.UnpackResponse{}, fmt.Errorf("unpack response: length %d does not match %d entries",
			result.Length, len(result.Entries))
	}

	return result, nil
}

// Version implements [ServerAdapter].
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

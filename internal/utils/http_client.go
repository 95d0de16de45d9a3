package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultRetryCount   = 2
	defaultRetryWait    = 200 * time.Millisecond
	defaultRetryMaxWait = 2 * time.Second
)

// HTTPClient is a wrapper around resty.Client. Every request it sends
// carries a trace ID in TraceIDHeader, taken from the request context
// (see WithTraceID) or freshly generated. When a Hasher is enabled, []byte
// bodies are signed in HashHeader.
//
// Requests are retried on transport errors and on 502, 503 and 504.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient. hasher may be nil.
func NewHTTPClient(hasher *Hasher) *HTTPClient {
	ids := NewUUIDGenerator()

	client := resty.New().
		SetRetryCount(defaultRetryCount).
		SetRetryWaitTime(defaultRetryWait).
		SetRetryMaxWaitTime(defaultRetryMaxWait).
		AddRetryCondition(retryOnGatewayErrors).
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			traceID, ok := GetTraceIDFromContext(r.Context())
			if !ok {
				traceID = ids.Generate()
			}
			r.SetHeader(TraceIDHeader, traceID)

			if body, isBytes := r.Body.([]byte); isBytes && hasher.Enabled() {
				r.SetHeader(HashHeader, hasher.SumHex(body))
			}
			return nil
		})

	return &HTTPClient{Client: client}
}

func retryOnGatewayErrors(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if resp == nil {
		return false
	}
	switch resp.StatusCode() {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

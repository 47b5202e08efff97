package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// RequestIDHeader carries the correlation identifier of outbound requests.
const RequestIDHeader = "X-Request-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://api.cursion.dev", 30*time.Second, utils.NewUUIDGenerator())
//	resp, err := client.R().SetContext(ctx).Post("/v1/auth/account/license")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty-backed client bound to baseURL with the given
// per-request timeout.
//
// Every request gets an X-Request-ID header. The identifier is taken from the
// request context (see [WithRequestID]) or, when absent, produced by ids.
// A nil ids disables generation.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration, ids IDGenerator) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(RequestIDHeader) != "" {
			return nil
		}
		if id, ok := GetRequestIDFromContext(r.Context()); ok {
			r.SetHeader(RequestIDHeader, id)
			return nil
		}
		if ids != nil {
			r.SetHeader(RequestIDHeader, ids.Generate())
		}
		return nil
	})

	return &HTTPClient{Client: client}
}

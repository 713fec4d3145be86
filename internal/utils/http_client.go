package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent is sent with every outbound API request.
const UserAgent = "rhsm-sync"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client preconfigured for the rhsm-sync REST API:
// base URL, per-request timeout, JSON accept header and user agent. Each
// call returns an independent client with its own connection pool.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", UserAgent)

	return &HTTPClient{Client: client}
}

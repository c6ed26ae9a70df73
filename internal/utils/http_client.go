package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "beer-battle-client"

// HTTPClient is the resty client shared by every remote call of the client.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client bound to baseURL. Retries are left to the
// background job scheduler, so resty's own retry count stays at zero.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}

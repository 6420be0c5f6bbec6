package teamwork

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client issues list requests against the Teamwork API. It is safe for
// concurrent use; all requests share one pool of outbound connections.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient returns an HTTP client with a pooled transport suitable for
// proxying to a single upstream host.
func NewHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 100,
		IdleConnTimeout:     90 * time.Second,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

// NewClient creates a client for the API rooted at baseURL. If httpClient is
// nil, http.DefaultClient is used.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base URL must use http or https scheme, got: %q", u.Scheme)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    httpClient,
	}, nil
}

// URL builds the upstream URL for path, passing rawQuery through untouched.
func (c *Client) URL(path, rawQuery string) string {
	u := c.baseURL + "/" + strings.TrimPrefix(path, "/")
	if rawQuery != "" {
		u += "?" + rawQuery
	}
	return u
}

// Get sends exactly one GET request for path with the given headers. The
// caller owns the response body. There is no retry.
func (c *Client) Get(
	ctx context.Context, path, rawQuery string, header http.Header,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.URL(path, rawQuery), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

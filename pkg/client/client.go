package client

import (
	"net/http"
	"net/url"
)

// Client is a Growi REST API (v3) client. It holds no page state: every
// operation is a single round trip to the server.
type Client struct {
	baseURL     *url.URL
	accessToken string
	httpClient  *http.Client
}

func New(funcs ...OptionFunc) *Client {
	opts := NewOptions(funcs...)
	return &Client{
		baseURL:     opts.BaseURL,
		accessToken: opts.AccessToken,
		httpClient:  opts.HTTPClient,
	}
}

package client

import (
	"net/http"
	"net/url"
)

type Options struct {
	BaseURL     *url.URL
	AccessToken string
	HTTPClient  *http.Client
}

type OptionFunc func(opts *Options)

func WithBaseURL(baseURL *url.URL) OptionFunc {
	return func(opts *Options) {
		opts.BaseURL = baseURL
	}
}

func WithAccessToken(token string) OptionFunc {
	return func(opts *Options) {
		opts.AccessToken = token
	}
}

func WithHTTPClient(httpClient *http.Client) OptionFunc {
	return func(opts *Options) {
		opts.HTTPClient = httpClient
	}
}

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		BaseURL: &url.URL{
			Scheme: "http",
			Host:   "localhost:3000",
		},
		// No timeout: each call blocks until the server answers or the
		// request context is canceled.
		HTTPClient: &http.Client{},
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

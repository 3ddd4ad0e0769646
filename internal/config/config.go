package config

import (
	"encoding/json"
	"net/url"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

const (
	DefaultFilename = "config.json"
	EnvPrefix       = "GROWI_"
)

// Config holds the Growi instance settings. It is loaded once at startup and
// treated as read-only afterwards.
type Config struct {
	URL         string `json:"url" env:"URL"`
	AccessToken string `json:"access_token" env:"ACCESS_TOKEN"`
}

// Load reads the JSON configuration file at path, then applies GROWI_URL and
// GROWI_ACCESS_TOKEN overrides. A missing access token is looked up in the OS
// keyring. A missing or malformed file yields an *Error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(NewError(path, err))
	}

	var conf Config

	if err := json.Unmarshal(data, &conf); err != nil {
		return nil, errors.WithStack(NewError(path, err))
	}

	if err := conf.applyEnv(); err != nil {
		return nil, errors.WithStack(err)
	}

	conf.ResolveAccessToken()

	return &conf, nil
}

// FromEnv builds a configuration from environment variables only.
func FromEnv() (*Config, error) {
	var conf Config

	if err := conf.applyEnv(); err != nil {
		return nil, errors.WithStack(err)
	}

	conf.ResolveAccessToken()

	return &conf, nil
}

func (c *Config) applyEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Ready reports whether both the base URL and the access token are set.
func (c *Config) Ready() bool {
	return c != nil && c.URL != "" && c.AccessToken != ""
}

func (c *Config) BaseURL() (*url.URL, error) {
	baseURL, err := url.Parse(c.URL)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse url '%s'", c.URL)
	}

	if baseURL.Scheme != "http" && baseURL.Scheme != "https" {
		return nil, errors.Errorf("url must use http or https scheme, got '%s'", baseURL.Scheme)
	}

	return baseURL, nil
}

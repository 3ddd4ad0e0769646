package config

import (
	"log/slog"

	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
	"github.com/zalando/go-keyring"
)

const KeyringService = "growi-editor"

// LookupToken returns the access token stored for baseURL, or an empty string
// if none was saved.
func LookupToken(baseURL string) (string, error) {
	token, err := keyring.Get(KeyringService, baseURL)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", nil
		}

		return "", errors.WithStack(err)
	}

	return token, nil
}

func SaveToken(baseURL string, token string) error {
	if err := keyring.Set(KeyringService, baseURL, token); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func DeleteToken(baseURL string) error {
	if err := keyring.Delete(KeyringService, baseURL); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return errors.WithStack(err)
	}

	return nil
}

// ResolveAccessToken looks the access token up in the OS keyring when it is
// not already set. Keyring failures are logged and ignored.
func (c *Config) ResolveAccessToken() {
	if c.AccessToken != "" || c.URL == "" {
		return
	}

	token, err := LookupToken(c.URL)
	if err != nil {
		slog.Warn("could not read access token from keyring", slog.String("url", c.URL), slogx.Error(err))
		return
	}

	c.AccessToken = token
}

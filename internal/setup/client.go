package setup

import (
	"context"
	"net/http"

	"github.com/bornholm/growi-editor/internal/config"
	"github.com/bornholm/growi-editor/internal/editor"
	"github.com/bornholm/growi-editor/internal/metrics"
	"github.com/bornholm/growi-editor/pkg/client"
	"github.com/pkg/errors"
)

func NewClientFromConfig(ctx context.Context, conf *config.Config) (*client.Client, error) {
	baseURL, err := conf.BaseURL()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	httpClient := &http.Client{
		Transport: metrics.NewTransport(http.DefaultTransport),
	}

	return client.New(
		client.WithBaseURL(baseURL),
		client.WithAccessToken(conf.AccessToken),
		client.WithHTTPClient(httpClient),
	), nil
}

func NewEditorFromConfig(ctx context.Context, conf *config.Config) (*editor.Editor, error) {
	growi, err := NewClientFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return editor.New(growi, conf), nil
}

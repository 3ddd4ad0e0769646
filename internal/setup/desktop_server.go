package setup

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/growi-editor/internal/config"
	"github.com/bornholm/growi-editor/internal/desktop"
	"github.com/bornholm/growi-editor/internal/desktop/app"
	"github.com/bornholm/growi-editor/internal/desktop/settings"
	"github.com/pkg/errors"
	sloghttp "github.com/samber/slog-http"
)

// NewDesktopServer creates the local form server. A configuration loading
// error does not prevent the server from starting: it is displayed and the
// actions are disabled.
func NewDesktopServer(ctx context.Context, conf *config.Config, confErr error) (*http.Server, error) {
	var ed desktop.Editor

	if confErr == nil {
		editor, err := NewEditorFromConfig(ctx, conf)
		if err != nil {
			confErr = errors.WithStack(err)
		} else {
			ed = editor
		}
	}

	store := app.NewStore(settings.Defaults)

	var handler http.Handler = desktop.NewHandler(ed, store, confErr)

	handler = sloghttp.Recovery(handler)
	handler = sloghttp.NewWithConfig(slog.Default(), sloghttp.Config{
		DefaultLevel:     slog.LevelDebug,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
	})(handler)

	server := &http.Server{
		Handler: handler,
	}

	return server, nil
}

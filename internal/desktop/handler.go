package desktop

import (
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/bornholm/growi-editor/internal/desktop/app"
	"github.com/bornholm/growi-editor/internal/desktop/settings"
	"github.com/bornholm/growi-editor/internal/editor"
	"github.com/bornholm/growi-editor/pkg/client"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:embed templates/*.html
var templateFS embed.FS

var formTemplate = template.Must(template.ParseFS(templateFS, "templates/form.html"))

type Editor interface {
	FetchCurrentContent(ctx context.Context, pageID string, funcs ...editor.OptionFunc) (*editor.Content, error)
	SubmitUpdate(ctx context.Context, pageID string, body string, funcs ...editor.OptionFunc) (*client.UpdatePageResponse, error)
}

// Handler serves the page editing form displayed in the desktop window.
type Handler struct {
	mux   *http.ServeMux
	store *app.SettingsStore[settings.Settings]

	editor     Editor
	startupErr error
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// NewHandler returns the desktop form handler. When startupErr is not nil
// (typically a configuration error) the form is displayed with its actions
// disabled and the error in the status line.
func NewHandler(ed Editor, store *app.SettingsStore[settings.Settings], startupErr error) *Handler {
	h := &Handler{
		mux:        http.NewServeMux(),
		store:      store,
		editor:     ed,
		startupErr: startupErr,
	}

	h.mux.Handle("GET /{$}", http.HandlerFunc(h.getFormPage))
	h.mux.Handle("POST /actions/fetch", http.HandlerFunc(h.handleFetch))
	h.mux.Handle("POST /actions/update", http.HandlerFunc(h.handleUpdate))
	h.mux.Handle("GET /metrics", promhttp.Handler())

	return h
}

var _ http.Handler = &Handler{}

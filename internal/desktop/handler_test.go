package desktop

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/bornholm/growi-editor/internal/config"
	"github.com/bornholm/growi-editor/internal/desktop/app"
	"github.com/bornholm/growi-editor/internal/desktop/settings"
	"github.com/bornholm/growi-editor/internal/editor"
	"github.com/bornholm/growi-editor/pkg/client"
	"github.com/pkg/errors"
)

type fakeEditor struct {
	content   *editor.Content
	updateErr error

	fetched []string
	updated []string
}

// FetchCurrentContent implements Editor.
func (e *fakeEditor) FetchCurrentContent(ctx context.Context, pageID string, funcs ...editor.OptionFunc) (*editor.Content, error) {
	e.fetched = append(e.fetched, pageID)
	return e.content, nil
}

// SubmitUpdate implements Editor.
func (e *fakeEditor) SubmitUpdate(ctx context.Context, pageID string, body string, funcs ...editor.OptionFunc) (*client.UpdatePageResponse, error) {
	e.updated = append(e.updated, body)

	if e.updateErr != nil {
		return nil, e.updateErr
	}

	return &client.UpdatePageResponse{}, nil
}

var _ Editor = &fakeEditor{}

func newTestStore(t *testing.T) *app.SettingsStore[settings.Settings] {
	t.Helper()
	return app.NewStoreAt(t.TempDir(), settings.Defaults)
}

func doRequest(t *testing.T, h http.Handler, method string, path string, form url.Values) string {
	t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if e, g := http.StatusOK, rec.Code; e != g {
		t.Fatalf("rec.Code: expected '%v', got '%v'", e, g)
	}

	return rec.Body.String()
}

func TestHandlerFetch(t *testing.T) {
	ed := &fakeEditor{
		content: &editor.Content{PageID: "page1", RevisionID: "rev1", Body: "# Fetched body"},
	}

	store := newTestStore(t)
	h := NewHandler(ed, store, nil)

	page := doRequest(t, h, http.MethodGet, "/", nil)
	if !strings.Contains(page, "Ready") {
		t.Errorf("page: expected 'Ready' status")
	}

	page = doRequest(t, h, http.MethodPost, "/actions/fetch", url.Values{"pageId": {"page1"}, "body": {""}})

	if !strings.Contains(page, "# Fetched body") {
		t.Errorf("page: expected fetched body in textarea")
	}

	if !strings.Contains(page, "revision rev1") {
		t.Errorf("page: expected revision in status line")
	}

	st, err := store.Get(true)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "page1", st.LastPageID; e != g {
		t.Errorf("st.LastPageID: expected '%v', got '%v'", e, g)
	}
}

func TestHandlerUpdateError(t *testing.T) {
	ed := &fakeEditor{
		updateErr: errors.WithStack(client.NewAPIError(http.StatusBadRequest, "page not found")),
	}

	h := NewHandler(ed, newTestStore(t), nil)

	page := doRequest(t, h, http.MethodPost, "/actions/update", url.Values{"pageId": {"page1"}, "body": {"new body"}})

	if !strings.Contains(page, "page not found") {
		t.Errorf("page: expected raw error message in status line")
	}

	if !strings.Contains(page, "new body") {
		t.Errorf("page: expected submitted body to be kept")
	}

	if e, g := 1, len(ed.updated); e != g {
		t.Errorf("len(ed.updated): expected '%v', got '%v'", e, g)
	}
}

func TestHandlerConfigurationError(t *testing.T) {
	ed := &fakeEditor{}

	confErr := config.NewError("config.json", errors.New("no such file or directory"))

	h := NewHandler(ed, newTestStore(t), confErr)

	page := doRequest(t, h, http.MethodGet, "/", nil)

	if !strings.Contains(page, "config.json is missing or malformed") {
		t.Errorf("page: expected configuration error in status line")
	}

	if !strings.Contains(page, "disabled") {
		t.Errorf("page: expected disabled actions")
	}

	doRequest(t, h, http.MethodPost, "/actions/update", url.Values{"pageId": {"page1"}, "body": {"new body"}})

	if e, g := 0, len(ed.updated); e != g {
		t.Errorf("len(ed.updated): expected '%v', got '%v'", e, g)
	}
}

func TestHandlerFetchKeepsLeadingNewline(t *testing.T) {
	const body = "\n# Title\n\ntext"

	ed := &fakeEditor{
		content: &editor.Content{PageID: "page1", RevisionID: "rev1", Body: body},
	}

	h := NewHandler(ed, newTestStore(t), nil)

	page := doRequest(t, h, http.MethodPost, "/actions/fetch", url.Values{"pageId": {"page1"}, "body": {""}})

	start := strings.Index(page, "<textarea")
	if start == -1 {
		t.Fatalf("page: expected a textarea")
	}

	end := strings.Index(page[start:], ">")
	if end == -1 {
		t.Fatalf("page: expected a closed textarea start tag")
	}

	// The first line feed after the start tag is dropped by HTML parsers
	if e, g := "\n"+body+"</textarea>", page[start+end+1:]; !strings.HasPrefix(g, e) {
		t.Errorf("textarea content: expected prefix '%q', got '%q'", e, g[:min(len(g), len(e))])
	}
}

func TestHandlerUpdateNormalizesLineEndings(t *testing.T) {
	ed := &fakeEditor{}

	h := NewHandler(ed, newTestStore(t), nil)

	doRequest(t, h, http.MethodPost, "/actions/update", url.Values{"pageId": {"page1"}, "body": {"# Title\r\n\r\ntext\r\n"}})

	if e, g := 1, len(ed.updated); e != g {
		t.Fatalf("len(ed.updated): expected '%v', got '%v'", e, g)
	}

	if e, g := "# Title\n\ntext\n", ed.updated[0]; e != g {
		t.Errorf("ed.updated[0]: expected '%q', got '%q'", e, g)
	}
}

func TestHandlerUpdateValidation(t *testing.T) {
	ed := &fakeEditor{
		updateErr: errors.WithStack(editor.NewValidationError(editor.FieldBody)),
	}

	h := NewHandler(ed, newTestStore(t), nil)

	page := doRequest(t, h, http.MethodPost, "/actions/update", url.Values{"pageId": {"page1"}, "body": {" "}})

	if !strings.Contains(page, "Please fill in the required fields") {
		t.Errorf("page: expected validation status")
	}

	if !strings.Contains(page, "this field is required") {
		t.Errorf("page: expected field error")
	}
}

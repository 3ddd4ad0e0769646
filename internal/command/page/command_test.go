package page

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bornholm/growi-editor/internal/editor"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/zalando/go-keyring"
)

const (
	testPageID     = "685671a868e660b807288181"
	testRevisionID = "685671a868e660b807288182"
)

type fakeGrowi struct {
	updatedRevision string
	updatedBody     string
}

func (g *fakeGrowi) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("access_token") != "secret" {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("forbidden"))
		return
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/_api/v3/pages/list":
		fmt.Fprintf(w, `{"pages":[{"_id":%q,"path":"/sandbox","revision":%q}],"totalCount":1}`, testPageID, testRevisionID)

	case r.Method == http.MethodGet && r.URL.Path == "/_api/v3/page":
		fmt.Fprintf(w, `{"page":{"_id":%q,"path":"/sandbox","revision":{"_id":%q,"body":"# Sandbox"}}}`, testPageID, testRevisionID)

	case r.Method == http.MethodPut && r.URL.Path == "/_api/v3/page":
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		g.updatedRevision = r.PostForm.Get("revisionId")
		g.updatedBody = r.PostForm.Get("body")

		w.WriteHeader(http.StatusCreated)
		fmt.Fprintf(w, `{"page":{"_id":%q},"revision":{"_id":"rev-new"}}`, testPageID)

	default:
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("not found"))
	}
}

func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var stdout bytes.Buffer

	app := &cli.App{
		Name:      "growi",
		Commands:  []*cli.Command{Command()},
		Reader:    strings.NewReader(stdin),
		Writer:    &stdout,
		ErrWriter: io.Discard,
	}

	err := app.Run(append([]string{"growi", "pages"}, args...))

	return stdout.String(), err
}

func TestPagesCommand(t *testing.T) {
	keyring.MockInit()

	growi := &fakeGrowi{}

	server := httptest.NewServer(growi)
	defer server.Close()

	flags := []string{"--url", server.URL, "--access-token", "secret"}

	t.Run("list", func(t *testing.T) {
		out, err := runApp(t, "", append([]string{"list"}, flags...)...)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if !strings.Contains(out, testPageID) || !strings.Contains(out, "/sandbox") {
			t.Errorf("out: expected page listing, got '%s'", out)
		}
	})

	t.Run("fetch", func(t *testing.T) {
		out, err := runApp(t, "", append([]string{"fetch", "--id", testPageID}, flags...)...)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := "# Sandbox", out; e != g {
			t.Errorf("out: expected '%v', got '%v'", e, g)
		}
	})

	t.Run("update from stdin", func(t *testing.T) {
		out, err := runApp(t, "# Sandbox\n\nUpdated", append([]string{"update", "--id", testPageID}, flags...)...)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := testRevisionID, growi.updatedRevision; e != g {
			t.Errorf("growi.updatedRevision: expected '%v', got '%v'", e, g)
		}

		if e, g := "# Sandbox\n\nUpdated", growi.updatedBody; e != g {
			t.Errorf("growi.updatedBody: expected '%v', got '%v'", e, g)
		}

		if !strings.Contains(out, "rev-new") {
			t.Errorf("out: expected new revision id, got '%s'", out)
		}
	})

	t.Run("update with blank body", func(t *testing.T) {
		growi.updatedBody = ""

		_, err := runApp(t, "", append([]string{"update", "--id", testPageID, "--body", "  "}, flags...)...)
		if !editor.IsValidation(err) {
			t.Fatalf("err: expected validation error, got '%v'", err)
		}

		if e, g := "", growi.updatedBody; e != g {
			t.Errorf("growi.updatedBody: expected '%v', got '%v'", e, g)
		}
	})

	t.Run("bad token", func(t *testing.T) {
		_, err := runApp(t, "", "get", "--id", testPageID, "--url", server.URL, "--access-token", "wrong")
		if err == nil {
			t.Fatalf("err: expected non-nil error")
		}

		if e, g := "forbidden", err.Error(); e != g {
			t.Errorf("err.Error(): expected '%v', got '%v'", e, g)
		}
	})
}

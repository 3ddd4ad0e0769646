package setup

import (
	"context"
	"testing"

	"github.com/bornholm/growi-editor/internal/config"
	"github.com/pkg/errors"
)

func TestNewClientFromConfig(t *testing.T) {
	ctx := context.Background()

	if _, err := NewClientFromConfig(ctx, &config.Config{URL: "wiki.example.com"}); err == nil {
		t.Errorf("NewClientFromConfig(): expected error for url without scheme")
	}

	ed, err := NewEditorFromConfig(ctx, &config.Config{URL: "https://wiki.example.com", AccessToken: "secret"})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if ed == nil {
		t.Errorf("ed: expected non-nil editor")
	}
}

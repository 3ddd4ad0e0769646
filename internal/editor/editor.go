package editor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/growi-editor/internal/config"
	"github.com/bornholm/growi-editor/internal/metrics"
	"github.com/bornholm/growi-editor/internal/workflow"
	"github.com/bornholm/growi-editor/pkg/client"
	"github.com/pkg/errors"
)

const (
	FieldURL         = "url"
	FieldAccessToken = "access token"
	FieldPageID      = "page id"
	FieldBody        = "body"
)

type PageClient interface {
	GetPage(ctx context.Context, pageID string) (*client.PageResponse, error)
	UpdatePage(ctx context.Context, pageID string, revisionID string, body string) (*client.UpdatePageResponse, error)
}

// Content is the latest revision of a page.
type Content struct {
	PageID     string
	Path       string
	RevisionID string
	Body       string
}

// Editor implements the fetch and update procedures triggered by the user.
// It keeps no page state between calls.
type Editor struct {
	client PageClient
	conf   *config.Config
}

// FetchCurrentContent retrieves the latest revision body of the page.
func (e *Editor) FetchCurrentContent(ctx context.Context, pageID string, funcs ...OptionFunc) (*Content, error) {
	opts := NewOptions(funcs...)

	pageID = strings.TrimSpace(pageID)
	ctx = slogx.WithAttrs(ctx, slog.String("page_id", pageID))

	if err := e.validate(pageID, nil); err != nil {
		metrics.Actions.WithLabelValues(metrics.ActionFetch, metrics.OutcomeRejected).Inc()
		return nil, errors.WithStack(err)
	}

	opts.Progress(ctx, "fetching current page content")

	content, err := e.fetchRevision(ctx, pageID, true)
	if err != nil {
		metrics.Actions.WithLabelValues(metrics.ActionFetch, metrics.OutcomeFailed).Inc()
		return nil, errors.WithStack(err)
	}

	opts.Progress(ctx, "current page content fetched")

	metrics.Actions.WithLabelValues(metrics.ActionFetch, metrics.OutcomeSucceeded).Inc()

	return content, nil
}

// SubmitUpdate replaces the page body. It first fetches the current revision
// identifier then submits the new body tagged with it. Whitespace-only bodies
// are rejected before any request is sent.
func (e *Editor) SubmitUpdate(ctx context.Context, pageID string, body string, funcs ...OptionFunc) (*client.UpdatePageResponse, error) {
	opts := NewOptions(funcs...)

	pageID = strings.TrimSpace(pageID)
	ctx = slogx.WithAttrs(ctx, slog.String("page_id", pageID))

	if err := e.validate(pageID, &body); err != nil {
		metrics.Actions.WithLabelValues(metrics.ActionUpdate, metrics.OutcomeRejected).Inc()
		return nil, errors.WithStack(err)
	}

	var (
		revisionID string
		result     *client.UpdatePageResponse
	)

	wf := workflow.New(
		workflow.StepFunc("fetch_revision", func(ctx context.Context) error {
			opts.Progress(ctx, "fetching current revision id")

			content, err := e.fetchRevision(ctx, pageID, false)
			if err != nil {
				return errors.WithStack(err)
			}

			revisionID = content.RevisionID

			return nil
		}),
		workflow.StepFunc("update_page", func(ctx context.Context) error {
			opts.Progress(ctx, fmt.Sprintf("revision id '%s' fetched, updating page", revisionID))

			res, err := e.client.UpdatePage(ctx, pageID, revisionID, body)
			if err != nil {
				return errors.WithStack(err)
			}

			result = res

			return nil
		}),
	)

	if err := wf.Execute(ctx); err != nil {
		metrics.Actions.WithLabelValues(metrics.ActionUpdate, metrics.OutcomeFailed).Inc()
		return nil, errors.WithStack(err)
	}

	opts.Progress(ctx, "page updated")

	metrics.Actions.WithLabelValues(metrics.ActionUpdate, metrics.OutcomeSucceeded).Inc()

	return result, nil
}

func (e *Editor) validate(pageID string, body *string) error {
	missing := make([]string, 0)

	if e.conf == nil || e.conf.URL == "" {
		missing = append(missing, FieldURL)
	}

	if e.conf == nil || e.conf.AccessToken == "" {
		missing = append(missing, FieldAccessToken)
	}

	if pageID == "" {
		missing = append(missing, FieldPageID)
	}

	if body != nil && strings.TrimSpace(*body) == "" {
		missing = append(missing, FieldBody)
	}

	if len(missing) > 0 {
		return NewValidationError(missing...)
	}

	return nil
}

func (e *Editor) fetchRevision(ctx context.Context, pageID string, withBody bool) (*Content, error) {
	res, err := e.client.GetPage(ctx, pageID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if res.Page == nil {
		return nil, errors.WithStack(NewUnexpectedResponseError("page", res.Raw()))
	}

	revision := res.Page.Revision
	if revision == nil || revision.ID == "" {
		return nil, errors.WithStack(NewUnexpectedResponseError("page.revision._id", res.Raw()))
	}

	if withBody && !revision.HasBody() {
		return nil, errors.WithStack(NewUnexpectedResponseError("page.revision.body", res.Raw()))
	}

	return &Content{
		PageID:     pageID,
		Path:       res.Page.Path,
		RevisionID: revision.ID,
		Body:       revision.Body,
	}, nil
}

func New(client PageClient, conf *config.Config) *Editor {
	return &Editor{
		client: client,
		conf:   conf,
	}
}

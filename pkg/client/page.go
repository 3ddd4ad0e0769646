package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

const (
	endpointPage      = "/page"
	endpointPagesList = "/pages/list"
)

// ListPages returns the pages located under the given path prefix.
func (c *Client) ListPages(ctx context.Context, path string) (*ListPagesResponse, error) {
	query := url.Values{}
	query.Set("path", path)

	var res ListPagesResponse

	if err := c.jsonRequest(ctx, http.MethodGet, endpointPagesList, query, nil, &res, http.StatusOK); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res, nil
}

// GetPage returns the page identified by pageID, including its latest
// revision body and identifier.
func (c *Client) GetPage(ctx context.Context, pageID string) (*PageResponse, error) {
	query := url.Values{}
	query.Set("pageId", pageID)

	var res PageResponse

	if err := c.jsonRequest(ctx, http.MethodGet, endpointPage, query, nil, &res, http.StatusOK); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res, nil
}

func (c *Client) CreatePage(ctx context.Context, path string, body string) (*CreatePageResponse, error) {
	form := url.Values{}
	form.Set("path", path)
	form.Set("body", body)

	var res CreatePageResponse

	if err := c.jsonRequest(ctx, http.MethodPost, endpointPage, nil, form, &res, http.StatusCreated); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res, nil
}

// UpdatePage replaces the body of the page. revisionID must reference the
// revision being superseded; the server rejects stale identifiers.
func (c *Client) UpdatePage(ctx context.Context, pageID string, revisionID string, body string) (*UpdatePageResponse, error) {
	form := url.Values{}
	form.Set("pageId", pageID)
	// Growi reads "revisionId", whatever the API reference says.
	form.Set("revisionId", revisionID)
	form.Set("body", body)

	var res UpdatePageResponse

	if err := c.jsonRequest(ctx, http.MethodPut, endpointPage, nil, form, &res, http.StatusOK, http.StatusCreated); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res, nil
}

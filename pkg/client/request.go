package client

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

const apiPrefix = "/_api/v3"

const paramAccessToken = "access_token"

func (c *Client) request(ctx context.Context, method string, path string, query url.Values, form url.Values, expectedStatus ...int) ([]byte, error) {
	endpoint := c.baseURL.JoinPath(apiPrefix, path)
	if !strings.HasPrefix(endpoint.Path, "/") {
		endpoint.Path = "/" + endpoint.Path
	}

	slogAttrs := []any{
		slog.String("method", method),
		slog.String("path", endpoint.Path),
		slog.String("host", endpoint.Host),
	}

	if query == nil {
		query = url.Values{}
	}

	query.Set(paramAccessToken, c.accessToken)
	endpoint.RawQuery = query.Encode()

	slog.DebugContext(ctx, "new client request", slogAttrs...)

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req.Header.Set("Accept", "application/json")

	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	slog.DebugContext(ctx, "client response", append(slogAttrs, slog.Int("response_code", res.StatusCode))...)

	if !slices.Contains(expectedStatus, res.StatusCode) {
		return nil, errors.WithStack(NewAPIError(res.StatusCode, string(data)))
	}

	return data, nil
}

func (c *Client) jsonRequest(ctx context.Context, method string, path string, query url.Values, form url.Values, result any, expectedStatus ...int) error {
	data, err := c.request(ctx, method, path, query, form, expectedStatus...)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := json.Unmarshal(data, result); err != nil {
		return errors.WithStack(NewUnexpectedResponseError(data, err.Error()))
	}

	if r, ok := result.(interface{ setRaw([]byte) }); ok {
		r.setRaw(data)
	}

	return nil
}

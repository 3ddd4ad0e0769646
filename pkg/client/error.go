package client

import (
	"fmt"
	"net/http"
)

// APIError is returned when the server answers with an unexpected status
// code. Its message is the raw response body, verbatim.
type APIError struct {
	statusCode int
	body       string
}

func (e *APIError) Error() string {
	return e.body
}

func (e *APIError) StatusCode() int {
	return e.statusCode
}

func (e *APIError) Body() string {
	return e.body
}

// IsConflict reports whether the server rejected the request because the
// submitted revision is not the latest one.
func (e *APIError) IsConflict() bool {
	return e.statusCode == http.StatusConflict
}

func NewAPIError(statusCode int, body string) *APIError {
	return &APIError{
		statusCode: statusCode,
		body:       body,
	}
}

var _ error = &APIError{}

// UnexpectedResponseError is returned when the server answers with a success
// status but a body that cannot be decoded.
type UnexpectedResponseError struct {
	body   []byte
	reason string
}

func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("unexpected response (%s): %s", e.reason, e.body)
}

func (e *UnexpectedResponseError) Body() []byte {
	return e.body
}

func NewUnexpectedResponseError(body []byte, reason string) *UnexpectedResponseError {
	return &UnexpectedResponseError{
		body:   body,
		reason: reason,
	}
}

var _ error = &UnexpectedResponseError{}

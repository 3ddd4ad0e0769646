package editor

import (
	"fmt"
	"strings"

	"github.com/bornholm/growi-editor/pkg/client"
	"github.com/pkg/errors"
)

// ValidationError reports missing user input. It is returned before any
// network call is made.
type ValidationError struct {
	fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required input: %s", strings.Join(e.fields, ", "))
}

func (e *ValidationError) Fields() []string {
	return e.fields
}

func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{fields: fields}
}

var _ error = &ValidationError{}

// UnexpectedResponseError reports a successful response missing the fields
// the workflow depends on.
type UnexpectedResponseError struct {
	field string
	body  []byte
}

func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("could not retrieve page, '%s' is missing from response: %s", e.field, e.body)
}

func (e *UnexpectedResponseError) Field() string {
	return e.field
}

func (e *UnexpectedResponseError) Body() []byte {
	return e.body
}

func NewUnexpectedResponseError(field string, body []byte) *UnexpectedResponseError {
	return &UnexpectedResponseError{field: field, body: body}
}

var _ error = &UnexpectedResponseError{}

// IsConflict reports whether err is the server rejecting an update submitted
// against a stale revision.
func IsConflict(err error) bool {
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		return false
	}

	return apiErr.IsConflict()
}

func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

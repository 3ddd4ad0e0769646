package config

import "fmt"

// Error reports a configuration file that is missing or cannot be parsed.
type Error struct {
	path string
	err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s is missing or malformed: %s", e.path, e.err)
}

func (e *Error) Unwrap() error {
	return e.err
}

func (e *Error) Path() string {
	return e.path
}

func NewError(path string, err error) *Error {
	return &Error{path: path, err: err}
}

var _ error = &Error{}

package models

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError means the referenced record does not exist.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// ValidationError carries the messages returned to the client as "errors".
type ValidationError struct {
	Messages []string
}

func NewValidationError(msgs ...string) ValidationError {
	return ValidationError{Messages: msgs}
}

func (e ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return "validation failed"
	}
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// MalformedRequestError wraps a body that could not be decoded.
type MalformedRequestError struct {
	Err error
}

func (e MalformedRequestError) Error() string {
	if e.Err == nil {
		return "malformed request"
	}
	return "malformed request: " + e.Err.Error()
}

func (e MalformedRequestError) Unwrap() error {
	return e.Err
}

func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// File: services/apperr/errors.go
package apperr

import (
	"errors"
	"fmt"
)

// Error codes shared by all services. Handlers map these onto HTTP statuses.
const (
	CodeValidation = "validation"
	CodeNotFound   = "not_found"
	CodeConflict   = "conflict"
	CodeInternal   = "internal"
)

type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func NewValidation(msg string) error {
	return &Error{Code: CodeValidation, Message: msg}
}

func NewNotFound(msg string) error {
	return &Error{Code: CodeNotFound, Message: msg}
}

func NewConflict(msg string) error {
	return &Error{Code: CodeConflict, Message: msg}
}

func NewInternal(msg string, err error) error {
	return &Error{Code: CodeInternal, Message: msg, Err: err}
}

func code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

func IsValidation(err error) bool { return code(err) == CodeValidation }
func IsNotFound(err error) bool   { return code(err) == CodeNotFound }
func IsConflict(err error) bool   { return code(err) == CodeConflict }

package core

import "github.com/pkg/errors"

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// Messager is implemented by errors carrying a message that is safe to show
// to the user as-is (e.g. upstream responses with a "message" body field).
type Messager interface {
	PublicMessage() string
}

// PublicMessage returns the user-facing message of err when it carries one,
// and fallback otherwise.
func PublicMessage(err error, fallback string) string {
	if m, ok := errors.Cause(err).(Messager); ok {
		if msg := m.PublicMessage(); msg != "" {
			return msg
		}
	}
	return fallback
}

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}

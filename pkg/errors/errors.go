package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed schema error with HTTP awareness.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Field   string `json:"field,omitempty"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Message
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s", e.Field, msg)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches errors sharing the same code, so sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors for common scenarios.
var (
	ErrSchemaMismatch  = New("SCHEMA_MISMATCH", http.StatusUnprocessableEntity, "payload does not match schema")
	ErrUnknownEnum     = New("UNKNOWN_ENUM_VALUE", http.StatusUnprocessableEntity, "unknown enum value")
	ErrUnknownVariant  = New("UNKNOWN_MATERIAL_KIND", http.StatusUnprocessableEntity, "unknown material kind")
	ErrEmptyMaterial   = New("EMPTY_MATERIAL", http.StatusBadRequest, "material has no attachment")
	ErrValidation      = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrUnsupportedKind = New("UNSUPPORTED_KIND", http.StatusBadRequest, "unsupported resource kind")
	ErrInternal        = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal error")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// WithField returns a copy of err scoped to the given JSON field path.
func WithField(err *Error, field string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	clone.Field = field
	return &clone
}

// Prefix returns a copy of err whose field path is nested under parent.
func Prefix(err *Error, parent string) *Error {
	if err == nil || parent == "" {
		return err
	}
	if err.Field == "" {
		return WithField(err, parent)
	}
	return WithField(err, parent+"."+err.Field)
}

// Package apperrors defines the error taxonomy shared by services and handlers.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error.
type Kind string

const (
	KindValidation     Kind = "VALIDATION_ERROR"
	KindNotFound       Kind = "NOT_FOUND"
	KindForbidden      Kind = "FORBIDDEN"
	KindConflict       Kind = "CONFLICT"
	KindAuthentication Kind = "AUTHENTICATION_ERROR"
	KindInternal       Kind = "INTERNAL_ERROR"
)

// AppError is an error with a kind and a message safe to show to API consumers.
type AppError struct {
	Kind     Kind
	Message  string
	Internal error
}

func (e *AppError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Internal != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Internal)
	}
	return e.Message
}

// Unwrap exposes the internal error for errors.Is / errors.As.
func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Internal
}

// Is reports whether target is an AppError of the same kind.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// StatusCode returns the HTTP status for the error kind.
func (e *AppError) StatusCode() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	case KindAuthentication:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Sentinels for errors.Is checks. Matching is by kind only.
var (
	ErrValidation     = &AppError{Kind: KindValidation, Message: "invalid request"}
	ErrNotFound       = &AppError{Kind: KindNotFound, Message: "resource not found"}
	ErrForbidden      = &AppError{Kind: KindForbidden, Message: "permission denied"}
	ErrConflict       = &AppError{Kind: KindConflict, Message: "conflict"}
	ErrAuthentication = &AppError{Kind: KindAuthentication, Message: "authentication required"}
	ErrInternal       = &AppError{Kind: KindInternal, Message: "internal server error"}
)

func Validation(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func NotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func Forbidden(message string) *AppError {
	return &AppError{Kind: KindForbidden, Message: message}
}

func Conflict(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

func Authentication(message string) *AppError {
	return &AppError{Kind: KindAuthentication, Message: message}
}

// Internal wraps a storage or unexpected failure. The message shown to
// clients is always the generic one.
func Internal(err error) *AppError {
	return &AppError{Kind: KindInternal, Message: ErrInternal.Message, Internal: err}
}

// FromError converts any error into an AppError, defaulting to KindInternal.
func FromError(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

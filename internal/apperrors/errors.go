package apperrors

import (
	"errors"
	"fmt"

	"github.com/hoteldesk/hotel_ops_backend/internal/core/domain"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrSourceUnavailable indicates a record-store source collection could not
// be reached or queried. It is fatal to the enclosing report request: no
// partial report is ever returned in its place.
var ErrSourceUnavailable = errors.New("source collection unavailable")

// SourceError wraps a fetch failure with the collection and window that
// failed so the caller can say exactly which source broke.
type SourceError struct {
	Source domain.SourceCollection
	Window domain.ReportWindow
	Err    error
}

// NewSourceError builds a SourceError around the underlying fetch error.
func NewSourceError(source domain.SourceCollection, window domain.ReportWindow, err error) *SourceError {
	return &SourceError{Source: source, Window: window, Err: err}
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s unavailable for window %s: %v", e.Source, e.Window, e.Err)
}

// Unwrap exposes the underlying driver error.
func (e *SourceError) Unwrap() error {
	return e.Err
}

// Is matches ErrSourceUnavailable so callers can branch with errors.Is
// without losing the wrapped cause.
func (e *SourceError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

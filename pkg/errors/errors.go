package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed domain error with HTTP awareness.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches errors by code so cloned values compare equal to their template.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
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

// Input validation errors. All are recoverable by the caller.
var (
	ErrInvalidDateFormat     = New("INVALID_DATE_FORMAT", http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD")
	ErrFutureDateNotAllowed  = New("FUTURE_DATE_NOT_ALLOWED", http.StatusBadRequest, "end date cannot be in the future")
	ErrInvertedRange         = New("INVERTED_RANGE", http.StatusBadRequest, "start date cannot be after end date")
	ErrRangeTooWide          = New("RANGE_TOO_WIDE", http.StatusBadRequest, "date range too wide")
	ErrRangeTooOld           = New("RANGE_TOO_OLD", http.StatusBadRequest, "start date too old")
	ErrInvalidLessonType     = New("INVALID_LESSON_TYPE", http.StatusBadRequest, "invalid lesson type")
	ErrValidation            = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrUnauthorized          = New("UNAUTHORIZED", http.StatusUnauthorized, "unauthorized")
	ErrForbidden             = New("FORBIDDEN", http.StatusForbidden, "insufficient scope")
	ErrNotFound              = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrDocumentsDisabled     = New("DOCUMENTS_DISABLED", http.StatusServiceUnavailable, "document service is not configured")
	ErrDocumentServiceFailed = New("DOCUMENT_SERVICE_ERROR", http.StatusBadGateway, "document service request failed")
	ErrInternal              = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
	ErrCacheMiss             = New("CACHE_MISS", http.StatusNotFound, "cache miss")
)

var validationCodes = map[string]struct{}{}

func init() {
	for _, e := range []*Error{
		ErrInvalidDateFormat,
		ErrFutureDateNotAllowed,
		ErrInvertedRange,
		ErrRangeTooWide,
		ErrRangeTooOld,
		ErrInvalidLessonType,
		ErrValidation,
	} {
		validationCodes[e.Code] = struct{}{}
	}
}

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

// IsValidation reports whether err is a caller input error that should be
// rendered as a structured result instead of a fault.
func IsValidation(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	_, ok := validationCodes[e.Code]
	return ok
}

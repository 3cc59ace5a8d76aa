package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an error carrying the HTTP status it should be reported with.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on code and message so wrapped copies of a sentinel compare equal.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// Wrap returns a copy of e carrying err. Sentinels are never mutated.
func (e *Error) Wrap(err error) *Error {
	return &Error{Code: e.Code, Message: e.Message, Err: err}
}

func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

var (
	// ErrStoreUnavailable is returned when no database connection was configured.
	ErrStoreUnavailable = New(http.StatusInternalServerError, "Database not available. Check DATABASE_URL and DATABASE_NAME environment variables", nil)
	// ErrStorage covers every failed read or write against the store.
	ErrStorage = New(http.StatusInternalServerError, "Database error", nil)
)

// StatusCode returns the HTTP status for err, 500 when err carries none.
func StatusCode(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

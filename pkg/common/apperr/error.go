package apperr

import (
	"fmt"
)

// AppError is an error carrying a stable numeric code and a user-facing message.
type AppError struct {
	Code    int
	Message string
	Cause   error
}

// New creates an AppError.
func New(code int, msg string, cause error) *AppError {
	return &AppError{Code: code, Message: msg, Cause: cause}
}

// Wrap wraps err into an AppError. It returns nil if err is nil.
func Wrap(err error, code int, msg string) *AppError {
	if err == nil {
		return nil
	}
	return New(code, msg, err)
}

func (e *AppError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("[%d] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *AppError) Unwrap() error {
	return e.Cause
}

package apperr

import (
	"fmt"
)

// Error codes
const (
	CodeUnderflow      = 1001
	CodeInvalidVersion = 1002
	CodeInvalidInput   = 1003
	CodeInternal       = 1500
)

// Generic Action Messages
const (
	MsgEnqueueFailed = "failed to enqueue"
	MsgDequeueFailed = "failed to dequeue"
	MsgPrintFailed   = "failed to print"
	MsgReadFailed    = "failed to read input"
	MsgBenchFailed   = "failed to run benchmark"
	MsgInvalidInput  = "invalid input"
)

// MapError wraps an error with a standardized message
func MapError(serviceName string, err error, code int, msg string) *AppError {
	if err == nil {
		return nil
	}

	formattedMsg := fmt.Sprintf("%s %s", serviceName, msg)
	return Wrap(err, code, formattedMsg)
}

// NewError creates a new AppError with standardized message format
func NewError(serviceName string, code int, msg string, cause error) *AppError {
	formattedMsg := fmt.Sprintf("%s %s", serviceName, msg)
	return New(code, formattedMsg, cause)
}

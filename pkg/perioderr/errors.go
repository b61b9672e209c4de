package perioderr

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Date expression errors
	ErrExprUnparseable  ErrorCode = "EXPR_UNPARSEABLE"
	ErrExprUnresolvable ErrorCode = "EXPR_UNRESOLVABLE"
	ErrDateInvalid      ErrorCode = "DATE_INVALID"
)

// PeriodError represents a structured error with code and details
type PeriodError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PeriodError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PeriodError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PeriodError) Is(target error) bool {
	var targetErr *PeriodError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PeriodError with the given code and message
func New(code ErrorCode, message string) *PeriodError {
	return &PeriodError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PeriodError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PeriodError {
	return &PeriodError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PeriodError
func Wrap(err error, code ErrorCode, message string) *PeriodError {
	if err == nil {
		return nil
	}
	return &PeriodError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PeriodError {
	if err == nil {
		return nil
	}
	return &PeriodError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PeriodError) WithDetail(key string, value interface{}) *PeriodError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var periodErr *PeriodError
	if errors.As(err, &periodErr) {
		return periodErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PeriodError
func GetErrorCode(err error) ErrorCode {
	var periodErr *PeriodError
	if errors.As(err, &periodErr) {
		return periodErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PeriodError
func GetErrorDetails(err error) map[string]interface{} {
	var periodErr *PeriodError
	if errors.As(err, &periodErr) {
		return periodErr.Details
	}
	return nil
}

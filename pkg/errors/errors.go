package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Rule errors
	ErrRegexInvalid ErrorCode = "REGEX_INVALID"
	ErrColorUnknown ErrorCode = "COLOR_UNKNOWN"

	// I/O errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
)

// PipecolorError represents a structured error with code and details
type PipecolorError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PipecolorError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PipecolorError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PipecolorError) Is(target error) bool {
	var targetErr *PipecolorError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PipecolorError with the given code and message
func New(code ErrorCode, message string) *PipecolorError {
	return &PipecolorError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PipecolorError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PipecolorError {
	return &PipecolorError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PipecolorError
func Wrap(err error, code ErrorCode, message string) *PipecolorError {
	if err == nil {
		return nil
	}
	return &PipecolorError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PipecolorError {
	if err == nil {
		return nil
	}
	return &PipecolorError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PipecolorError) WithDetail(key string, value interface{}) *PipecolorError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var perr *PipecolorError
	if errors.As(err, &perr) {
		return perr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PipecolorError
func GetErrorCode(err error) ErrorCode {
	var perr *PipecolorError
	if errors.As(err, &perr) {
		return perr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PipecolorError
func GetErrorDetails(err error) map[string]interface{} {
	var perr *PipecolorError
	if errors.As(err, &perr) {
		return perr.Details
	}
	return nil
}

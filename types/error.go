package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unified error code across the module.
type ErrorCode string

// Configuration error codes
const (
	ErrConfigSource     ErrorCode = "CONFIG_SOURCE"            // both or neither of path and mapping supplied
	ErrConfigParse      ErrorCode = "CONFIG_PARSE"             // unreadable or unsupported config file
	ErrConfigField      ErrorCode = "CONFIG_FIELD"             // missing or invalid configuration field
	ErrUnknownFramework ErrorCode = "CONFIG_UNKNOWN_FRAMEWORK" // requested framework is not supported
)

// Backend error codes
const (
	ErrUnknownScheme ErrorCode = "BACKEND_UNKNOWN_SCHEME" // location scheme outside the known set
)

// Engine error codes
const (
	ErrEngineConstruct ErrorCode = "ENGINE_CONSTRUCT" // engine rejected stream construction
	ErrEngineIterate   ErrorCode = "ENGINE_ITERATE"   // engine failed during a sample pull
)

// Iteration error codes
const (
	ErrPostProcess ErrorCode = "ITERATION_POST_PROCESS" // format post-processing hook failed
)

// Error represents a structured error with code, message, and context.
type Error struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Location  string    `json:"location,omitempty"`
	Framework string    `json:"framework,omitempty"`
	Cause     error     `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new Error with the given code and message.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Errorf creates a new Error with a formatted message.
func Errorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WithCause adds a cause to the error.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithLocation sets the data location the error relates to.
func (e *Error) WithLocation(location string) *Error {
	e.Location = location
	return e
}

// WithFramework sets the target framework the error relates to.
func (e *Error) WithFramework(framework string) *Error {
	e.Framework = framework
	return e
}

// GetErrorCode extracts the error code from an error, unwrapping as needed.
func GetErrorCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

func hasCodePrefix(err error, prefix string) bool {
	return strings.HasPrefix(string(GetErrorCode(err)), prefix)
}

// IsConfigError reports whether err is a configuration error.
func IsConfigError(err error) bool { return hasCodePrefix(err, "CONFIG_") }

// IsBackendError reports whether err is a backend classification error.
func IsBackendError(err error) bool { return hasCodePrefix(err, "BACKEND_") }

// IsEngineError reports whether err is a wrapped engine error.
func IsEngineError(err error) bool { return hasCodePrefix(err, "ENGINE_") }

// IsIterationError reports whether err is an iteration error not attributable
// to the engine itself.
func IsIterationError(err error) bool { return hasCodePrefix(err, "ITERATION_") }

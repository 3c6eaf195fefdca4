// Package errors provides domain-specific error types for saya.
//
// Errors carry a code so callers and tests can tell a broken settings
// document apart from an I/O failure without matching on message text.
package errors

import "fmt"

// ErrorCode represents a category of error that can occur in the application.
type ErrorCode string

const (
	// ErrCodeConfig indicates a problem with the environment-derived configuration.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"

	// ErrCodeSettings indicates a settings document that cannot be translated
	// (invalid TOML, missing section, unsupported value type, quote in a string).
	ErrCodeSettings ErrorCode = "SETTINGS_ERROR"

	// ErrCodeWorld indicates an error related to save-game world discovery.
	ErrCodeWorld ErrorCode = "WORLD_ERROR"

	// ErrCodeIO indicates a failure reading or writing a file.
	ErrCodeIO ErrorCode = "IO_ERROR"

	// ErrCodeValidation indicates a validation error.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"

	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Error represents a domain-specific error with an error code and optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new domain error with the specified code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, cause error) *Error {
	return Wrap(ErrCodeConfig, message, cause)
}

// NewSettingsError creates a new settings document error.
func NewSettingsError(message string, cause error) *Error {
	return Wrap(ErrCodeSettings, message, cause)
}

// NewWorldError creates a new world discovery error.
func NewWorldError(message string, cause error) *Error {
	return Wrap(ErrCodeWorld, message, cause)
}

// NewIOError creates a new file I/O error.
func NewIOError(message string, cause error) *Error {
	return Wrap(ErrCodeIO, message, cause)
}

// NewValidationError creates a new validation error.
func NewValidationError(message string, cause error) *Error {
	return Wrap(ErrCodeValidation, message, cause)
}

// NewInternalError creates a new internal error.
func NewInternalError(message string, cause error) *Error {
	return Wrap(ErrCodeInternal, message, cause)
}

// Sentinels for errors.Is checks by code.
var (
	ErrConfig     = New(ErrCodeConfig, "")
	ErrSettings   = New(ErrCodeSettings, "")
	ErrWorld      = New(ErrCodeWorld, "")
	ErrIO         = New(ErrCodeIO, "")
	ErrValidation = New(ErrCodeValidation, "")
)

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "error without cause",
			err:      &Error{Code: ErrCodeSettings, Message: "section \"Server\" not found"},
			expected: "[SETTINGS_ERROR] section \"Server\" not found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeIO, "failed to write world settings", errors.New("permission denied")),
			expected: "[IO_ERROR] failed to write world settings: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "wrapper", cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}
	if !errors.Is(err, cause) {
		t.Errorf("Expected errors.Is to find the cause")
	}
}

func TestError_Is(t *testing.T) {
	err1 := &Error{Code: ErrCodeSettings, Message: "test error"}
	err2 := &Error{Code: ErrCodeSettings, Message: "another error"}
	err3 := &Error{Code: ErrCodeIO, Message: "io error"}

	if !err1.Is(err2) {
		t.Errorf("Expected errors with same code to match")
	}
	if err1.Is(err3) {
		t.Errorf("Expected errors with different codes to not match")
	}
}

func TestSentinelsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("apply: %w", NewSettingsError("unsupported value", nil))

	if !errors.Is(err, ErrSettings) {
		t.Errorf("Expected wrapped settings error to match ErrSettings")
	}
	if errors.Is(err, ErrIO) {
		t.Errorf("Expected wrapped settings error not to match ErrIO")
	}
}

func TestConstructors(t *testing.T) {
	cause := errors.New("cause")
	tests := []struct {
		name string
		err  *Error
		code ErrorCode
	}{
		{"config", NewConfigError("m", cause), ErrCodeConfig},
		{"settings", NewSettingsError("m", cause), ErrCodeSettings},
		{"world", NewWorldError("m", cause), ErrCodeWorld},
		{"io", NewIOError("m", cause), ErrCodeIO},
		{"validation", NewValidationError("m", cause), ErrCodeValidation},
		{"internal", NewInternalError("m", cause), ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("Expected code %v, got %v", tt.code, tt.err.Code)
			}
			if tt.err.Message != "m" || tt.err.Cause != cause {
				t.Errorf("Expected message and cause to be preserved, got %+v", tt.err)
			}
		})
	}
}

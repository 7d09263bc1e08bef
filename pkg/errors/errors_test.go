package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeCapacityExceeded, "dataset holds %d values", 1024)

	if err.Code != ErrCodeCapacityExceeded {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeCapacityExceeded)
	}

	if err.Message != "dataset holds 1024 values" {
		t.Errorf("Message = %v, want %v", err.Message, "dataset holds 1024 values")
	}

	expected := "CAPACITY_EXCEEDED: dataset holds 1024 values"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("no such file")
	err := Wrap(ErrCodeFileNotFound, cause, "open data.csv")

	if err.Code != ErrCodeFileNotFound {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeFileNotFound)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInsufficientData, "test"),
			code:     ErrCodeInsufficientData,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInsufficientData, "test"),
			code:     ErrCodeInvalidConfiguration,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeInvalidInput, New(ErrCodeInsufficientData, "inner"), "outer"),
			code:     ErrCodeInvalidInput,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"Error type", New(ErrCodeInvalidConfiguration, "test"), ErrCodeInvalidConfiguration},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidInput, "friendly message")); got != "friendly message" {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(errors.New("plain error")); got != "plain error" {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestIsCore(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{New(ErrCodeCapacityExceeded, "x"), true},
		{New(ErrCodeInsufficientData, "x"), true},
		{New(ErrCodeInvalidConfiguration, "x"), true},
		{New(ErrCodeInvalidFormat, "x"), false},
		{errors.New("x"), false},
	}
	for _, tt := range tests {
		if got := IsCore(tt.err); got != tt.want {
			t.Errorf("IsCore(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

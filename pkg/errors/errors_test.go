package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeMalformed, "missing %s", "nodes")

	if err.Code != ErrCodeMalformed {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeMalformed)
	}

	if err.Message != "missing nodes" {
		t.Errorf("Message = %v, want %v", err.Message, "missing nodes")
	}

	expected := "MALFORMED_FILE: missing nodes"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("XML syntax error on line 1")
	err := Wrap(ErrCodeParse, cause, "parse gexf")

	if err.Code != ErrCodeParse {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeParse)
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

	expected := "PARSE_ERROR: parse gexf: XML syntax error on line 1"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestMalformed(t *testing.T) {
	err := Malformed("edge %d has no source", 3)
	if err.Code != ErrCodeMalformed {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeMalformed)
	}
	if err.Cause != nil {
		t.Errorf("Cause = %v, want nil", err.Cause)
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
			err:      New(ErrCodeParse, "test"),
			code:     ErrCodeParse,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeParse, "test"),
			code:     ErrCodeMalformed,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeMalformed, New(ErrCodeInvalidColor, "inner"), "outer"),
			code:     ErrCodeMalformed,
			expected: true,
		},
		{
			name:     "fmt wrapped",
			err:      fmt.Errorf("decode node 3: %w", New(ErrCodeInvalidColor, "bad")),
			code:     ErrCodeInvalidColor,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeParse,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeParse,
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
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidFormat, "test"),
			expected: ErrCodeInvalidFormat,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
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
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeMalformed, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

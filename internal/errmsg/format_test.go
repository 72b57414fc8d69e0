//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpConfigLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpConfigLoad,
			err:      errors.New("toml: expected value"),
			expected: "Failed to load configuration: toml: expected value",
		},
		{
			name:     "state database",
			op:       OpStateOpen,
			err:      errors.New("permission denied"),
			expected: "Failed to open state database: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.op, tt.err); got != tt.expected {
				t.Errorf("Format() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpImageLoad,
			context:  "page1.png",
			err:      nil,
			expected: "",
		},
		{
			name:     "includes context",
			op:       OpImageLoad,
			context:  "page1.png",
			err:      errors.New("unknown format"),
			expected: "Failed to load banner image 'page1.png': unknown format",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpGotoParse,
			context:  "",
			err:      errors.New("invalid syntax"),
			expected: "Failed to parse item number: invalid syntax",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatWith(tt.op, tt.context, tt.err); got != tt.expected {
				t.Errorf("FormatWith() = %q, want %q", got, tt.expected)
			}
		})
	}
}

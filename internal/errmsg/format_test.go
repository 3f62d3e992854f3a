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
			op:       OpRegisterPanel,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpRegisterPanel,
			err:      errors.New("order 2 taken by splitter"),
			expected: "Failed to register panel: order 2 taken by splitter",
		},
		{
			name:     "parse operation",
			op:       OpParseSize,
			err:      errors.New("unrecognized unit suffix"),
			expected: "Failed to parse size: unrecognized unit suffix",
		},
		{
			name:     "config operation",
			op:       OpLoadConfig,
			err:      errors.New("toml syntax error"),
			expected: "Failed to load configuration: toml syntax error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	err := errors.New("negative magnitude")

	got := FormatWith(OpParseSize, "-1fr", err)
	want := "Failed to parse size '-1fr': negative magnitude"
	if got != want {
		t.Errorf("FormatWith() = %q, want %q", got, want)
	}

	if got := FormatWith(OpParseSize, "", err); got != Format(OpParseSize, err) {
		t.Errorf("FormatWith with empty context = %q, want Format output", got)
	}

	if got := FormatWith(OpParseSize, "1fr", nil); got != "" {
		t.Errorf("FormatWith with nil error = %q, want empty", got)
	}
}

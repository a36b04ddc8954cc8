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
			op:       OpItemArchive,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpItemArchive,
			err:      errors.New("item not found"),
			expected: "Failed to archive item: item not found",
		},
		{
			name:     "journal operation",
			op:       OpJournalFlush,
			err:      errors.New("disk full"),
			expected: "Failed to write swipe journal: disk full",
		},
		{
			name:     "config operation",
			op:       OpConfigReload,
			err:      errors.New("invalid config: ui.fps"),
			expected: "Failed to reload config: invalid config: ui.fps",
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
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpItemRead,
			context:  "Invoice",
			err:      nil,
			expected: "",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpItemRead,
			context:  "",
			err:      errors.New("locked"),
			expected: "Failed to update read state: locked",
		},
		{
			name:     "context is quoted",
			op:       OpRowControl,
			context:  "item-7",
			err:      errors.New("unknown row key"),
			expected: "Failed to control row 'item-7': unknown row key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

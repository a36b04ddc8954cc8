// Package testutil provides helpers for testing rendered UI output.
package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes escape sequences so rendered output can be compared
// as plain text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// Lines splits stripped output into lines, dropping trailing blank lines.
func Lines(output string) []string {
	lines := strings.Split(StripANSI(output), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// FindLine returns the first stripped line containing substr.
func FindLine(output, substr string) (string, bool) {
	for _, line := range Lines(output) {
		if strings.Contains(line, substr) {
			return line, true
		}
	}
	return "", false
}

// Column returns the display column where substr starts in a stripped
// line, or -1.
func Column(line, substr string) int {
	plain := StripANSI(line)
	i := strings.Index(plain, substr)
	if i < 0 {
		return -1
	}
	return ansi.StringWidth(plain[:i])
}

// Width is the display width of s without escape sequences.
func Width(s string) int {
	return ansi.StringWidth(s)
}

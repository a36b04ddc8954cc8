// Package overlay composes styled terminal output on top of other output.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Place draws over on top of a single line of base starting at column col.
// The result is exactly width cells wide; anything past width is cut.
func Place(base, over string, col, width int) string {
	if width <= 0 {
		return ""
	}
	base = padTo(base, width)
	col = max(col, 0)
	if col >= width || over == "" {
		return ansi.Cut(base, 0, width)
	}
	over = ansi.Cut(over, 0, width-col)
	end := col + ansi.StringWidth(over)

	prefix := padTo(ansi.Cut(base, 0, col), col)
	result := prefix + over
	if end < width {
		result += padTo(ansi.Cut(base, end, width), width-end)
	}
	return result
}

// Compose overlays a multi-line view on top of base. Leading and trailing
// spaces of each overlay line are transparent.
func Compose(base, view string, width int) string {
	baseLines := strings.Split(base, "\n")
	overLines := strings.Split(view, "\n")

	for i, line := range overLines {
		if i >= len(baseLines) {
			break
		}
		plain := ansi.Strip(line)
		if strings.TrimSpace(plain) == "" {
			continue
		}

		start := len(plain) - len(strings.TrimLeft(plain, " "))
		end := ansi.StringWidth(strings.TrimRight(plain, " "))

		baseLines[i] = Place(baseLines[i], ansi.Cut(line, start, end), start, width)
	}

	return strings.Join(baseLines, "\n")
}

// padTo pads s with spaces to n cells. Cutting through a wide character
// can leave a string short of the requested width.
func padTo(s string, n int) string {
	if w := ansi.StringWidth(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}

package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/swiperow/internal/ui/styles"
)

// SizeConfig defines how a popup should be sized.
type SizeConfig struct {
	WidthPct  int // Percentage of screen width (0 = auto-fit)
	HeightPct int // Percentage of screen height (0 = auto-fit)
	MaxWidth  int // Maximum width in columns (0 = no limit)
}

// Common size configurations.
var (
	SizeInput = SizeConfig{MaxWidth: 60} // New item, filter
	SizeAuto  = SizeConfig{}             // Help
)

// RenderBordered wraps content in a rounded border and centers it on a
// screenW by screenH canvas.
func RenderBordered(content string, screenW, screenH int, size SizeConfig) string {
	width, height := dimensions(content, screenW, screenH, size)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Width(max(width-2, 0)).
		Height(max(height-2, 0)).
		Padding(1, 2).
		Render(content)
	return Center(box, screenW, screenH)
}

// Center centers pre-rendered content on a termWidth by termHeight canvas.
func Center(content string, termWidth, termHeight int) string {
	lines := strings.Split(content, "\n")
	boxWidth := maxLineWidth(content)

	padTop := max((termHeight-len(lines))/2, 0)
	padLeft := max((termWidth-boxWidth)/2, 0)

	var b strings.Builder
	for range padTop {
		b.WriteString(strings.Repeat(" ", termWidth))
		b.WriteByte('\n')
	}
	left := strings.Repeat(" ", padLeft)
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(left)
		b.WriteString(line)
	}
	return b.String()
}

func dimensions(content string, screenW, screenH int, size SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		return screenW * size.WidthPct / 100, screenH * size.HeightPct / 100
	}
	width = maxLineWidth(content) + 6 // padding + border
	if size.MaxWidth > 0 {
		width = min(width, size.MaxWidth)
	}
	width = min(width, screenW-4)

	height = strings.Count(content, "\n") + 1 + 4
	height = min(height, screenH-4)
	return width, height
}

func maxLineWidth(s string) int {
	w := 0
	for line := range strings.SplitSeq(s, "\n") {
		w = max(w, lipgloss.Width(line))
	}
	return w
}

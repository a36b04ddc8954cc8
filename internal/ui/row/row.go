// Package row draws swipeable rows as single terminal lines and reports
// their layout back to the row state.
package row

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/swiperow/internal/swipeable"
	"github.com/llehouerou/swiperow/internal/ui"
	"github.com/llehouerou/swiperow/internal/ui/overlay"
	"github.com/llehouerou/swiperow/internal/ui/render"
	"github.com/llehouerou/swiperow/internal/ui/styles"
)

// Row is the subset of swipeable.Swipeable the renderer needs.
type Row interface {
	Translation() float64
	HasLeading() bool
	HasTrailing() bool
	PanelOnTop() (swipeable.Side, bool)
	RenderLeading() string
	RenderTrailing() string
	SetContainerExtent(float64)
	SetLeadingExtent(float64)
	SetTrailingEdge(float64)
}

var _ Row = (*swipeable.Swipeable)(nil)

// PanelExtent is the width a panel needs to show label.
func PanelExtent(label string) int {
	return lipgloss.Width(label) + 2*ui.PanelPadding
}

// Measure reports a row width cells wide with panels of the given widths.
func Measure(r Row, width, leadingWidth, trailingWidth int) {
	r.SetContainerExtent(float64(width))
	if r.HasLeading() {
		r.SetLeadingExtent(float64(leadingWidth))
	}
	if r.HasTrailing() {
		r.SetTrailingEdge(float64(width - trailingWidth))
	}
}

// Shift is the translation of r rounded to whole cells and bounded by width.
func Shift(r Row, width int) int {
	s := int(math.Round(r.Translation()))
	return min(max(s, -width), width)
}

// Render draws r as one line of exactly width cells. content is shifted by
// the row translation. With clip set the revealed panel is cut to the gap
// the content leaves; otherwise it is drawn at its full width over the
// content edge.
func Render(r Row, content string, width int, clip bool) string {
	if width <= 0 {
		return ""
	}
	content = fit(content, width)
	shift := Shift(r, width)

	var line string
	switch {
	case shift > 0:
		line = strings.Repeat(" ", shift) + ansi.Cut(content, 0, width-shift)
	case shift < 0:
		line = ansi.Cut(content, -shift, width) + strings.Repeat(" ", -shift)
	default:
		return content
	}

	side, ok := r.PanelOnTop()
	if !ok {
		return line
	}
	gap := abs(shift)
	if side == swipeable.Leading {
		panel := r.RenderLeading()
		if panel == "" {
			return line
		}
		if clip && ansi.StringWidth(panel) > gap {
			panel = ansi.Cut(panel, 0, gap)
		}
		return overlay.Place(line, panel, 0, width)
	}

	panel := r.RenderTrailing()
	if panel == "" {
		return line
	}
	pw := ansi.StringWidth(panel)
	if clip && pw > gap {
		panel = ansi.Cut(panel, pw-gap, pw)
		pw = gap
	}
	return overlay.Place(line, panel, width-pw, width)
}

// PanelWidth is the width a panel renderer should fill: the revealed gap,
// but never less than the measured extent.
func PanelWidth(p swipeable.Props) int {
	return max(int(math.Round(p.Gap)), int(math.Round(p.Extent)), 0)
}

// Panel returns a renderer that draws label centered on a background that
// fades from idle to active as the panel is revealed.
func Panel(label string, idle, active lipgloss.Color) swipeable.Renderer {
	return func(p swipeable.Props) string {
		w := PanelWidth(p)
		if w == 0 {
			return ""
		}
		return lipgloss.NewStyle().
			Background(styles.Blend(idle, active, p.Progress())).
			Foreground(styles.T().FgPanel).
			Bold(p.Progress() >= 1).
			Render(render.Center(render.Truncate(label, w), w))
	}
}

// Hit reports which revealed panel, if any, covers column x of a row
// rendered at width.
func Hit(r Row, x, width int, clip bool, leadingWidth, trailingWidth int) (swipeable.Side, bool) {
	shift := Shift(r, width)
	side, ok := r.PanelOnTop()
	if !ok || x < 0 || x >= width {
		return side, false
	}
	gap := abs(shift)
	if side == swipeable.Leading {
		w := max(gap, leadingWidth)
		if clip {
			w = gap
		}
		return side, x < w
	}
	w := max(gap, trailingWidth)
	if clip {
		w = gap
	}
	return side, x >= width-w
}

// fit pads or cuts styled content to exactly width cells.
func fit(s string, width int) string {
	w := ansi.StringWidth(s)
	switch {
	case w > width:
		return ansi.Truncate(s, width, "")
	case w < width:
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

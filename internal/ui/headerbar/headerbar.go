// Package headerbar renders the single-line bar above the row list.
package headerbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/swiperow/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// Info is what the header bar reports.
type Info struct {
	Total     int
	Unread    int
	Open      int // rows not at rest in the closed position
	MultiOpen bool
	Filter    string
}

// Render returns the header bar for the given width.
func Render(info Info, width int) string {
	if width < 20 {
		return ""
	}
	t := styles.T()
	s := t.S()

	title := styles.Gradient("swiperow", t.Primary, t.Secondary, true)

	parts := []string{
		s.Base.Render(fmt.Sprintf("%d items", info.Total)),
		s.Unread.Render(fmt.Sprintf("%d unread", info.Unread)),
	}
	if info.Open > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d open", info.Open)))
	}
	if info.MultiOpen {
		parts = append(parts, s.Muted.Render("multi"))
	}
	if info.Filter != "" {
		parts = append(parts, s.Key.Render("/"+info.Filter))
	}
	right := strings.Join(parts, s.Subtle.Render(" · "))

	gap := width - lipgloss.Width(title) - lipgloss.Width(right)
	if gap < 1 {
		return title
	}
	return title + strings.Repeat(" ", gap) + right
}

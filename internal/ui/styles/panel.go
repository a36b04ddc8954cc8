package styles

import "github.com/charmbracelet/lipgloss"

// FrameStyle returns the border around the row list. The border takes the
// accent color while a row is being dragged.
func FrameStyle(dragging bool) lipgloss.Style {
	t := T()
	color := t.Border
	if dragging {
		color = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color)
}

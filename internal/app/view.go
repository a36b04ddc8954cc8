// internal/app/view.go
package app

import (
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/swiperow/internal/ui"
	"github.com/llehouerou/swiperow/internal/ui/headerbar"
	"github.com/llehouerou/swiperow/internal/ui/render"
	"github.com/llehouerou/swiperow/internal/ui/row"
	"github.com/llehouerou/swiperow/internal/ui/styles"
)

// View renders the header, the row list and the status line, with any
// popup on top.
func (m Model) View() string {
	if !m.Sized() {
		return ""
	}
	width := m.rowWidth()
	if width < ui.MinRowWidth {
		return render.Center("Window too narrow", m.Width())
	}

	_, dragging := m.list.Dragging()
	list := styles.FrameStyle(dragging).Render(m.renderRows(width))

	view := headerbar.Render(m.headerInfo(), m.Width()) + "\n" +
		list + "\n" +
		m.renderStatus()
	return m.popups.RenderOverlay(view)
}

func (m Model) headerInfo() headerbar.Info {
	info := headerbar.Info{
		Total:     len(m.items),
		MultiOpen: m.list.AllowMultiOpen(),
		Filter:    m.filter,
	}
	for _, it := range m.items {
		if !it.Read {
			info.Unread++
		}
	}
	for _, e := range m.rows {
		if e.sw.Translation() != 0 {
			info.Open++
		}
	}
	return info
}

// renderRows draws exactly listHeight lines of width cells.
func (m Model) renderRows(width int) string {
	height := m.listHeight()
	lines := make([]string, 0, height)

	start, end := m.cursor.VisibleRange(len(m.visible), height)
	for i := start; i < end; i++ {
		e, ok := m.entryAt(i)
		if !ok {
			continue
		}
		content := m.rowContent(e, i == m.cursor.Pos(), width)
		lines = append(lines, row.Render(e.sw, content, width, *m.uiCfg.Clip))
	}

	if len(m.visible) == 0 && height > 0 {
		msg := "No items"
		if m.filter != "" {
			msg = "No match for " + m.filter
		}
		lines = append(lines, styles.T().S().Muted.Render(render.Center(msg, width)))
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

// rowContent is the row line before it is shifted: a marker, the title
// and the item age.
func (m Model) rowContent(e *rowEntry, selected bool, width int) string {
	s := styles.T().S()

	marker := "  "
	if selected {
		marker = "▸ "
	}
	dot := "  "
	style := s.Muted
	if !e.item.Read {
		dot = "● "
		style = s.Unread
	}
	if selected {
		style = s.Cursor
	}

	age := humanize.RelTime(e.item.CreatedAt, m.now(), "ago", "from now")
	line := render.Spread(marker+dot+render.Sanitize(e.item.Title), age+" ", width)
	return style.Render(line)
}

func (m Model) renderStatus() string {
	s := styles.T().S()
	width := m.Width()

	right := "? help "
	status := m.status
	if status == "" {
		status = "Drag a row sideways, or h/l to reveal"
	}
	line := render.Spread(" "+status, right, width)

	if m.statusErr {
		return s.Error.Render(line)
	}
	return s.Muted.Render(line)
}

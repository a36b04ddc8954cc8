// internal/app/mouse.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/swiperow/internal/app/popupctl"
	"github.com/llehouerou/swiperow/internal/errmsg"
	"github.com/llehouerou/swiperow/internal/gesture"
	"github.com/llehouerou/swiperow/internal/ui/row"
)

// pressState is the row the pointer was pressed on and the column of the
// press inside it.
type pressState struct {
	key string
	col int
}

func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.popups.ActivePopup() != popupctl.None {
		return m, nil
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.cursor.Scroll(-1, len(m.visible), m.listHeight())
		return m, nil
	case msg.Button == tea.MouseButtonWheelDown:
		m.cursor.Scroll(1, len(m.visible), m.listHeight())
		return m, nil
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return m, m.pointerDown(msg.X, msg.Y)
	case msg.Action == tea.MouseActionMotion:
		return m, m.pointerMove(msg.X, msg.Y)
	case msg.Action == tea.MouseActionRelease:
		return m, m.pointerUp(msg.X, msg.Y)
	}
	return m, nil
}

// pointerDown selects the row under the pointer and starts tracking a pan
// on it.
func (m *Model) pointerDown(x, y int) tea.Cmd {
	// A press without a release for the previous one.
	m.cancelPointer()

	idx, ok := m.cursor.RowAt(y-m.listTop(), len(m.visible), m.listHeight())
	if !ok {
		return nil
	}
	m.cursor.Jump(idx, len(m.visible), m.listHeight())
	e, ok := m.entryAt(idx)
	if !ok || !m.list.BeginDrag(e.item.Key()) {
		return nil
	}

	m.tracker = gesture.NewTracker(m.trackerConfig())
	m.press = &pressState{key: e.item.Key(), col: x - borderWidth/2}
	e.sw.HandleGesture(m.tracker.Press(float64(x), float64(y), m.now()))
	return m.startFrames()
}

func (m *Model) pointerMove(x, y int) tea.Cmd {
	if m.press == nil {
		return nil
	}
	e, ok := m.rows[m.press.key]
	if !ok {
		m.cancelPointer()
		return nil
	}
	ev, ok := m.tracker.Move(float64(x), float64(y), m.now())
	if !ok {
		return nil
	}
	e.sw.HandleGesture(ev)
	return m.startFrames()
}

// pointerUp ends the pan. A press that never became a pan is a tap: on a
// revealed panel it runs the panel action, elsewhere it closes the row.
func (m *Model) pointerUp(x, y int) tea.Cmd {
	press := m.press
	if press == nil {
		return nil
	}
	m.press = nil
	m.list.EndDrag(press.key)

	e, ok := m.rows[press.key]
	if !ok {
		return nil
	}
	ev, ok := m.tracker.Release(float64(x), float64(y), m.now())
	if !ok {
		return nil
	}
	e.sw.HandleGesture(ev)
	if ev.Phase != gesture.PhaseFailed {
		return m.startFrames()
	}
	// Consume the tap before requesting a transition, so the queued began
	// does not abandon it.
	m.advance(m.now())

	side, hit := row.Hit(e.sw, press.col, m.rowWidth(), *m.uiCfg.Clip, e.leadingWidth, e.trailingWidth)
	if hit {
		return tea.Batch(m.startFrames(), m.runPanel(e, side))
	}
	if !e.sw.State().IsClosed() {
		if err := m.list.Close(press.key); err != nil {
			m.fail(errmsg.OpRowControl, press.key, err)
		}
	}
	return m.startFrames()
}

// cancelPointer abandons a pan in progress.
func (m *Model) cancelPointer() {
	press := m.press
	if press == nil {
		return
	}
	m.press = nil
	m.list.EndDrag(press.key)
	if ev, ok := m.tracker.Cancel(); ok {
		if e, found := m.rows[press.key]; found {
			e.sw.HandleGesture(ev)
		}
	}
}

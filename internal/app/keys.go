// internal/app/keys.go
package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/swiperow/internal/app/handler"
	"github.com/llehouerou/swiperow/internal/app/popupctl"
	"github.com/llehouerou/swiperow/internal/errmsg"
	"github.com/llehouerou/swiperow/internal/keymap"
)

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Popups take every key while visible.
	if handled, cmd := m.popups.HandleKey(msg); handled {
		if m.popups.InputMode() == popupctl.InputFilter {
			m.setFilter(m.popups.InputValue())
		}
		return m, cmd
	}

	key := msg.String()
	r := handler.Chain(
		func() handler.Result { return m.handleNavigationKey(key) },
		func() handler.Result { return m.actions().Dispatch(m.keys.Resolve(key)) },
	)
	return m, r.Cmd
}

func (m *Model) handleNavigationKey(key string) handler.Result {
	if m.cursor.HandleKey(key, len(m.visible), m.listHeight()) {
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}

// actions maps every non-navigation action to its handler.
func (m *Model) actions() handler.Table[keymap.Action] {
	return handler.Table[keymap.Action]{
		keymap.ActionQuit:            m.quit,
		keymap.ActionHelp:            m.showHelp,
		keymap.ActionFilter:          m.showFilter,
		keymap.ActionNewItem:         m.showNewItem,
		keymap.ActionRestore:         m.restoreLast,
		keymap.ActionToggleMultiOpen: m.toggleMultiOpen,

		keymap.ActionOpenLeading:  m.rowControl(m.list.OpenLeading),
		keymap.ActionOpenTrailing: m.rowControl(m.list.OpenTrailing),
		keymap.ActionClose:        m.rowControl(m.list.Close),
		keymap.ActionActivate:     m.activate,

		keymap.ActionOpenAllLeading:  m.allRows(m.list.OpenAllLeading),
		keymap.ActionOpenAllTrailing: m.allRows(m.list.OpenAllTrailing),
		keymap.ActionCloseAll:        m.allRows(m.list.CloseAll),
	}
}

func (m *Model) showHelp() handler.Result {
	return handler.Handled(m.popups.ShowHelp())
}

func (m *Model) showFilter() handler.Result {
	return handler.Handled(m.popups.ShowTextInput(popupctl.InputFilter, "Filter", m.filter, "title"))
}

func (m *Model) showNewItem() handler.Result {
	return handler.Handled(m.popups.ShowTextInput(popupctl.InputNewItem, "New item", "", "title"))
}

// rowControl runs fn on the cursor row and starts the frame clock for
// the transition it requested.
func (m *Model) rowControl(fn func(key string) error) handler.Handler {
	return func() handler.Result {
		e, ok := m.selected()
		if !ok {
			return handler.HandledNoCmd
		}
		if err := fn(e.item.Key()); err != nil {
			m.fail(errmsg.OpRowControl, e.item.Key(), err)
			return handler.HandledNoCmd
		}
		return handler.Handled(m.startFrames())
	}
}

func (m *Model) allRows(fn func()) handler.Handler {
	return func() handler.Result {
		fn()
		return handler.Handled(m.startFrames())
	}
}

func (m *Model) toggleMultiOpen() handler.Result {
	allow := !m.list.AllowMultiOpen()
	m.list.SetAllowMultiOpen(allow)
	if allow {
		m.setStatus("Several rows may be open")
	} else {
		m.setStatus("One open row at a time")
	}
	return handler.HandledNoCmd
}

// activate runs the action of the panel revealed on the cursor row.
func (m *Model) activate() handler.Result {
	e, ok := m.selected()
	if !ok {
		return handler.HandledNoCmd
	}
	side, open := e.sw.State().OpenSide()
	if !open {
		m.setStatus("Swipe or press " + m.revealKeys() + " to reveal an action")
		return handler.HandledNoCmd
	}
	return handler.Handled(m.runPanel(e, side))
}

func (m *Model) quit() handler.Result {
	if err := m.store.Flush(); err != nil {
		m.logger.Debug(errmsg.Format(errmsg.OpJournalFlush, err))
	}
	if err := m.store.Close(); err != nil {
		m.logger.Debug("close store", "err", err)
	}
	return handler.Handled(tea.Quit)
}

// revealKeys names the first key of each reveal binding, e.g. "h/l".
func (m *Model) revealKeys() string {
	var keys []string
	for _, a := range []keymap.Action{keymap.ActionOpenTrailing, keymap.ActionOpenLeading} {
		if k := m.keys.KeysFor(a); len(k) > 0 {
			keys = append(keys, k[0])
		}
	}
	return strings.Join(keys, "/")
}

package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/swiperow/internal/app/handler"
	"github.com/llehouerou/swiperow/internal/errmsg"
	"github.com/llehouerou/swiperow/internal/swipeable"
)

// runPanel performs the action of the given panel of e. The leading panel
// toggles the read state and closes the row; the trailing panel archives
// the item.
func (m *Model) runPanel(e *rowEntry, side swipeable.Side) tea.Cmd {
	if side == swipeable.Trailing {
		m.archive(e)
		return nil
	}
	m.toggleRead(e)
	if err := m.list.Close(e.item.Key()); err != nil {
		m.fail(errmsg.OpRowControl, e.item.Key(), err)
		return nil
	}
	return m.startFrames()
}

func (m *Model) toggleRead(e *rowEntry) {
	read := !e.item.Read
	if err := m.store.SetRead(e.item.ID, read); err != nil {
		m.fail(errmsg.OpItemRead, e.item.Title, err)
		return
	}
	if err := m.loadItems(); err != nil {
		m.failHard(errmsg.OpItemsLoad, err)
		return
	}
	if read {
		m.setStatus(fmt.Sprintf("Marked %q read", e.item.Title))
	} else {
		m.setStatus(fmt.Sprintf("Marked %q unread", e.item.Title))
	}
}

func (m *Model) archive(e *rowEntry) {
	if err := m.store.Archive(e.item.ID); err != nil {
		m.fail(errmsg.OpItemArchive, e.item.Title, err)
		return
	}
	m.lastArchived = e.item.ID
	if err := m.loadItems(); err != nil {
		m.failHard(errmsg.OpItemsLoad, err)
		return
	}
	m.setStatus(fmt.Sprintf("Archived %q, u to undo", e.item.Title))
}

func (m *Model) restoreLast() handler.Result {
	if m.lastArchived == 0 {
		m.setStatus("Nothing to restore")
		return handler.HandledNoCmd
	}
	if err := m.store.Restore(m.lastArchived); err != nil {
		m.fail(errmsg.OpItemRestore, "", err)
		return handler.HandledNoCmd
	}
	m.lastArchived = 0
	if err := m.loadItems(); err != nil {
		m.failHard(errmsg.OpItemsLoad, err)
		return handler.HandledNoCmd
	}
	m.setStatus("Restored")
	return handler.HandledNoCmd
}

func (m *Model) addItem(title string) {
	it, err := m.store.AddItem(title, "")
	if err != nil {
		m.fail(errmsg.OpItemAdd, title, err)
		return
	}
	if err := m.loadItems(); err != nil {
		m.failHard(errmsg.OpItemsLoad, err)
		return
	}
	for i, idx := range m.visible {
		if m.items[idx].ID == it.ID {
			m.cursor.Jump(i, len(m.visible), m.listHeight())
			break
		}
	}
	m.setStatus(fmt.Sprintf("Added %q", it.Title))
}

package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/llehouerou/swiperow/internal/gesture"
	"github.com/llehouerou/swiperow/internal/state"
	"github.com/llehouerou/swiperow/internal/swipeable"
	"github.com/llehouerou/swiperow/internal/swipelist"
	"github.com/llehouerou/swiperow/internal/ui/row"
	"github.com/llehouerou/swiperow/internal/ui/styles"
)

// rowEntry is a mounted row and the item it shows. Panel widths are the
// ones the row was built with; a config reload only changes them when
// the row is rebuilt.
type rowEntry struct {
	item          state.Item
	sw            *swipeable.Swipeable
	leadingWidth  int
	trailingWidth int
}

func (e *rowEntry) idle() bool {
	return !e.sw.Animating() && e.sw.Translation() == 0 && e.sw.State().IsClosed()
}

// swipeOptions builds the row options for the current config.
func (m *Model) swipeOptions() swipeable.Options {
	opts := m.cfg.SwipeOptions()
	opts.Direction = swipelist.RowDirection(gesture.Vertical)

	t := styles.T()
	idle, active := t.PanelColors(true)
	opts.Leading = row.Panel(m.uiCfg.LeadingLabel, idle, active)
	idle, active = t.PanelColors(false)
	opts.Trailing = row.Panel(m.uiCfg.TrailingLabel, idle, active)
	return opts
}

// mountRow builds a row for item and registers it, replacing any row
// already mounted under the item key.
func (m *Model) mountRow(item state.Item) *rowEntry {
	key := item.Key()
	sw := swipeable.New(m.swipeOptions(),
		swipeable.WithListener(m.list.Listener(key)),
		swipeable.WithLogger(m.logger.With("row", key)),
	)
	e := &rowEntry{
		item:          item,
		sw:            sw,
		leadingWidth:  row.PanelExtent(m.uiCfg.LeadingLabel),
		trailingWidth: row.PanelExtent(m.uiCfg.TrailingLabel),
	}
	m.rows[key] = e
	m.list.Mount(key, sw)
	m.measure(e)
	return e
}

func (m *Model) unmountRow(key string) {
	delete(m.rows, key)
	m.list.Unmount(key)
}

// measure reports the row layout. Rows are not measured before the
// first window size arrives.
func (m *Model) measure(e *rowEntry) {
	if w := m.rowWidth(); w > 0 {
		row.Measure(e.sw, w, e.leadingWidth, e.trailingWidth)
	}
}

// loadItems re-reads the items from the store. Rows of items still
// present keep their state; rows of items that are gone are unmounted.
func (m *Model) loadItems() error {
	items, err := m.store.ListItems()
	if err != nil {
		return err
	}
	m.items = items

	seen := make(map[string]bool, len(items))
	for _, it := range items {
		key := it.Key()
		seen[key] = true
		if e, ok := m.rows[key]; ok {
			e.item = it
			continue
		}
		m.mountRow(it)
	}
	for key := range m.rows {
		if !seen[key] {
			m.unmountRow(key)
		}
	}
	m.applyFilter()
	return nil
}

// rebuildIdleRows recreates every closed, idle row with the current
// options and returns how many were rebuilt.
func (m *Model) rebuildIdleRows() int {
	dragging, _ := m.list.Dragging()
	n := 0
	for _, key := range m.list.Keys() {
		e, ok := m.rows[key]
		if !ok || key == dragging || !e.idle() {
			continue
		}
		m.mountRow(e.item)
		n++
	}
	return n
}

// titles implements fuzzy.Source over the item titles.
type titles []state.Item

func (t titles) String(i int) string { return t[i].Title }
func (t titles) Len() int            { return len(t) }

// applyFilter recomputes the visible rows. Without a filter every item is
// shown newest first; with one, matches are ordered by score.
func (m *Model) applyFilter() {
	var visible []int
	if m.filter == "" {
		visible = make([]int, len(m.items))
		for i := range m.items {
			visible[i] = i
		}
	} else {
		matches := fuzzy.FindFrom(m.filter, titles(m.items))
		visible = make([]int, 0, len(matches))
		for _, match := range matches {
			visible = append(visible, match.Index)
		}
	}
	m.visible = visible
	m.cursor.ClampToBounds(len(visible))
	m.cursor.EnsureVisible(len(visible), m.listHeight())
}

func (m *Model) setFilter(query string) {
	if query == m.filter {
		return
	}
	m.filter = query
	m.applyFilter()
}

// entryAt returns the row shown at visible index i.
func (m *Model) entryAt(i int) (*rowEntry, bool) {
	if i < 0 || i >= len(m.visible) {
		return nil, false
	}
	e, ok := m.rows[m.items[m.visible[i]].Key()]
	return e, ok
}

// selected returns the row under the cursor.
func (m *Model) selected() (*rowEntry, bool) {
	return m.entryAt(m.cursor.Pos())
}

// animating reports whether any row needs further frames.
func (m *Model) animating() bool {
	for _, e := range m.rows {
		if e.sw.Animating() {
			return true
		}
	}
	return false
}

// startFrames starts the frame clock unless it is already running.
func (m *Model) startFrames() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return frameCmd(m.uiCfg.FrameInterval())
}

// advance runs one frame on every animating row, in key order, then
// journals the notifications they produced.
func (m *Model) advance(now time.Time) {
	for _, key := range m.list.Keys() {
		if e, ok := m.rows[key]; ok && e.sw.Animating() {
			e.sw.Frame(now)
		}
	}
	m.drainChanges(now)
}

// drainChanges journals the row notifications collected since the last
// call and reports the latest one in the status line.
func (m *Model) drainChanges(at time.Time) {
	pending := *m.changes
	*m.changes = nil
	for _, c := range pending {
		e, ok := m.rows[c.key]
		if !ok {
			continue
		}
		m.store.RecordEvent(state.SwipeEvent{
			ItemID: e.item.ID,
			Side:   c.change.Item.String(),
			Action: c.change.Action.String(),
			Method: c.change.Method.String(),
			At:     at,
		})
		m.logger.Debug("row change",
			"row", c.key,
			"side", c.change.Item.String(),
			"action", c.change.Action.String(),
			"method", c.change.Method.String(),
		)
		m.setStatus(fmt.Sprintf("%s: %s %s (%s)",
			e.item.Title, c.change.Item, c.change.Action, c.change.Method))
	}
}

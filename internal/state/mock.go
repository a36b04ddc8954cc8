// internal/state/mock.go
package state

import (
	"database/sql"
	"fmt"
	"sort"
	"time"
)

// Mock is a test double for Manager.
type Mock struct {
	items  []Item
	events []SwipeEvent
	nextID int64
	closed bool
	// Err, when set, is returned by every mutating call.
	Err error
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{nextID: 1}
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) find(id int64) (*Item, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			return &m.items[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
}

func (m *Mock) ListItems() ([]Item, error) {
	var out []Item
	for _, it := range m.items {
		if it.ArchivedAt == nil {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *Mock) AddItem(title, note string) (Item, error) {
	if m.Err != nil {
		return Item{}, m.Err
	}
	it := Item{ID: m.nextID, Title: title, Note: note, CreatedAt: time.Now()}
	m.nextID++
	m.items = append(m.items, it)
	return it, nil
}

func (m *Mock) SetRead(id int64, read bool) error {
	if m.Err != nil {
		return m.Err
	}
	it, err := m.find(id)
	if err != nil {
		return err
	}
	it.Read = read
	return nil
}

func (m *Mock) Archive(id int64) error {
	if m.Err != nil {
		return m.Err
	}
	it, err := m.find(id)
	if err != nil {
		return err
	}
	now := time.Now()
	it.ArchivedAt = &now
	return nil
}

func (m *Mock) Restore(id int64) error {
	if m.Err != nil {
		return m.Err
	}
	it, err := m.find(id)
	if err != nil {
		return err
	}
	it.ArchivedAt = nil
	return nil
}

func (m *Mock) SeedIfEmpty(seed []SeedItem) (bool, error) {
	if len(m.items) > 0 || len(seed) == 0 {
		return false, nil
	}
	now := time.Now()
	for _, s := range seed {
		m.items = append(m.items, Item{ID: m.nextID, Title: s.Title, Note: s.Note, CreatedAt: now.Add(-s.Age)})
		m.nextID++
	}
	return true, nil
}

func (m *Mock) RecordEvent(ev SwipeEvent) {
	m.events = append(m.events, ev)
}

func (m *Mock) RecentEvents(limit int) ([]SwipeEvent, error) {
	out := make([]SwipeEvent, 0, limit)
	for i := len(m.events) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.events[i])
	}
	return out, nil
}

func (m *Mock) Flush() error { return nil }

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) Events() []SwipeEvent { return m.events }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)

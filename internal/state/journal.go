package state

import (
	"database/sql"
	"time"

	dbutil "github.com/llehouerou/swiperow/internal/db"
	"github.com/llehouerou/swiperow/internal/errmsg"
)

// SwipeEvent is one journalled row notification.
type SwipeEvent struct {
	ID     int64
	ItemID int64
	Side   string
	Action string
	Method string
	At     time.Time
}

// RecordEvent queues an event. Events are written in batches shortly
// after the last one arrives, and on Flush or Close.
func (m *Manager) RecordEvent(ev SwipeEvent) {
	if ev.At.IsZero() {
		ev.At = m.now()
	}

	m.flushMu.Lock()
	defer m.flushMu.Unlock()

	m.pending = append(m.pending, ev)

	if m.flushTimer != nil {
		m.flushTimer.Stop()
	}
	m.flushTimer = time.AfterFunc(flushDebounce, m.flushInBackground)
}

// flushInBackground runs off the timer goroutine, where nobody can receive
// an error, so failures go to the logger.
func (m *Manager) flushInBackground() {
	m.flushMu.Lock()
	n := len(m.pending)
	m.flushMu.Unlock()
	if err := m.Flush(); err != nil {
		m.logger.Error(errmsg.Format(errmsg.OpJournalFlush, err), "events", n)
	}
}

// Flush writes queued events immediately.
func (m *Manager) Flush() error {
	m.flushMu.Lock()
	if m.flushTimer != nil {
		m.flushTimer.Stop()
		m.flushTimer = nil
	}
	pending := m.pending
	m.pending = nil
	m.flushMu.Unlock()

	if len(pending) == 0 {
		return nil
	}
	return saveEvents(m.db, pending)
}

func saveEvents(db *sql.DB, events []SwipeEvent) error {
	return dbutil.WithTx(db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO swipe_events (item_id, side, action, method, at) VALUES (?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, ev := range events {
			if _, err := stmt.Exec(ev.ItemID, ev.Side, ev.Action, ev.Method, ev.At.UnixMilli()); err != nil {
				return err
			}
		}
		return nil
	})
}

// RecentEvents returns up to limit events, newest first. Queued events
// are flushed first.
func (m *Manager) RecentEvents(limit int) ([]SwipeEvent, error) {
	if err := m.Flush(); err != nil {
		return nil, err
	}
	rows, err := m.db.Query(`
		SELECT id, item_id, side, action, method, at
		FROM swipe_events
		ORDER BY at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []SwipeEvent
	for rows.Next() {
		var ev SwipeEvent
		var at int64
		if err := rows.Scan(&ev.ID, &ev.ItemID, &ev.Side, &ev.Action, &ev.Method, &at); err != nil {
			return nil, err
		}
		ev.At = time.UnixMilli(at)
		events = append(events, ev)
	}
	return events, rows.Err()
}

package state

import (
	"database/sql"
	"fmt"
	"time"

	dbutil "github.com/llehouerou/swiperow/internal/db"
)

// Item is one inbox entry.
type Item struct {
	ID         int64
	Title      string
	Note       string
	Read       bool
	CreatedAt  time.Time
	ArchivedAt *time.Time
}

// Key returns the row key used by the list registry.
func (i Item) Key() string {
	return fmt.Sprintf("item-%d", i.ID)
}

// SeedItem is an item inserted by SeedIfEmpty.
type SeedItem struct {
	Title string
	Note  string
	Age   time.Duration
}

// ListItems returns the items that are not archived, newest first.
func (m *Manager) ListItems() ([]Item, error) {
	rows, err := m.db.Query(`
		SELECT id, title, note, read, created_at, archived_at
		FROM items
		WHERE archived_at IS NULL
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		var note sql.NullString
		var createdAt int64
		var archivedAt sql.NullInt64
		if err := rows.Scan(&it.ID, &it.Title, &note, &it.Read, &createdAt, &archivedAt); err != nil {
			return nil, err
		}
		it.Note = dbutil.NullStringValue(note)
		it.CreatedAt = time.UnixMilli(createdAt)
		it.ArchivedAt = dbutil.NullTime(archivedAt)
		items = append(items, it)
	}
	return items, rows.Err()
}

// AddItem inserts a new unread item.
func (m *Manager) AddItem(title, note string) (Item, error) {
	now := m.now()
	res, err := m.db.Exec(`
		INSERT INTO items (title, note, read, created_at) VALUES (?, ?, 0, ?)
	`, title, dbutil.NullString(note), now.UnixMilli())
	if err != nil {
		return Item{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Item{}, err
	}
	return Item{ID: id, Title: title, Note: note, CreatedAt: time.UnixMilli(now.UnixMilli())}, nil
}

func checkAffected(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return nil
}

// SetRead marks an item read or unread.
func (m *Manager) SetRead(id int64, read bool) error {
	res, err := m.db.Exec(`UPDATE items SET read = ? WHERE id = ?`, read, id)
	if err != nil {
		return err
	}
	return checkAffected(res, id)
}

// Archive hides an item from ListItems.
func (m *Manager) Archive(id int64) error {
	now := m.now()
	res, err := m.db.Exec(`
		UPDATE items SET archived_at = ? WHERE id = ? AND archived_at IS NULL
	`, dbutil.TimeOrNull(&now), id)
	if err != nil {
		return err
	}
	return checkAffected(res, id)
}

// Restore undoes Archive.
func (m *Manager) Restore(id int64) error {
	res, err := m.db.Exec(`UPDATE items SET archived_at = NULL WHERE id = ? AND archived_at IS NOT NULL`, id)
	if err != nil {
		return err
	}
	return checkAffected(res, id)
}

// SeedIfEmpty inserts items when the store has never held any, and
// reports whether it did.
func (m *Manager) SeedIfEmpty(seed []SeedItem) (bool, error) {
	var count int
	if err := m.db.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&count); err != nil {
		return false, err
	}
	if count > 0 || len(seed) == 0 {
		return false, nil
	}

	now := m.now()
	err := dbutil.WithTx(m.db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`INSERT INTO items (title, note, read, created_at) VALUES (?, ?, 0, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, s := range seed {
			if _, err := stmt.Exec(s.Title, dbutil.NullString(s.Note), now.Add(-s.Age).UnixMilli()); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

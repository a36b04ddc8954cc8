// internal/state/interface.go
package state

import (
	"database/sql"
)

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	DB() *sql.DB
	ListItems() ([]Item, error)
	AddItem(title, note string) (Item, error)
	SetRead(id int64, read bool) error
	Archive(id int64) error
	Restore(id int64) error
	SeedIfEmpty(seed []SeedItem) (bool, error)
	RecordEvent(ev SwipeEvent)
	RecentEvents(limit int) ([]SwipeEvent, error)
	Flush() error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)

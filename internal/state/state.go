package state

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName       = "swiperow"
	dbFileName    = "swiperow.db"
	flushDebounce = 500 * time.Millisecond
)

// ErrNotFound is returned when an item id does not exist.
var ErrNotFound = errors.New("item not found")

type Manager struct {
	db     *sql.DB
	now    func() time.Time
	logger *slog.Logger

	flushMu    sync.Mutex
	flushTimer *time.Timer
	pending    []SwipeEvent
}

// Open opens the store at path, or in the XDG data directory when path
// is empty.
func Open(path string) (*Manager, error) {
	if path == "" {
		p, err := getDBPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return newManager(db), nil
}

func newManager(db *sql.DB) *Manager {
	return &Manager{
		db:     db,
		now:    time.Now,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// SetLogger sets where background journal writes report failures.
func (m *Manager) SetLogger(l *slog.Logger) {
	if l != nil {
		m.logger = l
	}
}

func (m *Manager) Close() error {
	flushErr := m.Flush()
	return errors.Join(flushErr, m.db.Close())
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}

package state

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			note TEXT,
			read INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL,
			archived_at INTEGER
		);

		CREATE INDEX IF NOT EXISTS idx_items_created_at ON items(created_at DESC);

		CREATE TABLE IF NOT EXISTS swipe_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			item_id INTEGER NOT NULL REFERENCES items(id) ON DELETE CASCADE,
			side TEXT NOT NULL,
			action TEXT NOT NULL,
			method TEXT NOT NULL,
			at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_swipe_events_at ON swipe_events(at DESC);
	`)
	if err != nil {
		return err
	}

	// Set initial version if not exists
	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}

package settings

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const schemaVersion = 1

const bookmarksKey = "bookmarks"

// SQLiteStore persists opaque settings blobs in a sqlite key-value table.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the settings database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open settings database: %w", err)
	}

	// Enable foreign keys and WAL mode
	if _, err := db.Exec(`
        PRAGMA foreign_keys = ON;
        PRAGMA journal_mode = WAL;
    `); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set PRAGMA: %w", err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func initSchema(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	if version == schemaVersion {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`CREATE TABLE IF NOT EXISTS settings (
            "key" TEXT PRIMARY KEY,
            value BLOB NOT NULL
        )`); err != nil {
		return fmt.Errorf("failed to create settings table: %w", err)
	}

	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("failed to update schema version: %w", err)
	}

	return tx.Commit()
}

// Save stores the bookmarks blob, replacing any previous value.
func (s *SQLiteStore) Save(blob []byte) error {
	_, err := s.db.Exec(`
        INSERT INTO settings ("key", value)
        VALUES (?, ?)
        ON CONFLICT("key") DO UPDATE SET
            value = excluded.value
    `, bookmarksKey, blob)

	if err != nil {
		return fmt.Errorf("failed to save settings blob: %w", err)
	}
	return nil
}

// Load returns the stored bookmarks blob, or nil if none has been saved.
func (s *SQLiteStore) Load() ([]byte, error) {
	var blob []byte
	err := s.db.QueryRow(
		`SELECT value FROM settings WHERE "key" = ?`,
		bookmarksKey,
	).Scan(&blob)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load settings blob: %w", err)
	}

	return blob, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

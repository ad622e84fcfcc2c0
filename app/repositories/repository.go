package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

var (
	ErrNotFound = errors.New("record not found")
)

// Store owns the process-wide SQLite handle. It is opened once at
// startup, passed by reference to everything that needs it, and closed
// once at shutdown.
type Store struct {
	db *sql.DB
}

// Open connects to the SQLite database at path and ensures the schema
// exists. Foreign keys are switched on so comment rows cascade away
// with their post.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_foreign_keys=on", path))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	store := &Store{db: db}
	if err := store.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) createTables() error {
	_, err := s.db.Exec(`
        CREATE TABLE IF NOT EXISTS posts (
            id      INTEGER PRIMARY KEY AUTOINCREMENT,
            title   TEXT NOT NULL,
            content TEXT NOT NULL
        );
    `)
	if err != nil {
		return fmt.Errorf("failed to create 'posts' table: %v", err)
	}

	_, err = s.db.Exec(`
        CREATE TABLE IF NOT EXISTS comments (
            id               INTEGER PRIMARY KEY AUTOINCREMENT,
            post_id          INTEGER NOT NULL REFERENCES posts (id) ON DELETE CASCADE,
            content          TEXT NOT NULL,
            publication_date DATETIME NOT NULL
        );
    `)
	if err != nil {
		return fmt.Errorf("failed to create 'comments' table: %v", err)
	}
	return nil
}

// Close releases the store handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Clear drops all rows. Used by the db clean command and by tests.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM comments"); err != nil {
		return err
	}
	_, err := s.db.Exec("DELETE FROM posts")
	return err
}

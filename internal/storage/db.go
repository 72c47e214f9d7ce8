package storage

import (
	"database/sql"
	"errors"
	"log"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// ErrNotFound is returned when a record does not exist for the requesting
// user. A record owned by another user is indistinguishable from a missing one.
var ErrNotFound = errors.New("not found")

type DB struct {
	connection *sql.DB
}

func NewDB(dataSourceName string) (*DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, err
	}

	// Connection pool tuning
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &DB{connection: db}, nil
}

func (db *DB) Close() {
	if err := db.connection.Close(); err != nil {
		log.Println("Error closing the database connection:", err)
	}
}

// EnsureSchema creates the tables on first run.
func (db *DB) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			email         TEXT NOT NULL,
			name          TEXT NOT NULL DEFAULT '',
			picture_url   TEXT NOT NULL DEFAULT '',
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			last_login_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS conversations (
			id              TEXT PRIMARY KEY,
			user_id         TEXT NOT NULL,
			title           TEXT NOT NULL DEFAULT 'New Search',
			messages        JSONB NOT NULL DEFAULT '[]',
			contact_count   INTEGER NOT NULL DEFAULT 0,
			follow_up_count INTEGER NOT NULL DEFAULT 0,
			is_archived     BOOLEAN NOT NULL DEFAULT FALSE,
			created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_conversations_user ON conversations (user_id, updated_at DESC)`,
		`CREATE TABLE IF NOT EXISTS search_history (
			id           TEXT PRIMARY KEY,
			user_id      TEXT NOT NULL,
			query        TEXT NOT NULL,
			result_count INTEGER NOT NULL DEFAULT 0,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_search_history_user ON search_history (user_id, created_at DESC)`,
		`CREATE TABLE IF NOT EXISTS saved_contacts (
			user_id    TEXT NOT NULL,
			contact_id TEXT NOT NULL,
			payload    JSONB NOT NULL,
			saved_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (user_id, contact_id)
		)`,
	}
	for _, stmt := range statements {
		if _, err := db.connection.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// GetConnection returns the underlying database connection for advanced queries
func (db *DB) GetConnection() *sql.DB {
	return db.connection
}

package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// DB represents the database connection
type DB struct {
	conn *sql.DB
}

// NewDB opens (creating if needed) the database at dbPath
func NewDB(dbPath string) (*DB, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("database path is empty")
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// WAL mode with a busy timeout; foreign keys back the favorites cascade
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL&_foreign_keys=ON", dbPath)
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite benefits from a single writer connection
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	db := &DB{conn: conn}

	// Initialize schema
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

const latestSchemaVersion = 1

// initSchema initializes the database schema
func (db *DB) initSchema() error {
	// Create schema version table first
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	currentVersion, err := db.GetSchemaVersion()
	if err != nil {
		return err
	}

	if currentVersion >= latestSchemaVersion {
		return nil
	}

	if currentVersion < 1 {
		if err := db.applySchemaV1(); err != nil {
			return fmt.Errorf("failed to apply schema v1: %w", err)
		}

		// Record schema version
		_, err = db.conn.Exec("INSERT INTO schema_version (version) VALUES (?)", 1)
		if err != nil {
			return fmt.Errorf("failed to record schema version: %w", err)
		}
	}

	return nil
}

// applySchemaV1 applies the initial schema (version 1)
func (db *DB) applySchemaV1() error {
	schema := `
	-- Key/value preferences (theme mode, custom color, ...)
	CREATE TABLE IF NOT EXISTS preferences (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	-- Quotes
	CREATE TABLE IF NOT EXISTS quotes (
		id TEXT PRIMARY KEY,
		content TEXT NOT NULL,
		author TEXT NOT NULL,
		category TEXT NOT NULL,
		user_id TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);

	-- Favorites (join records between users and quotes)
	CREATE TABLE IF NOT EXISTS favorites (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		quote_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		FOREIGN KEY (quote_id) REFERENCES quotes(id) ON DELETE CASCADE,
		UNIQUE(quote_id, user_id)
	);

	CREATE INDEX IF NOT EXISTS idx_quotes_created ON quotes(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_quotes_category ON quotes(category);
	CREATE INDEX IF NOT EXISTS idx_quotes_user ON quotes(user_id);
	CREATE INDEX IF NOT EXISTS idx_favorites_user ON favorites(user_id);
	`

	_, err := db.conn.Exec(schema)
	return err
}

// GetConnection returns the underlying database connection
func (db *DB) GetConnection() *sql.DB {
	return db.conn
}

// WithTransaction executes a function within a database transaction
// If the function returns an error, the transaction is rolled back
// Otherwise, the transaction is committed
func (db *DB) WithTransaction(fn func(*sql.Tx) error) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p) // Re-throw panic after rollback
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetSchemaVersion returns the current schema version
func (db *DB) GetSchemaVersion() (int, error) {
	var version int
	err := db.conn.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return version, nil
}

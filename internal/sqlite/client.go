package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type Client struct {
	db     *sql.DB
	config Config
}

func NewClient(config Config) (*Client, error) {
	dsn := buildDSN(config)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(config.MaxOpenConns)
	db.SetMaxIdleConns(config.MaxIdleConns)
	db.SetConnMaxLifetime(config.ConnMaxLifetime)
	db.SetConnMaxIdleTime(config.ConnMaxIdleTime)

	return &Client{
		db:     db,
		config: config,
	}, nil
}

func buildDSN(config Config) string {
	dsn := fmt.Sprintf("file:%s?", config.DatabasePath)

	dsn += fmt.Sprintf("_busy_timeout=%d", int(config.BusyTimeout.Milliseconds()))

	// Use IMMEDIATE transactions by default to acquire reserved lock immediately
	// This prevents race conditions while still allowing concurrent reads
	dsn += "&_txlock=immediate"

	if config.EnableWAL {
		dsn += "&_journal_mode=WAL"
	}

	return dsn
}

const schema = `
	CREATE TABLE IF NOT EXISTS mandates (
		reference TEXT PRIMARY KEY,
		project_id INTEGER NOT NULL,
		musician_id INTEGER NOT NULL,
		issued_date TEXT NOT NULL,
		last_used_date TEXT,
		non_recurring INTEGER NOT NULL DEFAULT 0,
		sequence_kind TEXT NOT NULL,
		iban TEXT NOT NULL,
		bic TEXT NOT NULL,
		bank_code TEXT NOT NULL,
		account_owner TEXT NOT NULL,
		active INTEGER NOT NULL DEFAULT 1
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_mandates_active_pair
		ON mandates(project_id, musician_id) WHERE active = 1;

	CREATE TABLE IF NOT EXISTS debit_runs (
		id TEXT PRIMARY KEY,
		project_id INTEGER NOT NULL,
		job_label TEXT NOT NULL,
		issued_at TEXT NOT NULL,
		submission_deadline TEXT NOT NULL,
		due_date TEXT NOT NULL,
		reminder_ids TEXT NOT NULL DEFAULT '[]',
		file_name TEXT NOT NULL,
		mime_type TEXT NOT NULL,
		data BLOB NOT NULL
	);

	CREATE TABLE IF NOT EXISTS audit_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		entity TEXT NOT NULL,
		entity_key TEXT NOT NULL,
		old_values TEXT,
		new_values TEXT,
		recorded_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS banks (
		bank_code TEXT PRIMARY KEY,
		bic TEXT NOT NULL,
		name TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS projects (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS musicians (
		id INTEGER PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL
	);
`

// Migrate creates the mandate engine tables if they do not exist yet.
func (c *Client) Migrate() error {
	if _, err := c.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (c *Client) DB() *sql.DB {
	return c.db
}

func (c *Client) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

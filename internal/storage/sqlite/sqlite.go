// Package sqlite provides a SQLite-backed implementation of the
// storage.Store interface. State is kept as a single JSON document in a
// key-value slot, mirroring the one-snapshot persistence model.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"daygroups/internal/models"
	"daygroups/internal/storage"
)

// stateSlotKey is the key the snapshot is stored under.
const stateSlotKey = "dg_state"

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database with pure Go driver
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// LoadSnapshot reads and decodes the stored snapshot. An empty slot returns
// storage.ErrNoSnapshot; so does a slot holding malformed JSON, which is
// logged and otherwise treated as absent so the caller reseeds.
func (s *SQLiteStore) LoadSnapshot(ctx context.Context) (*models.Snapshot, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM state_slots WHERE key = ?",
		stateSlotKey,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state slot: %w", err)
	}

	var snap models.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		slog.Warn("Stored snapshot is malformed, treating as absent", "error", err)
		return nil, storage.ErrNoSnapshot
	}
	return &snap, nil
}

// SaveSnapshot serializes the snapshot and upserts it into the slot in a
// single transaction, overwriting any prior value.
func (s *SQLiteStore) SaveSnapshot(ctx context.Context, snap *models.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO state_slots (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		stateSlotKey, string(raw), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to write state slot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

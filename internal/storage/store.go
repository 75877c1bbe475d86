// Package storage provides abstractions for persistent state storage.
package storage

import (
	"context"
	"errors"

	"daygroups/internal/models"
)

// ErrNoSnapshot is returned by LoadSnapshot when the persistence slot is
// empty or holds data that cannot be decoded. Callers treat both the same
// way: seed fresh state and save it.
var ErrNoSnapshot = errors.New("no snapshot stored")

// Store defines the interface for snapshot persistence.
// This abstraction allows swapping storage backends (SQLite, a flat file,
// etc.) without changing the service layer. There are no partial updates:
// every mutation anywhere in the app writes the full snapshot.
type Store interface {
	// LoadSnapshot reads the persisted snapshot.
	// Returns ErrNoSnapshot when nothing usable is stored.
	LoadSnapshot(ctx context.Context) (*models.Snapshot, error)

	// SaveSnapshot serializes the full snapshot and writes it atomically,
	// overwriting any prior value.
	SaveSnapshot(ctx context.Context, snap *models.Snapshot) error

	// Close releases any resources held by the store.
	Close() error
}

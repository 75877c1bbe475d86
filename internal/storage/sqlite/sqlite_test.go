package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"daygroups/internal/models"
	"daygroups/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleSnapshot() *models.Snapshot {
	me := models.User{ID: "u_me", Name: "Kendall Jenkins", Initials: "KJ"}
	return &models.Snapshot{
		CurrentUser: me,
		Groups: []*models.Group{
			{
				ID:          "g1",
				Name:        "Running Group",
				Color:       "#2e6bff",
				Description: "Daily runs",
				Members:     []models.User{{ID: "u1", Name: "Joe"}, me},
				Posts: []models.Post{
					{ID: "p1", AuthorID: "u1", AuthorName: "Joe", ImageRef: "data:image/svg+xml;utf8,x", Caption: "Morning miles", Date: "2026-08-29"},
				},
				Expanded: true,
			},
		},
	}
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()

	t.Run("empty slot returns ErrNoSnapshot", func(t *testing.T) {
		store := newTestStore(t)

		_, err := store.LoadSnapshot(ctx)
		if !errors.Is(err, storage.ErrNoSnapshot) {
			t.Fatalf("LoadSnapshot on empty store: got %v, want ErrNoSnapshot", err)
		}
	})

	t.Run("save then load round-trips the snapshot", func(t *testing.T) {
		store := newTestStore(t)
		snap := sampleSnapshot()

		if err := store.SaveSnapshot(ctx, snap); err != nil {
			t.Fatalf("SaveSnapshot failed: %v", err)
		}

		loaded, err := store.LoadSnapshot(ctx)
		if err != nil {
			t.Fatalf("LoadSnapshot failed: %v", err)
		}
		if !reflect.DeepEqual(snap, loaded) {
			t.Errorf("round-trip mismatch:\nsaved:  %+v\nloaded: %+v", snap, loaded)
		}
	})

	t.Run("save overwrites the prior snapshot", func(t *testing.T) {
		store := newTestStore(t)
		snap := sampleSnapshot()

		if err := store.SaveSnapshot(ctx, snap); err != nil {
			t.Fatalf("first SaveSnapshot failed: %v", err)
		}

		snap.Groups[0].Name = "Renamed Group"
		snap.Groups = append(snap.Groups, &models.Group{ID: "g2", Name: "Second"})
		if err := store.SaveSnapshot(ctx, snap); err != nil {
			t.Fatalf("second SaveSnapshot failed: %v", err)
		}

		loaded, err := store.LoadSnapshot(ctx)
		if err != nil {
			t.Fatalf("LoadSnapshot failed: %v", err)
		}
		if len(loaded.Groups) != 2 {
			t.Fatalf("expected 2 groups after overwrite, got %d", len(loaded.Groups))
		}
		if loaded.Groups[0].Name != "Renamed Group" {
			t.Errorf("group name = %q, want %q", loaded.Groups[0].Name, "Renamed Group")
		}
	})

	t.Run("malformed slot data is treated as absent", func(t *testing.T) {
		store := newTestStore(t)

		_, err := store.db.Exec(
			"INSERT INTO state_slots (key, value, updated_at) VALUES (?, ?, 0)",
			stateSlotKey, "{not json",
		)
		if err != nil {
			t.Fatalf("failed to plant malformed data: %v", err)
		}

		_, err = store.LoadSnapshot(ctx)
		if !errors.Is(err, storage.ErrNoSnapshot) {
			t.Fatalf("LoadSnapshot with malformed data: got %v, want ErrNoSnapshot", err)
		}
	})

	t.Run("enables foreign keys", func(t *testing.T) {
		store := newTestStore(t)

		var enabled int
		if err := store.db.QueryRow("PRAGMA foreign_keys").Scan(&enabled); err != nil {
			t.Fatalf("failed to read foreign_keys pragma: %v", err)
		}
		if enabled != 1 {
			t.Errorf("foreign_keys = %d, want 1", enabled)
		}
	})

	t.Run("creates parent directories", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")
		store, err := New(dbPath)
		if err != nil {
			t.Fatalf("New with nested path failed: %v", err)
		}
		defer store.Close()

		if _, err := os.Stat(filepath.Dir(dbPath)); err != nil {
			t.Errorf("expected parent directory to exist: %v", err)
		}
	})
}

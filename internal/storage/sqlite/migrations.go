package sqlite

import "database/sql"

// schema sets up the persistence slot. The whole app state lives in one row
// of state_slots keyed by the slot name; updated_at exists for inspection
// only and plays no part in load/save semantics.
const schema = `
CREATE TABLE IF NOT EXISTS state_slots (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at INTEGER NOT NULL
);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}

package db

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Migrate runs all schema migrations. Every statement is idempotent, so the
// full list is replayed on each open.
func Migrate(db *sqlx.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// One row per stored document; the tracker keeps its whole state in a
	// single row that is replaced on every save.
	`CREATE TABLE IF NOT EXISTS app_documents (
		key        TEXT PRIMARY KEY,
		body       TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}

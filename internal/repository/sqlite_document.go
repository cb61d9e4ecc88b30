package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/skatelog/internal/db"
	"github.com/jmoiron/sqlx"
)

// SQLiteDocumentRepo implements DocumentRepo using a SQLite database.
type SQLiteDocumentRepo struct {
	db  db.DBTX
	now func() time.Time
}

// NewSQLiteDocumentRepo creates a new SQLiteDocumentRepo.
func NewSQLiteDocumentRepo(conn db.DBTX) *SQLiteDocumentRepo {
	return &SQLiteDocumentRepo{db: conn, now: time.Now}
}

func (r *SQLiteDocumentRepo) Get(ctx context.Context, key string) (*StoredDocument, error) {
	var d StoredDocument
	err := sqlx.GetContext(ctx, r.db, &d,
		`SELECT key, body, updated_at FROM app_documents WHERE key = ?`, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("document %q: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("reading document %q: %w", key, err)
	}
	return &d, nil
}

// Put replaces the document stored under key.
func (r *SQLiteDocumentRepo) Put(ctx context.Context, key, body string) error {
	query := `INSERT INTO app_documents (key, body, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query, key, body, r.now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("writing document %q: %w", key, err)
	}
	return nil
}

func (r *SQLiteDocumentRepo) Delete(ctx context.Context, key string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM app_documents WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("deleting document %q: %w", key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting document %q: %w", key, err)
	}
	if n == 0 {
		return fmt.Errorf("document %q: %w", key, ErrNotFound)
	}
	return nil
}

package persist

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/skatelog/internal/db"
	"github.com/alexanderramin/skatelog/internal/repository"
	"github.com/jmoiron/sqlx"
)

// StateDocumentKey is the app_documents row holding the tracker state.
const StateDocumentKey = "state"

// SQLiteBackend keeps the document as one row of app_documents. Each write
// upserts the row inside its own transaction.
type SQLiteBackend struct {
	db  *sqlx.DB
	uow db.UnitOfWork
	key string
}

func NewSQLiteBackend(database *sqlx.DB, uow db.UnitOfWork) *SQLiteBackend {
	return &SQLiteBackend{db: database, uow: uow, key: StateDocumentKey}
}

func (b *SQLiteBackend) Read(ctx context.Context) ([]byte, error) {
	doc, err := repository.NewSQLiteDocumentRepo(b.db).Get(ctx, b.key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoDocument
		}
		return nil, err
	}
	return []byte(doc.Body), nil
}

func (b *SQLiteBackend) Write(ctx context.Context, data []byte) error {
	err := b.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteDocumentRepo(tx).Put(ctx, b.key, string(data))
	})
	if err != nil {
		return fmt.Errorf("storing state document: %w", err)
	}
	return nil
}

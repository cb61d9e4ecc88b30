package repository

import (
	"context"
	"time"
)

// StoredDocument is one serialized state document and its last write time.
type StoredDocument struct {
	Key       string `db:"key"`
	Body      string `db:"body"`
	UpdatedAt string `db:"updated_at"`
}

// Time parses UpdatedAt. A malformed value yields the zero time.
func (d StoredDocument) Time() time.Time {
	t, err := time.Parse(time.RFC3339Nano, d.UpdatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}

type DocumentRepo interface {
	Get(ctx context.Context, key string) (*StoredDocument, error)
	Put(ctx context.Context, key, body string) error
	Delete(ctx context.Context, key string) error
}

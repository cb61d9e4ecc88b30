package persist

import (
	"context"
	"errors"
)

// ErrNoDocument is returned by Backend.Read when nothing has been stored yet.
var ErrNoDocument = errors.New("no stored document")

// Backend stores one opaque document. Write must replace the previous
// document atomically: a failed Write leaves the prior document readable.
//
//go:generate mockgen -source=backend.go -destination=mock_backend_test.go -package=persist
type Backend interface {
	Write(ctx context.Context, data []byte) error
	Read(ctx context.Context) ([]byte, error)
}

package db

import (
	"github.com/jmoiron/sqlx"
)

// DBTX is the common interface satisfied by both *sqlx.DB and *sqlx.Tx.
// Repository implementations depend on this interface instead of the
// concrete *sqlx.DB, enabling transactional composition. It also satisfies
// sqlx.QueryerContext and sqlx.ExecerContext, so sqlx.GetContext and
// sqlx.SelectContext accept it directly.
type DBTX interface {
	sqlx.ExtContext
}

// Compile-time verification that *sqlx.DB and *sqlx.Tx satisfy DBTX.
var (
	_ DBTX = (*sqlx.DB)(nil)
	_ DBTX = (*sqlx.Tx)(nil)
)

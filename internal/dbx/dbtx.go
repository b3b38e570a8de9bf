// Package dbx holds the tiny DB abstraction shared by repositories: a
// minimal interface satisfied by both *sql.DB and *sql.Tx, so repositories
// can run inside or outside a transaction without caring which.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql used by our repositories.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

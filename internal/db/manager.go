// Package db wires repositories to their backing store. The in-memory
// manager serves tests and single-process demos; the Postgres manager owns
// the connection pool and schema migrations. Swapping one for the other
// never touches the service layer.
package db

import (
	"context"

	"github.com/ecommerce/auth-service/internal/repository/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Users() users.Repository
	Close() error
}

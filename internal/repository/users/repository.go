// Package users implements the user directory: a uniqueness-enforcing
// store of user records keyed by email.
package users

import (
	"context"

	"github.com/ecommerce/auth-service/internal/models"
)

// Repository is the directory contract. Create is the single authority on
// email uniqueness and fails with common.ErrorAlreadyExists on duplicates;
// there is no overwrite path. Lookups miss with common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// UpdateActivity persists LoginCount and LastActivity for an existing
	// user. Identity fields are never touched.
	UpdateActivity(ctx context.Context, user *models.User) error
}

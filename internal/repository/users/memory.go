package users

import (
	"context"
	"sync"

	"github.com/ecommerce/auth-service/internal/common"
	"github.com/ecommerce/auth-service/internal/models"
)

// MemoryRepository is an in-memory directory safe for concurrent callers.
// A single mutex over the map serializes all reads and writes; records are
// stored and returned by value so callers cannot mutate the directory
// behind the lock's back.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]models.User)}
}

func (r *MemoryRepository) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Email]; exists {
		return nil, common.ErrorAlreadyExists
	}

	r.users[user.Email] = *user

	stored := r.users[user.Email]
	return &stored, nil
}

func (r *MemoryRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &user, nil
}

func (r *MemoryRepository) UpdateActivity(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.users[user.Email]
	if !ok {
		return common.ErrorNotFound
	}

	stored.LoginCount = user.LoginCount
	stored.LastActivity = user.LastActivity
	r.users[user.Email] = stored
	return nil
}

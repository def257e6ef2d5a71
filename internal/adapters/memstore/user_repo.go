package memstore

import (
	"context"

	"lotline-auction-service/internal/domain/shared"

	"github.com/google/uuid"
)

// UserRepo is the in-memory user repository
type UserRepo struct {
	store *Store
}

// NewUserRepo creates a user repository backed by the store
func NewUserRepo(store *Store) *UserRepo {
	return &UserRepo{store: store}
}

// Create creates a new user
func (r *UserRepo) Create(ctx context.Context, user *shared.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.usernames[user.Username]; taken {
		return shared.ErrUsernameTaken
	}

	s.users[user.ID] = cloneUser(user)
	s.usernames[user.Username] = user.ID
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*shared.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, shared.ErrUserNotFound
	}
	return cloneUser(user), nil
}

// GetByUsername retrieves a user by username
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*shared.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usernames[username]
	if !ok {
		return nil, shared.ErrUserNotFound
	}
	return cloneUser(s.users[id]), nil
}

package memstore

import (
	"context"
	"strings"

	"lotline-auction-service/internal/domain/shared"

	"github.com/google/uuid"
)

// CategoryRepo is the in-memory category repository
type CategoryRepo struct {
	store *Store
}

// NewCategoryRepo creates a category repository backed by the store
func NewCategoryRepo(store *Store) *CategoryRepo {
	return &CategoryRepo{store: store}
}

// GetOrCreate finds a category by name, case-insensitively, creating it
// when absent
func (r *CategoryRepo) GetOrCreate(ctx context.Context, name string) (*shared.Category, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(name)
	if id, ok := s.catNames[key]; ok {
		return cloneCategory(s.categories[id]), nil
	}

	category := &shared.Category{
		ID:   uuid.New(),
		Name: name,
	}
	s.categories[category.ID] = category
	s.catNames[key] = category.ID

	return cloneCategory(category), nil
}

// GetByName finds a category by name, case-insensitively
func (r *CategoryRepo) GetByName(ctx context.Context, name string) (*shared.Category, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.catNames[strings.ToLower(name)]
	if !ok {
		return nil, shared.ErrCategoryNotFound
	}
	return cloneCategory(s.categories[id]), nil
}

// GetByID retrieves a category by ID
func (r *CategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*shared.Category, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	category, ok := s.categories[id]
	if !ok {
		return nil, shared.ErrCategoryNotFound
	}
	return cloneCategory(category), nil
}

package memstore

import (
	"context"
	"sort"

	"lotline-auction-service/internal/domain/listing"
	"lotline-auction-service/internal/domain/shared"

	"github.com/google/uuid"
)

// ListingRepo is the in-memory listing repository
type ListingRepo struct {
	store *Store
}

// NewListingRepo creates a listing repository backed by the store
func NewListingRepo(store *Store) *ListingRepo {
	return &ListingRepo{store: store}
}

// Create creates a new listing
func (r *ListingRepo) Create(ctx context.Context, l *listing.Listing) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listings[l.ID] = cloneListing(l)
	return nil
}

// GetByID retrieves a listing by ID
func (r *ListingRepo) GetByID(ctx context.Context, id uuid.UUID) (*listing.Listing, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.listings[id]
	if !ok {
		return nil, shared.ErrListingNotFound
	}
	return cloneListing(l), nil
}

// List retrieves listings, newest first, with optional filters
func (r *ListingRepo) List(ctx context.Context, categoryID *uuid.UUID, activeOnly bool) ([]*listing.Listing, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var listings []*listing.Listing
	for _, l := range s.listings {
		if categoryID != nil && l.CategoryID != *categoryID {
			continue
		}
		if activeOnly && !l.IsActive {
			continue
		}
		listings = append(listings, cloneListing(l))
	}

	sort.Slice(listings, func(i, j int) bool {
		return listings[i].CreatedAt.After(listings[j].CreatedAt)
	})

	return listings, nil
}

// Close marks a listing inactive and records its winner
func (r *ListingRepo) Close(ctx context.Context, id uuid.UUID, winnerID uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.listings[id]
	if !ok {
		return shared.ErrListingNotFound
	}

	l.Close(winnerID)
	return nil
}

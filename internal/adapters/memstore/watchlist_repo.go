package memstore

import (
	"context"
	"sort"

	"lotline-auction-service/internal/domain/shared"

	"github.com/google/uuid"
)

// WatchlistRepo is the in-memory watchlist repository
type WatchlistRepo struct {
	store *Store
}

// NewWatchlistRepo creates a watchlist repository backed by the store
func NewWatchlistRepo(store *Store) *WatchlistRepo {
	return &WatchlistRepo{store: store}
}

// Add bookmarks a listing for a user
func (r *WatchlistRepo) Add(ctx context.Context, entry *shared.WatchlistEntry) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.watchlist[entry.UserID] {
		if e.ListingID == entry.ListingID {
			return shared.ErrAlreadyWatched
		}
	}

	s.watchlist[entry.UserID] = append(s.watchlist[entry.UserID], *entry)
	return nil
}

// Remove drops a bookmark
func (r *WatchlistRepo) Remove(ctx context.Context, userID, listingID uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.watchlist[userID]
	for i, e := range entries {
		if e.ListingID == listingID {
			s.watchlist[userID] = append(entries[:i], entries[i+1:]...)
			return nil
		}
	}
	return shared.ErrNotWatched
}

// IsWatched reports whether the user has bookmarked the listing
func (r *WatchlistRepo) IsWatched(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.watchlist[userID] {
		if e.ListingID == listingID {
			return true, nil
		}
	}
	return false, nil
}

// ListByUser retrieves a user's watchlist entries, newest first
func (r *WatchlistRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*shared.WatchlistEntry, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]*shared.WatchlistEntry, 0, len(s.watchlist[userID]))
	for _, e := range s.watchlist[userID] {
		entry := e
		entries = append(entries, &entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	return entries, nil
}

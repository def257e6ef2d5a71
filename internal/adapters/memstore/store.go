// Package memstore is a concurrency-safe in-memory storage backend. It
// backs the memory storage driver for local runs and serves as the test
// double for the application layer.
package memstore

import (
	"sync"

	"lotline-auction-service/internal/domain/bid"
	"lotline-auction-service/internal/domain/listing"
	"lotline-auction-service/internal/domain/shared"
	"lotline-auction-service/internal/ports/outbound"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Store holds all in-memory state behind one mutex so multi-entity
// operations stay atomic, the way a database transaction would be.
type Store struct {
	mu         sync.RWMutex
	listings   map[uuid.UUID]*listing.Listing
	bids       map[uuid.UUID][]*bid.Bid              // key: listingID -> value: bids in placement order
	users      map[uuid.UUID]*shared.User            // key: userID -> value: user
	usernames  map[string]uuid.UUID                  // key: username -> value: userID
	categories map[uuid.UUID]*shared.Category        // key: categoryID -> value: category
	catNames   map[string]uuid.UUID                  // key: lowercase name -> value: categoryID
	comments   map[uuid.UUID][]*shared.Comment       // key: listingID -> value: comments in post order
	watchlist  map[uuid.UUID][]shared.WatchlistEntry // key: userID -> value: entries
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{
		listings:   make(map[uuid.UUID]*listing.Listing),
		bids:       make(map[uuid.UUID][]*bid.Bid),
		users:      make(map[uuid.UUID]*shared.User),
		usernames:  make(map[string]uuid.UUID),
		categories: make(map[uuid.UUID]*shared.Category),
		catNames:   make(map[string]uuid.UUID),
		comments:   make(map[uuid.UUID][]*shared.Comment),
		watchlist:  make(map[uuid.UUID][]shared.WatchlistEntry),
	}
}

// GetAllRepositories returns all repositories for easy dependency injection
func (s *Store) GetAllRepositories() outbound.Repositories {
	return outbound.Repositories{
		Listings:   NewListingRepo(s),
		Bids:       NewBidRepo(s),
		Users:      NewUserRepo(s),
		Categories: NewCategoryRepo(s),
		Comments:   NewCommentRepo(s),
		Watchlist:  NewWatchlistRepo(s),
	}
}

// latestBidLocked returns the bid with the greatest placement time for a
// listing, preferring the later insert on equal times. Callers must hold
// the lock.
func (s *Store) latestBidLocked(listingID uuid.UUID) *bid.Bid {
	bids := s.bids[listingID]
	if len(bids) == 0 {
		return nil
	}

	latest := bids[0]
	for _, b := range bids[1:] {
		if !b.PlacedAt.Before(latest.PlacedAt) {
			latest = b
		}
	}
	return latest
}

func cloneListing(l *listing.Listing) *listing.Listing {
	cloned := *l
	if l.WinnerID != nil {
		winner := *l.WinnerID
		cloned.WinnerID = &winner
	}
	return &cloned
}

func cloneBid(b *bid.Bid) *bid.Bid {
	cloned := *b
	return &cloned
}

func cloneUser(u *shared.User) *shared.User {
	cloned := *u
	return &cloned
}

func cloneCategory(c *shared.Category) *shared.Category {
	cloned := *c
	return &cloned
}

func cloneComment(c *shared.Comment) *shared.Comment {
	cloned := *c
	return &cloned
}

func equalLatest(a, b *decimal.Decimal) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

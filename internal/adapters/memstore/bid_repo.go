package memstore

import (
	"context"
	"sort"

	"lotline-auction-service/internal/domain/bid"
	"lotline-auction-service/internal/domain/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BidRepo is the in-memory bid repository
type BidRepo struct {
	store *Store
}

// NewBidRepo creates a bid repository backed by the store
func NewBidRepo(store *Store) *BidRepo {
	return &BidRepo{store: store}
}

// Place persists a bid with the same revalidation a transactional store
// performs: listing still open, latest bid unchanged since the caller's
// read, acceptance rule still satisfied. All under one lock.
func (r *BidRepo) Place(ctx context.Context, newBid *bid.Bid, startingPrice decimal.Decimal, expectedLatest *decimal.Decimal) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.listings[newBid.ListingID]
	if !ok {
		return shared.ErrListingNotFound
	}

	if !l.IsActive {
		return shared.ErrListingClosed
	}

	var latest *decimal.Decimal
	if latestBid := s.latestBidLocked(newBid.ListingID); latestBid != nil {
		latest = &latestBid.Value
	}

	if !equalLatest(latest, expectedLatest) {
		return shared.ErrBidConflict
	}

	if err := bid.Evaluate(startingPrice, newBid.Value, latest); err != nil {
		return err
	}

	s.bids[newBid.ListingID] = append(s.bids[newBid.ListingID], cloneBid(newBid))
	return nil
}

// GetByListingID retrieves all bids for a listing, oldest first
func (r *BidRepo) GetByListingID(ctx context.Context, listingID uuid.UUID) ([]*bid.Bid, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	bids := make([]*bid.Bid, 0, len(s.bids[listingID]))
	for _, b := range s.bids[listingID] {
		bids = append(bids, cloneBid(b))
	}

	sort.SliceStable(bids, func(i, j int) bool {
		return bids[i].PlacedAt.Before(bids[j].PlacedAt)
	})

	return bids, nil
}

// GetLatest retrieves the most recently placed bid for a listing
func (r *BidRepo) GetLatest(ctx context.Context, listingID uuid.UUID) (*bid.Bid, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	latest := s.latestBidLocked(listingID)
	if latest == nil {
		return nil, shared.ErrNoBids
	}
	return cloneBid(latest), nil
}

// CountByListingID returns how many bids a listing has received
func (r *BidRepo) CountByListingID(ctx context.Context, listingID uuid.UUID) (int, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.bids[listingID]), nil
}

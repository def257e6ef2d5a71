package memstore

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"lotline-auction-service/internal/domain/bid"
	"lotline-auction-service/internal/domain/listing"
	"lotline-auction-service/internal/domain/shared"
)

// Helper to seed an open listing directly into the store
func seedListing(store *Store, startingPrice string) *listing.Listing {
	l := &listing.Listing{
		ID:         uuid.New(),
		Title:      "Seeded listing",
		Price:      decimal.RequireFromString(startingPrice),
		IsActive:   true,
		CategoryID: uuid.New(),
		OwnerID:    uuid.New(),
		CreatedAt:  time.Now(),
	}
	store.listings[l.ID] = l
	return l
}

// Helper to build a bid
func newTestBid(listingID uuid.UUID, value string, placedAt time.Time) *bid.Bid {
	return &bid.Bid{
		ID:        uuid.New(),
		ListingID: listingID,
		BidderID:  uuid.New(),
		Value:     decimal.RequireFromString(value),
		PlacedAt:  placedAt,
	}
}

func ptr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

// Tests Place revalidation
func TestBidRepo_Place(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("first_bid_accepted", func(t *testing.T) {
		t.Parallel()

		store := NewStore()
		repo := NewBidRepo(store)
		l := seedListing(store, "50.00")

		err := repo.Place(ctx, newTestBid(l.ID, "50.00", time.Now()), l.Price, nil)
		require.NoError(t, err)

		count, err := repo.CountByListingID(ctx, l.ID)
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})

	t.Run("listing_not_found", func(t *testing.T) {
		t.Parallel()

		store := NewStore()
		repo := NewBidRepo(store)

		err := repo.Place(ctx, newTestBid(uuid.New(), "50.00", time.Now()), decimal.RequireFromString("50.00"), nil)
		require.ErrorIs(t, err, shared.ErrListingNotFound)
	})

	t.Run("listing_closed", func(t *testing.T) {
		t.Parallel()

		store := NewStore()
		repo := NewBidRepo(store)
		l := seedListing(store, "50.00")
		l.IsActive = false

		err := repo.Place(ctx, newTestBid(l.ID, "60.00", time.Now()), l.Price, nil)
		require.ErrorIs(t, err, shared.ErrListingClosed)
	})

	t.Run("stale_expectation_conflicts", func(t *testing.T) {
		t.Parallel()

		store := NewStore()
		repo := NewBidRepo(store)
		l := seedListing(store, "50.00")

		require.NoError(t, repo.Place(ctx, newTestBid(l.ID, "50.00", time.Now()), l.Price, nil))

		// The caller evaluated before the first bid landed, so its
		// expectation of "no bids yet" is stale
		err := repo.Place(ctx, newTestBid(l.ID, "60.00", time.Now()), l.Price, nil)
		require.ErrorIs(t, err, shared.ErrBidConflict)
	})

	t.Run("rule_reapplied_under_lock", func(t *testing.T) {
		t.Parallel()

		store := NewStore()
		repo := NewBidRepo(store)
		l := seedListing(store, "50.00")

		require.NoError(t, repo.Place(ctx, newTestBid(l.ID, "50.00", time.Now()), l.Price, nil))

		// Correct expectation but a value that does not beat it
		err := repo.Place(ctx, newTestBid(l.ID, "50.00", time.Now()), l.Price, ptr(decimal.RequireFromString("50.00")))
		require.ErrorIs(t, err, shared.ErrBidNotAboveLatest)
	})

	t.Run("second_bid_with_current_expectation", func(t *testing.T) {
		t.Parallel()

		store := NewStore()
		repo := NewBidRepo(store)
		l := seedListing(store, "50.00")

		require.NoError(t, repo.Place(ctx, newTestBid(l.ID, "50.00", time.Now()), l.Price, nil))

		err := repo.Place(ctx, newTestBid(l.ID, "60.00", time.Now()), l.Price, ptr(decimal.RequireFromString("50.00")))
		require.NoError(t, err)

		latest, err := repo.GetLatest(ctx, l.ID)
		require.NoError(t, err)
		require.True(t, latest.Value.Equal(decimal.RequireFromString("60.00")))
	})

	// Racing bidders all read the latest bid first, then place against
	// that expectation. Exactly the placements whose expectation still
	// holds land; the rest conflict.
	t.Run("concurrent_bids", func(t *testing.T) {
		t.Parallel()

		store := NewStore()
		repo := NewBidRepo(store)
		l := seedListing(store, "10.00")

		var wg sync.WaitGroup
		concurrentCount := 50

		var mu sync.Mutex
		accepted := 0
		conflicted := 0

		for i := 0; i < concurrentCount; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				var expected *decimal.Decimal
				value := l.Price
				if latest, err := repo.GetLatest(ctx, l.ID); err == nil {
					expected = &latest.Value
					value = latest.Value.Add(decimal.NewFromInt(1))
				}

				b := &bid.Bid{
					ID:        uuid.New(),
					ListingID: l.ID,
					BidderID:  uuid.New(),
					Value:     value,
					PlacedAt:  time.Now(),
				}

				err := repo.Place(ctx, b, l.Price, expected)

				mu.Lock()
				defer mu.Unlock()
				switch err {
				case nil:
					accepted++
				case shared.ErrBidConflict:
					conflicted++
				default:
					t.Errorf("unexpected place error: %v", err)
				}
			}()
		}

		wg.Wait()

		require.Greater(t, accepted, 0)
		require.Equal(t, concurrentCount, accepted+conflicted)

		count, err := repo.CountByListingID(ctx, l.ID)
		require.NoError(t, err)
		require.Equal(t, accepted, count)

		// The accepted bids form a strictly increasing chain in
		// insertion order
		store.mu.RLock()
		defer store.mu.RUnlock()
		bids := store.bids[l.ID]
		for i := 1; i < len(bids); i++ {
			require.True(t, bids[i].Value.GreaterThan(bids[i-1].Value),
				"bid %d (%s) should exceed bid %d (%s)", i, bids[i].Value, i-1, bids[i-1].Value)
		}
	})
}

// Tests GetLatest
func TestBidRepo_GetLatest(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("no_bids", func(t *testing.T) {
		t.Parallel()

		store := NewStore()
		repo := NewBidRepo(store)
		l := seedListing(store, "50.00")

		_, err := repo.GetLatest(ctx, l.ID)
		require.ErrorIs(t, err, shared.ErrNoBids)
	})

	// The latest bid is the one placed last, not the one with the
	// greatest value
	t.Run("latest_by_time_not_by_value", func(t *testing.T) {
		t.Parallel()

		store := NewStore()
		repo := NewBidRepo(store)
		l := seedListing(store, "10.00")

		base := time.Now()
		high := newTestBid(l.ID, "100.00", base)
		low := newTestBid(l.ID, "15.00", base.Add(time.Second))
		store.bids[l.ID] = []*bid.Bid{high, low}

		latest, err := repo.GetLatest(ctx, l.ID)
		require.NoError(t, err)
		require.Equal(t, low.ID, latest.ID)
		require.True(t, latest.Value.Equal(decimal.RequireFromString("15.00")))
	})

	t.Run("equal_times_prefer_later_insert", func(t *testing.T) {
		t.Parallel()

		store := NewStore()
		repo := NewBidRepo(store)
		l := seedListing(store, "10.00")

		at := time.Now()
		first := newTestBid(l.ID, "20.00", at)
		second := newTestBid(l.ID, "30.00", at)
		store.bids[l.ID] = []*bid.Bid{first, second}

		latest, err := repo.GetLatest(ctx, l.ID)
		require.NoError(t, err)
		require.Equal(t, second.ID, latest.ID)
	})
}

// Tests GetByListingID ordering
func TestBidRepo_GetByListingID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	store := NewStore()
	repo := NewBidRepo(store)
	l := seedListing(store, "10.00")

	base := time.Now()
	newest := newTestBid(l.ID, "30.00", base.Add(2*time.Second))
	oldest := newTestBid(l.ID, "10.00", base)
	middle := newTestBid(l.ID, "20.00", base.Add(time.Second))
	store.bids[l.ID] = []*bid.Bid{newest, oldest, middle}

	bids, err := repo.GetByListingID(ctx, l.ID)
	require.NoError(t, err)
	require.Len(t, bids, 3)
	require.Equal(t, oldest.ID, bids[0].ID)
	require.Equal(t, middle.ID, bids[1].ID)
	require.Equal(t, newest.ID, bids[2].ID)

	// Unknown listings have no bids rather than an error
	empty, err := repo.GetByListingID(ctx, uuid.New())
	require.NoError(t, err)
	require.Empty(t, empty)
}

// Tests that returned bids are copies
func TestBidRepo_ReturnsCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	store := NewStore()
	repo := NewBidRepo(store)
	l := seedListing(store, "10.00")

	require.NoError(t, repo.Place(ctx, newTestBid(l.ID, "10.00", time.Now()), l.Price, nil))

	latest, err := repo.GetLatest(ctx, l.ID)
	require.NoError(t, err)

	latest.Value = decimal.RequireFromString("999.00")

	unchanged, err := repo.GetLatest(ctx, l.ID)
	require.NoError(t, err)
	require.True(t, unchanged.Value.Equal(decimal.RequireFromString("10.00")))
}

package app

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"lotline-auction-service/internal/adapters/memstore"
	"lotline-auction-service/internal/domain/listing"
	"lotline-auction-service/internal/domain/shared"
	"lotline-auction-service/internal/ports/inbound"
	"lotline-auction-service/internal/ports/outbound"
)

// testEnv wires every service to one in-memory store, the same wiring
// the memory storage driver uses in production
type testEnv struct {
	repos    outbound.Repositories
	sessions outbound.SessionStore

	listings  *ListingService
	bids      *BidService
	accounts  *AccountService
	watchlist *WatchlistService
	comments  *CommentService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := memstore.NewStore()
	repos := store.GetAllRepositories()
	sessions := memstore.NewSessionStore(time.Hour)
	logger := zerolog.Nop()

	env := &testEnv{repos: repos, sessions: sessions}

	env.listings = NewListingService(ListingServiceParams{
		ListingRepo:   repos.Listings,
		BidRepo:       repos.Bids,
		CategoryRepo:  repos.Categories,
		UserRepo:      repos.Users,
		WatchlistRepo: repos.Watchlist,
		Logger:        logger,
	})
	t.Cleanup(env.listings.Stop)

	env.bids = NewBidService(BidServiceParams{
		BidRepo:     repos.Bids,
		ListingRepo: repos.Listings,
		UserRepo:    repos.Users,
		Logger:      logger,
	})
	env.accounts = NewAccountService(AccountServiceParams{
		UserRepo: repos.Users,
		Sessions: sessions,
		Logger:   logger,
	})
	env.watchlist = NewWatchlistService(WatchlistServiceParams{
		WatchlistRepo: repos.Watchlist,
		ListingRepo:   repos.Listings,
		BidRepo:       repos.Bids,
		Logger:        logger,
	})
	env.comments = NewCommentService(CommentServiceParams{
		CommentRepo: repos.Comments,
		ListingRepo: repos.Listings,
		UserRepo:    repos.Users,
		Logger:      logger,
	})

	return env
}

// seedUser creates a user directly through the repository
func (env *testEnv) seedUser(t *testing.T, username string) *shared.User {
	t.Helper()

	user := &shared.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "not-a-real-hash",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, env.repos.Users.Create(context.Background(), user))
	return user
}

// seedListing creates a listing through the service
func (env *testEnv) seedListing(t *testing.T, ownerID uuid.UUID, startingPrice string) *listing.Listing {
	t.Helper()

	l, err := env.listings.CreateListing(context.Background(), inbound.CreateListingRequest{
		OwnerID:       ownerID,
		Title:         "Test listing",
		Description:   "A listing for testing",
		StartingPrice: money(startingPrice),
		Category:      "misc",
	})
	require.NoError(t, err)
	return l
}

// placeBid places a bid through the service
func (env *testEnv) placeBid(t *testing.T, listingID, bidderID uuid.UUID, value string) {
	t.Helper()

	_, err := env.bids.PlaceBid(context.Background(), inbound.PlaceBidRequest{
		ListingID: listingID,
		BidderID:  bidderID,
		Value:     money(value),
	})
	require.NoError(t, err)
}

func money(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

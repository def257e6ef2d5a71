package outbound

import (
	"context"

	"lotline-auction-service/internal/domain/bid"
	"lotline-auction-service/internal/domain/listing"
	"lotline-auction-service/internal/domain/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListingRepository defines the interface for listing data operations
type ListingRepository interface {
	// Create creates a new listing
	Create(ctx context.Context, listing *listing.Listing) error

	// GetByID retrieves a listing by ID
	GetByID(ctx context.Context, id uuid.UUID) (*listing.Listing, error)

	// List retrieves listings, newest first, with optional filters
	List(ctx context.Context, categoryID *uuid.UUID, activeOnly bool) ([]*listing.Listing, error)

	// Close marks a listing inactive and records its winner in a single
	// atomic update. The two fields never change independently.
	Close(ctx context.Context, id uuid.UUID, winnerID uuid.UUID) error
}

// BidRepository defines the interface for bid data operations
type BidRepository interface {
	// Place persists an accepted bid after revalidating the acceptance
	// rule against the store's own latest bid within the same unit of
	// work. expectedLatest is the latest bid value the caller evaluated
	// against, nil when it saw none; when the store's view differs,
	// Place fails with shared.ErrBidConflict and nothing is written.
	Place(ctx context.Context, bid *bid.Bid, startingPrice decimal.Decimal, expectedLatest *decimal.Decimal) error

	// GetByListingID retrieves all bids for a listing, oldest first
	GetByListingID(ctx context.Context, listingID uuid.UUID) ([]*bid.Bid, error)

	// GetLatest retrieves the most recent bid for a listing, by placement
	// time. Returns shared.ErrNoBids when the listing has none.
	GetLatest(ctx context.Context, listingID uuid.UUID) (*bid.Bid, error)

	// CountByListingID returns how many bids a listing has received
	CountByListingID(ctx context.Context, listingID uuid.UUID) (int, error)
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// Create creates a new user. Fails with shared.ErrUsernameTaken when
	// the username is already registered.
	Create(ctx context.Context, user *shared.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uuid.UUID) (*shared.User, error)

	// GetByUsername retrieves a user by username
	GetByUsername(ctx context.Context, username string) (*shared.User, error)
}

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	// GetOrCreate finds a category by name, case-insensitively, creating
	// it when absent
	GetOrCreate(ctx context.Context, name string) (*shared.Category, error)

	// GetByName finds a category by name, case-insensitively
	GetByName(ctx context.Context, name string) (*shared.Category, error)

	// GetByID retrieves a category by ID
	GetByID(ctx context.Context, id uuid.UUID) (*shared.Category, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	// Create creates a new comment
	Create(ctx context.Context, comment *shared.Comment) error

	// GetByListingID retrieves a listing's comments, oldest first
	GetByListingID(ctx context.Context, listingID uuid.UUID) ([]*shared.Comment, error)
}

// Repositories bundles every repository behind one wiring point so the
// application layer stays agnostic of the storage backend.
type Repositories struct {
	Listings   ListingRepository
	Bids       BidRepository
	Users      UserRepository
	Categories CategoryRepository
	Comments   CommentRepository
	Watchlist  WatchlistRepository
}

// WatchlistRepository defines the interface for watchlist data operations
type WatchlistRepository interface {
	// Add bookmarks a listing for a user. Fails with
	// shared.ErrAlreadyWatched on a duplicate.
	Add(ctx context.Context, entry *shared.WatchlistEntry) error

	// Remove drops a bookmark. Fails with shared.ErrNotWatched when the
	// entry does not exist.
	Remove(ctx context.Context, userID, listingID uuid.UUID) error

	// IsWatched reports whether the user has bookmarked the listing
	IsWatched(ctx context.Context, userID, listingID uuid.UUID) (bool, error)

	// ListByUser retrieves a user's watchlist entries, newest first
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*shared.WatchlistEntry, error)
}

package inbound

import (
	"context"

	"lotline-auction-service/internal/domain/bid"
	"lotline-auction-service/internal/domain/listing"
	"lotline-auction-service/internal/domain/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListingService defines the interface for listing operations
type ListingService interface {
	// CreateListing creates a new listing
	CreateListing(ctx context.Context, req CreateListingRequest) (*listing.Listing, error)

	// GetListing retrieves a single listing with its derived view data.
	// viewerID is the authenticated user, nil for anonymous visitors.
	GetListing(ctx context.Context, listingID uuid.UUID, viewerID *uuid.UUID) (*ListingDetail, error)

	// BrowseListings retrieves listings with their current prices
	BrowseListings(ctx context.Context, req BrowseListingsRequest) ([]*ListingSummary, error)

	// CloseListing closes a listing on behalf of its owner. The latest
	// bidder becomes the winner; actorID must be the listing's owner.
	CloseListing(ctx context.Context, listingID, actorID uuid.UUID) (*shared.CloseResult, error)
}

// BidService defines the interface for bid operations
type BidService interface {
	// PlaceBid places a new bid on a listing
	PlaceBid(ctx context.Context, req PlaceBidRequest) (*bid.Bid, error)

	// GetBids retrieves bids for a listing, oldest first
	GetBids(ctx context.Context, listingID uuid.UUID) ([]*bid.Bid, error)

	// GetLatestBid retrieves the most recently placed bid for a listing
	GetLatestBid(ctx context.Context, listingID uuid.UUID) (*bid.Bid, error)
}

// AccountService defines the interface for account and session operations
type AccountService interface {
	// Register creates a user account and opens a session for it
	Register(ctx context.Context, req RegisterRequest) (*Session, error)

	// Login opens a session for an existing user
	Login(ctx context.Context, req LoginRequest) (*Session, error)

	// Logout ends the session identified by token
	Logout(ctx context.Context, token string) error

	// CurrentUser resolves a session token to its user
	CurrentUser(ctx context.Context, token string) (*shared.User, error)
}

// WatchlistService defines the interface for watchlist operations
type WatchlistService interface {
	// Watch bookmarks a listing for the user
	Watch(ctx context.Context, userID, listingID uuid.UUID) error

	// Unwatch removes a listing from the user's watchlist
	Unwatch(ctx context.Context, userID, listingID uuid.UUID) error

	// Watchlist retrieves the user's bookmarked listings, newest first
	Watchlist(ctx context.Context, userID uuid.UUID) ([]*ListingSummary, error)
}

// CommentService defines the interface for comment operations
type CommentService interface {
	// PostComment adds a comment to a listing
	PostComment(ctx context.Context, req PostCommentRequest) (*shared.Comment, error)

	// GetComments retrieves a listing's comments, oldest first
	GetComments(ctx context.Context, listingID uuid.UUID) ([]*shared.Comment, error)
}

// request to create a listing
type CreateListingRequest struct {
	OwnerID       uuid.UUID       `json:"owner_id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	StartingPrice decimal.Decimal `json:"starting_price"`
	ImageURL      string          `json:"image_url"`
	Category      string          `json:"category"`
}

// request to browse listings
type BrowseListingsRequest struct {
	Category   string `json:"category,omitempty"`
	ActiveOnly bool   `json:"active_only"`
}

// request to place a bid
type PlaceBidRequest struct {
	ListingID uuid.UUID       `json:"listing_id"`
	BidderID  uuid.UUID       `json:"bidder_id"`
	Value     decimal.Decimal `json:"value"`
}

// request to register an account
type RegisterRequest struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Confirmation string `json:"confirmation"`
	Address      string `json:"address,omitempty"`
	PhoneNumber  string `json:"phone_number,omitempty"`
}

// request to log in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// request to comment on a listing
type PostCommentRequest struct {
	ListingID uuid.UUID `json:"listing_id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
}

// Session pairs a login token with the user it authenticates.
type Session struct {
	Token string       `json:"token"`
	User  *shared.User `json:"user"`
}

// ListingSummary is a listing with its current price, the latest bid
// value or the starting price when no bids exist.
type ListingSummary struct {
	Listing      *listing.Listing `json:"listing"`
	CurrentPrice decimal.Decimal  `json:"current_price"`
}

// ListingDetail is the full single-listing view.
type ListingDetail struct {
	Listing      *listing.Listing `json:"listing"`
	Category     *shared.Category `json:"category"`
	CurrentPrice decimal.Decimal  `json:"current_price"`
	BidCount     int              `json:"bid_count"`
	Watched      bool             `json:"watched"`
}

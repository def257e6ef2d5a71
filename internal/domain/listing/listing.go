package listing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Listing represents an item posted for auction. Price is the starting
// price; the current price is derived from the latest bid, if any.
type Listing struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
	Price       decimal.Decimal `json:"price"`
	IsActive    bool            `json:"is_active"`
	WinnerID    *uuid.UUID      `json:"winner_id,omitempty"`
	CategoryID  uuid.UUID       `json:"category_id"`
	OwnerID     uuid.UUID       `json:"owner_id"`
	CreatedAt   time.Time       `json:"created_at"`
}

// IsOpen returns true while the auction is still accepting bids
func (l *Listing) IsOpen() bool {
	return l.IsActive
}

// CanBid returns true if a bid can be placed on this listing
func (l *Listing) CanBid() bool {
	return l.IsActive
}

// OwnedBy returns true if the given user created the listing
func (l *Listing) OwnedBy(userID uuid.UUID) bool {
	return l.OwnerID == userID
}

// Close marks the listing inactive and records the winning bidder.
// The transition is one-way; a closed listing never reopens.
func (l *Listing) Close(winner uuid.UUID) {
	l.WinnerID = &winner
	l.IsActive = false
}

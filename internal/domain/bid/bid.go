package bid

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Bid represents an accepted offer on a listing. Bids are immutable:
// once recorded they are never updated or deleted.
type Bid struct {
	ID        uuid.UUID       `json:"id"`
	ListingID uuid.UUID       `json:"listing_id"`
	BidderID  uuid.UUID       `json:"bidder_id"`
	Value     decimal.Decimal `json:"value"`
	PlacedAt  time.Time       `json:"placed_at"`
}

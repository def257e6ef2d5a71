package shared

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CloseResult represents the outcome of closing a listing's auction
type CloseResult struct {
	ListingID  uuid.UUID       `json:"listing_id"`
	WinnerID   uuid.UUID       `json:"winner_id"`
	FinalValue decimal.Decimal `json:"final_value"`
}

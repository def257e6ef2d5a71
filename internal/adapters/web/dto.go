package web

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// request bodies, validated by binding tags

type registerRequest struct {
	Username     string `json:"username" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required"`
	Confirmation string `json:"confirmation" binding:"required"`
	Address      string `json:"address"`
	PhoneNumber  string `json:"phone_number"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// StartingPrice carries no required tag: a free listing starting at
// 0.00 is legal and must not be rejected as a missing field.
type createListingRequest struct {
	Title         string          `json:"title" binding:"required"`
	Description   string          `json:"description" binding:"required"`
	StartingPrice decimal.Decimal `json:"starting_price"`
	ImageURL      string          `json:"image_url"`
	Category      string          `json:"category" binding:"required"`
}

type placeBidRequest struct {
	Value decimal.Decimal `json:"value"`
}

type postCommentRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
}

type watchlistRequest struct {
	ListingID uuid.UUID `json:"listing_id" binding:"required"`
	Action    string    `json:"action" binding:"required,oneof=add remove"`
}

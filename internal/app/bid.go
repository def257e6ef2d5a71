package app

import (
	"context"
	"errors"
	"time"

	"lotline-auction-service/internal/domain/bid"
	"lotline-auction-service/internal/domain/shared"
	"lotline-auction-service/internal/ports/inbound"
	"lotline-auction-service/internal/ports/outbound"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// BidService implements the bid use cases
type BidService struct {
	bidRepo     outbound.BidRepository
	listingRepo outbound.ListingRepository
	userRepo    outbound.UserRepository
	logger      zerolog.Logger
}

type BidServiceParams struct {
	BidRepo     outbound.BidRepository
	ListingRepo outbound.ListingRepository
	UserRepo    outbound.UserRepository
	Logger      zerolog.Logger
}

// NewBidService creates a new bid service
func NewBidService(params BidServiceParams) *BidService {
	return &BidService{
		bidRepo:     params.BidRepo,
		listingRepo: params.ListingRepo,
		userRepo:    params.UserRepo,
		logger:      params.Logger.With().Str("component", "bid_service").Logger(),
	}
}

// PlaceBid places a new bid on a listing. The bid is evaluated against
// the latest bid, or the starting price when none exists, and the store
// revalidates that evaluation when persisting so a concurrent bid cannot
// slip between the read and the write.
func (service *BidService) PlaceBid(ctx context.Context, req inbound.PlaceBidRequest) (*bid.Bid, error) {
	service.logger.Info().
		Str("listing_id", req.ListingID.String()).
		Str("bidder_id", req.BidderID.String()).
		Str("value", req.Value.String()).
		Msg("Attempting to place bid")

	// Validate listing exists and is open
	l, err := service.listingRepo.GetByID(ctx, req.ListingID)
	if err != nil {
		service.logger.Error().Err(err).Str("listing_id", req.ListingID.String()).Msg("Failed to get listing for bid")
		return nil, err
	}

	if !l.CanBid() {
		service.logger.Warn().Str("listing_id", req.ListingID.String()).Msg("Listing not accepting bids")
		return nil, shared.ErrListingClosed
	}

	// Validate bidder exists
	user, err := service.userRepo.GetByID(ctx, req.BidderID)
	if err != nil {
		service.logger.Error().Err(err).Str("bidder_id", req.BidderID.String()).Msg("Failed to get bidder")
		return nil, err
	}

	service.logger.Debug().Str("bidder_id", user.ID.String()).Str("username", user.Username).Msg("Bidder validated")

	if !shared.ValidMoney(req.Value) {
		service.logger.Warn().Str("value", req.Value.String()).Msg("Bid value is not a valid amount")
		return nil, shared.ErrInvalidPrice
	}

	// Read the latest bid, the reference point for evaluation
	var latest *decimal.Decimal
	latestBid, err := service.bidRepo.GetLatest(ctx, req.ListingID)
	if err != nil && !errors.Is(err, shared.ErrNoBids) {
		service.logger.Error().Err(err).Str("listing_id", req.ListingID.String()).Msg("Failed to get latest bid")
		return nil, err
	}
	if latestBid != nil {
		latest = &latestBid.Value
	}

	if err := bid.Evaluate(l.Price, req.Value, latest); err != nil {
		service.logger.Warn().
			Str("listing_id", req.ListingID.String()).
			Str("value", req.Value.String()).
			Str("starting_price", l.Price.String()).
			Err(err).
			Msg("Bid rejected by acceptance rule")
		return nil, err
	}

	newBid := &bid.Bid{
		ID:        uuid.New(),
		ListingID: req.ListingID,
		BidderID:  user.ID,
		Value:     req.Value,
		PlacedAt:  time.Now(),
	}

	// The store re-checks the rule against its own latest bid; a
	// concurrent acceptance since our read surfaces as ErrBidConflict
	if err := service.bidRepo.Place(ctx, newBid, l.Price, latest); err != nil {
		service.logger.Error().Err(err).Str("bid_id", newBid.ID.String()).Msg("Failed to place bid")
		return nil, err
	}

	service.logger.Info().
		Str("bid_id", newBid.ID.String()).
		Str("listing_id", newBid.ListingID.String()).
		Str("bidder_id", newBid.BidderID.String()).
		Str("value", newBid.Value.String()).
		Msg("Bid placed successfully")

	return newBid, nil
}

// GetBids retrieves bids for a listing, oldest first
func (service *BidService) GetBids(ctx context.Context, listingID uuid.UUID) ([]*bid.Bid, error) {
	if _, err := service.listingRepo.GetByID(ctx, listingID); err != nil {
		return nil, err
	}
	return service.bidRepo.GetByListingID(ctx, listingID)
}

// GetLatestBid retrieves the most recently placed bid for a listing
func (service *BidService) GetLatestBid(ctx context.Context, listingID uuid.UUID) (*bid.Bid, error) {
	return service.bidRepo.GetLatest(ctx, listingID)
}

package app

import (
	"context"
	"errors"
	"time"

	"lotline-auction-service/internal/config"
	"lotline-auction-service/internal/domain/listing"
	"lotline-auction-service/internal/domain/shared"
	"lotline-auction-service/internal/ports/inbound"
	"lotline-auction-service/internal/ports/outbound"

	"github.com/alitto/pond"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ListingService implements the listing use cases
type ListingService struct {
	listingRepo   outbound.ListingRepository
	bidRepo       outbound.BidRepository
	categoryRepo  outbound.CategoryRepository
	userRepo      outbound.UserRepository
	watchlistRepo outbound.WatchlistRepository
	pricePool     *pond.WorkerPool
	cancel        context.CancelFunc
	logger        zerolog.Logger
}

type ListingServiceParams struct {
	ListingRepo   outbound.ListingRepository
	BidRepo       outbound.BidRepository
	CategoryRepo  outbound.CategoryRepository
	UserRepo      outbound.UserRepository
	WatchlistRepo outbound.WatchlistRepository
	Logger        zerolog.Logger
}

// NewListingService creates a new listing service
func NewListingService(params ListingServiceParams) *ListingService {
	ctx, cancel := context.WithCancel(context.Background())

	pool := pond.New(
		config.PriceMaxWorkers,
		config.PriceMaxCapacity,
		pond.Context(ctx),
		pond.Strategy(pond.Balanced()),
	)

	return &ListingService{
		listingRepo:   params.ListingRepo,
		bidRepo:       params.BidRepo,
		categoryRepo:  params.CategoryRepo,
		userRepo:      params.UserRepo,
		watchlistRepo: params.WatchlistRepo,
		pricePool:     pool,
		cancel:        cancel,
		logger:        params.Logger.With().Str("component", "listing_service").Logger(),
	}
}

// CreateListing creates a new listing
func (service *ListingService) CreateListing(ctx context.Context, req inbound.CreateListingRequest) (*listing.Listing, error) {
	service.logger.Info().
		Str("owner_id", req.OwnerID.String()).
		Str("title", req.Title).
		Str("category", req.Category).
		Str("starting_price", req.StartingPrice.String()).
		Msg("Attempting to create listing")

	// Validate owner exists
	owner, err := service.userRepo.GetByID(ctx, req.OwnerID)
	if err != nil {
		service.logger.Error().Err(err).Str("owner_id", req.OwnerID.String()).Msg("Failed to get listing owner")
		return nil, err
	}

	if !shared.ValidMoney(req.StartingPrice) {
		service.logger.Warn().Str("starting_price", req.StartingPrice.String()).Msg("Starting price is not a valid amount")
		return nil, shared.ErrInvalidPrice
	}

	category, err := service.categoryRepo.GetOrCreate(ctx, req.Category)
	if err != nil {
		service.logger.Error().Err(err).Str("category", req.Category).Msg("Failed to resolve category")
		return nil, err
	}

	l := &listing.Listing{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Price:       req.StartingPrice,
		IsActive:    true,
		CategoryID:  category.ID,
		OwnerID:     owner.ID,
		CreatedAt:   time.Now(),
	}

	if err := service.listingRepo.Create(ctx, l); err != nil {
		service.logger.Error().Err(err).Str("listing_id", l.ID.String()).Msg("Failed to save listing")
		return nil, err
	}

	service.logger.Info().
		Str("listing_id", l.ID.String()).
		Str("category_id", category.ID.String()).
		Msg("Listing created successfully")

	return l, nil
}

// GetListing retrieves a single listing with its derived view data
func (service *ListingService) GetListing(ctx context.Context, listingID uuid.UUID, viewerID *uuid.UUID) (*inbound.ListingDetail, error) {
	service.logger.Debug().Str("listing_id", listingID.String()).Msg("Retrieving listing")

	l, err := service.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		service.logger.Error().Err(err).Str("listing_id", listingID.String()).Msg("Failed to retrieve listing")
		return nil, err
	}

	category, err := service.categoryRepo.GetByID(ctx, l.CategoryID)
	if err != nil {
		service.logger.Error().Err(err).Str("category_id", l.CategoryID.String()).Msg("Failed to retrieve category")
		return nil, err
	}

	price, err := service.currentPrice(ctx, l)
	if err != nil {
		return nil, err
	}

	count, err := service.bidRepo.CountByListingID(ctx, listingID)
	if err != nil {
		service.logger.Error().Err(err).Str("listing_id", listingID.String()).Msg("Failed to count bids")
		return nil, err
	}

	watched := false
	if viewerID != nil {
		watched, err = service.watchlistRepo.IsWatched(ctx, *viewerID, listingID)
		if err != nil {
			service.logger.Error().Err(err).Str("listing_id", listingID.String()).Msg("Failed to check watchlist")
			return nil, err
		}
	}

	return &inbound.ListingDetail{
		Listing:      l,
		Category:     category,
		CurrentPrice: price,
		BidCount:     count,
		Watched:      watched,
	}, nil
}

// BrowseListings retrieves listings with their current prices. Price
// lookups fan out across the worker pool, one task per listing.
func (service *ListingService) BrowseListings(ctx context.Context, req inbound.BrowseListingsRequest) ([]*inbound.ListingSummary, error) {
	var categoryID *uuid.UUID
	if req.Category != "" {
		category, err := service.categoryRepo.GetByName(ctx, req.Category)
		if err != nil {
			service.logger.Warn().Err(err).Str("category", req.Category).Msg("Unknown browse category")
			return nil, err
		}
		categoryID = &category.ID
	}

	listings, err := service.listingRepo.List(ctx, categoryID, req.ActiveOnly)
	if err != nil {
		service.logger.Error().Err(err).Msg("Failed to list listings")
		return nil, err
	}

	summaries := make([]*inbound.ListingSummary, len(listings))
	errs := make([]error, len(listings))

	group := service.pricePool.Group()
	for i, l := range listings {
		i, l := i, l
		group.Submit(func() {
			price, err := service.currentPrice(ctx, l)
			if err != nil {
				errs[i] = err
				return
			}
			summaries[i] = &inbound.ListingSummary{Listing: l, CurrentPrice: price}
		})
	}
	group.Wait()

	for _, err := range errs {
		if err != nil {
			service.logger.Error().Err(err).Msg("Failed to derive current price")
			return nil, err
		}
	}

	return summaries, nil
}

// CloseListing closes a listing on behalf of its owner. The most recent
// bidder becomes the winner; with no bids the listing stays untouched.
func (service *ListingService) CloseListing(ctx context.Context, listingID, actorID uuid.UUID) (*shared.CloseResult, error) {
	service.logger.Info().
		Str("listing_id", listingID.String()).
		Str("actor_id", actorID.String()).
		Msg("Attempting to close listing")

	l, err := service.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		service.logger.Error().Err(err).Str("listing_id", listingID.String()).Msg("Failed to retrieve listing for closing")
		return nil, err
	}

	if !l.OwnedBy(actorID) {
		service.logger.Warn().
			Str("listing_id", listingID.String()).
			Str("actor_id", actorID.String()).
			Str("owner_id", l.OwnerID.String()).
			Msg("Close attempted by a non-owner")
		return nil, shared.ErrNotOwner
	}

	latest, err := service.bidRepo.GetLatest(ctx, listingID)
	if err != nil {
		if errors.Is(err, shared.ErrNoBids) {
			service.logger.Warn().Str("listing_id", listingID.String()).Msg("Listing has no bids, leaving it open")
		} else {
			service.logger.Error().Err(err).Str("listing_id", listingID.String()).Msg("Failed to get latest bid")
		}
		return nil, err
	}

	if err := service.listingRepo.Close(ctx, listingID, latest.BidderID); err != nil {
		service.logger.Error().Err(err).Str("listing_id", listingID.String()).Msg("Failed to close listing")
		return nil, err
	}

	result := &shared.CloseResult{
		ListingID:  listingID,
		WinnerID:   latest.BidderID,
		FinalValue: latest.Value,
	}

	service.logger.Info().
		Str("listing_id", listingID.String()).
		Str("winner_id", result.WinnerID.String()).
		Str("final_value", result.FinalValue.String()).
		Msg("Listing closed with winner")

	return result, nil
}

// Stop shuts down the price fan-out pool
func (service *ListingService) Stop() {
	service.cancel()
	service.pricePool.Stop()
}

// currentPrice derives a listing's current price: the latest bid value,
// or the starting price when no bids exist
func (service *ListingService) currentPrice(ctx context.Context, l *listing.Listing) (decimal.Decimal, error) {
	latest, err := service.bidRepo.GetLatest(ctx, l.ID)
	if err != nil {
		if errors.Is(err, shared.ErrNoBids) {
			return l.Price, nil
		}
		return decimal.Decimal{}, err
	}
	return latest.Value, nil
}

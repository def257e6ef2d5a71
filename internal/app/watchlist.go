package app

import (
	"context"
	"errors"
	"time"

	"lotline-auction-service/internal/domain/shared"
	"lotline-auction-service/internal/ports/inbound"
	"lotline-auction-service/internal/ports/outbound"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// WatchlistService implements the watchlist use cases
type WatchlistService struct {
	watchlistRepo outbound.WatchlistRepository
	listingRepo   outbound.ListingRepository
	bidRepo       outbound.BidRepository
	logger        zerolog.Logger
}

type WatchlistServiceParams struct {
	WatchlistRepo outbound.WatchlistRepository
	ListingRepo   outbound.ListingRepository
	BidRepo       outbound.BidRepository
	Logger        zerolog.Logger
}

// NewWatchlistService creates a new watchlist service
func NewWatchlistService(params WatchlistServiceParams) *WatchlistService {
	return &WatchlistService{
		watchlistRepo: params.WatchlistRepo,
		listingRepo:   params.ListingRepo,
		bidRepo:       params.BidRepo,
		logger:        params.Logger.With().Str("component", "watchlist_service").Logger(),
	}
}

// Watch bookmarks a listing for the user
func (service *WatchlistService) Watch(ctx context.Context, userID, listingID uuid.UUID) error {
	if _, err := service.listingRepo.GetByID(ctx, listingID); err != nil {
		service.logger.Warn().Err(err).Str("listing_id", listingID.String()).Msg("Cannot watch a missing listing")
		return err
	}

	entry := &shared.WatchlistEntry{
		UserID:    userID,
		ListingID: listingID,
		CreatedAt: time.Now(),
	}

	if err := service.watchlistRepo.Add(ctx, entry); err != nil {
		if errors.Is(err, shared.ErrAlreadyWatched) {
			service.logger.Warn().
				Str("user_id", userID.String()).
				Str("listing_id", listingID.String()).
				Msg("Listing already on watchlist")
		} else {
			service.logger.Error().Err(err).Str("listing_id", listingID.String()).Msg("Failed to add watchlist entry")
		}
		return err
	}

	service.logger.Info().
		Str("user_id", userID.String()).
		Str("listing_id", listingID.String()).
		Msg("Listing added to watchlist")

	return nil
}

// Unwatch removes a listing from the user's watchlist
func (service *WatchlistService) Unwatch(ctx context.Context, userID, listingID uuid.UUID) error {
	if err := service.watchlistRepo.Remove(ctx, userID, listingID); err != nil {
		if errors.Is(err, shared.ErrNotWatched) {
			service.logger.Warn().
				Str("user_id", userID.String()).
				Str("listing_id", listingID.String()).
				Msg("Listing not on watchlist")
		} else {
			service.logger.Error().Err(err).Str("listing_id", listingID.String()).Msg("Failed to remove watchlist entry")
		}
		return err
	}

	service.logger.Info().
		Str("user_id", userID.String()).
		Str("listing_id", listingID.String()).
		Msg("Listing removed from watchlist")

	return nil
}

// Watchlist retrieves the user's bookmarked listings, newest first
func (service *WatchlistService) Watchlist(ctx context.Context, userID uuid.UUID) ([]*inbound.ListingSummary, error) {
	entries, err := service.watchlistRepo.ListByUser(ctx, userID)
	if err != nil {
		service.logger.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to list watchlist entries")
		return nil, err
	}

	summaries := make([]*inbound.ListingSummary, 0, len(entries))
	for _, entry := range entries {
		l, err := service.listingRepo.GetByID(ctx, entry.ListingID)
		if err != nil {
			// A listing deleted out from under its bookmark is skipped,
			// not fatal
			service.logger.Warn().Err(err).Str("listing_id", entry.ListingID.String()).Msg("Watchlist entry points at a missing listing")
			continue
		}

		price := l.Price
		if latest, err := service.bidRepo.GetLatest(ctx, l.ID); err == nil {
			price = latest.Value
		} else if !errors.Is(err, shared.ErrNoBids) {
			return nil, err
		}

		summaries = append(summaries, &inbound.ListingSummary{Listing: l, CurrentPrice: price})
	}

	return summaries, nil
}

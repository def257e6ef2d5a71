package db

import (
	"context"
	"database/sql"
	"fmt"

	"lotline-auction-service/internal/domain/bid"
	"lotline-auction-service/internal/domain/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BidRepository implements the bid repository interface
type BidRepository struct {
	conn *Connection
}

// NewBidRepository creates a new bid repository
func NewBidRepository(conn *Connection) *BidRepository {
	return &BidRepository{conn: conn}
}

/*
Place persists a bid using transactional revalidation.
 1. Locking the listing row so concurrent bids on it serialize
 2. Re-reading the latest bid under the lock
 3. Failing if the caller evaluated against a stale latest bid
 4. Re-applying the acceptance rule before inserting
*/
func (r *BidRepository) Place(ctx context.Context, newBid *bid.Bid, startingPrice decimal.Decimal, expectedLatest *decimal.Decimal) error {
	return r.conn.InTransaction(ctx, func(tx *sql.Tx) error {
		listingQuery := `
			SELECT is_active
			FROM listings
			WHERE id = $1
			FOR UPDATE
		`

		var isActive bool
		err := tx.QueryRowContext(ctx, listingQuery, newBid.ListingID).Scan(&isActive)
		if err != nil {
			if err == sql.ErrNoRows {
				return shared.ErrListingNotFound
			}
			return fmt.Errorf("failed to get listing for bid: %w", err)
		}

		if !isActive {
			return shared.ErrListingClosed
		}

		latestQuery := `
			SELECT value
			FROM bids
			WHERE listing_id = $1
			ORDER BY placed_at DESC
			LIMIT 1
		`

		var dbLatest *decimal.Decimal
		var latestValue decimal.Decimal
		err = tx.QueryRowContext(ctx, latestQuery, newBid.ListingID).Scan(&latestValue)
		if err != nil && err != sql.ErrNoRows {
			return fmt.Errorf("failed to get latest bid: %w", err)
		}
		if err == nil {
			dbLatest = &latestValue
		}

		// The caller evaluated against a snapshot; if another transaction
		// moved the latest bid since, report the conflict instead of
		// silently re-deciding on its behalf
		if !equalLatest(dbLatest, expectedLatest) {
			return shared.ErrBidConflict
		}

		if err := bid.Evaluate(startingPrice, newBid.Value, dbLatest); err != nil {
			return err
		}

		insertQuery := `
			INSERT INTO bids (id, listing_id, bidder_id, value, placed_at)
			VALUES ($1, $2, $3, $4, $5)
		`

		_, err = tx.ExecContext(ctx, insertQuery,
			newBid.ID,
			newBid.ListingID,
			newBid.BidderID,
			newBid.Value,
			newBid.PlacedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert bid: %w", err)
		}

		return nil
	})
}

// GetByListingID retrieves all bids for a listing, oldest first
func (r *BidRepository) GetByListingID(ctx context.Context, listingID uuid.UUID) ([]*bid.Bid, error) {
	query := `
		SELECT id, listing_id, bidder_id, value, placed_at
		FROM bids
		WHERE listing_id = $1
		ORDER BY placed_at ASC
	`

	rows, err := r.conn.GetDB().QueryContext(ctx, query, listingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bids: %w", err)
	}
	defer rows.Close()

	var bids []*bid.Bid
	for rows.Next() {
		var b bid.Bid
		err := rows.Scan(
			&b.ID,
			&b.ListingID,
			&b.BidderID,
			&b.Value,
			&b.PlacedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bid: %w", err)
		}
		bids = append(bids, &b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bids: %w", err)
	}

	return bids, nil
}

// GetLatest retrieves the most recently placed bid for a listing
func (r *BidRepository) GetLatest(ctx context.Context, listingID uuid.UUID) (*bid.Bid, error) {
	query := `
		SELECT id, listing_id, bidder_id, value, placed_at
		FROM bids
		WHERE listing_id = $1
		ORDER BY placed_at DESC
		LIMIT 1
	`

	var b bid.Bid
	err := r.conn.GetDB().QueryRowContext(ctx, query, listingID).Scan(
		&b.ID,
		&b.ListingID,
		&b.BidderID,
		&b.Value,
		&b.PlacedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, shared.ErrNoBids
		}
		return nil, fmt.Errorf("failed to get latest bid: %w", err)
	}

	return &b, nil
}

// CountByListingID returns how many bids a listing has received
func (r *BidRepository) CountByListingID(ctx context.Context, listingID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM bids
		WHERE listing_id = $1
	`

	var count int
	err := r.conn.GetDB().QueryRowContext(ctx, query, listingID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count bids: %w", err)
	}

	return count, nil
}

func equalLatest(a, b *decimal.Decimal) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

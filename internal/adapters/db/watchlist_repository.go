package db

import (
	"context"
	"fmt"

	"lotline-auction-service/internal/domain/shared"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// WatchlistRepository implements the watchlist repository interface
type WatchlistRepository struct {
	conn *Connection
}

// NewWatchlistRepository creates a new watchlist repository
func NewWatchlistRepository(conn *Connection) *WatchlistRepository {
	return &WatchlistRepository{conn: conn}
}

// Add bookmarks a listing for a user
func (r *WatchlistRepository) Add(ctx context.Context, entry *shared.WatchlistEntry) error {
	query := `
		INSERT INTO watchlist_entries (user_id, listing_id, created_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.conn.GetDB().ExecContext(ctx, query,
		entry.UserID,
		entry.ListingID,
		entry.CreatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
			return shared.ErrAlreadyWatched
		}
		return fmt.Errorf("failed to add watchlist entry: %w", err)
	}

	return nil
}

// Remove drops a bookmark
func (r *WatchlistRepository) Remove(ctx context.Context, userID, listingID uuid.UUID) error {
	query := `
		DELETE FROM watchlist_entries
		WHERE user_id = $1 AND listing_id = $2
	`

	result, err := r.conn.GetDB().ExecContext(ctx, query, userID, listingID)
	if err != nil {
		return fmt.Errorf("failed to remove watchlist entry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return shared.ErrNotWatched
	}

	return nil
}

// IsWatched reports whether the user has bookmarked the listing
func (r *WatchlistRepository) IsWatched(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM watchlist_entries
			WHERE user_id = $1 AND listing_id = $2
		)
	`

	var watched bool
	err := r.conn.GetDB().QueryRowContext(ctx, query, userID, listingID).Scan(&watched)
	if err != nil {
		return false, fmt.Errorf("failed to check watchlist entry: %w", err)
	}

	return watched, nil
}

// ListByUser retrieves a user's watchlist entries, newest first
func (r *WatchlistRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*shared.WatchlistEntry, error) {
	query := `
		SELECT user_id, listing_id, created_at
		FROM watchlist_entries
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.conn.GetDB().QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get watchlist entries: %w", err)
	}
	defer rows.Close()

	var entries []*shared.WatchlistEntry
	for rows.Next() {
		var entry shared.WatchlistEntry
		err := rows.Scan(
			&entry.UserID,
			&entry.ListingID,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan watchlist entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating watchlist entries: %w", err)
	}

	return entries, nil
}

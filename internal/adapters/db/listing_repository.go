package db

import (
	"context"
	"database/sql"
	"fmt"

	"lotline-auction-service/internal/domain/listing"
	"lotline-auction-service/internal/domain/shared"

	"github.com/google/uuid"
)

// ListingRepository implements the listing repository interface
type ListingRepository struct {
	conn *Connection
}

// NewListingRepository creates a new listing repository
func NewListingRepository(conn *Connection) *ListingRepository {
	return &ListingRepository{conn: conn}
}

// Create creates a new listing
func (r *ListingRepository) Create(ctx context.Context, l *listing.Listing) error {
	query := `
		INSERT INTO listings (id, title, description, image_url, price, is_active, category_id, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.conn.GetDB().ExecContext(ctx, query,
		l.ID,
		l.Title,
		l.Description,
		l.ImageURL,
		l.Price,
		l.IsActive,
		l.CategoryID,
		l.OwnerID,
		l.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}

	return nil
}

// GetByID retrieves a listing by ID
func (r *ListingRepository) GetByID(ctx context.Context, id uuid.UUID) (*listing.Listing, error) {
	query := `
		SELECT id, title, description, image_url, price, is_active, winner_id, category_id, owner_id, created_at
		FROM listings
		WHERE id = $1
	`

	var l listing.Listing
	var winner uuid.NullUUID
	err := r.conn.GetDB().QueryRowContext(ctx, query, id).Scan(
		&l.ID,
		&l.Title,
		&l.Description,
		&l.ImageURL,
		&l.Price,
		&l.IsActive,
		&winner,
		&l.CategoryID,
		&l.OwnerID,
		&l.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, shared.ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}

	if winner.Valid {
		l.WinnerID = &winner.UUID
	}

	return &l, nil
}

// List retrieves listings, newest first, with optional filters
func (r *ListingRepository) List(ctx context.Context, categoryID *uuid.UUID, activeOnly bool) ([]*listing.Listing, error) {
	baseQuery := `
		SELECT id, title, description, image_url, price, is_active, winner_id, category_id, owner_id, created_at
		FROM listings
	`

	var conditions []string
	var args []interface{}

	if categoryID != nil {
		args = append(args, *categoryID)
		conditions = append(conditions, fmt.Sprintf("category_id = $%d", len(args)))
	}

	if activeOnly {
		conditions = append(conditions, "is_active = TRUE")
	}

	query := baseQuery
	for i, cond := range conditions {
		if i == 0 {
			query += "WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.conn.GetDB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}
	defer rows.Close()

	var listings []*listing.Listing
	for rows.Next() {
		var l listing.Listing
		var winner uuid.NullUUID
		err := rows.Scan(
			&l.ID,
			&l.Title,
			&l.Description,
			&l.ImageURL,
			&l.Price,
			&l.IsActive,
			&winner,
			&l.CategoryID,
			&l.OwnerID,
			&l.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		if winner.Valid {
			l.WinnerID = &winner.UUID
		}
		listings = append(listings, &l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating listings: %w", err)
	}

	return listings, nil
}

// Close marks a listing inactive and records its winner in one update
func (r *ListingRepository) Close(ctx context.Context, id uuid.UUID, winnerID uuid.UUID) error {
	query := `
		UPDATE listings
		SET winner_id = $2, is_active = FALSE
		WHERE id = $1
	`

	result, err := r.conn.GetDB().ExecContext(ctx, query, id, winnerID)
	if err != nil {
		return fmt.Errorf("failed to close listing: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return shared.ErrListingNotFound
	}

	return nil
}

package db

import (
	"context"
	"fmt"

	"lotline-auction-service/internal/domain/shared"

	"github.com/google/uuid"
)

// CommentRepository implements the comment repository interface
type CommentRepository struct {
	conn *Connection
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(conn *Connection) *CommentRepository {
	return &CommentRepository{conn: conn}
}

// Create creates a new comment
func (r *CommentRepository) Create(ctx context.Context, comment *shared.Comment) error {
	query := `
		INSERT INTO comments (id, listing_id, author_id, title, body, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.conn.GetDB().ExecContext(ctx, query,
		comment.ID,
		comment.ListingID,
		comment.AuthorID,
		comment.Title,
		comment.Body,
		comment.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

// GetByListingID retrieves a listing's comments, oldest first
func (r *CommentRepository) GetByListingID(ctx context.Context, listingID uuid.UUID) ([]*shared.Comment, error) {
	query := `
		SELECT id, listing_id, author_id, title, body, created_at
		FROM comments
		WHERE listing_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.conn.GetDB().QueryContext(ctx, query, listingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}
	defer rows.Close()

	var comments []*shared.Comment
	for rows.Next() {
		var comment shared.Comment
		err := rows.Scan(
			&comment.ID,
			&comment.ListingID,
			&comment.AuthorID,
			&comment.Title,
			&comment.Body,
			&comment.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, &comment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return comments, nil
}

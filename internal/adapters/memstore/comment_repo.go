package memstore

import (
	"context"
	"sort"

	"lotline-auction-service/internal/domain/shared"

	"github.com/google/uuid"
)

// CommentRepo is the in-memory comment repository
type CommentRepo struct {
	store *Store
}

// NewCommentRepo creates a comment repository backed by the store
func NewCommentRepo(store *Store) *CommentRepo {
	return &CommentRepo{store: store}
}

// Create creates a new comment
func (r *CommentRepo) Create(ctx context.Context, comment *shared.Comment) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.comments[comment.ListingID] = append(s.comments[comment.ListingID], cloneComment(comment))
	return nil
}

// GetByListingID retrieves a listing's comments, oldest first
func (r *CommentRepo) GetByListingID(ctx context.Context, listingID uuid.UUID) ([]*shared.Comment, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	comments := make([]*shared.Comment, 0, len(s.comments[listingID]))
	for _, c := range s.comments[listingID] {
		comments = append(comments, cloneComment(c))
	}

	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})

	return comments, nil
}

package app

import (
	"context"
	"time"

	"lotline-auction-service/internal/domain/shared"
	"lotline-auction-service/internal/ports/inbound"
	"lotline-auction-service/internal/ports/outbound"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CommentService implements the comment use cases
type CommentService struct {
	commentRepo outbound.CommentRepository
	listingRepo outbound.ListingRepository
	userRepo    outbound.UserRepository
	logger      zerolog.Logger
}

type CommentServiceParams struct {
	CommentRepo outbound.CommentRepository
	ListingRepo outbound.ListingRepository
	UserRepo    outbound.UserRepository
	Logger      zerolog.Logger
}

// NewCommentService creates a new comment service
func NewCommentService(params CommentServiceParams) *CommentService {
	return &CommentService{
		commentRepo: params.CommentRepo,
		listingRepo: params.ListingRepo,
		userRepo:    params.UserRepo,
		logger:      params.Logger.With().Str("component", "comment_service").Logger(),
	}
}

// PostComment adds a comment to a listing
func (service *CommentService) PostComment(ctx context.Context, req inbound.PostCommentRequest) (*shared.Comment, error) {
	if _, err := service.listingRepo.GetByID(ctx, req.ListingID); err != nil {
		service.logger.Warn().Err(err).Str("listing_id", req.ListingID.String()).Msg("Cannot comment on a missing listing")
		return nil, err
	}

	author, err := service.userRepo.GetByID(ctx, req.AuthorID)
	if err != nil {
		service.logger.Error().Err(err).Str("author_id", req.AuthorID.String()).Msg("Failed to get comment author")
		return nil, err
	}

	comment := &shared.Comment{
		ID:        uuid.New(),
		ListingID: req.ListingID,
		AuthorID:  author.ID,
		Title:     req.Title,
		Body:      req.Body,
		CreatedAt: time.Now(),
	}

	if err := service.commentRepo.Create(ctx, comment); err != nil {
		service.logger.Error().Err(err).Str("listing_id", req.ListingID.String()).Msg("Failed to save comment")
		return nil, err
	}

	service.logger.Info().
		Str("comment_id", comment.ID.String()).
		Str("listing_id", comment.ListingID.String()).
		Str("author_id", comment.AuthorID.String()).
		Msg("Comment posted")

	return comment, nil
}

// GetComments retrieves a listing's comments, oldest first
func (service *CommentService) GetComments(ctx context.Context, listingID uuid.UUID) ([]*shared.Comment, error) {
	if _, err := service.listingRepo.GetByID(ctx, listingID); err != nil {
		return nil, err
	}
	return service.commentRepo.GetByListingID(ctx, listingID)
}

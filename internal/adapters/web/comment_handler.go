package web

import (
	"net/http"

	"lotline-auction-service/internal/domain/shared"
	"lotline-auction-service/internal/ports/inbound"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CommentHandler serves the comment routes
type CommentHandler struct {
	comments inbound.CommentService
	logger   zerolog.Logger
}

func NewCommentHandler(comments inbound.CommentService, logger zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		comments: comments,
		logger:   logger.With().Str("component", "comment_handler").Logger(),
	}
}

// Post handles POST /listings/:listing_id/comments
func (h *CommentHandler) Post(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, errMissingIdentity, "authentication required")
		return
	}

	listingID, ok := parseID(c, "listing_id")
	if !ok {
		return
	}

	var req postCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	comment, err := h.comments.PostComment(c.Request.Context(), inbound.PostCommentRequest{
		ListingID: listingID,
		AuthorID:  user.ID,
		Title:     req.Title,
		Body:      req.Body,
	})
	if err != nil {
		status, message := mapErrorToHTTP(err)
		respondError(c, status, err, message)
		return
	}

	respond(c, http.StatusCreated, comment, "comment posted successfully")
}

// List handles GET /listings/:listing_id/comments
func (h *CommentHandler) List(c *gin.Context) {
	listingID, ok := parseID(c, "listing_id")
	if !ok {
		return
	}

	comments, err := h.comments.GetComments(c.Request.Context(), listingID)
	if err != nil {
		status, message := mapErrorToHTTP(err)
		respondError(c, status, err, message)
		return
	}

	if comments == nil {
		comments = []*shared.Comment{}
	}

	respond(c, http.StatusOK, comments, "comments retrieved successfully")
}

package web

import (
	"errors"
	"net/http"

	"lotline-auction-service/internal/domain/shared"

	"github.com/gin-gonic/gin"
)

// respond sends a structured JSON response
func respond(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// respondError sends a structured error response
func respondError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	})
}

// mapErrorToHTTP maps domain errors to an HTTP status code and message
func mapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, shared.ErrInvalidBid):
		return http.StatusUnprocessableEntity, "bid rejected"
	case errors.Is(err, shared.ErrBidConflict):
		return http.StatusConflict, "bid lost to a concurrent update"
	case errors.Is(err, shared.ErrNoBids):
		return http.StatusUnprocessableEntity, "listing has no bids"
	case errors.Is(err, shared.ErrListingClosed):
		return http.StatusUnprocessableEntity, "listing is closed"
	case errors.Is(err, shared.ErrInvalidPrice):
		return http.StatusUnprocessableEntity, "invalid price"
	case errors.Is(err, shared.ErrListingNotFound):
		return http.StatusNotFound, "listing not found"
	case errors.Is(err, shared.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, shared.ErrCategoryNotFound):
		return http.StatusNotFound, "category not found"
	case errors.Is(err, shared.ErrCommentNotFound):
		return http.StatusNotFound, "comment not found"
	case errors.Is(err, shared.ErrNotOwner):
		return http.StatusForbidden, "only the owner may close this listing"
	case errors.Is(err, shared.ErrUsernameTaken):
		return http.StatusConflict, "username already taken"
	case errors.Is(err, shared.ErrPasswordMismatch):
		return http.StatusBadRequest, "passwords do not match"
	case errors.Is(err, shared.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid username or password"
	case errors.Is(err, shared.ErrSessionNotFound):
		return http.StatusUnauthorized, "session not found"
	case errors.Is(err, shared.ErrAlreadyWatched):
		return http.StatusConflict, "listing already on watchlist"
	case errors.Is(err, shared.ErrNotWatched):
		return http.StatusConflict, "listing not on watchlist"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// handleBindError sends a standardized error for request binding failures
func handleBindError(c *gin.Context, err error) {
	respondError(c, http.StatusBadRequest, err, "invalid request payload")
}

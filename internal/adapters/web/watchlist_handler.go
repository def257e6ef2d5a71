package web

import (
	"net/http"

	"lotline-auction-service/internal/ports/inbound"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// WatchlistHandler serves the watchlist routes
type WatchlistHandler struct {
	watchlist inbound.WatchlistService
	logger    zerolog.Logger
}

func NewWatchlistHandler(watchlist inbound.WatchlistService, logger zerolog.Logger) *WatchlistHandler {
	return &WatchlistHandler{
		watchlist: watchlist,
		logger:    logger.With().Str("component", "watchlist_handler").Logger(),
	}
}

// List handles GET /watchlist
func (h *WatchlistHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, errMissingIdentity, "authentication required")
		return
	}

	summaries, err := h.watchlist.Watchlist(c.Request.Context(), user.ID)
	if err != nil {
		status, message := mapErrorToHTTP(err)
		respondError(c, status, err, message)
		return
	}

	if summaries == nil {
		summaries = []*inbound.ListingSummary{}
	}

	respond(c, http.StatusOK, summaries, "watchlist retrieved successfully")
}

// Toggle handles POST /watchlist with {listing_id, action}
func (h *WatchlistHandler) Toggle(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, errMissingIdentity, "authentication required")
		return
	}

	var req watchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	var err error
	var message string
	switch req.Action {
	case "add":
		err = h.watchlist.Watch(c.Request.Context(), user.ID, req.ListingID)
		message = "listing added to watchlist"
	case "remove":
		err = h.watchlist.Unwatch(c.Request.Context(), user.ID, req.ListingID)
		message = "listing removed from watchlist"
	}

	if err != nil {
		status, message := mapErrorToHTTP(err)
		respondError(c, status, err, message)
		return
	}

	respond(c, http.StatusOK, nil, message)
}

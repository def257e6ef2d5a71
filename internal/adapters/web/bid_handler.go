package web

import (
	"net/http"

	"lotline-auction-service/internal/domain/bid"
	"lotline-auction-service/internal/ports/inbound"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// BidHandler serves the bid placement and bid history routes
type BidHandler struct {
	bids   inbound.BidService
	logger zerolog.Logger
}

func NewBidHandler(bids inbound.BidService, logger zerolog.Logger) *BidHandler {
	return &BidHandler{
		bids:   bids,
		logger: logger.With().Str("component", "bid_handler").Logger(),
	}
}

// Place handles POST /listings/:listing_id/bids
func (h *BidHandler) Place(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, errMissingIdentity, "authentication required")
		return
	}

	listingID, ok := parseID(c, "listing_id")
	if !ok {
		return
	}

	var req placeBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	placed, err := h.bids.PlaceBid(c.Request.Context(), inbound.PlaceBidRequest{
		ListingID: listingID,
		BidderID:  user.ID,
		Value:     req.Value,
	})
	if err != nil {
		status, message := mapErrorToHTTP(err)
		respondError(c, status, err, message)
		h.logger.Warn().
			Str("listing_id", listingID.String()).
			Str("bidder_id", user.ID.String()).
			Err(err).
			Msg("Bid not placed")
		return
	}

	respond(c, http.StatusCreated, placed, "bid placed successfully")
}

// ListBids handles GET /listings/:listing_id/bids
func (h *BidHandler) ListBids(c *gin.Context) {
	listingID, ok := parseID(c, "listing_id")
	if !ok {
		return
	}

	bids, err := h.bids.GetBids(c.Request.Context(), listingID)
	if err != nil {
		status, message := mapErrorToHTTP(err)
		respondError(c, status, err, message)
		return
	}

	if bids == nil {
		bids = []*bid.Bid{}
	}

	respond(c, http.StatusOK, bids, "bids retrieved successfully")
}

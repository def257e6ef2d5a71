package web

import (
	"net/http"

	"lotline-auction-service/internal/ports/inbound"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ListingHandler serves the listing browse, detail, create and close routes
type ListingHandler struct {
	listings inbound.ListingService
	logger   zerolog.Logger
}

func NewListingHandler(listings inbound.ListingService, logger zerolog.Logger) *ListingHandler {
	return &ListingHandler{
		listings: listings,
		logger:   logger.With().Str("component", "listing_handler").Logger(),
	}
}

// Browse handles GET /listings. Active listings by default, all of them
// with ?active=false, one category with ?category=name.
func (h *ListingHandler) Browse(c *gin.Context) {
	req := inbound.BrowseListingsRequest{
		Category:   c.Query("category"),
		ActiveOnly: c.DefaultQuery("active", "true") == "true",
	}

	summaries, err := h.listings.BrowseListings(c.Request.Context(), req)
	if err != nil {
		status, message := mapErrorToHTTP(err)
		respondError(c, status, err, message)
		return
	}

	if summaries == nil {
		summaries = []*inbound.ListingSummary{}
	}

	respond(c, http.StatusOK, summaries, "listings retrieved successfully")
}

// Detail handles GET /listings/:listing_id
func (h *ListingHandler) Detail(c *gin.Context) {
	listingID, ok := parseID(c, "listing_id")
	if !ok {
		return
	}

	var viewerID *uuid.UUID
	if user, ok := currentUser(c); ok {
		viewerID = &user.ID
	}

	detail, err := h.listings.GetListing(c.Request.Context(), listingID, viewerID)
	if err != nil {
		status, message := mapErrorToHTTP(err)
		respondError(c, status, err, message)
		return
	}

	respond(c, http.StatusOK, detail, "listing retrieved successfully")
}

// Create handles POST /listings
func (h *ListingHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, errMissingIdentity, "authentication required")
		return
	}

	var req createListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	l, err := h.listings.CreateListing(c.Request.Context(), inbound.CreateListingRequest{
		OwnerID:       user.ID,
		Title:         req.Title,
		Description:   req.Description,
		StartingPrice: req.StartingPrice,
		ImageURL:      req.ImageURL,
		Category:      req.Category,
	})
	if err != nil {
		status, message := mapErrorToHTTP(err)
		respondError(c, status, err, message)
		return
	}

	respond(c, http.StatusCreated, l, "listing created successfully")
}

// Close handles POST /listings/:listing_id/close
func (h *ListingHandler) Close(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, errMissingIdentity, "authentication required")
		return
	}

	listingID, ok := parseID(c, "listing_id")
	if !ok {
		return
	}

	result, err := h.listings.CloseListing(c.Request.Context(), listingID, user.ID)
	if err != nil {
		status, message := mapErrorToHTTP(err)
		respondError(c, status, err, message)
		return
	}

	respond(c, http.StatusOK, result, "auction closed successfully")
}

package web

import (
	"net/http"

	"lotline-auction-service/internal/ports/inbound"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type RouterParams struct {
	ListingService   inbound.ListingService
	BidService       inbound.BidService
	AccountService   inbound.AccountService
	WatchlistService inbound.WatchlistService
	CommentService   inbound.CommentService
	Logger           zerolog.Logger
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(params RouterParams) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())
	router.Use(RequestLogger(params.Logger))

	accountHandler := NewAccountHandler(params.AccountService, params.Logger)
	listingHandler := NewListingHandler(params.ListingService, params.Logger)
	bidHandler := NewBidHandler(params.BidService, params.Logger)
	watchlistHandler := NewWatchlistHandler(params.WatchlistService, params.Logger)
	commentHandler := NewCommentHandler(params.CommentService, params.Logger)

	requireAuth := RequireAuth(params.AccountService)
	optionalAuth := OptionalAuth(params.AccountService)

	router.GET("/health", handleHealth)

	router.POST("/register", accountHandler.Register)
	router.POST("/login", accountHandler.Login)
	router.POST("/logout", requireAuth, accountHandler.Logout)

	listings := router.Group("/listings")
	{
		listings.GET("", listingHandler.Browse)
		listings.POST("", requireAuth, listingHandler.Create)
		listings.GET("/:listing_id", optionalAuth, listingHandler.Detail)
		listings.POST("/:listing_id/close", requireAuth, listingHandler.Close)
		listings.GET("/:listing_id/bids", bidHandler.ListBids)
		listings.POST("/:listing_id/bids", requireAuth, bidHandler.Place)
		listings.GET("/:listing_id/comments", commentHandler.List)
		listings.POST("/:listing_id/comments", requireAuth, commentHandler.Post)
	}

	watchlist := router.Group("/watchlist", requireAuth)
	{
		watchlist.GET("", watchlistHandler.List)
		watchlist.POST("", watchlistHandler.Toggle)
	}

	return router
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "lotline-auction"})
}

package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"lotline-auction-service/internal/config"
	"lotline-auction-service/internal/ports/inbound"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
	config     *config.Config
	logger     zerolog.Logger
}

type ServerParams struct {
	Config           *config.Config
	ListingService   inbound.ListingService
	BidService       inbound.BidService
	AccountService   inbound.AccountService
	WatchlistService inbound.WatchlistService
	CommentService   inbound.CommentService
	Logger           zerolog.Logger
}

func NewServer(params ServerParams) *Server {
	engine := SetupRouter(RouterParams{
		ListingService:   params.ListingService,
		BidService:       params.BidService,
		AccountService:   params.AccountService,
		WatchlistService: params.WatchlistService,
		CommentService:   params.CommentService,
		Logger:           params.Logger,
	})

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%s", params.Config.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		engine:     engine,
		httpServer: httpServer,
		config:     params.Config,
		logger:     params.Logger,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info().Str("port", s.config.Server.Port).Msg("Starting HTTP server")

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info().Msg("Stopping HTTP server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info().Msg("HTTP server stopped")
	return nil
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"lotline-auction-service/internal/adapters/db"
	"lotline-auction-service/internal/adapters/memstore"
	"lotline-auction-service/internal/adapters/redis"
	"lotline-auction-service/internal/adapters/session"
	"lotline-auction-service/internal/adapters/web"
	"lotline-auction-service/internal/app"
	"lotline-auction-service/internal/config"
	"lotline-auction-service/internal/ports/outbound"
)

func main() {

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	initLogging(cfg)

	log.Info().Msg("Starting Lotline Auction Service...")

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		repos    outbound.Repositories
		sessions outbound.SessionStore
	)

	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		// Initialize database connection
		dbConn, err := db.Open(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer dbConn.Close()

		log.Info().Msg("Database connection established")

		repos = db.NewRepositoryFactory(dbConn).GetAllRepositories()

		// Create Redis client for sessions
		redisClient, err := redis.NewClient(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		log.Info().Msg("Redis connection established")

		sessions = session.NewRedisStore(session.RedisStoreParams{
			RedisClient: redisClient,
			TTL:         cfg.Session.TTL,
			Logger:      log.Logger,
		})

	case config.DriverMemory:
		store := memstore.NewStore()
		repos = store.GetAllRepositories()
		sessions = memstore.NewSessionStore(cfg.Session.TTL)

		log.Info().Msg("In-memory storage initialized")

	default:
		log.Fatal().Str("driver", cfg.Storage.Driver).Msg("Unknown storage driver")
	}

	log.Info().Msg("Repositories initialized")

	// Create business services
	listingService := app.NewListingService(app.ListingServiceParams{
		ListingRepo:   repos.Listings,
		BidRepo:       repos.Bids,
		CategoryRepo:  repos.Categories,
		UserRepo:      repos.Users,
		WatchlistRepo: repos.Watchlist,
		Logger:        log.Logger,
	})
	bidService := app.NewBidService(app.BidServiceParams{
		BidRepo:     repos.Bids,
		ListingRepo: repos.Listings,
		UserRepo:    repos.Users,
		Logger:      log.Logger,
	})
	accountService := app.NewAccountService(app.AccountServiceParams{
		UserRepo: repos.Users,
		Sessions: sessions,
		Logger:   log.Logger,
	})
	watchlistService := app.NewWatchlistService(app.WatchlistServiceParams{
		WatchlistRepo: repos.Watchlist,
		ListingRepo:   repos.Listings,
		BidRepo:       repos.Bids,
		Logger:        log.Logger,
	})
	commentService := app.NewCommentService(app.CommentServiceParams{
		CommentRepo: repos.Comments,
		ListingRepo: repos.Listings,
		UserRepo:    repos.Users,
		Logger:      log.Logger,
	})

	log.Info().Msg("Business services initialized")

	httpServer := web.NewServer(web.ServerParams{
		Config:           cfg,
		ListingService:   listingService,
		BidService:       bidService,
		AccountService:   accountService,
		WatchlistService: watchlistService,
		CommentService:   commentService,
		Logger:           log.Logger,
	})

	log.Info().Msg("HTTP server initialized")

	// Start HTTP server
	go func() {
		if err := httpServer.Start(); err != nil {
			log.Error().Err(err).Msg("Failed to start HTTP server")
			cancel()
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case <-ctx.Done():
		log.Info().Msg("Context cancelled")
	}

	// Graceful shutdown
	log.Info().Msg("Starting graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Stop HTTP server
	if err := httpServer.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error stopping HTTP server")
	}

	// Stop the price fan-out pool
	listingService.Stop()

	log.Info().Msg("Graceful shutdown completed")
}

func initLogging(cfg *config.Config) {
	// Set log level
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Set log format
	if cfg.Logging.Format == "json" {
		// JSON format (default)
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		// Console format for development
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		log.Logger = zerolog.New(output).With().Timestamp().Logger()
	}

	// Set global logger
	zerolog.DefaultContextLogger = &log.Logger
}

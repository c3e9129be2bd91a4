package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amanabooks/storefront/internal"
	"github.com/amanabooks/storefront/internal/domain"
	"github.com/amanabooks/storefront/internal/handler/api"
	"github.com/amanabooks/storefront/internal/memory"
	"github.com/amanabooks/storefront/internal/middleware"
	appmongo "github.com/amanabooks/storefront/internal/mongo"
	"github.com/amanabooks/storefront/internal/router"
	"github.com/amanabooks/storefront/internal/routes"
)

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Select the storage backend. With a connection string the document
	// store is authoritative and a failed ping is fatal; without one the
	// server runs entirely on the seeded in-memory catalog.
	var (
		bookService   domain.BookService
		reviewService domain.ReviewService
		cartService   domain.CartService
	)
	if cfg.MongoConfigured() {
		logger.Info("Connecting to document store...", "database", cfg.Mongo.Database)
		client := appmongo.NewClient(cfg.Mongo)
		defer func() {
			if err := client.Close(context.Background()); err != nil {
				logger.Error("failed to close document store client", "error", err)
			}
		}()

		pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		err := client.Ping(pingCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("document store ping failed: %w", err)
		}
		logger.Info("Document store connection established")

		books := appmongo.NewBookService(client)
		bookService = books
		reviewService = appmongo.NewReviewService(client, books)
		cartService = appmongo.NewCartService(client)
	} else {
		logger.Warn("MONGODB_URI not set, serving the seeded in-memory catalog")
		store := memory.NewSeededStore()
		books := memory.NewBookService(store)
		bookService = books
		reviewService = memory.NewReviewService(store)
		cartService = memory.NewCartService(store)
	}

	// Build route dependencies
	metrics := middleware.NewMetrics("bookstore")
	apiDeps := routes.APIDeps{
		BookHandler:    api.NewBookHandler(bookService, logger),
		ReviewHandler:  api.NewReviewHandler(reviewService, logger),
		CartHandler:    api.NewCartHandler(cartService, bookService, logger),
		MetricsHandler: metrics.Handler(),
		HealthHandler: func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("OK"))
		},
	}

	rateLimiter := middleware.NewRateLimiter(middleware.DefaultRateLimiterConfig())
	defer rateLimiter.Stop()

	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		metrics.Middleware,
		middleware.Timeout(middleware.DefaultTimeout),
		rateLimiter.Middleware,
		router.Logger(logger),
		router.CORS([]string{"*"}),
		middleware.WithRequestLogger(logger),
	)
	routes.RegisterAPIRoutes(r, apiDeps)

	// Start the server, shutting down cleanly on SIGINT/SIGTERM
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting storefront server", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

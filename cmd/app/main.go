package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fenwick-labs/craftgraph/internal/analysis"
	"github.com/fenwick-labs/craftgraph/internal/config"
	"github.com/fenwick-labs/craftgraph/internal/database"
	"github.com/fenwick-labs/craftgraph/internal/database/postgres"
	"github.com/fenwick-labs/craftgraph/internal/gw2api"
	"github.com/fenwick-labs/craftgraph/internal/gw2efficiency"
	"github.com/fenwick-labs/craftgraph/internal/handler"
	"github.com/fenwick-labs/craftgraph/internal/importer"
	"github.com/fenwick-labs/craftgraph/internal/recipe"
	"github.com/fenwick-labs/craftgraph/internal/server"
)

// @title craftgraph API
// @version 1.0
// @description Crafting recipe graph analysis service
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	handler.InitValidator()

	log := slog.Default()

	pool, err := database.NewPool(
		cfg.GetDBConnString(),
		database.DefaultMaxConnections,
		database.DefaultMaxIdleTime,
		database.DefaultMaxLifetime,
	)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.Migrate(cfg.GetDBConnString()); err != nil {
		log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	repo := postgres.NewRecipeRepository(pool)

	apiClient := gw2api.NewClient(cfg.GameAPIBaseURL)
	communityClient := gw2efficiency.NewClient(cfg.CommunityRecipesURL)
	importerService := importer.NewService(apiClient, communityClient, repo)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := loadDatabase(ctx, cfg, importerService)
	if err != nil {
		log.Error("Failed to build recipe database", "error", err)
		os.Exit(1)
	}
	log.Info("Recipe database ready", "recipes", db.Len())

	analysisService := analysis.NewService(db, cfg.CacheSize, cfg.CacheTTL)

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, pool, analysisService)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		log.Error("Server failed", "error", err)
		os.Exit(1)
	case <-ctx.Done():
		log.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("Server stopped")
}

// loadDatabase refreshes recipes from upstream or rebuilds them from the
// last persisted import, depending on configuration.
func loadDatabase(ctx context.Context, cfg *config.Config, svc importer.Service) (*recipe.Database, error) {
	if cfg.ImportOnStart {
		return svc.Import(ctx)
	}
	return svc.LoadStored(ctx)
}

package main

// @title Substation Annotation API
// @version 1.0.0
// @description Backend for the aerial-imagery substation annotation tool.
// @description Persists the substation and component polygon collections as
// @description whole-file JSON documents and serves pre-rendered raster
// @description tiles with an XYZ to TMS row flip.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	_ "github.com/annotation-microservice/docs"
	"github.com/annotation-microservice/internal/config"
	httpDelivery "github.com/annotation-microservice/internal/delivery/http"
	"github.com/annotation-microservice/internal/delivery/http/handler"
	"github.com/annotation-microservice/internal/domain/repository"
	"github.com/annotation-microservice/internal/pkg/logger"
	"github.com/annotation-microservice/internal/repository/cache"
	"github.com/annotation-microservice/internal/repository/file"
	redisRepo "github.com/annotation-microservice/internal/repository/redis"
	"github.com/annotation-microservice/internal/repository/tilefs"
	"github.com/annotation-microservice/internal/repository/tilegcs"
	"github.com/annotation-microservice/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Substation Annotation Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("data_dir", cfg.Storage.DataDir),
		zap.String("tile_backend", cfg.Tile.Backend),
	)

	// 3. Document store over the local filesystem
	osFs := afero.NewOsFs()
	store := file.NewStore(osFs, cfg.Storage.DataDir, log)
	substationRepo := file.NewSubstationRepository(store, log)
	polygonRepo := file.NewPolygonRepository(store, log)

	// 4. Optional Redis: tile/stats cache plus the change feed
	var (
		cacheRepo  repository.CacheRepository
		streamRepo repository.StreamRepository
	)
	if cfg.HasRedis() {
		redisClient, err := cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()

		cacheRepo = cache.NewCacheRepository(redisClient)
		streamRepo = redisRepo.NewStreamRepository(redisClient.Client(), log)
	} else {
		log.Info("Redis not configured, running with no-op cache and no change feed")
		cacheRepo = cache.NewNoop()
	}

	// 5. Tile backend
	var (
		tileRepo repository.TileRepository
		signer   repository.TileURLSigner
	)
	switch cfg.Tile.Backend {
	case config.TileBackendGCS:
		gcsRepo, err := tilegcs.NewTileRepository(context.Background(), cfg.Tile.GCSBucket, cfg.Tile.SignedURLTTL, log)
		if err != nil {
			log.Fatal("Failed to initialize GCS tile backend", zap.Error(err))
		}
		defer func() {
			if err := gcsRepo.Close(); err != nil {
				log.Error("Failed to close GCS client", zap.Error(err))
			}
		}()
		tileRepo = gcsRepo
		if cfg.Tile.SignedURLs {
			signer = gcsRepo
		}
	default:
		tileRepo = tilefs.NewTileRepository(osFs, cfg.Tile.Dir, log)
	}

	log.Info("Repositories initialized")

	// 6. Use cases
	substationUC := usecase.NewSubstationUseCase(substationRepo, streamRepo, log)
	polygonUC := usecase.NewPolygonUseCase(polygonRepo, streamRepo, log)
	tileUC := usecase.NewTileUseCase(tileRepo, signer, cacheRepo, log, cfg.Cache.TilesCacheTTL)
	statsUC := usecase.NewStatsUseCase(substationRepo, polygonRepo, cacheRepo, log, cfg.Cache.StatsCacheTTL)

	log.Info("Use cases initialized")

	// 7. HTTP handlers and server
	substationHandler := handler.NewSubstationHandler(substationUC, log)
	polygonHandler := handler.NewPolygonHandler(polygonUC, log)
	tileHandler := handler.NewTileHandler(tileUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)

	server := httpDelivery.NewServer(
		cfg,
		log,
		substationHandler,
		polygonHandler,
		tileHandler,
		statsHandler,
	)

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}

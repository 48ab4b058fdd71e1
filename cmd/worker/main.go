package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/annotation-microservice/internal/config"
	"github.com/annotation-microservice/internal/pkg/logger"
	"github.com/annotation-microservice/internal/repository/cache"
	"github.com/annotation-microservice/internal/repository/file"
	redisRepo "github.com/annotation-microservice/internal/repository/redis"
	"github.com/annotation-microservice/internal/usecase"
	"github.com/annotation-microservice/internal/worker"
	"github.com/annotation-microservice/internal/worker/stats"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Annotation Stats Worker",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.String("data_dir", cfg.Storage.DataDir))

	// 3. The worker consumes the Redis change feed; Redis is mandatory here.
	if !cfg.HasRedis() {
		log.Fatal("Worker requires REDIS_HOST to be configured")
	}

	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 4. Repositories over the shared data directory
	store := file.NewStore(afero.NewOsFs(), cfg.Storage.DataDir, log)
	substationRepo := file.NewSubstationRepository(store, log)
	polygonRepo := file.NewPolygonRepository(store, log)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	// 5. Use cases
	statsUC := usecase.NewStatsUseCase(substationRepo, polygonRepo, cacheRepo, log, cfg.Cache.StatsCacheTTL)

	// 6. Workers
	statsWorker := stats.NewWorker(streamRepo, statsUC, cfg.Worker.ConsumerGroup, log)

	manager := worker.NewManager(log)
	manager.Register(statsWorker)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := manager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := manager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}

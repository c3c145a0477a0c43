package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	gin "github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Kel2793/Homely-Real-Estate-App/internal/cache"
	"github.com/Kel2793/Homely-Real-Estate-App/internal/config"
	"github.com/Kel2793/Homely-Real-Estate-App/internal/db"
	"github.com/Kel2793/Homely-Real-Estate-App/internal/generator"
	"github.com/Kel2793/Homely-Real-Estate-App/internal/logger"
	"github.com/Kel2793/Homely-Real-Estate-App/internal/repository"
	"github.com/Kel2793/Homely-Real-Estate-App/internal/service"
	httpHandler "github.com/Kel2793/Homely-Real-Estate-App/internal/transport/http"
	kafkaTransport "github.com/Kel2793/Homely-Real-Estate-App/internal/transport/kafka"
)

// @title           Homely Real Estate API
// @version         1.0
// @description     REST API for managing real-estate listings
// @host            localhost:8080
// @BasePath        /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Panic("failed to connect db", zap.Error(err))
	}
	defer pool.Close()

	repo := repository.NewPostgresListingRepository(pool)
	listingCache := cache.NewTTLCache(cfg.CacheTTL, nil)
	svc := service.NewListingService(repo, listingCache, log)

	if cfg.SeedListings > 0 {
		seedListings(ctx, svc, cfg.SeedListings, log)
	}

	producer := kafkaTransport.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic, log)
	consumer := kafkaTransport.NewConsumer(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.KafkaGroupID, svc, log)

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// A second signal forces exit.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info("shutdown signal received")
		stop()
		<-sigCh
		log.Warn("second signal received, forcing exit")
		_ = log.Sync()
		os.Exit(1)
	}()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := consumer.Run(shutdownCtx); err != nil && err != context.Canceled {
			log.Error("consumer stopped with error", zap.Error(err))
			stop()
		} else {
			log.Info("consumer stopped")
		}
	}()

	r := gin.Default()
	h := httpHandler.NewHandler(svc, producer, log)
	h.RegisterRoutes(r)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", zap.Error(err))
			stop()
		}
	}()

	<-shutdownCtx.Done()
	log.Info("shutting down")

	httpShutdownCtx, httpCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer httpCancel()
	if err := srv.Shutdown(httpShutdownCtx); err != nil {
		log.Error("http shutdown error", zap.Error(err))
	}

	wg.Wait()

	if err := consumer.Close(); err != nil {
		log.Error("consumer close error", zap.Error(err))
	}
	if err := producer.Close(); err != nil {
		log.Error("producer close error", zap.Error(err))
	}
}

// seedListings fills an empty database with random listings so the API
// has something to serve in dev environments.
func seedListings(ctx context.Context, svc *service.ListingService, count int, log *zap.Logger) {
	existing, err := svc.GetAll(ctx)
	if err != nil {
		log.Error("failed to check existing listings, skipping seed", zap.Error(err))
		return
	}
	if len(existing) > 0 {
		log.Info("database already has listings, skipping seed", zap.Int("count", len(existing)))
		return
	}

	gen := generator.NewListingGenerator(time.Now().UnixNano())
	for i := 0; i < count; i++ {
		if _, err := svc.Create(ctx, gen.Generate()); err != nil {
			log.Error("failed to seed listing", zap.Error(err))
		}
	}
	log.Info("seeded random listings", zap.Int("count", count))
}

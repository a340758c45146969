package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodtruck/config"
	"foodtruck/logging"
	httpapi "foodtruck/truck-svc/internal/api/http"
	"foodtruck/truck-svc/internal/events"
	"foodtruck/truck-svc/internal/service"
	"foodtruck/truck-svc/internal/storage"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.New("truck-svc", cfg.Logger.Level)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := config.MustInitPostgres(cfg.DB)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Fatal("ensure schema", zap.Error(err))
	}

	rdb := config.MustInitRedis(cfg.Redis)
	defer rdb.Close()
	cache := storage.NewRedisCache(rdb, cfg.Redis.CacheTTL)

	var publisher service.CatalogPublisher
	if cfg.Kafka.Broker != "" {
		writer := config.NewKafkaWriter(cfg.Kafka)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)

		reader := config.NewKafkaReader(cfg.Kafka)
		defer reader.Close()
		go events.NewConsumer(reader, cache, logger).Start(ctx)
	} else {
		logger.Info("KAFKA_BROKER not set, catalog cache invalidated inline")
	}

	qr := service.SiteQRGenerator{SiteURL: cfg.API.SiteURL}
	handler := httpapi.NewHandler(
		service.NewInfoService(repo, cache, publisher, qr, logger),
		service.NewMenuService(repo, cache, publisher, logger),
		service.NewLocationService(repo, cache, publisher, logger),
		logger,
	)

	srv := httpapi.NewServer(":"+cfg.API.Port, httpapi.NewRouter(handler))
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	if err := httpapi.StartServer(srv, logger); err != nil {
		logger.Fatal("listen", zap.Error(err))
	}
}

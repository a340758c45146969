package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodtruck/config"
	"foodtruck/logging"
	"foodtruck/web-svc/internal/client"
	"foodtruck/web-svc/internal/gateway"
	"foodtruck/web-svc/internal/render"

	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.New("web-svc", cfg.Logger.Level)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	renderer, err := render.NewRenderer()
	if err != nil {
		logger.Fatal("parse templates", zap.Error(err))
	}

	httpClient := &http.Client{Timeout: cfg.Web.HTTPTimeout}
	gw := gateway.NewGateway(
		gateway.Config{TruckSvcURL: cfg.Web.APIURL},
		httpClient,
		client.NewClient(cfg.Web.APIURL, httpClient),
		renderer,
		logger,
	)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Web.Port,
		Handler:           c.Handler(gw.SetupRoutes()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	logger.Info("Food truck site starting", zap.String("addr", srv.Addr), zap.String("api", cfg.Web.APIURL))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("listen", zap.Error(err))
	}
}

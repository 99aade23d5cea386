package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"greencross/internal/catalog"
	catalogrepo "greencross/internal/catalog/repository"
	"greencross/internal/config"
	"greencross/internal/infrastructure/logger"
	"greencross/internal/location"
	locationrepo "greencross/internal/location/repository"
	"greencross/internal/preorder"
	"greencross/internal/server"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "internal/config/config.yaml", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	products, err := catalogrepo.NewStaticRepository()
	if err != nil {
		zapLogger.Fatal("loading catalog", zap.Error(err))
	}
	locations, err := locationrepo.NewStaticRepository()
	if err != nil {
		zapLogger.Fatal("loading locations", zap.Error(err))
	}
	zapLogger.Info("static data loaded",
		zap.Int("products", len(products.FindAll())),
		zap.Int("locations", len(locations.FindAll())),
	)

	preorderCtrl, closeRelay, err := preorder.NewModule(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("configuring preorder relay", zap.Error(err))
	}
	defer func() {
		if err := closeRelay(); err != nil {
			zapLogger.Warn("closing relay", zap.Error(err))
		}
	}()
	zapLogger.Info("preorder relay ready", zap.String("driver", cfg.Relay.Driver))

	router := server.NewRouter(server.Controllers{
		Catalog:   catalog.NewModule(products, zapLogger),
		Locations: location.NewModule(locations, zapLogger),
		Preorder:  preorderCtrl,
	}, cfg.Server.AllowedOrigins, zapLogger)

	srv := server.New(cfg.Server, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server shutdown failed", zap.Error(err))
		return
	}

	zapLogger.Info("server stopped gracefully")
}

package main

// @title TrainMeet API
// @version 1.0.0
// @description Finds rail connections from several departure places to one destination, arriving by a given time.

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

	_ "github.com/trainmeet/docs"
	"github.com/trainmeet/internal/config"
	httpDelivery "github.com/trainmeet/internal/delivery/http"
	"github.com/trainmeet/internal/delivery/http/handler"
	"github.com/trainmeet/internal/infrastructure/googlemaps"
	"github.com/trainmeet/internal/pkg/logger"
	"github.com/trainmeet/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load(".env")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting TrainMeet")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("maps_base_url", cfg.GoogleMaps.BaseURL),
	)

	if cfg.GoogleMaps.APIKey == "" {
		log.Warn("Google Maps API key is missing, every search will show the input warning")
	}

	// 3. Google Maps client
	mapsClient := googlemaps.NewGoogleMapsClient(&cfg.GoogleMaps, log)

	// 4. Use cases
	plannerUC := usecase.NewRoutePlannerUseCase(mapsClient, log)

	// 5. HTTP handlers
	pageHandler, err := handler.NewPageHandler(plannerUC, cfg.Form, log)
	if err != nil {
		log.Fatal("Failed to parse page templates", zap.Error(err))
	}
	routeHandler := handler.NewRouteHandler(plannerUC, log)

	// 6. HTTP server
	server := httpDelivery.NewServer(cfg, log, pageHandler, routeHandler)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 7. Graceful shutdown
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

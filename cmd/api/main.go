package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/safarapp/safar-api/internal/adapters/gemini"
	"github.com/safarapp/safar-api/internal/adapters/geoapify"
	"github.com/safarapp/safar-api/internal/adapters/http"
	"github.com/safarapp/safar-api/internal/adapters/vader"
	"github.com/safarapp/safar-api/internal/core/ports"
	"github.com/safarapp/safar-api/internal/core/usecases"
	"github.com/safarapp/safar-api/internal/pkg/config"
	"github.com/safarapp/safar-api/internal/pkg/logging"
	"github.com/safarapp/safar-api/internal/pkg/telemetry"
)

func main() {
	cfg, err := config.Load("safar-api")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Structured logging
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	logging.Setup(logLevel, "json")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Telemetry
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.OTLPAddr)
		if err != nil {
			slog.Warn("telemetry init failed", "error", err)
		} else {
			defer shutdown()
		}
	}

	// Providers
	geo := geoapify.NewClient(geoapify.Config{
		APIKey:      cfg.Geoapify.APIKey,
		BaseURL:     cfg.Geoapify.BaseURL,
		CountryBias: cfg.Geoapify.CountryBias,
		Timeout:     time.Duration(cfg.Geoapify.TimeoutSeconds) * time.Second,
	})
	if cfg.Geoapify.APIKey == "" {
		slog.Warn("geoapify api key not set, travel options will fail")
	}

	var generator ports.TextGenerator
	if cfg.Gemini.APIKey != "" {
		gen, err := gemini.NewClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			slog.Warn("gemini unavailable, itineraries disabled", "error", err)
		} else {
			generator = gen
		}
	} else {
		slog.Warn("gemini api key not set, itineraries disabled")
	}

	// Use cases
	travelSvc := usecases.NewTravelService(geo, geo)
	moodSvc := usecases.NewMoodService(vader.New())
	itinerarySvc := usecases.NewItineraryService(generator)

	deps := &http.Dependencies{
		Travel:      travelSvc,
		Moods:       moodSvc,
		Itineraries: itinerarySvc,
		Cfg:         cfg,
	}

	// Fiber
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:    256 * 1024, // requests are small JSON documents
		AppName:      "Safar API",
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
		MaxAge:           3600,
	}))

	http.SetupRoutes(app, deps)

	// Graceful shutdown
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		slog.Info("API server starting", "addr", addr)
		if err := app.Listen(addr); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	slog.Info("shutdown signal received, draining connections...", "signal", sig.String())

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}

	slog.Info("server stopped")
}

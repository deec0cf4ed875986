// Command server runs the FloatChat ocean query service: a conversational
// endpoint that turns free-text ocean-data questions into an answer plus a
// visualization descriptor, backed by synthetic ARGO datasets.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"github.com/floatchat/ocean-query-service/internal/adapter/gemini"
	httpadapter "github.com/floatchat/ocean-query-service/internal/adapter/http"
	kafkaadapter "github.com/floatchat/ocean-query-service/internal/adapter/kafka"
	"github.com/floatchat/ocean-query-service/internal/adapter/mapbox"
	"github.com/floatchat/ocean-query-service/internal/argo"
	"github.com/floatchat/ocean-query-service/internal/config"
	"github.com/floatchat/ocean-query-service/internal/domain"
	"github.com/floatchat/ocean-query-service/internal/observability"
	"github.com/floatchat/ocean-query-service/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	// Text generation (feature-flagged via GEMINI_ENABLED / GEMINI_API_KEY).
	var generator pipeline.TextGenerator
	if cfg.GeminiEnabled {
		generator = gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTimeout, logger)
		metrics.GeminiEnabled.Set(1)
		logger.Info("gemini text generation enabled", "model", cfg.GeminiModel, "timeout", cfg.GeminiTimeout)
	} else {
		generator = pipeline.StaticGenerator{}
		logger.Info("gemini text generation disabled, using static responder")
	}

	// Geocoding (feature-flagged via MAPBOX_ENABLED / MAPBOX_TOKEN).
	var geocoder domain.Geocoder
	if cfg.MapboxEnabled {
		client := mapbox.NewClient(cfg.MapboxToken, cfg.MapboxTimeout, logger)
		geocoder = mapbox.NewCachedGeocoder(client, cfg.CacheTTL, clock)
		logger.Info("mapbox geocoding enabled", "cache_ttl", cfg.CacheTTL)
	} else {
		logger.Info("mapbox geocoding disabled")
	}

	// Query analytics (feature-flagged via ANALYTICS_ENABLED).
	var analytics pipeline.AnalyticsPublisher
	var analyticsWriter *kafkaadapter.Writer
	if cfg.AnalyticsEnabled {
		analyticsWriter = kafkaadapter.NewWriter(cfg, logger)
		analytics = analyticsWriter
		logger.Info("query analytics enabled", "topic", cfg.KafkaAnalyticsTopic)
	} else {
		logger.Info("query analytics disabled")
	}

	dataService := argo.New(cfg.CacheTTL, clock, metrics, logger)
	p := pipeline.New(generator, analytics, clock, logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, dataService, geocoder, metrics, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if analyticsWriter != nil {
		if err := analyticsWriter.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/deuexpo/keepa/internal/api"
	"github.com/deuexpo/keepa/internal/config"
	"github.com/deuexpo/keepa/internal/export"
	"github.com/deuexpo/keepa/internal/metrics"
	"github.com/deuexpo/keepa/internal/poller"
	"github.com/deuexpo/keepa/internal/series"
	"github.com/deuexpo/keepa/internal/version"
)

func main() {
	// .env is optional; the shell environment takes precedence.
	_ = godotenv.Load()

	configPath := flag.String("config", "configs/tracker.yaml", "path to config file")
	flag.Parse()

	// Set up structured logging
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	logger.WithFields(logrus.Fields{
		"version": version.Version,
		"commit":  version.Commit,
		"config":  *configPath,
	}).Info("starting tracker")

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Validation guarantees these parse.
	domain, err := api.ParseDomain(cfg.API.Domain)
	if err != nil {
		logger.Fatalf("Failed to resolve domain: %v", err)
	}

	logger.WithFields(logrus.Fields{
		"domain":   cfg.API.Domain,
		"asins":    len(cfg.Poller.ASINs),
		"interval": cfg.Poller.Interval.String(),
	}).Info("configuration loaded")

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.WithField("signal", sig.String()).Info("received shutdown signal")
		cancel()
	}()

	// Create API client
	client := api.NewClient(cfg.API.AccessKey, domain,
		api.WithBaseURL(cfg.API.BaseURL),
		api.WithTimeout(cfg.API.Timeout),
		api.WithRetries(cfg.API.MaxAttempts, cfg.API.RetryBackoff),
		api.WithLogger(logger),
	)

	handler, err := newExportHandler(cfg)
	if err != nil {
		logger.Fatalf("Failed to build export handler: %v", err)
	}

	set := metrics.NewSet()

	p := poller.New(poller.Config{
		Interval: cfg.Poller.Interval,
		ASINs:    cfg.Poller.ASINs,
		Rating:   cfg.Poller.Rating,
	}, client, handler, logger, set)

	// Start health server before the first poll so liveness probes
	// succeed during a long token-refill wait.
	healthServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Metrics.Port),
		Handler: newServeMux(cfg, set),
	}

	go func() {
		logger.WithField("port", cfg.Metrics.Port).Info("starting health server")
		if err := healthServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.WithError(err).Error("health server error")
		}
	}()

	if err := p.Start(ctx); err != nil {
		logger.Fatalf("Failed to start poller: %v", err)
	}

	logger.WithFields(logrus.Fields{
		"health_url":  fmt.Sprintf("http://localhost:%d/health", cfg.Metrics.Port),
		"metrics_url": fmt.Sprintf("http://localhost:%d%s", cfg.Metrics.Port, cfg.Metrics.Path),
	}).Info("tracker running")

	// Wait for shutdown
	<-ctx.Done()

	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := p.Stop(shutdownCtx); err != nil {
		logger.WithError(err).Error("poller stop timed out")
	}
	healthServer.Shutdown(shutdownCtx)

	logger.Info("tracker stopped")
}

// newExportHandler builds the CSV export sink from validated config.
func newExportHandler(cfg *config.TrackerConfig) (*export.DailyCSV, error) {
	fields := make([]api.Field, 0, len(cfg.Export.Fields))
	for _, name := range cfg.Export.Fields {
		f, err := api.ParseField(name)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}

	reducer, err := series.ParseReducer(cfg.Export.Reducer)
	if err != nil {
		return nil, err
	}

	return &export.DailyCSV{
		Dir:     cfg.Export.Dir,
		Fields:  fields,
		Reducer: reducer,
	}, nil
}

// newServeMux wires the health and metrics endpoints.
func newServeMux(cfg *config.TrackerConfig, set *metrics.Set) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		health := struct {
			Status     string         `json:"status"`
			Version    string         `json:"version"`
			Components map[string]any `json:"components"`
		}{
			Status:  "healthy",
			Version: version.Version,
			Components: map[string]any{
				"poller": map[string]any{
					"asins":    len(cfg.Poller.ASINs),
					"interval": cfg.Poller.Interval.String(),
				},
				"export": map[string]any{
					"dir":    cfg.Export.Dir,
					"fields": cfg.Export.Fields,
				},
			},
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(health)
	})

	mux.Handle(cfg.Metrics.Path, set.Handler())

	return mux
}

package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/horizonlabs/media-analytics-go/internal/config"
	"github.com/horizonlabs/media-analytics-go/internal/httpx"
	"github.com/horizonlabs/media-analytics-go/internal/ingest"
	"github.com/horizonlabs/media-analytics-go/internal/metrics"
	"github.com/horizonlabs/media-analytics-go/internal/store"
)

func main() {
	godotenv.Load()
	cfg := config.FromEnv()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	var src ingest.Source = ingest.FileSource{Path: cfg.DataPath}
	if cfg.DataURL != "" {
		src = ingest.NewHTTPSource(cfg.DataURL, cfg.HTTPTimeout)
	}

	loader := ingest.NewLoader(src, logger)
	ds := store.NewDataset(loader, logger)
	svc := metrics.NewService(ds)

	r := httpx.NewRouter(logger, svc, ds, cfg.DefaultPeriod)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("starting server", slog.String("port", cfg.Port), slog.String("data", cfg.DataPath))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", slog.String("err", err.Error()))
		os.Exit(1)
	}
}

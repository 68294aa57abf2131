package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/ledgerlift/ledgerlift/internal/commands"
	"github.com/ledgerlift/ledgerlift/internal/logging"
	"github.com/ledgerlift/ledgerlift/internal/platform/config"
	"github.com/ledgerlift/ledgerlift/internal/platform/metrics"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.MetricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", metrics.Handler())
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				logger.Warn("Metrics listener stopped", slog.String("error", err.Error()))
			}
		}()
	}

	ctx := logging.WithLogger(context.Background(), logger)
	app := commands.NewApp(cfg, logger)
	if err := commands.NewRootCommand(app).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

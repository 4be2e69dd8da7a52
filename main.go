package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"load-harness/config"
	"load-harness/internal/harness"
	"load-harness/internal/logger"
	"load-harness/internal/pinger"
	"load-harness/pkg/utils"
)

// main is the entry point for the load harness application.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	appLogger, closeLogFile := logger.New(cfg.LogFile, cfg.LogLevel)
	defer closeLogFile()

	// Every invocation gets its own run ID so the log file and CSV rows of
	// consecutive runs stay distinguishable.
	runID := uuid.New().String()
	appLogger = appLogger.With(slog.String("run_id", runID))
	slog.SetDefault(appLogger)

	appLogger.Info("Configuration loaded.",
		"host", cfg.Host,
		"port", cfg.Port,
		"connections", cfg.Connections,
		"max_stall", cfg.MaxStall,
		"strict", cfg.Strict,
	)

	utils.CheckFileDescriptorLimit(appLogger, cfg.Connections)

	if cfg.Ping {
		pingTimeout := cfg.Timeout
		if pingTimeout == 0 {
			pingTimeout = 2 * time.Second
		}
		if !pinger.CheckReachable(cfg.Host, pingTimeout, appLogger) {
			appLogger.Error("Host is unreachable, aborting.", "host", cfg.Host)
			os.Exit(1)
		}
	}

	startTime := time.Now()
	h := harness.New(cfg, appLogger, os.Stdout, runID)
	if err := h.Run(context.Background()); err != nil {
		appLogger.Error("Run failed.", "error", err)
		os.Exit(1)
	}
	appLogger.Info("Run complete.", "duration", time.Since(startTime))
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hooplab/statprep/internal/adapters/provider"
	"github.com/hooplab/statprep/internal/adapters/store"
	"github.com/hooplab/statprep/internal/app"
	"github.com/hooplab/statprep/internal/config"
	"github.com/hooplab/statprep/internal/domain/model"
	"github.com/hooplab/statprep/pkg/logger"
)

func main() {
	season := flag.String("season", "", `Season to fetch, e.g. "2023-24" (default from config)`)
	flag.Parse()

	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Apply configured log level (fallback to info on invalid input)
	log := logger.Get()
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	if *season == "" {
		*season = cfg.Season
	}

	runner := app.New(
		app.WithLogger(log),
		app.WithSeason(*season),
		app.WithProvider(provider.New(
			provider.WithBaseURL(cfg.BaseURL),
			provider.WithUserAgent(cfg.UserAgent),
			provider.WithTimeout(time.Duration(cfg.TimeoutMS)*time.Millisecond),
		)),
		app.WithStore(store.New(
			store.WithDataDir(cfg.DataDir),
		)),
	)

	summary, err := runner.Run(ctx)
	if err != nil {
		log.Error(ctx, "run failed", logger.Error(err))
		os.Stderr.WriteString("run failed: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Human-readable tally; the structured logs carry the same numbers.
	fmt.Printf("Saved raw data to %s\n", summary.RawPath)
	fmt.Printf("Saved processed players to %s\n", summary.ProcessedPath)
	fmt.Println("Tier counts:")
	for _, tier := range []model.Tier{model.TierBust, model.TierRolePlayer, model.TierStar} {
		fmt.Printf("  %-12s %d\n", tier, summary.TierCounts[tier])
	}
}

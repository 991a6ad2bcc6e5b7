// Package app wires the pipeline stages into one sequential batch run:
// fetch, dump raw, filter, derive, dump processed.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hooplab/statprep/internal/adapters/store"
	"github.com/hooplab/statprep/internal/domain/filter"
	"github.com/hooplab/statprep/internal/domain/model"
	"github.com/hooplab/statprep/internal/domain/scoring"
	"github.com/hooplab/statprep/pkg/logger"
	"github.com/hooplab/statprep/pkg/metrics"
)

// defaultSeason is used when no season option is supplied.
const defaultSeason = "2023-24"

// Provider fetches the raw season table.
type Provider interface {
	FetchSeason(ctx context.Context, season string) (model.RawTable, error)
}

// Store persists the raw and processed tables.
type Store interface {
	SaveRaw(ctx context.Context, table model.RawTable) (string, error)
	SaveProcessed(ctx context.Context, players []model.ProcessedPlayer) (string, error)
}

// Summary reports what one completed run did.
type Summary struct {
	RunID         string
	Season        string
	RawPath       string
	ProcessedPath string
	FetchedRows   int
	RejectedRows  int
	TierCounts    map[model.Tier]int
}

// Runner executes the pipeline once. There is no concurrency: one fetch,
// one transform, two writes, strictly in order.
type Runner struct {
	provider Provider
	store    Store
	season   string
	logger   logger.Logger
}

// Option applies a configuration option to the Runner.
type Option func(*Runner)

// WithProvider sets the stats provider.
func WithProvider(p Provider) Option {
	return func(r *Runner) {
		if p != nil {
			r.provider = p
		}
	}
}

// WithStore sets the CSV store.
func WithStore(s Store) Option {
	return func(r *Runner) {
		if s != nil {
			r.store = s
		}
	}
}

// WithSeason sets the season to fetch.
func WithSeason(season string) Option {
	return func(r *Runner) {
		if season != "" {
			r.season = season
		}
	}
}

// WithLogger sets a custom logger for the runner.
func WithLogger(l logger.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// New constructs a Runner with default configuration.
func New(opts ...Option) *Runner {
	r := &Runner{
		season: defaultSeason,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run executes the full pipeline and returns a Summary of what was written.
// Fetch and write failures abort the run; malformed rows are dropped and
// reported only through the summary, logs and metrics.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	if r.provider == nil {
		return Summary{}, ErrNoProvider
	}
	if r.store == nil {
		return Summary{}, ErrNoStore
	}

	log := r.logger
	if log == nil {
		log = logger.Get()
	}

	summary := Summary{
		RunID:      uuid.New().String(),
		Season:     r.season,
		TierCounts: make(map[model.Tier]int),
	}

	log.Info(ctx, "fetching season stats",
		logger.String("run_id", summary.RunID),
		logger.String("season", r.season))

	fetchStart := time.Now()
	table, err := r.provider.FetchSeason(ctx, r.season)
	if err != nil {
		metrics.RecordRunFailure()
		return Summary{}, fmt.Errorf("fetch season %s: %w", r.season, err)
	}
	metrics.ObserveFetchDuration(time.Since(fetchStart))
	metrics.RecordRowsFetched(len(table.Rows))
	summary.FetchedRows = len(table.Rows)

	writeStart := time.Now()
	rawPath, err := r.store.SaveRaw(ctx, table)
	if err != nil {
		metrics.RecordRunFailure()
		return Summary{}, fmt.Errorf("save raw table: %w", err)
	}
	metrics.ObserveCSVWriteDuration(store.RawFileName, time.Since(writeStart))
	summary.RawPath = rawPath
	log.Info(ctx, "saved raw data",
		logger.String("path", rawPath),
		logger.Int("rows", len(table.Rows)))

	players, rejections, err := filter.Parse(table)
	if err != nil {
		metrics.RecordRunFailure()
		return Summary{}, fmt.Errorf("filter raw table: %w", err)
	}
	summary.RejectedRows = len(rejections)
	rejectionCounts := make(map[filter.Reason]int)
	for _, rej := range rejections {
		metrics.RecordRowRejected(string(rej.Reason))
		rejectionCounts[rej.Reason]++
	}
	log.Info(ctx, "filtered raw rows",
		logger.Int("kept", len(players)),
		logger.Int("dropped_low_games", rejectionCounts[filter.ReasonLowGames]),
		logger.Int("dropped_bad_number", rejectionCounts[filter.ReasonBadNumber]))

	processed := scoring.Derive(players)
	for _, p := range processed {
		metrics.RecordPlayerTiered(string(p.Tier))
		summary.TierCounts[p.Tier]++
	}

	writeStart = time.Now()
	processedPath, err := r.store.SaveProcessed(ctx, processed)
	if err != nil {
		metrics.RecordRunFailure()
		return Summary{}, fmt.Errorf("save processed table: %w", err)
	}
	metrics.ObserveCSVWriteDuration(store.ProcessedFileName, time.Since(writeStart))
	summary.ProcessedPath = processedPath
	log.Info(ctx, "saved processed players",
		logger.String("path", processedPath),
		logger.Int("rows", len(processed)))

	log.Info(ctx, "tier counts",
		logger.Int("bust", summary.TierCounts[model.TierBust]),
		logger.Int("role_player", summary.TierCounts[model.TierRolePlayer]),
		logger.Int("star", summary.TierCounts[model.TierStar]))

	metrics.SetLastRun(time.Now())
	return summary, nil
}

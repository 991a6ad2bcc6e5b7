// Package store persists the raw and processed player tables as CSV files
// in the data directory.
package store

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/hooplab/statprep/internal/domain/model"
)

// Output file names and permissions.
const (
	RawFileName       = "players_raw.csv"
	ProcessedFileName = "players_processed.csv"

	defaultDataDir      = "data"
	directoryPermission = 0o750
	filePermission      = 0o644
)

// processedHeader is the contractual column order of the processed output.
var processedHeader = []string{
	"player_name",
	"height_m",
	"weight_kg",
	"scoring",
	"playmaking",
	"discipline",
	"luck_factor",
	"tier",
}

// Store writes CSV outputs into a single data directory, creating it on
// first use.
type Store struct {
	dataDir  string
	dirPerm  os.FileMode
	filePerm os.FileMode
}

// New creates a Store with default configuration, adjusted by options.
func New(opts ...Option) *Store {
	s := &Store{
		dataDir:  defaultDataDir,
		dirPerm:  directoryPermission,
		filePerm: filePermission,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SaveRaw dumps the fetched table verbatim: the provider's full header and
// every row, including rows the filter will later drop. Returns the path
// written.
func (s *Store) SaveRaw(ctx context.Context, table model.RawTable) (string, error) {
	records := make([][]string, 0, len(table.Rows)+1)
	records = append(records, table.Headers)
	records = append(records, table.Rows...)
	return s.writeCSV(ctx, RawFileName, records)
}

// SaveProcessed writes the processed players with the fixed output header,
// one row per surviving player, no index column. Returns the path written.
func (s *Store) SaveProcessed(ctx context.Context, players []model.ProcessedPlayer) (string, error) {
	records := make([][]string, 0, len(players)+1)
	records = append(records, processedHeader)
	for _, p := range players {
		records = append(records, []string{
			p.Name,
			formatFloat(p.HeightM),
			formatFloat(p.WeightKG),
			formatFloat(p.Scoring),
			formatFloat(p.Playmaking),
			formatFloat(p.Discipline),
			formatFloat(p.LuckFactor),
			string(p.Tier),
		})
	}
	return s.writeCSV(ctx, ProcessedFileName, records)
}

// writeCSV creates the data dir if needed and writes one file atomically
// enough for a single-writer batch run: create, write all, flush, close.
func (s *Store) writeCSV(ctx context.Context, name string, records [][]string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWrite, err)
	}

	if err := os.MkdirAll(s.dataDir, s.dirPerm); err != nil {
		return "", fmt.Errorf("%w: create data dir: %w", ErrWrite, err)
	}

	path := filepath.Join(s.dataDir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, s.filePerm)
	if err != nil {
		return "", fmt.Errorf("%w: create %s: %w", ErrWrite, name, err)
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("%w: write %s: %w", ErrWrite, name, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("%w: close %s: %w", ErrWrite, name, err)
	}
	return path, nil
}

// formatFloat renders floats compactly without trailing zero padding.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

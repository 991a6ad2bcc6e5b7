// Package model contains domain models passed between pipeline stages.
package model

// RawTable is the season stats table exactly as the provider returned it.
// Headers and Rows keep the provider's full column set and order so the raw
// dump stays verbatim; all cells are carried as strings.
type RawTable struct {
	Headers []string
	Rows    [][]string
}

// ColumnIndex returns the position of the named column, or -1 if absent.
func (t RawTable) ColumnIndex(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// PlayerStats is one coerced per-game stat line that survived filtering.
type PlayerStats struct {
	Name        string
	GamesPlayed int
	Points      float64 // per game
	Rebounds    float64 // per game
	Assists     float64 // per game
	Turnovers   float64 // per game
	FGPct       float64 // field-goal percentage in [0,1]
	FG3Pct      float64 // three-point percentage in [0,1]
}

// Tier is the coarse batch-relative class of a player.
type Tier string

// Tier values. Thresholds are relative to one run's full player set, so a
// tier is only meaningful within the batch it was assigned in.
const (
	TierBust       Tier = "bust"
	TierRolePlayer Tier = "role_player"
	TierStar       Tier = "star"
)

// ProcessedPlayer is one row of the processed output table.
type ProcessedPlayer struct {
	Name       string
	HeightM    float64
	WeightKG   float64
	Scoring    float64 // normalized to [0,1]
	Playmaking float64 // normalized to [0,1]
	Discipline float64 // normalized to [0,1]
	LuckFactor float64 // normalized to [0,1]
	Tier       Tier
}

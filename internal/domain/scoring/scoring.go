// Package scoring derives the normalized game attributes and batch-relative
// tier from coerced season stat lines.
package scoring

import (
	"github.com/hooplab/statprep/internal/domain/model"
	"github.com/hooplab/statprep/internal/domain/stats"
)

// Attribute derivation constants. Fixed on purpose: the output attributes
// are only comparable across runs if every run uses the same recipe.
const (
	// scoring input is points plus a shooting-efficiency bonus.
	fgPctBonus = 5.0
	// playmaking input penalizes turnovers against assists.
	turnoverPenalty = 0.5

	// impact_raw is a convex combination of the three attributes, so it
	// stays in [0,1] without another normalization pass.
	impactScoringWeight    = 0.5
	impactPlaymakingWeight = 0.3
	impactDisciplineWeight = 0.2

	// Tier thresholds are quantiles of impact_raw over the current batch.
	bustQuantile = 0.2
	starQuantile = 0.8

	// Placeholder physicals; the per-game stats feed carries no real
	// height or weight, so every player gets the same defaults.
	defaultHeightM  = 2.0
	defaultWeightKG = 100.0
)

// Derive computes the processed attributes for a batch of players.
//
// All four emitted attributes are min-max normalized against this batch
// only, and the tier thresholds are quantiles of this batch's impact score.
// The result is order-preserving; zero players in yields zero players out.
func Derive(players []model.PlayerStats) []model.ProcessedPlayer {
	n := len(players)
	out := make([]model.ProcessedPlayer, 0, n)
	if n == 0 {
		return out
	}

	scoringRaw := make([]float64, n)
	playmakingRaw := make([]float64, n)
	disciplineRaw := make([]float64, n)
	for i, p := range players {
		scoringRaw[i] = p.Points + fgPctBonus*p.FGPct
		playmakingRaw[i] = p.Assists - turnoverPenalty*p.Turnovers
		disciplineRaw[i] = -p.Turnovers
	}

	scoring := stats.Normalize(scoringRaw)
	playmaking := stats.Normalize(playmakingRaw)
	discipline := stats.Normalize(disciplineRaw)

	impact := make([]float64, n)
	for i := range players {
		impact[i] = impactScoringWeight*scoring[i] +
			impactPlaymakingWeight*playmaking[i] +
			impactDisciplineWeight*discipline[i]
	}
	// Despite the name this is deterministic: a rescale of the impact
	// score against its own batch range.
	luck := stats.Normalize(impact)

	qLow := stats.Quantile(impact, bustQuantile)
	qHigh := stats.Quantile(impact, starQuantile)

	for i, p := range players {
		out = append(out, model.ProcessedPlayer{
			Name:       p.Name,
			HeightM:    defaultHeightM,
			WeightKG:   defaultWeightKG,
			Scoring:    scoring[i],
			Playmaking: playmaking[i],
			Discipline: discipline[i],
			LuckFactor: luck[i],
			Tier:       tierFor(impact[i], qLow, qHigh),
		})
	}
	return out
}

// tierFor classifies one impact score against the batch thresholds.
func tierFor(impact, qLow, qHigh float64) model.Tier {
	switch {
	case impact <= qLow:
		return model.TierBust
	case impact >= qHigh:
		return model.TierStar
	default:
		return model.TierRolePlayer
	}
}

package scoring_test

import (
	"testing"

	"github.com/hooplab/statprep/internal/domain/model"
	"github.com/hooplab/statprep/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDeriveAttributes(t *testing.T) {
	Convey("Given a batch of distinct stat lines", t, func() {
		players := []model.PlayerStats{
			{Name: "Bench Guard", GamesPlayed: 18, Points: 4.5, Rebounds: 1.2, Assists: 1.0, Turnovers: 0.6, FGPct: 0.41, FG3Pct: 0.31},
			{Name: "Rotation Wing", GamesPlayed: 55, Points: 11.0, Rebounds: 4.0, Assists: 2.5, Turnovers: 1.2, FGPct: 0.46, FG3Pct: 0.36},
			{Name: "Starting Forward", GamesPlayed: 70, Points: 18.5, Rebounds: 7.5, Assists: 3.8, Turnovers: 2.0, FGPct: 0.50, FG3Pct: 0.38},
			{Name: "Second Option", GamesPlayed: 68, Points: 24.0, Rebounds: 5.0, Assists: 6.0, Turnovers: 2.8, FGPct: 0.48, FG3Pct: 0.39},
			{Name: "Franchise Player", GamesPlayed: 74, Points: 31.0, Rebounds: 8.0, Assists: 8.5, Turnovers: 3.2, FGPct: 0.55, FG3Pct: 0.41},
		}

		out := scoring.Derive(players)

		Convey("Then every row should come back, in order", func() {
			So(len(out), ShouldEqual, len(players))
			for i, p := range out {
				So(p.Name, ShouldEqual, players[i].Name)
			}
		})

		Convey("And every attribute should lie in [0,1]", func() {
			for _, p := range out {
				So(p.Scoring, ShouldBeBetweenOrEqual, 0, 1)
				So(p.Playmaking, ShouldBeBetweenOrEqual, 0, 1)
				So(p.Discipline, ShouldBeBetweenOrEqual, 0, 1)
				So(p.LuckFactor, ShouldBeBetweenOrEqual, 0, 1)
			}
		})

		Convey("And the physicals should be the fixed placeholders", func() {
			for _, p := range out {
				So(p.HeightM, ShouldEqual, 2.0)
				So(p.WeightKG, ShouldEqual, 100.0)
			}
		})

		Convey("And the batch extremes should map to the attribute extremes", func() {
			// highest points + fg bonus
			So(out[4].Scoring, ShouldBeGreaterThan, out[0].Scoring)
			So(out[0].Scoring, ShouldAlmostEqual, 0, 1e-6)
			// fewest turnovers is the most disciplined
			So(out[0].Discipline, ShouldBeGreaterThan, out[4].Discipline)
			So(out[4].Discipline, ShouldAlmostEqual, 0, 1e-6)
		})

		Convey("And tiers should be assigned from the batch quantiles", func() {
			So(out[0].Tier, ShouldEqual, model.TierBust)
			So(out[4].Tier, ShouldEqual, model.TierStar)
		})
	})
}

func TestDeriveTierPartition(t *testing.T) {
	Convey("Given ten stat lines with strictly increasing impact", t, func() {
		// Identical efficiency and turnovers so impact ordering follows
		// points and assists alone.
		players := make([]model.PlayerStats, 10)
		for i := range players {
			players[i] = model.PlayerStats{
				Name:        string(rune('A' + i)),
				GamesPlayed: 40,
				Points:      float64(i + 1),
				Assists:     float64(i + 1),
				Turnovers:   1.0,
				FGPct:       0.45,
				FG3Pct:      0.35,
			}
		}

		out := scoring.Derive(players)

		Convey("Then the tiers should partition the batch 20/60/20", func() {
			counts := map[model.Tier]int{}
			for _, p := range out {
				counts[p.Tier]++
			}
			So(counts[model.TierBust], ShouldEqual, 2)
			So(counts[model.TierRolePlayer], ShouldEqual, 6)
			So(counts[model.TierStar], ShouldEqual, 2)
		})

		Convey("And the partition should respect the impact ordering", func() {
			So(out[0].Tier, ShouldEqual, model.TierBust)
			So(out[1].Tier, ShouldEqual, model.TierBust)
			So(out[2].Tier, ShouldEqual, model.TierRolePlayer)
			So(out[7].Tier, ShouldEqual, model.TierRolePlayer)
			So(out[8].Tier, ShouldEqual, model.TierStar)
			So(out[9].Tier, ShouldEqual, model.TierStar)
		})
	})
}

func TestDeriveDegenerateBatches(t *testing.T) {
	Convey("Given an empty batch", t, func() {
		out := scoring.Derive(nil)

		Convey("Then the output should be empty", func() {
			So(out, ShouldBeEmpty)
		})
	})

	Convey("Given a single-player batch", t, func() {
		out := scoring.Derive([]model.PlayerStats{
			{Name: "Only One", GamesPlayed: 50, Points: 20, Assists: 5, Turnovers: 2, FGPct: 0.5, FG3Pct: 0.4},
		})

		Convey("Then attributes should collapse to ~0 and the tier to bust", func() {
			So(len(out), ShouldEqual, 1)
			So(out[0].Scoring, ShouldAlmostEqual, 0, 1e-6)
			So(out[0].Playmaking, ShouldAlmostEqual, 0, 1e-6)
			// impact equals its own quantiles, so <= qLow wins
			So(out[0].Tier, ShouldEqual, model.TierBust)
		})
	})

	Convey("Given a batch of identical stat lines", t, func() {
		same := model.PlayerStats{Name: "Clone", GamesPlayed: 30, Points: 10, Assists: 3, Turnovers: 1, FGPct: 0.45, FG3Pct: 0.35}
		out := scoring.Derive([]model.PlayerStats{same, same, same})

		Convey("Then normalization should collapse to ~0 without NaN", func() {
			for _, p := range out {
				So(p.Scoring, ShouldAlmostEqual, 0, 1e-6)
				So(p.Playmaking, ShouldAlmostEqual, 0, 1e-6)
				So(p.Discipline, ShouldAlmostEqual, 0, 1e-6)
				So(p.LuckFactor, ShouldAlmostEqual, 0, 1e-6)
				So(p.Tier, ShouldEqual, model.TierBust)
			}
		})
	})
}

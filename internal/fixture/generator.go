// Package fixture generates synthetic leaguedashplayerstats payloads so the
// pipeline can run end-to-end without touching the real, rate-limited
// provider. Generation is seeded and deterministic.
package fixture

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

// Default generator configuration constants.
const (
	defaultSeason      = "2023-24"
	defaultPlayerCount = 120
	defaultSeed        = 42
	defaultLowGameRows = 8
)

// Performance archetypes drive the stat ranges.
const (
	archetypeFringe = iota
	archetypeRotation
	archetypeStarter
	archetypeStar
	archetypeCount
)

var firstNames = []string{
	"Jalen", "Marcus", "Deni", "Tyrese", "Luka", "Devin", "Aaron",
	"Keldon", "Jaren", "Malik", "Trey", "Desmond", "Cade", "Evan",
	"Franz", "Scottie", "Josh", "Anthony", "Jordan", "Austin",
}

var lastNames = []string{
	"Williams", "Johnson", "Avdija", "Maxey", "Grant", "Booker",
	"Gordon", "Jackson", "Monk", "Murphy", "Bane", "Cunningham",
	"Mobley", "Wagner", "Barnes", "Giddey", "Edwards", "Poole",
	"Hachimura", "Reaves",
}

var teams = []string{
	"ATL", "BOS", "BKN", "CHA", "CHI", "CLE", "DAL", "DEN", "DET",
	"GSW", "HOU", "IND", "LAC", "LAL", "MEM", "MIA", "MIL", "MIN",
	"NOP", "NYK", "OKC", "ORL", "PHI", "PHX", "POR", "SAC", "SAS",
	"TOR", "UTA", "WAS",
}

// headers mirror a realistic subset of the provider's column set; the
// pipeline only reads eight of them, the rest exercise the passthrough.
var headers = []string{
	"PLAYER_ID", "PLAYER_NAME", "PLAYER_SLUG", "TEAM_ABBREVIATION",
	"AGE", "GP", "W", "L", "MIN", "PTS", "REB", "AST", "TOV",
	"STL", "BLK", "FG_PCT", "FG3_PCT", "FT_PCT",
}

// Generator produces one synthetic season payload.
type Generator struct {
	season        string
	playerCount   int
	seed          int64
	lowGameRows   int
	malformedRows int
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithSeason sets the season identifier echoed in the payload.
func WithSeason(season string) Option {
	return func(g *Generator) {
		if season != "" {
			g.season = season
		}
	}
}

// WithPlayerCount sets how many player rows to generate.
func WithPlayerCount(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.playerCount = n
		}
	}
}

// WithSeed sets the deterministic generation seed.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithLowGameRows sets how many rows get a games-played count below the
// pipeline's volume floor.
func WithLowGameRows(n int) Option {
	return func(g *Generator) {
		if n >= 0 {
			g.lowGameRows = n
		}
	}
}

// WithMalformedRows sets how many rows get an unparsable percentage cell,
// to exercise the coercion drop path.
func WithMalformedRows(n int) Option {
	return func(g *Generator) {
		if n >= 0 {
			g.malformedRows = n
		}
	}
}

// New creates a Generator with default configuration, adjusted by options.
func New(opts ...Option) *Generator {
	g := &Generator{
		season:      defaultSeason,
		playerCount: defaultPlayerCount,
		seed:        defaultSeed,
		lowGameRows: defaultLowGameRows,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// payloadEnvelope mirrors the provider's response shape.
type payloadEnvelope struct {
	Resource   string             `json:"resource"`
	Parameters map[string]string  `json:"parameters"`
	ResultSets []payloadResultSet `json:"resultSets"`
}

type payloadResultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// Payload renders the synthetic season as provider-shaped JSON.
func (g *Generator) Payload() ([]byte, error) {
	rng := rand.New(rand.NewSource(g.seed)) //nolint:gosec // deterministic seed for reproducible fixtures

	rows := make([][]any, 0, g.playerCount)
	for i := 0; i < g.playerCount; i++ {
		rows = append(rows, g.playerRow(rng, i))
	}

	envelope := payloadEnvelope{
		Resource: "leaguedashplayerstats",
		Parameters: map[string]string{
			"Season":     g.season,
			"SeasonType": "Regular Season",
			"PerMode":    "PerGame",
		},
		ResultSets: []payloadResultSet{{
			Name:    "LeagueDashPlayerStats",
			Headers: headers,
			RowSet:  rows,
		}},
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("marshal fixture payload: %w", err)
	}
	return data, nil
}

// playerRow builds one rowSet entry. The first lowGameRows rows fall below
// the volume floor and the first malformedRows rows after those carry an
// unparsable three-point percentage.
func (g *Generator) playerRow(rng *rand.Rand, i int) []any {
	name := firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]
	// name-derived uuid keeps slugs stable across runs with the same seed
	slugID := uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("%s-%d", name, i)))
	slug := strings.ToLower(strings.ReplaceAll(name, " ", "-")) + "-" + slugID.String()[:8]
	team := teams[rng.Intn(len(teams))]

	arch := i % archetypeCount
	var pts, ast, tov, fgPct float64
	switch arch {
	case archetypeStar:
		pts = 22 + rng.Float64()*12
		ast = 4 + rng.Float64()*6
		tov = 2 + rng.Float64()*2
		fgPct = 0.46 + rng.Float64()*0.12
	case archetypeStarter:
		pts = 12 + rng.Float64()*10
		ast = 2 + rng.Float64()*4
		tov = 1.2 + rng.Float64()*1.5
		fgPct = 0.43 + rng.Float64()*0.10
	case archetypeRotation:
		pts = 6 + rng.Float64()*7
		ast = 1 + rng.Float64()*2.5
		tov = 0.8 + rng.Float64()*1.2
		fgPct = 0.40 + rng.Float64()*0.10
	default: // fringe
		pts = 1 + rng.Float64()*5
		ast = 0.2 + rng.Float64()*1.5
		tov = 0.3 + rng.Float64()*0.8
		fgPct = 0.35 + rng.Float64()*0.12
	}

	gp := 15 + rng.Intn(68)
	if i < g.lowGameRows {
		gp = 1 + rng.Intn(14)
	}

	var fg3Pct any = round3(0.28 + rng.Float64()*0.14)
	if i >= g.lowGameRows && i < g.lowGameRows+g.malformedRows {
		fg3Pct = "n/a"
	}

	wins := rng.Intn(gp + 1)
	return []any{
		100000 + i,
		name,
		slug,
		team,
		19 + rng.Intn(20),
		gp,
		wins,
		gp - wins,
		round1(10 + rng.Float64()*26),
		round1(pts),
		round1(1 + rng.Float64()*10),
		round1(ast),
		round1(tov),
		round1(rng.Float64() * 2),
		round1(rng.Float64() * 2),
		round3(fgPct),
		fg3Pct,
		round3(0.65 + rng.Float64()*0.3),
	}
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}

func round3(v float64) float64 {
	return float64(int(v*1000+0.5)) / 1000
}

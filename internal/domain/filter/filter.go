// Package filter projects the raw season table onto the eight columns the
// pipeline uses and admits rows through a parse-or-reject rule: a row either
// coerces cleanly into a PlayerStats or is rejected whole with a reason.
package filter

import (
	"fmt"
	"strconv"

	"github.com/hooplab/statprep/internal/domain/model"
)

// minGamesPlayed is the volume floor; rows below it are garbage/small
// samples and never reach the attribute derivation.
const minGamesPlayed = 15

// Source column names as the provider spells them.
const (
	ColPlayerName  = "PLAYER_NAME"
	ColGamesPlayed = "GP"
	ColPoints      = "PTS"
	ColRebounds    = "REB"
	ColAssists     = "AST"
	ColTurnovers   = "TOV"
	ColFGPct       = "FG_PCT"
	ColFG3Pct      = "FG3_PCT"
)

// Reason classifies why a row was rejected.
type Reason string

// Rejection reasons.
const (
	// ReasonLowGames marks rows below the games-played floor.
	ReasonLowGames Reason = "low_games"
	// ReasonBadNumber marks rows where a numeric field failed to parse.
	ReasonBadNumber Reason = "bad_number"
)

// Rejection records one dropped row. Rejections are never emitted to the
// processed output; they exist so the drop is inspectable.
type Rejection struct {
	Row    int    // index into the raw table's rows
	Player string // player name, if the cell was readable
	Reason Reason
	Field  string // offending column for bad_number rejections
}

// requiredColumns are the eight columns a raw table must carry.
var requiredColumns = []string{
	ColPlayerName,
	ColGamesPlayed,
	ColPoints,
	ColRebounds,
	ColAssists,
	ColTurnovers,
	ColFGPct,
	ColFG3Pct,
}

// Parse projects and coerces the raw table. Surviving rows keep input
// order. Coercion is all-or-nothing per row: any unparsable numeric field
// rejects the whole row, no substitution. A missing required column is a
// table-level error.
func Parse(table model.RawTable) ([]model.PlayerStats, []Rejection, error) {
	idx := make(map[string]int, len(requiredColumns))
	for _, col := range requiredColumns {
		i := table.ColumnIndex(col)
		if i < 0 {
			return nil, nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
		idx[col] = i
	}

	players := make([]model.PlayerStats, 0, len(table.Rows))
	var rejections []Rejection

	for rowNum, row := range table.Rows {
		name := cell(row, idx[ColPlayerName])

		gp, err := strconv.ParseFloat(cell(row, idx[ColGamesPlayed]), 64)
		if err != nil {
			rejections = append(rejections, Rejection{Row: rowNum, Player: name, Reason: ReasonBadNumber, Field: ColGamesPlayed})
			continue
		}
		if gp < minGamesPlayed {
			rejections = append(rejections, Rejection{Row: rowNum, Player: name, Reason: ReasonLowGames, Field: ColGamesPlayed})
			continue
		}

		p := model.PlayerStats{Name: name, GamesPlayed: int(gp)}
		rejected := false
		for _, field := range []struct {
			col string
			dst *float64
		}{
			{ColPoints, &p.Points},
			{ColRebounds, &p.Rebounds},
			{ColAssists, &p.Assists},
			{ColTurnovers, &p.Turnovers},
			{ColFGPct, &p.FGPct},
			{ColFG3Pct, &p.FG3Pct},
		} {
			v, err := strconv.ParseFloat(cell(row, idx[field.col]), 64)
			if err != nil {
				rejections = append(rejections, Rejection{Row: rowNum, Player: name, Reason: ReasonBadNumber, Field: field.col})
				rejected = true
				break
			}
			*field.dst = v
		}
		if rejected {
			continue
		}

		players = append(players, p)
	}

	return players, rejections, nil
}

// cell reads a column from a row, tolerating short rows.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

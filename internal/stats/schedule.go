package stats

import (
	"sleeper-recap/internal/season"
)

// Luck classification bands. The ±0.5 boundaries are exclusive: a luck of
// exactly 0.5 is still neutral.
const (
	LuckFavorable   = "favorable"
	LuckNeutral     = "neutral"
	LuckUnfavorable = "unfavorable"
)

// LeagueAverageLabel names the synthetic league-average row. It carries only
// an SOS value and must stay out of every numeric selection.
const LeagueAverageLabel = "League Avg"

// ScheduleRow is one team's derived schedule-strength line.
type ScheduleRow struct {
	Team          string
	Wins          int
	Losses        int
	Ties          int
	GamesPlayed   int
	PointsFor     float64
	PointsAgainst float64
	// SOS is the average score posted by opponents faced; lower means the
	// schedule was easier.
	SOS          float64
	AllPlayPct   float64
	ExpectedWins float64
	Luck         float64
	LuckClass    string
}

// BuildScheduleRows derives one row per team, in the season's stable team
// order. A team with zero games played gets SOS and expected wins of 0
// rather than a division by zero.
func BuildScheduleRows(s *season.Season, allPlay map[string]float64) []ScheduleRow {
	rows := make([]ScheduleRow, 0, len(s.Teams))
	for _, team := range s.Teams {
		t := s.Totals[team]
		row := ScheduleRow{
			Team:          team,
			Wins:          t.Wins,
			Losses:        t.Losses,
			Ties:          t.Ties,
			GamesPlayed:   t.GamesPlayed,
			PointsFor:     t.PointsFor,
			PointsAgainst: t.PointsAgainst,
			AllPlayPct:    allPlay[team],
		}
		if t.GamesPlayed > 0 {
			row.SOS = t.PointsAgainst / float64(t.GamesPlayed)
			row.ExpectedWins = row.AllPlayPct * float64(t.GamesPlayed)
		}
		row.Luck = float64(t.Wins) - row.ExpectedWins
		row.LuckClass = LuckClass(row.Luck)
		rows = append(rows, row)
	}
	return rows
}

// LuckClass maps a luck value onto its display band.
func LuckClass(luck float64) string {
	switch {
	case luck > 0.5:
		return LuckFavorable
	case luck < -0.5:
		return LuckUnfavorable
	default:
		return LuckNeutral
	}
}

// LeagueAverageSOS is the arithmetic mean of the rows' SOS values, the only
// number the synthetic league-average row carries.
func LeagueAverageSOS(rows []ScheduleRow) float64 {
	if len(rows) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range rows {
		sum += r.SOS
	}
	return sum / float64(len(rows))
}

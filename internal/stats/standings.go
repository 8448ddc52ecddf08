package stats

import (
	"sort"

	"sleeper-recap/internal/config"
	"sleeper-recap/internal/season"
)

// StandingsRow is one team's line in the standings table.
type StandingsRow struct {
	Team          string
	Wins          int
	Losses        int
	Ties          int
	PointsFor     float64
	PointsAgainst float64
	Differential  float64
}

// BuildStandings derives the standings rows in the season's stable team
// order; callers sort with SortStandings.
func BuildStandings(s *season.Season) []StandingsRow {
	rows := make([]StandingsRow, 0, len(s.Teams))
	for _, team := range s.Teams {
		t := s.Totals[team]
		rows = append(rows, StandingsRow{
			Team:          team,
			Wins:          t.Wins,
			Losses:        t.Losses,
			Ties:          t.Ties,
			PointsFor:     t.PointsFor,
			PointsAgainst: t.PointsAgainst,
			Differential:  t.PointsFor - t.PointsAgainst,
		})
	}
	return rows
}

// SortStandings orders rows in place. The record policy sorts by wins, then
// point differential, then points-for, then name; the points policy sorts by
// points-for alone (stable, so equal teams keep input order).
func SortStandings(rows []StandingsRow, policy string) {
	if policy == config.SortByPoints {
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].PointsFor > rows[j].PointsFor
		})
		return
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Wins != rows[j].Wins {
			return rows[i].Wins > rows[j].Wins
		}
		if rows[i].Differential != rows[j].Differential {
			return rows[i].Differential > rows[j].Differential
		}
		if rows[i].PointsFor != rows[j].PointsFor {
			return rows[i].PointsFor > rows[j].PointsFor
		}
		return rows[i].Team < rows[j].Team
	})
}

// SortScheduleRows applies the same ordering policy to the schedule table so
// the two tables line up for the reader.
func SortScheduleRows(rows []ScheduleRow, policy string) {
	if policy == config.SortByPoints {
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].PointsFor > rows[j].PointsFor
		})
		return
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Wins != rows[j].Wins {
			return rows[i].Wins > rows[j].Wins
		}
		di := rows[i].PointsFor - rows[i].PointsAgainst
		dj := rows[j].PointsFor - rows[j].PointsAgainst
		if di != dj {
			return di > dj
		}
		if rows[i].PointsFor != rows[j].PointsFor {
			return rows[i].PointsFor > rows[j].PointsFor
		}
		return rows[i].Team < rows[j].Team
	})
}

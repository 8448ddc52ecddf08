package season

import (
	"math"

	"github.com/sirupsen/logrus"

	"sleeper-recap/internal/sleeper"
)

// WeeklyGame is one completed head-to-head game. Winner is empty when the
// game finished level.
type WeeklyGame struct {
	Week   int
	TeamA  string
	ScoreA float64
	TeamB  string
	ScoreB float64
	Margin float64
	Winner string
}

// TeamTotals holds one team's cumulative season record.
type TeamTotals struct {
	Team          string
	Wins          int
	Losses        int
	Ties          int
	GamesPlayed   int
	PointsFor     float64
	PointsAgainst float64
}

// Season is the aggregated view of every scored week: cumulative totals,
// the completed games of each week, and each week's raw score snapshot.
// Teams lists every team in first-appearance order; selections later use
// that order to break ties deterministically.
type Season struct {
	Weeks  []int
	Teams  []string
	Totals map[string]*TeamTotals
	Games  map[int][]WeeklyGame
	// Scores holds every team's raw score for a week, including teams whose
	// matchup group was invalid. The all-play computation wants the whole
	// field, not just paired teams.
	Scores map[int]map[string]float64
}

// Aggregate walks the weeks in order and reduces raw matchup rows into a
// Season. Matchup groups that do not contain exactly two rows (byes,
// malformed data) are skipped without contributing wins, losses, or points;
// their scores still enter the weekly snapshot.
func Aggregate(weeks []int, matchupsByWeek map[int][]sleeper.Matchup, names map[int]string) *Season {
	s := &Season{
		Weeks:  weeks,
		Totals: make(map[string]*TeamTotals),
		Games:  make(map[int][]WeeklyGame, len(weeks)),
		Scores: make(map[int]map[string]float64, len(weeks)),
	}

	for _, week := range weeks {
		rows := matchupsByWeek[week]
		s.Games[week] = []WeeklyGame{}
		s.Scores[week] = make(map[string]float64, len(rows))

		byMatchup := make(map[int][]sleeper.Matchup)
		order := make([]int, 0, len(rows))
		for _, m := range rows {
			team := teamName(names, m.RosterID)
			s.Scores[week][team] = m.Points
			if _, seen := byMatchup[m.MatchupID]; !seen {
				order = append(order, m.MatchupID)
			}
			byMatchup[m.MatchupID] = append(byMatchup[m.MatchupID], m)
		}

		for _, mid := range order {
			pair := byMatchup[mid]
			if len(pair) != 2 {
				logrus.WithFields(logrus.Fields{
					"week":       week,
					"matchup_id": mid,
					"size":       len(pair),
				}).Debug("skipping matchup group without exactly two rows")
				continue
			}

			a, b := pair[0], pair[1]
			ta := teamName(names, a.RosterID)
			tb := teamName(names, b.RosterID)

			at := s.totals(ta)
			bt := s.totals(tb)

			at.PointsFor += a.Points
			at.PointsAgainst += b.Points
			bt.PointsFor += b.Points
			bt.PointsAgainst += a.Points
			at.GamesPlayed++
			bt.GamesPlayed++

			game := WeeklyGame{
				Week:   week,
				TeamA:  ta,
				ScoreA: a.Points,
				TeamB:  tb,
				ScoreB: b.Points,
				Margin: math.Abs(a.Points - b.Points),
			}

			switch {
			case a.Points > b.Points:
				at.Wins++
				bt.Losses++
				game.Winner = ta
			case b.Points > a.Points:
				bt.Wins++
				at.Losses++
				game.Winner = tb
			default:
				at.Ties++
				bt.Ties++
			}

			s.Games[week] = append(s.Games[week], game)
		}
	}

	return s
}

// totals returns the running totals for team, registering it on first use.
func (s *Season) totals(team string) *TeamTotals {
	if t, ok := s.Totals[team]; ok {
		return t
	}
	t := &TeamTotals{Team: team}
	s.Totals[team] = t
	s.Teams = append(s.Teams, team)
	return t
}

func teamName(names map[int]string, rosterID int) string {
	if name, ok := names[rosterID]; ok && name != "" {
		return name
	}
	return sleeper.FallbackName(rosterID)
}

package stats

import (
	"sort"

	"sleeper-recap/internal/season"
)

// Superlatives groups the teams called out in the recap's banter sections.
// All slices preserve a deterministic order; ranking ties fall back to the
// rows' input order. Luck and SOS carry the values used for display.
type Superlatives struct {
	Undefeated []string
	Winless    []string
	Luckiest   []string
	Unluckiest []string
	Easiest    []string
	Hardest    []string
	Luck       map[string]float64
	SOS        map[string]float64
}

// GameOfWeek tags a game with the week it was selected for.
type GameOfWeek struct {
	Week int
	Game season.WeeklyGame
}

// Select derives the superlative groupings from schedule rows. Rows must not
// include the league-average row; Select is pure and never mutates its input.
func Select(rows []ScheduleRow) Superlatives {
	sup := Superlatives{
		Luck: make(map[string]float64, len(rows)),
		SOS:  make(map[string]float64, len(rows)),
	}

	for _, r := range rows {
		sup.Luck[r.Team] = r.Luck
		sup.SOS[r.Team] = r.SOS
		if r.Wins > 0 && r.Losses == 0 {
			sup.Undefeated = append(sup.Undefeated, r.Team)
		}
		if r.Wins == 0 && r.Losses > 0 {
			sup.Winless = append(sup.Winless, r.Team)
		}
	}

	byLuckDesc := rankTeams(rows, func(i, j ScheduleRow) bool { return i.Luck > j.Luck })
	byLuckAsc := rankTeams(rows, func(i, j ScheduleRow) bool { return i.Luck < j.Luck })
	bySOSAsc := rankTeams(rows, func(i, j ScheduleRow) bool { return i.SOS < j.SOS })
	bySOSDesc := rankTeams(rows, func(i, j ScheduleRow) bool { return i.SOS > j.SOS })

	sup.Luckiest = head(byLuckDesc, 3)
	sup.Unluckiest = head(byLuckAsc, 3)
	sup.Easiest = head(bySOSAsc, 2)
	sup.Hardest = head(bySOSDesc, 2)
	return sup
}

// ClosestAndBlowouts picks each week's smallest- and largest-margin game.
// Weeks with no valid games contribute no entry. Both lists come back in
// week order; within a week, the first game encountered wins a margin tie.
func ClosestAndBlowouts(games map[int][]season.WeeklyGame) (closest, blowouts []GameOfWeek) {
	weeks := make([]int, 0, len(games))
	for w := range games {
		weeks = append(weeks, w)
	}
	sort.Ints(weeks)

	for _, w := range weeks {
		wg := games[w]
		if len(wg) == 0 {
			continue
		}
		cg, bg := wg[0], wg[0]
		for _, g := range wg[1:] {
			if g.Margin < cg.Margin {
				cg = g
			}
			if g.Margin > bg.Margin {
				bg = g
			}
		}
		closest = append(closest, GameOfWeek{Week: w, Game: cg})
		blowouts = append(blowouts, GameOfWeek{Week: w, Game: bg})
	}
	return closest, blowouts
}

// rankTeams returns team names sorted by less, stable over input order.
func rankTeams(rows []ScheduleRow, less func(i, j ScheduleRow) bool) []string {
	sorted := make([]ScheduleRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })

	teams := make([]string, len(sorted))
	for i, r := range sorted {
		teams[i] = r.Team
	}
	return teams
}

func head(teams []string, n int) []string {
	if len(teams) < n {
		n = len(teams)
	}
	return teams[:n]
}

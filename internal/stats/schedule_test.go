package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sleeper-recap/internal/season"
	"sleeper-recap/internal/sleeper"
)

func twoTeamSeason(t *testing.T) *season.Season {
	t.Helper()
	return season.Aggregate([]int{1}, map[int][]sleeper.Matchup{
		1: {
			{MatchupID: 1, RosterID: 1, Points: 100.5},
			{MatchupID: 1, RosterID: 2, Points: 90.0},
		},
	}, map[int]string{1: "Alpha", 2: "Bravo"})
}

func TestBuildScheduleRows(t *testing.T) {
	t.Run("TwoTeamsOneWeek", func(t *testing.T) {
		s := twoTeamSeason(t)
		rows := BuildScheduleRows(s, AllPlayPct(s.Scores))
		require.Len(t, rows, 2)

		alpha, bravo := rows[0], rows[1]
		assert.Equal(t, "Alpha", alpha.Team)
		assert.InDelta(t, 90.0, alpha.SOS, 1e-9)
		assert.Equal(t, 1.0, alpha.AllPlayPct)
		assert.Equal(t, 1.0, alpha.ExpectedWins)
		assert.Equal(t, 0.0, alpha.Luck)
		assert.Equal(t, LuckNeutral, alpha.LuckClass)

		assert.Equal(t, "Bravo", bravo.Team)
		assert.InDelta(t, 100.5, bravo.SOS, 1e-9)
		assert.Equal(t, 0.0, bravo.AllPlayPct)
		assert.Equal(t, 0.0, bravo.ExpectedWins)
		assert.Equal(t, 0.0, bravo.Luck)
	})

	t.Run("ArithmeticIdentities", func(t *testing.T) {
		s := season.Aggregate([]int{1, 2}, map[int][]sleeper.Matchup{
			1: {
				{MatchupID: 1, RosterID: 1, Points: 100},
				{MatchupID: 1, RosterID: 2, Points: 90},
				{MatchupID: 2, RosterID: 3, Points: 110},
				{MatchupID: 2, RosterID: 4, Points: 95},
			},
			2: {
				{MatchupID: 1, RosterID: 1, Points: 85},
				{MatchupID: 1, RosterID: 3, Points: 102},
				{MatchupID: 2, RosterID: 2, Points: 120},
				{MatchupID: 2, RosterID: 4, Points: 70},
			},
		}, map[int]string{1: "Alpha", 2: "Bravo", 3: "Charlie", 4: "Delta"})

		rows := BuildScheduleRows(s, AllPlayPct(s.Scores))
		require.Len(t, rows, 4)
		for _, r := range rows {
			assert.InDelta(t, r.AllPlayPct*float64(r.GamesPlayed), r.ExpectedWins, 1e-9, r.Team)
			assert.InDelta(t, float64(r.Wins)-r.ExpectedWins, r.Luck, 1e-9, r.Team)
		}
	})

	t.Run("ZeroGamesGuarded", func(t *testing.T) {
		s := &season.Season{
			Teams:  []string{"Idle"},
			Totals: map[string]*season.TeamTotals{"Idle": {Team: "Idle"}},
		}
		rows := BuildScheduleRows(s, nil)
		require.Len(t, rows, 1)
		assert.Zero(t, rows[0].SOS)
		assert.Zero(t, rows[0].ExpectedWins)
		assert.Zero(t, rows[0].Luck)
	})
}

func TestLuckClass(t *testing.T) {
	assert.Equal(t, LuckFavorable, LuckClass(0.6))
	assert.Equal(t, LuckUnfavorable, LuckClass(-0.6))
	assert.Equal(t, LuckNeutral, LuckClass(0.1))
	// Band boundaries are exclusive.
	assert.Equal(t, LuckNeutral, LuckClass(0.5))
	assert.Equal(t, LuckNeutral, LuckClass(-0.5))
}

func TestLeagueAverageSOS(t *testing.T) {
	rows := []ScheduleRow{{SOS: 90}, {SOS: 100}, {SOS: 110}}
	assert.InDelta(t, 100.0, LeagueAverageSOS(rows), 1e-9)
	assert.Zero(t, LeagueAverageSOS(nil))
}

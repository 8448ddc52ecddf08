package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sleeper-recap/internal/config"
)

func teamOrder(rows []StandingsRow) []string {
	teams := make([]string, len(rows))
	for i, r := range rows {
		teams[i] = r.Team
	}
	return teams
}

func TestSortStandings(t *testing.T) {
	rows := []StandingsRow{
		{Team: "Bravo", Wins: 2, PointsFor: 300, PointsAgainst: 280, Differential: 20},
		{Team: "Alpha", Wins: 2, PointsFor: 310, PointsAgainst: 280, Differential: 30},
		{Team: "Delta", Wins: 3, PointsFor: 250, PointsAgainst: 260, Differential: -10},
		{Team: "Charlie", Wins: 1, PointsFor: 340, PointsAgainst: 290, Differential: 50},
	}

	t.Run("RecordPolicy", func(t *testing.T) {
		sorted := make([]StandingsRow, len(rows))
		copy(sorted, rows)
		SortStandings(sorted, config.SortByRecord)
		assert.Equal(t, []string{"Delta", "Alpha", "Bravo", "Charlie"}, teamOrder(sorted))
	})

	t.Run("PointsPolicy", func(t *testing.T) {
		sorted := make([]StandingsRow, len(rows))
		copy(sorted, rows)
		SortStandings(sorted, config.SortByPoints)
		assert.Equal(t, []string{"Charlie", "Alpha", "Bravo", "Delta"}, teamOrder(sorted))
	})

	t.Run("NameBreaksFullTie", func(t *testing.T) {
		tied := []StandingsRow{
			{Team: "Zulu", Wins: 1, PointsFor: 100, Differential: 10},
			{Team: "Yankee", Wins: 1, PointsFor: 100, Differential: 10},
		}
		SortStandings(tied, config.SortByRecord)
		require.Equal(t, []string{"Yankee", "Zulu"}, teamOrder(tied))
	})
}

func TestBuildStandingsDifferential(t *testing.T) {
	s := twoTeamSeason(t)
	rows := BuildStandings(s)
	require.Len(t, rows, 2)
	assert.InDelta(t, 10.5, rows[0].Differential, 1e-9)
	assert.InDelta(t, -10.5, rows[1].Differential, 1e-9)
}

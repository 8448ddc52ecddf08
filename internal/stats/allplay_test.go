package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllPlayPct(t *testing.T) {
	t.Run("TwoTeamSweep", func(t *testing.T) {
		pct := AllPlayPct(map[int]map[string]float64{
			1: {"Alpha": 100.5, "Bravo": 90.0},
		})
		assert.Equal(t, 1.0, pct["Alpha"])
		assert.Equal(t, 0.0, pct["Bravo"])
	})

	t.Run("FractionOfFieldBeaten", func(t *testing.T) {
		pct := AllPlayPct(map[int]map[string]float64{
			1: {"Alpha": 100, "Bravo": 90, "Charlie": 80, "Delta": 70},
		})
		assert.InDelta(t, 1.0, pct["Alpha"], 1e-9)
		assert.InDelta(t, 2.0/3.0, pct["Bravo"], 1e-9)
		assert.InDelta(t, 1.0/3.0, pct["Charlie"], 1e-9)
		assert.InDelta(t, 0.0, pct["Delta"], 1e-9)
	})

	t.Run("TiesCountForNeither", func(t *testing.T) {
		pct := AllPlayPct(map[int]map[string]float64{
			1: {"Alpha": 90, "Bravo": 90, "Charlie": 80},
		})
		// Alpha and Bravo each beat only Charlie.
		assert.InDelta(t, 0.5, pct["Alpha"], 1e-9)
		assert.InDelta(t, 0.5, pct["Bravo"], 1e-9)
		assert.InDelta(t, 0.0, pct["Charlie"], 1e-9)
	})

	t.Run("SingleTeamWeekContributesNothing", func(t *testing.T) {
		pct := AllPlayPct(map[int]map[string]float64{
			1: {"Alpha": 100, "Bravo": 90},
			2: {"Alpha": 50},
		})
		// Week 2 is ignored entirely: Alpha stays a perfect 1.0 over one week.
		assert.Equal(t, 1.0, pct["Alpha"])
	})

	t.Run("AveragedAcrossWeeks", func(t *testing.T) {
		pct := AllPlayPct(map[int]map[string]float64{
			1: {"Alpha": 100, "Bravo": 90},
			2: {"Alpha": 80, "Bravo": 90},
		})
		assert.InDelta(t, 0.5, pct["Alpha"], 1e-9)
		assert.InDelta(t, 0.5, pct["Bravo"], 1e-9)
	})

	t.Run("AlwaysWithinUnitInterval", func(t *testing.T) {
		pct := AllPlayPct(map[int]map[string]float64{
			1: {"Alpha": 100, "Bravo": 90, "Charlie": 95},
			2: {"Alpha": 70, "Bravo": 110, "Charlie": 95},
			3: {"Alpha": 88, "Bravo": 88, "Charlie": 88},
		})
		require.NotEmpty(t, pct)
		for team, p := range pct {
			assert.GreaterOrEqual(t, p, 0.0, team)
			assert.LessOrEqual(t, p, 1.0, team)
		}
	})
}

package journey

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildView_LevelPlacement(t *testing.T) {
	tests := []struct {
		name      string
		currentSG float64
		levelID   string
		nextID    string
	}{
		{"deep beginner", -6.0, "beginner", "club_player"},
		{"exactly scratch", -1.0, "scratch", "mini_tour"},
		{"mini tour", 0.4, "mini_tour", "pga_average"},
		{"above the top level", 3.0, "pga_elite", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data := BuildView(ViewInput{CurrentSG: tc.currentSG, StartSG: -1.5})
			assert.Equal(t, tc.levelID, data.Position.CurrentLevel.ID)
			if tc.nextID == "" {
				assert.Nil(t, data.Position.NextLevel)
				assert.Equal(t, 100.0, data.Position.ProgressToNext)
			} else {
				require.NotNil(t, data.Position.NextLevel)
				assert.Equal(t, tc.nextID, data.Position.NextLevel.ID)
			}
		})
	}
}

func TestBuildView_ProgressAndAltitude(t *testing.T) {
	// Halfway between scratch (-1.0, 3000m) and mini tour (0.0, 4000m).
	data := BuildView(ViewInput{CurrentSG: -0.5, StartSG: -1.5})

	assert.Equal(t, 50.0, data.Position.ProgressToNext)
	assert.Equal(t, 0.5, data.Position.SGToNextLevel)
	assert.Equal(t, 3500, data.Position.AltitudeMeters)
	assert.Equal(t, 1.0, data.Position.TotalClimbed)
}

func TestBuildView_EstimatedScore(t *testing.T) {
	// Scratch plays par; every stroke gained above scratch comes off it.
	assert.Equal(t, 72.0, BuildView(ViewInput{CurrentSG: -1.0}).Position.EstimatedScore)
	assert.Equal(t, 71.0, BuildView(ViewInput{CurrentSG: 0.0}).Position.EstimatedScore)
	assert.Equal(t, 74.5, BuildView(ViewInput{CurrentSG: -3.5}).Position.EstimatedScore)
}

func TestBuildView_TrendAgainstOlderSamples(t *testing.T) {
	now := time.Now()
	history := []SGDataPoint{
		{Date: now, SG: 0.5},
		{Date: now.AddDate(0, 0, -40), SG: 0.1},
		{Date: now.AddDate(0, 0, -50), SG: 0.3},
	}

	data := BuildView(ViewInput{CurrentSG: 0.5, History: history})
	assert.InDelta(t, 0.3, data.Position.Trend30Days, 1e-9)
	// Nothing is older than 90 days, so that trend stays flat.
	assert.Equal(t, 0.0, data.Position.Trend90Days)
}

func TestLadder_IsACopy(t *testing.T) {
	ladder := Ladder()
	require.Len(t, ladder, 7)
	ladder[0].MinSG = 99

	assert.Equal(t, -5.0, Ladder()[0].MinSG)
}

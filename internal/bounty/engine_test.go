package bounty

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akgolfgroup/player-insights/internal/models"
)

func ptr(v float64) *float64 { return &v }

func testEngine(now time.Time) *Engine {
	e := NewEngine()
	e.now = func() time.Time { return now }
	return e
}

func breakingPoint(area, category string, baseline, target, current float64, status models.BreakingPointStatus) models.BreakingPoint {
	return models.BreakingPoint{
		ID:                  uuid.New(),
		Category:            category,
		SpecificArea:        area,
		BaselineMeasurement: ptr(baseline),
		TargetMeasurement:   ptr(target),
		CurrentMeasurement:  ptr(current),
		Status:              status,
		CreatedAt:           time.Now().AddDate(0, 0, -30),
	}
}

func TestMapToTemplate(t *testing.T) {
	tests := []struct {
		name     string
		area     string
		category string
		want     string
	}{
		{"distance phrase wins", "PEI 75m under press", "putting", "approach_75m"},
		{"spaced distance phrase", "Approach 100 m", "", "approach_100m"},
		{"putt plus digit", "Putting 6m make rate", "", "putting_6m"},
		{"three putt", "For mange 3-putt", "", "putting_3m"},
		{"norwegian dispersion", "Stor spredning med driver", "", "driver_dispersion"},
		{"norwegian routine", "Ustabil rutine før slag", "", "preshot_routine"},
		{"bunker synonym", "Vanskelige sand-slag", "", "bunker"},
		{"category fallback approach", "", "Approach-spill", "approach_75m"},
		{"category fallback putting", "", "putting", "putting_6m"},
		{"category fallback short game", "", "kortspill", "chipping"},
		{"no match", "banestrategi", "mental", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MapToTemplate(tc.area, tc.category))
		})
	}
}

func TestCalculateProgress(t *testing.T) {
	assert.Equal(t, 50.0, CalculateProgress(10, 0, 5, true))
	assert.Equal(t, 50.0, CalculateProgress(0, 10, 5, false))
	assert.Equal(t, 100.0, CalculateProgress(10, 0, -2, true), "clamped above")
	assert.Equal(t, 0.0, CalculateProgress(10, 0, 12, true), "clamped below")

	// Equal baseline and target must never divide by zero.
	assert.Equal(t, 100.0, CalculateProgress(5, 5, 5, true))
	assert.Equal(t, 100.0, CalculateProgress(5, 5, 4, true))
	assert.Equal(t, 0.0, CalculateProgress(5, 5, 6, true))
	assert.Equal(t, 0.0, CalculateProgress(5, 5, 4, false))
}

func TestIsComplete(t *testing.T) {
	assert.True(t, IsComplete(0, 0, true))
	assert.True(t, IsComplete(10, 10, false))
	assert.True(t, IsComplete(3, 5, true))
	assert.False(t, IsComplete(5, 10, false))
	assert.False(t, IsComplete(6, 5, true))
}

func TestCalculateDifficulty(t *testing.T) {
	// 10, 20, 40 and 60 percent improvement demanded.
	assert.Equal(t, DifficultyEasy, CalculateDifficulty(20, 18, true))
	assert.Equal(t, DifficultyMedium, CalculateDifficulty(20, 16, true))
	assert.Equal(t, DifficultyHard, CalculateDifficulty(20, 12, true))
	assert.Equal(t, DifficultyLegendary, CalculateDifficulty(20, 8, true))
	// Zero baseline with any movement demanded reads as the hardest grade.
	assert.Equal(t, DifficultyLegendary, CalculateDifficulty(0, 10, false))
	assert.Equal(t, DifficultyHard, CalculateDifficulty(50, 70, false))
}

func TestInstantiate_StatusDerivation(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	engine := testEngine(now)

	t.Run("open stays available", func(t *testing.T) {
		bp := breakingPoint("25m", "approach", 20, 10, 15, models.BreakingPointOpen)
		b := engine.Instantiate(&bp, "approach_25m")
		require.NotNil(t, b)
		assert.Equal(t, StatusAvailable, b.Status)
		assert.Nil(t, b.ActivatedAt)
		assert.Equal(t, 50.0, b.Progress)
	})

	t.Run("resolved forces completed", func(t *testing.T) {
		resolved := now.AddDate(0, 0, -3)
		bp := breakingPoint("25m", "approach", 20, 10, 8, models.BreakingPointResolved)
		bp.ResolvedDate = &resolved
		b := engine.Instantiate(&bp, "approach_25m")
		require.NotNil(t, b)
		assert.Equal(t, StatusCompleted, b.Status)
		require.NotNil(t, b.CompletedAt)
		assert.Equal(t, resolved, *b.CompletedAt)
	})

	t.Run("resolved without date falls back to now", func(t *testing.T) {
		bp := breakingPoint("25m", "approach", 20, 10, 8, models.BreakingPointResolved)
		b := engine.Instantiate(&bp, "approach_25m")
		require.NotNil(t, b)
		require.NotNil(t, b.CompletedAt)
		assert.Equal(t, now, *b.CompletedAt)
	})

	t.Run("in progress forces active", func(t *testing.T) {
		bp := breakingPoint("25m", "approach", 20, 10, 15, models.BreakingPointInProgress)
		b := engine.Instantiate(&bp, "approach_25m")
		require.NotNil(t, b)
		assert.Equal(t, StatusActive, b.Status)
		require.NotNil(t, b.ActivatedAt)
		assert.Equal(t, bp.CreatedAt, *b.ActivatedAt)
	})

	t.Run("unknown template yields nil", func(t *testing.T) {
		bp := breakingPoint("25m", "approach", 20, 10, 15, models.BreakingPointOpen)
		assert.Nil(t, engine.Instantiate(&bp, "nope"))
	})
}

func TestInstantiate_Defaults(t *testing.T) {
	engine := testEngine(time.Now())
	bp := models.BreakingPoint{
		ID:           uuid.New(),
		SpecificArea: "25m",
		Category:     "approach",
		Status:       models.BreakingPointOpen,
		CreatedAt:    time.Now(),
	}

	b := engine.Instantiate(&bp, "approach_25m")
	require.NotNil(t, b)
	assert.Equal(t, 0.0, b.BaselineValue)
	assert.Equal(t, 0.0, b.TargetValue)
	assert.Equal(t, 0.0, b.CurrentValue)
	// Reaching the zero target means full progress even with no span.
	assert.Equal(t, 100.0, b.Progress)
}

func TestBuildBoard_PartitionsAndHistory(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	engine := testEngine(now)

	resolvedAt := now.AddDate(0, 0, -5)
	completed := breakingPoint("50m", "approach", 20, 10, 8, models.BreakingPointResolved)
	completed.ResolvedDate = &resolvedAt
	completed.CreatedAt = now.AddDate(0, 0, -15)

	active := breakingPoint("chip-presisjon", "short", 30, 20, 25, models.BreakingPointInProgress)
	available := breakingPoint("putting 6m", "putting", 40, 60, 45, models.BreakingPointOpen)
	unmapped := breakingPoint("banestrategi", "mental", 1, 0, 1, models.BreakingPointOpen)

	board := engine.BuildBoard([]models.BreakingPoint{completed, active, available, unmapped})

	require.Len(t, board.ActiveBounties, 1)
	require.Len(t, board.AvailableBounties, 1)
	require.Len(t, board.CompletedBounties, 1)
	assert.Equal(t, 1, board.TotalCompleted)

	require.Len(t, board.CompletionHistory, 1)
	assert.Equal(t, 10, board.CompletionHistory[0].DaysToComplete)
	assert.GreaterOrEqual(t, board.CompletionHistory[0].DaysToComplete, 0)
	assert.Equal(t, 10, board.AverageCompletionDays)

	// One completed of two attempted.
	assert.Equal(t, 50, board.CompletionRate)
	assert.Equal(t, 1, board.CurrentStreak)
	assert.Equal(t, "rookie", board.HunterRank.ID)
	assert.Equal(t, 4, board.BountiesToNextRank)
	assert.Equal(t, board.CompletedBounties[0].XPReward, board.TotalXPEarned)
}

func TestBuildBoard_Empty(t *testing.T) {
	engine := testEngine(time.Now())
	board := engine.BuildBoard(nil)

	assert.Empty(t, board.ActiveBounties)
	assert.Empty(t, board.AvailableBounties)
	assert.Empty(t, board.CompletedBounties)
	assert.Equal(t, 0, board.CompletionRate)
	assert.Equal(t, 0, board.CurrentStreak)
	assert.Equal(t, "rookie", board.HunterRank.ID)
}

func TestBuildBoard_StaleCompletionBreaksStreak(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	engine := testEngine(now)

	old := now.AddDate(0, 0, -60)
	bp := breakingPoint("50m", "approach", 20, 10, 8, models.BreakingPointResolved)
	bp.CreatedAt = now.AddDate(0, 0, -90)
	bp.ResolvedDate = &old

	board := engine.BuildBoard([]models.BreakingPoint{bp})
	assert.Equal(t, 0, board.CurrentStreak)
}

func TestActivateAndUpdateProgress(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	engine := testEngine(now)

	available := breakingPoint("putting 6m", "putting", 40, 60, 45, models.BreakingPointOpen)
	active := breakingPoint("25m", "approach", 20, 10, 15, models.BreakingPointInProgress)
	board := engine.BuildBoard([]models.BreakingPoint{available, active})

	t.Run("activate available bounty", func(t *testing.T) {
		b := engine.Activate(board, board.AvailableBounties[0].ID)
		require.NotNil(t, b)
		assert.Equal(t, StatusActive, b.Status)
		require.NotNil(t, b.ActivatedAt)
		assert.Equal(t, now, *b.ActivatedAt)
	})

	t.Run("activate unknown id", func(t *testing.T) {
		assert.Nil(t, engine.Activate(board, "bounty_missing"))
	})

	t.Run("update progress", func(t *testing.T) {
		b := engine.UpdateProgress(board, board.ActiveBounties[0].ID, 12)
		require.NotNil(t, b)
		assert.Equal(t, 12.0, b.CurrentValue)
		assert.Equal(t, 80.0, b.Progress)
		assert.Equal(t, StatusActive, b.Status)
	})

	t.Run("update reaching target completes", func(t *testing.T) {
		b := engine.UpdateProgress(board, board.ActiveBounties[0].ID, 10)
		require.NotNil(t, b)
		assert.Equal(t, StatusCompleted, b.Status)
		require.NotNil(t, b.CompletedAt)
		assert.Equal(t, 100.0, b.Progress)
	})

	t.Run("projections are not persisted", func(t *testing.T) {
		assert.Equal(t, StatusAvailable, board.AvailableBounties[0].Status)
		assert.Equal(t, 15.0, board.ActiveBounties[0].CurrentValue)
	})
}

func TestComplete_Rewards(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	engine := testEngine(now)

	b := Bounty{
		XPReward:      300,
		BonusXP:       150,
		SpeedDeadline: now.Add(24 * time.Hour),
	}

	t.Run("speed and streak bonuses stack", func(t *testing.T) {
		result := engine.Complete(b, 2, 4)
		assert.True(t, result.SpeedBonus)
		assert.Equal(t, 60, result.StreakBonus)
		assert.Equal(t, 150+60, result.BonusXP)
		assert.Equal(t, 300+150+60, result.XPAwarded)
		require.NotNil(t, result.NewRank)
		assert.Equal(t, "bronze", result.NewRank.ID)
		assert.Equal(t, StatusCompleted, result.Bounty.Status)
		assert.Equal(t, 100.0, result.Bounty.Progress)
	})

	t.Run("missed deadline drops speed bonus", func(t *testing.T) {
		late := b
		late.SpeedDeadline = now.Add(-time.Hour)
		result := engine.Complete(late, 0, 0)
		assert.False(t, result.SpeedBonus)
		assert.Equal(t, 0, result.BonusXP)
		assert.Equal(t, 300, result.XPAwarded)
		assert.Nil(t, result.NewRank)
	})

	t.Run("streak bonus caps at fifty percent", func(t *testing.T) {
		result := engine.Complete(b, 20, 1)
		assert.Equal(t, 150, result.StreakBonus)
	})
}

func TestHunterRanks(t *testing.T) {
	assert.Equal(t, "rookie", HunterRankFor(0).ID)
	assert.Equal(t, "bronze", HunterRankFor(5).ID)
	assert.Equal(t, "silver", HunterRankFor(17).ID)
	assert.Equal(t, "legendary", HunterRankFor(250).ID)

	assert.Equal(t, 5, BountiesToNextRank(0))
	assert.Equal(t, 10, BountiesToNextRank(5))
	assert.Equal(t, 0, BountiesToNextRank(120))
}

package journey

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akgolfgroup/player-insights/internal/models"
)

type fakeResults struct {
	rows []models.TestResult
	err  error
}

func (f *fakeResults) ByPlayer(_ context.Context, _ uuid.UUID, _ []int, _ int) ([]models.TestResult, error) {
	return f.rows, f.err
}

func peiRow(testNumber int, pei float64, daysAgo int) models.TestResult {
	return models.TestResult{
		ID:         uuid.New(),
		TestNumber: testNumber,
		PEI:        &pei,
		TestDate:   time.Now().AddDate(0, 0, -daysAgo),
	}
}

func TestBuildJourney_EmptyHistory(t *testing.T) {
	builder := NewBuilder(&fakeResults{}, 100, 10)

	data, err := builder.BuildJourney(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, -1.5, data.Position.CurrentSG)
	assert.Equal(t, -1.5, data.StartSG)
	assert.Equal(t, CategoryBreakdown{}, data.CategoryBreakdown)
	assert.Empty(t, data.History)
	assert.Equal(t, "low_handicap", data.Position.CurrentLevel.ID)
}

func TestBuildJourney_ReaderError(t *testing.T) {
	readErr := errors.New("connection refused")
	builder := NewBuilder(&fakeResults{err: readErr}, 100, 10)

	_, err := builder.BuildJourney(context.Background(), uuid.New())
	assert.ErrorIs(t, err, readErr)
}

func TestBuildJourney_CategoryAverages(t *testing.T) {
	// Two approach rows with different outcomes; the breakdown must be the
	// rounded mean of their converted samples.
	rows := []models.TestResult{
		peiRow(10, 5, 1),
		peiRow(10, 20, 2),
	}
	builder := NewBuilder(&fakeResults{rows: rows}, 100, 10)

	data, err := builder.BuildJourney(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Len(t, data.History, 2)

	mean := (data.History[0].SG + data.History[1].SG) / 2
	assert.InDelta(t, mean, data.CategoryBreakdown.Approach, 0.005)
	assert.Equal(t, 0.0, data.CategoryBreakdown.AroundGreen)
	assert.Equal(t, 0.0, data.CategoryBreakdown.Putting)
}

func TestBuildJourney_CurrentSGIsRecentWindowMean(t *testing.T) {
	// 12 rows newest-first; the current SG reads only the newest 10.
	rows := make([]models.TestResult, 0, 12)
	for i := 0; i < 12; i++ {
		rows = append(rows, peiRow(9, float64(5+i), i))
	}
	builder := NewBuilder(&fakeResults{rows: rows}, 100, 10)

	data, err := builder.BuildJourney(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Len(t, data.History, 12)

	sum := 0.0
	for _, point := range data.History[:10] {
		sum += point.SG
	}
	assert.InDelta(t, sum/10, data.Position.CurrentSG, 0.005)
	assert.InDelta(t, data.History[11].SG, data.StartSG, 0.005)
}

func TestBuildJourney_WindowShorterThanConfigured(t *testing.T) {
	rows := []models.TestResult{
		peiRow(9, 10, 1),
		peiRow(9, 20, 2),
	}
	builder := NewBuilder(&fakeResults{rows: rows}, 100, 10)

	data, err := builder.BuildJourney(context.Background(), uuid.New())
	require.NoError(t, err)

	mean := (data.History[0].SG + data.History[1].SG) / 2
	assert.InDelta(t, mean, data.Position.CurrentSG, 0.005)
}

func TestBuildJourney_UnconvertibleRowCountsAsZero(t *testing.T) {
	// PEI 90 on a 100m test leaves 90m, far outside the putting table, so
	// the sample degrades to zero instead of being dropped.
	rows := []models.TestResult{
		peiRow(11, 90, 1),
		peiRow(11, 5, 2),
	}
	builder := NewBuilder(&fakeResults{rows: rows}, 100, 10)

	data, err := builder.BuildJourney(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Len(t, data.History, 2)

	assert.Equal(t, 0.0, data.History[0].SG)
	assert.NotEqual(t, 0.0, data.History[1].SG)
	assert.InDelta(t, data.History[1].SG/2, data.CategoryBreakdown.Approach, 0.005)
}

func TestBuildJourney_UnknownTestNumberSkipped(t *testing.T) {
	rows := []models.TestResult{
		peiRow(3, 50, 1), // speed test, no shot mapping
		peiRow(9, 10, 2),
	}
	builder := NewBuilder(&fakeResults{rows: rows}, 100, 10)

	data, err := builder.BuildJourney(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Len(t, data.History, 1)
}

func TestBuildJourney_PuttingTestsUseGreenLie(t *testing.T) {
	rows := []models.TestResult{
		peiRow(15, 10, 1),
		peiRow(16, 10, 2),
	}
	builder := NewBuilder(&fakeResults{rows: rows}, 100, 10)

	data, err := builder.BuildJourney(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Len(t, data.History, 2)

	assert.NotZero(t, data.CategoryBreakdown.Putting)
	assert.Zero(t, data.CategoryBreakdown.Approach)
	assert.Zero(t, data.CategoryBreakdown.AroundGreen)
}

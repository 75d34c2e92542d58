package insights

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akgolfgroup/player-insights/internal/bounty"
	"github.com/akgolfgroup/player-insights/internal/journey"
	"github.com/akgolfgroup/player-insights/internal/models"
	"github.com/akgolfgroup/player-insights/internal/skilldna"
	"github.com/akgolfgroup/player-insights/pkg/metrics"
)

type fakeResults struct {
	rows []models.TestResult
	err  error
}

func (f *fakeResults) ByPlayer(_ context.Context, _ uuid.UUID, testNumbers []int, _ int) ([]models.TestResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	if testNumbers == nil {
		return f.rows, nil
	}
	wanted := make(map[int]bool, len(testNumbers))
	for _, n := range testNumbers {
		wanted[n] = true
	}
	out := make([]models.TestResult, 0, len(f.rows))
	for _, row := range f.rows {
		if wanted[row.TestNumber] {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakePlayers struct {
	player *models.Player
	err    error
}

func (f *fakePlayers) ByID(_ context.Context, _ uuid.UUID) (*models.Player, error) {
	return f.player, f.err
}

type fakeBreakingPoints struct {
	rows []models.BreakingPoint
	err  error
}

func (f *fakeBreakingPoints) ByPlayer(_ context.Context, _ uuid.UUID) ([]models.BreakingPoint, error) {
	return f.rows, f.err
}

func ptr(v float64) *float64 { return &v }

func peiRow(testNumber int, pei float64, daysAgo int) models.TestResult {
	return models.TestResult{
		ID:         uuid.New(),
		TestNumber: testNumber,
		PEI:        &pei,
		TestDate:   time.Now().AddDate(0, 0, -daysAgo),
	}
}

func newService(results *fakeResults, players *fakePlayers, breakingPoints *fakeBreakingPoints) *Service {
	return NewService(
		journey.NewBuilder(results, 100, 10),
		skilldna.NewBuilder(results, players, 3),
		bounty.NewEngine(),
		breakingPoints,
		metrics.NewManager(prometheus.NewRegistry(), false),
		5*time.Second,
	)
}

func TestGetInsights_AllBuildersJoin(t *testing.T) {
	playerID := uuid.New()
	results := &fakeResults{rows: []models.TestResult{
		peiRow(9, 10, 1),
		peiRow(9, 15, 2),
	}}
	players := &fakePlayers{player: &models.Player{ID: playerID, Gender: models.GenderMale}}
	breakingPoints := &fakeBreakingPoints{rows: []models.BreakingPoint{{
		ID:                  uuid.New(),
		PlayerID:            playerID,
		Category:            "approach",
		SpecificArea:        "PEI 75m",
		BaselineMeasurement: ptr(20),
		TargetMeasurement:   ptr(10),
		CurrentMeasurement:  ptr(15),
		Status:              models.BreakingPointInProgress,
		CreatedAt:           time.Now().AddDate(0, 0, -10),
	}}}

	service := newService(results, players, breakingPoints)

	out, err := service.GetInsights(context.Background(), playerID)
	require.NoError(t, err)
	require.NotNil(t, out.SGJourney)
	require.NotNil(t, out.SkillDNA)
	require.NotNil(t, out.Bounties)

	assert.Equal(t, out.SGJourney.Position.CurrentSG, out.QuickStats.SGTotal)
	assert.Equal(t, out.SGJourney.Position.Trend30Days, out.QuickStats.SGTrend)
	assert.Equal(t, 1, out.QuickStats.ActiveBountyCount)
	assert.Equal(t, 50.0, out.QuickStats.NearestBountyProgress)

	topStrength := out.SkillDNA.Dimensions[out.SkillDNA.Strengths[0]].Name
	assert.Equal(t, topStrength, out.QuickStats.TopStrength)
}

func TestGetInsights_FailFastOnReaderError(t *testing.T) {
	readErr := errors.New("reader down")
	players := &fakePlayers{player: &models.Player{ID: uuid.New()}}

	service := newService(&fakeResults{err: readErr}, players, &fakeBreakingPoints{})

	out, err := service.GetInsights(context.Background(), uuid.New())
	assert.Nil(t, out)
	assert.ErrorIs(t, err, readErr)
}

func TestGetInsights_BreakingPointReaderFailureAborts(t *testing.T) {
	readErr := errors.New("breaking points unavailable")
	players := &fakePlayers{player: &models.Player{ID: uuid.New()}}

	service := newService(&fakeResults{}, players, &fakeBreakingPoints{err: readErr})

	out, err := service.GetInsights(context.Background(), uuid.New())
	assert.Nil(t, out)
	assert.ErrorIs(t, err, readErr)
}

func TestGetInsights_EmptyPlayerGetsNAQuickStats(t *testing.T) {
	players := &fakePlayers{player: &models.Player{ID: uuid.New(), Gender: models.GenderFemale}}

	service := newService(&fakeResults{}, players, &fakeBreakingPoints{})

	out, err := service.GetInsights(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, -1.5, out.QuickStats.SGTotal)
	assert.Equal(t, "N/A", out.QuickStats.TopStrength)
	assert.Equal(t, "N/A", out.QuickStats.TopWeakness)
	assert.Equal(t, 0, out.QuickStats.ActiveBountyCount)
	assert.Equal(t, 0.0, out.QuickStats.NearestBountyProgress)
}

func TestActivateBounty(t *testing.T) {
	playerID := uuid.New()
	players := &fakePlayers{player: &models.Player{ID: playerID}}
	breakingPoints := &fakeBreakingPoints{rows: []models.BreakingPoint{{
		ID:                  uuid.New(),
		PlayerID:            playerID,
		Category:            "putting",
		SpecificArea:        "putting 6m",
		BaselineMeasurement: ptr(40),
		TargetMeasurement:   ptr(60),
		CurrentMeasurement:  ptr(45),
		Status:              models.BreakingPointOpen,
		CreatedAt:           time.Now(),
	}}}

	service := newService(&fakeResults{}, players, breakingPoints)

	board, err := service.GetBountyBoard(context.Background(), playerID)
	require.NoError(t, err)
	require.Len(t, board.AvailableBounties, 1)

	activated, err := service.ActivateBounty(context.Background(), playerID, board.AvailableBounties[0].ID)
	require.NoError(t, err)
	assert.Equal(t, bounty.StatusActive, activated.Status)

	_, err = service.ActivateBounty(context.Background(), playerID, "bounty_missing")
	assert.Error(t, err)
}

func TestUpdateBountyProgress(t *testing.T) {
	playerID := uuid.New()
	players := &fakePlayers{player: &models.Player{ID: playerID}}
	breakingPoints := &fakeBreakingPoints{rows: []models.BreakingPoint{{
		ID:                  uuid.New(),
		PlayerID:            playerID,
		Category:            "approach",
		SpecificArea:        "25m",
		BaselineMeasurement: ptr(20),
		TargetMeasurement:   ptr(10),
		CurrentMeasurement:  ptr(18),
		Status:              models.BreakingPointInProgress,
		CreatedAt:           time.Now(),
	}}}

	service := newService(&fakeResults{}, players, breakingPoints)

	updated, err := service.UpdateBountyProgress(context.Background(), playerID, boardBountyID(t, service, playerID), 10)
	require.NoError(t, err)
	assert.Equal(t, bounty.StatusCompleted, updated.Status)
	assert.Equal(t, 100.0, updated.Progress)
}

func boardBountyID(t *testing.T, service *Service, playerID uuid.UUID) string {
	t.Helper()
	board, err := service.GetBountyBoard(context.Background(), playerID)
	require.NoError(t, err)
	require.Len(t, board.ActiveBounties, 1)
	return board.ActiveBounties[0].ID
}

package insights

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/akgolfgroup/player-insights/internal/bounty"
	"github.com/akgolfgroup/player-insights/internal/journey"
	"github.com/akgolfgroup/player-insights/internal/repository"
	"github.com/akgolfgroup/player-insights/internal/skilldna"
	"github.com/akgolfgroup/player-insights/pkg/logger"
	"github.com/akgolfgroup/player-insights/pkg/metrics"
)

// QuickStats is the dashboard headline projection of the full insights.
type QuickStats struct {
	SGTotal               float64 `json:"sg_total"`
	SGTrend               float64 `json:"sg_trend"`
	TopStrength           string  `json:"top_strength"`
	TopWeakness           string  `json:"top_weakness"`
	ActiveBountyCount     int     `json:"active_bounty_count"`
	NearestBountyProgress float64 `json:"nearest_bounty_progress"`
}

// PlayerInsights is the combined product of the three builders.
type PlayerInsights struct {
	PlayerID   uuid.UUID                 `json:"player_id"`
	SGJourney  *journey.SGJourneyData    `json:"sg_journey"`
	SkillDNA   *skilldna.SkillDNAProfile `json:"skill_dna"`
	Bounties   *bounty.Board             `json:"bounty_board"`
	QuickStats QuickStats                `json:"quick_stats"`
	BuiltAt    time.Time                 `json:"built_at"`
}

// Service fans the three builders out concurrently and joins their results.
type Service struct {
	journeys       *journey.Builder
	skills         *skilldna.Builder
	bounties       *bounty.Engine
	breakingPoints repository.BreakingPointReader
	metrics        *metrics.Manager
	log            *logrus.Logger
	timeout        time.Duration
}

func NewService(
	journeys *journey.Builder,
	skills *skilldna.Builder,
	bounties *bounty.Engine,
	breakingPoints repository.BreakingPointReader,
	mgr *metrics.Manager,
	timeout time.Duration,
) *Service {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Service{
		journeys:       journeys,
		skills:         skills,
		bounties:       bounties,
		breakingPoints: breakingPoints,
		metrics:        mgr,
		log:            logger.GetLogger(),
		timeout:        timeout,
	}
}

type builderResult struct {
	name     string
	journey  *journey.SGJourneyData
	profile  *skilldna.SkillDNAProfile
	board    *bounty.Board
	err      error
	duration time.Duration
}

// GetInsights runs the journey, skill DNA and bounty builders concurrently
// and joins them. Any builder failure fails the whole call; no partial
// results are returned.
func (s *Service) GetInsights(ctx context.Context, playerID uuid.UUID) (*PlayerInsights, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	s.log.WithFields(logrus.Fields{
		"player_id": playerID,
	}).Debug("Building player insights")

	results := make(chan builderResult, 3)

	go func() {
		t := time.Now()
		data, err := s.journeys.BuildJourney(ctx, playerID)
		results <- builderResult{name: "sg_journey", journey: data, err: err, duration: time.Since(t)}
	}()
	go func() {
		t := time.Now()
		profile, err := s.skills.BuildProfile(ctx, playerID)
		results <- builderResult{name: "skill_dna", profile: profile, err: err, duration: time.Since(t)}
	}()
	go func() {
		t := time.Now()
		board, err := s.buildBoard(ctx, playerID)
		results <- builderResult{name: "bounty_board", board: board, err: err, duration: time.Since(t)}
	}()

	out := &PlayerInsights{PlayerID: playerID, BuiltAt: start}
	var firstErr error
	for i := 0; i < 3; i++ {
		r := <-results
		s.metrics.RecordBuilder(r.name, r.duration, r.err)
		if r.err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("%s builder: %w", r.name, r.err)
			}
			continue
		}
		switch r.name {
		case "sg_journey":
			out.SGJourney = r.journey
		case "skill_dna":
			out.SkillDNA = r.profile
		case "bounty_board":
			out.Bounties = r.board
		}
	}

	s.metrics.RecordBuild(time.Since(start), firstErr)
	if firstErr != nil {
		s.log.WithFields(logrus.Fields{
			"player_id": playerID,
			"error":     firstErr,
		}).Error("Player insights build failed")
		return nil, firstErr
	}

	out.QuickStats = buildQuickStats(out)
	s.log.WithFields(logrus.Fields{
		"player_id": playerID,
		"duration":  time.Since(start),
	}).Info("Player insights built")
	return out, nil
}

// GetBountyBoard rebuilds only the bounty board from the current breaking
// point snapshot.
func (s *Service) GetBountyBoard(ctx context.Context, playerID uuid.UUID) (*bounty.Board, error) {
	return s.buildBoard(ctx, playerID)
}

// ActivateBounty marks an available bounty active and returns the updated
// projection. Durable activation requires writing the new status back to
// the breaking point record before the next board rebuild.
func (s *Service) ActivateBounty(ctx context.Context, playerID uuid.UUID, bountyID string) (*bounty.Bounty, error) {
	board, err := s.buildBoard(ctx, playerID)
	if err != nil {
		return nil, err
	}
	b := s.bounties.Activate(board, bountyID)
	if b == nil {
		return nil, fmt.Errorf("bounty %s not available for player %s", bountyID, playerID)
	}
	s.log.WithFields(logrus.Fields{
		"player_id": playerID,
		"bounty_id": bountyID,
	}).Info("Bounty activated")
	return b, nil
}

// UpdateBountyProgress applies a new measurement to an active bounty.
func (s *Service) UpdateBountyProgress(ctx context.Context, playerID uuid.UUID, bountyID string, newValue float64) (*bounty.Bounty, error) {
	board, err := s.buildBoard(ctx, playerID)
	if err != nil {
		return nil, err
	}
	b := s.bounties.UpdateProgress(board, bountyID, newValue)
	if b == nil {
		return nil, fmt.Errorf("bounty %s not active for player %s", bountyID, playerID)
	}
	return b, nil
}

func (s *Service) buildBoard(ctx context.Context, playerID uuid.UUID) (*bounty.Board, error) {
	breakingPoints, err := s.breakingPoints.ByPlayer(ctx, playerID)
	if err != nil {
		s.metrics.RecordReaderFailure("breaking_points")
		return nil, fmt.Errorf("fetching breaking points: %w", err)
	}
	return s.bounties.BuildBoard(breakingPoints), nil
}

func buildQuickStats(in *PlayerInsights) QuickStats {
	stats := QuickStats{
		SGTotal:     in.SGJourney.Position.CurrentSG,
		SGTrend:     in.SGJourney.Position.Trend30Days,
		TopStrength: "N/A",
		TopWeakness: "N/A",
	}
	if len(in.SkillDNA.Strengths) > 0 {
		stats.TopStrength = in.SkillDNA.Dimensions[in.SkillDNA.Strengths[0]].Name
	}
	if len(in.SkillDNA.Weaknesses) > 0 {
		stats.TopWeakness = in.SkillDNA.Dimensions[in.SkillDNA.Weaknesses[0]].Name
	}
	stats.ActiveBountyCount = len(in.Bounties.ActiveBounties)
	if len(in.Bounties.ActiveBounties) > 0 {
		stats.NearestBountyProgress = in.Bounties.ActiveBounties[0].Progress
	}
	return stats
}

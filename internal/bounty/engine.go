package bounty

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/akgolfgroup/player-insights/internal/models"
	"github.com/akgolfgroup/player-insights/pkg/logger"
)

// Status is the bounty lifecycle, derived on every build from the breaking
// point snapshot. Nothing is persisted between builds.
type Status string

const (
	StatusAvailable Status = "available"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

const (
	speedBonusWindow    = 0.7
	streakWindowDays    = 30
	maxStreakMultiplier = 1.5
	streakStepBonus     = 0.1
	completedBoardLimit = 10
	msPerDay            = 24 * 60 * 60 * 1000
)

// Bounty is a challenge instantiated from a breaking point.
type Bounty struct {
	ID              string           `json:"id"`
	TemplateID      string           `json:"template_id"`
	Title           string           `json:"title"`
	TitleNo         string           `json:"title_no"`
	Description     string           `json:"description"`
	DescriptionNo   string           `json:"description_no"`
	BreakingPointID string           `json:"breaking_point_id"`
	Metric          string           `json:"metric"`
	MetricLabel     string           `json:"metric_label"`
	BaselineValue   float64          `json:"baseline_value"`
	TargetValue     float64          `json:"target_value"`
	CurrentValue    float64          `json:"current_value"`
	Unit            string           `json:"unit"`
	IsLowerBetter   bool             `json:"is_lower_better"`
	Progress        float64          `json:"progress"`
	Status          Status           `json:"status"`
	Category        TemplateCategory `json:"category"`
	Difficulty      Difficulty       `json:"difficulty"`
	XPReward        int              `json:"xp_reward"`
	BonusXP         int              `json:"bonus_xp"`
	CreatedAt       time.Time        `json:"created_at"`
	ActivatedAt     *time.Time       `json:"activated_at,omitempty"`
	CompletedAt     *time.Time       `json:"completed_at,omitempty"`
	EstimatedDays   int              `json:"estimated_days"`
	Exercises       []Exercise       `json:"recommended_exercises"`
	SpeedDeadline   time.Time        `json:"speed_bonus_deadline"`
}

// CompletionRecord is one entry of the board's completion history.
type CompletionRecord struct {
	CompletedAt    time.Time `json:"completed_at"`
	DaysToComplete int       `json:"days_to_complete"`
}

// Board is the assembled bounty view for one player.
type Board struct {
	ActiveBounties        []Bounty           `json:"active_bounties"`
	AvailableBounties     []Bounty           `json:"available_bounties"`
	CompletedBounties     []Bounty           `json:"completed_bounties"`
	CompletionHistory     []CompletionRecord `json:"completion_history"`
	TotalCompleted        int                `json:"total_completed"`
	TotalXPEarned         int                `json:"total_xp_earned"`
	CompletionRate        int                `json:"completion_rate"`
	AverageCompletionDays int                `json:"average_completion_days"`
	CurrentStreak         int                `json:"current_streak"`
	HunterRank            HunterRank         `json:"hunter_rank"`
	BountiesToNextRank    int                `json:"bounties_to_next_rank"`
}

// CompletionResult reports rewards for a just-completed bounty.
type CompletionResult struct {
	Bounty      Bounty      `json:"bounty"`
	XPAwarded   int         `json:"xp_awarded"`
	SpeedBonus  bool        `json:"speed_bonus"`
	BonusXP     int         `json:"bonus_xp"`
	StreakBonus int         `json:"streak_bonus"`
	NewRank     *HunterRank `json:"new_rank,omitempty"`
}

// Engine derives bounties and boards from breaking point snapshots.
type Engine struct {
	log *logrus.Logger
	now func() time.Time
}

func NewEngine() *Engine {
	return &Engine{
		log: logger.GetLogger(),
		now: time.Now,
	}
}

// CalculateProgress returns the direction-aware fraction travelled from
// baseline toward target, clamped to [0,100]. A zero span never divides:
// it reports 100 once the target is reached and 0 otherwise.
func CalculateProgress(baseline, target, current float64, isLowerBetter bool) float64 {
	span := target - baseline
	if isLowerBetter {
		span = baseline - target
	}
	if span <= 0 {
		if IsComplete(current, target, isLowerBetter) {
			return 100
		}
		return 0
	}

	travelled := current - baseline
	if isLowerBetter {
		travelled = baseline - current
	}
	return math.Max(0, math.Min(100, travelled/span*100))
}

// IsComplete reports whether the current measurement has reached the target.
func IsComplete(current, target float64, isLowerBetter bool) bool {
	if isLowerBetter {
		return current <= target
	}
	return current >= target
}

// Instantiate builds a bounty from a breaking point and a resolved template.
// Returns nil when the template id is unknown. Status is derived from the
// breaking point: resolved forces completed, in_progress forces active.
func (e *Engine) Instantiate(bp *models.BreakingPoint, templateID string) *Bounty {
	template, ok := TemplateByID(templateID)
	if !ok {
		return nil
	}

	baseline := bp.Baseline()
	target := bp.Target()
	current := bp.Current()

	difficulty := CalculateDifficulty(baseline, target, template.IsLowerBetter)
	xp := xpConfig[difficulty]
	days := estimatedDays[difficulty]

	now := e.now()
	bounty := &Bounty{
		ID:              fmt.Sprintf("bounty_%s", bp.ID),
		TemplateID:      template.ID,
		Title:           template.Title,
		TitleNo:         template.TitleNo,
		Description:     template.Description,
		DescriptionNo:   template.DescriptionNo,
		BreakingPointID: bp.ID.String(),
		Metric:          template.Metric,
		MetricLabel:     template.MetricLabel,
		BaselineValue:   baseline,
		TargetValue:     target,
		CurrentValue:    current,
		Unit:            template.Unit,
		IsLowerBetter:   template.IsLowerBetter,
		Progress:        CalculateProgress(baseline, target, current, template.IsLowerBetter),
		Status:          StatusAvailable,
		Category:        template.Category,
		Difficulty:      difficulty,
		XPReward:        xp.base,
		BonusXP:         xp.speedBonus,
		CreatedAt:       now,
		EstimatedDays:   days,
		Exercises:       template.Exercises,
		SpeedDeadline:   now.Add(time.Duration(float64(days)*speedBonusWindow*24) * time.Hour),
	}

	switch bp.Status {
	case models.BreakingPointResolved:
		bounty.Status = StatusCompleted
		completedAt := now
		if bp.ResolvedDate != nil {
			completedAt = *bp.ResolvedDate
		}
		bounty.CompletedAt = &completedAt
		// Work on a breaking point starts when it is diagnosed, so the
		// completion history can measure from creation.
		activatedAt := bp.CreatedAt
		bounty.ActivatedAt = &activatedAt
	case models.BreakingPointInProgress:
		bounty.Status = StatusActive
		activatedAt := bp.CreatedAt
		bounty.ActivatedAt = &activatedAt
	}

	return bounty
}

// BuildBoard maps every breaking point to a bounty and assembles the board.
// Unmapped breaking points are dropped.
func (e *Engine) BuildBoard(breakingPoints []models.BreakingPoint) *Board {
	bounties := make([]Bounty, 0, len(breakingPoints))
	for i := range breakingPoints {
		bp := &breakingPoints[i]
		templateID := MapToTemplate(bp.SpecificArea, bp.Category)
		if templateID == "" {
			e.log.WithFields(logrus.Fields{
				"breaking_point_id": bp.ID,
				"specific_area":     bp.SpecificArea,
				"category":          bp.Category,
			}).Debug("No bounty template matches breaking point, dropping")
			continue
		}
		if bounty := e.Instantiate(bp, templateID); bounty != nil {
			bounties = append(bounties, *bounty)
		}
	}

	var active, available, completed []Bounty
	for _, b := range bounties {
		switch b.Status {
		case StatusActive:
			active = append(active, b)
		case StatusCompleted:
			completed = append(completed, b)
		default:
			available = append(available, b)
		}
	}

	var history []CompletionRecord
	for _, b := range completed {
		if b.CompletedAt == nil || b.ActivatedAt == nil {
			continue
		}
		elapsed := b.CompletedAt.Sub(*b.ActivatedAt).Milliseconds()
		history = append(history, CompletionRecord{
			CompletedAt:    *b.CompletedAt,
			DaysToComplete: int(math.Ceil(float64(elapsed) / msPerDay)),
		})
	}

	return e.assembleBoard(active, available, completed, history)
}

func (e *Engine) assembleBoard(active, available, completed []Bounty, history []CompletionRecord) *Board {
	totalCompleted := len(completed)
	totalXP := 0
	for _, b := range completed {
		totalXP += b.XPReward
	}

	completionRate := 0.0
	if attempted := len(active) + totalCompleted; attempted > 0 {
		completionRate = float64(totalCompleted) / float64(attempted) * 100
	}

	avgDays := 0.0
	if len(history) > 0 {
		sum := 0
		for _, h := range history {
			sum += h.DaysToComplete
		}
		avgDays = float64(sum) / float64(len(history))
	}

	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Progress > active[j].Progress
	})
	sort.SliceStable(available, func(i, j int) bool {
		di, dj := difficultyOrder[available[i].Difficulty], difficultyOrder[available[j].Difficulty]
		if di != dj {
			return di < dj
		}
		return available[i].XPReward > available[j].XPReward
	})
	sort.SliceStable(completed, func(i, j int) bool {
		return completedTime(completed[i]).After(completedTime(completed[j]))
	})

	streak := e.currentStreak(completed)

	recent := completed
	if len(recent) > completedBoardLimit {
		recent = recent[:completedBoardLimit]
	}

	return &Board{
		ActiveBounties:        active,
		AvailableBounties:     available,
		CompletedBounties:     recent,
		CompletionHistory:     history,
		TotalCompleted:        totalCompleted,
		TotalXPEarned:         totalXP,
		CompletionRate:        int(math.Round(completionRate)),
		AverageCompletionDays: int(math.Round(avgDays)),
		CurrentStreak:         streak,
		HunterRank:            HunterRankFor(totalCompleted),
		BountiesToNextRank:    BountiesToNextRank(totalCompleted),
	}
}

func completedTime(b Bounty) time.Time {
	if b.CompletedAt != nil {
		return *b.CompletedAt
	}
	return time.Time{}
}

// currentStreak counts consecutive completions no more than 30 days apart,
// anchored on the most recent one still being within the window. Input must
// be sorted newest-first.
func (e *Engine) currentStreak(completed []Bounty) int {
	if len(completed) == 0 || completed[0].CompletedAt == nil {
		return 0
	}
	if e.now().Sub(*completed[0].CompletedAt).Hours() > streakWindowDays*24 {
		return 0
	}

	streak := 1
	for i := 1; i < len(completed); i++ {
		prev, curr := completed[i-1].CompletedAt, completed[i].CompletedAt
		if prev == nil || curr == nil {
			break
		}
		if prev.Sub(*curr).Hours() > streakWindowDays*24 {
			break
		}
		streak++
	}
	return streak
}

// Activate marks an available bounty active. The returned projection is not
// persisted; the board is rebuilt from breaking points on the next read, so
// durable activation must be written back to the breaking point record.
func (e *Engine) Activate(board *Board, bountyID string) *Bounty {
	for _, b := range board.AvailableBounties {
		if b.ID == bountyID {
			now := e.now()
			b.Status = StatusActive
			b.ActivatedAt = &now
			return &b
		}
	}
	return nil
}

// UpdateProgress applies a new measurement to an active bounty and returns
// the updated projection, completing it when the target is reached. Like
// Activate, the result is not persisted by this engine.
func (e *Engine) UpdateProgress(board *Board, bountyID string, newValue float64) *Bounty {
	for _, b := range board.ActiveBounties {
		if b.ID == bountyID {
			b.CurrentValue = newValue
			b.Progress = CalculateProgress(b.BaselineValue, b.TargetValue, newValue, b.IsLowerBetter)
			if IsComplete(newValue, b.TargetValue, b.IsLowerBetter) {
				now := e.now()
				b.Status = StatusCompleted
				b.CompletedAt = &now
			}
			return &b
		}
	}
	return nil
}

// Complete finalizes a bounty and computes XP including speed and streak
// bonuses plus any rank promotion.
func (e *Engine) Complete(bounty Bounty, currentStreak, totalCompleted int) CompletionResult {
	now := e.now()
	speedBonus := !now.After(bounty.SpeedDeadline)

	bonusXP := 0
	if speedBonus {
		bonusXP += bounty.BonusXP
	}

	streakMultiplier := math.Min(maxStreakMultiplier, 1+float64(currentStreak)*streakStepBonus)
	streakBonus := int(math.Round(float64(bounty.XPReward) * (streakMultiplier - 1)))
	bonusXP += streakBonus

	var newRank *HunterRank
	if prev, next := HunterRankFor(totalCompleted), HunterRankFor(totalCompleted+1); prev.ID != next.ID {
		newRank = &next
	}

	bounty.Status = StatusCompleted
	bounty.CompletedAt = &now
	bounty.Progress = 100

	return CompletionResult{
		Bounty:      bounty,
		XPAwarded:   bounty.XPReward + bonusXP,
		SpeedBonus:  speedBonus,
		BonusXP:     bonusXP,
		StreakBonus: streakBonus,
		NewRank:     newRank,
	}
}

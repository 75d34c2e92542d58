package journey

import (
	"math"
	"time"
)

// Level is one step on the SG benchmark ladder, from beginner golf to the
// elite end of the tour distribution.
type Level struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	NameNo   string  `json:"name_no"`
	MinSG    float64 `json:"min_sg"`
	Altitude int     `json:"altitude_meters"`
}

// The ladder is ordered by ascending MinSG; a player sits on the highest
// level whose MinSG they have reached.
var levels = []Level{
	{ID: "beginner", Name: "Beginner", NameNo: "Nybegynner", MinSG: -5.0, Altitude: 0},
	{ID: "club_player", Name: "Club Player", NameNo: "Klubbspiller", MinSG: -3.0, Altitude: 1000},
	{ID: "low_handicap", Name: "Low Handicap", NameNo: "Lav handicap", MinSG: -2.0, Altitude: 2000},
	{ID: "scratch", Name: "Scratch", NameNo: "Scratch", MinSG: -1.0, Altitude: 3000},
	{ID: "mini_tour", Name: "Mini Tour", NameNo: "Mini Tour", MinSG: 0.0, Altitude: 4000},
	{ID: "pga_average", Name: "PGA Average", NameNo: "PGA Snitt", MinSG: 1.0, Altitude: 5000},
	{ID: "pga_elite", Name: "PGA Elite", NameNo: "PGA Elite", MinSG: 2.5, Altitude: 6000},
}

// Position describes where the player currently sits on the ladder.
type Position struct {
	CurrentSG      float64 `json:"current_sg"`
	StartSG        float64 `json:"start_sg"`
	TotalClimbed   float64 `json:"total_climbed"`
	CurrentLevel   Level   `json:"current_level"`
	NextLevel      *Level  `json:"next_level,omitempty"`
	ProgressToNext float64 `json:"progress_to_next"`
	SGToNextLevel  float64 `json:"sg_to_next_level"`
	AltitudeMeters int     `json:"altitude_meters"`
	Trend30Days    float64 `json:"trend_30_days"`
	Trend90Days    float64 `json:"trend_90_days"`
	EstimatedScore float64 `json:"estimated_score"`
}

// SGJourneyData is the assembled journey product.
type SGJourneyData struct {
	Position          Position          `json:"position"`
	Levels            []Level           `json:"levels"`
	CategoryBreakdown CategoryBreakdown `json:"category_breakdown"`
	History           []SGDataPoint     `json:"history"`
	StartSG           float64           `json:"start_sg"`
}

// BuildView shapes the aggregated numbers into the journey the dashboard
// renders. History is expected newest-first.
func BuildView(input ViewInput) *SGJourneyData {
	current, next := locateLevel(input.CurrentSG)

	progress, sgToNext := 0.0, 0.0
	if next != nil {
		span := next.MinSG - current.MinSG
		if span > 0 {
			progress = math.Max(0, math.Min(100, (input.CurrentSG-current.MinSG)/span*100))
		}
		sgToNext = round2(next.MinSG - input.CurrentSG)
	} else {
		progress = 100
	}

	// Altitude interpolates between the level's base camp and the next one.
	altitude := current.Altitude
	if next != nil {
		altitude += int(math.Round(progress / 100 * float64(next.Altitude-current.Altitude)))
	}

	position := Position{
		CurrentSG:      input.CurrentSG,
		StartSG:        input.StartSG,
		TotalClimbed:   round2(input.CurrentSG - input.StartSG),
		CurrentLevel:   current,
		NextLevel:      next,
		ProgressToNext: round2(progress),
		SGToNextLevel:  sgToNext,
		AltitudeMeters: altitude,
		Trend30Days:    trend(input.History, input.CurrentSG, 30*24*time.Hour),
		Trend90Days:    trend(input.History, input.CurrentSG, 90*24*time.Hour),
		// A scratch round is par; each stroke gained per round comes off
		// the expected score.
		EstimatedScore: round2(72 - (input.CurrentSG - levels[3].MinSG)),
	}

	return &SGJourneyData{
		Position:          position,
		Levels:            levels,
		CategoryBreakdown: input.CategoryBreakdown,
		History:           input.History,
		StartSG:           input.StartSG,
	}
}

// Ladder returns the benchmark ladder for rendering.
func Ladder() []Level {
	out := make([]Level, len(levels))
	copy(out, levels)
	return out
}

func locateLevel(currentSG float64) (Level, *Level) {
	idx := 0
	for i, level := range levels {
		if currentSG >= level.MinSG {
			idx = i
		}
	}
	current := levels[idx]
	if idx+1 < len(levels) {
		next := levels[idx+1]
		return current, &next
	}
	return current, nil
}

// trend is the delta between the current SG and the mean of samples older
// than the window; zero when no older samples exist.
func trend(history []SGDataPoint, currentSG float64, window time.Duration) float64 {
	cutoff := time.Now().Add(-window)
	sum, count := 0.0, 0
	for _, point := range history {
		if point.Date.Before(cutoff) {
			sum += point.SG
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return round2(currentSG - sum/float64(count))
}

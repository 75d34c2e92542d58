// Package journey builds the strokes-gained journey: a player's SG history,
// category breakdown and position on the benchmark ladder.
package journey

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/akgolfgroup/player-insights/internal/models"
	"github.com/akgolfgroup/player-insights/internal/repository"
	"github.com/akgolfgroup/player-insights/internal/sg"
	"github.com/akgolfgroup/player-insights/pkg/logger"
	"github.com/google/uuid"
)

// DefaultStartSG is the baseline shown before any tests exist: a deliberate
// below-average default, not a zero-fill.
const DefaultStartSG = -1.5

// recentWindow is how many of the newest samples form the current SG.
const defaultRecentWindow = 10

// SGDataPoint is one dated strokes-gained sample.
type SGDataPoint struct {
	Date time.Time `json:"date"`
	SG   float64   `json:"sg"`
}

// CategoryBreakdown holds the per-category SG averages.
type CategoryBreakdown struct {
	Approach    float64 `json:"approach"`
	AroundGreen float64 `json:"around_green"`
	Putting     float64 `json:"putting"`
}

// Builder turns a player's test history into an SGJourneyData.
type Builder struct {
	results      repository.TestResultReader
	historyLimit int
	recentWindow int
}

// NewBuilder wires the builder with its reader. Zero limits fall back to
// the standard 100-row history and 10-sample window.
func NewBuilder(results repository.TestResultReader, historyLimit, recentWindow int) *Builder {
	if historyLimit <= 0 {
		historyLimit = 100
	}
	if recentWindow <= 0 {
		recentWindow = defaultRecentWindow
	}
	return &Builder{results: results, historyLimit: historyLimit, recentWindow: recentWindow}
}

// testShot is the fixed (distance, lie) each SG test number resolves to.
var testShot = map[int]struct {
	distance float64
	lie      sg.Lie
}{
	8:  {25, sg.LieFairway},
	9:  {50, sg.LieFairway},
	10: {75, sg.LieFairway},
	11: {100, sg.LieFairway},
	15: {3, sg.LieGreen},
	16: {6, sg.LieGreen},
	17: {15, sg.LieFairway},
	18: {15, sg.LieBunker},
}

// BuildJourney fetches the player's SG test history and assembles the
// journey. Players without any rows get the canonical empty journey.
func (b *Builder) BuildJourney(ctx context.Context, playerID uuid.UUID) (*SGJourneyData, error) {
	rows, err := b.results.ByPlayer(ctx, playerID, models.SGTestNumbers, b.historyLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch SG test results: %w", err)
	}

	if len(rows) == 0 {
		return b.emptyJourney(), nil
	}

	input := b.aggregate(playerID, rows)
	view := BuildView(input)
	return view, nil
}

// ViewInput is the shaped aggregate handed to the journey view.
type ViewInput struct {
	CurrentSG         float64
	CategoryBreakdown CategoryBreakdown
	History           []SGDataPoint
	StartSG           float64
}

// aggregate converts each row and buckets the samples. Rows are expected
// newest-first; unconvertible rows contribute a zero sample by design.
func (b *Builder) aggregate(playerID uuid.UUID, rows []models.TestResult) ViewInput {
	history := make([]SGDataPoint, 0, len(rows))
	var totals, counts struct {
		approach, aroundGreen, putting float64
	}

	for _, row := range rows {
		shot, ok := testShot[row.TestNumber]
		if !ok {
			continue
		}

		value := 0.0
		result, err := sg.Convert(sg.Input{
			StartDistance: shot.distance,
			PEI:           row.EffectiveValue(),
			Lie:           shot.lie,
		})
		if err != nil {
			// Out-of-domain results are kept as zero samples rather than
			// dropped, so the history length still reflects tests taken.
			logger.WithPlayerContext(playerID.String()).WithField("test_number", row.TestNumber).
				Debug("Unconvertible test result, counting as zero SG")
		} else {
			value = result.StrokesGained
		}

		history = append(history, SGDataPoint{Date: row.TestDate, SG: value})

		switch row.TestNumber {
		case 8, 9, 10, 11:
			totals.approach += value
			counts.approach++
		case 17, 18:
			totals.aroundGreen += value
			counts.aroundGreen++
		case 15, 16:
			totals.putting += value
			counts.putting++
		}
	}

	breakdown := CategoryBreakdown{
		Approach:    round2(safeDiv(totals.approach, counts.approach)),
		AroundGreen: round2(safeDiv(totals.aroundGreen, counts.aroundGreen)),
		Putting:     round2(safeDiv(totals.putting, counts.putting)),
	}

	currentSG := DefaultStartSG
	if len(history) > 0 {
		window := b.recentWindow
		if window > len(history) {
			window = len(history)
		}
		sum := 0.0
		for _, point := range history[:window] {
			sum += point.SG
		}
		currentSG = sum / float64(window)
	}

	startSG := DefaultStartSG
	if len(history) > 0 {
		startSG = history[len(history)-1].SG
	}

	return ViewInput{
		CurrentSG:         round2(currentSG),
		CategoryBreakdown: breakdown,
		History:           history,
		StartSG:           round2(startSG),
	}
}

func (b *Builder) emptyJourney() *SGJourneyData {
	return BuildView(ViewInput{
		CurrentSG:         DefaultStartSG,
		CategoryBreakdown: CategoryBreakdown{},
		History:           nil,
		StartSG:           DefaultStartSG,
	})
}

func safeDiv(total, count float64) float64 {
	if count == 0 {
		return 0
	}
	return total / count
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

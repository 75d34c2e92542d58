// Package sg converts PEI test outcomes into strokes-gained values using
// expected-strokes reference tables keyed by distance and lie.
//
// Formula: SG = (E_before - 1) - E_after, where E_before is the expected
// strokes to hole out from the start position, E_after the expected putts
// from the leave position, and leave = start * (PEI / 100).
package sg

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Lie identifies the starting surface of a shot.
type Lie string

const (
	LieTee      Lie = "tee"
	LieFairway  Lie = "fairway"
	LieRough    Lie = "rough"
	LieBunker   Lie = "bunker"
	LieRecovery Lie = "recovery"
	LieGreen    Lie = "green"
)

// Category buckets a converted shot for aggregation.
type Category string

const (
	CategoryApproach    Category = "approach"
	CategoryAroundGreen Category = "around_green"
	CategoryPutting     Category = "putting"
)

// Table domain limits. The putts table ends at 28m; beyond that a leave
// cannot be valued as a green distance and the shot is unconvertible.
const (
	maxStartDistance = 550.0
	maxLeaveDistance = 28.0
	maxPEI           = 100.0
)

// ErrOutOfDomain signals inputs outside the reference-table domain. The
// caller decides how to degrade; no plausible-looking number is returned.
var ErrOutOfDomain = errors.New("sg: input outside expected-strokes table domain")

type tableEntry struct {
	maxDist  float64
	expected float64
}

// Input is one measured shot outcome.
type Input struct {
	StartDistance float64 // meters
	PEI           float64 // percent of start distance remaining after the shot
	Lie           Lie     // defaults to fairway
}

// Result is the converted strokes-gained breakdown.
type Result struct {
	StrokesGained  float64  `json:"strokes_gained"`
	ExpectedBefore float64  `json:"expected_before"`
	ExpectedAfter  float64  `json:"expected_after"`
	LeaveDistance  float64  `json:"leave_distance"`
	Lie            Lie      `json:"lie"`
	Category       Category `json:"category"`
}

// lerp interpolates linearly between two points.
func lerp(x, x1, y1, x2, y2 float64) float64 {
	if x2 == x1 {
		return y1
	}
	return y1 + (y2-y1)*(x-x1)/(x2-x1)
}

func lookupTable(distance float64, table []tableEntry) float64 {
	if distance <= 0 {
		return table[0].expected
	}
	last := table[len(table)-1]
	if distance >= last.maxDist {
		return last.expected
	}
	for i := 0; i < len(table)-1; i++ {
		if distance <= table[i+1].maxDist {
			return lerp(distance, table[i].maxDist, table[i].expected, table[i+1].maxDist, table[i+1].expected)
		}
	}
	return last.expected
}

// ExpectedPutts returns the expected putts from a green distance in meters.
func ExpectedPutts(leaveDistance float64) float64 {
	return lookupTable(leaveDistance, expectedPutts)
}

// ExpectedStrokes returns the expected strokes to hole out from a distance
// and lie. Green distances are valued with the putting table.
func ExpectedStrokes(distance float64, lie Lie) (float64, error) {
	switch lie {
	case LieGreen:
		return ExpectedPutts(distance), nil
	case LieTee:
		return lookupTable(distance, expectedStrokesTee), nil
	case LieFairway, "":
		return lookupTable(distance, expectedStrokesFairway), nil
	case LieRough:
		return lookupTable(distance, expectedStrokesRough), nil
	case LieBunker:
		return lookupTable(distance, expectedStrokesBunker), nil
	case LieRecovery:
		return lookupTable(distance, expectedStrokesRecovery), nil
	default:
		return 0, ErrOutOfDomain
	}
}

// ShortgameExpected returns the around-the-green expectation and typical
// putts left for a 10-30m shot. Distances are clamped to the table range.
func ShortgameExpected(distance float64, lie Lie) (expected, puttsLeft float64) {
	table := shortgameFairway
	if lie == LieBunker {
		table = shortgameBunker
	}
	d := math.Max(10, math.Min(30, distance))
	for i := 0; i < len(table)-1; i++ {
		if d <= table[i+1].dist {
			t := (d - table[i].dist) / (table[i+1].dist - table[i].dist)
			return table[i].expected + t*(table[i+1].expected-table[i].expected),
				table[i].puttsLeft + t*(table[i+1].puttsLeft-table[i].puttsLeft)
		}
	}
	lastEntry := table[len(table)-1]
	return lastEntry.expected, lastEntry.puttsLeft
}

// Convert turns one measured shot into a strokes-gained value. Inputs
// outside the table domain return ErrOutOfDomain.
func Convert(input Input) (Result, error) {
	lie := input.Lie
	if lie == "" {
		lie = LieFairway
	}

	if input.StartDistance <= 0 || input.StartDistance > maxStartDistance {
		return Result{}, ErrOutOfDomain
	}
	if input.PEI < 0 || input.PEI > maxPEI {
		return Result{}, ErrOutOfDomain
	}

	leaveDistance := input.StartDistance * (input.PEI / 100)
	if leaveDistance > maxLeaveDistance {
		return Result{}, ErrOutOfDomain
	}

	var category Category
	switch {
	case lie == LieGreen:
		category = CategoryPutting
	case input.StartDistance <= 30:
		category = CategoryAroundGreen
	default:
		category = CategoryApproach
	}

	var expectedBefore float64
	if category == CategoryAroundGreen && (lie == LieFairway || lie == LieBunker) {
		expectedBefore, _ = ShortgameExpected(input.StartDistance, lie)
	} else {
		var err error
		expectedBefore, err = ExpectedStrokes(input.StartDistance, lie)
		if err != nil {
			return Result{}, err
		}
	}

	expectedAfter := ExpectedPutts(leaveDistance)

	// The -1 accounts for the stroke already played.
	strokesGained := expectedBefore - 1 - expectedAfter

	return Result{
		StrokesGained:  round3(strokesGained),
		ExpectedBefore: round3(expectedBefore),
		ExpectedAfter:  round3(expectedAfter),
		LeaveDistance:  round2(leaveDistance),
		Lie:            lie,
		Category:       category,
	}, nil
}

// BatchResult aggregates a set of converted shots.
type BatchResult struct {
	Shots                []Result `json:"shots"`
	TotalStrokesGained   float64  `json:"total_strokes_gained"`
	AverageStrokesGained float64  `json:"average_strokes_gained"`
	Category             string   `json:"category"`
}

// ConvertBatch converts per-shot PEI values and aggregates them. Shots
// outside the table domain fail the whole batch; callers with a degrade
// policy should convert shot by shot.
func ConvertBatch(inputs []Input) (BatchResult, error) {
	results := make([]Result, 0, len(inputs))
	total := 0.0
	for _, in := range inputs {
		r, err := Convert(in)
		if err != nil {
			return BatchResult{}, err
		}
		results = append(results, r)
		total += r.StrokesGained
	}

	avg := 0.0
	if len(results) > 0 {
		avg = total / float64(len(results))
	}

	category := "mixed"
	if len(results) > 0 {
		category = string(results[0].Category)
		for _, r := range results[1:] {
			if string(r.Category) != category {
				category = "mixed"
				break
			}
		}
	}

	return BatchResult{
		Shots:                results,
		TotalStrokesGained:   round3(total),
		AverageStrokesGained: round3(avg),
		Category:             category,
	}, nil
}

// PuttingTestResult values a make-rate putting test against tour expectation.
type PuttingTestResult struct {
	StrokesGained    float64 `json:"strokes_gained"`
	ExpectedMakeRate float64 `json:"expected_make_rate"`
	ActualMakeRate   float64 `json:"actual_make_rate"`
}

// ConvertPuttingTest values tests 15/16 (3m and 6m putting) from make
// counts. Missed putts are assumed to leave avgMissDistance meters.
func ConvertPuttingTest(startDistance float64, madeCount, totalAttempts int, avgMissDistance float64) (PuttingTestResult, error) {
	if totalAttempts <= 0 || madeCount < 0 || madeCount > totalAttempts {
		return PuttingTestResult{}, ErrOutOfDomain
	}
	if avgMissDistance <= 0 {
		avgMissDistance = 0.5
	}

	expectedFromStart := ExpectedPutts(startDistance)
	missed := totalAttempts - madeCount

	expectedIfMissed := 1 + ExpectedPutts(avgMissDistance)
	actualStrokes := float64(madeCount) + float64(missed)*expectedIfMissed
	expectedStrokes := float64(totalAttempts) * expectedFromStart

	return PuttingTestResult{
		StrokesGained:    round3(expectedStrokes - actualStrokes),
		ExpectedMakeRate: round2(1 - (expectedFromStart - 1)),
		ActualMakeRate:   round2(float64(madeCount) / float64(totalAttempts)),
	}, nil
}

// Per-category SG standard deviations on the PGA Tour, used to place a
// value on a percentile scale.
var tourStdDev = map[Category]float64{
	CategoryApproach:    0.4,
	CategoryAroundGreen: 0.25,
	CategoryPutting:     0.35,
}

// TourPercentile maps a strokes-gained value to a 0-100 percentile against
// the tour distribution for its category.
func TourPercentile(strokesGained float64, category Category) int {
	stdDev, ok := tourStdDev[category]
	if !ok {
		stdDev = 0.5
	}
	normal := distuv.Normal{Mu: 0, Sigma: stdDev}
	percentile := normal.CDF(strokesGained) * 100
	return int(math.Round(math.Max(0, math.Min(100, percentile))))
}

// BenchmarkLevel names a reference playing standard.
type BenchmarkLevel string

const (
	BenchmarkPGAElite       BenchmarkLevel = "pga_elite"
	BenchmarkPGAAverage     BenchmarkLevel = "pga_average"
	BenchmarkEuropean       BenchmarkLevel = "european"
	BenchmarkAmateurScratch BenchmarkLevel = "amateur_scratch"
	BenchmarkAmateurMid     BenchmarkLevel = "amateur_mid"
)

var tourBenchmarks = map[Category]map[BenchmarkLevel]float64{
	CategoryApproach: {
		BenchmarkPGAElite:       0.8,
		BenchmarkPGAAverage:     0.0,
		BenchmarkEuropean:       -0.1,
		BenchmarkAmateurScratch: -0.3,
		BenchmarkAmateurMid:     -0.8,
	},
	CategoryAroundGreen: {
		BenchmarkPGAElite:       0.5,
		BenchmarkPGAAverage:     0.0,
		BenchmarkEuropean:       -0.05,
		BenchmarkAmateurScratch: -0.2,
		BenchmarkAmateurMid:     -0.5,
	},
	CategoryPutting: {
		BenchmarkPGAElite:       0.6,
		BenchmarkPGAAverage:     0.0,
		BenchmarkEuropean:       -0.05,
		BenchmarkAmateurScratch: -0.15,
		BenchmarkAmateurMid:     -0.4,
	},
}

// TourBenchmark returns the reference SG for a category at a playing level,
// zero when unknown.
func TourBenchmark(category Category, level BenchmarkLevel) float64 {
	if levels, ok := tourBenchmarks[category]; ok {
		return levels[level]
	}
	return 0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

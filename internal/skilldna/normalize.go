package skilldna

import (
	"math"

	"github.com/akgolfgroup/player-insights/internal/models"
)

// testRange is the expected measurement span for one test protocol; values
// normalize linearly onto 0-100 inside it.
type testRange struct {
	min, max      float64
	isLowerBetter bool
}

// Expected ranges per test number, male reference values. Distance in
// meters, speeds in mph (smash factor for test 7), PEI and make rates in
// percent.
var testRanges = map[int]testRange{
	// Distance tests - higher is better
	1: {min: 180, max: 300}, // driver carry
	2: {min: 160, max: 260}, // 3-wood
	3: {min: 140, max: 220}, // long iron
	4: {min: 80, max: 140},  // wedge

	// Speed tests - higher is better
	5: {min: 85, max: 125},    // clubhead speed
	6: {min: 120, max: 185},   // ball speed
	7: {min: 1.35, max: 1.52}, // smash factor

	// Approach PEI tests - lower is better
	8:  {min: 3, max: 25, isLowerBetter: true},
	9:  {min: 5, max: 30, isLowerBetter: true},
	10: {min: 8, max: 35, isLowerBetter: true},
	11: {min: 10, max: 40, isLowerBetter: true},

	// Putting make rates - higher is better
	15: {min: 50, max: 98},
	16: {min: 30, max: 75},

	// Short game PEI - lower is better
	17: {min: 5, max: 35, isLowerBetter: true},
	18: {min: 10, max: 45, isLowerBetter: true},
}

// femaleRangeFactor scales the male reference ranges for female athletes.
const femaleRangeFactor = 0.85

// NormalizeTestValue maps one measurement onto the 0-100 scale for its test
// protocol. Unknown test numbers get the neutral 0-100 span, which is what
// keeps the physical placeholder at 50.
func NormalizeTestValue(testNumber int, value float64, gender models.Gender) int {
	r, ok := testRanges[testNumber]
	min, max := r.min, r.max
	if !ok {
		// Neutral span for unknown protocols; gender scaling only applies
		// to calibrated reference ranges.
		min, max = 0, 100
	} else if gender == models.GenderFemale {
		min *= femaleRangeFactor
		max *= femaleRangeFactor
	}

	span := max - min
	if span == 0 {
		return 50
	}

	var normalized float64
	if r.isLowerBetter {
		normalized = (max - value) / span * 100
	} else {
		normalized = (value - min) / span * 100
	}

	return int(math.Min(100, math.Max(0, math.Round(normalized))))
}

// testValue is one (testNumber, value) pair feeding a dimension.
type testValue struct {
	testNumber int
	value      float64
	weight     float64
}

// dimensionScore averages the normalized test values; 50 when no tests
// feed the dimension.
func dimensionScore(tests []testValue, gender models.Gender) int {
	if len(tests) == 0 {
		return 50
	}

	totalWeight, weightedSum := 0.0, 0.0
	for _, test := range tests {
		weight := test.weight
		if weight == 0 {
			weight = 1
		}
		weightedSum += float64(NormalizeTestValue(test.testNumber, test.value, gender)) * weight
		totalWeight += weight
	}

	return int(math.Round(weightedSum / totalWeight))
}

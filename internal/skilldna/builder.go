// Package skilldna builds a six-dimension skill fingerprint from a player's
// latest test results and matches it against professional reference
// profiles.
package skilldna

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/akgolfgroup/player-insights/internal/models"
	"github.com/akgolfgroup/player-insights/internal/repository"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"
)

// Dimension identifies one of the six fixed skill dimensions.
type Dimension string

const (
	DimensionDistance  Dimension = "distance"
	DimensionSpeed     Dimension = "speed"
	DimensionAccuracy  Dimension = "accuracy"
	DimensionShortGame Dimension = "shortGame"
	DimensionPutting   Dimension = "putting"
	DimensionPhysical  Dimension = "physical"
)

// Dimensions is the fixed profile order; every profile carries exactly
// these six, regardless of data completeness.
var Dimensions = []Dimension{
	DimensionDistance,
	DimensionSpeed,
	DimensionAccuracy,
	DimensionShortGame,
	DimensionPutting,
	DimensionPhysical,
}

// physicalPlaceholder stands in while no physical test protocol exists;
// 50 reads as "average".
const (
	physicalPlaceholderTest  = 99
	physicalPlaceholderValue = 50.0
)

var dimensionLabels = map[Dimension]struct {
	name   string
	nameNo string
	unit   string
}{
	DimensionDistance:  {"Distance", "Lengde", "m"},
	DimensionSpeed:     {"Speed", "Hastighet", "mph"},
	DimensionAccuracy:  {"Accuracy", "Presisjon", "PEI %"},
	DimensionShortGame: {"Short Game", "Kortspill", "PEI %"},
	DimensionPutting:   {"Putting", "Putting", "% make"},
	DimensionPhysical:  {"Physical", "Fysisk", "mixed"},
}

// Matching weights: precision skills separate playing styles more than raw
// physical capacity does.
var matchWeights = map[Dimension]float64{
	DimensionDistance:  1.2,
	DimensionSpeed:     1.2,
	DimensionAccuracy:  1.5,
	DimensionShortGame: 1.3,
	DimensionPutting:   1.4,
	DimensionPhysical:  0.8,
}

// Trend direction of a dimension relative to a previous profile.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

// SkillDimension is one scored dimension of the profile.
type SkillDimension struct {
	ID          Dimension `json:"id"`
	Name        string    `json:"name"`
	NameNo      string    `json:"name_no"`
	Score       int       `json:"score"`
	RawValue    float64   `json:"raw_value"`
	Unit        string    `json:"unit"`
	TestNumbers []int     `json:"test_numbers"`
	Trend       Trend     `json:"trend"`
}

// ProMatch is one ranked reference-profile match.
type ProMatch struct {
	ProID             string      `json:"pro_id"`
	ProName           string      `json:"pro_name"`
	Tour              string      `json:"tour"`
	SimilarityScore   int         `json:"similarity_score"`
	MatchedDimensions []Dimension `json:"matched_dimensions"`
	DevelopmentAreas  []Dimension `json:"development_areas"`
	Insight           string      `json:"insight"`
}

// SkillDNAProfile is the assembled fingerprint.
type SkillDNAProfile struct {
	PlayerID     uuid.UUID                    `json:"player_id"`
	Gender       models.Gender                `json:"gender"`
	Dimensions   map[Dimension]SkillDimension `json:"dimensions"`
	OverallScore int                          `json:"overall_score"`
	BalanceScore int                          `json:"balance_score"`
	Strengths    []Dimension                  `json:"strengths"`
	Weaknesses   []Dimension                  `json:"weaknesses"`
	ProMatches   []ProMatch                   `json:"pro_matches"`
	ProfileDate  time.Time                    `json:"profile_date"`
}

// Builder assembles skill DNA profiles.
type Builder struct {
	results    repository.TestResultReader
	players    repository.PlayerReader
	matchLimit int
	// previous profile provider is optional; nil disables trends
	previous func(playerID uuid.UUID) *SkillDNAProfile
}

// NewBuilder wires the builder. matchLimit <= 0 defaults to 3.
func NewBuilder(results repository.TestResultReader, players repository.PlayerReader, matchLimit int) *Builder {
	if matchLimit <= 0 {
		matchLimit = 3
	}
	return &Builder{results: results, players: players, matchLimit: matchLimit}
}

// WithPreviousProfiles enables dimension trends against earlier profiles.
func (b *Builder) WithPreviousProfiles(fn func(playerID uuid.UUID) *SkillDNAProfile) *Builder {
	b.previous = fn
	return b
}

// dimensionTests maps each dimension to the test numbers that feed it.
var dimensionTests = map[Dimension][]int{
	DimensionDistance:  models.DistanceTestNumbers,
	DimensionSpeed:     models.SpeedTestNumbers,
	DimensionAccuracy:  models.ApproachTestNumbers,
	DimensionShortGame: models.ShortGameTestNumbers,
	DimensionPutting:   models.PuttingTestNumbers,
	DimensionPhysical:  nil, // no protocol yet; placeholder applies
}

// BuildProfile assembles the player's skill DNA from the latest result per
// test. The profile always carries all six dimensions; missing data
// degrades to placeholder scores, never to absent dimensions.
func (b *Builder) BuildProfile(ctx context.Context, playerID uuid.UUID) (*SkillDNAProfile, error) {
	player, err := b.players.ByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve player: %w", err)
	}
	gender := player.NormalizedGender()

	rows, err := b.results.ByPlayer(ctx, playerID, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch test results: %w", err)
	}

	// Rows arrive newest-first; keep the first occurrence per test number.
	latest := make(map[int]models.TestResult)
	for _, row := range rows {
		if _, seen := latest[row.TestNumber]; !seen {
			latest[row.TestNumber] = row
		}
	}

	hasAnyData := len(latest) > 0

	dims := make(map[Dimension]SkillDimension, len(Dimensions))
	for _, dim := range Dimensions {
		tests := collectDimensionTests(dim, latest)
		score := dimensionScore(tests, gender)

		rawSum := 0.0
		seenTests := make([]int, 0, len(tests))
		for _, test := range tests {
			rawSum += test.value
			seenTests = append(seenTests, test.testNumber)
		}
		rawValue := 0.0
		if len(tests) > 0 {
			rawValue = math.Round(rawSum/float64(len(tests))*10) / 10
		}

		dims[dim] = SkillDimension{
			ID:          dim,
			Name:        dimensionLabels[dim].name,
			NameNo:      dimensionLabels[dim].nameNo,
			Score:       score,
			RawValue:    rawValue,
			Unit:        dimensionLabels[dim].unit,
			TestNumbers: seenTests,
			Trend:       TrendStable,
		}
	}

	if b.previous != nil {
		if prev := b.previous(playerID); prev != nil {
			for dim, current := range dims {
				if prevDim, ok := prev.Dimensions[dim]; ok {
					switch {
					case current.Score > prevDim.Score+3:
						current.Trend = TrendImproving
					case current.Score < prevDim.Score-3:
						current.Trend = TrendDeclining
					}
					dims[dim] = current
				}
			}
		}
	}

	scores := make([]float64, 0, len(Dimensions))
	for _, dim := range Dimensions {
		scores = append(scores, float64(dims[dim].Score))
	}

	var strengths, weaknesses []Dimension
	if hasAnyData {
		strengths = rankDimensions(dims, false)
		weaknesses = rankDimensions(dims, true)
	}

	profile := &SkillDNAProfile{
		PlayerID:     playerID,
		Gender:       gender,
		Dimensions:   dims,
		OverallScore: int(math.Round(stat.Mean(scores, nil))),
		BalanceScore: balanceScore(scores),
		Strengths:    strengths,
		Weaknesses:   weaknesses,
		ProMatches:   FindProMatches(dims, gender, b.matchLimit),
		ProfileDate:  time.Now().UTC(),
	}
	return profile, nil
}

func collectDimensionTests(dim Dimension, latest map[int]models.TestResult) []testValue {
	if dim == DimensionPhysical {
		// TODO: wire tests 19-25 once the physical protocol ships.
		return []testValue{{testNumber: physicalPlaceholderTest, value: physicalPlaceholderValue}}
	}

	tests := make([]testValue, 0, 4)
	for _, testNum := range dimensionTests[dim] {
		row, ok := latest[testNum]
		if !ok {
			continue
		}
		value := row.Value
		if dim == DimensionAccuracy {
			value = row.EffectiveValue()
		}
		tests = append(tests, testValue{testNumber: testNum, value: value})
	}
	return tests
}

// rankDimensions sorts the six dimensions by score, descending for
// strengths and ascending for weaknesses, with ties kept in profile order.
func rankDimensions(dims map[Dimension]SkillDimension, ascending bool) []Dimension {
	ranked := make([]Dimension, len(Dimensions))
	copy(ranked, Dimensions)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := dims[ranked[i]].Score, dims[ranked[j]].Score
		if ascending {
			return a < b
		}
		return a > b
	})
	return ranked
}

// balanceScore reads the spread of the six scores: 100 is perfectly even,
// 0 means a standard deviation of 30 or more.
func balanceScore(scores []float64) int {
	if len(scores) == 0 {
		return 50
	}
	stdDev := stat.StdDev(scores, nil)
	// stat.StdDev uses the sample estimator; the profile is the full
	// population of six dimensions.
	stdDev *= math.Sqrt(float64(len(scores)-1) / float64(len(scores)))
	score := math.Max(0, 100-stdDev/30*100)
	return int(math.Round(score))
}

// Similarity computes the weighted-Euclidean similarity (0-100) between a
// player vector and a pro vector; unset dimensions read as 50.
func Similarity(player map[Dimension]SkillDimension, pro map[Dimension]int) int {
	sumSquaredDiff, totalWeight := 0.0, 0.0
	for _, dim := range Dimensions {
		playerScore := 50.0
		if d, ok := player[dim]; ok {
			playerScore = float64(d.Score)
		}
		proScore := 50.0
		if s, ok := pro[dim]; ok {
			proScore = float64(s)
		}
		weight := matchWeights[dim]
		if weight == 0 {
			weight = 1
		}
		diff := playerScore - proScore
		sumSquaredDiff += diff * diff * weight
		totalWeight += weight
	}

	distance := math.Sqrt(sumSquaredDiff / totalWeight)
	similarity := math.Max(0, 100-distance)
	return int(math.Round(similarity))
}

// strongThreshold marks a dimension as a shared strength or weakness when
// comparing against a pro.
const strongThreshold = 70

// FindProMatches ranks the gender-matched reference profiles by similarity
// and returns the top matches.
func FindProMatches(player map[Dimension]SkillDimension, gender models.Gender, limit int) []ProMatch {
	catalog := ProCatalog(gender)
	matches := make([]ProMatch, 0, len(catalog))

	for _, pro := range catalog {
		similarity := Similarity(player, pro.Dimensions)

		var matched, development []Dimension
		for _, dim := range Dimensions {
			playerScore := player[dim].Score
			proScore := pro.Dimensions[dim]
			if playerScore >= strongThreshold && proScore >= strongThreshold {
				matched = append(matched, dim)
			}
			if playerScore < strongThreshold && proScore < strongThreshold {
				development = append(development, dim)
			}
		}

		matches = append(matches, ProMatch{
			ProID:             pro.ID,
			ProName:           pro.Name,
			Tour:              pro.Tour,
			SimilarityScore:   similarity,
			MatchedDimensions: matched,
			DevelopmentAreas:  development,
			Insight:           matchInsight(pro, similarity),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].SimilarityScore > matches[j].SimilarityScore
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func matchInsight(pro ProPlayerDNA, similarity int) string {
	switch {
	case similarity >= 80:
		return fmt.Sprintf("Du har en veldig lik spillestil som %s. Fokuser på %s for videre utvikling.",
			pro.Name, pro.FamousFor)
	case similarity >= 65:
		top := topProDimension(pro)
		return fmt.Sprintf("%s har utviklet %s til elite-nivå. Dette kan være veien for deg også.",
			pro.Name, dimensionLabels[top].nameNo)
	default:
		return fmt.Sprintf("Selv om profilen er annerledes, kan du lære av %ss %s.",
			pro.Name, pro.PlayStyle)
	}
}

func topProDimension(pro ProPlayerDNA) Dimension {
	top := Dimensions[0]
	for _, dim := range Dimensions[1:] {
		if pro.Dimensions[dim] > pro.Dimensions[top] {
			top = dim
		}
	}
	return top
}

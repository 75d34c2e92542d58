package bounty

// Difficulty grades a bounty by the improvement it demands.
type Difficulty string

const (
	DifficultyEasy      Difficulty = "easy"
	DifficultyMedium    Difficulty = "medium"
	DifficultyHard      Difficulty = "hard"
	DifficultyLegendary Difficulty = "legendary"
)

var difficultyOrder = map[Difficulty]int{
	DifficultyEasy:      0,
	DifficultyMedium:    1,
	DifficultyHard:      2,
	DifficultyLegendary: 3,
}

// TemplateCategory groups templates for board presentation.
type TemplateCategory string

const (
	CategoryApproach    TemplateCategory = "approach"
	CategoryPutting     TemplateCategory = "putting"
	CategoryShortGame   TemplateCategory = "shortGame"
	CategoryDriving     TemplateCategory = "driving"
	CategoryPhysical    TemplateCategory = "physical"
	CategoryConsistency TemplateCategory = "consistency"
)

// Exercise is a recommended drill attached to a template.
type Exercise struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Frequency   string `json:"frequency"`
}

// Template is a static catalog entry a breaking point instantiates into.
type Template struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	TitleNo       string           `json:"title_no"`
	Description   string           `json:"description"`
	DescriptionNo string           `json:"description_no"`
	Category      TemplateCategory `json:"category"`
	Metric        string           `json:"metric"`
	MetricLabel   string           `json:"metric_label"`
	Unit          string           `json:"unit"`
	IsLowerBetter bool             `json:"is_lower_better"`
	Exercises     []Exercise       `json:"exercises"`
}

var templates = map[string]Template{
	"approach_25m": {
		ID:            "approach_25m",
		Title:         "Short Approach Master",
		TitleNo:       "25m Approach-mester",
		Description:   "Improve your 25m approach shots",
		DescriptionNo: "Forbedre dine 25m approach-slag",
		Category:      CategoryApproach,
		Metric:        "pei_25m",
		MetricLabel:   "PEI 25m",
		Unit:          "%",
		IsLowerBetter: true,
		Exercises: []Exercise{
			{ID: "ex1", Name: "Landing Zone Drill", Description: "Sikt på 1m² mål", Frequency: "20 baller/dag"},
			{ID: "ex2", Name: "Distance Control", Description: "Veksle mellom 20m, 25m, 30m", Frequency: "15 min/økt"},
		},
	},
	"approach_50m": {
		ID:            "approach_50m",
		Title:         "Mid Approach Precision",
		TitleNo:       "50m Presisjon",
		Description:   "Sharpen your 50m approach accuracy",
		DescriptionNo: "Skjerp din 50m approach-presisjon",
		Category:      CategoryApproach,
		Metric:        "pei_50m",
		MetricLabel:   "PEI 50m",
		Unit:          "%",
		IsLowerBetter: true,
		Exercises: []Exercise{
			{ID: "ex1", Name: "50m Stock Shot", Description: "Etabler konsistent 50m slag", Frequency: "25 baller/dag"},
			{ID: "ex2", Name: "Trajectory Control", Description: "Høy, middels, lav bane", Frequency: "10 av hver"},
		},
	},
	"approach_75m": {
		ID:            "approach_75m",
		Title:         "Gap Wedge Excellence",
		TitleNo:       "75m Excellence",
		Description:   "Master the 75m approach",
		DescriptionNo: "Mestre 75m approach-slaget",
		Category:      CategoryApproach,
		Metric:        "pei_75m",
		MetricLabel:   "PEI 75m",
		Unit:          "%",
		IsLowerBetter: true,
		Exercises: []Exercise{
			{ID: "ex1", Name: "75m Targets", Description: "Sikt på forskjellige mål", Frequency: "30 baller/dag"},
			{ID: "ex2", Name: "Pressure Drill", Description: "5 baller, tell treff innen 5m", Frequency: "3 runder/økt"},
		},
	},
	"approach_100m": {
		ID:            "approach_100m",
		Title:         "Full Wedge Command",
		TitleNo:       "100m Kommando",
		Description:   "Command your full wedge shots",
		DescriptionNo: "Ta kontroll over full wedge",
		Category:      CategoryApproach,
		Metric:        "pei_100m",
		MetricLabel:   "PEI 100m",
		Unit:          "%",
		IsLowerBetter: true,
		Exercises: []Exercise{
			{ID: "ex1", Name: "Distance Ladder", Description: "90m, 95m, 100m, 105m", Frequency: "20 baller/dag"},
			{ID: "ex2", Name: "Wind Adjustment", Description: "Tren med vindpåvirkning", Frequency: "15 min/økt"},
		},
	},
	"putting_3m": {
		ID:            "putting_3m",
		Title:         "Gimme Range",
		TitleNo:       "3m Putt-sikkerhet",
		Description:   "Never miss inside 3 meters",
		DescriptionNo: "Aldri miss innenfor 3 meter",
		Category:      CategoryPutting,
		Metric:        "make_rate_3m",
		MetricLabel:   "Make rate 3m",
		Unit:          "%",
		IsLowerBetter: false,
		Exercises: []Exercise{
			{ID: "ex1", Name: "Gate Drill", Description: "Putt gjennom tees-gate", Frequency: "50 putter/dag"},
			{ID: "ex2", Name: "Circle Drill", Description: "10 baller rundt hullet", Frequency: "3 runder"},
		},
	},
	"putting_6m": {
		ID:            "putting_6m",
		Title:         "Mid Range Putter",
		TitleNo:       "6m Putt-mester",
		Description:   "Improve 6m putting percentage",
		DescriptionNo: "Forbedre 6m putt-prosent",
		Category:      CategoryPutting,
		Metric:        "make_rate_6m",
		MetricLabel:   "Make rate 6m",
		Unit:          "%",
		IsLowerBetter: false,
		Exercises: []Exercise{
			{ID: "ex1", Name: "Lag Putting", Description: "Fokus på avstand først", Frequency: "30 putter/dag"},
			{ID: "ex2", Name: "Line Drill", Description: "Chalk line for startlinje", Frequency: "20 putter"},
		},
	},
	"three_putt": {
		ID:            "three_putt",
		Title:         "3-Putt Eliminator",
		TitleNo:       "3-Putt Eliminator",
		Description:   "Reduce three-putt percentage",
		DescriptionNo: "Reduser tre-putt prosent",
		Category:      CategoryPutting,
		Metric:        "three_putt_rate",
		MetricLabel:   "3-putt rate",
		Unit:          "%",
		IsLowerBetter: true,
		Exercises: []Exercise{
			{ID: "ex1", Name: "Lag Zone", Description: "Alle førsteputt innen 1m", Frequency: "20 langputt/dag"},
			{ID: "ex2", Name: "Distance Control", Description: "Putt til frisbee 10-15m", Frequency: "15 putter"},
		},
	},
	"chipping": {
		ID:            "chipping",
		Title:         "Chip Shot Artist",
		TitleNo:       "Chip-kunstner",
		Description:   "Master your chipping proximity",
		DescriptionNo: "Mestre chip-presisjon",
		Category:      CategoryShortGame,
		Metric:        "pei_chip",
		MetricLabel:   "Chip PEI",
		Unit:          "%",
		IsLowerBetter: true,
		Exercises: []Exercise{
			{ID: "ex1", Name: "Towel Drill", Description: "Land på håndkle ved hull", Frequency: "30 chips/dag"},
			{ID: "ex2", Name: "One Club Challenge", Description: "Alle chips med 56°", Frequency: "20 chips"},
		},
	},
	"bunker": {
		ID:            "bunker",
		Title:         "Bunker Escape",
		TitleNo:       "Bunker-flukt",
		Description:   "Improve bunker shot consistency",
		DescriptionNo: "Forbedre bunker-konsistens",
		Category:      CategoryShortGame,
		Metric:        "pei_bunker",
		MetricLabel:   "Bunker PEI",
		Unit:          "%",
		IsLowerBetter: true,
		Exercises: []Exercise{
			{ID: "ex1", Name: "Line in Sand", Description: "Konsistent sand-kontakt", Frequency: "25 slag/dag"},
			{ID: "ex2", Name: "Variable Lies", Description: "Tren fra ulike lies", Frequency: "15 min/økt"},
		},
	},
	"up_and_down": {
		ID:            "up_and_down",
		Title:         "Scramble King",
		TitleNo:       "Scramble-kongen",
		Description:   "Increase up-and-down percentage",
		DescriptionNo: "Øk up-and-down prosent",
		Category:      CategoryShortGame,
		Metric:        "up_and_down_rate",
		MetricLabel:   "Up & Down %",
		Unit:          "%",
		IsLowerBetter: false,
		Exercises: []Exercise{
			{ID: "ex1", Name: "Par Save Drill", Description: "Simuler banespill", Frequency: "10 situasjoner/dag"},
			{ID: "ex2", Name: "Random Lies", Description: "Tilfeldig drop rundt green", Frequency: "15 min/økt"},
		},
	},
	"driver_accuracy": {
		ID:            "driver_accuracy",
		Title:         "Fairway Finder",
		TitleNo:       "Fairway-finner",
		Description:   "Improve driving accuracy",
		DescriptionNo: "Forbedre driver-presisjon",
		Category:      CategoryDriving,
		Metric:        "fairway_hit_rate",
		MetricLabel:   "Fairway %",
		Unit:          "%",
		IsLowerBetter: false,
		Exercises: []Exercise{
			{ID: "ex1", Name: "Corridor Drill", Description: "Sikt på 30m bred korridor", Frequency: "20 drives/dag"},
			{ID: "ex2", Name: "80% Swing", Description: "Kontrollert tempo", Frequency: "15 drives"},
		},
	},
	"driver_dispersion": {
		ID:            "driver_dispersion",
		Title:         "Tight Dispersion",
		TitleNo:       "Stram spredning",
		Description:   "Reduce driving dispersion",
		DescriptionNo: "Reduser driver-spredning",
		Category:      CategoryDriving,
		Metric:        "dispersion",
		MetricLabel:   "Spredning",
		Unit:          "m",
		IsLowerBetter: true,
		Exercises: []Exercise{
			{ID: "ex1", Name: "Same Target", Description: "20 slag mot samme mål", Frequency: "20 drives/dag"},
			{ID: "ex2", Name: "Shot Shape", Description: "Konsistent draw/fade", Frequency: "10 av hver"},
		},
	},
	"driver_speed": {
		ID:            "driver_speed",
		Title:         "Speed Demon",
		TitleNo:       "Hastighets-demon",
		Description:   "Increase driver clubhead speed",
		DescriptionNo: "Øk driver-hastighet",
		Category:      CategoryPhysical,
		Metric:        "driver_speed",
		MetricLabel:   "Driver CHS",
		Unit:          "mph",
		IsLowerBetter: false,
		Exercises: []Exercise{
			{ID: "ex1", Name: "Overspeed Training", Description: "Lett kølle, maks hastighet", Frequency: "10 swings/dag"},
			{ID: "ex2", Name: "Step Drill", Description: "Step-through for ground force", Frequency: "15 swings"},
		},
	},
	"preshot_routine": {
		ID:            "preshot_routine",
		Title:         "Routine Master",
		TitleNo:       "Rutine-mester",
		Description:   "Establish consistent pre-shot routine",
		DescriptionNo: "Etabler konsistent pre-shot rutine",
		Category:      CategoryConsistency,
		Metric:        "routine_compliance",
		MetricLabel:   "Rutine %",
		Unit:          "%",
		IsLowerBetter: false,
		Exercises: []Exercise{
			{ID: "ex1", Name: "Timer Drill", Description: "Samme tid hver gang", Frequency: "Alle slag"},
			{ID: "ex2", Name: "Video Check", Description: "Film og evaluer rutine", Frequency: "1x/uke"},
		},
	},
}

// TemplateByID resolves a catalog entry.
func TemplateByID(id string) (Template, bool) {
	t, ok := templates[id]
	return t, ok
}

// XP rewards and estimated durations per difficulty.
var xpConfig = map[Difficulty]struct {
	base       int
	speedBonus int
}{
	DifficultyEasy:      {base: 150, speedBonus: 75},
	DifficultyMedium:    {base: 300, speedBonus: 150},
	DifficultyHard:      {base: 500, speedBonus: 250},
	DifficultyLegendary: {base: 1000, speedBonus: 500},
}

var estimatedDays = map[Difficulty]int{
	DifficultyEasy:      14,
	DifficultyMedium:    28,
	DifficultyHard:      42,
	DifficultyLegendary: 90,
}

// Difficulty thresholds, in percent improvement required.
const (
	easyThreshold   = 15
	mediumThreshold = 30
	hardThreshold   = 50
)

// CalculateDifficulty grades the improvement a breaking point demands.
func CalculateDifficulty(baseline, target float64, isLowerBetter bool) Difficulty {
	var percentImprovement float64
	if baseline != 0 {
		if isLowerBetter {
			percentImprovement = (baseline - target) / baseline * 100
		} else {
			percentImprovement = (target - baseline) / baseline * 100
		}
	} else if target != baseline {
		percentImprovement = 100
	}

	switch {
	case percentImprovement < easyThreshold:
		return DifficultyEasy
	case percentImprovement < mediumThreshold:
		return DifficultyMedium
	case percentImprovement < hardThreshold:
		return DifficultyHard
	default:
		return DifficultyLegendary
	}
}

// HunterRank is one step of the gamified rank ladder.
type HunterRank struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	NameNo      string `json:"name_no"`
	MinBounties int    `json:"min_bounties"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

var hunterRanks = []HunterRank{
	{ID: "rookie", Name: "Rookie Hunter", NameNo: "Nybegynner", MinBounties: 0, Icon: "🎯", Color: "#9CA3AF"},
	{ID: "bronze", Name: "Bronze Hunter", NameNo: "Bronse-jeger", MinBounties: 5, Icon: "🥉", Color: "#CD7F32"},
	{ID: "silver", Name: "Silver Hunter", NameNo: "Sølv-jeger", MinBounties: 15, Icon: "🥈", Color: "#C0C0C0"},
	{ID: "gold", Name: "Gold Hunter", NameNo: "Gull-jeger", MinBounties: 30, Icon: "🥇", Color: "#FFD700"},
	{ID: "platinum", Name: "Platinum Hunter", NameNo: "Platinum-jeger", MinBounties: 50, Icon: "💎", Color: "#E5E4E2"},
	{ID: "legendary", Name: "Legendary Hunter", NameNo: "Legendarisk", MinBounties: 100, Icon: "👑", Color: "#9333EA"},
}

// HunterRankFor returns the rank earned by a completed-bounty count.
func HunterRankFor(completed int) HunterRank {
	for i := len(hunterRanks) - 1; i >= 0; i-- {
		if completed >= hunterRanks[i].MinBounties {
			return hunterRanks[i]
		}
	}
	return hunterRanks[0]
}

// BountiesToNextRank returns how many completions the next rank needs;
// zero at the top rank.
func BountiesToNextRank(completed int) int {
	current := HunterRankFor(completed)
	for i, rank := range hunterRanks {
		if rank.ID == current.ID {
			if i >= len(hunterRanks)-1 {
				return 0
			}
			return hunterRanks[i+1].MinBounties - completed
		}
	}
	return 0
}

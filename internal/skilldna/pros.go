package skilldna

import "github.com/akgolfgroup/player-insights/internal/models"

// ProPlayerDNA is a static reference vector for a professional player,
// scored 0-100 on the same six dimensions as athlete profiles.
type ProPlayerDNA struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Tour       string            `json:"tour"`
	Dimensions map[Dimension]int `json:"dimensions"`
	PlayStyle  string            `json:"play_style"`
	FamousFor  string            `json:"famous_for"`
}

var proPlayersMale = []ProPlayerDNA{
	{
		ID:   "viktor_hovland",
		Name: "Viktor Hovland",
		Tour: "PGA",
		Dimensions: map[Dimension]int{
			DimensionDistance: 78, DimensionSpeed: 82, DimensionAccuracy: 70,
			DimensionShortGame: 65, DimensionPutting: 75, DimensionPhysical: 80,
		},
		PlayStyle: "Power-fade med sterk putting",
		FamousFor: "Konsistent ballstriking og mental styrke",
	},
	{
		ID:   "collin_morikawa",
		Name: "Collin Morikawa",
		Tour: "PGA",
		Dimensions: map[Dimension]int{
			DimensionDistance: 68, DimensionSpeed: 70, DimensionAccuracy: 92,
			DimensionShortGame: 78, DimensionPutting: 72, DimensionPhysical: 65,
		},
		PlayStyle: "Presisjons-orientert med elite iron play",
		FamousFor: "Beste iron-spiller på tour, eksepsjonell accuracy",
	},
	{
		ID:   "rory_mcilroy",
		Name: "Rory McIlroy",
		Tour: "PGA",
		Dimensions: map[Dimension]int{
			DimensionDistance: 95, DimensionSpeed: 95, DimensionAccuracy: 72,
			DimensionShortGame: 70, DimensionPutting: 68, DimensionPhysical: 88,
		},
		PlayStyle: "Aggressiv power-golf",
		FamousFor: "Enorm lengde og atletisk swing",
	},
	{
		ID:   "matt_fitzpatrick",
		Name: "Matt Fitzpatrick",
		Tour: "PGA",
		Dimensions: map[Dimension]int{
			DimensionDistance: 62, DimensionSpeed: 65, DimensionAccuracy: 85,
			DimensionShortGame: 82, DimensionPutting: 78, DimensionPhysical: 70,
		},
		PlayStyle: "Teknisk presis course management",
		FamousFor: "Forbedret lengde gjennom Speed Training, US Open-vinner",
	},
	{
		ID:   "scottie_scheffler",
		Name: "Scottie Scheffler",
		Tour: "PGA",
		Dimensions: map[Dimension]int{
			DimensionDistance: 82, DimensionSpeed: 85, DimensionAccuracy: 88,
			DimensionShortGame: 80, DimensionPutting: 85, DimensionPhysical: 78,
		},
		PlayStyle: "Komplett spiller med sterk mental game",
		FamousFor: "Verdensener, balansert elite-nivå på alle områder",
	},
	{
		ID:   "jon_rahm",
		Name: "Jon Rahm",
		Tour: "PGA",
		Dimensions: map[Dimension]int{
			DimensionDistance: 85, DimensionSpeed: 88, DimensionAccuracy: 80,
			DimensionShortGame: 75, DimensionPutting: 82, DimensionPhysical: 85,
		},
		PlayStyle: "Kraftfull og lidenskapelig",
		FamousFor: "Eksplosiv kraft og clutch putting",
	},
	{
		ID:   "jordan_spieth",
		Name: "Jordan Spieth",
		Tour: "PGA",
		Dimensions: map[Dimension]int{
			DimensionDistance: 65, DimensionSpeed: 68, DimensionAccuracy: 72,
			DimensionShortGame: 90, DimensionPutting: 92, DimensionPhysical: 62,
		},
		PlayStyle: "Kreativ scoring og elite putting",
		FamousFor: "Beste putter på tour, utrolig touch rundt green",
	},
	{
		ID:   "xander_schauffele",
		Name: "Xander Schauffele",
		Tour: "PGA",
		Dimensions: map[Dimension]int{
			DimensionDistance: 80, DimensionSpeed: 82, DimensionAccuracy: 82,
			DimensionShortGame: 78, DimensionPutting: 80, DimensionPhysical: 75,
		},
		PlayStyle: "Allround excellence",
		FamousFor: "Ingen svakheter, sterk i majors",
	},
	{
		ID:   "ludvig_aberg",
		Name: "Ludvig Åberg",
		Tour: "PGA",
		Dimensions: map[Dimension]int{
			DimensionDistance: 88, DimensionSpeed: 90, DimensionAccuracy: 78,
			DimensionShortGame: 72, DimensionPutting: 75, DimensionPhysical: 85,
		},
		PlayStyle: "Moderne power-golf med teknisk fundament",
		FamousFor: "Raskeste stigning til verdenstoppen, svensk wunderkind",
	},
	{
		ID:   "tommy_fleetwood",
		Name: "Tommy Fleetwood",
		Tour: "PGA",
		Dimensions: map[Dimension]int{
			DimensionDistance: 72, DimensionSpeed: 75, DimensionAccuracy: 80,
			DimensionShortGame: 85, DimensionPutting: 78, DimensionPhysical: 68,
		},
		PlayStyle: "Elegant swing med sterk short game",
		FamousFor: "Stilren teknikk og konsistens",
	},
}

var proPlayersFemale = []ProPlayerDNA{
	{
		ID:   "nelly_korda",
		Name: "Nelly Korda",
		Tour: "LPGA",
		Dimensions: map[Dimension]int{
			DimensionDistance: 88, DimensionSpeed: 86, DimensionAccuracy: 85,
			DimensionShortGame: 78, DimensionPutting: 82, DimensionPhysical: 84,
		},
		PlayStyle: "Atletisk power-golf med ren teknikk",
		FamousFor: "Verdensener med komplett spill",
	},
	{
		ID:   "lydia_ko",
		Name: "Lydia Ko",
		Tour: "LPGA",
		Dimensions: map[Dimension]int{
			DimensionDistance: 68, DimensionSpeed: 70, DimensionAccuracy: 84,
			DimensionShortGame: 88, DimensionPutting: 90, DimensionPhysical: 66,
		},
		PlayStyle: "Presisjon og scoring rundt green",
		FamousFor: "Elite putting og kortspill",
	},
	{
		ID:   "jin_young_ko",
		Name: "Jin Young Ko",
		Tour: "LPGA",
		Dimensions: map[Dimension]int{
			DimensionDistance: 72, DimensionSpeed: 74, DimensionAccuracy: 92,
			DimensionShortGame: 80, DimensionPutting: 84, DimensionPhysical: 70,
		},
		PlayStyle: "Fairway-maskin med jernkontroll",
		FamousFor: "Historisk treffsikkerhet fra tee og fairway",
	},
	{
		ID:   "minjee_lee",
		Name: "Minjee Lee",
		Tour: "LPGA",
		Dimensions: map[Dimension]int{
			DimensionDistance: 76, DimensionSpeed: 76, DimensionAccuracy: 86,
			DimensionShortGame: 82, DimensionPutting: 78, DimensionPhysical: 74,
		},
		PlayStyle: "Balansert allround-spill",
		FamousFor: "Konsistens i majors",
	},
	{
		ID:   "brooke_henderson",
		Name: "Brooke Henderson",
		Tour: "LPGA",
		Dimensions: map[Dimension]int{
			DimensionDistance: 82, DimensionSpeed: 84, DimensionAccuracy: 76,
			DimensionShortGame: 76, DimensionPutting: 80, DimensionPhysical: 78,
		},
		PlayStyle: "Aggressivt angrepsspill",
		FamousFor: "Lang og fryktløs med draiveren",
	},
	{
		ID:   "atthaya_thitikul",
		Name: "Atthaya Thitikul",
		Tour: "LPGA",
		Dimensions: map[Dimension]int{
			DimensionDistance: 74, DimensionSpeed: 76, DimensionAccuracy: 82,
			DimensionShortGame: 84, DimensionPutting: 86, DimensionPhysical: 72,
		},
		PlayStyle: "Moden scoring og touch",
		FamousFor: "Yngste verdensener noensinne",
	},
}

// ProCatalog returns the reference set for a gender partition.
func ProCatalog(gender models.Gender) []ProPlayerDNA {
	if gender == models.GenderFemale {
		return proPlayersFemale
	}
	return proPlayersMale
}

package bounty

import "strings"

// mappingRule binds a predicate over the lowercased breaking point text to
// a template. Rules are evaluated in order and the first hit wins, so the
// specific distance phrases sit above the coarse category fallbacks.
type mappingRule struct {
	templateID string
	matches    func(area, category string) bool
}

func containsAny(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

var mappingRules = []mappingRule{
	{"approach_25m", func(area, _ string) bool { return containsAny(area, "25m", "25 m") }},
	{"approach_50m", func(area, _ string) bool { return containsAny(area, "50m", "50 m") }},
	{"approach_75m", func(area, _ string) bool { return containsAny(area, "75m", "75 m") }},
	{"approach_100m", func(area, _ string) bool { return containsAny(area, "100m", "100 m") }},
	{"putting_3m", func(area, _ string) bool { return strings.Contains(area, "putt") && strings.Contains(area, "3") }},
	{"putting_6m", func(area, _ string) bool { return strings.Contains(area, "putt") && strings.Contains(area, "6") }},
	{"three_putt", func(area, _ string) bool { return containsAny(area, "3-putt", "three putt") }},
	{"chipping", func(area, _ string) bool { return strings.Contains(area, "chip") }},
	{"bunker", func(area, _ string) bool { return containsAny(area, "bunker", "sand") }},
	{"up_and_down", func(area, _ string) bool { return strings.Contains(area, "up") && strings.Contains(area, "down") }},
	{"driver_accuracy", func(area, _ string) bool { return strings.Contains(area, "fairway") }},
	{"driver_dispersion", func(area, _ string) bool { return containsAny(area, "dispersion", "spredning") }},
	{"driver_speed", func(area, _ string) bool { return containsAny(area, "speed", "hastighet") }},
	{"preshot_routine", func(area, _ string) bool { return containsAny(area, "rutine", "routine") }},

	// Coarse category fallbacks.
	{"approach_75m", func(_, category string) bool { return strings.Contains(category, "approach") }},
	{"putting_6m", func(_, category string) bool { return strings.Contains(category, "putt") }},
	{"chipping", func(_, category string) bool { return containsAny(category, "short", "kort") }},
}

// MapToTemplate resolves a breaking point's area and category text to a
// template id. Returns empty string when nothing matches; the caller drops
// the breaking point from the board.
func MapToTemplate(specificArea, category string) string {
	area := strings.ToLower(specificArea)
	cat := strings.ToLower(category)
	for _, rule := range mappingRules {
		if rule.matches(area, cat) {
			return rule.templateID
		}
	}
	return ""
}

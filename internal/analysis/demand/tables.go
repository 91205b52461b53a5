package demand

import "strings"

const (
	defaultCategoryScore      = 50.0
	defaultLocationMultiplier = 0.9
)

// categoryScores is the popularity of an event category (0-100)
var categoryScores = map[string]float64{
	"tech":       75,
	"technology": 75,
	"gala":       85,
	"business":   70,
	"networking": 65,
	"concert":    90,
	"music":      85,
	"sports":     80,
	"workshop":   60,
	"conference": 75,
	"meetup":     55,
	"party":      70,
	"charity":    50,
	"arts":       60,
	"food":       65,
	"education":  55,
	"wellness":   50,
}

// locationMultipliers scales demand by city. Bangladesh only for now.
var locationMultipliers = map[string]float64{
	"dhaka":      1.3,
	"chittagong": 1.1,
	"chattogram": 1.1,
	"sylhet":     0.9,
	"khulna":     0.85,
	"rajshahi":   0.85,
	"rangpur":    0.8,
	"barisal":    0.8,
	"comilla":    0.85,
}

// CategoryScore returns the base score for a category and whether it was known.
func CategoryScore(category string) (float64, bool) {
	if score, ok := categoryScores[strings.ToLower(category)]; ok {
		return score, true
	}
	return defaultCategoryScore, false
}

// LocationMultiplier returns the demand multiplier for a city and whether it was known.
func LocationMultiplier(location string) (float64, bool) {
	if m, ok := locationMultipliers[strings.ToLower(location)]; ok {
		return m, true
	}
	return defaultLocationMultiplier, false
}

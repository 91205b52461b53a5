package pricing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sameer-dev-stack/Royal-Class-Events/internal/utils"
	"github.com/sameer-dev-stack/Royal-Class-Events/models"
)

const (
	// CurrencySymbol prefixes prices in human-readable text (Bangladeshi taka).
	CurrencySymbol = "৳"

	defaultBasePrice = 500.0
	premiumLocation  = "dhaka"
	premiumFactor    = 1.2

	minDemandMultiplier  = 0.7
	demandMultiplierSpan = 0.6

	bandFloor   = 0.7
	bandCeiling = 1.5
)

// basePrices are starting ticket prices per category, in BDT
var basePrices = map[string]float64{
	"tech":       500,
	"technology": 500,
	"gala":       2000,
	"business":   800,
	"networking": 400,
	"concert":    1500,
	"music":      1000,
	"sports":     600,
	"workshop":   700,
	"conference": 1200,
	"meetup":     300,
	"party":      800,
	"charity":    500,
	"arts":       600,
	"food":       700,
	"education":  500,
	"wellness":   600,
}

// BasePrice returns the starting price for a category.
func BasePrice(category string) float64 {
	if p, ok := basePrices[strings.ToLower(category)]; ok {
		return p
	}
	return defaultBasePrice
}

// DemandLevel buckets a demand score into high, moderate or low.
func DemandLevel(demandScore float64) string {
	switch {
	case demandScore >= 70:
		return "high"
	case demandScore >= 50:
		return "moderate"
	default:
		return "low"
	}
}

// SuggestBasePrice recommends an initial ticket price and a band around it.
// Capacity is part of the request shape but does not move the price.
func SuggestBasePrice(category, location string, demandScore float64, capacity int) models.PriceSuggestion {
	demandMultiplier := minDemandMultiplier + (demandScore/100)*demandMultiplierSpan

	locationPremium := 1.0
	if strings.ToLower(location) == premiumLocation {
		locationPremium = premiumFactor
	}

	suggested := BasePrice(category) * demandMultiplier * locationPremium
	minPrice := utils.Round(suggested*bandFloor, 0)
	maxPrice := utils.Round(suggested*bandCeiling, 0)

	reasoning := fmt.Sprintf(
		"Based on %s demand (%s%%) for %s events in %s, we suggest pricing between %s%.0f-%s%.0f.",
		DemandLevel(demandScore),
		formatScore(demandScore),
		category,
		location,
		CurrencySymbol, minPrice,
		CurrencySymbol, maxPrice,
	)

	return models.PriceSuggestion{
		SuggestedPrice: utils.Round(suggested, 0),
		MinPrice:       minPrice,
		MaxPrice:       maxPrice,
		Reasoning:      reasoning,
	}
}

// formatScore prints the shortest form of a score, keeping one decimal for
// whole numbers (60 prints as "60.0", 72.5 as "72.5").
func formatScore(score float64) string {
	out := strconv.FormatFloat(score, 'f', -1, 64)
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}

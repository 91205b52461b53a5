package demand

import (
	"math"
	"time"

	"github.com/sameer-dev-stack/Royal-Class-Events/internal/utils"
	"github.com/sameer-dev-stack/Royal-Class-Events/models"
)

const (
	freePricingFactor = 1.2
	paidPricingFactor = 0.95

	baseConfidence  = 0.5
	knownDataWeight = 0.25

	// minimum fill assumed by the pessimistic revenue estimate
	minRevenueFill = 0.3
)

// PredictDemand scores event demand from category, location, timing, capacity
// and ticket type. Returns the 0-100 score, a confidence level and the factors
// that produced it.
func PredictDemand(event models.EventAttributes) models.DemandResult {
	baseScore, knownCategory := CategoryScore(event.Category)
	locationMultiplier, knownLocation := LocationMultiplier(event.Location)
	bonus := timingBonus(event.StartDate)
	capFactor := capacityFactor(event.Capacity)

	pricingFactor := paidPricingFactor
	if event.TicketType.IsFree() {
		pricingFactor = freePricingFactor
	}

	rawScore := (baseScore*locationMultiplier*pricingFactor + bonus) * capFactor

	return models.DemandResult{
		DemandScore: utils.Clamp(math.RoundToEven(rawScore), 0, 100),
		Confidence:  confidence(knownCategory, knownLocation),
		Factors: models.DemandFactors{
			BaseCategoryScore:  baseScore,
			LocationMultiplier: locationMultiplier,
			TimingBonus:        bonus,
			CapacityFactor:     capFactor,
			PricingFactor:      pricingFactor,
		},
	}
}

// timingBonus favours weekend events. An unparseable date earns no bonus
// rather than failing the prediction.
func timingBonus(startDate string) float64 {
	date, ok := models.ParseStartDate(startDate)
	if !ok {
		return 0
	}

	switch date.Weekday() {
	case time.Friday, time.Saturday:
		return 10
	case time.Sunday:
		return 5
	default:
		return 0
	}
}

// capacityFactor is non-increasing in capacity: small events fill more easily.
func capacityFactor(capacity int) float64 {
	switch {
	case capacity < 50:
		return 1.1
	case capacity < 100:
		return 1.0
	case capacity < 300:
		return 0.95
	case capacity < 500:
		return 0.9
	default:
		return 0.85
	}
}

func confidence(knownCategory, knownLocation bool) float64 {
	c := baseConfidence
	if knownCategory {
		c += knownDataWeight
	}
	if knownLocation {
		c += knownDataWeight
	}
	return utils.Round(c, 2)
}

// ForecastRevenue turns a demand score into expected sales and a revenue range
// (pessimistic, expected, full sell-out). Free events earn nothing.
func ForecastRevenue(demandScore float64, capacity int, ticketPrice float64, ticketType models.TicketType) models.RevenueForecast {
	sellThrough := demandScore / 100

	if ticketType.IsFree() {
		return models.RevenueForecast{
			SellThroughProbability: sellThrough,
		}
	}

	expectedSales := int(math.Floor(float64(capacity) * sellThrough))
	minRevenue := float64(capacity) * minRevenueFill * ticketPrice
	expectedRevenue := float64(expectedSales) * ticketPrice
	maxRevenue := float64(capacity) * ticketPrice

	return models.RevenueForecast{
		ExpectedSales:          expectedSales,
		MinRevenue:             utils.Round(minRevenue, 2),
		ExpectedRevenue:        utils.Round(expectedRevenue, 2),
		MaxRevenue:             utils.Round(maxRevenue, 2),
		SellThroughProbability: utils.Round(sellThrough, 2),
	}
}

package pricing

import (
	"fmt"

	"github.com/sameer-dev-stack/Royal-Class-Events/internal/utils"
	"github.com/sameer-dev-stack/Royal-Class-Events/models"
)

const stableReason = "Maintaining current price - demand is stable"

// Rule is one guarded branch of the dynamic pricing decision list.
type Rule struct {
	Strategy   models.Strategy
	Multiplier float64

	applies func(fillRate float64, daysLeft int) bool
	reason  func(fillRate float64, daysLeft int) string
}

// Applies reports whether the rule matches a sales snapshot.
func (r Rule) Applies(fillRate float64, daysLeft int) bool {
	return r.applies(fillRate, daysLeft)
}

// Reason explains the rule for a sales snapshot.
func (r Rule) Reason(fillRate float64, daysLeft int) string {
	return r.reason(fillRate, daysLeft)
}

// rules are evaluated in order; the first match wins. Boundaries are
// deliberately uneven: a fill rate of exactly 0.7 never surges.
var rules = []Rule{
	{
		Strategy:   models.StrategySurge,
		Multiplier: 1.15,
		applies:    func(f float64, d int) bool { return f > 0.7 && d > 7 },
		reason: func(f float64, d int) string {
			return fmt.Sprintf("High demand (%d%% sold) with %d days remaining", percent(f), d)
		},
	},
	{
		Strategy:   models.StrategyScarcity,
		Multiplier: 1.10,
		applies:    func(f float64, d int) bool { return f > 0.5 && d <= 3 },
		reason: func(_ float64, d int) string {
			return fmt.Sprintf("Over 50%% sold with only %d days left", d)
		},
	},
	{
		Strategy:   models.StrategyEarly,
		Multiplier: 0.85,
		applies:    func(f float64, d int) bool { return f < 0.1 && d <= 7 },
		reason: func(f float64, d int) string {
			return fmt.Sprintf("Low sales (%d%%) with %d days remaining - offering discount", percent(f), d)
		},
	},
	{
		Strategy:   models.StrategyFlash,
		Multiplier: 0.75,
		applies:    func(f float64, d int) bool { return f < 0.2 && d <= 2 },
		reason: func(f float64, d int) string {
			return fmt.Sprintf("Flash sale: Only %d days left and %d%% tickets available", d, percent(1-f))
		},
	},
}

// Rules returns the decision list in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// percent truncates a ratio to a whole percentage.
func percent(ratio float64) int {
	return int(ratio * 100)
}

// FillRate is registrations over capacity, 0 for an empty venue.
func FillRate(registrations, capacity int) float64 {
	if capacity <= 0 {
		return 0
	}
	return float64(registrations) / float64(capacity)
}

// SelectStrategy picks the first rule matching the snapshot. ok is false when
// nothing matches and the price should stay put.
func SelectStrategy(fillRate float64, daysLeft int) (Rule, bool) {
	for _, r := range rules {
		if r.Applies(fillRate, daysLeft) {
			return r, true
		}
	}
	return Rule{}, false
}

// CalculateDynamicPrice reprices a ticket from current sales velocity and the
// time left before the event. The result is always inside [MinPrice, MaxPrice].
func CalculateDynamicPrice(in models.DynamicPriceInput) models.DynamicPriceResult {
	fillRate := FillRate(in.Registrations, in.Capacity)

	newPrice := in.BasePrice
	strategy := models.StrategyStable
	reason := stableReason

	if r, ok := SelectStrategy(fillRate, in.DaysUntilEvent); ok {
		newPrice = in.BasePrice * r.Multiplier
		strategy = r.Strategy
		reason = r.Reason(fillRate, in.DaysUntilEvent)
	}

	newPrice = utils.Clamp(newPrice, in.MinPrice, in.MaxPrice)

	changePct := 0.0
	if in.BasePrice > 0 {
		changePct = (newPrice - in.BasePrice) / in.BasePrice * 100
	}

	return models.DynamicPriceResult{
		NewPrice:  utils.Round(newPrice, 0),
		ChangePct: utils.Round(changePct, 1),
		Reason:    reason,
		Strategy:  strategy,
	}
}

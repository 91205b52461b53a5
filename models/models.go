package models

// TicketType distinguishes free events from paid ones.
type TicketType string

const (
	TicketFree TicketType = "free"
	TicketPaid TicketType = "paid"
)

// IsFree reports whether the ticket type is exactly "free". Anything else,
// including unknown values, prices like a paid event.
func (t TicketType) IsFree() bool {
	return t == TicketFree
}

// EventAttributes describes an event for demand prediction
type EventAttributes struct {
	Category   string     `json:"category"`
	Location   string     `json:"location"`
	StartDate  string     `json:"start_date"`
	Capacity   int        `json:"capacity"`
	TicketType TicketType `json:"ticket_type"`
}

// DemandFactors exposes the intermediate values behind a demand score.
// They are explanatory only.
type DemandFactors struct {
	BaseCategoryScore  float64 `json:"base_category_score"`
	LocationMultiplier float64 `json:"location_multiplier"`
	TimingBonus        float64 `json:"timing_bonus"`
	CapacityFactor     float64 `json:"capacity_factor"`
	PricingFactor      float64 `json:"pricing_factor"`
}

// DemandResult is the output of a demand prediction
type DemandResult struct {
	DemandScore float64       `json:"demand_score"` // 0-100, whole number
	Confidence  float64       `json:"confidence"`   // 0.5, 0.75 or 1.0
	Factors     DemandFactors `json:"factors"`
}

// RevenueForecast holds expected sales and the revenue range for an event
type RevenueForecast struct {
	ExpectedSales          int     `json:"expected_sales"`
	MinRevenue             float64 `json:"min_revenue"`
	ExpectedRevenue        float64 `json:"expected_revenue"`
	MaxRevenue             float64 `json:"max_revenue"`
	SellThroughProbability float64 `json:"sell_through_probability"`
}

// PriceSuggestion is a recommended initial price band
type PriceSuggestion struct {
	SuggestedPrice float64 `json:"suggested_price"`
	MinPrice       float64 `json:"min_price"`
	MaxPrice       float64 `json:"max_price"`
	Reasoning      string  `json:"reasoning"`
}

// Strategy names the dynamic pricing policy applied to a snapshot
type Strategy string

const (
	StrategySurge    Strategy = "surge_pricing"
	StrategyScarcity Strategy = "scarcity_pricing"
	StrategyEarly    Strategy = "early_bird"
	StrategyFlash    Strategy = "flash_sale"
	StrategyStable   Strategy = "stable"
)

// DynamicPriceInput is a snapshot of current sales for repricing
type DynamicPriceInput struct {
	BasePrice      float64 `json:"base_price"`
	MinPrice       float64 `json:"min_price"`
	MaxPrice       float64 `json:"max_price"`
	Registrations  int     `json:"registrations"`
	Capacity       int     `json:"capacity"`
	DaysUntilEvent int     `json:"days_until_event"`
}

// DynamicPriceResult is the repriced ticket and the strategy that produced it
type DynamicPriceResult struct {
	NewPrice  float64  `json:"new_price"`
	ChangePct float64  `json:"change_pct"` // relative to base price, 1 decimal
	Reason    string   `json:"reason"`
	Strategy  Strategy `json:"strategy"`
}

// ServiceInfo is returned by the root endpoint
type ServiceInfo struct {
	Service   string   `json:"service"`
	Status    string   `json:"status"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}

package pricing

import (
	"testing"

	"github.com/sameer-dev-stack/Royal-Class-Events/models"
)

func TestCalculateDynamicPrice(t *testing.T) {
	tests := []struct {
		name string
		in   models.DynamicPriceInput
		want models.DynamicPriceResult
	}{
		{
			name: "surge when selling fast with time left",
			in:   models.DynamicPriceInput{BasePrice: 1000, MinPrice: 700, MaxPrice: 1500, Registrations: 80, Capacity: 100, DaysUntilEvent: 10},
			want: models.DynamicPriceResult{NewPrice: 1150, ChangePct: 15, Strategy: models.StrategySurge,
				Reason: "High demand (80% sold) with 10 days remaining"},
		},
		{
			name: "surge capped at max price",
			in:   models.DynamicPriceInput{BasePrice: 1000, MinPrice: 700, MaxPrice: 1100, Registrations: 72, Capacity: 100, DaysUntilEvent: 8},
			want: models.DynamicPriceResult{NewPrice: 1100, ChangePct: 10, Strategy: models.StrategySurge,
				Reason: "High demand (72% sold) with 8 days remaining"},
		},
		{
			name: "scarcity close to the event",
			in:   models.DynamicPriceInput{BasePrice: 1000, MinPrice: 700, MaxPrice: 1500, Registrations: 60, Capacity: 100, DaysUntilEvent: 3},
			want: models.DynamicPriceResult{NewPrice: 1100, ChangePct: 10, Strategy: models.StrategyScarcity,
				Reason: "Over 50% sold with only 3 days left"},
		},
		{
			name: "high fill near the event is scarcity not surge",
			in:   models.DynamicPriceInput{BasePrice: 1000, MinPrice: 700, MaxPrice: 1500, Registrations: 80, Capacity: 100, DaysUntilEvent: 3},
			want: models.DynamicPriceResult{NewPrice: 1100, ChangePct: 10, Strategy: models.StrategyScarcity,
				Reason: "Over 50% sold with only 3 days left"},
		},
		{
			name: "early bird discount for weak sales",
			in:   models.DynamicPriceInput{BasePrice: 1000, MinPrice: 700, MaxPrice: 1500, Registrations: 5, Capacity: 100, DaysUntilEvent: 7},
			want: models.DynamicPriceResult{NewPrice: 850, ChangePct: -15, Strategy: models.StrategyEarly,
				Reason: "Low sales (5%) with 7 days remaining - offering discount"},
		},
		{
			name: "early bird wins over flash sale",
			in:   models.DynamicPriceInput{BasePrice: 1000, MinPrice: 700, MaxPrice: 1500, Registrations: 5, Capacity: 100, DaysUntilEvent: 1},
			want: models.DynamicPriceResult{NewPrice: 850, ChangePct: -15, Strategy: models.StrategyEarly,
				Reason: "Low sales (5%) with 1 days remaining - offering discount"},
		},
		{
			name: "flash sale at the last minute",
			in:   models.DynamicPriceInput{BasePrice: 1000, MinPrice: 700, MaxPrice: 1500, Registrations: 15, Capacity: 100, DaysUntilEvent: 2},
			want: models.DynamicPriceResult{NewPrice: 750, ChangePct: -25, Strategy: models.StrategyFlash,
				Reason: "Flash sale: Only 2 days left and 85% tickets available"},
		},
		{
			name: "flash sale floored at min price",
			in:   models.DynamicPriceInput{BasePrice: 1000, MinPrice: 800, MaxPrice: 1500, Registrations: 15, Capacity: 100, DaysUntilEvent: 0},
			want: models.DynamicPriceResult{NewPrice: 800, ChangePct: -20, Strategy: models.StrategyFlash,
				Reason: "Flash sale: Only 0 days left and 85% tickets available"},
		},
		{
			name: "half sold is stable",
			in:   models.DynamicPriceInput{BasePrice: 1000, MinPrice: 700, MaxPrice: 1500, Registrations: 50, Capacity: 100, DaysUntilEvent: 2},
			want: models.DynamicPriceResult{NewPrice: 1000, ChangePct: 0, Strategy: models.StrategyStable, Reason: stableReason},
		},
		{
			name: "exactly seventy percent never surges",
			in:   models.DynamicPriceInput{BasePrice: 1000, MinPrice: 700, MaxPrice: 1500, Registrations: 70, Capacity: 100, DaysUntilEvent: 10},
			want: models.DynamicPriceResult{NewPrice: 1000, ChangePct: 0, Strategy: models.StrategyStable, Reason: stableReason},
		},
		{
			name: "high fill mid-way is stable",
			in:   models.DynamicPriceInput{BasePrice: 1000, MinPrice: 700, MaxPrice: 1500, Registrations: 80, Capacity: 100, DaysUntilEvent: 5},
			want: models.DynamicPriceResult{NewPrice: 1000, ChangePct: 0, Strategy: models.StrategyStable, Reason: stableReason},
		},
		{
			name: "stable price is still clamped",
			in:   models.DynamicPriceInput{BasePrice: 1000, MinPrice: 1200, MaxPrice: 1500, Registrations: 50, Capacity: 100, DaysUntilEvent: 30},
			want: models.DynamicPriceResult{NewPrice: 1200, ChangePct: 20, Strategy: models.StrategyStable, Reason: stableReason},
		},
		{
			name: "zero capacity counts as no sales",
			in:   models.DynamicPriceInput{BasePrice: 1000, MinPrice: 700, MaxPrice: 1500, Registrations: 10, Capacity: 0, DaysUntilEvent: 5},
			want: models.DynamicPriceResult{NewPrice: 850, ChangePct: -15, Strategy: models.StrategyEarly,
				Reason: "Low sales (0%) with 5 days remaining - offering discount"},
		},
		{
			name: "zero base price reports no change",
			in:   models.DynamicPriceInput{BasePrice: 0, MinPrice: 0, MaxPrice: 10, Registrations: 50, Capacity: 100, DaysUntilEvent: 30},
			want: models.DynamicPriceResult{NewPrice: 0, ChangePct: 0, Strategy: models.StrategyStable, Reason: stableReason},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateDynamicPrice(tt.in)
			if got != tt.want {
				t.Errorf("CalculateDynamicPrice() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCalculateDynamicPriceStaysInBounds(t *testing.T) {
	bounds := [][2]float64{{900, 1050}, {1000, 1000}, {500, 2000}, {1100, 1300}, {100, 800}}

	for _, b := range bounds {
		for regs := 0; regs <= 100; regs += 5 {
			for days := 0; days <= 14; days++ {
				in := models.DynamicPriceInput{
					BasePrice: 1000, MinPrice: b[0], MaxPrice: b[1],
					Registrations: regs, Capacity: 100, DaysUntilEvent: days,
				}
				got := CalculateDynamicPrice(in)
				if got.NewPrice < in.MinPrice || got.NewPrice > in.MaxPrice {
					t.Fatalf("CalculateDynamicPrice(%+v) = %v, want within [%v, %v]", in, got.NewPrice, in.MinPrice, in.MaxPrice)
				}
				if again := CalculateDynamicPrice(in); again != got {
					t.Fatalf("CalculateDynamicPrice(%+v) not idempotent: %+v then %+v", in, got, again)
				}
			}
		}
	}
}

func TestRulesOrder(t *testing.T) {
	want := []models.Strategy{
		models.StrategySurge,
		models.StrategyScarcity,
		models.StrategyEarly,
		models.StrategyFlash,
	}

	got := Rules()
	if len(got) != len(want) {
		t.Fatalf("Rules() has %d rules, want %d", len(got), len(want))
	}
	for i, r := range got {
		if r.Strategy != want[i] {
			t.Errorf("Rules()[%d] = %s, want %s", i, r.Strategy, want[i])
		}
	}

	got[0].Multiplier = 99
	if Rules()[0].Multiplier == 99 {
		t.Error("Rules() exposes the package rule table")
	}
}

func TestFillRate(t *testing.T) {
	tests := []struct {
		regs, capacity int
		want           float64
	}{
		{0, 100, 0},
		{25, 100, 0.25},
		{150, 100, 1.5},
		{10, 0, 0},
	}
	for _, tt := range tests {
		if got := FillRate(tt.regs, tt.capacity); got != tt.want {
			t.Errorf("FillRate(%d, %d) = %v, want %v", tt.regs, tt.capacity, got, tt.want)
		}
	}
}

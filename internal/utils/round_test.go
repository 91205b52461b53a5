package utils

import "testing"

func TestRound(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		places int
		want   float64
	}{
		{"whole number", 1780.8, 0, 1781},
		{"half to even down", 2.5, 0, 2},
		{"half to even up", 3.5, 0, 4},
		{"two decimals", 0.756, 2, 0.76},
		{"one decimal", 14.99999999999998, 1, 15},
		{"negative", -15.04, 1, -15},
		{"stored above midpoint rounds up", 0.525, 2, 0.53},
		{"stored below midpoint rounds down", 0.735, 2, 0.73},
		{"exact tie to even", 0.125, 2, 0.12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round(tt.x, tt.places); got != tt.want {
				t.Errorf("Round(%v, %d) = %v, want %v", tt.x, tt.places, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		x, lo, hi float64
		want      float64
	}{
		{"inside", 5, 1, 10, 5},
		{"below", -3, 0, 100, 0},
		{"above", 165, 0, 100, 100},
		{"inverted range keeps lower bound", 5, 10, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.x, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.x, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

package utils

import (
	"math"
	"strconv"
)

// Round rounds x to the given number of decimal places. It rounds the exact
// binary value, so 0.525 (stored slightly above the midpoint) gives 0.53
// while 0.735 (stored slightly below) gives 0.73. Exact ties go to even.
func Round(x float64, places int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}
	return r
}

// Clamp bounds x to [lo, hi]. The lower bound wins if the range is inverted.
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

package footprint

import (
	"math"
	"strconv"
	"strings"

	"go-greenprint/types"
)

// Period divisors for deriving daily/weekly/monthly projections from a
// yearly total, and the matching multipliers for yearly normalization.
const (
	daysPerYear   = 365
	weeksPerYear  = 52
	monthsPerYear = 12
)

// ParseNonNegative parses a numeric string with a guaranteed zero default.
// Empty strings, garbage, negatives and non-finite values all come back as
// 0 so a partially filled form never blocks a computation.
func ParseNonNegative(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// YearlyAmount converts an amount declared at some frequency to its
// yearly equivalent: week x52, month x12, year unchanged. An unknown or
// missing frequency is treated as already yearly, which is what the bare
// numeric call sites rely on.
func YearlyAmount(amount float64, freq types.Frequency) float64 {
	switch freq {
	case types.Weekly:
		return amount * weeksPerYear
	case types.Monthly:
		return amount * monthsPerYear
	default:
		return amount
	}
}

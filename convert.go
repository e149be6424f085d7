package kyat

import (
	"math"
	"regexp"
	"strconv"

	"github.com/shopspring/decimal"
)

// DisplayPlaces is the number of decimal places amounts are shown with
const DisplayPlaces = 2

var amountRe = regexp.MustCompile(`^\d*\.?\d*$`)

// Convert moves amount of a currency worth fromRate reference units into a currency worth toRate
// reference units. The result is not rounded
func Convert(amount, fromRate, toRate float64) float64 {
	if fromRate == toRate {
		return amount
	}

	return amount * fromRate / toRate
}

// FormatAmount rounds v to DisplayPlaces, values that are not finite render as empty
func FormatAmount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}

	return decimal.NewFromFloat(v).StringFixed(DisplayPlaces)
}

// ValidAmount reports whether raw is a complete or partial non-negative decimal literal.
// The empty string is valid
func ValidAmount(raw string) bool {
	return amountRe.MatchString(raw)
}

// ParseAmount returns the value of raw if it is a finite number greater than zero
func ParseAmount(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}

	return v, true
}

// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"gradeplan/pkg/constants"
)

// RoundScore rounds a value to one decimal, the precision scores are
// reported with. Used for making logical comparisons and display values.
func RoundScore(val float64) float64 {
	return math.Round(val*constants.ScorePrecision) / constants.ScorePrecision
}

// Clamp restricts a value to the inclusive range [min, max].
func Clamp(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// IsFinite checks that a value is neither NaN nor infinite
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

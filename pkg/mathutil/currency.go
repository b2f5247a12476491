// Package mathutil holds the small float helpers the projection math leans
// on. Currency is modeled as float64 rounded to cents at comparison points.
package mathutil

import (
	"math"

	"github.com/homecast/homecast/pkg/constants"
)

// Round rounds a currency value to whole cents.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// Max returns the larger of two values.
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// ApplyPercentage scales a value by a percentage expressed in percent units
// (20 means 20%).
func ApplyPercentage(value, percentage float64) float64 {
	return value * (percentage / constants.PercentageMultiplier)
}

package utils

import "math"

// Round2 rounds a float to 2 decimal places. All persisted hour figures and
// productivity percentages go through this.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

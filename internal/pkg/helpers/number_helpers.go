package helpers

import (
	"math"
	"strconv"
)

// Round2 rounds half away from zero to two decimal places
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// Fixed2 formats a value with exactly two decimals, e.g. 2.9167 -> "2.92"
func Fixed2(value float64) string {
	return strconv.FormatFloat(Round2(value), 'f', 2, 64)
}

// FormatPoints formats a grade point value without trailing zeros, e.g. 4 -> "4", 3.5 -> "3.5"
func FormatPoints(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// Package kpi holds the arithmetic shared by every metrics deriver:
// percentage ratios, period-over-period comparisons, and the guards that
// keep zero-sales periods from leaking NaN into rendered output.
package kpi

import "math"

// Ratio divides value by base as a percentage, zero when base is zero.
func Ratio(value, base int64) float64 {
	if base == 0 {
		return 0
	}
	return float64(value) / float64(base) * 100
}

// RatioF is Ratio over floats.
func RatioF(value, base float64) float64 {
	if base == 0 {
		return 0
	}
	return value / base * 100
}

// ChangePercent computes (current-previous)/previous as a percentage,
// defined as zero when previous is zero.
func ChangePercent(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// Finite maps NaN and infinities to zero.
func Finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Round1 rounds to one decimal place, the precision the trend views use.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

package analyzer

import (
	"math"
	"sort"
)

// Pearson computes the Pearson correlation coefficient between two
// year-keyed series over their common years, returning the coefficient and
// the number of years paired. Fewer than two common years, or zero variance
// in either series, yields a coefficient of 0 rather than an error; the
// count still reports how many years were available, so callers can tell
// "no correlation" from "insufficient data".
//
// The two-pass mean-then-deviation formulation keeps the zero-variance
// short circuit exact and avoids the precision loss of the single-pass
// sum-of-products shortcut.
func Pearson(x, y map[int]float64) (float64, int) {
	years := make([]int, 0, len(x))
	for year := range x {
		if _, ok := y[year]; ok {
			years = append(years, year)
		}
	}
	sort.Ints(years)

	n := len(years)
	if n < 2 {
		return 0, n
	}

	var meanX, meanY float64
	for _, year := range years {
		meanX += x[year]
		meanY += y[year]
	}
	meanX /= float64(n)
	meanY /= float64(n)

	var numerator, ssX, ssY float64
	for _, year := range years {
		dx := x[year] - meanX
		dy := y[year] - meanY
		numerator += dx * dy
		ssX += dx * dx
		ssY += dy * dy
	}

	denominator := math.Sqrt(ssX * ssY)
	if denominator == 0 {
		return 0, n
	}
	return numerator / denominator, n
}

package analyzer

// TotalsByYear sums landed pounds by year. A non-empty category keeps only
// records of that category. A year with no qualifying records is absent from
// the result rather than present with zero.
func (a *Analyzer) TotalsByYear(category string) map[int]int {
	byYear := make(map[int]int)
	for _, rec := range a.landings {
		if category != "" && rec.Category != category {
			continue
		}
		byYear[rec.Year] += rec.Pounds
	}
	return byYear
}

// AveragesByYear returns the mean landed pounds per record for each year.
// The denominator is the count of contributing records, so no zero division
// can occur. Unlike TotalsByYear this takes no category filter; existing
// consumers depend on the unfiltered contract.
func (a *Analyzer) AveragesByYear() map[int]float64 {
	totals := make(map[int]int)
	counts := make(map[int]int)
	for _, rec := range a.landings {
		totals[rec.Year] += rec.Pounds
		counts[rec.Year]++
	}

	avgs := make(map[int]float64, len(totals))
	for year, sum := range totals {
		avgs[year] = float64(sum) / float64(counts[year])
	}
	return avgs
}

// OxygenAverageByYear returns the mean dissolved oxygen in mg/L per year.
func (a *Analyzer) OxygenAverageByYear() map[int]float64 {
	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, rec := range a.samples {
		sums[rec.Year] += rec.DissolvedOxygen
		counts[rec.Year]++
	}

	avgs := make(map[int]float64, len(sums))
	for year, sum := range sums {
		avgs[year] = sum / float64(counts[year])
	}
	return avgs
}

// GrandTotal sums landed pounds across all years, optionally filtered by
// category.
func (a *Analyzer) GrandTotal(category string) int {
	total := 0
	for _, rec := range a.landings {
		if category != "" && rec.Category != category {
			continue
		}
		total += rec.Pounds
	}
	return total
}

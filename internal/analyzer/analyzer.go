// Package analyzer joins yearly fish-landing totals with water-quality
// dissolved-oxygen averages and computes descriptive statistics and the
// Pearson correlation between the two series.
package analyzer

import (
	"math"
	"sort"

	"CoastWatch/internal/model"
)

// DefaultTotalCategory is the category conventionally reported in the
// summary's grand-total field.
const DefaultTotalCategory = "Finfish"

// Analyzer computes statistics over fish-landing and water-quality records.
// It holds references to the caller's slices and never mutates them. Every
// query recomputes from the sources, so results stay consistent if the
// caller swaps or extends the underlying data between calls.
type Analyzer struct {
	landings []model.LandingRecord
	samples  []model.WaterQualityRecord
}

// New creates an Analyzer over the given record collections.
func New(landings []model.LandingRecord, samples []model.WaterQualityRecord) *Analyzer {
	return &Analyzer{landings: landings, samples: samples}
}

// Correlate computes the Pearson correlation between yearly landing totals
// (optionally filtered by category) and yearly dissolved-oxygen averages
// over their common years. It returns the coefficient and the number of
// years paired.
func (a *Analyzer) Correlate(category string) (float64, int) {
	totals := a.TotalsByYear(category)
	fish := make(map[int]float64, len(totals))
	for year, pounds := range totals {
		fish[year] = float64(pounds)
	}
	return Pearson(fish, a.OxygenAverageByYear())
}

// JoinedYearlySeries returns one row per year present in both series,
// ascending by year. Oxygen averages are rounded to 2 decimals for
// presentation; pounds are already integral and left untouched.
func (a *Analyzer) JoinedYearlySeries(category string) []model.YearRow {
	totals := a.TotalsByYear(category)
	oxygen := a.OxygenAverageByYear()

	years := make([]int, 0, len(totals))
	for year := range totals {
		if _, ok := oxygen[year]; ok {
			years = append(years, year)
		}
	}
	sort.Ints(years)

	rows := make([]model.YearRow, 0, len(years))
	for _, year := range years {
		rows = append(rows, model.YearRow{
			Year:               year,
			FishPounds:         totals[year],
			AvgDissolvedOxygen: round2(oxygen[year]),
		})
	}
	return rows
}

// SummaryStats returns the headline statistics for one analysis pass.
// category filters the correlated landing totals (empty means all records);
// totalCategory selects the category reported in the grand-total field and
// is conventionally DefaultTotalCategory.
func (a *Analyzer) SummaryStats(category, totalCategory string) model.Summary {
	totals := a.TotalsByYear(category)
	fishYears := make([]int, 0, len(totals))
	for year := range totals {
		fishYears = append(fishYears, year)
	}
	sort.Ints(fishYears)

	oxygen := a.OxygenAverageByYear()
	waterYears := make([]int, 0, len(oxygen))
	for year := range oxygen {
		waterYears = append(waterYears, year)
	}
	sort.Ints(waterYears)

	r, n := a.Correlate(category)

	return model.Summary{
		LandingRecords:     len(a.landings),
		WaterRecords:       len(a.samples),
		LandingYears:       fishYears,
		WaterYears:         waterYears,
		CommonYears:        n,
		CategoryGrandTotal: a.GrandTotal(totalCategory),
		Correlation:        round4(r),
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }

// Package report renders analysis results for the console.
package report

import (
	"fmt"
	"strings"

	"CoastWatch/internal/analyzer"
)

// yearlyRowLimit caps the yearly table so long archives stay readable.
const yearlyRowLimit = 10

// FormatReport renders the full console report for one category pass.
// An empty category reports over all landings.
func FormatReport(a *analyzer.Analyzer, category, totalCategory string) string {
	var b strings.Builder
	stats := a.SummaryStats(category, totalCategory)

	b.WriteString(strings.Repeat("=", 60) + "\n")
	b.WriteString("FISH LANDINGS AND COASTAL POLLUTION ANALYSIS REPORT\n")
	b.WriteString("Santa Barbara County, California\n")
	if category != "" {
		b.WriteString(fmt.Sprintf("Category: %s\n", category))
	}
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	b.WriteString("--- DATA SUMMARY ---\n")
	b.WriteString(fmt.Sprintf("Fish landing records: %d\n", stats.LandingRecords))
	b.WriteString(fmt.Sprintf("Water quality records: %d\n", stats.WaterRecords))
	b.WriteString(fmt.Sprintf("Total %s landed: %d lbs\n", totalCategory, stats.CategoryGrandTotal))
	if len(stats.LandingYears) > 0 {
		b.WriteString(fmt.Sprintf("Fish data years: %d - %d\n",
			stats.LandingYears[0], stats.LandingYears[len(stats.LandingYears)-1]))
	}
	if len(stats.WaterYears) > 0 {
		b.WriteString(fmt.Sprintf("Water data years: %d - %d\n",
			stats.WaterYears[0], stats.WaterYears[len(stats.WaterYears)-1]))
	}
	b.WriteString(fmt.Sprintf("Overlapping years for analysis: %d\n\n", stats.CommonYears))

	b.WriteString("--- CORRELATION ANALYSIS ---\n")
	b.WriteString(fmt.Sprintf("Pearson correlation coefficient: %.4f\n", stats.Correlation))
	b.WriteString(fmt.Sprintf("Years analyzed: %d\n", stats.CommonYears))
	b.WriteString(fmt.Sprintf("Interpretation: %s\n\n", Interpret(stats.Correlation)))

	rows := a.JoinedYearlySeries(category)
	b.WriteString(fmt.Sprintf("--- YEARLY SUMMARY (first %d years) ---\n", yearlyRowLimit))
	b.WriteString(fmt.Sprintf("%-8s %-15s %-15s\n", "Year", "Fish (lbs)", "Avg DO (mg/L)"))
	b.WriteString(strings.Repeat("-", 40) + "\n")
	for i, row := range rows {
		if i == yearlyRowLimit {
			break
		}
		b.WriteString(fmt.Sprintf("%-8d %12d %14.2f\n", row.Year, row.FishPounds, row.AvgDissolvedOxygen))
	}
	if len(rows) > yearlyRowLimit {
		b.WriteString(fmt.Sprintf("... and %d more years\n", len(rows)-yearlyRowLimit))
	}

	if len(rows) >= 2 {
		first := rows[0].Year
		last := rows[len(rows)-1].Year
		fish := a.CompareTotals(first, last, category)
		oxygen := a.CompareOxygen(first, last)

		b.WriteString(fmt.Sprintf("\n--- TREND COMPARISON (%d vs %d) ---\n", first, last))
		line := fmt.Sprintf("Fish landings change: %+d lbs", fish.Change)
		if fish.PercentChange != nil {
			line += fmt.Sprintf(" (%+.1f%%)", *fish.PercentChange)
		}
		b.WriteString(line + "\n")

		line = fmt.Sprintf("Dissolved oxygen change: %+.2f mg/L", oxygen.Change)
		if oxygen.PercentChange != nil {
			line += fmt.Sprintf(" (%+.1f%%)", *oxygen.PercentChange)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + strings.Repeat("=", 60) + "\n")
	return b.String()
}

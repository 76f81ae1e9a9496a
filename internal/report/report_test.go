package report

import (
	"strings"
	"testing"

	"CoastWatch/internal/analyzer"
	"CoastWatch/internal/model"
)

func TestInterpret_Ladder(t *testing.T) {
	tests := []struct {
		r    float64
		want string
	}{
		{0.0, "negligible"},
		{0.05, "negligible"},
		{-0.09, "negligible"},
		{0.1, "weak"},
		{0.29, "weak"},
		{0.3, "moderate"},
		{-0.45, "moderate"},
		{0.5, "strong"},
		{0.69, "strong"},
		{0.7, "very strong"},
		{-0.99, "very strong"},
		{1.0, "very strong"},
	}
	for _, tt := range tests {
		got := Interpret(tt.r)
		if !strings.Contains(got, tt.want) {
			t.Errorf("Interpret(%.2f): expected %q in %q", tt.r, tt.want, got)
		}
	}
}

func TestInterpret_Direction(t *testing.T) {
	if got := Interpret(0.8); !strings.Contains(got, "positive") {
		t.Errorf("expected positive direction, got %q", got)
	}
	if got := Interpret(-0.8); !strings.Contains(got, "negative") {
		t.Errorf("expected negative direction, got %q", got)
	}
	// Negligible interpretation names no direction.
	if got := Interpret(0.01); strings.Contains(got, "positive") || strings.Contains(got, "negative") {
		t.Errorf("negligible correlation should not state a direction: %q", got)
	}
}

func TestFormatReport(t *testing.T) {
	landings := []model.LandingRecord{
		{Category: "Finfish", Year: 2000, Species: "Anchovy", Pounds: 100},
		{Category: "Finfish", Year: 2001, Species: "Anchovy", Pounds: 200},
		{Category: "Finfish", Year: 2002, Species: "Anchovy", Pounds: 300},
	}
	samples := []model.WaterQualityRecord{
		{Year: 2000, DissolvedOxygen: 5.0},
		{Year: 2001, DissolvedOxygen: 5.5},
		{Year: 2002, DissolvedOxygen: 6.0},
	}
	a := analyzer.New(landings, samples)

	out := FormatReport(a, "Finfish", analyzer.DefaultTotalCategory)

	for _, want := range []string{
		"FISH LANDINGS AND COASTAL POLLUTION ANALYSIS REPORT",
		"Category: Finfish",
		"Fish landing records: 3",
		"Water quality records: 3",
		"Total Finfish landed: 600 lbs",
		"Overlapping years for analysis: 3",
		"Pearson correlation coefficient: 1.0000",
		"TREND COMPARISON (2000 vs 2002)",
		"Fish landings change: +200 lbs (+200.0%)",
		"Dissolved oxygen change: +1.00 mg/L (+20.0%)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\n%s", want, out)
		}
	}
}

func TestFormatReport_EmptyData(t *testing.T) {
	a := analyzer.New(nil, nil)
	out := FormatReport(a, "", analyzer.DefaultTotalCategory)

	if !strings.Contains(out, "Overlapping years for analysis: 0") {
		t.Errorf("expected zero overlapping years in report:\n%s", out)
	}
	if strings.Contains(out, "TREND COMPARISON") {
		t.Error("trend comparison should be omitted with fewer than 2 joined years")
	}
}

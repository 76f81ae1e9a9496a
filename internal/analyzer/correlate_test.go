package analyzer

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPearson_PerfectPositive(t *testing.T) {
	fish := map[int]float64{2000: 10, 2001: 20, 2002: 30}
	oxygen := map[int]float64{2000: 1.0, 2001: 2.0, 2002: 3.0}

	r, n := Pearson(fish, oxygen)
	if n != 3 {
		t.Fatalf("expected 3 paired years, got %d", n)
	}
	if !almostEqual(r, 1.0) {
		t.Errorf("expected coefficient 1.0, got %.10f", r)
	}
}

func TestPearson_PerfectNegative(t *testing.T) {
	fish := map[int]float64{2000: 30, 2001: 20, 2002: 10}
	oxygen := map[int]float64{2000: 1.0, 2001: 2.0, 2002: 3.0}

	r, n := Pearson(fish, oxygen)
	if n != 3 {
		t.Fatalf("expected 3 paired years, got %d", n)
	}
	if !almostEqual(r, -1.0) {
		t.Errorf("expected coefficient -1.0, got %.10f", r)
	}
}

func TestPearson_ZeroVariance(t *testing.T) {
	fish := map[int]float64{2000: 10, 2001: 20, 2002: 30}
	flat := map[int]float64{2000: 5.0, 2001: 5.0, 2002: 5.0}

	tests := []struct {
		name string
		x, y map[int]float64
	}{
		{"flat y", fish, flat},
		{"flat x", flat, fish},
		{"both flat", flat, flat},
	}
	for _, tt := range tests {
		r, n := Pearson(tt.x, tt.y)
		if r != 0.0 {
			t.Errorf("%s: expected exactly 0.0, got %v", tt.name, r)
		}
		if n != 3 {
			t.Errorf("%s: expected n=3, got %d", tt.name, n)
		}
	}
}

func TestPearson_InsufficientData(t *testing.T) {
	tests := []struct {
		name  string
		x, y  map[int]float64
		wantN int
	}{
		{"empty", map[int]float64{}, map[int]float64{}, 0},
		{"one common year", map[int]float64{2000: 10, 2001: 20}, map[int]float64{2001: 5}, 1},
		{"disjoint years", map[int]float64{2000: 10}, map[int]float64{2001: 5}, 0},
	}
	for _, tt := range tests {
		r, n := Pearson(tt.x, tt.y)
		if r != 0.0 {
			t.Errorf("%s: expected coefficient 0.0, got %v", tt.name, r)
		}
		if n != tt.wantN {
			t.Errorf("%s: expected n=%d, got %d", tt.name, tt.wantN, n)
		}
	}
}

func TestPearson_Symmetric(t *testing.T) {
	x := map[int]float64{1998: 12, 2000: 41, 2001: 7, 2002: 23}
	y := map[int]float64{2000: 5.1, 2001: 6.8, 2002: 4.4, 2003: 9.9}

	r1, n1 := Pearson(x, y)
	r2, n2 := Pearson(y, x)
	if n1 != n2 {
		t.Fatalf("sample counts differ: %d vs %d", n1, n2)
	}
	if !almostEqual(r1, r2) {
		t.Errorf("correlation not symmetric: %.10f vs %.10f", r1, r2)
	}
}

func TestPearson_PartialOverlap(t *testing.T) {
	// Only 2000-2002 are common; the stray years must not influence the result.
	x := map[int]float64{1990: 999, 2000: 10, 2001: 20, 2002: 30}
	y := map[int]float64{2000: 1.0, 2001: 2.0, 2002: 3.0, 2010: 0.1}

	r, n := Pearson(x, y)
	if n != 3 {
		t.Fatalf("expected 3 paired years, got %d", n)
	}
	if !almostEqual(r, 1.0) {
		t.Errorf("expected coefficient 1.0 over common years, got %.10f", r)
	}
}

func TestCorrelate_FromRecords(t *testing.T) {
	a := New(sampleLandings(), sampleOxygen())

	// Totals {2000:400, 2001:700, 2002:400} vs averages {5.0, 5.0, 6.0}.
	r, n := a.Correlate("")
	if n != 3 {
		t.Fatalf("expected 3 common years, got %d", n)
	}
	if r >= 0 {
		t.Errorf("expected a negative coefficient for this shape, got %.4f", r)
	}

	// Finfish totals {400, 200, 400} vs {5.0, 5.0, 6.0}.
	if _, n := a.Correlate("Finfish"); n != 3 {
		t.Errorf("expected 3 common years for Finfish, got %d", n)
	}
}

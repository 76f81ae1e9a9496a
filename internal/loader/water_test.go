package loader

import (
	"os"
	"path/filepath"
	"testing"

	"CoastWatch/internal/model"
)

const fieldResultsFixture = `station_name,county_name,parameter,fdr_result,sample_date
 Goleta Pier ,Santa Barbara,DissolvedOxygen,7.8,1985-02-12 10:50:00
Stearns Wharf,Santa Barbara,DissolvedOxygen,5.1,1986-07-01 09:00:00
Stearns Wharf,Santa Barbara,WaterTemperature,18.2,1986-07-01 09:00:00
Avila Pier,San Luis Obispo,DissolvedOxygen,8.0,1986-07-01 09:00:00
Goleta Pier,Santa Barbara,DissolvedOxygen,not-a-number,1987-01-01 08:00:00
Goleta Pier,Santa Barbara,DissolvedOxygen,6.4,bad-date
Goleta Pier,Santa Barbara,DissolvedOxygen,6.9,1987-03-15 14:30:00
`

func TestCSVSource_WaterQuality(t *testing.T) {
	path := filepath.Join(t.TempDir(), "field_results.csv")
	if err := os.WriteFile(path, []byte(fieldResultsFixture), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	src := NewCSVSource(path, "Santa Barbara")
	recs, err := src.WaterQuality()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d: %+v", len(recs), recs)
	}

	first := recs[0]
	if first.Station != "Goleta Pier" {
		t.Errorf("station should be trimmed, got %q", first.Station)
	}
	if first.DissolvedOxygen != 7.8 || first.Year != 1985 {
		t.Errorf("unexpected first record: %+v", first)
	}
	if first.WaterTemp != nil {
		t.Errorf("water temp should stay nil, got %v", *first.WaterTemp)
	}

	last := recs[2]
	if last.Year != 1987 || last.DissolvedOxygen != 6.9 {
		t.Errorf("unexpected last record: %+v", last)
	}
}

func TestCSVSource_MissingFile(t *testing.T) {
	src := NewCSVSource(filepath.Join(t.TempDir(), "nope.csv"), "Santa Barbara")
	if _, err := src.WaterQuality(); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestCSVSource_MissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(path, []byte("station_name,parameter\nGoleta Pier,DissolvedOxygen\n"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	src := NewCSVSource(path, "Santa Barbara")
	if _, err := src.WaterQuality(); err == nil {
		t.Error("expected error for extract without county column")
	}
}

func TestLoad_UsesSources(t *testing.T) {
	mock := &MockSource{
		LandingData: []model.LandingRecord{
			{Category: "Finfish", Year: 1990, Species: "Anchovy", Pounds: 1200},
		},
		WaterData: []model.WaterQualityRecord{
			{Station: "Goleta Pier", Year: 1990, DissolvedOxygen: 6.5},
		},
	}
	ds, err := Load(mock, mock)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ds.Landings) != len(mock.LandingData) || len(ds.Samples) != len(mock.WaterData) {
		t.Errorf("dataset does not match source contents: %+v", ds)
	}
}

package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"CoastWatch/internal/model"
)

// oxygenParameter is the only parameter this system analyzes; other rows of
// the field-results extract (temperature, pH, turbidity) are dropped.
const oxygenParameter = "DissolvedOxygen"

// CSVSource reads dissolved-oxygen samples for one county from a
// field-results CSV extract.
type CSVSource struct {
	Path   string
	County string
}

// NewCSVSource creates a source for the given extract and county.
func NewCSVSource(path, county string) *CSVSource {
	return &CSVSource{Path: path, County: county}
}

func (s *CSVSource) Name() string { return "field-results-csv" }

// WaterQuality streams the extract and keeps dissolved-oxygen rows for the
// configured county. Rows with an unparseable result or sample date are
// skipped, never fatal.
func (s *CSVSource) WaterQuality() ([]model.WaterQualityRecord, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open water quality csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"county_name", "parameter", "fdr_result", "sample_date", "station_name"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	var recs []model.WaterQualityRecord
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		if cell(row, cols["county_name"]) != s.County {
			continue
		}
		if cell(row, cols["parameter"]) != oxygenParameter {
			continue
		}
		do, err := strconv.ParseFloat(cell(row, cols["fdr_result"]), 64)
		if err != nil {
			continue
		}

		// Sample dates read like "1985-02-12 10:50:00"; the year comes
		// from the date part.
		date := cell(row, cols["sample_date"])
		parts := strings.Fields(date)
		if len(parts) == 0 {
			continue
		}
		day, err := time.Parse("2006-01-02", parts[0])
		if err != nil {
			continue
		}

		recs = append(recs, model.WaterQualityRecord{
			Station:         cell(row, cols["station_name"]),
			SampleDate:      date,
			DissolvedOxygen: do,
			Year:            day.Year(),
		})
	}
	return recs, nil
}

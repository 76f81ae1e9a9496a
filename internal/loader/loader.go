// Package loader ingests the two source datasets: yearly landings workbooks
// and the water-quality field-results CSV. All cleaning rules live here so
// the analyzer only ever sees validated records.
package loader

import (
	"fmt"
	"log"
	"strings"

	"CoastWatch/internal/model"
)

// LandingSource supplies cleaned fish-landing records.
type LandingSource interface {
	Landings() ([]model.LandingRecord, error)
	Name() string
}

// WaterSource supplies cleaned dissolved-oxygen samples.
type WaterSource interface {
	WaterQuality() ([]model.WaterQualityRecord, error)
	Name() string
}

// Dataset holds both record collections for one analysis pass.
type Dataset struct {
	Landings []model.LandingRecord
	Samples  []model.WaterQualityRecord
}

// Load pulls both collections from their sources.
func Load(ls LandingSource, ws WaterSource) (*Dataset, error) {
	landings, err := ls.Landings()
	if err != nil {
		return nil, fmt.Errorf("load landings: %w", err)
	}
	samples, err := ws.WaterQuality()
	if err != nil {
		return nil, fmt.Errorf("load water quality: %w", err)
	}
	log.Printf("[INFO] loaded %d landing records (%s), %d water samples (%s)",
		len(landings), ls.Name(), len(samples), ws.Name())
	return &Dataset{Landings: landings, Samples: samples}, nil
}

// cell returns the trimmed value at index i, tolerating short rows.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

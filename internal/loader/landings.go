package loader

import (
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"CoastWatch/internal/model"
)

// ExcelSource reads the yearly landings workbooks
// (MonthlyPoundsSantaBarbara_<year>.xlsx) from a directory. Missing year
// files are skipped with a warning so a partial archive still loads.
type ExcelSource struct {
	Dir       string
	StartYear int
	EndYear   int
}

// NewExcelSource creates a source covering [startYear, endYear].
func NewExcelSource(dir string, startYear, endYear int) *ExcelSource {
	return &ExcelSource{Dir: dir, StartYear: startYear, EndYear: endYear}
}

func (s *ExcelSource) Name() string { return "excel-landings" }

// Landings parses every year's workbook in range and concatenates the records.
func (s *ExcelSource) Landings() ([]model.LandingRecord, error) {
	var all []model.LandingRecord
	for year := s.StartYear; year <= s.EndYear; year++ {
		path := filepath.Join(s.Dir, fmt.Sprintf("MonthlyPoundsSantaBarbara_%d.xlsx", year))
		recs, err := parseLandingsFile(path, year)
		if err != nil {
			log.Printf("[WARN] skip %s: %v", path, err)
			continue
		}
		log.Printf("[INFO] %d: %d species records", year, len(recs))
		all = append(all, recs...)
	}
	return all, nil
}

// parseLandingsFile extracts one year's records from a workbook. The monthly
// columns carry "Confidential" markers for low-volume species, so pounds come
// from the complete "Total Landings" column instead.
func parseLandingsFile(path string, year int) ([]model.LandingRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	cols := make(map[string]int, len(rows[0]))
	for i, title := range rows[0] {
		cols[strings.TrimSpace(title)] = i
	}
	for _, required := range []string{"Category", "Species", "Total Landings"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	var recs []model.LandingRecord
	for _, row := range rows[1:] {
		species := cell(row, cols["Species"])
		if species == "" {
			// Summary rows carry no species.
			continue
		}
		category := cell(row, cols["Category"])
		if strings.Contains(category, "Total") || strings.Contains(category, "Other") {
			continue
		}
		// Category cells read like "3510 Finfish"; keep the last word.
		if parts := strings.Fields(category); len(parts) > 0 {
			category = parts[len(parts)-1]
		}

		total := strings.ReplaceAll(cell(row, cols["Total Landings"]), ",", "")
		v, err := strconv.ParseFloat(total, 64)
		if err != nil {
			// "Confidential" and blank totals land here.
			continue
		}
		pounds := int(v)
		if pounds <= 0 {
			continue
		}

		recs = append(recs, model.LandingRecord{
			Category: category,
			Year:     year,
			Species:  species,
			Pounds:   pounds,
		})
	}
	return recs, nil
}

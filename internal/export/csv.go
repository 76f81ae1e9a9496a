// Package export writes analysis results to CSV and JSON files.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"CoastWatch/internal/model"
)

// WriteYearlyCSV writes the joined yearly series to path, creating parent
// directories as needed.
func WriteYearlyCSV(path string, rows []model.YearRow) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"year", "fish_pounds", "avg_dissolved_oxygen"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		rec := []string{
			strconv.Itoa(row.Year),
			strconv.Itoa(row.FishPounds),
			strconv.FormatFloat(row.AvgDissolvedOxygen, 'f', 2, 64),
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write row for %d: %w", row.Year, err)
		}
	}
	w.Flush()
	return w.Error()
}

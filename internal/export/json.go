package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Metrics is the JSON shape of the exported correlation results.
type Metrics struct {
	PearsonCorrelation float64 `json:"pearson_correlation"`
	YearsAnalyzed      int     `json:"years_analyzed"`
	Interpretation     string  `json:"interpretation"`
}

// WriteMetricsJSON writes the metrics file, creating parent directories as
// needed.
func WriteMetricsJSON(path string, m *Metrics) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal metrics: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

package recorder

import "CoastWatch/internal/model"

// RunSnapshot holds the outcome of one per-category analysis pass.
type RunSnapshot struct {
	Category       string
	Correlation    float64
	YearsAnalyzed  int
	LandingRecords int
	WaterRecords   int
	GrandTotal     int
	Interpretation string
}

// Recorder persists analysis history for later inspection.
type Recorder interface {
	RecordRun(snap *RunSnapshot) error
	RecordYearlyRows(category string, rows []model.YearRow) error
	Close() error
}

package loader

import "CoastWatch/internal/model"

// MockSource returns canned records for development and wiring tests. It
// satisfies both LandingSource and WaterSource.
type MockSource struct {
	LandingData []model.LandingRecord
	WaterData   []model.WaterQualityRecord
}

func (m *MockSource) Name() string { return "mock" }

func (m *MockSource) Landings() ([]model.LandingRecord, error) {
	return m.LandingData, nil
}

func (m *MockSource) WaterQuality() ([]model.WaterQualityRecord, error) {
	return m.WaterData, nil
}

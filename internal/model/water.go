package model

// WaterQualityRecord holds one dissolved-oxygen field sample.
type WaterQualityRecord struct {
	Station         string
	SampleDate      string
	DissolvedOxygen float64  // mg/L
	WaterTemp       *float64 // reserved; no current source populates it
	Year            int
}

// IsLowOxygen reports whether the sample falls below the given threshold in mg/L.
func (r *WaterQualityRecord) IsLowOxygen(threshold float64) bool {
	return r.DissolvedOxygen < threshold
}

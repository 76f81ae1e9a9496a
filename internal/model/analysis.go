package model

// YearRow is one row of the joined landings/oxygen series.
type YearRow struct {
	Year               int
	FishPounds         int
	AvgDissolvedOxygen float64 // rounded to 2 decimals for presentation
}

// Summary holds the headline statistics for one analysis pass.
type Summary struct {
	LandingRecords     int
	WaterRecords       int
	LandingYears       []int // ascending
	WaterYears         []int // ascending
	CommonYears        int
	CategoryGrandTotal int
	Correlation        float64 // rounded to 4 decimals
}

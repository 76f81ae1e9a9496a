package model

// SpeciesChange describes one species' movement between two years.
// PercentChange is nil when the first year has no baseline (zero pounds),
// which is distinct from a computed 0% change.
type SpeciesChange struct {
	Pounds1       int
	Pounds2       int
	Change        int
	PercentChange *float64
}

// SpeciesComparison compares landings between two years, species by species.
// Species holds the union of species seen in either year.
type SpeciesComparison struct {
	Year1   int
	Year2   int
	Total1  int
	Total2  int
	Species map[string]SpeciesChange
}

// TotalsComparison compares total landed pounds between two years.
type TotalsComparison struct {
	Year1         int
	Year2         int
	Total1        int
	Total2        int
	Change        int
	PercentChange *float64
}

// OxygenComparison compares average dissolved oxygen between two years.
type OxygenComparison struct {
	Year1         int
	Year2         int
	Avg1          float64
	Avg2          float64
	Change        float64
	PercentChange *float64
}

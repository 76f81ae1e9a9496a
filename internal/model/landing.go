package model

// LandingRecord represents one species' landed weight for a year.
// The loader guarantees Pounds is positive; confidential and summary
// source rows never become records.
type LandingRecord struct {
	Category string
	Year     int
	Species  string
	Pounds   int
}

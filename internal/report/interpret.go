package report

import (
	"fmt"
	"math"
)

// strengthLadder maps |r| lower bounds to strength labels, strongest first.
var strengthLadder = []struct {
	Min   float64
	Label string
}{
	{0.7, "very strong"},
	{0.5, "strong"},
	{0.3, "moderate"},
	{0.1, "weak"},
}

// Interpret renders a Pearson coefficient as a plain-language sentence.
func Interpret(r float64) string {
	abs := math.Abs(r)

	strength := ""
	for _, s := range strengthLadder {
		if abs >= s.Min {
			strength = s.Label
			break
		}
	}
	if strength == "" {
		return "There is negligible correlation between fish landings and dissolved oxygen levels."
	}

	direction := "negative"
	if r > 0 {
		direction = "positive"
	}
	return fmt.Sprintf("There is a %s %s correlation (r=%.4f) between fish landings and dissolved oxygen levels.",
		strength, direction, r)
}

package correction

import (
	"github.com/montanaflynn/stats"
)

// Summary describes the spread of a family's p-values
type Summary struct {
	Min    float64 `json:"min"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`
}

// Summarize returns nil for an empty family
func Summarize(pv []float64) *Summary {
	if len(pv) == 0 {
		return nil
	}
	data := stats.Float64Data(pv)
	// errors are only returned for empty input
	lo, _ := stats.Min(data)
	median, _ := stats.Median(data)
	hi, _ := stats.Max(data)
	return &Summary{Min: lo, Median: median, Max: hi}
}

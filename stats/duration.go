package stats

import (
	"math"
	"strconv"

	"github.com/theoremus-urban-solutions/bikeshare-explorer/trips"
)

// DurationStats holds total and mean trip duration in seconds.
// Mean is NaN for an empty table.
type DurationStats struct {
	Trips int
	Total int64
	Mean  float64
}

func (DurationStats) isResult() {}

// MeanRounded returns Mean rounded to one decimal place. Rounding works on
// the exact binary value, so 0.25 becomes 0.2.
func (d DurationStats) MeanRounded() float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(d.Mean, 'f', 1, 64), 64)
	return r
}

// ComputeDurationStats sums trip durations and averages them
func ComputeDurationStats(t *trips.Table) DurationStats {
	var sum float64
	for tr := range t.All() {
		sum += tr.Duration
	}
	n := t.Len()
	return DurationStats{
		Trips: n,
		Total: int64(math.Round(sum)),
		Mean:  sum / float64(n),
	}
}

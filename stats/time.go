package stats

import "github.com/theoremus-urban-solutions/bikeshare-explorer/trips"

// TimeStats holds the most frequent times of travel
type TimeStats struct {
	Available bool // false when no trip has a parseable start time
	Month     int
	Day       string
	Hour      int
}

func (TimeStats) isResult() {}

// ComputeTimeStats finds the most common month, day of week and start hour
func ComputeTimeStats(t *trips.Table) TimeStats {
	months := NewCounter[int]()
	days := NewCounter[string]()
	hours := NewCounter[int]()
	for tr := range t.All() {
		if !tr.Valid {
			continue
		}
		months.Add(tr.Month)
		days.Add(tr.DayName)
		hours.Add(tr.StartTime.Hour())
	}

	var ts TimeStats
	ts.Month, _, ts.Available = months.Mode()
	ts.Day, _, _ = days.Mode()
	ts.Hour, _, _ = hours.Mode()
	return ts
}

package stats

import "github.com/theoremus-urban-solutions/bikeshare-explorer/trips"

// Result is the output of one aggregator
type Result interface {
	isResult()
}

// Aggregator is one independent report section over a filtered table
type Aggregator struct {
	Name    string
	Heading string
	Compute func(*trips.Table) Result
}

// Aggregators returns the report sections in print order
func Aggregators() []Aggregator {
	return []Aggregator{
		{
			Name:    "time",
			Heading: "Calculating The Most Frequent Times of Travel...",
			Compute: func(t *trips.Table) Result { return ComputeTimeStats(t) },
		},
		{
			Name:    "stations",
			Heading: "Calculating The Most Popular Stations and Trip...",
			Compute: func(t *trips.Table) Result { return ComputeStationStats(t) },
		},
		{
			Name:    "duration",
			Heading: "Calculating Trip Duration...",
			Compute: func(t *trips.Table) Result { return ComputeDurationStats(t) },
		},
		{
			Name:    "users",
			Heading: "Calculating User Stats...",
			Compute: func(t *trips.Table) Result { return ComputeUserStats(t) },
		},
	}
}

// Summary bundles every aggregator's result for one filtered table
type Summary struct {
	City     string
	Month    string
	Day      string
	Trips    int
	Time     TimeStats
	Stations StationStats
	Duration DurationStats
	Users    UserStats
}

// Summarize runs all aggregators over t
func Summarize(t *trips.Table, sel trips.Selection) Summary {
	return Summary{
		City:     t.City,
		Month:    sel.Month,
		Day:      sel.Day,
		Trips:    t.Len(),
		Time:     ComputeTimeStats(t),
		Stations: ComputeStationStats(t),
		Duration: ComputeDurationStats(t),
		Users:    ComputeUserStats(t),
	}
}

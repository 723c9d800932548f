package stats

import "github.com/theoremus-urban-solutions/bikeshare-explorer/trips"

// StationStats holds the most popular stations and trip. A field is empty
// when no trip had a value for it.
type StationStats struct {
	Available    bool
	StartStation string
	EndStation   string
	Route        string
}

func (StationStats) isResult() {}

// ComputeStationStats finds the most common start station, end station and
// "<start> to <end>" route. Empty station cells are not counted.
func ComputeStationStats(t *trips.Table) StationStats {
	starts := NewCounter[string]()
	ends := NewCounter[string]()
	routes := NewCounter[string]()
	for tr := range t.All() {
		if tr.StartStation != "" {
			starts.Add(tr.StartStation)
		}
		if tr.EndStation != "" {
			ends.Add(tr.EndStation)
		}
		if tr.StartStation != "" && tr.EndStation != "" {
			routes.Add(tr.Route())
		}
	}

	var ss StationStats
	var okStart, okEnd, okRoute bool
	ss.StartStation, _, okStart = starts.Mode()
	ss.EndStation, _, okEnd = ends.Mode()
	ss.Route, _, okRoute = routes.Mode()
	ss.Available = okStart || okEnd || okRoute
	return ss
}

package formatter

import (
	"encoding/json"
	"math"

	"github.com/theoremus-urban-solutions/bikeshare-explorer/stats"
)

type summaryJSON struct {
	City     string       `json:"city"`
	Month    string       `json:"month"`
	Day      string       `json:"day"`
	Trips    int          `json:"trips"`
	Time     timeJSON     `json:"time"`
	Stations stationsJSON `json:"stations"`
	Duration durationJSON `json:"duration"`
	Users    usersJSON    `json:"users"`
}

type timeJSON struct {
	Month *int    `json:"most_common_month"`
	Day   *string `json:"most_common_day"`
	Hour  *int    `json:"most_common_hour"`
}

type stationsJSON struct {
	Start *string `json:"most_common_start_station"`
	End   *string `json:"most_common_end_station"`
	Trip  *string `json:"most_frequent_trip"`
}

type durationJSON struct {
	Total int64    `json:"total_seconds"`
	Mean  *float64 `json:"mean_seconds"` // null when undefined
}

type usersJSON struct {
	UserTypes  []stats.Count[string] `json:"user_types"`
	Gender     []stats.Count[string] `json:"gender,omitempty"`
	BirthYears *birthYearsJSON       `json:"birth_years,omitempty"`
}

type birthYearsJSON struct {
	Earliest   int `json:"earliest"`
	MostRecent int `json:"most_recent"`
	MostCommon int `json:"most_common"`
}

type responseBuilder struct{}

// NewResponseBuilder creates a new response builder for serializing summaries
func NewResponseBuilder() *responseBuilder {
	return &responseBuilder{}
}

// BuildJSON serializes a summary to indented JSON. Statistics that are
// undefined for the selection (modes of no trips, the mean of zero trips)
// are written as null.
func (rb *responseBuilder) BuildJSON(s stats.Summary) ([]byte, error) {
	out := summaryJSON{
		City:  s.City,
		Month: s.Month,
		Day:   s.Day,
		Trips: s.Trips,
		Duration: durationJSON{
			Total: s.Duration.Total,
		},
		Users: usersJSON{
			UserTypes: nonNil(s.Users.UserTypes),
		},
	}
	if s.Time.Available {
		out.Time = timeJSON{Month: &s.Time.Month, Day: &s.Time.Day, Hour: &s.Time.Hour}
	}
	if s.Stations.Available {
		out.Stations = stationsJSON{
			Start: nonEmpty(s.Stations.StartStation),
			End:   nonEmpty(s.Stations.EndStation),
			Trip:  nonEmpty(s.Stations.Route),
		}
	}
	if mean := s.Duration.MeanRounded(); !math.IsNaN(mean) {
		out.Duration.Mean = &mean
	}
	if s.Users.GenderAvailable {
		out.Users.Gender = nonNil(s.Users.Gender)
	}
	if by := s.Users.BirthYears; by != nil {
		out.Users.BirthYears = &birthYearsJSON{Earliest: by.Earliest, MostRecent: by.MostRecent, MostCommon: by.MostCommon}
	}
	return json.MarshalIndent(out, "", "  ")
}

func nonNil(c []stats.Count[string]) []stats.Count[string] {
	if c == nil {
		return []stats.Count[string]{}
	}
	return c
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

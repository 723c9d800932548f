package trips

import (
	"iter"
	"time"
)

// Trip is one bicycle trip record plus its derived calendar fields
type Trip struct {
	Index        int // 0-based position in the source file
	ID           string
	StartTime    time.Time
	EndTime      time.Time
	Duration     float64 // seconds
	StartStation string
	EndStation   string
	UserType     string
	Gender       string
	BirthYear    int
	HasBirthYear bool

	Valid   bool // StartTime parsed; derived fields below are meaningful
	Month   int  // 1-12
	DayName string
	Hour    int
}

// Route is the "<start station> to <end station>" trip label
func (t Trip) Route() string {
	return t.StartStation + " to " + t.EndStation
}

func (t *Trip) derive() {
	if !t.Valid {
		t.Month, t.DayName, t.Hour = 0, "", -1
		return
	}
	t.Month = int(t.StartTime.Month())
	t.DayName = t.StartTime.Weekday().String()
	t.Hour = t.StartTime.Hour()
}

// Schema records which optional columns the source file carried
type Schema struct {
	ID        bool
	EndTime   bool
	Gender    bool
	BirthYear bool
}

// Table is an immutable, ordered collection of trips for one city
type Table struct {
	City   string
	Schema Schema
	trips  []Trip
}

// NewTable builds a table from trips. The slice is copied.
func NewTable(city string, schema Schema, trips []Trip) *Table {
	own := make([]Trip, len(trips))
	copy(own, trips)
	return &Table{City: city, Schema: schema, trips: own}
}

// Len returns the number of trips
func (t *Table) Len() int { return len(t.trips) }

// At returns the i-th trip
func (t *Table) At(i int) Trip { return t.trips[i] }

// All iterates the trips in table order
func (t *Table) All() iter.Seq[Trip] {
	return func(yield func(Trip) bool) {
		for _, tr := range t.trips {
			if !yield(tr) {
				return
			}
		}
	}
}

// Page returns up to n trips starting at offset. Past the end it returns an
// empty slice, near the end a partial one.
func (t *Table) Page(offset, n int) []Trip {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(t.trips) || n <= 0 {
		return []Trip{}
	}
	end := min(offset+n, len(t.trips))
	page := make([]Trip, end-offset)
	copy(page, t.trips[offset:end])
	return page
}

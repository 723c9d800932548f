/*
Package trips provides bikeshare trip loading and filtering.

A city's trip CSV is read into an in-memory Table. Calendar fields (month,
day-of-week name, start hour) are derived once per load from the "Start Time"
column. Filtering never mutates a Table: every filter returns a new, smaller
Table that keeps the source row order.

# Basic Usage

	loader := trips.NewLoader("data", map[string]string{
	    "chicago": "chicago.csv",
	})

	sel := trips.NewSelection("chicago", "march", "all")
	table, err := loader.Load(sel)
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Println(table.Len())

# Columns

Columns are located by header name, case-insensitively:

- Start Time, Trip Duration, Start Station, End Station, User Type (required)
- End Time, Gender, Birth Year (optional)
- an unnamed leading column holding the source row id (optional)

Which optional columns exist is recorded on Table.Schema. Consumers check the
schema instead of probing individual rows.

# Malformed Timestamps

A row whose start time cannot be parsed is kept with Valid set to false. Its
derived fields are undefined (Month 0, DayName "", Hour -1) so it never matches
a month or day filter.
*/
package trips

package formatter

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/theoremus-urban-solutions/bikeshare-explorer/stats"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/trips"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/utils"
)

// Rule separates report sections
var Rule = strings.Repeat("-", 40)

const (
	// NotAvailable stands in for a statistic over zero values
	NotAvailable = "n/a"

	GenderNotAvailable    = "Gender data is not available for this city."
	BirthYearNotAvailable = "Birth year data is not available for this city."
	BirthYearNoValues     = "No birth year data for the selected trips."
)

// WriteSection prints one aggregator's heading, findings and elapsed time
func WriteSection(w io.Writer, heading string, lines []string, elapsed time.Duration) error {
	var b strings.Builder
	b.WriteString("\n" + heading + "\n\n")
	for _, l := range lines {
		b.WriteString(l + "\n")
	}
	fmt.Fprintf(&b, "\nThis took %s seconds.\n", utils.ElapsedSeconds(elapsed))
	b.WriteString(Rule + "\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// Lines renders an aggregator result as report lines
func Lines(r stats.Result) []string {
	switch v := r.(type) {
	case stats.TimeStats:
		return timeLines(v)
	case stats.StationStats:
		return stationLines(v)
	case stats.DurationStats:
		return durationLines(v)
	case stats.UserStats:
		return userLines(v)
	default:
		return []string{fmt.Sprintf("unsupported result %T", r)}
	}
}

func timeLines(ts stats.TimeStats) []string {
	if !ts.Available {
		return []string{
			"Most Common Month: " + NotAvailable,
			"Most Common Day of Week: " + NotAvailable,
			"Most Common Start Hour: " + NotAvailable,
		}
	}
	return []string{
		"Most Common Month: " + strconv.Itoa(ts.Month),
		"Most Common Day of Week: " + ts.Day,
		"Most Common Start Hour: " + strconv.Itoa(ts.Hour),
	}
}

func stationLines(ss stats.StationStats) []string {
	return []string{
		"Most Commonly Used Start Station: " + orNotAvailable(ss.StartStation),
		"Most Commonly Used End Station: " + orNotAvailable(ss.EndStation),
		"Most Frequent Trip: " + orNotAvailable(ss.Route),
	}
}

func orNotAvailable(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}

func durationLines(ds stats.DurationStats) []string {
	return []string{
		fmt.Sprintf("Total Travel Time: %d seconds", ds.Total),
		fmt.Sprintf("Mean Travel Time: %s seconds", strconv.FormatFloat(ds.MeanRounded(), 'f', 1, 64)),
	}
}

func userLines(us stats.UserStats) []string {
	lines := []string{"Counts of User Types:"}
	lines = append(lines, countLines(us.UserTypes)...)

	if us.GenderAvailable {
		lines = append(lines, "Counts of Gender:")
		lines = append(lines, countLines(us.Gender)...)
	} else {
		lines = append(lines, GenderNotAvailable)
	}

	switch {
	case !us.BirthYearAvailable:
		lines = append(lines, BirthYearNotAvailable)
	case us.BirthYears == nil:
		lines = append(lines, BirthYearNoValues)
	default:
		lines = append(lines,
			"Earliest Year of Birth: "+strconv.Itoa(us.BirthYears.Earliest),
			"Most Recent Year of Birth: "+strconv.Itoa(us.BirthYears.MostRecent),
			"Most Common Year of Birth: "+strconv.Itoa(us.BirthYears.MostCommon),
		)
	}
	return lines
}

func countLines(counts []stats.Count[string]) []string {
	if len(counts) == 0 {
		return []string{"  (none)"}
	}
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 4, ' ', 0)
	for _, c := range counts {
		fmt.Fprintf(tw, "  %s\t%d\n", c.Value, c.N)
	}
	_ = tw.Flush()
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

// WriteRows prints a page of trips as an aligned table. The first column is
// the trip's row position in the source file.
func WriteRows(w io.Writer, schema trips.Schema, rows []trips.Trip) error {
	if len(rows) == 0 {
		_, err := io.WriteString(w, "No more rows to display.\n")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := []string{"", trips.ColStartTime}
	if schema.EndTime {
		header = append(header, trips.ColEndTime)
	}
	header = append(header, trips.ColDuration, trips.ColStartStation, trips.ColEndStation, trips.ColUserType)
	if schema.Gender {
		header = append(header, trips.ColGender)
	}
	if schema.BirthYear {
		header = append(header, trips.ColBirthYear)
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, tr := range rows {
		cells := []string{strconv.Itoa(tr.Index), utils.FormatTimestamp(tr.StartTime)}
		if schema.EndTime {
			cells = append(cells, utils.FormatTimestamp(tr.EndTime))
		}
		cells = append(cells,
			strconv.FormatFloat(tr.Duration, 'f', -1, 64),
			tr.StartStation,
			tr.EndStation,
			tr.UserType,
		)
		if schema.Gender {
			cells = append(cells, tr.Gender)
		}
		if schema.BirthYear {
			year := ""
			if tr.HasBirthYear {
				year = strconv.Itoa(tr.BirthYear)
			}
			cells = append(cells, year)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

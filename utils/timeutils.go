package utils

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// TimestampLayout is the layout used by the bikeshare CSV exports
const TimestampLayout = "2006-01-02 15:04:05"

// ParseTimestamp parses a trip timestamp. The export layout is tried first;
// anything else goes through dateparse, interpreted as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(TimestampLayout, s); err == nil {
		return t, nil
	}
	return dateparse.ParseIn(s, time.UTC)
}

// FormatTimestamp renders a timestamp in the export layout, or "" for the zero time
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(TimestampLayout)
}

// ElapsedSeconds renders a duration as fractional seconds, e.g. "0.0123"
func ElapsedSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}

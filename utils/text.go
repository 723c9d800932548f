package utils

import (
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize lower-cases and trims a prompt answer or flag value
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// TitleCase turns "monday" or "MONDAY" into "Monday"
func TitleCase(s string) string {
	return cases.Title(language.English).String(strings.ToLower(s))
}

// Count formats n with thousands separators ("300,000")
func Count(n int) string {
	return humanize.Comma(int64(n))
}

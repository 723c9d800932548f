package session

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/trips"
)

func numberedTable(n int) *trips.Table {
	rows := make([]trips.Trip, n)
	for i := range rows {
		rows[i] = trips.Trip{Index: i, StartStation: fmt.Sprintf("Station-%02d", i), EndStation: "Home", UserType: "Subscriber"}
	}
	return trips.NewTable("test", trips.Schema{}, rows)
}

func browse(t *testing.T, tbl *trips.Table, input string) string {
	t.Helper()
	var out bytes.Buffer
	b := NewBrowser(NewPrompter(strings.NewReader(input), &out), 5)
	require.NoError(t, b.Browse(tbl))
	return out.String()
}

func TestBrowser_YesYesNo(t *testing.T) {
	out := browse(t, numberedTable(16), "yes\nyes\nno\nyes\n")

	for i := 0; i < 10; i++ {
		assert.Contains(t, out, fmt.Sprintf("Station-%02d", i))
	}
	for i := 10; i < 16; i++ {
		assert.NotContains(t, out, fmt.Sprintf("Station-%02d", i))
	}
	assert.Equal(t, 1, strings.Count(out, "Would you like to view 5 rows"))
	assert.Equal(t, 2, strings.Count(out, "Do you wish to continue?"))
	// nothing follows the final prompt
	assert.True(t, strings.HasSuffix(out, "Do you wish to continue? Enter yes or no: "))
}

func TestBrowser_PagesInOrder(t *testing.T) {
	out := browse(t, numberedTable(16), "yes\nyes\nno\n")
	first := strings.Index(out, "Station-04")
	second := strings.Index(out, "Station-05")
	require.True(t, first >= 0 && second >= 0)
	assert.Less(t, first, second)
	between := out[first:second]
	assert.Contains(t, between, "Do you wish to continue?")
}

func TestBrowser_DeclineImmediately(t *testing.T) {
	out := browse(t, numberedTable(16), "No\n")
	assert.NotContains(t, out, "Station-")
	assert.NotContains(t, out, "Do you wish to continue?")
}

func TestBrowser_StopsWhenExhausted(t *testing.T) {
	out := browse(t, numberedTable(7), "yes\nyes\nyes\n")
	for i := 0; i < 7; i++ {
		assert.Contains(t, out, fmt.Sprintf("Station-%02d", i))
	}
	assert.Equal(t, 1, strings.Count(out, "Do you wish to continue?"))
}

func TestBrowser_EmptyTable(t *testing.T) {
	out := browse(t, numberedTable(0), "yes\n")
	assert.Contains(t, out, "No more rows to display.")
}

func TestBrowser_EndOfInput(t *testing.T) {
	out := browse(t, numberedTable(16), "yes\n")
	assert.Contains(t, out, "Station-04")
	assert.NotContains(t, out, "Station-05")
}

func TestBrowser_PageSizeFallback(t *testing.T) {
	var out bytes.Buffer
	b := NewBrowser(NewPrompter(strings.NewReader("yes\nno\n"), &out), 0)
	require.NoError(t, b.Browse(numberedTable(16)))
	assert.Contains(t, out.String(), "Station-04")
	assert.NotContains(t, out.String(), "Station-05")
}

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"export layout", "2017-06-23 15:09:32", time.Date(2017, 6, 23, 15, 9, 32, 0, time.UTC)},
		{"surrounding spaces", "  2017-01-01 00:07:57 ", time.Date(2017, 1, 1, 0, 7, 57, 0, time.UTC)},
		{"iso with T", "2017-03-05T08:30:00", time.Date(2017, 3, 5, 8, 30, 0, 0, time.UTC)},
		{"us slashes", "03/05/2017 08:30", time.Date(2017, 3, 5, 8, 30, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseTimestamp_Invalid(t *testing.T) {
	for _, in := range []string{"", "not a date"} {
		_, err := ParseTimestamp(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestFormatTimestamp(t *testing.T) {
	assert.Equal(t, "", FormatTimestamp(time.Time{}))
	assert.Equal(t, "2017-06-23 15:09:32", FormatTimestamp(time.Date(2017, 6, 23, 15, 9, 32, 0, time.UTC)))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Monday", TitleCase("monday"))
	assert.Equal(t, "Sunday", TitleCase("SUNDAY"))
	assert.Equal(t, "Wednesday", TitleCase("wEdNeSdAy"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "new york city", Normalize("  New York City\n"))
}

func TestCount(t *testing.T) {
	assert.Equal(t, "300,000", Count(300000))
	assert.Equal(t, "5", Count(5))
}

func TestElapsedSeconds(t *testing.T) {
	assert.Equal(t, "1.5", ElapsedSeconds(1500*time.Millisecond))
	assert.Equal(t, "0", ElapsedSeconds(0))
}

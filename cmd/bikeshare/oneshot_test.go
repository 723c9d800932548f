package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/config"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/trips"
)

func testLoader() *trips.Loader {
	cfg := config.Default()
	cfg.DataDir = filepath.Join("..", "..", "testdata")
	return trips.NewLoaderFromConfig(cfg)
}

func TestOneshot_Text(t *testing.T) {
	var out bytes.Buffer
	err := oneshot(&out, testLoader(), trips.NewSelection("Chicago", "march", "monday"), "text")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Most Common Start Hour: 17")
	assert.Contains(t, out.String(), "Calculating User Stats...")
}

func TestOneshot_JSON(t *testing.T) {
	var out bytes.Buffer
	err := oneshot(&out, testLoader(), trips.NewSelection("washington", "all", "all"), "json")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	for _, key := range []string{"time", "stations", "duration", "users"} {
		assert.Contains(t, doc, key)
	}
	assert.Equal(t, "washington", doc["city"])
	assert.EqualValues(t, 5735, doc["duration"].(map[string]any)["total_seconds"])
}

func TestOneshot_Errors(t *testing.T) {
	tests := []struct {
		name   string
		sel    trips.Selection
		format string
		target error
	}{
		{"unknown city", trips.NewSelection("boston", "all", "all"), "text", trips.ErrUnknownCity},
		{"bad month", trips.NewSelection("chicago", "july", "all"), "text", trips.ErrInvalidSelection},
		{"bad format", trips.NewSelection("chicago", "all", "all"), "xml", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := oneshot(&out, testLoader(), tt.sel, tt.format)
			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
			assert.Empty(t, out.String())
		})
	}
}

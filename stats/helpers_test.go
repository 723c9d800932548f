package stats

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/config"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/trips"
)

func loadCity(t *testing.T, city, month, day string) *trips.Table {
	t.Helper()
	cfg := config.Default()
	cfg.DataDir = filepath.Join("..", "testdata")
	tbl, err := trips.NewLoaderFromConfig(cfg).Load(trips.NewSelection(city, month, day))
	require.NoError(t, err)
	return tbl
}

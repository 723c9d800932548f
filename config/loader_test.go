package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppConfig_ProjectFile(t *testing.T) {
	cfg, err := LoadAppConfig(filepath.Join("..", "config.yml"))
	require.NoError(t, err)
	assert.Equal(t, []string{"chicago", "new york city", "washington"}, cfg.CityNames())
	assert.Equal(t, DefaultPageSize, cfg.Browser.PageSize)
}

func TestLoadAppConfig_ProjectFileCitiesExist(t *testing.T) {
	cfg, err := LoadAppConfig(filepath.Join("..", "config.yml"))
	require.NoError(t, err)
	for _, c := range cfg.Cities {
		_, err := os.Stat(filepath.Join("..", cfg.DataDir, c.File))
		assert.NoError(t, err, c.Name)
	}
}

func TestLoadAppConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadAppConfig(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadAppConfig_Unreadable(t *testing.T) {
	_, err := LoadAppConfig(t.TempDir())
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	data := []byte(`
data_dir: /srv/bikeshare
cities:
  - name: " Chicago "
    file: chi.csv
  - name: boston
    file: /abs/boston.csv
browser:
  page_size: 10
`)
	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "/srv/bikeshare", cfg.DataDir)
	assert.Equal(t, []string{"chicago", "boston"}, cfg.CityNames())
	assert.Equal(t, map[string]string{"chicago": "chi.csv", "boston": "/abs/boston.csv"}, cfg.CityFiles())
	assert.Equal(t, 10, cfg.Browser.PageSize)
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("browser: {}\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultDataDir, cfg.DataDir)
	assert.Equal(t, Default().Cities, cfg.Cities)
	assert.Equal(t, DefaultPageSize, cfg.Browser.PageSize)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed yaml", "cities: [\n"},
		{"empty city table", "cities: []\n"},
		{"city without file", "cities:\n  - name: chicago\n"},
		{"city without name", "cities:\n  - file: chicago.csv\n"},
		{"duplicate city", "cities:\n  - {name: chicago, file: a.csv}\n  - {name: CHICAGO, file: b.csv}\n"},
		{"negative page size", "browser:\n  page_size: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	t.Setenv("BIKESHARE_DATA_DIR", "/data")
	ApplyEnv(&cfg)
	assert.Equal(t, "/data", cfg.DataDir)
}

func TestApplyEnv_Unset(t *testing.T) {
	cfg := Default()
	t.Setenv("BIKESHARE_DATA_DIR", "")
	require.NoError(t, os.Unsetenv("BIKESHARE_DATA_DIR"))
	ApplyEnv(&cfg)
	assert.Equal(t, DefaultDataDir, cfg.DataDir)
}

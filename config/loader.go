package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultPageSize is the number of rows the browser prints per page
	DefaultPageSize = 5
	// DefaultDataDir is where city CSV files are looked up when data_dir is unset
	DefaultDataDir = "."
)

// Default returns the built-in configuration with the three supported cities
func Default() AppConfig {
	return AppConfig{
		DataDir: DefaultDataDir,
		Cities: []City{
			{Name: "chicago", File: "chicago.csv"},
			{Name: "new york city", File: "new_york_city.csv"},
			{Name: "washington", File: "washington.csv"},
		},
		Browser: BrowserConfig{PageSize: DefaultPageSize},
	}
}

// LoadAppConfig loads and validates the application configuration from path.
// A missing file is not an error: Default is returned instead.
func LoadAppConfig(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return AppConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML config bytes, applies defaults and validates the result
func Parse(data []byte) (AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Cities == nil {
		cfg.Cities = Default().Cities
	}
	for i := range cfg.Cities {
		cfg.Cities[i].Name = strings.ToLower(strings.TrimSpace(cfg.Cities[i].Name))
	}
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir
	}
	if cfg.Browser.PageSize == 0 {
		cfg.Browser.PageSize = DefaultPageSize
	}
	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks struct tags and rejects duplicate city names
func Validate(cfg AppConfig) error {
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	seen := make(map[string]struct{}, len(cfg.Cities))
	for _, c := range cfg.Cities {
		if _, dup := seen[c.Name]; dup {
			return fmt.Errorf("invalid config: duplicate city %q", c.Name)
		}
		seen[c.Name] = struct{}{}
	}
	return nil
}

// ApplyEnv overrides config values from the environment (BIKESHARE_DATA_DIR)
func ApplyEnv(cfg *AppConfig) {
	if dir := os.Getenv("BIKESHARE_DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}
}

// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// The file declares the city table (city name -> CSV file), the data directory
// and the row browser page size. A missing file falls back to Default.
package config

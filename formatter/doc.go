// Package formatter renders aggregator results and trip rows for the console,
// and serializes a full summary to JSON.
//
// This package is organized into:
// - text.go: report sections, statistic lines and row pages
// - json.go: JSON serialization of a stats.Summary
package formatter

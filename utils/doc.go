// Package utils provides internal utility functions for the bikeshare explorer.
// This package is not intended to be imported by external code.
//
// It contains:
//   - Timestamp parsing for trip CSV columns
//   - Elapsed time and count formatting
//   - Title-casing of prompt answers
package utils

// Package stats computes the descriptive statistics reported for a filtered
// trip table: travel times, station popularity, trip durations and user
// demographics.
//
// Every aggregator only reads its *trips.Table. Derived values such as the
// start hour or the "<start> to <end>" route are computed while counting and
// never written back, so aggregators can run in any order on the same table.
//
// Mode ties resolve to the smallest value, numerically or lexicographically.
package stats

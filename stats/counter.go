package stats

import (
	"cmp"
	"sort"
)

// Count is one row of a value-count breakdown
type Count[T cmp.Ordered] struct {
	Value T   `json:"value"`
	N     int `json:"count"`
}

// Counter tallies occurrences, remembering first-appearance order
type Counter[T cmp.Ordered] struct {
	counts map[T]int
	order  []T
}

// NewCounter creates an empty counter
func NewCounter[T cmp.Ordered]() *Counter[T] {
	return &Counter[T]{counts: map[T]int{}}
}

// Add records one occurrence of v
func (c *Counter[T]) Add(v T) {
	if _, seen := c.counts[v]; !seen {
		c.order = append(c.order, v)
	}
	c.counts[v]++
}

// Len returns the number of distinct values
func (c *Counter[T]) Len() int { return len(c.order) }

// Mode returns the most frequent value and its count. Ties go to the smallest
// value. ok is false when nothing was added.
func (c *Counter[T]) Mode() (value T, n int, ok bool) {
	for v, cnt := range c.counts {
		if !ok || cnt > n || (cnt == n && v < value) {
			value, n, ok = v, cnt, true
		}
	}
	return value, n, ok
}

// Counts returns all values ordered by descending count, ties by first appearance
func (c *Counter[T]) Counts() []Count[T] {
	out := make([]Count[T], 0, len(c.order))
	for _, v := range c.order {
		out = append(out, Count[T]{Value: v, N: c.counts[v]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].N > out[j].N })
	return out
}

// Mode is a convenience wrapper returning the mode of values
func Mode[T cmp.Ordered](values []T) (T, bool) {
	c := NewCounter[T]()
	for _, v := range values {
		c.Add(v)
	}
	v, _, ok := c.Mode()
	return v, ok
}

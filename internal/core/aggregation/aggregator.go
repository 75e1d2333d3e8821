package aggregation

import "sort"

// Counter tallies occurrences per name with get-or-insert-zero semantics.
// Names keep the order in which they were first seen, which is what breaks
// ties when ranking. The image reference is captured on first insert only.
type Counter struct {
	index   map[string]int
	entries []RankedEntry
}

// NewCounter returns an empty counter.
func NewCounter() *Counter {
	return &Counter{index: make(map[string]int)}
}

// Add records one occurrence of name.
func (c *Counter) Add(name, image string) {
	c.AddN(name, image, 1)
}

// AddN records n occurrences of name. Empty names are ignored.
func (c *Counter) AddN(name, image string, n int) {
	if name == "" {
		return
	}
	idx, ok := c.index[name]
	if !ok {
		idx = len(c.entries)
		c.index[name] = idx
		c.entries = append(c.entries, RankedEntry{Name: name, Image: image})
	}
	c.entries[idx].Count += n
}

// Get returns the count for name, zero if it was never added.
func (c *Counter) Get(name string) int {
	idx, ok := c.index[name]
	if !ok {
		return 0
	}
	return c.entries[idx].Count
}

// Len returns the number of distinct names.
func (c *Counter) Len() int {
	return len(c.entries)
}

// Total returns the sum of all counts.
func (c *Counter) Total() int {
	total := 0
	for _, e := range c.entries {
		total += e.Count
	}
	return total
}

// Ranked returns entries sorted by count descending. Equal counts stay in
// first-encounter order. limit <= 0 returns everything.
func (c *Counter) Ranked(limit int) []RankedEntry {
	out := make([]RankedEntry, len(c.entries))
	copy(out, c.entries)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

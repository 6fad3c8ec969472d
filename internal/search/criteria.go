package search

import (
	"fmt"
	"strings"
)

// Criterion is a single dimension/value predicate.
type Criterion struct {
	Dimension Dimension
	Value     string
}

// Criteria is an ordered map of search predicates with unique dimensions.
// Insertion order only matters for echoing back to the user.
// The zero value is an empty, usable map.
type Criteria struct {
	entries []Criterion
	index   map[Dimension]int
}

// Set inserts or overwrites the value for d. Overwriting keeps the original position.
func (c *Criteria) Set(d Dimension, value string) {
	if c.index == nil {
		c.index = make(map[Dimension]int)
	}
	if i, ok := c.index[d]; ok {
		c.entries[i].Value = value
		return
	}
	c.index[d] = len(c.entries)
	c.entries = append(c.entries, Criterion{Dimension: d, Value: value})
}

// Get returns the value stored for d.
func (c Criteria) Get(d Dimension) (string, bool) {
	i, ok := c.index[d]
	if !ok {
		return "", false
	}
	return c.entries[i].Value, true
}

// Has reports whether d has an entry.
func (c Criteria) Has(d Dimension) bool {
	_, ok := c.index[d]
	return ok
}

// Len returns the number of entries.
func (c Criteria) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the entries in insertion order.
func (c Criteria) Entries() []Criterion {
	out := make([]Criterion, len(c.entries))
	copy(out, c.entries)
	return out
}

// String renders the criteria for display, e.g. `author:"jane" message:"@jane"`.
func (c Criteria) String() string {
	parts := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		parts = append(parts, fmt.Sprintf("%s:%q", e.Dimension, e.Value))
	}
	return strings.Join(parts, " ")
}

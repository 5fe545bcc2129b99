package ncbi

import (
	"maps"
	"slices"
)

// Catalog remembers every classification label seen in names.dmp together
// with the last row that used it. It is diagnostic state owned by a run and
// is never stored with taxon records.
type Catalog struct {
	examples map[string]string
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{examples: make(map[string]string)}
}

// Add records the row as the example for the label.
func (c *Catalog) Add(label string, row Row) {
	c.examples[label] = row.String()
}

// Example returns the example row of a label.
func (c *Catalog) Example(label string) (string, bool) {
	res, ok := c.examples[label]
	return res, ok
}

// Labels returns all seen labels in alphabetical order.
func (c *Catalog) Labels() []string {
	return slices.Sorted(maps.Keys(c.examples))
}

// Len returns the number of distinct labels.
func (c *Catalog) Len() int {
	return len(c.examples)
}

package client

import (
	"sort"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortOrder selects how the catalog is sorted for display
type SortOrder string

const (
	SortNameAsc    SortOrder = "name-asc"
	SortNameDesc   SortOrder = "name-desc"
	SortDateNewest SortOrder = "date-newest"
	SortDateOldest SortOrder = "date-oldest"
)

// Catalog holds the fetched flavor list. It is mutated only through the
// operations below; Sorted hands out copies so derived views never touch
// the held slice. Safe for concurrent use.
type Catalog struct {
	mu      sync.RWMutex
	flavors []Flavor
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{flavors: make([]Flavor, 0)}
}

// SetAll replaces the held list
func (c *Catalog) SetAll(flavors []Flavor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.flavors = make([]Flavor, len(flavors))
	copy(c.flavors, flavors)
}

// Append adds a flavor to the end of the held list
func (c *Catalog) Append(flavor Flavor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.flavors = append(c.flavors, flavor)
}

// ReplaceByID swaps the flavor with the matching ID, reporting whether a
// match was found
func (c *Catalog) ReplaceByID(flavor Flavor) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.flavors {
		if c.flavors[i].ID == flavor.ID {
			c.flavors[i] = flavor
			return true
		}
	}
	return false
}

// RemoveByID deletes the flavor with the matching ID, reporting whether a
// match was found
func (c *Catalog) RemoveByID(id uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.flavors {
		if c.flavors[i].ID == id {
			c.flavors = append(c.flavors[:i], c.flavors[i+1:]...)
			return true
		}
	}
	return false
}

// All returns a copy of the held list in insertion order
func (c *Catalog) All() []Flavor {
	c.mu.RLock()
	defer c.mu.RUnlock()
	flavors := make([]Flavor, len(c.flavors))
	copy(flavors, c.flavors)
	return flavors
}

// Len returns the number of held flavors
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.flavors)
}

// Sorted returns a new slice ordered per the given sort order. The held
// list is never reordered. Name comparison is collator-based so accented
// names sort the way a locale-aware string compare would; date ties keep
// their original relative order.
func (c *Catalog) Sorted(order SortOrder) []Flavor {
	flavors := c.All()

	switch order {
	case SortNameAsc:
		collator := collate.New(language.Und)
		sort.SliceStable(flavors, func(i, j int) bool {
			return collator.CompareString(flavors[i].Flavor, flavors[j].Flavor) < 0
		})
	case SortNameDesc:
		collator := collate.New(language.Und)
		sort.SliceStable(flavors, func(i, j int) bool {
			return collator.CompareString(flavors[i].Flavor, flavors[j].Flavor) > 0
		})
	case SortDateNewest:
		sort.SliceStable(flavors, func(i, j int) bool {
			return flavors[i].DateAdded.After(flavors[j].DateAdded)
		})
	case SortDateOldest:
		sort.SliceStable(flavors, func(i, j int) bool {
			return flavors[i].DateAdded.Before(flavors[j].DateAdded)
		})
	}

	return flavors
}

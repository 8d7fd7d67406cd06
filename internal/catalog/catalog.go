// Package catalog holds the static table of playable cards.
// A Catalog is loaded once at startup and never mutated afterwards, so it can
// be shared between sessions without locking.
package catalog

import (
	"fmt"
	"sort"
)

// Entry is a single playable card: an identifier and the image shown when it is face up.
type Entry struct {
	ID    int
	Image string
	Name  string
}

// DuplicateIDError is returned when two entries share an id.
type DuplicateIDError struct {
	ID int
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("catalog: duplicate card id %d", e.ID)
}

// Catalog is an immutable id -> entry table.
type Catalog struct {
	entries []Entry // sorted by ID
	byID    map[int]int
}

// New builds a catalog from the given entries.
// Entries are copied and sorted by id; negative ids and duplicates are rejected.
func New(entries []Entry) (*Catalog, error) {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	byID := make(map[int]int, len(sorted))
	for i, e := range sorted {
		if e.ID < 0 {
			return nil, fmt.Errorf("catalog: invalid card id %d", e.ID)
		}
		if _, dup := byID[e.ID]; dup {
			return nil, &DuplicateIDError{ID: e.ID}
		}
		byID[e.ID] = i
	}

	return &Catalog{entries: sorted, byID: byID}, nil
}

// Len returns the number of distinct cards.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// IDs returns all card ids in ascending order.
func (c *Catalog) IDs() []int {
	if c == nil {
		return nil
	}
	ids := make([]int, len(c.entries))
	for i, e := range c.entries {
		ids[i] = e.ID
	}
	return ids
}

// Entries returns a copy of all entries in id order.
func (c *Catalog) Entries() []Entry {
	if c == nil {
		return nil
	}
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup returns the entry for id.
func (c *Catalog) Lookup(id int) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	i, ok := c.byID[id]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Image returns the image reference for id, or "?" if the id is unknown.
func (c *Catalog) Image(id int) string {
	if e, ok := c.Lookup(id); ok {
		return e.Image
	}
	return "?"
}

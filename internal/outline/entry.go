// Package outline bridges the raw interleaved entry encoding exposed by
// PDF outline readers and the bookmark tree, in both directions.
package outline

// Entry is one element of a raw PDF outline: a flat sequence in which a
// Group following a Leaf holds that leaf's descendants.
type Entry interface {
	outlineEntry()
}

// Leaf is a single outline item.
type Leaf struct {
	Title string
	Page  PageRef
	Attrs map[string]string // style hints carried into bookmark attributes
}

// Group is a nested sub-sequence of entries.
type Group struct {
	Entries []Entry
}

func (Leaf) outlineEntry()  {}
func (Group) outlineEntry() {}

// PageRef is an opaque reference to a target page. The zero value marks
// an entry without a destination.
type PageRef int

// PageResolver maps a page reference to a 0-based page index.
type PageResolver func(PageRef) (int, error)

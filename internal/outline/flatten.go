package outline

import (
	"fmt"
	"strings"

	"github.com/jackzampolin/dogear/internal/bookmark"
)

// untitledFallback names entries whose title is empty or unreadable.
const untitledFallback = "untitled"

// Warning records a recoverable failure on a single outline entry.
type Warning struct {
	Index int    // position within the flat entry sequence
	Title string // title of the affected entry
	Err   error
}

// Flatten reconstructs a bookmark forest from the interleaved entry
// encoding. A Group directly after a Leaf becomes that leaf's children;
// a Group with no preceding leaf at its level splices in as siblings.
// Entries whose page resolution fails keep page 0 and are reported as
// warnings rather than aborting the walk.
func Flatten(entries []Entry, resolve PageResolver) ([]*bookmark.Node, []Warning) {
	if resolve == nil {
		resolve = func(PageRef) (int, error) {
			return 0, fmt.Errorf("no page resolver")
		}
	}
	var warns []Warning
	nodes := flatten(entries, 1, resolve, &warns)
	return nodes, warns
}

func flatten(entries []Entry, level int, resolve PageResolver, warns *[]Warning) []*bookmark.Node {
	var nodes []*bookmark.Node

	for i := 0; i < len(entries); i++ {
		switch e := entries[i].(type) {
		case Leaf:
			node := leafNode(e, i, level, resolve, warns)
			nodes = append(nodes, node)
			// A group right behind a leaf holds its children.
			if i+1 < len(entries) {
				if g, ok := entries[i+1].(Group); ok {
					node.Children = flatten(g.Entries, level+1, resolve, warns)
					i++
				}
			}
		case Group:
			if len(nodes) > 0 {
				// Consecutive groups pile onto the last node seen.
				last := nodes[len(nodes)-1]
				last.Children = append(last.Children, flatten(e.Entries, level+1, resolve, warns)...)
			} else {
				// No leaf yet at this level: attach as siblings.
				nodes = append(nodes, flatten(e.Entries, level, resolve, warns)...)
			}
		}
	}
	return nodes
}

func leafNode(leaf Leaf, index, level int, resolve PageResolver, warns *[]Warning) *bookmark.Node {
	title := strings.TrimSpace(leaf.Title)
	if title == "" {
		title = untitledFallback
	}

	page := 0
	if leaf.Page != 0 {
		idx, err := resolve(leaf.Page)
		if err != nil {
			*warns = append(*warns, Warning{Index: index, Title: title, Err: err})
		} else {
			page = idx
		}
	}

	var attrs map[string]string
	if len(leaf.Attrs) > 0 {
		attrs = make(map[string]string, len(leaf.Attrs))
		for k, v := range leaf.Attrs {
			attrs[k] = v
		}
	}

	return &bookmark.Node{
		Title:      title,
		Page:       page,
		Level:      level,
		Attributes: attrs,
	}
}

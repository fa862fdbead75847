// Package bookmark defines the in-memory bookmark tree and its XML
// interchange format.
package bookmark

import "errors"

// ErrNoBookmarks indicates a source (PDF outline or XML document) that
// contains no bookmark entries.
var ErrNoBookmarks = errors.New("no bookmarks found")

// Node is a single entry in a bookmark tree.
type Node struct {
	Title      string            `json:"title" yaml:"title"`
	Page       int               `json:"page" yaml:"page"`   // 0-based target page index
	Level      int               `json:"level" yaml:"level"` // 1-based nesting depth
	Attributes map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Children   []*Node           `json:"children,omitempty" yaml:"children,omitempty"`
}

// Count returns the total number of nodes in the forest, children included.
func Count(forest []*Node) int {
	n := 0
	for _, node := range forest {
		n += 1 + Count(node.Children)
	}
	return n
}

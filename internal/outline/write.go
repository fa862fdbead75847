package outline

import (
	"fmt"

	"github.com/jackzampolin/dogear/internal/bookmark"
)

// Handle identifies an outline entry created by a Builder. It is opaque
// to this package; callers pass it back as the parent of child entries.
type Handle any

// Builder adds outline entries to a destination document.
type Builder interface {
	// AddOutlineItem appends an entry targeting a 0-based page index
	// under parent, which is nil for top-level entries.
	AddOutlineItem(title string, pageIndex int, parent Handle) (Handle, error)
}

// AttributeSetter is implemented by Builders that can apply pass-through
// bookmark attributes to entries they created.
type AttributeSetter interface {
	SetOutlineAttributes(h Handle, attrs map[string]string) error
}

// Write replays a bookmark forest into b in document order, parents
// before children. The first failure aborts the walk.
func Write(b Builder, forest []*bookmark.Node) error {
	return write(b, forest, nil)
}

func write(b Builder, nodes []*bookmark.Node, parent Handle) error {
	for _, n := range nodes {
		h, err := b.AddOutlineItem(n.Title, n.Page, parent)
		if err != nil {
			return fmt.Errorf("failed to add outline item %q: %w", n.Title, err)
		}
		if setter, ok := b.(AttributeSetter); ok && len(n.Attributes) > 0 {
			if err := setter.SetOutlineAttributes(h, n.Attributes); err != nil {
				return fmt.Errorf("failed to set attributes on %q: %w", n.Title, err)
			}
		}
		if err := write(b, n.Children, h); err != nil {
			return err
		}
	}
	return nil
}

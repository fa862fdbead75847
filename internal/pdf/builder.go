package pdf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/color"

	"github.com/jackzampolin/dogear/internal/bookmark"
	"github.com/jackzampolin/dogear/internal/outline"
)

// entryNode is a stable interior node of the pending outline tree.
// pdfcpu bookmark values are only built at flush so that handles stay
// valid while the tree grows.
type entryNode struct {
	title    string
	page     int // 0-based
	bold     bool
	italic   bool
	color    *color.SimpleColor
	children []*entryNode
}

// Builder accumulates an outline tree to be written into a PDF.
type Builder struct {
	roots []*entryNode
}

// AddOutlineItem appends an entry under parent (nil for top level) and
// returns its handle.
func (b *Builder) AddOutlineItem(title string, pageIndex int, parent outline.Handle) (outline.Handle, error) {
	n := &entryNode{title: title, page: pageIndex}
	if parent == nil {
		b.roots = append(b.roots, n)
		return n, nil
	}
	p, ok := parent.(*entryNode)
	if !ok {
		return nil, fmt.Errorf("unknown parent handle of type %T", parent)
	}
	p.children = append(p.children, n)
	return n, nil
}

// SetOutlineAttributes applies pass-through bookmark attributes to a
// created entry. Only the style attributes are meaningful to a PDF
// outline; everything else is ignored.
func (b *Builder) SetOutlineAttributes(h outline.Handle, attrs map[string]string) error {
	n, ok := h.(*entryNode)
	if !ok {
		return fmt.Errorf("unknown handle of type %T", h)
	}
	applyStyleAttrs(n, attrs)
	return nil
}

// Bookmarks lowers the accumulated tree to pdfcpu bookmarks.
func (b *Builder) Bookmarks() []pdfcpu.Bookmark {
	return toBookmarks(b.roots)
}

func toBookmarks(nodes []*entryNode) []pdfcpu.Bookmark {
	if len(nodes) == 0 {
		return nil
	}
	bms := make([]pdfcpu.Bookmark, 0, len(nodes))
	for _, n := range nodes {
		bms = append(bms, pdfcpu.Bookmark{
			Title:    n.title,
			PageFrom: n.page + 1,
			Bold:     n.bold,
			Italic:   n.italic,
			Color:    n.color,
			Children: toBookmarks(n.children),
		})
	}
	return bms
}

// WriteBookmarks writes a copy of the PDF at inPath to outPath with its
// outline replaced by the given forest. The input file is never
// modified; the output appears atomically via a temp file and rename.
func WriteBookmarks(inPath, outPath string, forest []*bookmark.Node, opts Options) error {
	if len(forest) == 0 {
		return fmt.Errorf("cannot write outline: %w", bookmark.ErrNoBookmarks)
	}

	b := &Builder{}
	if err := outline.Write(b, forest); err != nil {
		return err
	}

	dir := filepath.Dir(outPath)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(outPath), uuid.New().String()))

	if err := api.AddBookmarksFile(inPath, tmp, b.Bookmarks(), true, opts.configuration()); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write outline: %w", err)
	}
	if err := os.Rename(tmp, outPath); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	return nil
}

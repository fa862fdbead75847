// Package pdf reads and writes PDF outlines through pdfcpu.
package pdf

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/jackzampolin/dogear/internal/bookmark"
	"github.com/jackzampolin/dogear/internal/outline"
)

// Options controls how PDFs are opened and written.
type Options struct {
	Validation string // relaxed (default), strict, or none
}

// configuration translates Options into a pdfcpu configuration.
// Unrecognized validation values fall back to relaxed.
func (o Options) configuration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	switch strings.ToLower(o.Validation) {
	case "strict":
		conf.ValidationMode = model.ValidationStrict
	case "none":
		conf.ValidationMode = model.ValidationNone
	default:
		conf.ValidationMode = model.ValidationRelaxed
	}
	return conf
}

// Document is an opened PDF: its page count and raw outline entries.
type Document struct {
	pageCount int
	entries   []outline.Entry
}

// Open reads the page count and outline of the PDF at path. A document
// without an outline yields zero entries, not an error.
func Open(path string, opts Options) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	conf := opts.configuration()

	pageCount, err := api.PageCount(f, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to get page count: %w", err)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind PDF: %w", err)
	}

	bms, err := api.Bookmarks(f, conf)
	if err != nil && !isNoOutline(err) {
		return nil, fmt.Errorf("failed to read outline: %w", err)
	}

	return &Document{
		pageCount: pageCount,
		entries:   lowerBookmarks(bms),
	}, nil
}

// isNoOutline reports whether err is pdfcpu's missing-outline condition.
// The sentinel is unexported there, so the message is matched instead.
func isNoOutline(err error) bool {
	return err != nil && strings.Contains(err.Error(), "no bookmarks")
}

// Entries returns the outline in its interleaved form: each item as a
// leaf, followed by a group holding its descendants when it has any.
func (d *Document) Entries() []outline.Entry {
	return d.entries
}

// PageIndex resolves a page reference to a 0-based page index.
func (d *Document) PageIndex(ref outline.PageRef) (int, error) {
	n := int(ref)
	if n < 1 || n > d.pageCount {
		return 0, fmt.Errorf("page reference %d out of range 1..%d", n, d.pageCount)
	}
	return n - 1, nil
}

// lowerBookmarks converts pdfcpu's bookmark trees to outline entries.
func lowerBookmarks(bms []pdfcpu.Bookmark) []outline.Entry {
	var entries []outline.Entry
	for _, bm := range bms {
		entries = append(entries, outline.Leaf{
			Title: bm.Title,
			Page:  outline.PageRef(bm.PageFrom),
			Attrs: styleAttrs(bm),
		})
		if len(bm.Children) > 0 {
			entries = append(entries, outline.Group{Entries: lowerBookmarks(bm.Children)})
		}
	}
	return entries
}

// ReadBookmarks extracts the bookmark forest of the PDF at path.
func ReadBookmarks(path string, opts Options) ([]*bookmark.Node, []outline.Warning, error) {
	doc, err := Open(path, opts)
	if err != nil {
		return nil, nil, err
	}
	forest, warns := outline.Flatten(doc.Entries(), doc.PageIndex)
	return forest, warns, nil
}

// Package apply writes bookmarks from an XML file into a PDF's outline.
package apply

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackzampolin/dogear/internal/bookmark"
	"github.com/jackzampolin/dogear/internal/pdf"
)

// writeBookmarks is replaced in tests to avoid needing PDF fixtures.
var writeBookmarks = pdf.WriteBookmarks

// Request contains the parameters for applying bookmarks.
type Request struct {
	PDFPath    string // source PDF, copied unchanged
	XMLPath    string // bookmarks XML to apply
	OutputPath string // destination PDF
	PDF        pdf.Options
	Logger     *slog.Logger // optional logger for progress updates
}

// Result contains the result of a successful apply.
type Result struct {
	BookmarkCount int
	OutputPath    string
}

// Run parses req.XMLPath and writes a copy of req.PDFPath to
// req.OutputPath with the parsed outline. An XML document with no
// usable items fails with an error wrapping ErrNoBookmarks.
func Run(ctx context.Context, req Request) (*Result, error) {
	log := req.Logger
	if log == nil {
		log = slog.Default()
	}

	forest, err := bookmark.ReadXMLFile(req.XMLPath)
	if err != nil {
		return nil, err
	}
	if len(forest) == 0 {
		return nil, fmt.Errorf("%s: %w", req.XMLPath, bookmark.ErrNoBookmarks)
	}

	count := bookmark.Count(forest)
	log.Debug("applying bookmarks", "count", count, "pdf", req.PDFPath)

	if err := writeBookmarks(req.PDFPath, req.OutputPath, forest, req.PDF); err != nil {
		return nil, err
	}

	log.Info("bookmarks applied", "count", count, "output", req.OutputPath)

	return &Result{BookmarkCount: count, OutputPath: req.OutputPath}, nil
}

// FromXML runs the apply and reduces the outcome to a boolean, logging
// the cause of any failure. An XML file without usable bookmarks logs a
// warning; every other failure logs an error.
func FromXML(ctx context.Context, req Request) bool {
	log := req.Logger
	if log == nil {
		log = slog.Default()
	}

	if _, err := Run(ctx, req); err != nil {
		if errors.Is(err, bookmark.ErrNoBookmarks) {
			log.Warn("no bookmarks found", "xml", req.XMLPath)
		} else {
			log.Error("apply failed", "err", err)
		}
		return false
	}
	return true
}

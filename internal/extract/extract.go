// Package extract turns a PDF's outline into a bookmarks XML file.
package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackzampolin/dogear/internal/bookmark"
	"github.com/jackzampolin/dogear/internal/pdf"
)

// readBookmarks is replaced in tests to avoid needing PDF fixtures.
var readBookmarks = pdf.ReadBookmarks

// Request contains the parameters for extracting bookmarks.
type Request struct {
	PDFPath  string
	XMLPath  string
	Producer string            // INFO PRODUCER attribute of the output
	Defaults map[string]string // overrides for the default ITEM attributes
	PDF      pdf.Options
	Logger   *slog.Logger // optional logger for progress and warnings
}

// Result contains the result of a successful extraction.
type Result struct {
	BookmarkCount int
	XMLPath       string
}

// Run extracts the outline of req.PDFPath and writes it to req.XMLPath.
// A PDF without any bookmarks fails with an error wrapping ErrNoBookmarks.
func Run(ctx context.Context, req Request) (*Result, error) {
	log := req.Logger
	if log == nil {
		log = slog.Default()
	}

	log.Debug("extracting bookmarks", "pdf", req.PDFPath)

	forest, warns, err := readBookmarks(req.PDFPath, req.PDF)
	if err != nil {
		return nil, fmt.Errorf("failed to extract bookmarks from %s: %w", req.PDFPath, err)
	}
	for _, w := range warns {
		log.Warn("skipping bookmark destination", "index", w.Index, "title", w.Title, "err", w.Err)
	}
	if len(forest) == 0 {
		return nil, fmt.Errorf("%s: %w", req.PDFPath, bookmark.ErrNoBookmarks)
	}

	opts := bookmark.XMLOptions{Producer: req.Producer, Defaults: req.Defaults}
	if err := bookmark.WriteXMLFile(req.XMLPath, forest, opts); err != nil {
		return nil, err
	}

	count := bookmark.Count(forest)
	log.Info("bookmarks exported", "count", count, "xml", req.XMLPath)

	return &Result{BookmarkCount: count, XMLPath: req.XMLPath}, nil
}

// ToXML runs the extraction and reduces the outcome to a boolean,
// logging the cause of any failure. A PDF without bookmarks logs a
// warning; every other failure logs an error.
func ToXML(ctx context.Context, req Request) bool {
	log := req.Logger
	if log == nil {
		log = slog.Default()
	}

	if _, err := Run(ctx, req); err != nil {
		if errors.Is(err, bookmark.ErrNoBookmarks) {
			log.Warn("no bookmarks found", "pdf", req.PDFPath)
		} else {
			log.Error("extraction failed", "err", err)
		}
		return false
	}
	return true
}

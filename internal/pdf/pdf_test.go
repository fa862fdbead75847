package pdf

import (
	"errors"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/jackzampolin/dogear/internal/outline"
)

func TestOptions_Configuration(t *testing.T) {
	tests := []struct {
		validation string
		want       int
	}{
		{"", model.ValidationRelaxed},
		{"relaxed", model.ValidationRelaxed},
		{"strict", model.ValidationStrict},
		{"STRICT", model.ValidationStrict},
		{"none", model.ValidationNone},
		{"bogus", model.ValidationRelaxed},
	}

	for _, tt := range tests {
		conf := Options{Validation: tt.validation}.configuration()
		if conf.ValidationMode != tt.want {
			t.Errorf("configuration(%q).ValidationMode = %d, want %d", tt.validation, conf.ValidationMode, tt.want)
		}
	}
}

func TestDocument_PageIndex(t *testing.T) {
	doc := &Document{pageCount: 10}

	idx, err := doc.PageIndex(1)
	if err != nil {
		t.Fatalf("PageIndex(1) error = %v", err)
	}
	if idx != 0 {
		t.Errorf("PageIndex(1) = %d, want 0", idx)
	}

	idx, err = doc.PageIndex(10)
	if err != nil {
		t.Fatalf("PageIndex(10) error = %v", err)
	}
	if idx != 9 {
		t.Errorf("PageIndex(10) = %d, want 9", idx)
	}

	for _, ref := range []outline.PageRef{0, 11, -3} {
		if _, err := doc.PageIndex(ref); err == nil {
			t.Errorf("PageIndex(%d) expected error", ref)
		}
	}
}

func TestLowerBookmarks(t *testing.T) {
	bms := []pdfcpu.Bookmark{
		{Title: "A", PageFrom: 1, Children: []pdfcpu.Bookmark{
			{Title: "B", PageFrom: 3},
		}},
		{Title: "C", PageFrom: 9, Bold: true},
	}

	entries := lowerBookmarks(bms)
	if len(entries) != 3 {
		t.Fatalf("lowerBookmarks() returned %d entries, want 3", len(entries))
	}

	leafA, ok := entries[0].(outline.Leaf)
	if !ok || leafA.Title != "A" || leafA.Page != 1 {
		t.Errorf("entries[0] = %+v, want leaf A page ref 1", entries[0])
	}

	group, ok := entries[1].(outline.Group)
	if !ok || len(group.Entries) != 1 {
		t.Fatalf("entries[1] = %+v, want group with one entry", entries[1])
	}
	leafB, ok := group.Entries[0].(outline.Leaf)
	if !ok || leafB.Title != "B" || leafB.Page != 3 {
		t.Errorf("group entry = %+v, want leaf B page ref 3", group.Entries[0])
	}

	leafC, ok := entries[2].(outline.Leaf)
	if !ok || leafC.Title != "C" {
		t.Fatalf("entries[2] = %+v, want leaf C", entries[2])
	}
	if leafC.Attrs["FONTSTYLE"] != "2" {
		t.Errorf("leaf C attrs = %v, want FONTSTYLE 2", leafC.Attrs)
	}
}

func TestLowerBookmarks_Empty(t *testing.T) {
	if entries := lowerBookmarks(nil); len(entries) != 0 {
		t.Errorf("lowerBookmarks(nil) = %v, want empty", entries)
	}
}

func TestIsNoOutline(t *testing.T) {
	if !isNoOutline(errors.New("pdfcpu: no bookmarks available")) {
		t.Error("expected missing-outline error to match")
	}
	if isNoOutline(errors.New("pdfcpu: validation failed")) {
		t.Error("unexpected match for unrelated error")
	}
	if isNoOutline(nil) {
		t.Error("unexpected match for nil error")
	}
}

package pdf

import (
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/color"
)

// Style attributes carried between PDF outline flags and bookmark
// attributes. FONTSTYLE is the PDF outline F flag (bit 1 italic, bit 2
// bold); COLOR is a 32-bit ARGB value in decimal.
const (
	attrFontStyle = "FONTSTYLE"
	attrColor     = "COLOR"

	fontStyleItalic = 1
	fontStyleBold   = 2

	// colorDefault is opaque black, the viewer default.
	colorDefault = uint32(0xFF000000)
)

// styleAttrs extracts non-default style flags of a pdfcpu bookmark as
// pass-through attributes. Returns nil when everything is default.
func styleAttrs(bm pdfcpu.Bookmark) map[string]string {
	var attrs map[string]string
	set := func(k, v string) {
		if attrs == nil {
			attrs = make(map[string]string)
		}
		attrs[k] = v
	}

	style := 0
	if bm.Italic {
		style |= fontStyleItalic
	}
	if bm.Bold {
		style |= fontStyleBold
	}
	if style != 0 {
		set(attrFontStyle, strconv.Itoa(style))
	}

	if bm.Color != nil {
		if argb := argbFromColor(*bm.Color); argb != colorDefault {
			set(attrColor, strconv.FormatUint(uint64(argb), 10))
		}
	}

	return attrs
}

// applyStyleAttrs sets style flags on a pending entry from pass-through
// attributes. Unparseable or default values are ignored.
func applyStyleAttrs(n *entryNode, attrs map[string]string) {
	if v, ok := attrs[attrFontStyle]; ok {
		if style, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			n.italic = style&fontStyleItalic != 0
			n.bold = style&fontStyleBold != 0
		}
	}
	if v, ok := attrs[attrColor]; ok {
		if argb, err := strconv.ParseUint(strings.TrimSpace(v), 10, 32); err == nil && uint32(argb) != colorDefault {
			c := colorFromARGB(uint32(argb))
			n.color = &c
		}
	}
}

func argbFromColor(c color.SimpleColor) uint32 {
	r := uint32(c.R*255 + 0.5)
	g := uint32(c.G*255 + 0.5)
	b := uint32(c.B*255 + 0.5)
	return colorDefault | r<<16 | g<<8 | b
}

func colorFromARGB(argb uint32) color.SimpleColor {
	return color.SimpleColor{
		R: float32((argb>>16)&0xFF) / 255,
		G: float32((argb>>8)&0xFF) / 255,
		B: float32(argb&0xFF) / 255,
	}
}

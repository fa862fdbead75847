package bookmark

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Element and attribute names of the bookmark XML format.
const (
	rootElement = "BOOKMARKS"

	attrIndent = "INDENT"
	attrPage   = "PAGE"
	attrName   = "NAME"
)

// defaultProducer is written to the INFO element when no producer is set.
const defaultProducer = "dogear"

// attrOrder fixes the emission order of the canonical ITEM attributes.
// Extra attributes follow in sorted key order so output is deterministic.
var attrOrder = []string{attrIndent, attrPage, attrName, "OPEN", "FONTSTYLE", "COLOR", "ZOOMMODE", "PARMA"}

// defaultItemAttrs returns the attribute defaults emitted on every ITEM.
func defaultItemAttrs() map[string]string {
	return map[string]string{
		"OPEN":      "1",
		"FONTSTYLE": "0",
		"COLOR":     "4278190080",
		"ZOOMMODE":  "0",
		"PARMA":     "0.000000,0.000000,0.000000,0.000000",
	}
}

// XMLOptions controls serialization. The zero value uses the builtin
// producer and attribute defaults.
type XMLOptions struct {
	Producer string            // INFO PRODUCER attribute
	Defaults map[string]string // per-key overrides for the default ITEM attributes
}

// xmlDocument mirrors the root element. XMLName carries no fixed name so
// parsing accepts any root element; serialization sets it explicitly.
type xmlDocument struct {
	XMLName xml.Name
	Info    xmlInfo   `xml:"INFO"`
	Items   []xmlItem `xml:"ITEM"`
}

type xmlInfo struct {
	Producer string `xml:"PRODUCER,attr"`
}

type xmlItem struct {
	Attrs []xml.Attr `xml:",any,attr"`
	Items []xmlItem  `xml:"ITEM"`
}

// EncodeXML serializes a bookmark forest to the BOOKMARKS XML format.
func EncodeXML(forest []*Node, opts XMLOptions) ([]byte, error) {
	producer := opts.Producer
	if producer == "" {
		producer = defaultProducer
	}

	defaults := defaultItemAttrs()
	for k, v := range opts.Defaults {
		defaults[k] = v
	}

	doc := xmlDocument{
		XMLName: xml.Name{Local: rootElement},
		Info:    xmlInfo{Producer: producer},
	}
	for _, n := range forest {
		doc.Items = append(doc.Items, itemFromNode(n, defaults))
	}

	body, err := xml.MarshalIndent(doc, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal bookmarks: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.Write(body)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// itemFromNode assembles the attribute set for one node: defaults first,
// then the computed INDENT/PAGE/NAME triple, then the node's own
// attributes, later entries overriding earlier ones on key collision.
func itemFromNode(n *Node, defaults map[string]string) xmlItem {
	values := make(map[string]string, len(defaults)+3+len(n.Attributes))
	for k, v := range defaults {
		values[k] = v
	}
	values[attrIndent] = strconv.Itoa(n.Level)
	values[attrPage] = strconv.Itoa(n.Page)
	values[attrName] = n.Title
	for k, v := range n.Attributes {
		values[k] = v
	}

	attrs := make([]xml.Attr, 0, len(values))
	emitted := make(map[string]bool, len(values))
	for _, k := range attrOrder {
		if v, ok := values[k]; ok {
			attrs = append(attrs, xml.Attr{Name: xml.Name{Local: k}, Value: v})
			emitted[k] = true
		}
	}
	extras := make([]string, 0)
	for k := range values {
		if !emitted[k] {
			extras = append(extras, k)
		}
	}
	sort.Strings(extras)
	for _, k := range extras {
		attrs = append(attrs, xml.Attr{Name: xml.Name{Local: k}, Value: values[k]})
	}

	item := xmlItem{Attrs: attrs}
	for _, child := range n.Children {
		item.Items = append(item.Items, itemFromNode(child, defaults))
	}
	return item
}

// DecodeXML parses a bookmark XML document into a forest.
func DecodeXML(data []byte) ([]*Node, error) {
	var doc xmlDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse bookmarks XML: %w", err)
	}

	forest := make([]*Node, 0, len(doc.Items))
	for _, item := range doc.Items {
		if n := nodeFromItem(item, 1); n != nil {
			forest = append(forest, n)
		}
	}
	return forest, nil
}

// nodeFromItem converts one ITEM element. Items whose NAME is empty after
// trimming are dropped together with their entire subtree. The INDENT
// attribute wins over the structural level when present and parseable.
func nodeFromItem(item xmlItem, level int) *Node {
	attrs := make(map[string]string, len(item.Attrs))
	for _, a := range item.Attrs {
		attrs[a.Name.Local] = a.Value
	}

	title := strings.TrimSpace(attrs[attrName])
	if title == "" {
		return nil
	}

	n := &Node{
		Title:      title,
		Level:      level,
		Attributes: attrs,
	}
	if page, err := strconv.Atoi(strings.TrimSpace(attrs[attrPage])); err == nil {
		n.Page = page
	}
	if lvl, err := strconv.Atoi(strings.TrimSpace(attrs[attrIndent])); err == nil {
		n.Level = lvl
	}

	for _, child := range item.Items {
		if c := nodeFromItem(child, n.Level+1); c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// WriteXMLFile serializes the forest and writes it to path.
func WriteXMLFile(path string, forest []*Node, opts XMLOptions) error {
	data, err := EncodeXML(forest, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write bookmarks XML: %w", err)
	}
	return nil
}

// ReadXMLFile reads and parses a bookmark XML file.
func ReadXMLFile(path string) ([]*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bookmarks XML: %w", err)
	}
	return DecodeXML(data)
}

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/dogear/internal/extract"
)

var (
	extractProducer   string
	extractValidation string
	extractDefaults   map[string]string
)

var extractCmd = &cobra.Command{
	Use:   "extract <pdf> [xml]",
	Short: "Extract PDF bookmarks into an editable XML file",
	Long: `Extract reads the outline of a PDF and writes it as an XML bookmark
tree. If no XML path is given, the file is written next to the PDF with
the extension swapped to .xml.

Examples:
  dogear extract book.pdf                    # writes book.xml
  dogear extract book.pdf bookmarks.xml
  dogear extract book.pdf --default OPEN=0   # collapse items in viewers`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pdfPath := args[0]
		xmlPath := strings.TrimSuffix(pdfPath, filepath.Ext(pdfPath)) + ".xml"
		if len(args) == 2 {
			xmlPath = args[1]
		}

		producer := cfg.Producer
		if extractProducer != "" {
			producer = extractProducer
		}

		req := extract.Request{
			PDFPath:  pdfPath,
			XMLPath:  xmlPath,
			Producer: producer,
			Defaults: xmlDefaults(extractDefaults),
			PDF:      pdfOptions(extractValidation),
			Logger:   logger,
		}
		if !extract.ToXML(cmd.Context(), req) {
			return fmt.Errorf("failed to extract bookmarks from %s", pdfPath)
		}
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVar(
		&extractProducer, "producer", "", "PRODUCER attribute written to the XML header",
	)
	extractCmd.Flags().StringVar(
		&extractValidation, "validation", "", "PDF validation mode: strict, relaxed, or none",
	)
	extractCmd.Flags().StringToStringVar(
		&extractDefaults, "default", nil, "default ITEM attribute as KEY=VALUE (repeatable)",
	)
}

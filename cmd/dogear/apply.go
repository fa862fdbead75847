package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/dogear/internal/apply"
)

var applyValidation string

var applyCmd = &cobra.Command{
	Use:   "apply <pdf> <xml> <output-pdf>",
	Short: "Write bookmarks from an XML file into a PDF",
	Long: `Apply reads a bookmark XML file and writes its tree into a copy of
the PDF, replacing any outline the PDF already has. The input PDF is
left untouched.

Example:
  dogear apply book.pdf book.xml book-bookmarked.pdf`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := apply.Request{
			PDFPath:    args[0],
			XMLPath:    args[1],
			OutputPath: args[2],
			PDF:        pdfOptions(applyValidation),
			Logger:     logger,
		}
		if !apply.FromXML(cmd.Context(), req) {
			return fmt.Errorf("failed to apply bookmarks to %s", args[0])
		}
		return nil
	},
}

func init() {
	applyCmd.Flags().StringVar(
		&applyValidation, "validation", "", "PDF validation mode: strict, relaxed, or none",
	)
}

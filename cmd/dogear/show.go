package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/dogear/internal/cli"
	"github.com/jackzampolin/dogear/internal/pdf"
)

var showValidation string

var showCmd = &cobra.Command{
	Use:   "show <pdf>",
	Short: "Print the bookmark tree of a PDF",
	Long: `Show reads the outline of a PDF and prints it to stdout in the
configured output format (yaml or json) without writing any files.

Example:
  dogear show book.pdf -o json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pdfPath := args[0]

		forest, warnings, err := pdf.ReadBookmarks(pdfPath, pdfOptions(showValidation))
		if err != nil {
			return fmt.Errorf("failed to read bookmarks from %s: %w", pdfPath, err)
		}
		for _, w := range warnings {
			logger.Warn("skipping bookmark destination",
				"index", w.Index,
				"title", w.Title,
				"err", w.Err,
			)
		}

		return cli.Output(forest)
	},
}

func init() {
	showCmd.Flags().StringVar(
		&showValidation, "validation", "", "PDF validation mode: strict, relaxed, or none",
	)
}

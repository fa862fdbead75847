package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/dogear/internal/cli"
	"github.com/jackzampolin/dogear/internal/config"
	"github.com/jackzampolin/dogear/internal/pdf"
	"github.com/jackzampolin/dogear/version"
)

var (
	cfgFile      string
	outputFormat string
	logLevel     string
	logFormat    string

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "dogear",
	Short: "Convert between PDF outlines and editable bookmark XML files",
	Long: `Dogear extracts the outline (bookmark tree) of a PDF into an
editable XML file and writes edited bookmarks back into a PDF.

Typical flow:
  dogear extract book.pdf             # writes book.xml next to the PDF
  ... edit book.xml ...
  dogear apply book.pdf book.xml out.pdf`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.dogear/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)
	rootCmd.PersistentFlags().StringVar(
		&logLevel, "log-level", "", "log level: debug, info, warn, or error",
	)
	rootCmd.PersistentFlags().StringVar(
		&logFormat, "log-format", "", "log format: text or json",
	)

	// Load config and set up logging before any command runs
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cli.SetOutputFormat(outputFormat)

		c, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if logLevel != "" {
			c.LogLevel = logLevel
		}
		if logFormat != "" {
			c.LogFormat = logFormat
		}
		cfg = c
		logger = newLogger(c.LogLevel, c.LogFormat)
		return nil
	}

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger builds the process logger. Logs go to stderr so structured
// command output on stdout stays clean.
func newLogger(level, format string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if strings.ToLower(format) == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// pdfOptions merges a per-command --validation flag with the config.
func pdfOptions(flagValidation string) pdf.Options {
	validation := cfg.PDF.Validation
	if flagValidation != "" {
		validation = flagValidation
	}
	return pdf.Options{Validation: validation}
}

// xmlDefaults merges per-command --default flags over the config map.
func xmlDefaults(flagDefaults map[string]string) map[string]string {
	merged := make(map[string]string, len(cfg.Defaults)+len(flagDefaults))
	for k, v := range cfg.Defaults {
		merged[k] = v
	}
	for k, v := range flagDefaults {
		merged[k] = v
	}
	return merged
}

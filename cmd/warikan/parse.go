package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/warikan/warikan-core/internal/config"
	"github.com/warikan/warikan-core/internal/ingest"
)

var parseOutPath string

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Parse an expense CSV into normalized transaction drafts",
	Long: `Parse reads an expense CSV export and emits sanitized transaction drafts
as JSON. Column mapping is auto-detected from the headers unless the profile
supplies an explicit columns section. Rows with missing or malformed fields
are skipped; the import fails only when nothing survives.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

// importReport is the parse command's JSON output: a batch ID for
// provenance, the source file, and the surviving drafts.
type importReport struct {
	ImportID     string                     `json:"import_id"`
	SourceFile   string                     `json:"source_file"`
	RowCount     int                        `json:"row_count"`
	Warnings     []string                   `json:"warnings,omitempty"`
	Transactions []ingest.ParsedTransaction `json:"transactions"`
}

func init() {
	parseCmd.Flags().StringVarP(&parseOutPath, "out", "o", "", "write the report to a file instead of stdout")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	log := newLogger()

	var opts ingest.ParseOptions
	if profilePath != "" {
		profile, err := config.Load(profilePath)
		if err != nil {
			return err
		}
		opts.ColumnMapping = profile.Columns
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	fileName := filepath.Base(args[0])

	result, err := ingest.ParseCSV(string(data), fileName, &opts)
	if result != nil {
		for _, w := range result.Warnings {
			log.Warn().Str("file", fileName).Msg(w)
		}
	}
	if err != nil {
		if errors.Is(err, ingest.ErrMissingRequiredColumns) {
			log.Error().Msg("run 'warikan detect' to inspect the headers, or map columns in the profile")
		}
		return err
	}

	report := importReport{
		ImportID:     uuid.NewString(),
		SourceFile:   fileName,
		RowCount:     len(result.Transactions),
		Warnings:     result.Warnings,
		Transactions: result.Transactions,
	}

	log.Info().
		Str("import_id", report.ImportID).
		Str("file", fileName).
		Int("rows", report.RowCount).
		Msg("parsed csv")

	return writeJSON(report, parseOutPath)
}

func writeJSON(v any, path string) error {
	out := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

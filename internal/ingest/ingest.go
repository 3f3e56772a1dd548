// Package ingest turns loosely structured household expense CSVs into
// validated, sanitized transaction drafts.
//
// The package is a pure library: it never touches the filesystem or the
// network, holds no state between calls, and is safe to invoke concurrently
// for different files. The caller reads the file, hands the text in, and
// persists whatever comes out.
package ingest

import (
	"encoding/csv"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// utf8BOM is tolerated at the start of input and stripped before parsing.
const utf8BOM = "\uFEFF"

// DetectHeaders parses only the header row of csvText and proposes a column
// mapping. Headers matching a sensitive-data pattern are removed from the
// candidate list and reported in ExcludedHeaders instead.
func DetectHeaders(csvText string) (*HeaderDetection, error) {
	if strings.TrimSpace(csvText) == "" {
		return nil, fmt.Errorf("ingest.DetectHeaders: %w", ErrEmptyInput)
	}

	headers, err := readHeaderRow(csvText)
	if err != nil {
		return nil, fmt.Errorf("ingest.DetectHeaders: %w: %v", ErrNoHeaders, err)
	}
	if len(headers) == 0 {
		return nil, fmt.Errorf("ingest.DetectHeaders: %w", ErrNoHeaders)
	}

	kept, excluded := filterSensitiveHeaders(headers)

	return &HeaderDetection{
		Headers:          kept,
		SuggestedMapping: autoDetectMapping(kept),
		ExcludedHeaders:  excluded,
	}, nil
}

// ParseCSV parses csvText into sanitized transaction drafts. fileName is
// recorded on every draft as provenance. When opts carries an explicit
// ColumnMapping it takes precedence over auto-detection.
//
// Rows whose date, description or amount cell is empty or unparseable are
// dropped silently; only zero surviving rows escalates to ErrNoValidRows.
// The returned ParseResult is non-nil whenever warnings were collected, even
// alongside a non-nil error, so sensitive-column notices survive failures.
func ParseCSV(csvText, fileName string, opts *ParseOptions) (*ParseResult, error) {
	if strings.TrimSpace(csvText) == "" {
		return nil, fmt.Errorf("ingest.ParseCSV: %w", ErrEmptyInput)
	}
	if len(csvText) > MaxFileBytes {
		return nil, fmt.Errorf("ingest.ParseCSV: %w: %d bytes exceeds the %d MiB limit",
			ErrFileTooLarge, len(csvText), MaxFileBytes/(1024*1024))
	}

	records, err := readAllRecords(csvText)
	if err != nil {
		return nil, fmt.Errorf("ingest.ParseCSV: reading csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("ingest.ParseCSV: %w", ErrNoHeaders)
	}

	headers := records[0]
	rows := records[1:]

	if len(rows) == 0 {
		return nil, fmt.Errorf("ingest.ParseCSV: %w", ErrNoDataRows)
	}
	if len(rows) > MaxDataRows {
		p := message.NewPrinter(language.Japanese)
		return nil, fmt.Errorf("ingest.ParseCSV: %w: %s rows exceeds the limit of %s",
			ErrRowLimitExceeded, p.Sprintf("%d", len(rows)), p.Sprintf("%d", MaxDataRows))
	}

	kept, excluded := filterSensitiveHeaders(headers)

	var warnings []string
	if len(excluded) > 0 {
		warnings = append(warnings,
			excludedColumnsWarningPrefix+": "+strings.Join(excluded, ", "))
	}

	mapping := resolveMapping(kept, opts)
	if !mapping.Complete() {
		detected := noHeadersPlaceholder
		if len(kept) > 0 {
			detected = strings.Join(kept, ", ")
		}
		return &ParseResult{Warnings: warnings},
			fmt.Errorf("ingest.ParseCSV: %w (detected headers: %s)", ErrMissingRequiredColumns, detected)
	}

	idx := headerIndex(headers, excluded)
	drafts := make([]ParsedTransaction, 0, len(rows))

	for _, row := range rows {
		draft, ok := buildDraft(row, idx, mapping, fileName)
		if !ok {
			continue
		}
		drafts = append(drafts, draft)
	}

	if len(drafts) == 0 {
		return &ParseResult{Warnings: warnings},
			fmt.Errorf("ingest.ParseCSV: %w", ErrNoValidRows)
	}

	return &ParseResult{Transactions: drafts, Warnings: warnings}, nil
}

// buildDraft converts one data row into a draft. The second return value is
// false when the row must be skipped: a required cell is empty or missing,
// the date does not normalize to a real calendar date, or the amount is not
// numeric.
func buildDraft(row []string, idx map[string]int, mapping ColumnMapping, fileName string) (ParsedTransaction, bool) {
	dateRaw := cellValue(row, idx, mapping.Date)
	descRaw := cellValue(row, idx, mapping.Description)
	amountRaw := cellValue(row, idx, mapping.Amount)

	if strings.TrimSpace(dateRaw) == "" ||
		strings.TrimSpace(descRaw) == "" ||
		strings.TrimSpace(amountRaw) == "" {
		return ParsedTransaction{}, false
	}

	date, err := normalizeDate(dateRaw)
	if err != nil {
		return ParsedTransaction{}, false
	}
	amount, err := normalizeAmount(amountRaw)
	if err != nil {
		return ParsedTransaction{}, false
	}

	draft := ParsedTransaction{
		Date:           date,
		Description:    sanitizeCell(descRaw),
		Amount:         amount,
		SourceFileName: fileName,
	}
	if mapping.Payer != "" {
		draft.PayerName = sanitizeCell(cellValue(row, idx, mapping.Payer))
	}
	return draft, true
}

// cellValue looks up the mapped column in a row, tolerating short rows.
func cellValue(row []string, idx map[string]int, header string) string {
	if header == "" {
		return ""
	}
	i, ok := idx[header]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func resolveMapping(headers []string, opts *ParseOptions) ColumnMapping {
	if opts != nil && opts.ColumnMapping != nil {
		return *opts.ColumnMapping
	}
	return autoDetectMapping(headers)
}

func readHeaderRow(csvText string) ([]string, error) {
	r := newReader(csvText)
	return r.Read()
}

func readAllRecords(csvText string) ([][]string, error) {
	return newReader(csvText).ReadAll()
}

// newReader builds a csv.Reader tolerant of the mess real exports contain:
// rows with inconsistent field counts, stray quotes, padded cells. Blank
// lines are skipped by encoding/csv itself.
func newReader(csvText string) *csv.Reader {
	csvText = strings.TrimPrefix(csvText, utf8BOM)
	r := csv.NewReader(strings.NewReader(csvText))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	return r
}

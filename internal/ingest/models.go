package ingest

import (
	"github.com/shopspring/decimal"
)

// ColumnMapping associates CSV header names with the semantic fields the
// ingestion pipeline needs. Date, Amount and Description are required for a
// usable mapping; Payer is optional.
type ColumnMapping struct {
	Date        string `json:"date_column" yaml:"date"`
	Amount      string `json:"amount_column" yaml:"amount"`
	Description string `json:"description_column" yaml:"description"`
	Payer       string `json:"payer_column,omitempty" yaml:"payer"`
}

// Complete reports whether the mapping covers all required fields.
func (m ColumnMapping) Complete() bool {
	return m.Date != "" && m.Amount != "" && m.Description != ""
}

// ParsedTransaction is one ingested CSV row, normalized and sanitized but not
// yet persisted. The caller decides what to do with it; this package never
// stores anything.
type ParsedTransaction struct {
	// Date is a zero-padded ISO calendar date (YYYY-MM-DD).
	Date string `json:"date"`

	// Description is the sanitized free-text description.
	Description string `json:"description"`

	// Amount is the non-negative amount in the source currency. The sign of
	// the source value is discarded during normalization.
	Amount decimal.Decimal `json:"amount"`

	// SourceFileName records which file this row came from.
	SourceFileName string `json:"source_file_name"`

	// PayerName is the sanitized contributor name, empty when no payer
	// column was mapped or the cell was blank.
	PayerName string `json:"payer_name,omitempty"`
}

// HeaderDetection is the outcome of scanning a CSV header row.
type HeaderDetection struct {
	// Headers lists the usable header names, with sensitive columns removed.
	Headers []string `json:"headers"`

	// SuggestedMapping is the heuristic field mapping derived from Headers.
	// It may be incomplete; callers should check Complete().
	SuggestedMapping ColumnMapping `json:"suggested_mapping"`

	// ExcludedHeaders lists the headers removed by the sensitive-column
	// filter, verbatim.
	ExcludedHeaders []string `json:"excluded_headers,omitempty"`
}

// ParseResult holds the drafts and warnings produced by ParseCSV.
type ParseResult struct {
	Transactions []ParsedTransaction `json:"transactions"`
	Warnings     []string            `json:"warnings,omitempty"`
}

// ParseOptions carries optional knobs for ParseCSV.
type ParseOptions struct {
	// ColumnMapping, when non-nil, takes precedence over auto-detection.
	ColumnMapping *ColumnMapping
}

package ingest

import "errors"

// Sentinel errors for the ingestion taxonomy. Callers match them with
// errors.Is; the wrapped messages carry the row counts, header lists and
// limits for diagnostics.
var (
	// ErrEmptyInput means the input text was empty or whitespace-only.
	ErrEmptyInput = errors.New("csv input is empty")

	// ErrNoHeaders means the header row could not be parsed or had no columns.
	ErrNoHeaders = errors.New("csv has no header columns")

	// ErrNoDataRows means the file had a header row but zero data rows.
	ErrNoDataRows = errors.New("csv has no data rows")

	// ErrNoValidRows means every data row was dropped by row-level checks.
	ErrNoValidRows = errors.New("csv has no valid data rows")

	// ErrMissingRequiredColumns means the date, amount or description column
	// could not be resolved from the mapping or the headers.
	ErrMissingRequiredColumns = errors.New("required columns could not be resolved")

	// ErrFileTooLarge means the input exceeds MaxFileBytes.
	ErrFileTooLarge = errors.New("csv file is too large")

	// ErrRowLimitExceeded means the data row count exceeds MaxDataRows.
	ErrRowLimitExceeded = errors.New("csv row limit exceeded")
)

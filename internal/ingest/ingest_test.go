package ingest

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestDetectHeaders(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		for _, input := range []string{"", "   ", "\n\n", "\t"} {
			if _, err := DetectHeaders(input); !errors.Is(err, ErrEmptyInput) {
				t.Errorf("DetectHeaders(%q) error = %v, want ErrEmptyInput", input, err)
			}
		}
	})

	t.Run("bom only input has no headers", func(t *testing.T) {
		if _, err := DetectHeaders("\uFEFF"); !errors.Is(err, ErrNoHeaders) {
			t.Errorf("error = %v, want ErrNoHeaders", err)
		}
	})

	t.Run("suggests a mapping from japanese headers", func(t *testing.T) {
		got, err := DetectHeaders("利用日,摘要,金額,支払者\n")
		if err != nil {
			t.Fatalf("DetectHeaders failed: %v", err)
		}
		want := ColumnMapping{Date: "利用日", Amount: "金額", Description: "摘要", Payer: "支払者"}
		if got.SuggestedMapping != want {
			t.Errorf("SuggestedMapping = %+v, want %+v", got.SuggestedMapping, want)
		}
		if len(got.ExcludedHeaders) != 0 {
			t.Errorf("ExcludedHeaders = %v, want none", got.ExcludedHeaders)
		}
	})

	t.Run("sensitive headers never reach the candidate list", func(t *testing.T) {
		got, err := DetectHeaders("Date,Card Number,Amount,CVV,Description\n")
		if err != nil {
			t.Fatalf("DetectHeaders failed: %v", err)
		}
		for _, h := range got.Headers {
			if h == "Card Number" || h == "CVV" {
				t.Errorf("sensitive header %q leaked into Headers", h)
			}
		}
		if len(got.ExcludedHeaders) != 2 {
			t.Fatalf("ExcludedHeaders = %v, want 2 entries", got.ExcludedHeaders)
		}
		if got.ExcludedHeaders[0] != "Card Number" || got.ExcludedHeaders[1] != "CVV" {
			t.Errorf("ExcludedHeaders = %v, want verbatim names in order", got.ExcludedHeaders)
		}
		if !got.SuggestedMapping.Complete() {
			t.Errorf("mapping should still complete from the remaining headers, got %+v", got.SuggestedMapping)
		}
	})
}

func TestParseCSVEndToEnd(t *testing.T) {
	csvText := "Date,Amount,Description\n2025-01-15,5400,Supermarket XYZ\n2025-01-16,450,Coffee Shop"

	result, err := ParseCSV(csvText, "january.csv", nil)
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", result.Warnings)
	}
	if len(result.Transactions) != 2 {
		t.Fatalf("got %d transactions, want 2", len(result.Transactions))
	}

	first := result.Transactions[0]
	if first.Date != "2025-01-15" || first.Description != "Supermarket XYZ" || first.Amount.String() != "5400" {
		t.Errorf("first draft = %+v, want 2025-01-15 / Supermarket XYZ / 5400", first)
	}
	if first.SourceFileName != "january.csv" {
		t.Errorf("SourceFileName = %q, want january.csv", first.SourceFileName)
	}
	if first.PayerName != "" {
		t.Errorf("PayerName = %q, want empty when no payer column is mapped", first.PayerName)
	}

	second := result.Transactions[1]
	if second.Date != "2025-01-16" || second.Description != "Coffee Shop" || second.Amount.String() != "450" {
		t.Errorf("second draft = %+v, want 2025-01-16 / Coffee Shop / 450", second)
	}
}

func TestParseCSVStructuralErrors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		if _, err := ParseCSV("", "x.csv", nil); !errors.Is(err, ErrEmptyInput) {
			t.Errorf("error = %v, want ErrEmptyInput", err)
		}
	})

	t.Run("header only has no data rows", func(t *testing.T) {
		if _, err := ParseCSV("Date,Amount,Description\n", "x.csv", nil); !errors.Is(err, ErrNoDataRows) {
			t.Errorf("error = %v, want ErrNoDataRows", err)
		}
	})

	t.Run("unmappable headers", func(t *testing.T) {
		result, err := ParseCSV("foo,bar\n1,2\n", "x.csv", nil)
		if !errors.Is(err, ErrMissingRequiredColumns) {
			t.Fatalf("error = %v, want ErrMissingRequiredColumns", err)
		}
		if !strings.Contains(err.Error(), "foo, bar") {
			t.Errorf("error should enumerate detected headers, got: %v", err)
		}
		if result != nil && len(result.Warnings) != 0 {
			t.Errorf("unexpected warnings: %v", result.Warnings)
		}
	})

	t.Run("all rows invalid", func(t *testing.T) {
		csvText := "Date,Amount,Description\nnot-a-date,100,Lunch\n2025-01-15,abc,Lunch\n2025-01-16,100,\n"
		if _, err := ParseCSV(csvText, "x.csv", nil); !errors.Is(err, ErrNoValidRows) {
			t.Errorf("error = %v, want ErrNoValidRows", err)
		}
	})
}

func TestParseCSVRowSkipping(t *testing.T) {
	csvText := strings.Join([]string{
		"Date,Amount,Description",
		"2025-01-15,5400,Groceries",   // valid
		",100,No Date",                // missing date
		"2025-01-16,,No Amount",       // missing amount
		"2025-01-17,200,",             // missing description
		"2025-02-30,300,Bad Calendar", // impossible date
		// An unquoted comma in the amount splits the cell: ¥1 lands in the
		// amount column and 200 becomes the description.
		"2025/1/5,¥1,200,走り書き",
		"2025-01-18,-980,Refund", // sign discarded
		",,",                     // effectively blank
	}, "\n")

	result, err := ParseCSV(csvText, "mix.csv", nil)
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if len(result.Transactions) != 3 {
		t.Fatalf("got %d transactions, want 3: %+v", len(result.Transactions), result.Transactions)
	}

	if result.Transactions[1].Date != "2025-01-05" {
		t.Errorf("slash date normalized to %q, want 2025-01-05", result.Transactions[1].Date)
	}
	if result.Transactions[1].Amount.String() != "1" {
		t.Errorf("amount = %s, want 1 (unquoted comma splits the cell)", result.Transactions[1].Amount.String())
	}
	if result.Transactions[2].Amount.String() != "980" {
		t.Errorf("refund amount = %s, want positive 980", result.Transactions[2].Amount.String())
	}
}

func TestParseCSVExplicitMapping(t *testing.T) {
	csvText := "いつ,いくら,なに\n2025-01-15,1200,ランチ\n"

	// Auto-detection cannot resolve these headers.
	if _, err := ParseCSV(csvText, "x.csv", nil); !errors.Is(err, ErrMissingRequiredColumns) {
		t.Fatalf("error = %v, want ErrMissingRequiredColumns without a mapping", err)
	}

	opts := &ParseOptions{ColumnMapping: &ColumnMapping{Date: "いつ", Amount: "いくら", Description: "なに"}}
	result, err := ParseCSV(csvText, "x.csv", opts)
	if err != nil {
		t.Fatalf("ParseCSV with explicit mapping failed: %v", err)
	}
	if len(result.Transactions) != 1 || result.Transactions[0].Description != "ランチ" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestParseCSVPayerColumn(t *testing.T) {
	csvText := "Date,Amount,Description,Payer\n2025-01-15,5400,Groceries,Alice\n2025-01-16,450,Coffee,=Bob\n"

	result, err := ParseCSV(csvText, "x.csv", nil)
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if result.Transactions[0].PayerName != "Alice" {
		t.Errorf("PayerName = %q, want Alice", result.Transactions[0].PayerName)
	}
	if result.Transactions[1].PayerName != "'=Bob" {
		t.Errorf("PayerName = %q, want sanitized '=Bob", result.Transactions[1].PayerName)
	}
}

func TestParseCSVSensitiveColumnWarning(t *testing.T) {
	t.Run("warning on success", func(t *testing.T) {
		csvText := "Date,カード番号,Amount,Description\n2025-01-15,1111-2222,5400,Groceries\n"
		result, err := ParseCSV(csvText, "x.csv", nil)
		if err != nil {
			t.Fatalf("ParseCSV failed: %v", err)
		}
		if len(result.Warnings) != 1 {
			t.Fatalf("Warnings = %v, want exactly one", result.Warnings)
		}
		if !strings.Contains(result.Warnings[0], "カード番号") {
			t.Errorf("warning should name the excluded column verbatim, got %q", result.Warnings[0])
		}
	})

	t.Run("warning survives a failed parse", func(t *testing.T) {
		csvText := "口座番号,foo\n12345,bar\n"
		result, err := ParseCSV(csvText, "x.csv", nil)
		if !errors.Is(err, ErrMissingRequiredColumns) {
			t.Fatalf("error = %v, want ErrMissingRequiredColumns", err)
		}
		if result == nil || len(result.Warnings) != 1 {
			t.Fatalf("warnings must surface on the failure path, got %+v", result)
		}
		if !strings.Contains(result.Warnings[0], "口座番号") {
			t.Errorf("warning = %q, want the excluded column named", result.Warnings[0])
		}
	})
}

func TestParseCSVQuotedMultilineField(t *testing.T) {
	csvText := "Date,Amount,Description\n2025-01-15,100,\"line1\nline2\"\n"

	result, err := ParseCSV(csvText, "x.csv", nil)
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if got := result.Transactions[0].Description; got != "line1line2" {
		t.Errorf("Description = %q, want line1line2", got)
	}
}

func TestParseCSVByteOrderMark(t *testing.T) {
	csvText := "\uFEFFDate,Amount,Description\n2025-01-15,100,Lunch\n"

	result, err := ParseCSV(csvText, "x.csv", nil)
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if len(result.Transactions) != 1 {
		t.Fatalf("got %d transactions, want 1", len(result.Transactions))
	}
}

func TestParseCSVRowLimit(t *testing.T) {
	buildCSV := func(rows int) string {
		var b strings.Builder
		b.WriteString("Date,Amount,Description\n")
		for i := 0; i < rows; i++ {
			fmt.Fprintf(&b, "2025-01-15,100,Item %d\n", i)
		}
		return b.String()
	}

	t.Run("exactly at the limit succeeds", func(t *testing.T) {
		result, err := ParseCSV(buildCSV(MaxDataRows), "big.csv", nil)
		if err != nil {
			t.Fatalf("ParseCSV failed at the limit: %v", err)
		}
		if len(result.Transactions) != MaxDataRows {
			t.Errorf("got %d transactions, want %d", len(result.Transactions), MaxDataRows)
		}
	})

	t.Run("one over the limit fails", func(t *testing.T) {
		_, err := ParseCSV(buildCSV(MaxDataRows+1), "big.csv", nil)
		if !errors.Is(err, ErrRowLimitExceeded) {
			t.Fatalf("error = %v, want ErrRowLimitExceeded", err)
		}
		if !strings.Contains(err.Error(), "10,000") {
			t.Errorf("error should state the limit with digit grouping, got: %v", err)
		}
	})
}

func TestParseCSVSizeLimit(t *testing.T) {
	base := "Date,Amount,Description\n2025-01-15,100,"
	padded := base + strings.Repeat("x", MaxFileBytes-len(base))

	t.Run("exactly at the limit succeeds", func(t *testing.T) {
		result, err := ParseCSV(padded, "big.csv", nil)
		if err != nil {
			t.Fatalf("ParseCSV failed at the size limit: %v", err)
		}
		if len(result.Transactions) != 1 {
			t.Errorf("got %d transactions, want 1", len(result.Transactions))
		}
	})

	t.Run("one byte over fails regardless of row count", func(t *testing.T) {
		if _, err := ParseCSV(padded+"x", "big.csv", nil); !errors.Is(err, ErrFileTooLarge) {
			t.Errorf("error = %v, want ErrFileTooLarge", err)
		}
	})
}

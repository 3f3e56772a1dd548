package ingest

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// dateLayouts are the accepted input shapes, tried in order. The non-padded
// reference layouts also accept zero-padded input, so "2025-1-5" and
// "2025-01-05" both parse through the first entry.
var dateLayouts = []string{
	"2006-1-2",
	"2006/1/2",
	"1/2/2006",
}

// normalizeDate parses an accepted date shape and re-emits it zero-padded as
// YYYY-MM-DD. time.Parse validates the calendar, so day 00 or month 13 comes
// back as an error rather than a silently wrong date.
func normalizeDate(value string) (string, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return civil.DateOf(t).String(), nil
		}
	}
	return "", fmt.Errorf("unrecognized date %q", value)
}

// amountStripper drops digit grouping and currency glyphs before numeric
// parsing. 円 shows up in exports that render amounts as e.g. "1,200円".
var amountStripper = strings.NewReplacer(
	",", "",
	"¥", "",
	"￥", "",
	"円", "",
)

// normalizeAmount parses a cell like "¥-5,400" into a non-negative decimal.
// The sign is discarded: both debits and credits import as positive
// magnitudes.
func normalizeAmount(value string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(amountStripper.Replace(value))
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("unrecognized amount %q", value)
	}
	return d.Abs(), nil
}

package ingest

import "strings"

// formulaTriggers are the characters spreadsheet applications interpret as
// the start of a formula.
const formulaTriggers = "=+-@"

var newlineStripper = strings.NewReplacer("\r", "", "\n", "")

// sanitizeCell makes a free-text cell safe to re-open in spreadsheet
// software. Carriage returns and line feeds are removed first (a quoted
// multi-line field becomes one concatenated line), then a leading formula
// trigger is neutralized by prefixing a single apostrophe.
//
// The apostrophe is applied even to values that look like legitimate
// numbers ("-100") or phone numbers ("+81 90 ..."): losing the literal
// leading character is the accepted cost of the defense.
func sanitizeCell(value string) string {
	value = newlineStripper.Replace(value)
	if value == "" {
		return value
	}
	if strings.ContainsRune(formulaTriggers, rune(value[0])) {
		return "'" + value
	}
	return value
}

package ingest

import "regexp"

// Resource ceilings for a single parse call. They bound worst-case memory and
// CPU for one import, not concurrency.
const (
	// MaxFileBytes is the largest accepted input, measured in UTF-8 bytes.
	MaxFileBytes = 5 * 1024 * 1024

	// MaxDataRows is the largest accepted number of data rows. Exactly
	// MaxDataRows is accepted; one more is rejected.
	MaxDataRows = 10000
)

// excludedColumnsWarningPrefix is the user-facing notice attached when
// sensitive columns are dropped. The excluded header names follow verbatim.
const excludedColumnsWarningPrefix = "機密情報の可能性がある列を除外しました"

// noHeadersPlaceholder stands in for an empty header list in diagnostics.
const noHeadersPlaceholder = "(none)"

// Header synonyms per semantic field, in priority order. The first synonym
// that matches a header (case-insensitive substring) wins, so more specific
// terms come first. Data-driven on purpose: adding a locale or a synonym is a
// table edit, not a control-flow change.
var (
	dateSynonyms        = []string{"date", "日付", "利用日"}
	descriptionSynonyms = []string{"description", "摘要", "内容", "店名", "商品名"}
	amountSynonyms      = []string{"amount", "金額"}
	payerSynonyms       = []string{"payer", "支払者", "支払い者", "user", "ユーザー", "名前"}
)

// sensitiveHeaderPatterns match header names that must never reach the
// caller: card numbers, account numbers, PINs and card security codes, in
// English and Japanese. The short English codes use word boundaries so that
// e.g. "Shopping" is not caught by "pin".
var sensitiveHeaderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)card\s*(number|no\.?)`),
	regexp.MustCompile(`カード番号`),
	regexp.MustCompile(`(?i)account\s*(number|no\.?)`),
	regexp.MustCompile(`口座番号`),
	regexp.MustCompile(`(?i)\bpin\b`),
	regexp.MustCompile(`暗証番号`),
	regexp.MustCompile(`(?i)\bcvv\b`),
	regexp.MustCompile(`(?i)\bcvc\b`),
	regexp.MustCompile(`セキュリティコード`),
}

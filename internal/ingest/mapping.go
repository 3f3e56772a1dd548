package ingest

import "strings"

// filterSensitiveHeaders splits headers into the ones safe to expose and the
// ones matching a sensitive-data pattern. Order is preserved in both slices.
func filterSensitiveHeaders(headers []string) (kept, excluded []string) {
	for _, h := range headers {
		if isSensitiveHeader(h) {
			excluded = append(excluded, h)
			continue
		}
		kept = append(kept, h)
	}
	return kept, excluded
}

func isSensitiveHeader(header string) bool {
	for _, p := range sensitiveHeaderPatterns {
		if p.MatchString(header) {
			return true
		}
	}
	return false
}

// autoDetectMapping derives a field mapping from the candidate headers by
// scanning the synonym tables in priority order. Headers should already have
// sensitive columns removed.
func autoDetectMapping(headers []string) ColumnMapping {
	return ColumnMapping{
		Date:        matchHeader(headers, dateSynonyms),
		Amount:      matchHeader(headers, amountSynonyms),
		Description: matchHeader(headers, descriptionSynonyms),
		Payer:       matchHeader(headers, payerSynonyms),
	}
}

// matchHeader returns the first header containing any synonym,
// case-insensitively, trying synonyms in priority order. Empty string means
// no match.
func matchHeader(headers []string, synonyms []string) string {
	lowered := make([]string, len(headers))
	for i, h := range headers {
		lowered[i] = strings.ToLower(h)
	}
	for _, syn := range synonyms {
		syn = strings.ToLower(syn)
		for i, h := range lowered {
			if strings.Contains(h, syn) {
				return headers[i]
			}
		}
	}
	return ""
}

// headerIndex maps each usable header name to its column position in the
// original record. The first occurrence wins for duplicated names; excluded
// names never enter the map, so a mapping pointing at a sensitive column
// resolves to nothing.
func headerIndex(headers []string, excluded []string) map[string]int {
	skip := make(map[string]bool, len(excluded))
	for _, h := range excluded {
		skip[h] = true
	}

	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		if skip[h] {
			continue
		}
		if _, ok := idx[h]; !ok {
			idx[h] = i
		}
	}
	return idx
}

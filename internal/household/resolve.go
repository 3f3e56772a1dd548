// Package household models the two members of a group and resolves imported
// payer names to member identities.
package household

import (
	"strings"

	"github.com/warikan/warikan-core/internal/settlement"
)

// Member is one of the household's two people.
type Member struct {
	UserID      string `json:"user_id" yaml:"user_id"`
	DisplayName string `json:"name" yaml:"name"`
}

// ResolvePayerUserID maps an imported payer name to a member's user ID.
//
// The returned ID is an identity override for settlement, so the rules are
// deliberately strict: a Common row never gets an override regardless of the
// name, and only a case-insensitive trimmed exact match counts. No partial
// or fuzzy matching. Empty string means "leave unset": the row falls back to
// its declared payer type at settlement time.
func ResolvePayerUserID(payerName string, payerType settlement.PayerType, members []Member) string {
	if payerType == settlement.PayerCommon {
		return ""
	}

	name := strings.ToLower(strings.TrimSpace(payerName))
	if name == "" {
		return ""
	}

	for _, m := range members {
		if strings.ToLower(strings.TrimSpace(m.DisplayName)) == name {
			return m.UserID
		}
	}
	return ""
}

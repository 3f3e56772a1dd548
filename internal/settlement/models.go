package settlement

import (
	"github.com/shopspring/decimal"
)

// ExpenseType tags a transaction as shared or personal spending. Only
// Household rows enter settlement math.
type ExpenseType string

const (
	ExpenseHousehold ExpenseType = "Household"
	ExpensePersonal  ExpenseType = "Personal"
)

// PayerType is the declared contributor category for a transaction. Common
// means paid from a shared source, attributable to neither member.
type PayerType string

const (
	PayerUserA  PayerType = "UserA"
	PayerUserB  PayerType = "UserB"
	PayerCommon PayerType = "Common"
)

// Transaction is a persisted expense row as the calculator consumes it.
// This package never creates or mutates these.
type Transaction struct {
	// Date is a normalized YYYY-MM-DD string.
	Date string `json:"date"`

	Amount      decimal.Decimal `json:"amount"`
	ExpenseType ExpenseType     `json:"expense_type"`
	PayerType   PayerType       `json:"payer_type"`

	// PayerUserID is the optional identity override. When it matches one of
	// the group's member IDs it wins over PayerType, including on Common
	// rows. Empty means unset.
	PayerUserID string `json:"payer_user_id,omitempty"`
}

// Group is the household's cost-sharing configuration. RatioA and RatioB
// must each lie in [0, 100] and sum to exactly 100.
type Group struct {
	UserAID string `json:"user_a_id"`
	UserBID string `json:"user_b_id"`
	RatioA  int    `json:"ratio_a"`
	RatioB  int    `json:"ratio_b"`
}

// Settlement is one month's computed balance. Recomputed on every call,
// never cached.
type Settlement struct {
	Month string `json:"month"`

	// TotalHousehold is PaidByAHousehold + PaidByBHousehold. Common
	// spending is excluded.
	TotalHousehold   decimal.Decimal `json:"total_household"`
	PaidByAHousehold decimal.Decimal `json:"paid_by_a_household"`
	PaidByBHousehold decimal.Decimal `json:"paid_by_b_household"`
	PaidByCommon     decimal.Decimal `json:"paid_by_common"`

	// BalanceA is rounded to the nearest integer amount. Positive means B
	// owes A that amount; negative means A owes B its magnitude; zero means
	// no payment is needed.
	BalanceA decimal.Decimal `json:"balance_a"`

	RatioA int `json:"ratio_a"`
	RatioB int `json:"ratio_b"`
}

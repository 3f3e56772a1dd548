// Package settlement computes the monthly balance between the two household
// members: who owes whom, and how much, given a cost-sharing ratio.
//
// Calculate is a pure function of its inputs. Identical arguments always
// yield identical results; nothing is cached and nothing is mutated.
package settlement

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

var oneHundred = decimal.NewFromInt(100)

// ValidateMonth checks that month is a YYYY-MM key. Shapes like "2025-1",
// "202501" or "2025/01" are rejected.
func ValidateMonth(month string) error {
	if !monthPattern.MatchString(month) {
		return fmt.Errorf("settlement: %w: got %q", ErrInvalidMonthFormat, month)
	}
	return nil
}

// ValidateRatio checks the group ratio contract: each side in [0, 100], the
// two summing to exactly 100. The application layer may impose a stricter
// [1, 99] rule; this is the calculator's authoritative bound.
func ValidateRatio(ratioA, ratioB int) error {
	if ratioA < 0 || ratioA > 100 || ratioB < 0 || ratioB > 100 {
		return fmt.Errorf("settlement: %w: got %d/%d", ErrRatioOutOfRange, ratioA, ratioB)
	}
	if ratioA+ratioB != 100 {
		return fmt.Errorf("settlement: %w: got %d+%d=%d", ErrRatioSumInvalid, ratioA, ratioB, ratioA+ratioB)
	}
	return nil
}

// Calculate aggregates the group's household spending for targetMonth and
// returns the resulting balance. An empty transaction list is not an error;
// it yields all-zero totals.
func Calculate(transactions []Transaction, group Group, targetMonth string) (*Settlement, error) {
	if err := ValidateMonth(targetMonth); err != nil {
		return nil, err
	}
	if err := ValidateRatio(group.RatioA, group.RatioB); err != nil {
		return nil, err
	}

	var paidByA, paidByB, paidByCommon decimal.Decimal

	for _, tx := range transactions {
		if tx.ExpenseType != ExpenseHousehold {
			continue
		}
		// Dates are normalized YYYY-MM-DD strings, so month membership is a
		// plain prefix check.
		if !strings.HasPrefix(tx.Date, targetMonth) {
			continue
		}

		switch effectivePayer(tx, group) {
		case PayerUserA:
			paidByA = paidByA.Add(tx.Amount)
		case PayerUserB:
			paidByB = paidByB.Add(tx.Amount)
		case PayerCommon:
			paidByCommon = paidByCommon.Add(tx.Amount)
		}
	}

	total := paidByA.Add(paidByB)

	// balance_a = paid_by_a - total * ratio_a/100, rounded to the nearest
	// integer, half away from zero.
	fairShareA := total.Mul(decimal.NewFromInt(int64(group.RatioA))).Div(oneHundred)
	balanceA := paidByA.Sub(fairShareA).Round(0)

	return &Settlement{
		Month:            targetMonth,
		TotalHousehold:   total,
		PaidByAHousehold: paidByA,
		PaidByBHousehold: paidByB,
		PaidByCommon:     paidByCommon,
		BalanceA:         balanceA,
		RatioA:           group.RatioA,
		RatioB:           group.RatioB,
	}, nil
}

// effectivePayer resolves who actually paid a row. An identity override
// matching a member ID wins over the declared payer type, which moves even a
// Common row onto that member's side of the ledger. Without a recognized
// override the declared type stands.
func effectivePayer(tx Transaction, group Group) PayerType {
	if tx.PayerUserID != "" {
		switch tx.PayerUserID {
		case group.UserAID:
			return PayerUserA
		case group.UserBID:
			return PayerUserB
		}
	}
	return tx.PayerType
}

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/warikan/warikan-core/internal/config"
	"github.com/warikan/warikan-core/internal/household"
	"github.com/warikan/warikan-core/internal/settlement"
)

var (
	settleInputPath string
	settleMonth     string
	settleRatioA    int
	settleRatioB    int
)

var settleCmd = &cobra.Command{
	Use:   "settle",
	Short: "Compute one month's settlement from stored transactions",
	Long: `Settle loads a JSON file of stored transactions, filters it to the target
month's household spending and prints who owes whom. The sharing ratio comes
from the profile, or from --ratio-a/--ratio-b when no profile is given.

Records carrying a payer_name but no payer_user_id are resolved against the
profile's member roster before calculation.`,
	RunE: runSettle,
}

// storedTransaction is the settle command's input row: a persisted
// transaction plus the imported payer name, kept so an identity override can
// still be resolved at settlement time.
type storedTransaction struct {
	settlement.Transaction
	PayerName string `json:"payer_name,omitempty"`
}

func init() {
	settleCmd.Flags().StringVarP(&settleInputPath, "input", "i", "", "JSON file of stored transactions (required)")
	settleCmd.Flags().StringVarP(&settleMonth, "month", "m", "", "target month, YYYY-MM (required)")
	settleCmd.Flags().IntVar(&settleRatioA, "ratio-a", 50, "member A's share of household costs in percent")
	settleCmd.Flags().IntVar(&settleRatioB, "ratio-b", 50, "member B's share of household costs in percent")
	settleCmd.MarkFlagRequired("input")
	settleCmd.MarkFlagRequired("month")
	rootCmd.AddCommand(settleCmd)
}

func runSettle(cmd *cobra.Command, args []string) error {
	log := newLogger()

	group := settlement.Group{RatioA: settleRatioA, RatioB: settleRatioB}
	var members []household.Member
	if profilePath != "" {
		profile, err := config.Load(profilePath)
		if err != nil {
			return err
		}
		group = profile.SettlementGroup()
		members = profile.Members
	}

	data, err := os.ReadFile(settleInputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", settleInputPath, err)
	}

	var stored []storedTransaction
	if err := json.Unmarshal(data, &stored); err != nil {
		return fmt.Errorf("parsing %s: %w", settleInputPath, err)
	}

	transactions := make([]settlement.Transaction, 0, len(stored))
	for _, st := range stored {
		tx := st.Transaction
		if tx.PayerUserID == "" && st.PayerName != "" {
			tx.PayerUserID = household.ResolvePayerUserID(st.PayerName, tx.PayerType, members)
		}
		transactions = append(transactions, tx)
	}

	result, err := settlement.Calculate(transactions, group, settleMonth)
	if err != nil {
		return err
	}

	log.Info().
		Str("month", result.Month).
		Str("total_household", result.TotalHousehold.String()).
		Str("balance_a", result.BalanceA.String()).
		Msg("settlement computed")

	switch {
	case result.BalanceA.IsPositive():
		log.Info().Msgf("member B owes member A %s", result.BalanceA.String())
	case result.BalanceA.IsNegative():
		log.Info().Msgf("member A owes member B %s", result.BalanceA.Abs().String())
	default:
		log.Info().Msg("no payment needed")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/warikan/warikan-core/internal/logger"
)

var (
	logLevel    string
	profilePath string
)

var rootCmd = &cobra.Command{
	Use:   "warikan",
	Short: "Household expense splitting: CSV import and monthly settlement",
	Long: `warikan ingests shared-expense CSV exports into normalized transaction
drafts and computes the monthly settlement between the two household members.

The tool does the file reading; parsing and settlement math live in the
library packages and never touch disk or network themselves.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", "", "path to a household profile YAML")
}

func newLogger() zerolog.Logger {
	return logger.New(logLevel)
}

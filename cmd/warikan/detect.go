package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/warikan/warikan-core/internal/ingest"
)

var detectCmd = &cobra.Command{
	Use:   "detect FILE",
	Short: "Detect CSV headers and suggest a column mapping",
	Args:  cobra.ExactArgs(1),
	RunE:  runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	log := newLogger()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	detection, err := ingest.DetectHeaders(string(data))
	if err != nil {
		return err
	}

	for _, h := range detection.ExcludedHeaders {
		log.Warn().Str("header", h).Msg("sensitive column excluded")
	}
	if !detection.SuggestedMapping.Complete() {
		log.Warn().Msg("suggested mapping is incomplete; supply a profile with an explicit columns section")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(detection)
}

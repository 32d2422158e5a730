package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rozvrh-svg/rozvrh/core/source"
	"github.com/rozvrh-svg/rozvrh/infra/store"
)

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Load events from a JSON or JSONL file into the configured source",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	ctx := background(cmd)
	events, err := store.DecodeEvents(ctx, f)
	if err != nil {
		return err
	}
	src, err := source.New(cfg.Source)
	if err != nil {
		return fmt.Errorf("event source: %w", err)
	}
	defer func() { _ = src.Close() }()
	w, ok := src.(source.Writer)
	if !ok {
		return fmt.Errorf("source %q is read-only", cfg.Source.Type)
	}
	if err := w.Save(ctx, events); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d events into %s\n", len(events), cfg.Source.Type)
	return err
}

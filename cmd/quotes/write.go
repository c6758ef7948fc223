package main

import (
	"fmt"

	"github.com/chriszhang3/quotes/internal/app"
	"github.com/spf13/cobra"
)

var writeCmd = &cobra.Command{
	Use:   "write <input> [output]",
	Short: "Append quotes to another file",
	Long: `Append the (filtered) quotes to the output file, creating it if needed.
Existing content is never overwritten. The output file defaults to QUOTES_OUTPUT.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runWrite,
}

func init() {
	rootCmd.AddCommand(writeCmd)
}

func runWrite(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) == 2 {
		cfg.OutputPath = args[1]
	}

	// Checked before the input is read so nothing is touched without a destination.
	if err := cfg.ValidateForWrite(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	a := app.New(cfg)
	quotes, err := a.Load(args[0], filters())
	if err != nil {
		return fmt.Errorf("load quotes: %w", err)
	}

	if err := a.Write(quotes); err != nil {
		return fmt.Errorf("write quotes: %w", err)
	}
	return nil
}

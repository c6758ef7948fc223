package main

import (
	"fmt"

	"github.com/chriszhang3/quotes/internal/app"
	"github.com/chriszhang3/quotes/internal/printer"
	"github.com/spf13/cobra"
)

var listLineNumbers bool

var listCmd = &cobra.Command{
	Use:   "list <input>",
	Short: "List quotes",
	Long: `Print every quote in the input file, one phrase per line.

Examples:
  quotes list quotes.txt               # List all quotes
  quotes list quotes.txt -l            # Include the line each quote starts on
  quotes list quotes.txt -s leaders    # Only quotes whose text mentions "leaders"`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVarP(&listLineNumbers, "line-number", "l", false, "Include line numbers")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	quotes, err := app.New(cfg).Load(args[0], filters())
	if err != nil {
		return fmt.Errorf("load quotes: %w", err)
	}

	return printer.List(cmd.OutOrStdout(), quotes, listLineNumbers)
}

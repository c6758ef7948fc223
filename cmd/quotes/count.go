package main

import (
	"fmt"

	"github.com/chriszhang3/quotes/internal/app"
	"github.com/chriszhang3/quotes/internal/printer"
	"github.com/chriszhang3/quotes/internal/quote"
	"github.com/spf13/cobra"
)

var countCmd = &cobra.Command{
	Use:   "count <input>",
	Short: "Count quotes per author",
	Long: `Print the number of quotes each author appears in, sorted by author,
followed by the total. An author speaking twice in one quote counts once.`,
	Args: cobra.ExactArgs(1),
	RunE: runCount,
}

func init() {
	rootCmd.AddCommand(countCmd)
}

func runCount(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	quotes, err := app.New(cfg).Load(args[0], filters())
	if err != nil {
		return fmt.Errorf("load quotes: %w", err)
	}

	return printer.Counts(cmd.OutOrStdout(), quote.TallyAuthors(quotes))
}

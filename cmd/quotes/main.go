package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/chriszhang3/quotes/internal/app"
	"github.com/chriszhang3/quotes/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	authorFilter    string
	searchFilter    string
	singleLineBreak bool
	strict          bool
)

var rootCmd = &cobra.Command{
	Use:   "quotes",
	Short: "List, count and copy quotes from a text file",
	Long: `Quotes reads a text file of quotations, one quote per block of lines
separated by blank lines, and splits each block into "text" - author pairs.

Examples:
  quotes list quotes.txt -l                  # List quotes with line numbers
  quotes count quotes.txt                    # Count quotes per author
  quotes write quotes.txt out.txt -a lennon  # Append John Lennon's quotes to out.txt`,
}

func init() {
	// Load .env file if present
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVarP(&authorFilter, "author", "a", "", "Filter quotes by author (case insensitive substring)")
	rootCmd.PersistentFlags().StringVarP(&searchFilter, "search", "s", "", "Filter quote text (case insensitive substring)")
	rootCmd.PersistentFlags().BoolVar(&singleLineBreak, "single-line-break", false, "Treat every line break as the end of a quote")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Fail when a quote has a token without an author")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads configuration from the environment and applies flags set
// on the command line over it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if cmd.Flags().Changed("single-line-break") {
		cfg.SingleLineBreak = singleLineBreak
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict = strict
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	setupLogging(cfg.LogLevel)
	return cfg, nil
}

func setupLogging(level string) {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: l,
	})))
}

func filters() app.Filters {
	return app.Filters{
		Search: searchFilter,
		Author: authorFilter,
	}
}

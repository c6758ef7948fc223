package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/chriszhang3/quotes/internal/config"
	"github.com/chriszhang3/quotes/internal/quote"
	"github.com/chriszhang3/quotes/internal/quotefile"
)

// App is the main application container holding all dependencies.
type App struct {
	Config  *config.Config
	options []quote.Option
}

// Filters narrows the loaded quotes. Empty fields are ignored.
type Filters struct {
	Search string // Case-insensitive substring of the quote text
	Author string // Case-insensitive substring of an author
}

// TruncatedError is returned in strict mode when blocks had unpaired tokens.
type TruncatedError struct {
	Truncations []quote.Truncation
}

func (e *TruncatedError) Error() string {
	lines := make([]string, len(e.Truncations))
	for i, tr := range e.Truncations {
		lines[i] = fmt.Sprint(tr.Line)
	}
	return fmt.Sprintf("%d block(s) with an unpaired token at line(s) %s", len(e.Truncations), strings.Join(lines, ", "))
}

// New creates a new application instance. Extra parser options are applied
// before the truncation hook the application installs.
func New(cfg *config.Config, opts ...quote.Option) *App {
	return &App{
		Config:  cfg,
		options: opts,
	}
}

// Load reads and parses the input file, then applies the filters.
func (a *App) Load(path string, filters Filters) ([]quote.Quote, error) {
	contents, err := quotefile.Read(path)
	if err != nil {
		return nil, err
	}

	var truncations []quote.Truncation
	hook := func(tr quote.Truncation) {
		truncations = append(truncations, tr)
		level := slog.LevelDebug
		if a.Config.Strict {
			level = slog.LevelWarn
		}
		slog.Log(context.Background(), level, "dropped unpaired token", "line", tr.Line, "token", tr.Dropped)
	}

	opts := append([]quote.Option{}, a.options...)
	parser := quote.NewParser(append(opts, quote.WithTruncationHook(hook))...)
	quotes := parser.Parse(contents, a.Config.SingleLineBreak)

	slog.Debug("parsed quotes",
		"path", path,
		"quotes", len(quotes),
		"single_line_break", a.Config.SingleLineBreak,
	)

	if a.Config.Strict && len(truncations) > 0 {
		return nil, &TruncatedError{Truncations: truncations}
	}

	if filters.Search != "" {
		quotes = quote.Filter(quotes, filters.Search, false)
	}
	if filters.Author != "" {
		quotes = quote.Filter(quotes, filters.Author, true)
	}

	return quotes, nil
}

// Write appends quotes to the configured output file.
func (a *App) Write(quotes []quote.Quote) error {
	if err := quotefile.Append(a.Config.OutputPath, quotes); err != nil {
		return err
	}
	slog.Info("wrote quotes", "path", a.Config.OutputPath, "count", len(quotes))
	return nil
}

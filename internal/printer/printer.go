// Package printer formats quote reports for the console.
package printer

import (
	"fmt"
	"io"

	"github.com/chriszhang3/quotes/internal/quote"
)

// TotalLabel prefixes the grand total in a count report.
const TotalLabel = "Total quotes"

// List writes every quote followed by a blank line. With lineNumbers the
// quote's starting line is printed after its dialogue.
func List(w io.Writer, quotes []quote.Quote, lineNumbers bool) error {
	for _, q := range quotes {
		var err error
		if lineNumbers {
			_, err = fmt.Fprintf(w, "%s%d\n\n", q, q.LineNumber)
		} else {
			_, err = fmt.Fprintf(w, "%s\n", q)
		}
		if err != nil {
			return fmt.Errorf("print quote at line %d: %w", q.LineNumber, err)
		}
	}
	return nil
}

// Counts writes one "author: count" line per author, then the total.
func Counts(w io.Writer, tally quote.Tally) error {
	for _, ac := range tally.Authors {
		if _, err := fmt.Fprintf(w, "%s: %d\n", ac.Author, ac.Count); err != nil {
			return fmt.Errorf("print count for %s: %w", ac.Author, err)
		}
	}
	if _, err := fmt.Fprintf(w, "%s: %d\n", TotalLabel, tally.Total); err != nil {
		return fmt.Errorf("print total: %w", err)
	}
	return nil
}

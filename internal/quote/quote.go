// Package quote parses loosely formatted quotation files into structured quotes.
//
// Parsing happens in two stages. Segment groups the lines of a file into blocks,
// and Tokenize splits each block into alternating text and author tokens.
package quote

import (
	"fmt"
	"slices"
	"strings"
)

// Phrase is one utterance attributed to one speaker.
type Phrase struct {
	Text   string
	Author string
}

// String formats the phrase as `"text" - author`.
func (p Phrase) String() string {
	return fmt.Sprintf("\"%s\" - %s", p.Text, p.Author)
}

// Quote is one parsed block. A quote with more than one phrase is a dialogue,
// and the phrases keep their speaking order.
type Quote struct {
	// LineNumber is the 1-based line the source block starts on.
	LineNumber int
	Dialogue   []Phrase
}

// Equal reports whether both quotes start on the same line and have the same dialogue.
func (q Quote) Equal(other Quote) bool {
	return q.LineNumber == other.LineNumber && slices.Equal(q.Dialogue, other.Dialogue)
}

// Authors returns the distinct authors of the quote in order of first appearance.
func (q Quote) Authors() []string {
	var authors []string
	for _, p := range q.Dialogue {
		if !slices.Contains(authors, p.Author) {
			authors = append(authors, p.Author)
		}
	}
	return authors
}

// String renders every phrase on its own line, each terminated by a newline.
func (q Quote) String() string {
	var b strings.Builder
	for _, p := range q.Dialogue {
		b.WriteString(p.String())
		b.WriteString("\n")
	}
	return b.String()
}

// SerializeForWrite renders quotes for appending to a file. Each quote becomes
// one entry followed by an empty entry, so joining the result with newlines
// leaves a blank line after every quote.
func SerializeForWrite(quotes []Quote) []string {
	lines := make([]string, 0, len(quotes)*2)
	for _, q := range quotes {
		if len(q.Dialogue) == 0 {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, strings.TrimSuffix(q.String(), "\n"), "")
	}
	return lines
}

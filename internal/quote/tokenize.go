package quote

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
)

// TextKind is the token kind of anything between two delimiters.
const TextKind = "Text"

// Delimiter is a literal marking a boundary between phrase text and author.
type Delimiter struct {
	// Name becomes the token kind. It must start with an upper case letter.
	Name    string
	Literal string
}

// DefaultDelimiters covers straight and curly double quotes, dashes and line
// breaks. Earlier entries win when several match at the same position, so the
// quote-dash pairs come before the bare quotes.
var DefaultDelimiters = []Delimiter{
	{Name: "QuoteDash", Literal: "\"-"},
	{Name: "CloseCurlyDash", Literal: "”-"},
	{Name: "Quote", Literal: "\""},
	{Name: "OpenCurly", Literal: "“"},
	{Name: "CloseCurly", Literal: "”"},
	{Name: "SpaceDash", Literal: " -"},
	{Name: "LineJoin", Literal: LineJoin},
	{Name: "Newline", Literal: "\n"},
}

// Token is one classified piece of a block.
type Token struct {
	Kind  string
	Value string
}

// IsDelimiter reports whether the token is a boundary rather than text.
func (t Token) IsDelimiter() bool {
	return t.Kind != TextKind
}

// DelimiterSet classifies block text into delimiter and text tokens.
type DelimiterSet struct {
	delimiters []Delimiter
	def        *lexer.StatefulDefinition
	kinds      map[lexer.TokenType]string
}

// NewDelimiterSet compiles delimiters into a lexer. Each delimiter becomes a
// named rule tried in the given order, followed by a Text rule that consumes
// everything else.
func NewDelimiterSet(delimiters ...Delimiter) (*DelimiterSet, error) {
	if len(delimiters) == 0 {
		return nil, fmt.Errorf("delimiter set is empty")
	}

	seen := map[string]bool{TextKind: true}
	var starts []rune
	rules := make([]lexer.SimpleRule, 0, len(delimiters)+1)
	for _, d := range delimiters {
		first, _ := utf8.DecodeRuneInString(d.Name)
		if d.Name == "" || !unicode.IsUpper(first) {
			return nil, fmt.Errorf("delimiter name %q must start with an upper case letter", d.Name)
		}
		if seen[d.Name] {
			return nil, fmt.Errorf("duplicate delimiter name %q", d.Name)
		}
		if d.Literal == "" {
			return nil, fmt.Errorf("delimiter %s has an empty literal", d.Name)
		}
		seen[d.Name] = true

		r, _ := utf8.DecodeRuneInString(d.Literal)
		if !slices.Contains(starts, r) {
			starts = append(starts, r)
		}
		rules = append(rules, lexer.SimpleRule{Name: d.Name, Pattern: regexp.QuoteMeta(d.Literal)})
	}
	rules = append(rules, lexer.SimpleRule{Name: TextKind, Pattern: textPattern(starts)})

	def, err := lexer.NewSimple(rules)
	if err != nil {
		return nil, fmt.Errorf("build delimiter lexer: %w", err)
	}

	kinds := make(map[lexer.TokenType]string, len(rules))
	for name, typ := range def.Symbols() {
		kinds[typ] = name
	}

	return &DelimiterSet{
		delimiters: slices.Clone(delimiters),
		def:        def,
		kinds:      kinds,
	}, nil
}

// MustDelimiterSet is like NewDelimiterSet but panics on error.
func MustDelimiterSet(delimiters ...Delimiter) *DelimiterSet {
	set, err := NewDelimiterSet(delimiters...)
	if err != nil {
		panic(err)
	}
	return set
}

// textPattern matches a run of characters that cannot start a delimiter, or a
// single character that could but did not.
func textPattern(starts []rune) string {
	slices.Sort(starts)
	var class strings.Builder
	for _, r := range starts {
		fmt.Fprintf(&class, `\x{%x}`, r)
	}
	return fmt.Sprintf(`[^%[1]s]+|[%[1]s]`, class.String())
}

// Delimiters returns the delimiters in priority order.
func (s *DelimiterSet) Delimiters() []Delimiter {
	return slices.Clone(s.delimiters)
}

// Classify splits text into tokens tagged with the delimiter name or TextKind.
// Adjacent text is merged into one token.
func (s *DelimiterSet) Classify(text string) ([]Token, error) {
	lex, err := s.def.LexString("", text)
	if err != nil {
		return nil, fmt.Errorf("lex block: %w", err)
	}
	raw, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, fmt.Errorf("lex block: %w", err)
	}

	tokens := make([]Token, 0, len(raw))
	runStart := -1 // offset of the text run being merged, -1 outside a run
	for _, tok := range raw {
		if tok.EOF() {
			break
		}
		kind := s.kinds[tok.Type]
		if kind != TextKind {
			runStart = -1
			tokens = append(tokens, Token{Kind: kind, Value: tok.Value})
			continue
		}
		if runStart < 0 {
			runStart = tok.Pos.Offset
			tokens = append(tokens, Token{Kind: TextKind})
		}
		// Slice the run out of the input rather than concatenating, which
		// would be quadratic in the run length.
		tokens[len(tokens)-1].Value = text[runStart : tok.Pos.Offset+len(tok.Value)]
	}
	return tokens, nil
}

// Fragments returns the trimmed, non-empty text between delimiters.
func (s *DelimiterSet) Fragments(text string) []string {
	tokens, err := s.Classify(text)
	if err != nil {
		// The Text rule accepts any character, so this only happens if the
		// lexer itself misbehaves. Treat the block as a single fragment.
		tokens = []Token{{Kind: TextKind, Value: text}}
	}

	var fragments []string
	for _, tok := range tokens {
		if tok.IsDelimiter() {
			continue
		}
		if frag := strings.TrimSpace(tok.Value); frag != "" {
			fragments = append(fragments, frag)
		}
	}
	return fragments
}

// Tokenize splits a block into phrases using the set.
func (s *DelimiterSet) Tokenize(block string) []Phrase {
	phrases, _, _ := pair(s.Fragments(block))
	return phrases
}

// pair builds phrases from alternating text and author fragments. An odd
// trailing fragment is returned as dropped.
func pair(fragments []string) (phrases []Phrase, dropped string, truncated bool) {
	n := len(fragments) / 2
	phrases = make([]Phrase, 0, n)
	for i := 0; i < n; i++ {
		phrases = append(phrases, Phrase{Text: fragments[2*i], Author: fragments[2*i+1]})
	}
	if len(fragments)%2 == 1 {
		return phrases, fragments[len(fragments)-1], true
	}
	return phrases, "", false
}

var defaultDelimiters = MustDelimiterSet(DefaultDelimiters...)

// Tokenize splits a block into phrases with DefaultDelimiters.
func Tokenize(block string) []Phrase {
	return defaultDelimiters.Tokenize(block)
}

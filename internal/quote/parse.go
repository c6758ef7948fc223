package quote

// Truncation describes a fragment dropped because it had no partner.
type Truncation struct {
	// Line is the 1-based first line of the block the fragment came from.
	Line    int
	Dropped string
}

// Parser turns file contents into quotes.
type Parser struct {
	delimiters  *DelimiterSet
	onTruncated func(Truncation)
}

// Option configures a Parser.
type Option func(*Parser)

// WithDelimiters replaces DefaultDelimiters.
func WithDelimiters(set *DelimiterSet) Option {
	return func(p *Parser) {
		p.delimiters = set
	}
}

// WithTruncationHook registers fn to be called for every block that ended
// with an unpaired fragment. Parsing still drops the fragment.
func WithTruncationHook(fn func(Truncation)) Option {
	return func(p *Parser) {
		p.onTruncated = fn
	}
}

// NewParser creates a parser using DefaultDelimiters unless overridden.
func NewParser(opts ...Option) *Parser {
	p := &Parser{delimiters: defaultDelimiters}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse segments contents into blocks and tokenizes each one. It never fails;
// malformed blocks produce whatever phrases could be paired.
func (p *Parser) Parse(contents string, singleLineBreak bool) []Quote {
	blocks := Segment(contents, singleLineBreak)
	quotes := make([]Quote, 0, len(blocks))
	for _, b := range blocks {
		phrases, dropped, truncated := pair(p.delimiters.Fragments(b.Text))
		if truncated && p.onTruncated != nil {
			p.onTruncated(Truncation{Line: b.Line, Dropped: dropped})
		}
		quotes = append(quotes, Quote{LineNumber: b.Line, Dialogue: phrases})
	}
	return quotes
}

// Parse parses contents with a default Parser.
func Parse(contents string, singleLineBreak bool) []Quote {
	return NewParser().Parse(contents, singleLineBreak)
}

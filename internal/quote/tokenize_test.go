package quote

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		block    string
		expected []Phrase
	}{
		{
			name:  "space dash",
			block: "Life is what happens when you're busy making other plans. -John Lennon;;",
			expected: []Phrase{
				{Text: "Life is what happens when you're busy making other plans.", Author: "John Lennon"},
			},
		},
		{
			name:  "straight quotes",
			block: "\"Real leaders must be ready to sacrifice all for the freedom of their people.\" - Nelson Mandela;;",
			expected: []Phrase{
				{Text: "Real leaders must be ready to sacrifice all for the freedom of their people.", Author: "Nelson Mandela"},
			},
		},
		{
			name:  "curly quotes",
			block: "“Real leaders must be ready to sacrifice all.” - Nelson Mandela;;",
			expected: []Phrase{
				{Text: "Real leaders must be ready to sacrifice all.", Author: "Nelson Mandela"},
			},
		},
		{
			name:  "straight quote dash",
			block: "\"Hi\"-Bob;;",
			expected: []Phrase{
				{Text: "Hi", Author: "Bob"},
			},
		},
		{
			name:  "curly quote dash",
			block: "“Hi”-Bob;;",
			expected: []Phrase{
				{Text: "Hi", Author: "Bob"},
			},
		},
		{
			name:  "multi line dialogue",
			block: "He didn’t fall? Inconceivable! - Vizzini ;;You keep using that word. I do not think it means what you think it means - Inigo Montoya;;",
			expected: []Phrase{
				{Text: "He didn’t fall? Inconceivable!", Author: "Vizzini"},
				{Text: "You keep using that word. I do not think it means what you think it means", Author: "Inigo Montoya"},
			},
		},
		{
			name:  "single line dialogue",
			block: "“He didn’t fall? Inconceivable!” - Vizzini “You keep using that word.” - Inigo Montoya;;",
			expected: []Phrase{
				{Text: "He didn’t fall? Inconceivable!", Author: "Vizzini"},
				{Text: "You keep using that word.", Author: "Inigo Montoya"},
			},
		},
		{
			name:  "raw newline",
			block: "First -A\nSecond -B",
			expected: []Phrase{
				{Text: "First", Author: "A"},
				{Text: "Second", Author: "B"},
			},
		},
		{
			name:  "hyphen inside words is text",
			block: "A well-known fact -Some-One;;",
			expected: []Phrase{
				{Text: "A well-known fact", Author: "Some-One"},
			},
		},
		{
			name:  "single semicolon is text",
			block: "Wait; what -Bob;;",
			expected: []Phrase{
				{Text: "Wait; what", Author: "Bob"},
			},
		},
		{
			name:     "odd token count drops the last token",
			block:    "a -b -c;;",
			expected: []Phrase{{Text: "a", Author: "b"}},
		},
		{
			name:     "single token",
			block:    "No author here;;",
			expected: []Phrase{},
		},
		{
			name:     "whitespace fragments are discarded",
			block:    "  ;;  ;;\"\" - ;;",
			expected: []Phrase{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.block))
		})
	}
}

func TestTokenize_OddTruncation(t *testing.T) {
	for n := 0; n < 5; n++ {
		block := ""
		for i := 0; i < 2*n+1; i++ {
			block += "token -"
		}
		phrases := Tokenize(block)
		assert.Len(t, phrases, n)
		for _, p := range phrases {
			assert.NotEmpty(t, p.Text)
			assert.NotEmpty(t, p.Author)
		}
	}
}

func TestDelimiterSet_Classify(t *testing.T) {
	tokens, err := defaultDelimiters.Classify("\"Hi there\" -Bob;;")
	require.NoError(t, err)

	assert.Equal(t, []Token{
		{Kind: "Quote", Value: "\""},
		{Kind: TextKind, Value: "Hi there"},
		{Kind: "Quote", Value: "\""},
		{Kind: "SpaceDash", Value: " -"},
		{Kind: TextKind, Value: "Bob"},
		{Kind: "LineJoin", Value: ";;"},
	}, tokens)
}

func TestDelimiterSet_ClassifyMultiByteText(t *testing.T) {
	tokens, err := defaultDelimiters.Classify("él dijo ’hola’ y más -Ana María")
	require.NoError(t, err)

	assert.Equal(t, []Token{
		{Kind: TextKind, Value: "él dijo ’hola’ y más"},
		{Kind: "SpaceDash", Value: " -"},
		{Kind: TextKind, Value: "Ana María"},
	}, tokens)
}

func TestTokenize_LongLine(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long line tokenization in short mode")
	}

	// About 1 MB of text on one line, split into many runs by spaces.
	text := strings.Repeat("word ", 200_000)
	block := text + "-Author;;"

	start := time.Now()
	phrases := Tokenize(block)
	elapsed := time.Since(start)

	require.Len(t, phrases, 1)
	assert.Equal(t, strings.TrimSpace(text), phrases[0].Text)
	assert.Equal(t, "Author", phrases[0].Author)
	assert.Less(t, elapsed, 10*time.Second, "tokenizing a long line should scale linearly")
}

func TestDelimiterSet_ClassifyPriority(t *testing.T) {
	tokens, err := defaultDelimiters.Classify("”-")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, Token{Kind: "CloseCurlyDash", Value: "”-"}, tokens[0])
	assert.True(t, tokens[0].IsDelimiter())
}

func TestDelimiterSet_Fragments(t *testing.T) {
	fragments := defaultDelimiters.Fragments("“One” - A;;“Two” - B;;Three")
	assert.Equal(t, []string{"One", "A", "Two", "B", "Three"}, fragments)
}

func TestNewDelimiterSet(t *testing.T) {
	t.Run("custom delimiters", func(t *testing.T) {
		set, err := NewDelimiterSet(
			Delimiter{Name: "Pipe", Literal: "|"},
			Delimiter{Name: "Arrow", Literal: "=>"},
		)
		require.NoError(t, err)

		phrases := set.Tokenize("to be=>Hamlet|or not -> to be=>Hamlet")
		assert.Equal(t, []Phrase{
			{Text: "to be", Author: "Hamlet"},
			{Text: "or not -> to be", Author: "Hamlet"},
		}, phrases)
		assert.Len(t, set.Delimiters(), 2)
	})

	t.Run("regex characters are literal", func(t *testing.T) {
		set, err := NewDelimiterSet(Delimiter{Name: "Dots", Literal: "..."})
		require.NoError(t, err)
		assert.Equal(t, []Phrase{{Text: "a.b", Author: "c"}}, set.Tokenize("a.b...c"))
	})

	tests := []struct {
		name       string
		delimiters []Delimiter
		errMsg     string
	}{
		{"empty set", nil, "empty"},
		{"empty literal", []Delimiter{{Name: "Nothing", Literal: ""}}, "empty literal"},
		{"lower case name", []Delimiter{{Name: "pipe", Literal: "|"}}, "upper case"},
		{"missing name", []Delimiter{{Literal: "|"}}, "upper case"},
		{"duplicate name", []Delimiter{{Name: "Pipe", Literal: "|"}, {Name: "Pipe", Literal: "/"}}, "duplicate"},
		{"reserved name", []Delimiter{{Name: TextKind, Literal: "|"}}, "duplicate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDelimiterSet(tt.delimiters...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestMustDelimiterSet(t *testing.T) {
	assert.Panics(t, func() { MustDelimiterSet() })
	assert.NotPanics(t, func() { MustDelimiterSet(DefaultDelimiters...) })
}

func TestPair(t *testing.T) {
	phrases, dropped, truncated := pair([]string{"a", "b", "c"})
	assert.Equal(t, []Phrase{{Text: "a", Author: "b"}}, phrases)
	assert.Equal(t, "c", dropped)
	assert.True(t, truncated)

	phrases, dropped, truncated = pair([]string{"a", "b"})
	assert.Len(t, phrases, 1)
	assert.Empty(t, dropped)
	assert.False(t, truncated)
}

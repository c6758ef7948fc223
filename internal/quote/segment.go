package quote

import "strings"

// LineJoin is appended after every line of a block. The tokenizer treats it as
// a phrase boundary, which keeps line breaks distinct from the text itself.
const LineJoin = ";;"

// Block is a run of lines destined to become one quote.
type Block struct {
	Text string
	// Line is the 1-based line number of the first line in the block.
	Line int
}

// segmenter groups lines into blocks. It is either idle (open == false) or
// accumulating a block that started at index start.
type segmenter struct {
	singleLineBreak bool

	open      bool
	start     int
	prevBlank bool
	text      strings.Builder

	blocks []Block
}

func (s *segmenter) blank() {
	s.prevBlank = true
}

func (s *segmenter) line(index int, content string) {
	// The blank flag is only cleared when a block is emitted. A file that starts
	// with blank lines therefore closes its first block after a single line.
	if (s.prevBlank || s.singleLineBreak) && s.open {
		s.emit()
		s.prevBlank = false
	}

	if !s.open {
		s.open = true
		s.start = index
	}
	s.text.WriteString(content)
	s.text.WriteString(LineJoin)
}

func (s *segmenter) emit() {
	s.blocks = append(s.blocks, Block{Text: s.text.String(), Line: s.start + 1})
	s.text.Reset()
	s.open = false
}

func (s *segmenter) finish() []Block {
	if s.open {
		s.emit()
	}
	return s.blocks
}

// Segment splits contents into blocks separated by blank lines. When
// singleLineBreak is set every line break ends a block as well.
//
// Only empty lines count as blank; a line holding whitespace is content.
func Segment(contents string, singleLineBreak bool) []Block {
	s := &segmenter{singleLineBreak: singleLineBreak}
	for i, line := range splitLines(contents) {
		if line == "" {
			s.blank()
			continue
		}
		s.line(i, line)
	}
	return s.finish()
}

// splitLines splits on "\n", drops a trailing "\r" from each line and does not
// report an empty final line after a terminating newline.
func splitLines(contents string) []string {
	if contents == "" {
		return nil
	}
	lines := strings.Split(contents, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

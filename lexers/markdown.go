package lexers

import (
	"rosettes/lexer"
	"rosettes/token"
)

// mdInlineStop are the bytes that end a plain text run.
const mdInlineStop = "\n`*_[]!#>-+"

// Markdown lexes Markdown documents. Block structure (headings, lists,
// code fences) is only recognized at the start of a line.
type Markdown struct {
	lexer.Info
}

// NewMarkdown returns the Markdown lexer.
func NewMarkdown() *Markdown {
	return &Markdown{Info: lexer.Info{
		LangName:  "markdown",
		LangAlias: []string{"md"},
		Globs:     []string{"*.md", "*.markdown"},
		Mimes:     []string{"text/markdown"},
	}}
}

// Tokenize lexes a Markdown document.
func (l *Markdown) Tokenize(src string) []token.Token {
	s := lexer.NewStream(src)
	atLineStart := true

	for !s.EOF() {
		c := s.Peek()

		if c == '\n' {
			s.EmitByte(token.Whitespace)
			atLineStart = true
			continue
		}

		if atLineStart {
			switch {
			case s.HasPrefix("```"):
				scanFencedBlock(s)
				atLineStart = false
				continue
			case s.HasPrefix("    ") || c == '\t':
				m := s.Mark()
				s.ScanLine()
				s.Emit(token.String, m)
				atLineStart = false
				continue
			case c == '#':
				m := s.Mark()
				s.AcceptWhile(func(b byte) bool { return b == '#' })
				if s.Peek() == ' ' || s.Peek() == '\t' {
					s.ScanLine()
					s.Emit(token.GenericHeading, m)
				} else {
					s.Emit(token.Text, m)
				}
				atLineStart = false
				continue
			case c == '>':
				m := s.Mark()
				s.ScanLine()
				s.Emit(token.GenericOutput, m)
				atLineStart = false
				continue
			case scanRuleOrList(s, c):
				atLineStart = false
				continue
			case lexer.IsDigit(c):
				m := s.Mark()
				s.AcceptWhile(lexer.IsDigit)
				if s.Peek() == '.' && (s.PeekAt(1) == ' ' || s.PeekAt(1) == '\t') {
					s.Advance(1)
					s.Emit(token.Punctuation, m)
				} else {
					s.Emit(token.Text, m)
				}
				atLineStart = false
				continue
			}
		}

		switch {
		case c == '`':
			m := s.Mark()
			s.Advance(1)
			for !s.EOF() && s.Peek() != '`' && s.Peek() != '\n' {
				s.Advance(1)
			}
			s.AcceptByte('`')
			s.Emit(token.String, m)
			atLineStart = false
		case c == '*' || c == '_':
			m := s.Mark()
			count := 0
			for s.Peek() == c {
				count++
				s.Advance(1)
			}
			switch {
			case count >= 2 && count <= 3:
				s.Emit(token.GenericStrong, m)
			case count == 1:
				s.Emit(token.GenericEmph, m)
			default:
				s.Emit(token.Text, m)
			}
			atLineStart = false
		case c == '[':
			scanMarkdownLink(s)
			atLineStart = false
		case c == '!' && s.PeekAt(1) == '[':
			scanMarkdownImage(s)
			atLineStart = false
		case c == ' ' || c == '\t':
			m := s.Mark()
			s.AcceptWhile(func(b byte) bool { return b == ' ' || b == '\t' })
			s.Emit(token.Whitespace, m)
		default:
			m := s.Mark()
			s.AcceptUntil(func(b byte) bool {
				for i := 0; i < len(mdInlineStop); i++ {
					if mdInlineStop[i] == b {
						return true
					}
				}
				return b == ' ' || b == '\t'
			})
			if s.Pos() == m.Pos() {
				// A structural byte with no inline meaning here.
				s.EmitByte(token.Text)
			} else {
				s.Emit(token.Text, m)
			}
			atLineStart = false
		}
	}
	return s.Tokens()
}

// scanFencedBlock consumes a ``` fence through its closing fence (or
// EOF) as one String token.
func scanFencedBlock(s *lexer.Stream) {
	m := s.Mark()
	s.Advance(3)
	s.ScanLine() // info string
	for !s.EOF() {
		if s.Peek() == '\n' && s.HasPrefix("\n```") {
			s.Advance(4)
			s.ScanLine()
			break
		}
		s.Advance(1)
	}
	s.Emit(token.String, m)
}

// scanRuleOrList recognizes horizontal rules (--- *** ___) and list
// markers (- * +) at line start. Reports whether it consumed input.
func scanRuleOrList(s *lexer.Stream, c byte) bool {
	if c != '-' && c != '*' && c != '+' && c != '_' {
		return false
	}

	// Horizontal rule: three or more of the marker, spaces allowed,
	// nothing else before the line break.
	if c == '-' || c == '*' || c == '_' {
		count, i := 0, 0
		for {
			b := s.PeekAt(i)
			if b == c {
				count++
				i++
				continue
			}
			if b == ' ' || b == '\t' {
				i++
				continue
			}
			break
		}
		if count >= 3 && (s.PeekAt(i) == '\n' || s.PeekAt(i) == 0) {
			m := s.Mark()
			s.Advance(i)
			s.Emit(token.Punctuation, m)
			return true
		}
	}

	// List marker.
	if (c == '-' || c == '*' || c == '+') && (s.PeekAt(1) == ' ' || s.PeekAt(1) == '\t') {
		s.EmitByte(token.Punctuation)
		return true
	}
	return false
}

// scanMarkdownLink consumes [text](url) or [text][ref] as one token.
func scanMarkdownLink(s *lexer.Stream) {
	m := s.Mark()
	s.Advance(1)
	depth := 1
	for !s.EOF() && depth > 0 {
		switch s.Peek() {
		case '[':
			depth++
		case ']':
			depth--
		case '\n':
			s.Emit(token.NameLabel, m)
			return
		}
		s.Advance(1)
	}
	switch s.Peek() {
	case '(':
		s.Advance(1)
		for !s.EOF() && s.Peek() != ')' && s.Peek() != '\n' {
			s.Advance(1)
		}
		s.AcceptByte(')')
	case '[':
		s.Advance(1)
		for !s.EOF() && s.Peek() != ']' && s.Peek() != '\n' {
			s.Advance(1)
		}
		s.AcceptByte(']')
	}
	s.Emit(token.NameLabel, m)
}

// scanMarkdownImage consumes ![alt](url) as one token.
func scanMarkdownImage(s *lexer.Stream) {
	m := s.Mark()
	s.Advance(2)
	for !s.EOF() && s.Peek() != ']' && s.Peek() != '\n' {
		s.Advance(1)
	}
	if s.AcceptByte(']') && s.Peek() == '(' {
		s.Advance(1)
		for !s.EOF() && s.Peek() != ')' && s.Peek() != '\n' {
			s.Advance(1)
		}
		s.AcceptByte(')')
	}
	s.Emit(token.NameLabel, m)
}

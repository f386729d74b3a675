package lexer

import (
	"strings"

	"rosettes/token"
)

// Stream is the scanning cursor used by state machine lexers.
//
// A Stream works on raw bytes. Multi-byte UTF-8 sequences pass through
// untouched inside whatever token they land in, which keeps the stream
// lossless on arbitrary input. Newline accounting happens in Emit, so
// individual scan loops never need to track line numbers.
type Stream struct {
	src       string
	pos       int
	line      int
	lineStart int
	tokens    []token.Token
}

// NewStream returns a Stream positioned at the start of src.
func NewStream(src string) *Stream {
	return &Stream{src: src, line: 1}
}

// Mark records a position to emit a token from later.
type Mark struct {
	pos  int
	line int
	col  int
}

// Pos returns the byte offset the mark was taken at.
func (m Mark) Pos() int { return m.pos }

// Mark captures the current position.
func (s *Stream) Mark() Mark {
	return Mark{pos: s.pos, line: s.line, col: s.pos - s.lineStart + 1}
}

// EOF reports whether the cursor is at the end of input.
func (s *Stream) EOF() bool { return s.pos >= len(s.src) }

// Pos returns the current byte offset.
func (s *Stream) Pos() int { return s.pos }

// Column returns the 1-based column of the cursor on the current line.
func (s *Stream) Column() int { return s.pos - s.lineStart + 1 }

// Peek returns the byte at the cursor, or 0 at EOF.
func (s *Stream) Peek() byte {
	if s.pos >= len(s.src) {
		return 0
	}
	return s.src[s.pos]
}

// PeekAt returns the byte at offset n from the cursor, or 0 past EOF.
func (s *Stream) PeekAt(n int) byte {
	if s.pos+n >= len(s.src) || s.pos+n < 0 {
		return 0
	}
	return s.src[s.pos+n]
}

// HasPrefix reports whether the remaining input starts with p.
func (s *Stream) HasPrefix(p string) bool {
	return strings.HasPrefix(s.src[s.pos:], p)
}

// Advance moves the cursor forward n bytes, clamped to EOF.
func (s *Stream) Advance(n int) {
	s.pos += n
	if s.pos > len(s.src) {
		s.pos = len(s.src)
	}
}

// Emit appends the token spanning from m to the cursor and updates line
// accounting for any newlines the token contains. Empty spans are
// dropped, which upholds the no-empty-token invariant.
func (s *Stream) Emit(t token.Type, m Mark) {
	if s.pos <= m.pos {
		return
	}
	value := s.src[m.pos:s.pos]
	s.tokens = append(s.tokens, token.Token{Type: t, Value: value, Line: m.line, Column: m.col})
	if i := strings.LastIndexByte(value, '\n'); i >= 0 {
		s.line = m.line + strings.Count(value, "\n")
		s.lineStart = m.pos + i + 1
	}
}

// EmitByte emits the single byte at the cursor as its own token.
func (s *Stream) EmitByte(t token.Type) {
	m := s.Mark()
	s.Advance(1)
	s.Emit(t, m)
}

// Tokens returns the emitted token stream.
func (s *Stream) Tokens() []token.Token { return s.tokens }

// Since returns the input consumed between m and the cursor.
func (s *Stream) Since(m Mark) string { return s.src[m.pos:s.pos] }

// Rest returns the unconsumed input. Mostly useful in tests.
func (s *Stream) Rest() string { return s.src[s.pos:] }

// AcceptWhile advances past every byte satisfying pred and reports
// whether the cursor moved.
func (s *Stream) AcceptWhile(pred func(byte) bool) bool {
	start := s.pos
	for s.pos < len(s.src) && pred(s.src[s.pos]) {
		s.pos++
	}
	return s.pos > start
}

// AcceptUntil advances until a byte satisfying pred (or EOF).
func (s *Stream) AcceptUntil(pred func(byte) bool) {
	for s.pos < len(s.src) && !pred(s.src[s.pos]) {
		s.pos++
	}
}

// AcceptByte advances past the cursor byte if it equals b.
func (s *Stream) AcceptByte(b byte) bool {
	if s.pos < len(s.src) && s.src[s.pos] == b {
		s.pos++
		return true
	}
	return false
}

// ScanString consumes a string body up to and including the closing
// quote. The cursor must be just past the opening quote. Backslash
// escapes are honored when escape is true; a newline terminates the scan
// (before the newline) unless multiline is true. Unterminated strings
// consume to EOF.
func (s *Stream) ScanString(quote byte, escape, multiline bool) {
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if c == quote {
			s.pos++
			return
		}
		if c == '\\' && escape && s.pos+1 < len(s.src) {
			s.pos += 2
			continue
		}
		if c == '\n' && !multiline {
			return
		}
		s.pos++
	}
}

// ScanTripleString consumes a triple-quoted string body up to and
// including the closing delimiter. The cursor must be just past the
// opening delimiter.
func (s *Stream) ScanTripleString(quote byte) {
	delim := string([]byte{quote, quote, quote})
	for s.pos < len(s.src) {
		if s.HasPrefix(delim) {
			s.pos += 3
			return
		}
		if s.src[s.pos] == '\\' && s.pos+1 < len(s.src) {
			s.pos += 2
			continue
		}
		s.pos++
	}
}

// ScanLine consumes to the end of the current line, excluding the
// newline itself.
func (s *Stream) ScanLine() {
	for s.pos < len(s.src) && s.src[s.pos] != '\n' {
		s.pos++
	}
}

// ScanBlockComment consumes up to and including end. Unterminated
// comments consume to EOF.
func (s *Stream) ScanBlockComment(end string) {
	for s.pos < len(s.src) {
		if s.HasPrefix(end) {
			s.pos += len(end)
			return
		}
		s.pos++
	}
}

// ScanNestedBlockComment consumes a block comment that may nest, as in
// Rust. The cursor must be just past the first opening marker.
func (s *Stream) ScanNestedBlockComment(open, close string) {
	depth := 1
	for s.pos < len(s.src) {
		switch {
		case s.HasPrefix(close):
			s.pos += len(close)
			depth--
			if depth == 0 {
				return
			}
		case s.HasPrefix(open):
			s.pos += len(open)
			depth++
		default:
			s.pos++
		}
	}
}

// Byte classification. ASCII-only on purpose: every lexer treats bytes
// >= 0x80 as identifier or text content, which is the safe lossless
// interpretation for UTF-8 input.

// IsDigit reports whether b is an ASCII decimal digit.
func IsDigit(b byte) bool { return b >= '0' && b <= '9' }

// IsHexDigit reports whether b is an ASCII hex digit.
func IsHexDigit(b byte) bool {
	return IsDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// IsOctDigit reports whether b is an ASCII octal digit.
func IsOctDigit(b byte) bool { return b >= '0' && b <= '7' }

// IsBinDigit reports whether b is '0' or '1'.
func IsBinDigit(b byte) bool { return b == '0' || b == '1' }

// IsLetter reports whether b is an ASCII letter.
func IsLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// IsIdentStart reports whether b can begin an identifier. Non-ASCII
// bytes count so that UTF-8 identifiers lex as single tokens.
func IsIdentStart(b byte) bool {
	return IsLetter(b) || b == '_' || b >= 0x80
}

// IsIdentCont reports whether b can continue an identifier.
func IsIdentCont(b byte) bool { return IsIdentStart(b) || IsDigit(b) }

// IsSpace reports whether b is ASCII whitespace.
func IsSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

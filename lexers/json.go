package lexers

import (
	"rosettes/lexer"
	"rosettes/token"
)

// JSON lexes JSON documents. The grammar is small, so the whole state
// machine is inline.
type JSON struct {
	lexer.Info
}

// NewJSON returns the JSON lexer.
func NewJSON() *JSON {
	return &JSON{Info: lexer.Info{
		LangName: "json",
		Globs:    []string{"*.json"},
		Mimes:    []string{"application/json"},
	}}
}

// Tokenize lexes a JSON document.
func (l *JSON) Tokenize(src string) []token.Token {
	s := lexer.NewStream(src)
	for !s.EOF() {
		if scanWhitespace(s) {
			continue
		}
		c := s.Peek()
		switch {
		case c == '"':
			m := s.Mark()
			s.Advance(1)
			s.ScanString('"', true, false)
			s.Emit(token.String, m)
		case lexer.IsDigit(c) || (c == '-' && lexer.IsDigit(s.PeekAt(1))):
			m := s.Mark()
			s.AcceptByte('-')
			scanJSONNumber(s)
			if hasFloatMarker(s.Since(m)) {
				s.Emit(token.NumberFloat, m)
			} else {
				s.Emit(token.NumberInteger, m)
			}
		case s.HasPrefix("true"):
			m := s.Mark()
			s.Advance(4)
			s.Emit(token.KeywordConstant, m)
		case s.HasPrefix("false"):
			m := s.Mark()
			s.Advance(5)
			s.Emit(token.KeywordConstant, m)
		case s.HasPrefix("null"):
			m := s.Mark()
			s.Advance(4)
			s.Emit(token.KeywordConstant, m)
		case c == '{' || c == '}' || c == '[' || c == ']' || c == ',' || c == ':':
			s.EmitByte(token.Punctuation)
		default:
			s.EmitByte(token.Error)
		}
	}
	return s.Tokens()
}

func scanJSONNumber(s *lexer.Stream) {
	s.AcceptWhile(lexer.IsDigit)
	if s.Peek() == '.' && lexer.IsDigit(s.PeekAt(1)) {
		s.Advance(1)
		s.AcceptWhile(lexer.IsDigit)
	}
	if e := s.Peek(); e == 'e' || e == 'E' {
		next := s.PeekAt(1)
		if lexer.IsDigit(next) || ((next == '+' || next == '-') && lexer.IsDigit(s.PeekAt(2))) {
			s.Advance(1)
			if p := s.Peek(); p == '+' || p == '-' {
				s.Advance(1)
			}
			s.AcceptWhile(lexer.IsDigit)
		}
	}
}

func hasFloatMarker(lit string) bool {
	for i := 0; i < len(lit); i++ {
		switch lit[i] {
		case '.', 'e', 'E':
			return true
		}
	}
	return false
}

package lexers

import (
	"strings"

	"rosettes/lexer"
	"rosettes/token"
)

var yamlConstants = newWordSet(
	"true", "false", "True", "False", "TRUE", "FALSE", "null", "Null",
	"NULL", "~", "yes", "no", "Yes", "No", "YES", "NO", "on", "off",
	"On", "Off",
)

// YAML lexes YAML documents: keys, scalars, anchors, tags, and the
// document markers.
type YAML struct {
	lexer.Info
}

// NewYAML returns the YAML lexer.
func NewYAML() *YAML {
	return &YAML{Info: lexer.Info{
		LangName:  "yaml",
		LangAlias: []string{"yml"},
		Globs:     []string{"*.yaml", "*.yml"},
		Mimes:     []string{"text/x-yaml", "application/x-yaml"},
	}}
}

// Tokenize lexes a YAML document.
func (l *YAML) Tokenize(src string) []token.Token {
	s := lexer.NewStream(src)
	for !s.EOF() {
		if scanWhitespace(s) {
			continue
		}
		c := s.Peek()
		switch {
		case c == '#':
			m := s.Mark()
			s.ScanLine()
			s.Emit(token.CommentSingle, m)
		case s.Column() == 1 && (s.HasPrefix("---") || s.HasPrefix("...")):
			m := s.Mark()
			s.Advance(3)
			s.Emit(token.PunctuationMarker, m)
		case c == '-' && isYAMLBreak(s.PeekAt(1)):
			s.EmitByte(token.Punctuation)
		case c == '"':
			m := s.Mark()
			s.Advance(1)
			s.ScanString('"', true, false)
			s.Emit(token.StringDouble, m)
		case c == '\'':
			m := s.Mark()
			s.Advance(1)
			s.ScanString('\'', false, false)
			s.Emit(token.StringSingle, m)
		case (c == '&' || c == '*') && lexer.IsIdentCont(s.PeekAt(1)):
			m := s.Mark()
			s.Advance(1)
			s.AcceptWhile(func(b byte) bool { return lexer.IsIdentCont(b) || b == '-' })
			s.Emit(token.NameLabel, m)
		case c == '!':
			m := s.Mark()
			s.AcceptUntil(func(b byte) bool { return lexer.IsSpace(b) })
			s.Emit(token.KeywordType, m)
		case c == '|' || c == '>':
			// Block scalar indicator; the indented body lexes as
			// plain text lines on later iterations.
			s.EmitByte(token.Punctuation)
		case c == ':' || c == ',' || c == '[' || c == ']' || c == '{' || c == '}' || c == '?':
			s.EmitByte(token.Punctuation)
		default:
			scanYAMLScalar(s)
		}
	}
	return s.Tokens()
}

func isYAMLBreak(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == 0
}

// scanYAMLScalar consumes a plain scalar run and classifies it: a run
// directly followed by ": " is a mapping key, boolean and null words
// are constants, numeric scalars are numbers, the rest is plain text.
func scanYAMLScalar(s *lexer.Stream) {
	m := s.Mark()
	for !s.EOF() {
		c := s.Peek()
		if c == '\n' || c == '#' || c == ',' || c == ']' || c == '}' {
			break
		}
		if c == ':' && isYAMLBreak(s.PeekAt(1)) {
			break
		}
		s.Advance(1)
	}
	run := s.Since(m)
	if run == "" {
		// Defensive: the dispatch loop guarantees at least one byte.
		s.EmitByte(token.Error)
		return
	}

	value := strings.TrimRight(run, " \t")
	switch {
	case s.Peek() == ':':
		s.Emit(token.NameAttribute, m)
	case yamlConstants[value]:
		s.Emit(token.KeywordConstant, m)
	case isYAMLNumber(value):
		if strings.ContainsAny(value, ".eE") && !strings.HasPrefix(value, "0x") {
			s.Emit(token.NumberFloat, m)
		} else {
			s.Emit(token.NumberInteger, m)
		}
	default:
		s.Emit(token.Text, m)
	}
}

func isYAMLNumber(v string) bool {
	if v == "" {
		return false
	}
	i := 0
	if v[0] == '-' || v[0] == '+' {
		i++
	}
	if i >= len(v) {
		return false
	}
	digits := 0
	for ; i < len(v); i++ {
		switch {
		case lexer.IsDigit(v[i]):
			digits++
		case v[i] == '.' || v[i] == 'e' || v[i] == 'E' || v[i] == '+' || v[i] == '-' || v[i] == '_' || v[i] == 'x' || lexer.IsHexDigit(v[i]):
			// Accepted inside numeric scalars (floats, exponents,
			// hex). Validity beyond shape does not matter here.
		default:
			return false
		}
	}
	return digits > 0
}

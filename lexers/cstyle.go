// Package lexers provides the built-in state machine lexers.
//
// Each language lives in its own file. The C-family languages (c, cpp,
// go, javascript, rust) share the scanning routines in this file for
// comments, numbers, strings, and operators; only keyword tables and the
// genuinely language-specific constructs differ per lexer.
package lexers

import (
	"rosettes/lexer"
	"rosettes/token"
)

// wordSet is a keyword lookup table.
type wordSet map[string]bool

func newWordSet(words ...string) wordSet {
	set := make(wordSet, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// numberOpts controls scanCNumber.
type numberOpts struct {
	// suffix bytes allowed after the numeric body (e.g. "uUlLfF" for C,
	// "n" for JavaScript BigInt).
	suffixes string
	// digit group separator, 0 for none ('\'' for C++, '_' for Go,
	// Python, Rust, JavaScript).
	separator byte
}

func isSuffixByte(b byte, suffixes string) bool {
	for i := 0; i < len(suffixes); i++ {
		if suffixes[i] == b {
			return true
		}
	}
	return false
}

// scanCComment consumes a // line comment or a /* */ block comment at
// the cursor and emits it. Reports whether a comment was consumed.
func scanCComment(s *lexer.Stream) bool {
	if s.Peek() != '/' {
		return false
	}
	switch s.PeekAt(1) {
	case '/':
		m := s.Mark()
		s.ScanLine()
		s.Emit(token.CommentSingle, m)
		return true
	case '*':
		m := s.Mark()
		s.Advance(2)
		s.ScanBlockComment("*/")
		s.Emit(token.CommentMultiline, m)
		return true
	}
	return false
}

// scanCNumber consumes a numeric literal at the cursor (which must be a
// digit, or '.' followed by a digit) and emits the appropriate number
// token. Reports whether a number was consumed.
func scanCNumber(s *lexer.Stream, opts numberOpts) bool {
	c := s.Peek()
	if !lexer.IsDigit(c) && !(c == '.' && lexer.IsDigit(s.PeekAt(1))) {
		return false
	}

	m := s.Mark()
	digits := func(pred func(byte) bool) {
		for {
			if pred(s.Peek()) {
				s.Advance(1)
				continue
			}
			if opts.separator != 0 && s.Peek() == opts.separator && pred(s.PeekAt(1)) {
				s.Advance(2)
				continue
			}
			return
		}
	}

	// Radix prefixes.
	if c == '0' {
		switch s.PeekAt(1) {
		case 'x', 'X':
			if lexer.IsHexDigit(s.PeekAt(2)) {
				s.Advance(2)
				digits(lexer.IsHexDigit)
				acceptSuffixes(s, opts.suffixes)
				s.Emit(token.NumberHex, m)
				return true
			}
		case 'b', 'B':
			if lexer.IsBinDigit(s.PeekAt(2)) {
				s.Advance(2)
				digits(lexer.IsBinDigit)
				acceptSuffixes(s, opts.suffixes)
				s.Emit(token.NumberBin, m)
				return true
			}
		case 'o', 'O':
			if lexer.IsOctDigit(s.PeekAt(2)) {
				s.Advance(2)
				digits(lexer.IsOctDigit)
				acceptSuffixes(s, opts.suffixes)
				s.Emit(token.NumberOct, m)
				return true
			}
		}
	}

	isFloat := false
	if c == '.' {
		isFloat = true
		s.Advance(1)
		digits(lexer.IsDigit)
	} else {
		digits(lexer.IsDigit)
		if s.Peek() == '.' && lexer.IsDigit(s.PeekAt(1)) {
			isFloat = true
			s.Advance(1)
			digits(lexer.IsDigit)
		} else if s.Peek() == '.' && !lexer.IsIdentStart(s.PeekAt(1)) && s.PeekAt(1) != '.' {
			// Trailing dot as in "1." — C-family float.
			isFloat = true
			s.Advance(1)
		}
	}

	// Exponent.
	if e := s.Peek(); e == 'e' || e == 'E' {
		next := s.PeekAt(1)
		if lexer.IsDigit(next) || ((next == '+' || next == '-') && lexer.IsDigit(s.PeekAt(2))) {
			isFloat = true
			s.Advance(1)
			if p := s.Peek(); p == '+' || p == '-' {
				s.Advance(1)
			}
			digits(lexer.IsDigit)
		}
	}

	acceptSuffixes(s, opts.suffixes)

	if isFloat {
		s.Emit(token.NumberFloat, m)
	} else {
		s.Emit(token.NumberInteger, m)
	}
	return true
}

func acceptSuffixes(s *lexer.Stream, suffixes string) {
	for isSuffixByte(s.Peek(), suffixes) {
		s.Advance(1)
	}
}

// scanOperator consumes the longest operator at the cursor, trying the
// three-byte set, then the two-byte set, then single bytes. Reports
// whether an operator was consumed.
func scanOperator(s *lexer.Stream, three, two []string, single string) bool {
	for _, op := range three {
		if s.HasPrefix(op) {
			m := s.Mark()
			s.Advance(3)
			s.Emit(token.Operator, m)
			return true
		}
	}
	for _, op := range two {
		if s.HasPrefix(op) {
			m := s.Mark()
			s.Advance(2)
			s.Emit(token.Operator, m)
			return true
		}
	}
	if isSuffixByte(s.Peek(), single) {
		s.EmitByte(token.Operator)
		return true
	}
	return false
}

// scanWhitespace consumes a run of whitespace at the cursor and emits
// it. Reports whether any was consumed.
func scanWhitespace(s *lexer.Stream) bool {
	if s.EOF() || !lexer.IsSpace(s.Peek()) {
		return false
	}
	m := s.Mark()
	s.AcceptWhile(lexer.IsSpace)
	s.Emit(token.Whitespace, m)
	return true
}

// scanIdent consumes an identifier at the cursor and returns it without
// emitting; the caller classifies and emits via the returned mark.
// Returns "" if the cursor is not at an identifier start.
func scanIdent(s *lexer.Stream) (string, lexer.Mark) {
	m := s.Mark()
	if s.EOF() || !lexer.IsIdentStart(s.Peek()) {
		return "", m
	}
	s.AcceptWhile(lexer.IsIdentCont)
	return s.Since(m), m
}

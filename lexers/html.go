package lexers

import (
	"rosettes/lexer"
	"rosettes/token"
)

// HTML lexes HTML markup. Raw text inside script and style elements is
// not re-lexed as its own language.
type HTML struct {
	lexer.Info
}

// NewHTML returns the HTML lexer.
func NewHTML() *HTML {
	return &HTML{Info: lexer.Info{
		LangName:  "html",
		LangAlias: []string{"htm", "xhtml"},
		Globs:     []string{"*.html", "*.htm", "*.xhtml"},
		Mimes:     []string{"text/html"},
	}}
}

// Tokenize lexes an HTML document.
func (l *HTML) Tokenize(src string) []token.Token {
	s := lexer.NewStream(src)
	for !s.EOF() {
		c := s.Peek()
		switch {
		case s.HasPrefix("<!--"):
			m := s.Mark()
			s.Advance(4)
			s.ScanBlockComment("-->")
			s.Emit(token.CommentMultiline, m)
		case s.HasPrefix("<!"):
			// DOCTYPE and CDATA sections.
			m := s.Mark()
			s.Advance(2)
			for !s.EOF() && s.Peek() != '>' {
				s.Advance(1)
			}
			s.AcceptByte('>')
			s.Emit(token.CommentPreproc, m)
		case c == '<' && (isTagNameStart(s.PeekAt(1)) || (s.PeekAt(1) == '/' && isTagNameStart(s.PeekAt(2)))):
			scanHTMLTag(s)
		case c == '&':
			scanHTMLEntity(s)
		case lexer.IsSpace(c):
			m := s.Mark()
			s.AcceptWhile(lexer.IsSpace)
			s.Emit(token.Whitespace, m)
		default:
			m := s.Mark()
			s.AcceptUntil(func(b byte) bool {
				return b == '<' || b == '&' || lexer.IsSpace(b)
			})
			if s.Pos() == m.Pos() {
				s.EmitByte(token.Text)
			} else {
				s.Emit(token.Text, m)
			}
		}
	}
	return s.Tokens()
}

func isTagNameStart(b byte) bool { return lexer.IsLetter(b) }

func isTagNameCont(b byte) bool {
	return lexer.IsLetter(b) || lexer.IsDigit(b) || b == '-' || b == ':'
}

// scanHTMLTag consumes a tag from "<" through ">" and emits its parts.
// An unterminated tag runs to EOF.
func scanHTMLTag(s *lexer.Stream) {
	m := s.Mark()
	s.Advance(1)
	s.AcceptByte('/')
	s.AcceptWhile(isTagNameCont)
	s.Emit(token.NameTag, m)

	for !s.EOF() {
		c := s.Peek()
		switch {
		case c == '>':
			s.EmitByte(token.NameTag)
			return
		case s.HasPrefix("/>"):
			m := s.Mark()
			s.Advance(2)
			s.Emit(token.NameTag, m)
			return
		case lexer.IsSpace(c):
			m := s.Mark()
			s.AcceptWhile(lexer.IsSpace)
			s.Emit(token.Whitespace, m)
		case c == '=':
			s.EmitByte(token.Operator)
		case c == '"' || c == '\'':
			m := s.Mark()
			s.Advance(1)
			s.ScanString(c, false, true)
			if c == '"' {
				s.Emit(token.StringDouble, m)
			} else {
				s.Emit(token.StringSingle, m)
			}
		case isTagNameCont(c) || c == '_':
			m := s.Mark()
			s.AcceptWhile(func(b byte) bool { return isTagNameCont(b) || b == '_' })
			s.Emit(token.NameAttribute, m)
		case c == '<':
			// A stray open bracket ends the malformed tag.
			return
		default:
			s.EmitByte(token.Text)
		}
	}
}

// scanHTMLEntity consumes &name; or &#nnn; as a NameEntity token. A
// bare ampersand is plain text.
func scanHTMLEntity(s *lexer.Stream) {
	i := 1
	if s.PeekAt(i) == '#' {
		i++
		if s.PeekAt(i) == 'x' || s.PeekAt(i) == 'X' {
			i++
		}
		for lexer.IsHexDigit(s.PeekAt(i)) {
			i++
		}
	} else {
		for lexer.IsLetter(s.PeekAt(i)) || lexer.IsDigit(s.PeekAt(i)) {
			i++
		}
	}
	if i > 1 && s.PeekAt(i) == ';' {
		m := s.Mark()
		s.Advance(i + 1)
		s.Emit(token.NameEntity, m)
		return
	}
	s.EmitByte(token.Text)
}

package lexers

import (
	"strings"

	"rosettes/lexer"
	"rosettes/token"
)

var rustKeywords = newWordSet(
	"as", "async", "await", "break", "continue", "dyn", "else", "for",
	"if", "in", "loop", "match", "move", "mut", "ref", "return",
	"unsafe", "where", "while",
)

var rustDeclarations = newWordSet(
	"const", "crate", "enum", "extern", "fn", "impl", "let", "mod",
	"pub", "static", "struct", "trait", "type", "union", "use",
)

var rustTypes = newWordSet(
	"bool", "char", "f32", "f64", "i8", "i16", "i32", "i64", "i128",
	"isize", "str", "u8", "u16", "u32", "u64", "u128", "usize",
	"String", "Vec", "Box", "Rc", "Arc", "Cell", "RefCell", "HashMap",
	"HashSet", "BTreeMap", "BTreeSet", "Option", "Result", "Cow",
)

var rustConstants = newWordSet("true", "false", "Some", "None", "Ok", "Err")

var rustPseudo = newWordSet("self", "Self")

var rustOperators3 = []string{"<<=", ">>=", "..="}

var rustOperators2 = []string{
	"==", "!=", "<=", ">=", "&&", "||", "<<", ">>", "+=", "-=", "*=",
	"/=", "%=", "&=", "|=", "^=", "->", "=>", "::", "..",
}

const rustOperators1 = "+-*/%&|^!<>=@"

// Rust number suffixes are full type names (i32, usize, f64, ...);
// suffix bytes cover them since the set is checked bytewise.
var rustNumbers = numberOpts{suffixes: "iuf0123456789size", separator: '_'}

// Rust lexes Rust source: nested block comments, lifetimes, raw and
// byte strings, attributes, macro invocations.
type Rust struct {
	lexer.Info
}

// NewRust returns the Rust lexer.
func NewRust() *Rust {
	return &Rust{Info: lexer.Info{
		LangName:  "rust",
		LangAlias: []string{"rs"},
		Globs:     []string{"*.rs"},
		Mimes:     []string{"text/x-rustsrc"},
	}}
}

// Tokenize lexes Rust source code.
func (l *Rust) Tokenize(src string) []token.Token {
	s := lexer.NewStream(src)
	for !s.EOF() {
		if scanWhitespace(s) {
			continue
		}
		c := s.Peek()
		switch {
		case c == '/' && s.PeekAt(1) == '/':
			m := s.Mark()
			s.ScanLine()
			kind := token.CommentSingle
			body := s.Since(m)
			if strings.HasPrefix(body, "///") || strings.HasPrefix(body, "//!") {
				kind = token.StringDoc
			}
			s.Emit(kind, m)
		case c == '/' && s.PeekAt(1) == '*':
			m := s.Mark()
			s.Advance(2)
			s.ScanNestedBlockComment("/*", "*/")
			s.Emit(token.CommentMultiline, m)
		case c == '#' && (s.PeekAt(1) == '[' || (s.PeekAt(1) == '!' && s.PeekAt(2) == '[')):
			scanRustAttribute(s)
		case c == '"':
			m := s.Mark()
			s.Advance(1)
			s.ScanString('"', true, true)
			s.Emit(token.String, m)
		case c == '\'':
			scanRustQuote(s)
		case scanCNumber(s, rustNumbers):
		case lexer.IsIdentStart(c):
			word, m := scanIdent(s)
			switch {
			case (word == "r" || word == "b" || word == "br" || word == "rb") && (s.Peek() == '"' || s.Peek() == '#'):
				scanRustRawString(s)
				s.Emit(token.String, m)
			case word == "b" && s.Peek() == '\'':
				s.Advance(1)
				s.ScanString('\'', true, false)
				s.Emit(token.StringChar, m)
			case s.Peek() == '!' && s.PeekAt(1) != '=':
				s.Advance(1)
				s.Emit(token.NameFunctionMagic, m)
			default:
				s.Emit(classifyRustWord(word), m)
			}
		case scanOperator(s, rustOperators3, rustOperators2, rustOperators1):
		case strings.IndexByte("()[]{};,.:?", c) >= 0:
			s.EmitByte(token.Punctuation)
		default:
			s.EmitByte(token.Error)
		}
	}
	return s.Tokens()
}

func classifyRustWord(word string) token.Type {
	switch {
	case rustKeywords[word]:
		return token.Keyword
	case rustDeclarations[word]:
		return token.KeywordDeclaration
	case rustTypes[word]:
		return token.KeywordType
	case rustConstants[word]:
		return token.KeywordConstant
	case rustPseudo[word]:
		return token.NameBuiltinPseudo
	}
	return token.Name
}

// scanRustQuote disambiguates char literals from lifetimes. The cursor
// is on a single quote.
func scanRustQuote(s *lexer.Stream) {
	m := s.Mark()
	next := s.PeekAt(1)

	// 'x' or '\n' is a char literal; 'a with no closing quote is a
	// lifetime. One byte of lookahead decides.
	if lexer.IsIdentStart(next) && s.PeekAt(2) != '\'' {
		s.Advance(1)
		s.AcceptWhile(lexer.IsIdentCont)
		s.Emit(token.StringSymbol, m)
		return
	}
	s.Advance(1)
	s.ScanString('\'', true, false)
	s.Emit(token.StringChar, m)
}

// scanRustRawString consumes r"...", r#"..."#, br#"..."# and friends.
// The cursor is past the prefix letters, on '"' or '#'.
func scanRustRawString(s *lexer.Stream) {
	hashes := 0
	for s.Peek() == '#' {
		hashes++
		s.Advance(1)
	}
	if !s.AcceptByte('"') {
		return
	}
	closer := `"` + strings.Repeat("#", hashes)
	s.ScanBlockComment(closer)
}

// scanRustAttribute consumes #[...] or #![...] with balanced brackets.
func scanRustAttribute(s *lexer.Stream) {
	m := s.Mark()
	s.Advance(1) // '#'
	s.AcceptByte('!')
	s.AcceptByte('[')
	depth := 1
	for !s.EOF() && depth > 0 {
		switch s.Peek() {
		case '[':
			depth++
		case ']':
			depth--
		}
		s.Advance(1)
	}
	s.Emit(token.CommentPreproc, m)
}

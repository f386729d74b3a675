package lexers

import (
	"strings"

	"rosettes/lexer"
	"rosettes/token"
)

var goKeywords = newWordSet(
	"break", "case", "continue", "default", "defer", "else",
	"fallthrough", "for", "go", "goto", "if", "range", "return",
	"select", "switch",
)

var goDeclarations = newWordSet(
	"chan", "const", "func", "interface", "map", "struct", "type", "var",
)

var goNamespace = newWordSet("import", "package")

var goTypes = newWordSet(
	"any", "bool", "byte", "comparable", "complex64", "complex128",
	"error", "float32", "float64", "int", "int8", "int16", "int32",
	"int64", "rune", "string", "uint", "uint8", "uint16", "uint32",
	"uint64", "uintptr",
)

var goConstants = newWordSet("true", "false", "iota", "nil")

var goBuiltins = newWordSet(
	"append", "cap", "clear", "close", "complex", "copy", "delete",
	"imag", "len", "make", "max", "min", "new", "panic", "print",
	"println", "real", "recover",
)

var goOperators3 = []string{"<<=", ">>=", "&^="}

var goOperators2 = []string{
	":=", "<-", "++", "--", "==", "!=", "<=", ">=", "&&", "||", "+=",
	"-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<", ">>", "&^",
}

const goOperators1 = "+-*/%&|^~!<>="

var goNumbers = numberOpts{suffixes: "i", separator: '_'}

// Go lexes Go source.
type Go struct {
	lexer.Info
}

// NewGo returns the Go lexer.
func NewGo() *Go {
	return &Go{Info: lexer.Info{
		LangName:  "go",
		LangAlias: []string{"golang"},
		Globs:     []string{"*.go"},
		Mimes:     []string{"text/x-gosrc"},
	}}
}

// Tokenize lexes Go source code.
func (l *Go) Tokenize(src string) []token.Token {
	s := lexer.NewStream(src)
	for !s.EOF() {
		if scanWhitespace(s) || scanCComment(s) {
			continue
		}
		c := s.Peek()
		switch {
		case c == '`':
			m := s.Mark()
			s.Advance(1)
			s.ScanString('`', false, true)
			s.Emit(token.StringBacktick, m)
		case c == '"':
			m := s.Mark()
			s.Advance(1)
			s.ScanString('"', true, false)
			s.Emit(token.String, m)
		case c == '\'':
			m := s.Mark()
			s.Advance(1)
			s.ScanString('\'', true, false)
			s.Emit(token.StringChar, m)
		case scanCNumber(s, goNumbers):
		case lexer.IsIdentStart(c):
			word, m := scanIdent(s)
			s.Emit(classifyGoWord(word), m)
		case s.HasPrefix("..."):
			m := s.Mark()
			s.Advance(3)
			s.Emit(token.Punctuation, m)
		case scanOperator(s, goOperators3, goOperators2, goOperators1):
		case strings.IndexByte("()[]{};,.:", c) >= 0:
			s.EmitByte(token.Punctuation)
		default:
			s.EmitByte(token.Error)
		}
	}
	return s.Tokens()
}

func classifyGoWord(word string) token.Type {
	switch {
	case goKeywords[word]:
		return token.Keyword
	case goDeclarations[word]:
		return token.KeywordDeclaration
	case goNamespace[word]:
		return token.KeywordNamespace
	case goTypes[word]:
		return token.KeywordType
	case goConstants[word]:
		return token.KeywordConstant
	case goBuiltins[word]:
		return token.NameBuiltin
	}
	return token.Name
}

package lexers

import (
	"strings"

	"rosettes/lexer"
	"rosettes/token"
)

var pythonKeywords = newWordSet(
	"assert", "async", "await", "break", "case", "continue", "del",
	"elif", "else", "except", "finally", "for", "if", "match", "pass",
	"raise", "return", "try", "while", "with", "yield",
)

var pythonDeclarations = newWordSet("class", "def", "global", "lambda", "nonlocal")

var pythonNamespace = newWordSet("as", "from", "import")

var pythonOperatorWords = newWordSet("and", "in", "is", "not", "or")

var pythonConstants = newWordSet("True", "False", "None", "NotImplemented", "Ellipsis")

var pythonBuiltins = newWordSet(
	"abs", "all", "any", "bin", "bool", "bytes", "bytearray", "callable",
	"chr", "classmethod", "dict", "dir", "divmod", "enumerate", "filter",
	"float", "format", "frozenset", "getattr", "hasattr", "hash", "hex",
	"id", "input", "int", "isinstance", "issubclass", "iter", "len",
	"list", "map", "max", "min", "next", "object", "oct", "open", "ord",
	"pow", "print", "property", "range", "repr", "reversed", "round",
	"set", "setattr", "slice", "sorted", "staticmethod", "str", "sum",
	"super", "tuple", "type", "vars", "zip", "__import__",
)

var pythonExceptions = newWordSet(
	"ArithmeticError", "AssertionError", "AttributeError", "BaseException",
	"Exception", "FileNotFoundError", "ImportError", "IndexError",
	"KeyError", "KeyboardInterrupt", "LookupError", "MemoryError",
	"NameError", "NotImplementedError", "OSError", "OverflowError",
	"RecursionError", "RuntimeError", "StopIteration", "SyntaxError",
	"SystemError", "SystemExit", "TypeError", "UnicodeError",
	"ValueError", "ZeroDivisionError",
)

var pythonPseudo = newWordSet("self", "cls")

// Valid string prefixes, lowercased for lookup.
var pythonStringPrefixes = newWordSet(
	"r", "b", "f", "u", "rb", "br", "fr", "rf",
)

var pythonOperators3 = []string{"**=", "//=", ">>=", "<<="}

var pythonOperators2 = []string{
	"**", "//", ">>", "<<", "<=", ">=", "==", "!=", "->", ":=", "+=",
	"-=", "*=", "/=", "%=", "&=", "|=", "^=", "@=",
}

const pythonOperators1 = "+-*/%@&|^~<>="

var pythonNumbers = numberOpts{suffixes: "jJ", separator: '_'}

// Python lexes Python 3 source.
type Python struct {
	lexer.Info
}

// NewPython returns the Python lexer.
func NewPython() *Python {
	return &Python{Info: lexer.Info{
		LangName:  "python",
		LangAlias: []string{"py", "python3"},
		Globs:     []string{"*.py", "*.pyi"},
		Mimes:     []string{"text/x-python"},
	}}
}

// Tokenize lexes Python source code.
func (l *Python) Tokenize(src string) []token.Token {
	s := lexer.NewStream(src)
	for !s.EOF() {
		if scanWhitespace(s) {
			continue
		}
		c := s.Peek()
		switch {
		case c == '#':
			m := s.Mark()
			firstToken := len(s.Tokens()) == 0
			s.ScanLine()
			kind := token.CommentSingle
			if firstToken && strings.HasPrefix(s.Since(m), "#!") {
				kind = token.CommentHashbang
			}
			s.Emit(kind, m)
		case c == '"' || c == '\'':
			m := s.Mark()
			scanPythonString(s, c)
			s.Emit(pythonStringType(s.Since(m)), m)
		case c == '@' && lexer.IsIdentStart(s.PeekAt(1)):
			m := s.Mark()
			s.Advance(1)
			s.AcceptWhile(func(b byte) bool { return lexer.IsIdentCont(b) || b == '.' })
			s.Emit(token.NameDecorator, m)
		case scanCNumber(s, pythonNumbers):
		case lexer.IsIdentStart(c):
			word, m := scanIdent(s)
			if q := s.Peek(); (q == '"' || q == '\'') && pythonStringPrefixes[strings.ToLower(word)] {
				scanPythonString(s, q)
				s.Emit(pythonStringType(s.Since(m)), m)
				continue
			}
			s.Emit(classifyPythonWord(word), m)
		case scanOperator(s, pythonOperators3, pythonOperators2, pythonOperators1):
		case strings.IndexByte("()[]{};,.:", c) >= 0:
			s.EmitByte(token.Punctuation)
		default:
			s.EmitByte(token.Error)
		}
	}
	return s.Tokens()
}

// scanPythonString consumes a quoted literal at the cursor, handling
// triple quotes. quote is the quote byte at the cursor.
func scanPythonString(s *lexer.Stream, quote byte) {
	triple := strings.Repeat(string(quote), 3)
	if s.HasPrefix(triple) {
		s.Advance(3)
		s.ScanTripleString(quote)
		return
	}
	s.Advance(1)
	s.ScanString(quote, true, false)
}

// pythonStringType picks the token type from the raw literal text.
// Triple-quoted literals are treated as docstrings.
func pythonStringType(lit string) token.Type {
	body := strings.TrimLeft(lit, "rbfuRBFU")
	if strings.HasPrefix(body, `"""`) || strings.HasPrefix(body, "'''") {
		return token.StringDoc
	}
	return token.String
}

func classifyPythonWord(word string) token.Type {
	switch {
	case pythonKeywords[word]:
		return token.Keyword
	case pythonDeclarations[word]:
		return token.KeywordDeclaration
	case pythonNamespace[word]:
		return token.KeywordNamespace
	case pythonOperatorWords[word]:
		return token.OperatorWord
	case pythonConstants[word]:
		return token.KeywordConstant
	case pythonPseudo[word]:
		return token.NameBuiltinPseudo
	case pythonExceptions[word]:
		return token.NameException
	case pythonBuiltins[word]:
		return token.NameBuiltin
	}
	return token.Name
}

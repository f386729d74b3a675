package lexers

import (
	"strings"

	"rosettes/lexer"
	"rosettes/token"
)

var jsKeywords = newWordSet(
	"async", "await", "break", "case", "catch", "continue", "debugger",
	"default", "delete", "do", "else", "extends", "finally", "for", "if",
	"in", "instanceof", "new", "of", "return", "static", "super",
	"switch", "this", "throw", "try", "typeof", "void", "while", "with",
	"yield",
)

var jsDeclarations = newWordSet("class", "const", "function", "let", "var")

var jsNamespace = newWordSet("export", "from", "import")

var jsReserved = newWordSet(
	"enum", "implements", "interface", "package", "private", "protected",
	"public",
)

var jsConstants = newWordSet("true", "false", "null", "undefined", "NaN", "Infinity")

var jsBuiltins = newWordSet(
	"Array", "BigInt", "Boolean", "Date", "Error", "Function", "JSON",
	"Map", "Math", "Number", "Object", "Promise", "Proxy", "Reflect",
	"RegExp", "Set", "String", "Symbol", "WeakMap", "WeakSet", "console",
	"document", "window", "globalThis", "parseInt", "parseFloat",
	"isNaN", "isFinite", "encodeURI", "decodeURI", "encodeURIComponent",
	"decodeURIComponent", "setTimeout", "setInterval", "clearTimeout",
	"clearInterval", "fetch", "require", "module", "exports",
)

var jsOperators3 = []string{"===", "!==", ">>>", "**=", "&&=", "||=", "??="}

var jsOperators2 = []string{
	"==", "!=", "<=", ">=", "&&", "||", "??", "++", "--", "+=", "-=",
	"*=", "/=", "%=", "&=", "|=", "^=", "<<", ">>", "=>", "**", "?.",
}

const jsOperators1 = "+-*/%&|^~!<>=?"

var jsNumbers = numberOpts{suffixes: "n", separator: '_'}

// JavaScript lexes JavaScript/ECMAScript source, including template
// literals and BigInt suffixes.
type JavaScript struct {
	lexer.Info
}

// NewJavaScript returns the JavaScript lexer.
func NewJavaScript() *JavaScript {
	return &JavaScript{Info: lexer.Info{
		LangName:  "javascript",
		LangAlias: []string{"js", "ecmascript"},
		Globs:     []string{"*.js", "*.mjs", "*.cjs", "*.jsx"},
		Mimes:     []string{"text/javascript", "application/javascript"},
	}}
}

// Tokenize lexes JavaScript source code.
func (l *JavaScript) Tokenize(src string) []token.Token {
	s := lexer.NewStream(src)
	for !s.EOF() {
		if scanWhitespace(s) || scanCComment(s) {
			continue
		}
		c := s.Peek()
		switch {
		case c == '"' || c == '\'':
			m := s.Mark()
			s.Advance(1)
			s.ScanString(c, true, false)
			s.Emit(token.String, m)
		case c == '`':
			m := s.Mark()
			s.Advance(1)
			s.ScanString('`', true, true)
			s.Emit(token.StringBacktick, m)
		case scanCNumber(s, jsNumbers):
		case lexer.IsIdentStart(c) || c == '$':
			m := s.Mark()
			s.AcceptWhile(func(b byte) bool { return lexer.IsIdentCont(b) || b == '$' })
			s.Emit(classifyJSWord(s.Since(m)), m)
		case scanOperator(s, jsOperators3, jsOperators2, jsOperators1):
		case strings.IndexByte("()[]{};,.:", c) >= 0:
			s.EmitByte(token.Punctuation)
		default:
			s.EmitByte(token.Error)
		}
	}
	return s.Tokens()
}

func classifyJSWord(word string) token.Type {
	switch {
	case jsDeclarations[word]:
		return token.KeywordDeclaration
	case jsNamespace[word]:
		return token.KeywordNamespace
	case jsKeywords[word]:
		return token.Keyword
	case jsConstants[word]:
		return token.KeywordConstant
	case jsReserved[word]:
		return token.KeywordReserved
	case jsBuiltins[word]:
		return token.NameBuiltin
	}
	return token.Name
}

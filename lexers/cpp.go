package lexers

import (
	"strings"

	"rosettes/lexer"
	"rosettes/token"
)

var cppKeywords = newWordSet(
	"alignas", "alignof", "asm", "auto", "break", "case", "catch",
	"continue", "co_await", "co_return", "co_yield", "decltype",
	"default", "delete", "do", "dynamic_cast", "else", "for", "goto",
	"if", "new", "noexcept", "operator", "reinterpret_cast", "requires",
	"return", "sizeof", "static_assert", "static_cast", "switch", "this",
	"throw", "try", "typeid", "while", "const_cast",
)

var cppDeclarations = newWordSet(
	"class", "concept", "const", "consteval", "constexpr", "constinit",
	"enum", "explicit", "export", "extern", "final", "friend", "inline",
	"mutable", "namespace", "override", "private", "protected", "public",
	"register", "static", "struct", "template", "thread_local", "typedef",
	"typename", "union", "using", "virtual", "volatile",
)

var cppTypes = newWordSet(
	"bool", "char", "char8_t", "char16_t", "char32_t", "double", "float",
	"int", "long", "short", "signed", "unsigned", "void", "wchar_t",
	"int8_t", "int16_t", "int32_t", "int64_t",
	"uint8_t", "uint16_t", "uint32_t", "uint64_t",
	"intptr_t", "uintptr_t", "size_t", "ssize_t", "ptrdiff_t",
)

var cppConstants = newWordSet("NULL", "nullptr", "nullopt", "true", "false")

var cppBuiltins = newWordSet(
	"cout", "cerr", "cin", "endl", "string", "string_view", "vector",
	"array", "map", "unordered_map", "set", "unordered_set", "pair",
	"tuple", "optional", "variant", "unique_ptr", "shared_ptr",
	"weak_ptr", "move", "forward", "swap", "make_unique", "make_shared",
	"make_pair", "make_tuple", "begin", "end", "find", "ranges",
)

var cppOperatorWords = newWordSet(
	"and", "and_eq", "bitand", "bitor", "compl", "not", "not_eq", "or",
	"or_eq", "xor", "xor_eq",
)

// String literal prefixes that may precede '"', including raw forms.
var cppStringPrefixes = newWordSet("L", "u8", "u", "U", "R", "LR", "u8R", "uR", "UR")

var cppOperators3 = []string{"<<=", ">>=", "<=>", "->*"}

var cppOperators2 = []string{
	"::", "->", "++", "--", "<<", ">>", "<=", ">=", "==", "!=", "&&",
	"||", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", ".*",
}

var cppNumbers = numberOpts{suffixes: "uUlLfF", separator: '\''}

// Cpp lexes C++ source through C++20 syntax: raw strings, digit
// separators, the spaceship operator, coroutines keywords.
type Cpp struct {
	lexer.Info
}

// NewCpp returns the C++ lexer.
func NewCpp() *Cpp {
	return &Cpp{Info: lexer.Info{
		LangName:  "cpp",
		LangAlias: []string{"c++", "cxx"},
		Globs:     []string{"*.cpp", "*.cc", "*.cxx", "*.hpp", "*.hh", "*.hxx"},
		Mimes:     []string{"text/x-c++src", "text/x-c++hdr"},
	}}
}

// Tokenize lexes C++ source code.
func (l *Cpp) Tokenize(src string) []token.Token {
	s := lexer.NewStream(src)
	for !s.EOF() {
		if scanWhitespace(s) || scanCComment(s) {
			continue
		}
		c := s.Peek()
		switch {
		case c == '#':
			scanPreprocDirective(s)
		case c == '\'':
			m := s.Mark()
			s.Advance(1)
			s.ScanString('\'', true, false)
			s.Emit(token.StringChar, m)
		case c == '"':
			m := s.Mark()
			s.Advance(1)
			s.ScanString('"', true, false)
			s.Emit(token.String, m)
		case scanCNumber(s, cppNumbers):
		case lexer.IsIdentStart(c):
			word, m := scanIdent(s)
			if cppStringPrefixes[word] && s.Peek() == '"' {
				if strings.HasSuffix(word, "R") {
					scanCppRawString(s)
				} else {
					s.Advance(1)
					s.ScanString('"', true, false)
				}
				s.Emit(token.String, m)
				continue
			}
			s.Emit(classifyCppWord(word), m)
		case scanOperator(s, cppOperators3, cppOperators2, cOperators1):
		case strings.IndexByte("()[]{};,.:", c) >= 0:
			s.EmitByte(token.Punctuation)
		default:
			s.EmitByte(token.Error)
		}
	}
	return s.Tokens()
}

func classifyCppWord(word string) token.Type {
	switch {
	case cppKeywords[word]:
		return token.Keyword
	case cppDeclarations[word]:
		return token.KeywordDeclaration
	case cppTypes[word]:
		return token.KeywordType
	case cppConstants[word]:
		return token.KeywordConstant
	case cppOperatorWords[word]:
		return token.OperatorWord
	case word == "std":
		return token.NameNamespace
	case cppBuiltins[word]:
		return token.NameBuiltin
	}
	return token.Name
}

// scanCppRawString consumes R"delim( ... )delim" with the cursor on the
// opening quote. No escape processing happens inside a raw string.
func scanCppRawString(s *lexer.Stream) {
	s.Advance(1) // opening quote
	dm := s.Mark()
	for !s.EOF() {
		c := s.Peek()
		if c == '(' {
			break
		}
		// Raw string delimiters cannot contain these; bail out so a
		// malformed literal still terminates.
		if c == ')' || c == '\\' || c == '"' || lexer.IsSpace(c) {
			s.ScanString('"', false, true)
			return
		}
		s.Advance(1)
	}
	if s.EOF() {
		return
	}
	delim := s.Since(dm)
	s.Advance(1) // '('
	closer := ")" + delim + `"`
	s.ScanBlockComment(closer)
}

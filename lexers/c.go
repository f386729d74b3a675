package lexers

import (
	"strings"

	"rosettes/lexer"
	"rosettes/token"
)

var cKeywords = newWordSet(
	"auto", "break", "case", "continue", "default", "do", "else", "for",
	"goto", "if", "return", "sizeof", "switch", "while",
	"_Alignas", "_Alignof", "_Atomic", "_Generic", "_Noreturn",
	"_Static_assert", "_Thread_local",
)

var cDeclarations = newWordSet(
	"const", "enum", "extern", "inline", "register", "restrict", "static",
	"struct", "typedef", "union", "volatile",
)

var cTypes = newWordSet(
	"char", "double", "float", "int", "long", "short", "signed",
	"unsigned", "void", "_Bool", "_Complex", "bool",
	"int8_t", "int16_t", "int32_t", "int64_t",
	"uint8_t", "uint16_t", "uint32_t", "uint64_t",
	"intptr_t", "uintptr_t", "size_t", "ssize_t", "ptrdiff_t",
	"wchar_t", "FILE",
)

var cConstants = newWordSet("NULL", "true", "false")

var cBuiltins = newWordSet(
	"printf", "fprintf", "sprintf", "snprintf", "scanf", "fscanf",
	"sscanf", "puts", "putchar", "getchar", "fgets", "fopen", "fclose",
	"fread", "fwrite", "malloc", "calloc", "realloc", "free", "memcpy",
	"memmove", "memset", "memcmp", "strlen", "strcmp", "strncmp",
	"strcpy", "strncpy", "strcat", "strncat", "strchr", "strstr",
	"exit", "abort", "assert", "abs", "atoi", "atof",
)

var cOperators3 = []string{"<<=", ">>="}

var cOperators2 = []string{
	"->", "++", "--", "<<", ">>", "<=", ">=", "==", "!=", "&&", "||",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
}

const cOperators1 = "+-*/%&|^~!<>=?"

var cNumbers = numberOpts{suffixes: "uUlLfF"}

// C lexes C source, including preprocessor directives.
type C struct {
	lexer.Info
}

// NewC returns the C lexer.
func NewC() *C {
	return &C{Info: lexer.Info{
		LangName: "c",
		Globs:    []string{"*.c", "*.h"},
		Mimes:    []string{"text/x-chdr", "text/x-csrc"},
	}}
}

// Tokenize lexes C source code.
func (l *C) Tokenize(src string) []token.Token {
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
		case scanCNumber(s, cNumbers):
		case lexer.IsIdentStart(c):
			word, m := scanIdent(s)
			s.Emit(classifyCWord(word), m)
		case scanOperator(s, cOperators3, cOperators2, cOperators1):
		case strings.IndexByte("()[]{};,.:", c) >= 0:
			s.EmitByte(token.Punctuation)
		default:
			s.EmitByte(token.Error)
		}
	}
	return s.Tokens()
}

func classifyCWord(word string) token.Type {
	switch {
	case cKeywords[word]:
		return token.Keyword
	case cDeclarations[word]:
		return token.KeywordDeclaration
	case cTypes[word]:
		return token.KeywordType
	case cConstants[word]:
		return token.KeywordConstant
	case cBuiltins[word]:
		return token.NameBuiltin
	}
	return token.Name
}

// scanPreprocDirective emits "#" plus the directive word as a single
// CommentPreproc token, then the include path (if this is an include
// or import) as CommentPreprocFile. The rest of the directive line is
// left to lex normally, so macro bodies highlight like ordinary code.
func scanPreprocDirective(s *lexer.Stream) {
	m := s.Mark()
	s.Advance(1)
	for s.Peek() == ' ' || s.Peek() == '\t' {
		s.Advance(1)
	}
	s.AcceptWhile(lexer.IsLetter)
	directive := s.Since(m)
	s.Emit(token.CommentPreproc, m)

	name := strings.TrimLeft(directive, "# \t")
	if name != "include" && name != "import" && name != "include_next" {
		return
	}

	scanWhitespace(s)
	switch s.Peek() {
	case '<':
		pm := s.Mark()
		s.Advance(1)
		for !s.EOF() && s.Peek() != '>' && s.Peek() != '\n' {
			s.Advance(1)
		}
		s.AcceptByte('>')
		s.Emit(token.CommentPreprocFile, pm)
	case '"':
		pm := s.Mark()
		s.Advance(1)
		s.ScanString('"', false, false)
		s.Emit(token.CommentPreprocFile, pm)
	}
}

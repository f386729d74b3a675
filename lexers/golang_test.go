package lexers

import (
	"os"
	"path/filepath"
	"testing"

	"rosettes/token"
)

func TestGoBasicsFixture(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "basics.go"))
	if err != nil {
		t.Fatal(err)
	}
	tokens := NewGo().Tokenize(string(data))
	checkStream(t, string(data), tokens)

	wantType(t, tokens, "package", token.KeywordNamespace)
	wantType(t, tokens, "import", token.KeywordNamespace)
	wantType(t, tokens, "func", token.KeywordDeclaration)
}

func TestGoClassification(t *testing.T) {
	src := "var total int = 1_000\nch := make(chan string)\nch <- `raw\nstring`\nr := 'x'\nz := 3i\n"
	tokens := NewGo().Tokenize(src)
	checkStream(t, src, tokens)

	wantType(t, tokens, "var", token.KeywordDeclaration)
	wantType(t, tokens, "int", token.KeywordType)
	wantType(t, tokens, "1_000", token.NumberInteger)
	wantType(t, tokens, ":=", token.Operator)
	wantType(t, tokens, "make", token.NameBuiltin)
	wantType(t, tokens, "chan", token.KeywordDeclaration)
	wantType(t, tokens, "<-", token.Operator)
	wantType(t, tokens, "`raw\nstring`", token.StringBacktick)
	wantType(t, tokens, "'x'", token.StringChar)
	wantType(t, tokens, "3i", token.NumberInteger)
}

func TestGoOperatorsAndVariadic(t *testing.T) {
	src := "func f(args ...int) { x &^= 1; _ = x &^ 2 }\n"
	tokens := NewGo().Tokenize(src)
	checkStream(t, src, tokens)

	wantType(t, tokens, "...", token.Punctuation)
	wantType(t, tokens, "&^=", token.Operator)
	wantType(t, tokens, "&^", token.Operator)
}

func TestGoConstants(t *testing.T) {
	src := "const (\n\ta = iota\n\tb\n)\nvar ok = true\nvar p *int = nil\n"
	tokens := NewGo().Tokenize(src)
	checkStream(t, src, tokens)

	wantType(t, tokens, "iota", token.KeywordConstant)
	wantType(t, tokens, "true", token.KeywordConstant)
	wantType(t, tokens, "nil", token.KeywordConstant)
}

package lexers

import (
	"os"
	"path/filepath"
	"testing"

	"rosettes/token"
)

func TestRustCommentsFixture(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "comments.rs"))
	if err != nil {
		t.Fatal(err)
	}
	tokens := NewRust().Tokenize(string(data))
	checkStream(t, string(data), tokens)

	wantType(t, tokens, "// Single line comment", token.CommentSingle)
	wantType(t, tokens, "/// Documentation comment for function", token.StringDoc)
	wantType(t, tokens, "//! Module-level documentation", token.StringDoc)
	wantType(t, tokens, "fn", token.KeywordDeclaration)
	wantType(t, tokens, "i32", token.KeywordType)
	wantType(t, tokens, "42", token.NumberInteger)
}

func TestRustLifetimesFixture(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "lifetimes.rs"))
	if err != nil {
		t.Fatal(err)
	}
	tokens := NewRust().Tokenize(string(data))
	checkStream(t, string(data), tokens)

	wantType(t, tokens, "'a", token.StringSymbol)
	wantType(t, tokens, "'static", token.StringSymbol)
	wantType(t, tokens, "struct", token.KeywordDeclaration)
	wantType(t, tokens, "impl", token.KeywordDeclaration)
	wantType(t, tokens, "self", token.NameBuiltinPseudo)
	wantType(t, tokens, "static", token.KeywordDeclaration)
}

func TestRustCharVersusLifetime(t *testing.T) {
	src := "let c = 'x'; let esc = '\\n'; fn f<'a>(s: &'a str) {}\n"
	tokens := NewRust().Tokenize(src)
	checkStream(t, src, tokens)

	wantType(t, tokens, "'x'", token.StringChar)
	wantType(t, tokens, `'\n'`, token.StringChar)
	wantType(t, tokens, "'a", token.StringSymbol)
}

func TestRustMacrosAndAttributes(t *testing.T) {
	src := "#[derive(Debug, Clone)]\nstruct P;\n\nfn main() {\n    println!(\"hi\");\n    vec![1, 2];\n}\n"
	tokens := NewRust().Tokenize(src)
	checkStream(t, src, tokens)

	wantType(t, tokens, "#[derive(Debug, Clone)]", token.CommentPreproc)
	wantType(t, tokens, "println!", token.NameFunctionMagic)
	wantType(t, tokens, "vec!", token.NameFunctionMagic)
}

func TestRustClassification(t *testing.T) {
	src := "let mut total: u64 = 0;\nmatch opt { Some(v) => v, None => 0 };\nlet s = String::from(\"x\");\n"
	tokens := NewRust().Tokenize(src)
	checkStream(t, src, tokens)

	wantType(t, tokens, "let", token.KeywordDeclaration)
	wantType(t, tokens, "mut", token.Keyword)
	wantType(t, tokens, "u64", token.KeywordType)
	wantType(t, tokens, "match", token.Keyword)
	wantType(t, tokens, "Some", token.KeywordConstant)
	wantType(t, tokens, "None", token.KeywordConstant)
	wantType(t, tokens, "=>", token.Operator)
	wantType(t, tokens, "::", token.Operator)
	wantType(t, tokens, "String", token.KeywordType)
}

func TestRustNestedBlockComment(t *testing.T) {
	src := "/* outer /* inner */ still comment */ fn f() {}\n"
	tokens := NewRust().Tokenize(src)
	checkStream(t, src, tokens)

	wantType(t, tokens, "/* outer /* inner */ still comment */", token.CommentMultiline)
}

func TestRustRawString(t *testing.T) {
	src := "let re = r#\"no \\escape \"quoted\"\"#;\n"
	tokens := NewRust().Tokenize(src)
	checkStream(t, src, tokens)

	wantType(t, tokens, `r#"no \escape "quoted""#`, token.String)
}

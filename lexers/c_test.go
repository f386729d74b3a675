package lexers

import (
	"os"
	"path/filepath"
	"testing"

	"rosettes/token"
)

func TestCPreprocessorFixture(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "preprocessor.c"))
	if err != nil {
		t.Fatal(err)
	}
	tokens := NewC().Tokenize(string(data))
	checkStream(t, string(data), tokens)

	wantType(t, tokens, "#ifndef", token.CommentPreproc)
	wantType(t, tokens, "#define", token.CommentPreproc)
	wantType(t, tokens, "#pragma", token.CommentPreproc)
	wantType(t, tokens, "#endif", token.CommentPreproc)
	wantType(t, tokens, "HEADER_H", token.Name)
	wantType(t, tokens, "printf", token.NameBuiltin)
}

func TestCInclude(t *testing.T) {
	tokens := NewC().Tokenize("#include <stdio.h>\n#include \"local.h\"\n")
	checkStream(t, "#include <stdio.h>\n#include \"local.h\"\n", tokens)

	wantType(t, tokens, "<stdio.h>", token.CommentPreprocFile)
	wantType(t, tokens, `"local.h"`, token.CommentPreprocFile)
}

func TestCClassification(t *testing.T) {
	src := "static const size_t n = 42UL;\nfloat f = 1.5f;\nchar c = 'a';\nvoid *p = NULL;\n"
	tokens := NewC().Tokenize(src)
	checkStream(t, src, tokens)

	wantType(t, tokens, "static", token.KeywordDeclaration)
	wantType(t, tokens, "const", token.KeywordDeclaration)
	wantType(t, tokens, "size_t", token.KeywordType)
	wantType(t, tokens, "42UL", token.NumberInteger)
	wantType(t, tokens, "1.5f", token.NumberFloat)
	wantType(t, tokens, "'a'", token.StringChar)
	wantType(t, tokens, "NULL", token.KeywordConstant)
	wantType(t, tokens, "*", token.Operator)
}

func TestCCommentForms(t *testing.T) {
	src := "// line\nint x; /* block\nspans lines */\n"
	tokens := NewC().Tokenize(src)
	checkStream(t, src, tokens)

	wantType(t, tokens, "// line", token.CommentSingle)
	wantType(t, tokens, "/* block\nspans lines */", token.CommentMultiline)
}

func TestCHexAndFloat(t *testing.T) {
	src := "0xFF 0x1p0 1e10 1.5e-3 1. .5\n"
	tokens := NewC().Tokenize(src)
	checkStream(t, src, tokens)

	wantType(t, tokens, "0xFF", token.NumberHex)
	wantType(t, tokens, "1e10", token.NumberFloat)
	wantType(t, tokens, "1.5e-3", token.NumberFloat)
	wantType(t, tokens, "1.", token.NumberFloat)
	wantType(t, tokens, ".5", token.NumberFloat)
}

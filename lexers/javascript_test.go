package lexers

import (
	"testing"

	"rosettes/token"
)

func TestJavaScriptClassification(t *testing.T) {
	src := "import { fetch } from 'node-fetch';\n" +
		"const $el = document.querySelector('#app');\n" +
		"let n = undefined ?? NaN;\n" +
		"export class Widget {}\n"
	tokens := NewJavaScript().Tokenize(src)
	checkStream(t, src, tokens)

	wantType(t, tokens, "import", token.KeywordNamespace)
	wantType(t, tokens, "from", token.KeywordNamespace)
	wantType(t, tokens, "export", token.KeywordNamespace)
	wantType(t, tokens, "const", token.KeywordDeclaration)
	wantType(t, tokens, "let", token.KeywordDeclaration)
	wantType(t, tokens, "class", token.KeywordDeclaration)
	wantType(t, tokens, "$el", token.Name)
	wantType(t, tokens, "document", token.NameBuiltin)
	wantType(t, tokens, "undefined", token.KeywordConstant)
	wantType(t, tokens, "NaN", token.KeywordConstant)
	wantType(t, tokens, "??", token.Operator)
}

func TestJavaScriptTemplateLiteral(t *testing.T) {
	src := "const msg = `hello ${name},\nbye`;\n"
	tokens := NewJavaScript().Tokenize(src)
	checkStream(t, src, tokens)

	wantType(t, tokens, "`hello ${name},\nbye`", token.StringBacktick)
}

func TestJavaScriptOperators(t *testing.T) {
	src := "a === b; a !== b; x >>> 2; y ?. z; p ??= q; f **= 2;\n"
	tokens := NewJavaScript().Tokenize(src)
	checkStream(t, src, tokens)

	for _, op := range []string{"===", "!==", ">>>", "?.", "??=", "**="} {
		wantType(t, tokens, op, token.Operator)
	}
}

func TestJavaScriptNumbers(t *testing.T) {
	src := "const big = 9007199254740993n;\nconst sep = 1_000_000;\nconst hex = 0xFF;\nconst f = 1.5e-3;\n"
	tokens := NewJavaScript().Tokenize(src)
	checkStream(t, src, tokens)

	wantType(t, tokens, "9007199254740993n", token.NumberInteger)
	wantType(t, tokens, "1_000_000", token.NumberInteger)
	wantType(t, tokens, "0xFF", token.NumberHex)
	wantType(t, tokens, "1.5e-3", token.NumberFloat)
}

func TestJavaScriptComments(t *testing.T) {
	src := "// line\n/* block\nspanning */ let x;\n"
	tokens := NewJavaScript().Tokenize(src)
	checkStream(t, src, tokens)

	wantType(t, tokens, "// line", token.CommentSingle)
	wantType(t, tokens, "/* block\nspanning */", token.CommentMultiline)
}

package formatter

import (
	"strings"
	"testing"

	"rosettes/token"
)

func tokenize3() []token.Token {
	return []token.Token{
		{Type: token.KeywordDeclaration, Value: "func", Line: 1, Column: 1},
		{Type: token.Whitespace, Value: " ", Line: 1, Column: 5},
		{Type: token.NameFunction, Value: "main", Line: 1, Column: 6},
	}
}

func TestHTMLSemanticClasses(t *testing.T) {
	var b strings.Builder
	cfg := NewConfig()
	cfg.DataLanguage = "go"
	if err := NewHTML().Format(&b, tokenize3(), cfg); err != nil {
		t.Fatal(err)
	}
	out := b.String()

	for _, want := range []string{
		`<div class="rosettes" data-language="go"><pre><code>`,
		`<span class="syntax-declaration">func</span>`,
		`<span class="syntax-function">main</span>`,
		"</code></pre></div>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q in %q", want, out)
		}
	}
	if strings.Contains(out, `<span class="syntax-text"> </span>`) {
		t.Error("whitespace should not be wrapped in a span")
	}
}

func TestHTMLPygmentsClasses(t *testing.T) {
	var b strings.Builder
	if err := NewHTMLPygments().Format(&b, tokenize3(), NewConfig()); err != nil {
		t.Fatal(err)
	}
	out := b.String()

	if !strings.Contains(out, `<div class="highlight">`) {
		t.Errorf("pygments container missing in %q", out)
	}
	if !strings.Contains(out, `<span class="kd">func</span>`) {
		t.Errorf("short class missing in %q", out)
	}
}

func TestHTMLEscapesValues(t *testing.T) {
	tokens := []token.Token{
		{Type: token.String, Value: `"<b>&'"`, Line: 1, Column: 1},
	}
	var b strings.Builder
	cfg := NewConfig()
	cfg.WrapCode = false
	if err := NewHTML().Format(&b, tokens, cfg); err != nil {
		t.Fatal(err)
	}
	want := `<span class="syntax-string">&quot;&lt;b&gt;&amp;&#x27;&quot;</span>`
	if b.String() != want {
		t.Fatalf("got %q, want %q", b.String(), want)
	}
}

func TestHTMLClassPrefix(t *testing.T) {
	var b strings.Builder
	cfg := NewConfig()
	cfg.WrapCode = false
	cfg.ClassPrefix = "rs-"
	if err := NewHTMLPygments().Format(&b, tokenize3(), cfg); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), `<span class="rs-kd">func</span>`) {
		t.Errorf("prefix not applied: %q", b.String())
	}
}

func TestHTMLHlLines(t *testing.T) {
	tokens := []token.Token{
		{Type: token.Name, Value: "one", Line: 1, Column: 1},
		{Type: token.Whitespace, Value: "\n", Line: 1, Column: 4},
		{Type: token.Name, Value: "two", Line: 2, Column: 1},
		{Type: token.Whitespace, Value: "\n", Line: 2, Column: 4},
		{Type: token.Name, Value: "three", Line: 3, Column: 1},
	}
	var b strings.Builder
	cfg := NewConfig()
	cfg.WrapCode = false
	cfg.HlLines = map[int]bool{2: true}
	if err := NewHTML().Format(&b, tokens, cfg); err != nil {
		t.Fatal(err)
	}
	out := b.String()

	if !strings.Contains(out, `<span class="hll"><span class="syntax-variable">two</span></span>`) {
		t.Errorf("highlight span missing: %q", out)
	}
	if strings.Count(out, `class="hll"`) != 1 {
		t.Errorf("hll applied to wrong lines: %q", out)
	}
	if textContent(out) != "one\ntwo\nthree" {
		t.Errorf("text content changed: %q", textContent(out))
	}
}

func TestHTMLLineNumbers(t *testing.T) {
	var lines []token.Token
	for i := 0; i < 12; i++ {
		lines = append(lines,
			token.Token{Type: token.Name, Value: "x", Line: i + 1, Column: 1},
			token.Token{Type: token.Whitespace, Value: "\n", Line: i + 1, Column: 2},
		)
	}
	var b strings.Builder
	cfg := NewConfig()
	cfg.WrapCode = false
	cfg.ShowLinenos = true
	if err := NewHTML().Format(&b, lines, cfg); err != nil {
		t.Fatal(err)
	}
	out := b.String()

	if !strings.Contains(out, `<span class="lineno"> 1</span> `) {
		t.Errorf("padded first line number missing: %q", out)
	}
	if !strings.Contains(out, `<span class="lineno">12</span> `) {
		t.Errorf("last line number missing: %q", out)
	}
}

func TestHTMLBlankHighlightedLine(t *testing.T) {
	tokens := []token.Token{
		{Type: token.Name, Value: "a", Line: 1, Column: 1},
		{Type: token.Whitespace, Value: "\n\n", Line: 1, Column: 2},
		{Type: token.Name, Value: "b", Line: 3, Column: 1},
	}
	var b strings.Builder
	cfg := NewConfig()
	cfg.WrapCode = false
	cfg.HlLines = map[int]bool{2: true}
	if err := NewHTML().Format(&b, tokens, cfg); err != nil {
		t.Fatal(err)
	}
	if strings.Count(b.String(), `class="hll"`) != 1 {
		t.Errorf("blank line highlight: %q", b.String())
	}
}

// textContent strips tags and unescapes the entities the formatter
// emits, recovering the text a browser would render.
func textContent(html string) string {
	var b strings.Builder
	inTag := false
	for i := 0; i < len(html); i++ {
		switch {
		case html[i] == '<':
			inTag = true
		case html[i] == '>':
			inTag = false
		case !inTag:
			b.WriteByte(html[i])
		}
	}
	r := strings.NewReplacer("&quot;", `"`, "&#x27;", "'", "&lt;", "<", "&gt;", ">", "&amp;", "&")
	return r.Replace(b.String())
}

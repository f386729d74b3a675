package formatter

import (
	"errors"
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"rosettes/themes"
	"rosettes/token"
)

func TestTerminalAsciiProfilePassesThrough(t *testing.T) {
	f := Terminal{Profile: termenv.Ascii}
	var b strings.Builder
	if err := f.Format(&b, tokenize3(), NewConfig()); err != nil {
		t.Fatal(err)
	}
	if b.String() != "func main" {
		t.Fatalf("got %q, want plain text", b.String())
	}
}

func TestTerminalColorsNonTextTokens(t *testing.T) {
	f := Terminal{Profile: termenv.ANSI}
	var b strings.Builder
	if err := f.Format(&b, tokenize3(), NewConfig()); err != nil {
		t.Fatal(err)
	}
	out := b.String()

	if !strings.Contains(out, termenv.CSI) {
		t.Fatalf("no escape sequences in %q", out)
	}
	if !strings.Contains(out, termenv.CSI+termenv.ResetSeq+"m") {
		t.Errorf("missing reset sequence in %q", out)
	}
	if stripANSI(out) != "func main" {
		t.Errorf("text content = %q, want %q", stripANSI(out), "func main")
	}
}

func TestTerminalThemeBold(t *testing.T) {
	f := Terminal{Profile: termenv.TrueColor, Theme: themes.BengalTiger}
	tokens := []token.Token{{Type: token.Keyword, Value: "if", Line: 1, Column: 1}}
	var b strings.Builder
	if err := f.Format(&b, tokens, NewConfig()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), termenv.CSI+termenv.BoldSeq+";") {
		t.Errorf("bold control flow missing in %q", b.String())
	}
}

func TestTerminalThemeWithoutBold(t *testing.T) {
	f := Terminal{Profile: termenv.TrueColor, Theme: themes.GitHubDark}
	tokens := []token.Token{{Type: token.Keyword, Value: "if", Line: 1, Column: 1}}
	var b strings.Builder
	if err := f.Format(&b, tokens, NewConfig()); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(b.String(), termenv.BoldSeq+";") {
		t.Errorf("unexpected bold in %q", b.String())
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func TestNullFormatterIsIdentity(t *testing.T) {
	var b strings.Builder
	if err := (Null{}).Format(&b, tokenize3(), NewConfig()); err != nil {
		t.Fatal(err)
	}
	if b.String() != "func main" {
		t.Fatalf("got %q", b.String())
	}
}

func TestRegistry(t *testing.T) {
	for _, name := range []string{"html", "html-pygments", "terminal", "null"} {
		f, err := Get(name)
		if err != nil {
			t.Fatalf("Get(%q): %v", name, err)
		}
		if f.Name() != name {
			t.Errorf("Get(%q).Name() = %q", name, f.Name())
		}
	}

	if _, err := Get("HTML"); err != nil {
		t.Errorf("lookup should be case insensitive: %v", err)
	}

	_, err := Get("pdf")
	if !errors.Is(err, ErrUnknownFormatter) {
		t.Fatalf("err = %v, want ErrUnknownFormatter", err)
	}
}

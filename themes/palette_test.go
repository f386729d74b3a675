package themes

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWithDefaultsFallbackChain(t *testing.T) {
	p := Palette{
		Name:       "minimal",
		Background: "#000000",
		Text:       "#eeeeee",
		Number:     "#ffcc66",
		Muted:      "#777777",
	}
	filled := p.WithDefaults()

	cases := []struct {
		field string
		got   string
		want  string
	}{
		{"boolean falls back to number", filled.Boolean, "#ffcc66"},
		{"comment falls back to muted", filled.Comment, "#777777"},
		{"docstring falls back through comment to muted", filled.Docstring, "#777777"},
		{"punctuation falls back to muted", filled.Punctuation, "#777777"},
		{"string falls back to text", filled.String, "#eeeeee"},
		{"background highlight falls back to background", filled.BackgroundHighlight, "#000000"},
		{"error has a fixed default", filled.Error, "#ff0000"},
		{"warning has a fixed default", filled.Warning, "#ffcc00"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s: got %q, want %q", c.field, c.got, c.want)
		}
	}
}

func TestWithDefaultsKeepsExplicitColors(t *testing.T) {
	p := Monokai
	if diff := cmp.Diff(p.WithDefaults().WithDefaults(), p.WithDefaults()); diff != "" {
		t.Errorf("WithDefaults not idempotent (-twice +once):\n%s", diff)
	}
	if p.WithDefaults().String != p.String {
		t.Errorf("explicit string color overwritten: %q", p.WithDefaults().String)
	}
}

func TestBuiltinPalettesValidate(t *testing.T) {
	for _, name := range List() {
		theme, err := Get(name)
		if err != nil {
			t.Fatalf("Get(%q): %v", name, err)
		}
		type validator interface{ Validate() error }
		if v, ok := theme.(validator); ok {
			if err := v.Validate(); err != nil {
				t.Errorf("%s: %v", name, err)
			}
		}
	}
}

func TestColorCoversEveryRole(t *testing.T) {
	filled := Base(Dracula).WithDefaults()
	for _, r := range Roles() {
		if filled.Color(r) == "" {
			t.Errorf("role %s has no color after defaults", r)
		}
	}
}

func TestCSSVars(t *testing.T) {
	vars := BengalTiger.CSSVars(2)
	for _, want := range []string{
		"  --syntax-bg: ",
		"  --syntax-text: ",
		"  --syntax-function: ",
		"  --syntax-comment: ",
	} {
		if !strings.Contains(vars, want) {
			t.Errorf("CSSVars missing %q", want)
		}
	}
	if n := strings.Count(vars, "--syntax-text:"); n != 1 {
		t.Errorf("--syntax-text declared %d times, want 1", n)
	}
	if strings.HasSuffix(vars, "\n") {
		t.Error("CSSVars should not end with a newline")
	}
}

func TestBaseSelectsDarkHalf(t *testing.T) {
	got := Base(GitHub)
	if got.Name != GitHubDark.Name {
		t.Fatalf("Base(adaptive) = %q, want %q", got.Name, GitHubDark.Name)
	}
	if diff := cmp.Diff(Base(Monokai), Monokai); diff != "" {
		t.Errorf("Base(palette) should be identity:\n%s", diff)
	}
}

package themes

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetUnknownTheme(t *testing.T) {
	_, err := Get("no-such-theme")
	if !errors.Is(err, ErrUnknownTheme) {
		t.Fatalf("err = %v, want ErrUnknownTheme", err)
	}
	if !strings.Contains(err.Error(), "available:") {
		t.Errorf("error should list available themes: %v", err)
	}
}

func TestListContainsBuiltins(t *testing.T) {
	names := List()
	for _, want := range []string{"bengal-tiger", "monokai", "dracula", "github"} {
		found := false
		for _, n := range names {
			if n == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("List() missing %q: %v", want, names)
		}
	}
	if !sortedStrings(names) {
		t.Errorf("List() not sorted: %v", names)
	}
}

func sortedStrings(ss []string) bool {
	for i := 1; i < len(ss); i++ {
		if ss[i-1] > ss[i] {
			return false
		}
	}
	return true
}

func TestRegisterRejectsInvalid(t *testing.T) {
	if err := Register(Palette{Name: "broken"}); err == nil {
		t.Fatal("Register accepted a palette with no colors")
	}
}

func TestParseSinglePalette(t *testing.T) {
	data := []byte(`
name: custom
background: "#101010"
text: "#f0f0f0"
string: "#a3be8c"
italic_comment: false
`)
	theme, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	p, ok := theme.(Palette)
	if !ok {
		t.Fatalf("Parse returned %T, want Palette", theme)
	}
	if p.Name != "custom" || p.String != "#a3be8c" {
		t.Errorf("unexpected palette: %+v", p)
	}
	if p.ItalicComment {
		t.Error("italic_comment: false was ignored")
	}
	if !p.BoldControl {
		t.Error("unset style flags should default on")
	}
}

func TestParseAdaptivePalette(t *testing.T) {
	data := []byte(`
name: paper
light:
  background: "#ffffff"
  text: "#111111"
dark:
  background: "#111111"
  text: "#eeeeee"
`)
	theme, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	a, ok := theme.(Adaptive)
	if !ok {
		t.Fatalf("Parse returned %T, want Adaptive", theme)
	}
	if a.Light.Name != "paper-light" || a.Dark.Name != "paper-dark" {
		t.Errorf("half names not defaulted: %q / %q", a.Light.Name, a.Dark.Name)
	}
}

func TestParseMissingRequiredField(t *testing.T) {
	if _, err := Parse([]byte("name: nope\ntext: \"#fff\"\n")); err == nil {
		t.Fatal("Parse accepted a palette with no background")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ocean.yaml")
	content := "name: ocean\nbackground: \"#002b36\"\ntext: \"#839496\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	theme, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if theme.ThemeName() != "ocean" {
		t.Fatalf("theme name = %q", theme.ThemeName())
	}
	if _, err := Get("ocean"); err != nil {
		t.Fatalf("loaded theme not registered: %v", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("LoadFile on a missing path should fail")
	}
}

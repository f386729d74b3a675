package token

import "testing"

func TestShortClass(t *testing.T) {
	cases := []struct {
		typ  Type
		want string
	}{
		{Text, ""},
		{Keyword, "k"},
		{KeywordDeclaration, "kd"},
		{NameFunction, "nf"},
		{StringDouble, "s2"},
		{NumberHex, "mh"},
		{CommentSingle, "c1"},
		{GenericHeading, "gh"},
		{PunctuationMarker, "pm"},
	}
	for _, c := range cases {
		if got := c.typ.ShortClass(); got != c.want {
			t.Errorf("%s.ShortClass() = %q, want %q", c.typ, got, c.want)
		}
	}
}

func TestEveryTypeNamed(t *testing.T) {
	for _, typ := range All() {
		if typ.String() == "" {
			t.Errorf("type %d has no name", typ)
		}
		if typ != Text && typ.ShortClass() == "" {
			t.Errorf("%s has no short class", typ)
		}
	}
}

func TestShortClassesUnique(t *testing.T) {
	seen := make(map[string]Type)
	for _, typ := range All() {
		class := typ.ShortClass()
		if class == "" {
			continue
		}
		if prev, dup := seen[class]; dup {
			t.Errorf("class %q used by both %s and %s", class, prev, typ)
		}
		seen[class] = typ
	}
}

func TestOutOfRangeType(t *testing.T) {
	bad := Type(250)
	if bad.String() != "Invalid" {
		t.Errorf("String() = %q", bad.String())
	}
	if bad.ShortClass() != "err" {
		t.Errorf("ShortClass() = %q", bad.ShortClass())
	}
}

func TestAllCoversCount(t *testing.T) {
	if len(All()) != Count() {
		t.Fatalf("All() has %d entries, Count() = %d", len(All()), Count())
	}
}

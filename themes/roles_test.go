package themes

import (
	"testing"

	"rosettes/token"
)

func TestRoleOf(t *testing.T) {
	cases := []struct {
		typ  token.Type
		want Role
	}{
		{token.Keyword, RoleControlFlow},
		{token.KeywordConstant, RoleBoolean},
		{token.KeywordDeclaration, RoleDeclaration},
		{token.KeywordNamespace, RoleImport},
		{token.KeywordType, RoleType},
		{token.NameFunction, RoleFunction},
		{token.NameBuiltin, RoleFunction},
		{token.NameDecorator, RoleAttribute},
		{token.StringDoc, RoleDocstring},
		{token.StringEscape, RoleEscape},
		{token.NumberHex, RoleNumber},
		{token.CommentPreproc, RoleImport},
		{token.GenericHeading, RoleDeclaration},
		{token.NameTag, RoleTag},
		{token.Text, RoleText},
		{token.Whitespace, RoleText},
	}
	for _, c := range cases {
		if got := RoleOf(c.typ); got != c.want {
			t.Errorf("RoleOf(%s) = %s, want %s", c.typ, got, c.want)
		}
	}
}

func TestEveryTokenTypeHasRole(t *testing.T) {
	valid := make(map[Role]bool, len(Roles()))
	for _, r := range Roles() {
		valid[r] = true
	}
	for _, typ := range token.All() {
		if !valid[RoleOf(typ)] {
			t.Errorf("RoleOf(%s) = %d, not a defined role", typ, RoleOf(typ))
		}
	}
}

func TestRoleNames(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range Roles() {
		name := r.String()
		if name == "" {
			t.Errorf("role %d has no name", r)
		}
		if seen[name] {
			t.Errorf("duplicate role name %q", name)
		}
		seen[name] = true
	}
}

package themes

import (
	"fmt"
	"sort"
	"strings"

	"rosettes/token"
)

// ClassStyle selects which CSS class vocabulary a stylesheet targets.
type ClassStyle string

const (
	// Semantic targets role classes like .syntax-function on a
	// .rosettes container, driven by CSS custom properties.
	Semantic ClassStyle = "semantic"
	// Pygments targets the short classes like .nf on a .highlight
	// container, compatible with existing Pygments stylesheets.
	Pygments ClassStyle = "pygments"
)

// ContainerClass returns the default container class for a style.
func (s ClassStyle) ContainerClass() string {
	if s == Pygments {
		return "highlight"
	}
	return "rosettes"
}

// Valid reports whether s is a known class style.
func (s ClassStyle) Valid() bool { return s == Semantic || s == Pygments }

// Stylesheet renders a complete stylesheet for a theme. Adaptive
// themes produce prefers-color-scheme media queries; plain palettes
// produce a single rule set.
func Stylesheet(t Theme, style ClassStyle) string {
	container := "." + style.ContainerClass()

	switch v := t.(type) {
	case Adaptive:
		var b strings.Builder
		if style == Semantic {
			// Shared structure once; only the variables adapt.
			writeSemanticRules(&b, container, v.Dark.WithDefaults())
			fmt.Fprintf(&b, "@media (prefers-color-scheme: light) {\n%s {\n%s\n}\n}\n",
				container, v.Light.CSSVars(2))
			fmt.Fprintf(&b, "@media (prefers-color-scheme: dark) {\n%s {\n%s\n}\n}\n",
				container, v.Dark.CSSVars(2))
			return b.String()
		}
		b.WriteString("@media (prefers-color-scheme: light) {\n")
		writePygmentsRules(&b, container, v.Light.WithDefaults())
		b.WriteString("}\n@media (prefers-color-scheme: dark) {\n")
		writePygmentsRules(&b, container, v.Dark.WithDefaults())
		b.WriteString("}\n")
		return b.String()
	case Palette:
		var b strings.Builder
		if style == Semantic {
			fmt.Fprintf(&b, "%s {\n%s\n}\n", container, v.CSSVars(2))
			writeSemanticRules(&b, container, v.WithDefaults())
		} else {
			writePygmentsRules(&b, container, v.WithDefaults())
		}
		return b.String()
	default:
		return ""
	}
}

// writeSemanticRules writes the role class rules, all indirected
// through custom properties so adaptive themes can swap colors with a
// media query alone. The palette supplies only the style flags.
func writeSemanticRules(b *strings.Builder, container string, p Palette) {
	fmt.Fprintf(b, "%s { background-color: var(--syntax-bg); color: var(--syntax-text); }\n", container)
	fmt.Fprintf(b, "%s .hll { background-color: var(--syntax-bg-highlight); }\n", container)

	for _, r := range Roles() {
		if r == RoleText {
			continue
		}
		extra := ""
		switch {
		case r == RoleControlFlow && p.BoldControl:
			extra = " font-weight: bold;"
		case r == RoleDeclaration && p.BoldDeclaration:
			extra = " font-weight: bold;"
		case r == RoleComment && p.ItalicComment:
			extra = " font-style: italic;"
		case r == RoleDocstring && p.ItalicDocstring:
			extra = " font-style: italic;"
		}
		fmt.Fprintf(b, "%s .syntax-%s { color: var(--syntax-%s);%s }\n",
			container, r, r, extra)
	}
}

// writePygmentsRules writes one rule per Pygments short class with the
// role color inlined.
func writePygmentsRules(b *strings.Builder, container string, p Palette) {
	fmt.Fprintf(b, "%s { background-color: %s; color: %s; }\n", container, p.Background, p.Text)
	fmt.Fprintf(b, "%s .hll { background-color: %s; }\n", container, p.BackgroundHighlight)

	seen := map[string]bool{}
	var classes []string
	colors := map[string]string{}
	extras := map[string]string{}
	for _, tt := range token.All() {
		class := tt.ShortClass()
		if class == "" || seen[class] {
			continue
		}
		seen[class] = true
		role := RoleOf(tt)
		if role == RoleText {
			continue
		}
		classes = append(classes, class)
		colors[class] = p.Color(role)
		switch {
		case role == RoleControlFlow && p.BoldControl:
			extras[class] = " font-weight: bold;"
		case role == RoleDeclaration && p.BoldDeclaration:
			extras[class] = " font-weight: bold;"
		case role == RoleComment && p.ItalicComment:
			extras[class] = " font-style: italic;"
		case role == RoleDocstring && p.ItalicDocstring:
			extras[class] = " font-style: italic;"
		}
	}
	sort.Strings(classes)
	for _, class := range classes {
		fmt.Fprintf(b, "%s .%s { color: %s;%s }\n", container, class, colors[class], extras[class])
	}
}

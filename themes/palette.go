package themes

import (
	"fmt"
	"strings"
)

// Palette is a single theme: one color per semantic role. Zero-value
// color fields are filled by WithDefaults, so a palette only needs to
// set name, background, text, and whatever roles it cares about.
//
// Palettes are value types. Copy them freely; never mutate a shared
// one after registration.
type Palette struct {
	Name       string `yaml:"name"`
	Background string `yaml:"background"`
	Text       string `yaml:"text"`

	BackgroundHighlight string `yaml:"background_highlight"`

	ControlFlow string `yaml:"control_flow"`
	Declaration string `yaml:"declaration"`
	Import      string `yaml:"import"`

	String  string `yaml:"string"`
	Number  string `yaml:"number"`
	Boolean string `yaml:"boolean"`

	Type     string `yaml:"type"`
	Function string `yaml:"function"`
	Variable string `yaml:"variable"`
	Constant string `yaml:"constant"`

	Comment   string `yaml:"comment"`
	Docstring string `yaml:"docstring"`

	Error   string `yaml:"error"`
	Warning string `yaml:"warning"`
	Added   string `yaml:"added"`
	Removed string `yaml:"removed"`

	Muted string `yaml:"muted"`

	Punctuation string `yaml:"punctuation"`
	Operator    string `yaml:"operator"`
	Attribute   string `yaml:"attribute"`
	Namespace   string `yaml:"namespace"`
	Tag         string `yaml:"tag"`
	Regex       string `yaml:"regex"`
	Escape      string `yaml:"escape"`

	BoldControl     bool `yaml:"bold_control"`
	BoldDeclaration bool `yaml:"bold_declaration"`
	ItalicComment   bool `yaml:"italic_comment"`
	ItalicDocstring bool `yaml:"italic_docstring"`
}

// Validate checks the required fields.
func (p Palette) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("palette name is required")
	}
	if p.Background == "" {
		return fmt.Errorf("palette %q: background color is required", p.Name)
	}
	if p.Text == "" {
		return fmt.Errorf("palette %q: text color is required", p.Name)
	}
	return nil
}

func or(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// WithDefaults returns a copy with every empty color filled from its
// fallback chain. Unrelated roles fall back to the base text color, so
// a minimal palette still renders everything.
func (p Palette) WithDefaults() Palette {
	filled := p
	filled.BackgroundHighlight = or(p.BackgroundHighlight, p.Background)
	filled.ControlFlow = or(p.ControlFlow, p.Text)
	filled.Declaration = or(p.Declaration, p.Text)
	filled.Import = or(p.Import, p.ControlFlow, p.Text)
	filled.String = or(p.String, p.Text)
	filled.Number = or(p.Number, p.Text)
	filled.Boolean = or(p.Boolean, p.Number, p.Text)
	filled.Type = or(p.Type, p.Text)
	filled.Function = or(p.Function, p.Text)
	filled.Variable = or(p.Variable, p.Text)
	filled.Constant = or(p.Constant, p.Text)
	filled.Comment = or(p.Comment, p.Muted, p.Text)
	filled.Docstring = or(p.Docstring, p.Comment, p.Muted, p.Text)
	filled.Error = or(p.Error, "#ff0000")
	filled.Warning = or(p.Warning, "#ffcc00")
	filled.Added = or(p.Added, "#00ff00")
	filled.Removed = or(p.Removed, "#ff0000")
	filled.Muted = or(p.Muted, p.Text)
	filled.Punctuation = or(p.Punctuation, p.Muted, p.Text)
	filled.Operator = or(p.Operator, p.ControlFlow, p.Text)
	filled.Attribute = or(p.Attribute, p.Declaration, p.Text)
	filled.Namespace = or(p.Namespace, p.Type, p.Text)
	filled.Tag = or(p.Tag, p.Type, p.Text)
	filled.Regex = or(p.Regex, p.String, p.Text)
	filled.Escape = or(p.Escape, p.String, p.Text)
	return filled
}

// Color returns the color assigned to a role. Call on a palette that
// already has its defaults filled.
func (p Palette) Color(r Role) string {
	switch r {
	case RoleControlFlow:
		return p.ControlFlow
	case RoleDeclaration:
		return p.Declaration
	case RoleImport:
		return p.Import
	case RoleString:
		return p.String
	case RoleNumber:
		return p.Number
	case RoleBoolean:
		return p.Boolean
	case RoleType:
		return p.Type
	case RoleFunction:
		return p.Function
	case RoleVariable:
		return p.Variable
	case RoleConstant:
		return p.Constant
	case RoleComment:
		return p.Comment
	case RoleDocstring:
		return p.Docstring
	case RoleError:
		return p.Error
	case RoleWarning:
		return p.Warning
	case RoleAdded:
		return p.Added
	case RoleRemoved:
		return p.Removed
	case RoleMuted:
		return p.Muted
	case RolePunctuation:
		return p.Punctuation
	case RoleOperator:
		return p.Operator
	case RoleAttribute:
		return p.Attribute
	case RoleNamespace:
		return p.Namespace
	case RoleTag:
		return p.Tag
	case RoleRegex:
		return p.Regex
	case RoleEscape:
		return p.Escape
	default:
		return p.Text
	}
}

// ThemeName implements Theme.
func (p Palette) ThemeName() string { return p.Name }

// CSSVars writes the palette as CSS custom property declarations, one
// per line, each indented by indent spaces.
func (p Palette) CSSVars(indent int) string {
	prefix := strings.Repeat(" ", indent)
	filled := p.WithDefaults()

	var b strings.Builder
	writeVar := func(name, value string) {
		b.WriteString(prefix)
		b.WriteString("--syntax-")
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString(";\n")
	}

	writeVar("bg", filled.Background)
	writeVar("bg-highlight", filled.BackgroundHighlight)
	writeVar("text", filled.Text)
	for _, r := range Roles() {
		if r == RoleText {
			continue
		}
		writeVar(r.String(), filled.Color(r))
	}
	return strings.TrimRight(b.String(), "\n")
}

// Adaptive pairs a light and a dark palette. CSS output selects
// between them with prefers-color-scheme media queries.
type Adaptive struct {
	Name  string  `yaml:"name"`
	Light Palette `yaml:"light"`
	Dark  Palette `yaml:"dark"`
}

// Validate checks the adaptive palette and both halves.
func (a Adaptive) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("palette name is required")
	}
	if err := a.Light.Validate(); err != nil {
		return fmt.Errorf("light half: %w", err)
	}
	if err := a.Dark.Validate(); err != nil {
		return fmt.Errorf("dark half: %w", err)
	}
	return nil
}

// ThemeName implements Theme.
func (a Adaptive) ThemeName() string { return a.Name }

// Theme is either a Palette or an Adaptive palette.
type Theme interface {
	ThemeName() string
}

// Base returns the palette a single-mode renderer should use: the
// theme itself, or the dark half of an adaptive theme.
func Base(t Theme) Palette {
	switch v := t.(type) {
	case Palette:
		return v
	case Adaptive:
		return v.Dark
	default:
		return Palette{}
	}
}

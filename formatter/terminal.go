package formatter

import (
	"bufio"
	"io"

	"github.com/muesli/termenv"

	"rosettes/themes"
	"rosettes/token"
)

// defaultANSI colors each role with the terminal's own 16-color
// palette, used when no theme is set.
var defaultANSI = map[themes.Role]termenv.ANSIColor{
	themes.RoleControlFlow: termenv.ANSIMagenta,
	themes.RoleDeclaration: termenv.ANSICyan,
	themes.RoleImport:      termenv.ANSIMagenta,
	themes.RoleString:      termenv.ANSIGreen,
	themes.RoleDocstring:   termenv.ANSIBrightBlack,
	themes.RoleNumber:      termenv.ANSIYellow,
	themes.RoleBoolean:     termenv.ANSIYellow,
	themes.RoleType:        termenv.ANSICyan,
	themes.RoleFunction:    termenv.ANSIBlue,
	themes.RoleVariable:    termenv.ANSIWhite,
	themes.RoleConstant:    termenv.ANSIYellow,
	themes.RoleComment:     termenv.ANSIBrightBlack,
	themes.RoleError:       termenv.ANSIRed,
	themes.RoleWarning:     termenv.ANSIYellow,
	themes.RoleAdded:       termenv.ANSIGreen,
	themes.RoleRemoved:     termenv.ANSIRed,
	themes.RoleMuted:       termenv.ANSIBrightBlack,
	themes.RolePunctuation: termenv.ANSIWhite,
	themes.RoleOperator:    termenv.ANSIWhite,
	themes.RoleAttribute:   termenv.ANSICyan,
	themes.RoleNamespace:   termenv.ANSIMagenta,
	themes.RoleTag:         termenv.ANSIBlue,
	themes.RoleRegex:       termenv.ANSIGreen,
	themes.RoleEscape:      termenv.ANSIYellow,
}

// Terminal renders tokens with ANSI escape sequences. With a theme
// set, role colors come from the theme's palette, degraded to the
// terminal's color profile; otherwise the terminal's own 16-color
// palette is used. The Ascii profile disables color entirely.
type Terminal struct {
	Profile termenv.Profile
	Theme   themes.Theme
}

// NewTerminal returns a terminal formatter using the detected color
// profile and default role colors. NO_COLOR degrades to plain text.
func NewTerminal() Terminal {
	return Terminal{Profile: termenv.EnvColorProfile()}
}

// NewTerminalTheme returns a terminal formatter drawing role colors
// from a theme.
func NewTerminalTheme(t themes.Theme) Terminal {
	return Terminal{Profile: termenv.EnvColorProfile(), Theme: t}
}

func (f Terminal) Name() string { return "terminal" }

// sequences builds the per-role color sequence table for one run.
func (f Terminal) sequences() ([]string, []bool) {
	roles := themes.Roles()
	seqs := make([]string, len(roles))
	bold := make([]bool, len(roles))

	if f.Theme == nil {
		for role, color := range defaultANSI {
			if c := f.Profile.Convert(color); c != nil {
				seqs[role] = c.Sequence(false)
			}
		}
		return seqs, bold
	}

	p := themes.Base(f.Theme).WithDefaults()
	for _, role := range roles {
		if role == themes.RoleText {
			continue
		}
		if c := f.Profile.Color(p.Color(role)); c != nil {
			seqs[role] = c.Sequence(false)
		}
	}
	bold[themes.RoleControlFlow] = p.BoldControl
	bold[themes.RoleDeclaration] = p.BoldDeclaration
	return seqs, bold
}

// Format writes the tokens with ANSI coloring. Token values pass
// through unescaped, so plain content is preserved exactly.
func (f Terminal) Format(w io.Writer, tokens []token.Token, cfg Config) error {
	seqs, bold := f.sequences()
	bw := bufio.NewWriter(w)

	for _, t := range tokens {
		if t.Type == token.Text || t.Type == token.Whitespace {
			bw.WriteString(t.Value)
			continue
		}
		role := themes.RoleOf(t.Type)
		seq := seqs[role]
		if seq == "" {
			bw.WriteString(t.Value)
			continue
		}
		bw.WriteString(termenv.CSI)
		if bold[role] {
			bw.WriteString(termenv.BoldSeq)
			bw.WriteByte(';')
		}
		bw.WriteString(seq)
		bw.WriteByte('m')
		bw.WriteString(t.Value)
		bw.WriteString(termenv.CSI + termenv.ResetSeq + "m")
	}
	return bw.Flush()
}

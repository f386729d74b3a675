// Package themes provides the semantic color layer for highlighting.
//
// Palettes assign colors to roles rather than to individual token
// types. A role names the purpose of a code element, so a theme needs
// about twenty colors instead of one per token type.
package themes

// Role is the semantic purpose of a code element.
type Role uint8

const (
	RoleText Role = iota

	// Control and structure
	RoleControlFlow
	RoleDeclaration
	RoleImport

	// Data and literals
	RoleString
	RoleNumber
	RoleBoolean

	// Identifiers
	RoleType
	RoleFunction
	RoleVariable
	RoleConstant

	// Documentation
	RoleComment
	RoleDocstring

	// Feedback
	RoleError
	RoleWarning
	RoleAdded
	RoleRemoved

	RoleMuted
	RolePunctuation
	RoleOperator
	RoleAttribute
	RoleNamespace
	RoleTag
	RoleRegex
	RoleEscape

	roleCount // sentinel, keep last
)

var roleNames = [roleCount]string{
	RoleText:        "text",
	RoleControlFlow: "control",
	RoleDeclaration: "declaration",
	RoleImport:      "import",
	RoleString:      "string",
	RoleNumber:      "number",
	RoleBoolean:     "boolean",
	RoleType:        "type",
	RoleFunction:    "function",
	RoleVariable:    "variable",
	RoleConstant:    "constant",
	RoleComment:     "comment",
	RoleDocstring:   "docstring",
	RoleError:       "error",
	RoleWarning:     "warning",
	RoleAdded:       "added",
	RoleRemoved:     "removed",
	RoleMuted:       "muted",
	RolePunctuation: "punctuation",
	RoleOperator:    "operator",
	RoleAttribute:   "attribute",
	RoleNamespace:   "namespace",
	RoleTag:         "tag",
	RoleRegex:       "regex",
	RoleEscape:      "escape",
}

// String returns the role's stable identifier, used in CSS variable
// names and class names.
func (r Role) String() string {
	if r >= roleCount {
		return "text"
	}
	return roleNames[r]
}

// Roles returns every role in declaration order.
func Roles() []Role {
	out := make([]Role, roleCount)
	for i := range out {
		out[i] = Role(i)
	}
	return out
}

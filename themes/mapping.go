package themes

import "rosettes/token"

// roleMapping assigns every token type a semantic role. Types not
// listed here render as plain text.
var roleMapping = map[token.Type]Role{
	token.Error: RoleError,

	token.Keyword:            RoleControlFlow,
	token.KeywordConstant:    RoleBoolean,
	token.KeywordDeclaration: RoleDeclaration,
	token.KeywordNamespace:   RoleImport,
	token.KeywordPseudo:      RoleControlFlow,
	token.KeywordReserved:    RoleControlFlow,
	token.KeywordType:        RoleType,

	token.Name:                 RoleVariable,
	token.NameAttribute:        RoleAttribute,
	token.NameBuiltin:          RoleFunction,
	token.NameBuiltinPseudo:    RoleVariable,
	token.NameClass:            RoleType,
	token.NameConstant:         RoleConstant,
	token.NameDecorator:        RoleAttribute,
	token.NameEntity:           RoleEscape,
	token.NameException:        RoleType,
	token.NameFunction:         RoleFunction,
	token.NameFunctionMagic:    RoleFunction,
	token.NameLabel:            RoleAttribute,
	token.NameNamespace:        RoleNamespace,
	token.NameOther:            RoleVariable,
	token.NameProperty:         RoleAttribute,
	token.NameTag:              RoleTag,
	token.NameVariable:         RoleVariable,
	token.NameVariableClass:    RoleVariable,
	token.NameVariableGlobal:   RoleVariable,
	token.NameVariableInstance: RoleVariable,
	token.NameVariableMagic:    RoleVariable,

	token.Literal:     RoleString,
	token.LiteralDate: RoleString,

	token.String:          RoleString,
	token.StringAffix:     RoleString,
	token.StringBacktick:  RoleString,
	token.StringChar:      RoleString,
	token.StringDelimiter: RoleString,
	token.StringDoc:       RoleDocstring,
	token.StringDouble:    RoleString,
	token.StringEscape:    RoleEscape,
	token.StringHeredoc:   RoleString,
	token.StringInterpol:  RoleEscape,
	token.StringOther:     RoleString,
	token.StringRegex:     RoleRegex,
	token.StringSingle:    RoleString,
	token.StringSymbol:    RoleConstant,

	token.Number:            RoleNumber,
	token.NumberBin:         RoleNumber,
	token.NumberFloat:       RoleNumber,
	token.NumberHex:         RoleNumber,
	token.NumberInteger:     RoleNumber,
	token.NumberIntegerLong: RoleNumber,
	token.NumberOct:         RoleNumber,

	token.Operator:     RoleOperator,
	token.OperatorWord: RoleControlFlow,

	token.Punctuation:       RolePunctuation,
	token.PunctuationMarker: RolePunctuation,

	token.Comment:            RoleComment,
	token.CommentHashbang:    RoleComment,
	token.CommentMultiline:   RoleComment,
	token.CommentPreproc:     RoleImport,
	token.CommentPreprocFile: RoleString,
	token.CommentSingle:      RoleComment,
	token.CommentSpecial:     RoleComment,

	token.Generic:           RoleText,
	token.GenericDeleted:    RoleRemoved,
	token.GenericEmph:       RoleString,
	token.GenericError:      RoleError,
	token.GenericHeading:    RoleDeclaration,
	token.GenericInserted:   RoleAdded,
	token.GenericOutput:     RoleMuted,
	token.GenericPrompt:     RoleMuted,
	token.GenericStrong:     RoleControlFlow,
	token.GenericSubheading: RoleDeclaration,
	token.GenericTraceback:  RoleError,
}

// roleTable is the dense lookup built from roleMapping, indexed by
// token type for the formatter hot path.
var roleTable = func() []Role {
	t := make([]Role, token.Count())
	for tt, r := range roleMapping {
		t[tt] = r
	}
	return t
}()

// RoleOf returns the semantic role for a token type.
func RoleOf(t token.Type) Role {
	if int(t) >= len(roleTable) {
		return RoleText
	}
	return roleTable[t]
}

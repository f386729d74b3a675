// Package token defines the token types emitted by rosettes lexers.
//
// Each Type carries a Pygments-compatible short CSS class so HTML output
// can be styled with existing Pygments stylesheets.
package token

// Type is the semantic classification of a lexed token.
type Type uint8

const (
	// Special
	Text Type = iota
	Whitespace
	Error
	Other

	// Keywords
	Keyword
	KeywordConstant
	KeywordDeclaration
	KeywordNamespace
	KeywordPseudo
	KeywordReserved
	KeywordType

	// Names
	Name
	NameAttribute
	NameBuiltin
	NameBuiltinPseudo
	NameClass
	NameConstant
	NameDecorator
	NameEntity
	NameException
	NameFunction
	NameFunctionMagic
	NameLabel
	NameNamespace
	NameOther
	NameProperty
	NameTag
	NameVariable
	NameVariableClass
	NameVariableGlobal
	NameVariableInstance
	NameVariableMagic

	// Literals
	Literal
	LiteralDate
	String
	StringAffix
	StringBacktick
	StringChar
	StringDelimiter
	StringDoc
	StringDouble
	StringEscape
	StringHeredoc
	StringInterpol
	StringOther
	StringRegex
	StringSingle
	StringSymbol
	Number
	NumberBin
	NumberFloat
	NumberHex
	NumberInteger
	NumberIntegerLong
	NumberOct

	// Operators
	Operator
	OperatorWord

	// Punctuation
	Punctuation
	PunctuationMarker

	// Comments
	Comment
	CommentHashbang
	CommentMultiline
	CommentPreproc
	CommentPreprocFile
	CommentSingle
	CommentSpecial

	// Generic (diffs, console transcripts, markdown)
	Generic
	GenericDeleted
	GenericEmph
	GenericError
	GenericHeading
	GenericInserted
	GenericOutput
	GenericPrompt
	GenericStrong
	GenericSubheading
	GenericTraceback

	typeCount // sentinel, keep last
)

// shortClass maps a Type to its Pygments CSS class suffix.
// Text maps to the empty string: plain runs get no span at all.
var shortClass = [typeCount]string{
	Text:       "",
	Whitespace: "w",
	Error:      "err",
	Other:      "x",

	Keyword:            "k",
	KeywordConstant:    "kc",
	KeywordDeclaration: "kd",
	KeywordNamespace:   "kn",
	KeywordPseudo:      "kp",
	KeywordReserved:    "kr",
	KeywordType:        "kt",

	Name:                 "n",
	NameAttribute:        "na",
	NameBuiltin:          "nb",
	NameBuiltinPseudo:    "bp",
	NameClass:            "nc",
	NameConstant:         "no",
	NameDecorator:        "nd",
	NameEntity:           "ni",
	NameException:        "ne",
	NameFunction:         "nf",
	NameFunctionMagic:    "fm",
	NameLabel:            "nl",
	NameNamespace:        "nn",
	NameOther:            "nx",
	NameProperty:         "py",
	NameTag:              "nt",
	NameVariable:         "nv",
	NameVariableClass:    "vc",
	NameVariableGlobal:   "vg",
	NameVariableInstance: "vi",
	NameVariableMagic:    "vm",

	Literal:           "l",
	LiteralDate:       "ld",
	String:            "s",
	StringAffix:       "sa",
	StringBacktick:    "sb",
	StringChar:        "sc",
	StringDelimiter:   "dl",
	StringDoc:         "sd",
	StringDouble:      "s2",
	StringEscape:      "se",
	StringHeredoc:     "sh",
	StringInterpol:    "si",
	StringOther:       "sx",
	StringRegex:       "sr",
	StringSingle:      "s1",
	StringSymbol:      "ss",
	Number:            "m",
	NumberBin:         "mb",
	NumberFloat:       "mf",
	NumberHex:         "mh",
	NumberInteger:     "mi",
	NumberIntegerLong: "il",
	NumberOct:         "mo",

	Operator:     "o",
	OperatorWord: "ow",

	Punctuation:       "p",
	PunctuationMarker: "pm",

	Comment:            "c",
	CommentHashbang:    "ch",
	CommentMultiline:   "cm",
	CommentPreproc:     "cp",
	CommentPreprocFile: "cpf",
	CommentSingle:      "c1",
	CommentSpecial:     "cs",

	Generic:           "g",
	GenericDeleted:    "gd",
	GenericEmph:       "ge",
	GenericError:      "gr",
	GenericHeading:    "gh",
	GenericInserted:   "gi",
	GenericOutput:     "go",
	GenericPrompt:     "gp",
	GenericStrong:     "gs",
	GenericSubheading: "gu",
	GenericTraceback:  "gt",
}

var typeName = [typeCount]string{
	Text:       "Text",
	Whitespace: "Whitespace",
	Error:      "Error",
	Other:      "Other",

	Keyword:            "Keyword",
	KeywordConstant:    "KeywordConstant",
	KeywordDeclaration: "KeywordDeclaration",
	KeywordNamespace:   "KeywordNamespace",
	KeywordPseudo:      "KeywordPseudo",
	KeywordReserved:    "KeywordReserved",
	KeywordType:        "KeywordType",

	Name:                 "Name",
	NameAttribute:        "NameAttribute",
	NameBuiltin:          "NameBuiltin",
	NameBuiltinPseudo:    "NameBuiltinPseudo",
	NameClass:            "NameClass",
	NameConstant:         "NameConstant",
	NameDecorator:        "NameDecorator",
	NameEntity:           "NameEntity",
	NameException:        "NameException",
	NameFunction:         "NameFunction",
	NameFunctionMagic:    "NameFunctionMagic",
	NameLabel:            "NameLabel",
	NameNamespace:        "NameNamespace",
	NameOther:            "NameOther",
	NameProperty:         "NameProperty",
	NameTag:              "NameTag",
	NameVariable:         "NameVariable",
	NameVariableClass:    "NameVariableClass",
	NameVariableGlobal:   "NameVariableGlobal",
	NameVariableInstance: "NameVariableInstance",
	NameVariableMagic:    "NameVariableMagic",

	Literal:           "Literal",
	LiteralDate:       "LiteralDate",
	String:            "String",
	StringAffix:       "StringAffix",
	StringBacktick:    "StringBacktick",
	StringChar:        "StringChar",
	StringDelimiter:   "StringDelimiter",
	StringDoc:         "StringDoc",
	StringDouble:      "StringDouble",
	StringEscape:      "StringEscape",
	StringHeredoc:     "StringHeredoc",
	StringInterpol:    "StringInterpol",
	StringOther:       "StringOther",
	StringRegex:       "StringRegex",
	StringSingle:      "StringSingle",
	StringSymbol:      "StringSymbol",
	Number:            "Number",
	NumberBin:         "NumberBin",
	NumberFloat:       "NumberFloat",
	NumberHex:         "NumberHex",
	NumberInteger:     "NumberInteger",
	NumberIntegerLong: "NumberIntegerLong",
	NumberOct:         "NumberOct",

	Operator:     "Operator",
	OperatorWord: "OperatorWord",

	Punctuation:       "Punctuation",
	PunctuationMarker: "PunctuationMarker",

	Comment:            "Comment",
	CommentHashbang:    "CommentHashbang",
	CommentMultiline:   "CommentMultiline",
	CommentPreproc:     "CommentPreproc",
	CommentPreprocFile: "CommentPreprocFile",
	CommentSingle:      "CommentSingle",
	CommentSpecial:     "CommentSpecial",

	Generic:           "Generic",
	GenericDeleted:    "GenericDeleted",
	GenericEmph:       "GenericEmph",
	GenericError:      "GenericError",
	GenericHeading:    "GenericHeading",
	GenericInserted:   "GenericInserted",
	GenericOutput:     "GenericOutput",
	GenericPrompt:     "GenericPrompt",
	GenericStrong:     "GenericStrong",
	GenericSubheading: "GenericSubheading",
	GenericTraceback:  "GenericTraceback",
}

// ShortClass returns the Pygments-compatible CSS class suffix for t.
// Text returns "".
func (t Type) ShortClass() string {
	if t >= typeCount {
		return "err"
	}
	return shortClass[t]
}

// String returns the type name, e.g. "KeywordDeclaration".
func (t Type) String() string {
	if t >= typeCount {
		return "Invalid"
	}
	return typeName[t]
}

// Count reports the number of defined token types.
func Count() int { return int(typeCount) }

// All returns every defined token type in declaration order.
func All() []Type {
	out := make([]Type, typeCount)
	for i := range out {
		out[i] = Type(i)
	}
	return out
}

// Token is a single lexed unit of source text.
//
// Tokens are plain values with no shared state; a token stream
// concatenates back to the exact input it was lexed from.
type Token struct {
	Type  Type
	Value string
	// Line and Column are 1-based. Column is a byte offset within the
	// line, matching what editors and terminals count.
	Line   int
	Column int
}

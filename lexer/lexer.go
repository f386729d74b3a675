// Package lexer defines the lexer contract and the scanning primitives
// shared by the built-in state machine lexers.
//
// Every lexer is a hand-written single-pass state machine: no regular
// expressions, no backtracking beyond bounded lookahead, O(n) over the
// input. Lexers hold no mutable state, so a single instance is safe for
// concurrent use.
package lexer

import "rosettes/token"

// Lexer tokenizes source code for one language.
//
// Implementations must be lossless: concatenating the values of the
// returned tokens reproduces the input byte-for-byte, including
// whitespace and unterminated constructs.
type Lexer interface {
	// Name is the canonical language name, e.g. "python".
	Name() string
	// Aliases are alternative lookup names, e.g. "py".
	Aliases() []string
	// Filenames are glob patterns for files this lexer handles,
	// e.g. "*.py".
	Filenames() []string
	// MimeTypes lists the MIME types this lexer handles.
	MimeTypes() []string
	// Tokenize lexes src into an ordered token stream.
	Tokenize(src string) []token.Token
}

// Info carries the static metadata of a lexer. Built-in lexers embed it
// to satisfy the metadata half of the Lexer interface.
type Info struct {
	LangName  string
	LangAlias []string
	Globs     []string
	Mimes     []string
}

func (i Info) Name() string        { return i.LangName }
func (i Info) Aliases() []string   { return i.LangAlias }
func (i Info) Filenames() []string { return i.Globs }
func (i Info) MimeTypes() []string { return i.Mimes }

// Package rosettes is a syntax highlighter built on hand-written
// state-machine lexers. Every lexer makes a single pass over its
// input, so tokenizing is O(n) on arbitrary input with no regular
// expressions anywhere.
//
// The token stream is lossless: concatenating token values reproduces
// the input byte for byte. All public APIs are safe for concurrent
// use.
package rosettes

import (
	"io"
	"strings"

	"rosettes/formatter"
	"rosettes/lexer"
	"rosettes/lexers"
	"rosettes/themes"
	"rosettes/token"
)

// Lookup errors, re-exported for errors.Is checks.
var (
	ErrUnknownLanguage  = lexer.ErrUnknownLanguage
	ErrUnknownFormatter = formatter.ErrUnknownFormatter
	ErrUnknownTheme     = themes.ErrUnknownTheme
)

var defaultRegistry = lexers.NewRegistry()

// Highlight tokenizes code as the given language and writes formatted
// output to w. The default output is HTML with semantic classes.
func Highlight(w io.Writer, code, language string, opts ...Option) error {
	o := newOptions(opts)

	l, err := o.registry.Get(language)
	if err != nil {
		return err
	}
	f, err := o.resolveFormatter()
	if err != nil {
		return err
	}
	return f.Format(w, l.Tokenize(code), o.formatConfig(l.Name()))
}

// HighlightString is Highlight returning the output as a string.
func HighlightString(code, language string, opts ...Option) (string, error) {
	var b strings.Builder
	if err := Highlight(&b, code, language, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Tokenize returns the raw token stream for code in the given
// language.
func Tokenize(code, language string, opts ...Option) ([]token.Token, error) {
	o := newOptions(opts)
	l, err := o.registry.Get(language)
	if err != nil {
		return nil, err
	}
	return l.Tokenize(code), nil
}

// DetectLanguage returns the canonical language name whose filename
// patterns match path.
func DetectLanguage(path string) (string, error) {
	l, err := defaultRegistry.Match(path)
	if err != nil {
		return "", err
	}
	return l.Name(), nil
}

// Languages returns the canonical names of all built-in languages.
func Languages() []string { return defaultRegistry.Languages() }

// SupportsLanguage reports whether a language name or alias is known.
func SupportsLanguage(language string) bool { return defaultRegistry.Supports(language) }

// Formatters returns the names of all registered formatters.
func Formatters() []string { return formatter.List() }

// Themes returns the names of all registered themes.
func Themes() []string { return themes.List() }

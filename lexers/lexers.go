// Package lexers provides the built-in language lexers. Each lexer is
// a hand-written state machine that makes a single pass over its input
// and never backtracks more than a bounded lookahead.
package lexers

import "rosettes/lexer"

// RegisterAll registers every built-in lexer with r.
func RegisterAll(r *lexer.Registry) {
	r.Register(NewC())
	r.Register(NewCpp())
	r.Register(NewGo())
	r.Register(NewPython())
	r.Register(NewJavaScript())
	r.Register(NewRust())
	r.Register(NewJSON())
	r.Register(NewYAML())
	r.Register(NewMarkdown())
	r.Register(NewHTML())
}

// NewRegistry returns a registry populated with all built-in lexers.
func NewRegistry() *lexer.Registry {
	r := lexer.NewRegistry()
	RegisterAll(r)
	return r
}

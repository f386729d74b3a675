package lexer

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownLanguage is wrapped by registry lookups that fail.
var ErrUnknownLanguage = fmt.Errorf("unknown language")

// Registry maps language names, aliases, and filename patterns to
// lexers. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	byName  map[string]Lexer // canonical name and aliases, lowercased
	entries []Lexer          // registration order, for filename matching
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Lexer)}
}

// Register adds a lexer under its canonical name and all aliases.
// Later registrations replace earlier ones for the same name.
func (r *Registry) Register(l Lexer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byName[strings.ToLower(l.Name())] = l
	for _, alias := range l.Aliases() {
		r.byName[strings.ToLower(alias)] = l
	}
	r.entries = append(r.entries, l)
}

// Get returns the lexer for a language name or alias.
func (r *Registry) Get(language string) (Lexer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if l, ok := r.byName[strings.ToLower(language)]; ok {
		return l, nil
	}
	return nil, fmt.Errorf("%w: %q (available: %s)",
		ErrUnknownLanguage, language, strings.Join(r.languagesLocked(), ", "))
}

// Supports reports whether a language name or alias is registered.
func (r *Registry) Supports(language string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byName[strings.ToLower(language)]
	return ok
}

// Match returns the lexer whose filename patterns match path, or an
// error if none does. Matching uses the base name, case-insensitively.
func (r *Registry) Match(path string) (Lexer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	base := strings.ToLower(filepath.Base(path))
	for _, l := range r.entries {
		for _, pattern := range l.Filenames() {
			if ok, err := filepath.Match(strings.ToLower(pattern), base); err == nil && ok {
				return l, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: no lexer matches filename %q", ErrUnknownLanguage, path)
}

// Languages returns all canonical language names, sorted.
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.languagesLocked()
}

func (r *Registry) languagesLocked() []string {
	seen := make(map[string]bool, len(r.entries))
	var names []string
	for _, l := range r.entries {
		if !seen[l.Name()] {
			seen[l.Name()] = true
			names = append(names, l.Name())
		}
	}
	sort.Strings(names)
	return names
}

// All returns the registered lexers in canonical-name order.
func (r *Registry) All() []Lexer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool, len(r.entries))
	var out []Lexer
	for _, l := range r.entries {
		if !seen[l.Name()] {
			seen[l.Name()] = true
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

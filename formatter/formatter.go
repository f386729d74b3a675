// Package formatter renders token streams as output text. Formatters
// are stateless values, safe to share across goroutines.
package formatter

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"rosettes/token"
)

// ErrUnknownFormatter is wrapped by formatter lookups that fail.
var ErrUnknownFormatter = fmt.Errorf("unknown formatter")

// Config controls output rendering. The zero value is not useful;
// start from NewConfig.
type Config struct {
	// CSSClass overrides the container class. Empty selects the
	// formatter's default for its class style.
	CSSClass string
	// WrapCode wraps HTML output in <div><pre><code> tags.
	WrapCode bool
	// ClassPrefix is prepended to every token CSS class.
	ClassPrefix string
	// DataLanguage is emitted as a data-language attribute on the
	// container when set.
	DataLanguage string

	// HlLines holds 1-based line numbers to highlight.
	HlLines map[int]bool
	// ShowLinenos prefixes each line with its number.
	ShowLinenos bool
	// LinenoClass is the CSS class for line number spans.
	LinenoClass string
	// HlLineClass is the CSS class for highlighted lines.
	HlLineClass string
}

// NewConfig returns a Config with the standard defaults.
func NewConfig() Config {
	return Config{
		WrapCode:    true,
		LinenoClass: "lineno",
		HlLineClass: "hll",
	}
}

// Formatter renders a token stream to a writer.
type Formatter interface {
	Name() string
	Format(w io.Writer, tokens []token.Token, cfg Config) error
}

var (
	mu       sync.RWMutex
	registry = map[string]Formatter{}
)

func init() {
	for _, f := range []Formatter{
		NewHTML(),
		NewHTMLPygments(),
		NewTerminal(),
		Null{},
	} {
		registry[f.Name()] = f
	}
}

// Register adds a formatter under its name, replacing any existing
// formatter with the same name.
func Register(f Formatter) {
	mu.Lock()
	defer mu.Unlock()
	registry[f.Name()] = f
}

// Get returns a registered formatter by name.
func Get(name string) (Formatter, error) {
	mu.RLock()
	defer mu.RUnlock()

	if f, ok := registry[strings.ToLower(name)]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q (available: %s)",
		ErrUnknownFormatter, name, strings.Join(listLocked(), ", "))
}

// List returns all registered formatter names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	return listLocked()
}

func listLocked() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

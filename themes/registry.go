package themes

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrUnknownTheme is wrapped by theme lookups that fail.
var ErrUnknownTheme = fmt.Errorf("unknown theme")

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	for _, t := range []Theme{
		BengalTiger,
		BengalSnowLynx,
		BengalCharcoal,
		BengalBlue,
		Monokai,
		Dracula,
		GitHub,
		GitHubLight,
		GitHubDark,
	} {
		registry[t.ThemeName()] = t
	}
}

// Register adds a theme under its name, replacing any existing theme
// with the same name.
func Register(t Theme) error {
	type validator interface{ Validate() error }
	if v, ok := t.(validator); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}

	mu.Lock()
	defer mu.Unlock()
	registry[t.ThemeName()] = t
	return nil
}

// Get returns a registered theme by name.
func Get(name string) (Theme, error) {
	mu.RLock()
	defer mu.RUnlock()

	if t, ok := registry[name]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w: %q (available: %s)",
		ErrUnknownTheme, name, strings.Join(listLocked(), ", "))
}

// List returns all registered theme names, sorted.
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

// defaultStyle is the starting point for YAML palettes, so style flags
// default on unless the file turns them off.
func defaultStyle() Palette {
	return Palette{
		BoldControl:     true,
		BoldDeclaration: true,
		ItalicComment:   true,
		ItalicDocstring: true,
	}
}

// Parse decodes a YAML theme definition. A document with light and
// dark sections becomes an Adaptive theme; anything else is a single
// Palette.
func Parse(data []byte) (Theme, error) {
	var probe struct {
		Name  string    `yaml:"name"`
		Light yaml.Node `yaml:"light"`
		Dark  yaml.Node `yaml:"dark"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parsing theme: %w", err)
	}

	if probe.Light.Kind != 0 && probe.Dark.Kind != 0 {
		light, dark := defaultStyle(), defaultStyle()
		if err := probe.Light.Decode(&light); err != nil {
			return nil, fmt.Errorf("parsing light half: %w", err)
		}
		if err := probe.Dark.Decode(&dark); err != nil {
			return nil, fmt.Errorf("parsing dark half: %w", err)
		}
		if light.Name == "" {
			light.Name = probe.Name + "-light"
		}
		if dark.Name == "" {
			dark.Name = probe.Name + "-dark"
		}
		a := Adaptive{Name: probe.Name, Light: light, Dark: dark}
		if err := a.Validate(); err != nil {
			return nil, err
		}
		return a, nil
	}

	p := defaultStyle()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing theme: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadFile reads a YAML theme definition from disk and registers it.
func LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := Register(t); err != nil {
		return nil, err
	}
	return t, nil
}

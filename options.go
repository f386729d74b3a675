package rosettes

import (
	"runtime"

	"rosettes/formatter"
	"rosettes/lexer"
	"rosettes/themes"
)

// Option adjusts how Highlight and its variants behave.
type Option func(*options)

type options struct {
	formatter     formatter.Formatter
	formatterName string
	theme         string
	classStyle    themes.ClassStyle
	cssClass      string
	hlLines       map[int]bool
	showLinenos   bool
	registry      *lexer.Registry
	maxWorkers    int
}

func newOptions(opts []Option) options {
	o := options{
		formatterName: "html",
		classStyle:    themes.Semantic,
		registry:      defaultRegistry,
		maxWorkers:    min(4, runtime.NumCPU()),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithFormatter uses a formatter instance directly, bypassing the
// formatter registry.
func WithFormatter(f formatter.Formatter) Option {
	return func(o *options) { o.formatter = f }
}

// WithFormatterName selects a registered formatter by name. The
// default is "html".
func WithFormatterName(name string) Option {
	return func(o *options) { o.formatterName = name }
}

// WithTheme selects a registered theme by name. Themes color terminal
// output directly; HTML output references them through stylesheets.
func WithTheme(name string) Option {
	return func(o *options) { o.theme = name }
}

// WithClassStyle selects the HTML class vocabulary, semantic or
// pygments.
func WithClassStyle(style themes.ClassStyle) Option {
	return func(o *options) { o.classStyle = style }
}

// WithCSSClass overrides the HTML container class.
func WithCSSClass(class string) Option {
	return func(o *options) { o.cssClass = class }
}

// WithHlLines marks 1-based line numbers for highlighting.
func WithHlLines(lines ...int) Option {
	return func(o *options) {
		if o.hlLines == nil {
			o.hlLines = make(map[int]bool, len(lines))
		}
		for _, n := range lines {
			o.hlLines[n] = true
		}
	}
}

// WithLineNumbers prefixes output lines with their numbers.
func WithLineNumbers() Option {
	return func(o *options) { o.showLinenos = true }
}

// WithRegistry uses a custom lexer registry instead of the built-in
// one.
func WithRegistry(r *lexer.Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithMaxWorkers caps the goroutines used by the batch APIs. The
// default is the smaller of four and the CPU count.
func WithMaxWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxWorkers = n
		}
	}
}

func (o options) resolveFormatter() (formatter.Formatter, error) {
	if o.formatter != nil {
		return o.formatter, nil
	}
	switch o.formatterName {
	case "html":
		if o.classStyle == themes.Pygments {
			return formatter.NewHTMLPygments(), nil
		}
		return formatter.NewHTML(), nil
	case "terminal":
		if o.theme != "" {
			t, err := themes.Get(o.theme)
			if err != nil {
				return nil, err
			}
			return formatter.NewTerminalTheme(t), nil
		}
		return formatter.NewTerminal(), nil
	default:
		return formatter.Get(o.formatterName)
	}
}

func (o options) formatConfig(language string) formatter.Config {
	cfg := formatter.NewConfig()
	cfg.CSSClass = o.cssClass
	cfg.DataLanguage = language
	cfg.HlLines = o.hlLines
	cfg.ShowLinenos = o.showLinenos
	return cfg
}

package formatter

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"rosettes/themes"
	"rosettes/token"
)

const spanClose = "</span>"

// pygmentsSpanOpen holds a prebuilt opening span per token type,
// keyed by the Pygments short class. Empty entries mean no span.
var pygmentsSpanOpen = func() []string {
	t := make([]string, token.Count())
	for _, tt := range token.All() {
		if tt == token.Text || tt == token.Whitespace {
			continue
		}
		if class := tt.ShortClass(); class != "" {
			t[tt] = `<span class="` + class + `">`
		}
	}
	return t
}()

// semanticSpanOpen holds a prebuilt opening span per token type,
// keyed by the type's semantic role class.
var semanticSpanOpen = func() []string {
	t := make([]string, token.Count())
	for _, tt := range token.All() {
		if tt == token.Text || tt == token.Whitespace {
			continue
		}
		if role := themes.RoleOf(tt); role != themes.RoleText {
			t[tt] = `<span class="syntax-` + role.String() + `">`
		}
	}
	return t
}()

// HTML renders tokens as HTML spans. ClassStyle selects between
// semantic role classes and Pygments-compatible short classes.
type HTML struct {
	ClassStyle themes.ClassStyle
}

// NewHTML returns the semantic-class HTML formatter.
func NewHTML() HTML { return HTML{ClassStyle: themes.Semantic} }

// NewHTMLPygments returns the Pygments-class HTML formatter.
func NewHTMLPygments() HTML { return HTML{ClassStyle: themes.Pygments} }

func (f HTML) Name() string {
	if f.ClassStyle == themes.Pygments {
		return "html-pygments"
	}
	return "html"
}

// spans returns the opening-span table for this formatter, rebuilt
// with the class prefix applied when one is configured.
func (f HTML) spans(cfg Config) []string {
	base := semanticSpanOpen
	if f.ClassStyle == themes.Pygments {
		base = pygmentsSpanOpen
	}
	if cfg.ClassPrefix == "" {
		return base
	}
	prefixed := make([]string, len(base))
	for i, open := range base {
		if open != "" {
			prefixed[i] = strings.Replace(open, `class="`, `class="`+cfg.ClassPrefix, 1)
		}
	}
	return prefixed
}

// Format writes the tokens as HTML. Token values are escaped; token
// boundaries and whitespace are preserved exactly, so the text content
// of the output equals the input.
func (f HTML) Format(w io.Writer, tokens []token.Token, cfg Config) error {
	bw := bufio.NewWriter(w)
	spans := f.spans(cfg)

	if cfg.WrapCode {
		container := cfg.CSSClass
		if container == "" {
			container = f.ClassStyle.ContainerClass()
		}
		bw.WriteString(`<div class="` + container + `"`)
		if cfg.DataLanguage != "" {
			bw.WriteString(` data-language="` + EscapeHTML(cfg.DataLanguage) + `"`)
		}
		bw.WriteString("><pre><code>")
	}

	if len(cfg.HlLines) == 0 && !cfg.ShowLinenos {
		for _, t := range tokens {
			open := spans[t.Type]
			if open == "" {
				bw.WriteString(EscapeHTML(t.Value))
				continue
			}
			bw.WriteString(open)
			bw.WriteString(EscapeHTML(t.Value))
			bw.WriteString(spanClose)
		}
	} else {
		f.formatLines(bw, tokens, cfg, spans)
	}

	if cfg.WrapCode {
		bw.WriteString("</code></pre></div>")
	}
	return bw.Flush()
}

// formatLines is the line-aware path: spans never cross line
// boundaries, so highlighted-line backgrounds stay rectangular.
func (f HTML) formatLines(bw *bufio.Writer, tokens []token.Token, cfg Config, spans []string) {
	width := linenoWidth(tokens)
	line := 1
	inHl := false
	pendingStart := true

	startLine := func() {
		pendingStart = false
		if cfg.ShowLinenos {
			fmt.Fprintf(bw, `<span class="%s">%*d</span> `, cfg.LinenoClass, width, line)
		}
		if cfg.HlLines[line] {
			bw.WriteString(`<span class="` + cfg.HlLineClass + `">`)
			inHl = true
		}
	}

	for _, t := range tokens {
		open := spans[t.Type]
		value := t.Value
		for {
			i := strings.IndexByte(value, '\n')
			seg := value
			if i >= 0 {
				seg = value[:i]
			}
			if seg != "" {
				if pendingStart {
					startLine()
				}
				if open == "" {
					bw.WriteString(EscapeHTML(seg))
				} else {
					bw.WriteString(open)
					bw.WriteString(EscapeHTML(seg))
					bw.WriteString(spanClose)
				}
			}
			if i < 0 {
				break
			}
			if pendingStart {
				// Blank line still needs its number and highlight.
				startLine()
			}
			if inHl {
				bw.WriteString(spanClose)
				inHl = false
			}
			bw.WriteByte('\n')
			line++
			pendingStart = true
			value = value[i+1:]
		}
	}
	if inHl {
		bw.WriteString(spanClose)
	}
}

// linenoWidth returns the digit width of the last line number.
func linenoWidth(tokens []token.Token) int {
	lines := 1
	for _, t := range tokens {
		lines += strings.Count(t.Value, "\n")
	}
	width := 1
	for lines >= 10 {
		lines /= 10
		width++
	}
	return width
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"rosettes"
	"rosettes/themes"
)

var (
	flagLanguage   string
	flagFormatter  string
	flagTheme      string
	flagClassStyle string
	flagCSSClass   string
	flagLinenos    bool
	flagHlLines    []int
	flagOutput     string
)

// highlightCmd renders files or stdin as highlighted output.
var highlightCmd = &cobra.Command{
	Use:   "highlight [files...]",
	Short: "Highlight source files or stdin",
	Long: `Tokenizes each input and writes formatted output.

With no files, reads from stdin; --language is then required. For
files, the language is detected from the filename unless --language
overrides it.

Example:
  rosettes highlight main.go
  rosettes highlight --language python --formatter terminal < script.py
  rosettes highlight --hl-lines 3,4 --linenos src/parser.c`,
	RunE: runHighlight,
}

func init() {
	flags := highlightCmd.Flags()
	flags.StringVarP(&flagLanguage, "language", "l", "", "language name or alias (default: detect from filename)")
	flags.StringVarP(&flagFormatter, "formatter", "f", "", "output formatter (default from config)")
	flags.StringVarP(&flagTheme, "theme", "t", "", "theme name (default from config)")
	flags.StringVar(&flagClassStyle, "class-style", "", "HTML class style: semantic or pygments")
	flags.StringVar(&flagCSSClass, "css-class", "", "override the HTML container class")
	flags.BoolVarP(&flagLinenos, "linenos", "n", false, "show line numbers")
	flags.IntSliceVar(&flagHlLines, "hl-lines", nil, "1-based line numbers to highlight")
	flags.StringVarP(&flagOutput, "output", "o", "", "write output to file instead of stdout")
}

// highlightOptions merges config defaults with command flags.
func highlightOptions() []rosettes.Option {
	formatterName := flagFormatter
	if formatterName == "" {
		formatterName = cfg.Output.Formatter
	}
	theme := flagTheme
	if theme == "" {
		theme = cfg.Output.Theme
	}
	style := flagClassStyle
	if style == "" {
		style = cfg.Output.ClassStyle
	}
	cssClass := flagCSSClass
	if cssClass == "" {
		cssClass = cfg.Output.CSSClass
	}

	opts := []rosettes.Option{
		rosettes.WithFormatterName(formatterName),
		rosettes.WithTheme(theme),
	}
	if style == "pygments" {
		opts = append(opts, rosettes.WithClassStyle(themes.Pygments))
	}
	if cssClass != "" {
		opts = append(opts, rosettes.WithCSSClass(cssClass))
	}
	if flagLinenos || cfg.Output.LineNumbers {
		opts = append(opts, rosettes.WithLineNumbers())
	}
	if len(flagHlLines) > 0 {
		opts = append(opts, rosettes.WithHlLines(flagHlLines...))
	}
	return opts
}

func runHighlight(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if flagOutput != "" {
		f, err := os.Create(flagOutput)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if len(args) == 0 {
		if flagLanguage == "" {
			return fmt.Errorf("--language is required when reading from stdin")
		}
		code, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		return rosettes.Highlight(out, string(code), flagLanguage, highlightOptions()...)
	}

	for _, path := range args {
		language := flagLanguage
		if language == "" {
			var err error
			language, err = rosettes.DetectLanguage(path)
			if err != nil {
				return err
			}
		}

		code, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if err := rosettes.Highlight(out, string(code), language, highlightOptions()...); err != nil {
			return fmt.Errorf("highlighting %s: %w", path, err)
		}
		fmt.Fprintln(out)
	}
	return nil
}

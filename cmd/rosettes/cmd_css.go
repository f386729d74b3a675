package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rosettes/themes"
)

var (
	cssTheme string
	cssStyle string
)

// cssCmd emits a stylesheet for a theme.
var cssCmd = &cobra.Command{
	Use:   "css",
	Short: "Print a stylesheet for a theme",
	Long: `Generates the CSS that styles rosettes HTML output.

Semantic style emits role classes driven by CSS custom properties, so
a page can retheme at runtime by redefining the variables. Pygments
style emits the short classes with colors inlined, compatible with
markup produced for Pygments.

Adaptive themes produce prefers-color-scheme media queries.

Example:
  rosettes css --theme github > syntax.css
  rosettes css --theme monokai --class-style pygments`,
	RunE: runCSS,
}

func init() {
	cssCmd.Flags().StringVarP(&cssTheme, "theme", "t", "", "theme name (default from config)")
	cssCmd.Flags().StringVar(&cssStyle, "class-style", "", "semantic or pygments")
}

func runCSS(cmd *cobra.Command, args []string) error {
	name := cssTheme
	if name == "" {
		name = cfg.Output.Theme
	}
	style := themes.Semantic
	switch cssStyle {
	case "":
		if cfg.Output.ClassStyle == "pygments" {
			style = themes.Pygments
		}
	case "semantic":
	case "pygments":
		style = themes.Pygments
	default:
		return fmt.Errorf("invalid class style %q (want semantic or pygments)", cssStyle)
	}

	t, err := themes.Get(name)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), themes.Stylesheet(t, style))
	return nil
}

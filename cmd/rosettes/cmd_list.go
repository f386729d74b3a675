package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rosettes"
	"rosettes/lexers"
	"rosettes/themes"
)

// languagesCmd lists the built-in languages.
var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, headerStyle.Render("Languages"))
		for _, l := range lexers.NewRegistry().All() {
			line := "  " + nameStyle.Render(l.Name())
			if aliases := l.Aliases(); len(aliases) > 0 {
				line += " " + mutedStyle.Render("("+strings.Join(aliases, ", ")+")")
			}
			line += "  " + mutedStyle.Render(strings.Join(l.Filenames(), " "))
			fmt.Fprintln(out, line)
		}
		return nil
	},
}

// themesCmd lists registered themes with color swatches.
var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, headerStyle.Render("Themes"))
		for _, name := range rosettes.Themes() {
			t, err := themes.Get(name)
			if err != nil {
				return err
			}
			switch v := t.(type) {
			case themes.Adaptive:
				fmt.Fprintf(out, "  %s %s %s %s\n",
					nameStyle.Render(name),
					swatch(v.Light.Background, v.Light.Text),
					swatch(v.Dark.Background, v.Dark.Text),
					mutedStyle.Render("(adaptive)"))
			case themes.Palette:
				fmt.Fprintf(out, "  %s %s\n",
					nameStyle.Render(name),
					swatch(v.Background, v.Text))
			}
		}
		return nil
	},
}

// formattersCmd lists registered formatters.
var formattersCmd = &cobra.Command{
	Use:   "formatters",
	Short: "List available formatters",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, headerStyle.Render("Formatters"))
		for _, name := range rosettes.Formatters() {
			fmt.Fprintln(out, "  "+nameStyle.Render(name))
		}
		return nil
	},
}

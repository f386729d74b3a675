package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"rosettes"
	"rosettes/themes"
)

var tokensLanguage string

// tokensCmd dumps the raw token stream for inspection.
var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the token stream for a file or stdin",
	Long: `Tokenizes the input and prints one token per line with its
position, type, semantic role, and value. Useful for debugging lexers
and building custom formatters.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	tokensCmd.Flags().StringVarP(&tokensLanguage, "language", "l", "", "language name or alias (default: detect from filename)")
}

func runTokens(cmd *cobra.Command, args []string) error {
	var code []byte
	language := tokensLanguage

	if len(args) == 0 {
		if language == "" {
			return fmt.Errorf("--language is required when reading from stdin")
		}
		var err error
		code, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	} else {
		path := args[0]
		if language == "" {
			var err error
			language, err = rosettes.DetectLanguage(path)
			if err != nil {
				return err
			}
		}
		var err error
		code, err = os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
	}

	tokens, err := rosettes.Tokenize(string(code), language)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LINE:COL\tTYPE\tROLE\tVALUE")
	for _, t := range tokens {
		fmt.Fprintf(w, "%d:%d\t%s\t%s\t%q\n", t.Line, t.Column, t.Type, themes.RoleOf(t.Type), t.Value)
	}
	return w.Flush()
}

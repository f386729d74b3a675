package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rosettes/internal/config"
	"rosettes/internal/logging"
	"rosettes/themes"
)

var (
	// Global flags
	verbose bool
	cfgPath string

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "rosettes",
	Short: "rosettes - syntax highlighting without regular expressions",
	Long: `rosettes is a syntax highlighter built on hand-written state machines.

Every lexer makes a single pass over its input in O(n) with no regular
expressions, so arbitrary input cannot trigger pathological backtracking.
Token streams are lossless: concatenating token values reproduces the
input byte for byte.

Output targets HTML (semantic or Pygments-compatible CSS classes) and
ANSI terminals, with themes layered over about twenty semantic roles.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}

		logger, err = logging.Build(cfg.Logging, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		for _, path := range cfg.ThemeFiles {
			if _, err := themes.LoadFile(path); err != nil {
				return err
			}
			logger.Sugar().Debugw("loaded theme file", "path", path)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultConfigPath(), "path to config file")

	rootCmd.AddCommand(highlightCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(cssCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(formattersCmd)
	rootCmd.AddCommand(watchCmd)
}

func defaultConfigPath() string {
	if path := os.Getenv("ROSETTES_CONFIG"); path != "" {
		return path
	}
	return "rosettes.yaml"
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"rosettes"
	"rosettes/internal/watch"
	"rosettes/themes"
)

var watchOutputDir string

// watchCmd re-highlights files as they change.
var watchCmd = &cobra.Command{
	Use:   "watch [dirs...]",
	Short: "Watch directories and re-highlight changed files",
	Long: `Watches the given directories (default: current directory) and
writes highlighted HTML for each recognized source file as it changes.
Output files are named after the source with an .html suffix.

Rapid saves are debounced; tune the window with watch.debounce in the
config file.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchOutputDir, "output-dir", "o", "", "directory for generated HTML (default from config)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	dirs := args
	if len(dirs) == 0 {
		dirs = []string{"."}
	}
	outputDir := watchOutputDir
	if outputDir == "" {
		outputDir = cfg.Watch.OutputDir
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	log := logger.Sugar()
	opts := []rosettes.Option{
		rosettes.WithFormatterName("html"),
		rosettes.WithTheme(cfg.Output.Theme),
	}
	if cfg.Output.ClassStyle == "pygments" {
		opts = append(opts, rosettes.WithClassStyle(themes.Pygments))
	}

	handler := func(ctx context.Context, path string) error {
		language, err := rosettes.DetectLanguage(path)
		if err != nil {
			log.Debugw("skipping unrecognized file", "path", path)
			return nil
		}
		code, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		outPath := filepath.Join(outputDir, filepath.Base(path)+".html")
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := rosettes.Highlight(f, string(code), language, opts...); err != nil {
			return err
		}
		log.Infow("highlighted", "source", path, "output", outPath, "language", language)
		return nil
	}

	w, err := watch.New(cfg.Watch.Extensions, cfg.GetDebounce(), handler, log)
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := w.Start(ctx); err != nil {
		return err
	}
	log.Infow("watching for changes", "dirs", dirs, "output", outputDir)

	<-ctx.Done()
	w.Stop()

	stats := w.GetStats()
	log.Infow("watch session ended",
		"created", stats.FilesCreated,
		"modified", stats.FilesModified,
		"handled", stats.Handled,
		"errors", stats.Errors)
	return nil
}

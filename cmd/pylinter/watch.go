package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/viant/pylinter/analyzer"
)

var watchCmd = &cobra.Command{
	Use:   "watch [flags] file.py",
	Short: "Re-analyze a file whenever it changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	addAnalysisFlags(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	target, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := newAnalyzer(ctx, cmd, target)
	if err != nil {
		return err
	}
	setupColor(cmd)
	format, _ := cmd.Flags().GetString("format")
	analyze := func() error {
		result, err := srv.AnalyzeFile(ctx, target)
		if err != nil {
			return err
		}
		return report(os.Stdout, format, []*analyzer.Result{result})
	}
	if err = analyze(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()
	// editors often replace files on save, so the parent directory is watched
	if err = watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %v: %w", target, err)
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if err = analyze(); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, "watch error:", err)
		}
	}
}

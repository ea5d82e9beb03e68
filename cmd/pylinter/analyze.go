package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/viant/pylinter/analyzer"
	"github.com/viant/pylinter/inspector/python"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [flags] [path...]",
	Short: "Analyze Python files or directories",
	Long:  `Analyze runs all enabled rules against Python sources and reports diagnostics by category`,
	RunE:  runAnalyze,
}

func init() {
	addAnalysisFlags(analyzeCmd)
	analyzeCmd.Flags().IntP("jobs", "j", 0, "number of files analysed in parallel (0 = GOMAXPROCS)")
	analyzeCmd.Flags().String("cache", "", "result cache directory")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"."}
	}
	ctx := cmd.Context()
	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no Python files found in %v", args)
	}
	var options []analyzer.Option
	if cacheDir, _ := cmd.Flags().GetString("cache"); cacheDir != "" {
		options = append(options, analyzer.WithCache(cacheDir))
	}
	srv, err := newAnalyzer(ctx, cmd, files[0], options...)
	if err != nil {
		return err
	}
	jobs, _ := cmd.Flags().GetInt("jobs")
	results, err := srv.AnalyzeFiles(ctx, files, jobs)
	if err != nil {
		return err
	}
	setupColor(cmd)
	format, _ := cmd.Flags().GetString("format")
	if err = report(os.Stdout, format, results); err != nil {
		return err
	}
	for _, result := range results {
		if result.Len() > 0 {
			return errFindings
		}
	}
	return nil
}

// collectFiles expands directories into Python files, explicit files are always kept
func collectFiles(paths []string) ([]string, error) {
	var files []string
	for _, location := range paths {
		info, err := os.Stat(location)
		if err != nil {
			return nil, fmt.Errorf("invalid path %v: %w", location, err)
		}
		if !info.IsDir() {
			files = append(files, location)
			continue
		}
		err = filepath.Walk(location, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !python.Files(info) {
				if info.IsDir() && path != location {
					return filepath.SkipDir
				}
				return nil
			}
			if !info.IsDir() {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %v: %w", location, err)
		}
	}
	return files, nil
}

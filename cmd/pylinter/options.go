package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/viant/pylinter/analyzer"
	"github.com/viant/pylinter/analyzer/config"
)

func addAnalysisFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "config file (.yaml or pyproject.toml), discovered from project root when empty")
	cmd.Flags().Int("max-identifier-length", 0, "maximum identifier length, overrides config")
	cmd.Flags().StringSlice("disable", nil, "rules to disable, overrides config")
	cmd.Flags().String("format", "text", "output format (text|yaml|json)")
}

// newAnalyzer builds analyzer from flags, sourcePath is used for config discovery
func newAnalyzer(ctx context.Context, cmd *cobra.Command, sourcePath string, options ...analyzer.Option) (*analyzer.Analyzer, error) {
	cfg, err := loadConfig(ctx, cmd, sourcePath)
	if err != nil {
		return nil, err
	}
	verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	options = append(options, analyzer.WithConfig(cfg), analyzer.WithLogger(logger))
	return analyzer.New(options...), nil
}

func loadConfig(ctx context.Context, cmd *cobra.Command, sourcePath string) (*config.Config, error) {
	var cfg *config.Config
	location, _ := cmd.Flags().GetString("config")
	var err error
	if location != "" {
		if cfg, err = config.Load(ctx, location); err != nil {
			return nil, err
		}
	} else {
		if cfg, location, err = config.Discover(ctx, sourcePath); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("max-identifier-length") {
		cfg.MaxIdentifierLength, _ = cmd.Flags().GetInt("max-identifier-length")
	}
	if cmd.Flags().Changed("disable") {
		cfg.Disable, _ = cmd.Flags().GetStringSlice("disable")
	}
	cfg.Init()
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	if verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose"); verbose && location != "" {
		fmt.Fprintf(os.Stderr, "using config %v\n", location)
	}
	return cfg, nil
}

func setupColor(cmd *cobra.Command) {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	switch colorFlag {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(os.Stdout)
	}
}

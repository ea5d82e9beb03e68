package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/viant/afs"
	"github.com/viant/pylinter/inspector/repository"
)

// FileName is project level configuration file name
const FileName = ".pylinter.yaml"

// Discover finds configuration for the supplied source path: .pylinter.yaml or pyproject.toml
// with [tool.pylinter] section at the project root. Default config is returned when none is found.
func Discover(ctx context.Context, sourcePath string) (*Config, string, error) {
	project, err := repository.New(FileName, "pyproject.toml", "setup.cfg", "setup.py", ".git").DetectProject(ctx, sourcePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to detect project for %v: %w", sourcePath, err)
	}
	fs := afs.New()
	candidate := filepath.Join(project.RootPath, FileName)
	if ok, _ := fs.Exists(ctx, candidate); ok {
		cfg, err := Load(ctx, candidate)
		return cfg, candidate, err
	}
	candidate = filepath.Join(project.RootPath, "pyproject.toml")
	if ok, _ := fs.Exists(ctx, candidate); ok {
		content, err := fs.DownloadWithURL(ctx, candidate)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load %v: %w", candidate, err)
		}
		cfg, err := decodePyProject(content)
		if err != nil {
			return nil, "", fmt.Errorf("failed to decode config %v: %w", candidate, err)
		}
		if cfg != nil {
			cfg.Init()
			if err = cfg.Validate(); err != nil {
				return nil, "", fmt.Errorf("invalid config %v: %w", candidate, err)
			}
			return cfg, candidate, nil
		}
	}
	return Default(), "", nil
}

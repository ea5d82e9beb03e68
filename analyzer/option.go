package analyzer

import (
	"log/slog"

	"github.com/viant/afs"
	"github.com/viant/pylinter/analyzer/config"
	"github.com/viant/pylinter/analyzer/rule"
	"github.com/viant/pylinter/inspector"
	"github.com/viant/pylinter/inspector/repository"
)

type Option func(*Analyzer)

// WithConfig sets analysis configuration, rules are derived from it unless WithRules is used
func WithConfig(cfg *config.Config) Option {
	return func(a *Analyzer) {
		if cfg == nil {
			return
		}
		cfg.Init()
		a.config = cfg
	}
}

// WithRules replaces configured rules with the supplied set
func WithRules(rules *rule.Set) Option {
	return func(a *Analyzer) {
		a.rules = rules
	}
}

// WithInspector sets the inspector used by Run and for files with unregistered extensions
func WithInspector(inspector inspector.Inspector) Option {
	return func(a *Analyzer) {
		a.inspector = inspector
	}
}

// WithLogger sets logger for skipped stages and recovered rule failures
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithCache enables result cache stored under baseURL
func WithCache(baseURL string) Option {
	return func(a *Analyzer) {
		if baseURL != "" {
			a.cache = NewCache(baseURL)
		}
	}
}

// WithFileSystem sets file system used to read sources
func WithFileSystem(fs afs.Service) Option {
	return func(a *Analyzer) {
		a.fs = fs
	}
}

// WithDetector sets project detector used to name analysed files
func WithDetector(detector *repository.Detector) Option {
	return func(a *Analyzer) {
		a.detector = detector
	}
}

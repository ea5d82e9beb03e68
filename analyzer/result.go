package analyzer

import (
	"fmt"
	"strings"

	"github.com/viant/pylinter/analyzer/rule"
	"github.com/viant/pylinter/inspector/syntax"
)

// Stage represents rule evaluation stage
type Stage string

const (
	StageText   Stage = "text"
	StageTokens Stage = "tokens"
	StageNodes  Stage = "nodes"
)

// Result represents diagnostics of one analysed source, bucketed by category
type Result struct {
	URL           string                `yaml:"url,omitempty" json:"url,omitempty" msgpack:"url"`
	Project       string                `yaml:"project,omitempty" json:"project,omitempty" msgpack:"project"`
	Path          string                `yaml:"path,omitempty" json:"path,omitempty" msgpack:"path"`
	Fingerprint   uint64                `yaml:"fingerprint" json:"fingerprint" msgpack:"fingerprint"`
	Style         []rule.Diagnostic     `yaml:"style" json:"style" msgpack:"style"`
	Security      []rule.Diagnostic     `yaml:"security" json:"security" msgpack:"security"`
	Performance   []rule.Diagnostic     `yaml:"performance" json:"performance" msgpack:"performance"`
	Skipped       []Stage               `yaml:"skipped,omitempty" json:"skipped,omitempty" msgpack:"skipped"`
	TokenizeError *syntax.TokenizeError `yaml:"tokenizeError,omitempty" json:"tokenizeError,omitempty" msgpack:"tokenizeError"`
	ParseError    *syntax.ParseError    `yaml:"parseError,omitempty" json:"parseError,omitempty" msgpack:"parseError"`
}

// Bucket returns diagnostics of the given category
func (r *Result) Bucket(category rule.Category) []rule.Diagnostic {
	switch category {
	case rule.Style:
		return r.Style
	case rule.Security:
		return r.Security
	case rule.Performance:
		return r.Performance
	}
	return nil
}

// Len returns total number of diagnostics
func (r *Result) Len() int {
	return len(r.Style) + len(r.Security) + len(r.Performance)
}

// Partial returns true if some stages were skipped after a tokenize or parse failure
func (r *Result) Partial() bool {
	return len(r.Skipped) > 0
}

// Err returns *PartialAnalysis for a partial result, nil otherwise
func (r *Result) Err() error {
	if !r.Partial() {
		return nil
	}
	partial := &PartialAnalysis{Skipped: r.Skipped}
	switch {
	case r.TokenizeError != nil:
		partial.Cause = r.TokenizeError
	case r.ParseError != nil:
		partial.Cause = r.ParseError
	}
	return partial
}

func (r *Result) add(diagnostics []rule.Diagnostic) {
	for _, diagnostic := range diagnostics {
		switch diagnostic.Category {
		case rule.Style:
			r.Style = append(r.Style, diagnostic)
		case rule.Security:
			r.Security = append(r.Security, diagnostic)
		case rule.Performance:
			r.Performance = append(r.Performance, diagnostic)
		}
	}
}

func (r *Result) skip(stages ...Stage) {
	r.Skipped = append(r.Skipped, stages...)
}

// PartialAnalysis reports that some rule stages were skipped; diagnostics of other stages are still valid
type PartialAnalysis struct {
	Skipped []Stage
	Cause   error
}

func (p *PartialAnalysis) Error() string {
	stages := make([]string, 0, len(p.Skipped))
	for _, stage := range p.Skipped {
		stages = append(stages, string(stage))
	}
	if p.Cause == nil {
		return fmt.Sprintf("partial analysis, skipped: %s", strings.Join(stages, ", "))
	}
	return fmt.Sprintf("partial analysis, skipped: %s: %v", strings.Join(stages, ", "), p.Cause)
}

func (p *PartialAnalysis) Unwrap() error {
	return p.Cause
}

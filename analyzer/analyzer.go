package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/pylinter/analyzer/config"
	"github.com/viant/pylinter/analyzer/rule"
	"github.com/viant/pylinter/inspector"
	"github.com/viant/pylinter/inspector/python"
	"github.com/viant/pylinter/inspector/repository"
	"github.com/viant/pylinter/inspector/syntax"
)

// Analyzer evaluates rules against source files.
// It holds immutable state only, each Run owns its rule context and result.
type Analyzer struct {
	config    *config.Config
	rules     *rule.Set
	inspector inspector.Inspector
	factory   *inspector.Factory
	detector  *repository.Detector
	logger    *slog.Logger
	fs        afs.Service
	cache     *Cache
	signature string
}

// New creates an analyzer, by default with all built-in rules and Python inspector
func New(options ...Option) *Analyzer {
	a := &Analyzer{
		config:  config.Default(),
		factory: inspector.NewFactory(),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, option := range options {
		option(a)
	}
	if a.inspector == nil {
		a.inspector = python.NewInspector()
	}
	if a.rules == nil {
		a.rules = a.config.Rules()
	}
	if a.fs == nil {
		a.fs = afs.New()
	}
	if a.detector == nil {
		a.detector = repository.New()
	}
	var names []string
	for _, r := range a.rules.Rules() {
		names = append(names, r.Name())
	}
	a.signature = a.config.Signature() + ";rules=" + strings.Join(names, ",")
	return a
}

// Config returns effective configuration
func (a *Analyzer) Config() *config.Config {
	return a.config
}

// Rules returns registered rules
func (a *Analyzer) Rules() *rule.Set {
	return a.rules
}

// Run analyses source text; tokenize and parse failures degrade the result instead of failing it
func (a *Analyzer) Run(source string) *Result {
	return a.run(a.inspector, source)
}

// lineBreaks maps CRLF and CR line endings to LF, so every stage counts lines the same way
var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

func (a *Analyzer) run(sourceInspector inspector.Inspector, source string) *Result {
	result := &Result{Fingerprint: a.fingerprint([]byte(source))}
	source = lineBreaks.Replace(source)
	src := []byte(source)

	tokens, err := sourceInspector.Tokenize(src)
	if err != nil {
		result.TokenizeError = asTokenizeError(err)
		result.skip(StageTokens, StageNodes)
		a.logger.Debug("tokenize failed, skipping token and node rules", "error", err)
	}

	for _, textRule := range a.rules.TextRules() {
		result.add(a.evaluate(textRule, func() []rule.Diagnostic {
			return textRule.CheckText(source)
		}))
	}
	if result.TokenizeError != nil {
		return result
	}

	for _, tokenRule := range a.rules.TokenRules() {
		result.add(a.evaluate(tokenRule, func() []rule.Diagnostic {
			return tokenRule.CheckTokens(tokens)
		}))
	}

	module, err := sourceInspector.Parse(context.Background(), src)
	if err == nil && module == nil {
		err = &syntax.ParseError{Location: syntax.NewLocation(1, 0), Reason: "no syntax tree"}
	}
	if err != nil {
		result.ParseError = asParseError(err)
		result.skip(StageNodes)
		a.logger.Debug("parse failed, skipping node rules", "error", err)
		return result
	}

	nodeRules := a.rules.NodeRules()
	ruleContext := rule.NewContext(source, tokens)
	syntax.Walk(*module, syntax.VisitorFunc(func(node syntax.Node) {
		ruleContext.At(node)
		for _, nodeRule := range nodeRules {
			result.add(a.evaluate(nodeRule, func() []rule.Diagnostic {
				return nodeRule.CheckNode(node, ruleContext)
			}))
		}
	}))
	return result
}

// evaluate runs a single rule check, a panicking rule contributes no diagnostics
func (a *Analyzer) evaluate(r rule.Rule, check func() []rule.Diagnostic) (result []rule.Diagnostic) {
	defer func() {
		if recovered := recover(); recovered != nil {
			a.logger.Warn("rule failed", "rule", r.Name(), "error", fmt.Sprint(recovered))
			result = nil
		}
	}()
	return check()
}

// AnalyzeFile reads and analyses a single source file, unreadable source is the only error
func (a *Analyzer) AnalyzeFile(ctx context.Context, URL string) (*Result, error) {
	src, err := a.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read %v: %w", URL, err)
	}
	if a.cache != nil {
		cached, err := a.cache.Get(ctx, a.fingerprint(src))
		if err != nil {
			a.logger.Warn("failed to read cached result", "url", URL, "error", err)
		}
		if cached != nil {
			cached.URL = URL
			a.describe(ctx, cached)
			return cached, nil
		}
	}
	fileInspector, err := a.factory.GetInspector(URL)
	if err != nil {
		fileInspector = a.inspector
	}
	result := a.run(fileInspector, string(src))
	result.URL = URL
	a.describe(ctx, result)
	if a.cache != nil {
		if err = a.cache.Put(ctx, result); err != nil {
			a.logger.Warn("failed to cache result", "url", URL, "error", err)
		}
	}
	return result, nil
}

// describe sets project name and project relative path of a local source file
func (a *Analyzer) describe(ctx context.Context, result *Result) {
	project, err := a.detector.DetectProject(ctx, result.URL)
	if err != nil {
		a.logger.Debug("project not detected", "url", result.URL, "error", err)
		result.Project, result.Path = "", ""
		return
	}
	result.Project = project.Name
	result.Path = project.RelativePath
}

func asTokenizeError(err error) *syntax.TokenizeError {
	var tokenizeErr *syntax.TokenizeError
	if errors.As(err, &tokenizeErr) {
		return tokenizeErr
	}
	return &syntax.TokenizeError{Location: syntax.NewLocation(1, 0), Reason: err.Error()}
}

func asParseError(err error) *syntax.ParseError {
	var parseErr *syntax.ParseError
	if errors.As(err, &parseErr) {
		return parseErr
	}
	return &syntax.ParseError{Location: syntax.NewLocation(1, 0), Reason: err.Error()}
}

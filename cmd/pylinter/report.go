package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/viant/pylinter/analyzer"
	"github.com/viant/pylinter/analyzer/rule"
	"gopkg.in/yaml.v3"
)

var (
	fileColor    = color.New(color.FgCyan, color.Bold)
	warningColor = color.New(color.FgYellow)
	headerColors = map[rule.Category]*color.Color{
		rule.Style:       color.New(color.FgBlue, color.Bold),
		rule.Security:    color.New(color.FgRed, color.Bold),
		rule.Performance: color.New(color.FgMagenta, color.Bold),
	}
	headers = map[rule.Category]string{
		rule.Style:       "Style Violations",
		rule.Security:    "Security Warnings",
		rule.Performance: "Performance Issues",
	}
)

func report(w io.Writer, format string, results []*analyzer.Result) error {
	switch format {
	case "text":
		return reportText(w, results)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(results); err != nil {
			return err
		}
		return encoder.Close()
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func reportText(w io.Writer, results []*analyzer.Result) error {
	for _, result := range results {
		if _, err := fileColor.Fprintln(w, title(result)); err != nil {
			return err
		}
		if err := result.Err(); err != nil {
			warningColor.Fprintf(w, "  warning: %v\n", err)
		}
		for _, category := range rule.Categories {
			diagnostics := result.Bucket(category)
			if len(diagnostics) == 0 {
				continue
			}
			headerColors[category].Fprintf(w, "  %s:\n", headers[category])
			for _, diagnostic := range diagnostics {
				fmt.Fprintf(w, "    %s\n", diagnostic.Message)
			}
		}
	}
	return nil
}

// title names a result by its project relative path when the project is known
func title(result *analyzer.Result) string {
	if result.Project == "" || result.Path == "" {
		return result.URL
	}
	return fmt.Sprintf("%s (%s)", result.Path, result.Project)
}

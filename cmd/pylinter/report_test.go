package main

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/viant/pylinter/analyzer"
)

func TestReport_Text(t *testing.T) {
	color.NoColor = true
	srv := analyzer.New()
	clean := srv.Run("x = 1\n")
	clean.URL = "clean.py"
	broken := srv.Run("def broken(:\n    exec(code)\n")
	broken.URL = "broken.py"
	loop := srv.Run("for x in xs:\n    out.append(x)\n")
	loop.URL = "/src/demo/pkg/loop.py"
	loop.Project, loop.Path = "demo", "pkg/loop.py"

	buffer := &bytes.Buffer{}
	assert.NoError(t, report(buffer, "text", []*analyzer.Result{clean, broken, loop}))
	assert.Equal(t, `clean.py
broken.py
  warning: partial analysis, skipped: tokens, nodes: tokenize error at 3:1: EOF in multi-line statement
  Security Warnings:
    Usage of 'exec()' detected, potential security risk.
pkg/loop.py (demo)
  Performance Issues:
    Consider using list comprehension for better performance.
    Line 2: Consider using list comprehension for better performance.
`, buffer.String())
}

func TestReport_Formats(t *testing.T) {
	result := analyzer.New().Run("eval(x)\n")
	for _, format := range []string{"yaml", "json"} {
		buffer := &bytes.Buffer{}
		assert.NoError(t, report(buffer, format, []*analyzer.Result{result}), format)
		assert.Contains(t, buffer.String(), "banned-call", format)
		assert.Contains(t, buffer.String(), "security", format)
	}
	assert.Error(t, report(&bytes.Buffer{}, "xml", nil))
}

func TestCollectFiles(t *testing.T) {
	baseDir := t.TempDir()
	for _, name := range []string{"app/main.py", "app/types.pyi", "app/README.md", "app/__pycache__/main.py", ".venv/lib/site.py", "tool"} {
		location := filepath.Join(baseDir, name)
		assert.NoError(t, os.MkdirAll(filepath.Dir(location), 0o755))
		assert.NoError(t, os.WriteFile(location, []byte("x = 1\n"), 0o644))
	}
	files, err := collectFiles([]string{baseDir, filepath.Join(baseDir, "tool")})
	if !assert.NoError(t, err) {
		return
	}
	sort.Strings(files)
	assert.Equal(t, []string{
		filepath.Join(baseDir, "app/main.py"),
		filepath.Join(baseDir, "app/types.pyi"),
		filepath.Join(baseDir, "tool"),
	}, files)

	_, err = collectFiles([]string{filepath.Join(baseDir, "missing")})
	assert.Error(t, err)
}

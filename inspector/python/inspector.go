package python

import (
	"context"
	"os"
	"path/filepath"

	"github.com/viant/pylinter/inspector/syntax"
)

// Inspector tokenizes and parses Python source
type Inspector struct{}

// NewInspector creates a Python inspector
func NewInspector() *Inspector {
	return &Inspector{}
}

// Tokenize returns source token stream
func (i *Inspector) Tokenize(src []byte) ([]syntax.Token, error) {
	return Tokenize(src)
}

// Parse returns source syntax tree, a new tree-sitter parser is used for each call
func (i *Inspector) Parse(ctx context.Context, src []byte) (*syntax.Module, error) {
	return ParseCtx(ctx, src)
}

// Files matches Python source files and skips virtual environments and caches
func Files(info os.FileInfo) bool {
	if info.IsDir() {
		switch info.Name() {
		case "__pycache__", ".venv", "venv", ".tox", ".git", ".mypy_cache", "build", "dist":
			return false
		}
		return true
	}
	switch filepath.Ext(info.Name()) {
	case ".py", ".pyi":
		return true
	}
	return false
}

package inspector

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/viant/pylinter/inspector/python"
	"github.com/viant/pylinter/inspector/syntax"
)

// Inspector provides an interface for turning source code into tokens and syntax tree
type Inspector interface {
	// Tokenize breaks source code into a flat token stream
	Tokenize(src []byte) ([]syntax.Token, error)

	// Parse builds syntax tree rooted at a Module node
	Parse(ctx context.Context, src []byte) (*syntax.Module, error)
}

// Factory creates appropriate inspectors based on language
type Factory struct {
	inspectors map[string]Inspector
}

// NewFactory creates a new inspector factory with built-in languages
func NewFactory() *Factory {
	pythonInspector := python.NewInspector()
	return &Factory{
		inspectors: map[string]Inspector{
			".py":  pythonInspector,
			".pyi": pythonInspector,
		},
	}
}

// GetInspector returns an appropriate inspector based on file extension
func (f *Factory) GetInspector(filename string) (Inspector, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if inspector, ok := f.inspectors[ext]; ok {
		return inspector, nil
	}
	return nil, fmt.Errorf("unsupported file type: %s", ext)
}

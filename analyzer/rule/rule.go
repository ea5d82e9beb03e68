package rule

import "github.com/viant/pylinter/inspector/syntax"

// Rule represents an independent check
type Rule interface {
	// Name returns rule identifier, used for disabling and reporting
	Name() string
	// Category returns category of emitted diagnostics
	Category() Category
	// Description returns human readable rule summary
	Description() string
}

// TextRule inspects raw source text, it runs once per file before traversal
type TextRule interface {
	Rule
	CheckText(source string) []Diagnostic
}

// TokenRule inspects the whole token stream, it runs once per file
type TokenRule interface {
	Rule
	CheckTokens(tokens []syntax.Token) []Diagnostic
}

// NodeRule inspects every visited syntax node
type NodeRule interface {
	Rule
	CheckNode(node syntax.Node, ctx *Context) []Diagnostic
}

// Context represents read-only view given to a rule during one analysis run
type Context struct {
	source string
	tokens []syntax.Token
	node   syntax.Node
}

// NewContext creates a run context
func NewContext(source string, tokens []syntax.Token) *Context {
	return &Context{source: source, tokens: tokens}
}

// Source returns raw source text
func (c *Context) Source() string { return c.source }

// Tokens returns source tokens, nil when tokenization failed
func (c *Context) Tokens() []syntax.Token { return c.tokens }

// Node returns currently visited node
func (c *Context) Node() syntax.Node { return c.node }

// At returns context positioned at node
func (c *Context) At(node syntax.Node) *Context {
	c.node = node
	return c
}

package python

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"
	sitter "github.com/smacker/go-tree-sitter"
	pysitter "github.com/smacker/go-tree-sitter/python"
	"github.com/viant/pylinter/inspector/syntax"
	"golang.org/x/text/unicode/norm"
)

const maxErrorSnippet = 32

// Parse parses Python source and builds the syntax tree
func Parse(src []byte) (*syntax.Module, error) {
	return ParseCtx(context.Background(), src)
}

// ParseCtx parses Python source with the supplied context
func ParseCtx(ctx context.Context, src []byte) (*syntax.Module, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(pysitter.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}
	rootNode := tree.RootNode()
	b := &builder{src: src}
	if rootNode.HasError() {
		if errNode := findErrorNode(rootNode); errNode != nil {
			return nil, &syntax.ParseError{Location: b.location(errNode), Reason: b.errorReason(errNode)}
		}
		return nil, &syntax.ParseError{Location: syntax.NewLocation(1, 0), Reason: "invalid syntax"}
	}
	return &syntax.Module{
		Body:     b.namedChildren(rootNode),
		Location: syntax.NewLocation(1, 0),
	}, nil
}

// findErrorNode returns the first ERROR or MISSING node in pre-order
func findErrorNode(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if found := findErrorNode(n.Child(i)); found != nil {
			return found
		}
	}
	return nil
}

type builder struct {
	src []byte
}

func (b *builder) node(n *sitter.Node) syntax.Node {
	switch n.Type() {
	case "call":
		return b.call(n)
	case "attribute":
		return syntax.AttributeAccess{
			Object:    b.field(n, "object"),
			Attribute: b.name(n.ChildByFieldName("attribute")),
			Location:  b.location(n),
		}
	case "identifier":
		return syntax.Identifier{Name: b.name(n), Location: b.location(n)}
	case "for_statement":
		return syntax.LoopStmt{
			Keyword:  "for",
			Header:   b.fields(n, "left", "right"),
			Body:     b.body(n.ChildByFieldName("body")),
			Else:     b.elseBody(n),
			Location: b.location(n),
		}
	case "while_statement":
		return syntax.LoopStmt{
			Keyword:  "while",
			Header:   b.fields(n, "condition"),
			Body:     b.body(n.ChildByFieldName("body")),
			Else:     b.elseBody(n),
			Location: b.location(n),
		}
	case "parenthesized_expression":
		// (eval)(x) calls eval, the tree keeps no node for grouping parentheses
		if inner := b.namedChildren(n); len(inner) == 1 {
			return inner[0]
		}
	case "exec_statement":
		// python 2 form: exec code [in globals]
		location := b.location(n)
		return syntax.CallExpr{
			Callee:   syntax.Identifier{Name: "exec", Location: location},
			Args:     b.namedChildren(n),
			Location: location,
		}
	}
	return syntax.Generic{Type: n.Type(), Nodes: b.namedChildren(n), Location: b.location(n)}
}

func (b *builder) call(n *sitter.Node) syntax.Node {
	call := syntax.CallExpr{
		Callee:   b.field(n, "function"),
		Location: b.location(n),
	}
	if args := n.ChildByFieldName("arguments"); args != nil {
		if args.Type() == "argument_list" {
			call.Args = b.namedChildren(args)
		} else { // generator_expression as sole argument
			call.Args = []syntax.Node{b.node(args)}
		}
	}
	return call
}

func (b *builder) field(n *sitter.Node, name string) syntax.Node {
	child := n.ChildByFieldName(name)
	if child == nil {
		return nil
	}
	return b.node(child)
}

func (b *builder) fields(n *sitter.Node, names ...string) []syntax.Node {
	var result []syntax.Node
	for _, name := range names {
		if child := b.field(n, name); child != nil {
			result = append(result, child)
		}
	}
	return result
}

func (b *builder) body(block *sitter.Node) []syntax.Node {
	if block == nil {
		return nil
	}
	return b.namedChildren(block)
}

func (b *builder) elseBody(n *sitter.Node) []syntax.Node {
	alternative := n.ChildByFieldName("alternative")
	if alternative == nil {
		return nil
	}
	return b.body(alternative.ChildByFieldName("body"))
}

func (b *builder) namedChildren(n *sitter.Node) []syntax.Node {
	var result []syntax.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() == "comment" {
			continue
		}
		result = append(result, b.node(child))
	}
	return result
}

// name returns NFKC normalized identifier, the form Python resolves names with
func (b *builder) name(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return norm.NFKC.String(n.Content(b.src))
}

// location returns 1-based line and column, column counted in runes
func (b *builder) location(n *sitter.Node) syntax.Location {
	point := n.StartPoint()
	line := toInt(point.Row) + 1
	start := toInt(n.StartByte())
	lineStart := start - toInt(point.Column)
	if lineStart < 0 || start > len(b.src) {
		return syntax.NewLocation(line, 0)
	}
	return syntax.NewLocation(line, utf8.RuneCount(b.src[lineStart:start])+1)
}

func (b *builder) errorReason(n *sitter.Node) string {
	if n.IsMissing() {
		return fmt.Sprintf("missing %s", n.Type())
	}
	snippet := n.Content(b.src)
	if index := strings.IndexAny(snippet, "\r\n"); index != -1 {
		snippet = snippet[:index]
	}
	if runes := []rune(snippet); len(runes) > maxErrorSnippet {
		snippet = string(runes[:maxErrorSnippet]) + "..."
	}
	return fmt.Sprintf("invalid syntax near %q", snippet)
}

func toInt(v uint32) int {
	result, err := safecast.Conv[int](v)
	if err != nil {
		return 0
	}
	return result
}

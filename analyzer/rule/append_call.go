package rule

import (
	"fmt"
	"regexp"

	"github.com/viant/pylinter/inspector/syntax"
)

const appendMessage = "Consider using list comprehension for better performance."

var (
	loopKeyword = regexp.MustCompile(`\b(for|while)\b`)
	appendCall  = regexp.MustCompile(`\.\s*append\s*\(`)
)

// AppendInLoopText flags source containing both a loop keyword and an .append( call anywhere
type AppendInLoopText struct{}

func (r *AppendInLoopText) Name() string       { return "append-in-loop-text" }
func (r *AppendInLoopText) Category() Category { return Performance }
func (r *AppendInLoopText) Description() string {
	return "source text contains a loop keyword and an append call"
}

// CheckText reports once, at the first append call
func (r *AppendInLoopText) CheckText(source string) []Diagnostic {
	if !loopKeyword.MatchString(source) {
		return nil
	}
	match := appendCall.FindStringIndex(source)
	if match == nil {
		return nil
	}
	return []Diagnostic{NewDiagnostic(r, locate(source, match[0]), appendMessage)}
}

// AppendCall flags any append attribute access, inside loop bodies or not
type AppendCall struct{}

func (r *AppendCall) Name() string        { return "append-call" }
func (r *AppendCall) Category() Category  { return Performance }
func (r *AppendCall) Description() string { return "append attribute access" }

func (r *AppendCall) CheckNode(node syntax.Node, ctx *Context) []Diagnostic {
	attribute, ok := node.(syntax.AttributeAccess)
	if !ok || attribute.Attribute != "append" {
		return nil
	}
	message := fmt.Sprintf("Line %d: %s", attribute.Location.Line, appendMessage)
	return []Diagnostic{NewDiagnostic(r, attribute.Location, message)}
}

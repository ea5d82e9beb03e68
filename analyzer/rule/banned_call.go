package rule

import (
	"fmt"
	"strings"

	"github.com/viant/pylinter/inspector/syntax"
)

// BannedCallNames lists callables executing arbitrary code
var BannedCallNames = []string{"eval", "exec"}

// BannedCallText flags literal name( occurrences anywhere in raw text, including comments and strings
type BannedCallText struct {
	Names []string
}

// NewBannedCallText creates textual banned call rule
func NewBannedCallText(names ...string) *BannedCallText {
	if len(names) == 0 {
		names = BannedCallNames
	}
	return &BannedCallText{Names: names}
}

func (r *BannedCallText) Name() string       { return "banned-call-text" }
func (r *BannedCallText) Category() Category { return Security }
func (r *BannedCallText) Description() string {
	return fmt.Sprintf("source text contains %s call", strings.Join(r.Names, "/"))
}

// CheckText reports each banned name once, at its first occurrence
func (r *BannedCallText) CheckText(source string) []Diagnostic {
	var result []Diagnostic
	for _, name := range r.Names {
		index := strings.Index(source, name+"(")
		if index == -1 {
			continue
		}
		result = append(result, NewDiagnostic(r, locate(source, index), bannedCallMessage(name)))
	}
	return result
}

// BannedCall flags calls whose callee is a banned identifier
type BannedCall struct {
	names map[string]bool
}

// NewBannedCall creates structural banned call rule
func NewBannedCall(names ...string) *BannedCall {
	if len(names) == 0 {
		names = BannedCallNames
	}
	result := &BannedCall{names: make(map[string]bool, len(names))}
	for _, name := range names {
		result.names[name] = true
	}
	return result
}

func (r *BannedCall) Name() string        { return "banned-call" }
func (r *BannedCall) Category() Category  { return Security }
func (r *BannedCall) Description() string { return "call of a builtin executing arbitrary code" }

func (r *BannedCall) CheckNode(node syntax.Node, ctx *Context) []Diagnostic {
	call, ok := node.(syntax.CallExpr)
	if !ok {
		return nil
	}
	callee, ok := call.Callee.(syntax.Identifier)
	if !ok || !r.names[callee.Name] {
		return nil
	}
	message := fmt.Sprintf("Line %d: %s", call.Location.Line, bannedCallMessage(callee.Name))
	return []Diagnostic{NewDiagnostic(r, call.Location, message)}
}

func bannedCallMessage(name string) string {
	return fmt.Sprintf("Usage of '%s()' detected, potential security risk.", name)
}

package rule

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/pylinter/inspector/syntax"
)

func TestLongIdentifier_CheckTokens(t *testing.T) {
	long := strings.Repeat("a", 85)
	tests := []struct {
		description string
		max         int
		tokens      []syntax.Token
		expect      []Diagnostic
	}{
		{
			description: "name token over limit",
			max:         79,
			tokens: []syntax.Token{
				{Kind: syntax.Name, Text: "short", Location: syntax.NewLocation(1, 1)},
				{Kind: syntax.Name, Text: long, Location: syntax.NewLocation(4, 5)},
			},
			expect: []Diagnostic{
				{Rule: "long-identifier", Category: Style, Message: "Line 4: identifier exceeds 79 characters", Location: syntax.NewLocation(4, 5)},
			},
		},
		{
			description: "non name tokens ignored",
			max:         79,
			tokens: []syntax.Token{
				{Kind: syntax.String, Text: "'" + long + "'", Location: syntax.NewLocation(1, 1)},
				{Kind: syntax.Comment, Text: "# " + long, Location: syntax.NewLocation(2, 1)},
			},
		},
		{
			description: "exact limit allowed",
			max:         85,
			tokens:      []syntax.Token{{Kind: syntax.Name, Text: long, Location: syntax.NewLocation(1, 1)}},
		},
		{
			description: "length counted in characters",
			max:         3,
			tokens:      []syntax.Token{{Kind: syntax.Name, Text: "ïïï", Location: syntax.NewLocation(1, 1)}},
		},
		{
			description: "default limit",
			max:         0,
			tokens:      []syntax.Token{{Kind: syntax.Name, Text: strings.Repeat("b", 80), Location: syntax.NewLocation(2, 1)}},
			expect: []Diagnostic{
				{Rule: "long-identifier", Category: Style, Message: "Line 2: identifier exceeds 79 characters", Location: syntax.NewLocation(2, 1)},
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			actual := NewLongIdentifier(tc.max).CheckTokens(tc.tokens)
			assert.Equal(t, tc.expect, actual)
		})
	}
}

func TestBannedCallText_CheckText(t *testing.T) {
	tests := []struct {
		description string
		source      string
		expect      []Diagnostic
	}{
		{
			description: "both names, reported once each",
			source:      "x = 1\nexec(code)\ny = eval(a) + eval(b)\n",
			expect: []Diagnostic{
				{Rule: "banned-call-text", Category: Security, Message: "Usage of 'eval()' detected, potential security risk.", Location: syntax.NewLocation(3, 5)},
				{Rule: "banned-call-text", Category: Security, Message: "Usage of 'exec()' detected, potential security risk.", Location: syntax.NewLocation(2, 1)},
			},
		},
		{
			description: "name without call",
			source:      "evaluate = eval\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expect, NewBannedCallText().CheckText(tc.source))
		})
	}
}

func TestBannedCall_CheckNode(t *testing.T) {
	location := syntax.NewLocation(7, 10)
	tests := []struct {
		description string
		node        syntax.Node
		expect      []Diagnostic
	}{
		{
			description: "eval identifier callee",
			node:        syntax.CallExpr{Callee: syntax.Identifier{Name: "eval", Location: location}, Location: location},
			expect: []Diagnostic{
				{Rule: "banned-call", Category: Security, Message: "Line 7: Usage of 'eval()' detected, potential security risk.", Location: location},
			},
		},
		{
			description: "attribute callee",
			node:        syntax.CallExpr{Callee: syntax.AttributeAccess{Object: syntax.Identifier{Name: "ast"}, Attribute: "eval"}, Location: location},
		},
		{
			description: "other callee",
			node:        syntax.CallExpr{Callee: syntax.Identifier{Name: "print"}, Location: location},
		},
		{
			description: "not a call",
			node:        syntax.Identifier{Name: "exec", Location: location},
		},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			actual := NewBannedCall().CheckNode(tc.node, NewContext("", nil).At(tc.node))
			assert.Equal(t, tc.expect, actual)
		})
	}
}

func TestAppendInLoopText_CheckText(t *testing.T) {
	tests := []struct {
		description string
		source      string
		expect      []Diagnostic
	}{
		{
			description: "loop with append",
			source:      "out = []\nfor x in xs:\n    out.append(x)\n",
			expect: []Diagnostic{
				{Rule: "append-in-loop-text", Category: Performance, Message: "Consider using list comprehension for better performance.", Location: syntax.NewLocation(3, 8)},
			},
		},
		{
			description: "append without loop",
			source:      "out.append(1)\n",
		},
		{
			description: "loop without append",
			source:      "while True:\n    pass\n",
		},
		{
			description: "keyword inside identifier does not count",
			source:      "format = 1\nout.append(format)\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expect, (&AppendInLoopText{}).CheckText(tc.source))
		})
	}
}

func TestAppendCall_CheckNode(t *testing.T) {
	location := syntax.NewLocation(3, 5)
	rule := &AppendCall{}
	actual := rule.CheckNode(syntax.AttributeAccess{Object: syntax.Identifier{Name: "out"}, Attribute: "append", Location: location}, NewContext("", nil))
	assert.Equal(t, []Diagnostic{
		{Rule: "append-call", Category: Performance, Message: "Line 3: Consider using list comprehension for better performance.", Location: location},
	}, actual)
	assert.Empty(t, rule.CheckNode(syntax.AttributeAccess{Attribute: "extend", Location: location}, NewContext("", nil)))
	assert.Empty(t, rule.CheckNode(syntax.Identifier{Name: "append", Location: location}, NewContext("", nil)))
}

func TestSet(t *testing.T) {
	set := Default(0)
	var names []string
	for _, rule := range set.Rules() {
		names = append(names, rule.Name())
	}
	assert.Equal(t, []string{"banned-call-text", "append-in-loop-text", "long-identifier", "banned-call", "append-call"}, names)
	assert.Len(t, set.TextRules(), 2)
	assert.Len(t, set.TokenRules(), 1)
	assert.Len(t, set.NodeRules(), 2)

	reduced := set.Without("banned-call", "append-in-loop-text")
	assert.Len(t, reduced.Rules(), 3)
	assert.Nil(t, reduced.Lookup("banned-call"))
	assert.NotNil(t, reduced.Lookup("append-call"))
	assert.Len(t, set.Rules(), 5)
}

func TestCategory_Text(t *testing.T) {
	for _, category := range Categories {
		text, err := category.MarshalText()
		assert.NoError(t, err)
		var actual Category
		assert.NoError(t, actual.UnmarshalText(text))
		assert.Equal(t, category, actual)
	}
	_, err := ParseCategory("bugs")
	assert.Error(t, err)
}

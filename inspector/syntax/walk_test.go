package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/pylinter/inspector/syntax"
)

func TestWalk(t *testing.T) {
	// for item in items:
	//     result.append(item)
	tree := syntax.Module{
		Location: syntax.NewLocation(1, 0),
		Body: []syntax.Node{
			syntax.LoopStmt{
				Keyword:  "for",
				Location: syntax.NewLocation(1, 1),
				Header: []syntax.Node{
					syntax.Identifier{Name: "item", Location: syntax.NewLocation(1, 5)},
					syntax.Identifier{Name: "items", Location: syntax.NewLocation(1, 13)},
				},
				Body: []syntax.Node{
					syntax.CallExpr{
						Location: syntax.NewLocation(2, 5),
						Callee: syntax.AttributeAccess{
							Attribute: "append",
							Object:    syntax.Identifier{Name: "result", Location: syntax.NewLocation(2, 5)},
							Location:  syntax.NewLocation(2, 5),
						},
						Args: []syntax.Node{syntax.Identifier{Name: "item", Location: syntax.NewLocation(2, 19)}},
					},
				},
			},
		},
	}

	var visited []string
	syntax.Walk(tree, syntax.VisitorFunc(func(node syntax.Node) {
		label := node.Kind().String()
		if ident, ok := node.(syntax.Identifier); ok {
			label += ":" + ident.Name
		}
		visited = append(visited, label)
	}))

	assert.Equal(t, []string{
		"Module",
		"LoopStmt",
		"Identifier:item",
		"Identifier:items",
		"CallExpr",
		"AttributeAccess",
		"Identifier:result",
		"Identifier:item",
	}, visited)
	assert.Equal(t, len(visited), syntax.Count(tree))
}

func TestWalk_Nil(t *testing.T) {
	called := false
	syntax.Walk(nil, syntax.VisitorFunc(func(syntax.Node) { called = true }))
	assert.False(t, called)
	assert.Equal(t, 0, syntax.Count(nil))
}

func TestCallExpr_CalleeName(t *testing.T) {
	tests := []struct {
		description string
		call        syntax.CallExpr
		expect      string
	}{
		{description: "identifier", call: syntax.CallExpr{Callee: syntax.Identifier{Name: "eval"}}, expect: "eval"},
		{description: "attribute", call: syntax.CallExpr{Callee: syntax.AttributeAccess{Attribute: "append"}}, expect: "append"},
		{description: "other", call: syntax.CallExpr{Callee: syntax.Generic{Type: "subscript"}}, expect: ""},
		{description: "nil", call: syntax.CallExpr{}, expect: ""},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.call.CalleeName())
		})
	}
}

func TestLocation_String(t *testing.T) {
	assert.Equal(t, "3", syntax.NewLocation(3, 0).String())
	assert.Equal(t, "3:7", syntax.NewLocation(3, 7).String())
	assert.False(t, syntax.NewLocation(3, -1).HasColumn())
}

package syntax

// Visitor reacts to visited nodes, kinds it does not care about are ignored
type Visitor interface {
	Visit(node Node)
}

// VisitorFunc adapts a function to Visitor
type VisitorFunc func(node Node)

func (f VisitorFunc) Visit(node Node) {
	f(node)
}

// Walk traverses the tree depth-first in pre-order, visiting each node once before its children
func Walk(root Node, visitor Visitor) {
	if root == nil {
		return
	}
	visitor.Visit(root)
	for _, child := range root.Children() {
		Walk(child, visitor)
	}
}

// Count returns number of nodes reachable from root
func Count(root Node) int {
	count := 0
	Walk(root, VisitorFunc(func(Node) { count++ }))
	return count
}

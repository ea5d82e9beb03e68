package syntax

// NodeKind represents syntax node variant
type NodeKind int

const (
	ModuleKind NodeKind = iota
	CallKind
	AttributeKind
	LoopKind
	IdentifierKind
	GenericKind
)

func (k NodeKind) String() string {
	switch k {
	case ModuleKind:
		return "Module"
	case CallKind:
		return "CallExpr"
	case AttributeKind:
		return "AttributeAccess"
	case LoopKind:
		return "LoopStmt"
	case IdentifierKind:
		return "Identifier"
	case GenericKind:
		return "Generic"
	}
	return "Unknown"
}

// Node represents a syntax tree node.
// Nodes are values owned by their parent; no node references its parent.
type Node interface {
	Kind() NodeKind
	Pos() Location
	Children() []Node
}

// Module represents the root of a parsed file
type Module struct {
	Body     []Node
	Location Location
}

func (n Module) Kind() NodeKind   { return ModuleKind }
func (n Module) Pos() Location    { return n.Location }
func (n Module) Children() []Node { return n.Body }

// CallExpr represents a call; Callee is usually an Identifier or AttributeAccess
type CallExpr struct {
	Callee   Node
	Args     []Node
	Location Location
}

func (n CallExpr) Kind() NodeKind { return CallKind }
func (n CallExpr) Pos() Location  { return n.Location }

func (n CallExpr) Children() []Node {
	var result = make([]Node, 0, len(n.Args)+1)
	if n.Callee != nil {
		result = append(result, n.Callee)
	}
	return append(result, n.Args...)
}

// CalleeName returns callee identifier name or attribute name
func (n CallExpr) CalleeName() string {
	switch callee := n.Callee.(type) {
	case Identifier:
		return callee.Name
	case AttributeAccess:
		return callee.Attribute
	}
	return ""
}

// AttributeAccess represents object.attribute
type AttributeAccess struct {
	Object    Node
	Attribute string
	Location  Location
}

func (n AttributeAccess) Kind() NodeKind { return AttributeKind }
func (n AttributeAccess) Pos() Location  { return n.Location }

func (n AttributeAccess) Children() []Node {
	if n.Object == nil {
		return nil
	}
	return []Node{n.Object}
}

// LoopStmt represents for/while loop
type LoopStmt struct {
	Keyword  string // for or while
	Header   []Node // loop target and iterable, or while condition
	Body     []Node
	Else     []Node
	Location Location
}

func (n LoopStmt) Kind() NodeKind { return LoopKind }
func (n LoopStmt) Pos() Location  { return n.Location }

func (n LoopStmt) Children() []Node {
	var result = make([]Node, 0, len(n.Header)+len(n.Body)+len(n.Else))
	result = append(result, n.Header...)
	result = append(result, n.Body...)
	return append(result, n.Else...)
}

// Identifier represents a name reference
type Identifier struct {
	Name     string
	Location Location
}

func (n Identifier) Kind() NodeKind   { return IdentifierKind }
func (n Identifier) Pos() Location    { return n.Location }
func (n Identifier) Children() []Node { return nil }

// Generic represents any other construct, Type holds grammar node type
type Generic struct {
	Type     string
	Nodes    []Node
	Location Location
}

func (n Generic) Kind() NodeKind   { return GenericKind }
func (n Generic) Pos() Location    { return n.Location }
func (n Generic) Children() []Node { return n.Nodes }

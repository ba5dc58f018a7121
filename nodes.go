package arith

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression.
type node struct {
	kind nodeKind

	// name is the number text for nodeInt and nodeFloat, and the operator
	// symbol for nodeSym and nodeBinary.
	name string

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeInt   // integer literal
	nodeFloat // float literal
	nodeSym   // bare symbol that no pass consumed as an operator

	nodeBinary // name is the operator; evaluate left, then right
	nodePair   // left is the leading element, right is its operand
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeInt:
		return "Int"
	case nodeFloat:
		return "Float"
	case nodeSym:
		return "Sym"
	case nodeBinary:
		return "Binary"
	case nodePair:
		return "Pair"
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

// fmt writes the node, alternating round and square brackets for each level
// of nesting. Leaves are written without brackets.
func (n *node) fmt(b *strings.Builder, square bool) {
	switch n.kind {
	case nodeInt, nodeFloat, nodeSym:
		b.WriteString(n.name)
		return
	}
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeBinary:
		n.left.fmt(b, !square)
		b.WriteByte(' ')
		b.WriteString(n.name)
		b.WriteByte(' ')
		n.right.fmt(b, !square)
	case nodePair:
		n.left.fmt(b, !square)
		b.WriteByte(' ')
		n.right.fmt(b, !square)
	default:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		b.WriteString(n.kind.String())
		b.WriteByte('$')
	}
}

// Expr is a structured expression that can be evaluated with a context.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// String creates a string representation of the structured expression, with
// alternating round and square brackets grouping each operation.
func (e *Expr) String() string {
	if e == nil || e.n == nil {
		return "<nil>"
	}
	return e.n.String()
}

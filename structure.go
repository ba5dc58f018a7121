package arith

import (
	"strings"
)

// Operators lists the recognized operators, symbols and word aliases, from
// highest to lowest precedence tier.
var Operators = [...][]string{
	{"^", "pow"},
	{"*", "mul", "/", "div", "%", "mod"},
	{"+", "add", "-", "sub"},
}

// tier gets the precedence tier of an operator, 0 being most binding. If the
// symbol is not an operator, the result is -1.
func tier(op string) int {
	switch op {
	case "^", "pow":
		return 0
	case "*", "mul", "/", "div", "%", "mod":
		return 1
	case "+", "add", "-", "sub":
		return 2
	default:
		return -1
	}
}

// Structure converts a token sequence into an expression tree. Each
// precedence tier is resolved in a full left-to-right pass before the next,
// so all operators, including ^, are left-associative. A final pass joins
// any remaining symbol between two operands as an operator, leaving unknown
// operators to be rejected by evaluation. A sequence that reduces to two
// elements, such as a leading - before a group, is kept as a pair for the
// evaluator to treat as negation.
func Structure(seq Seq) (*Expr, error) {
	n, err := structure(seq)
	if err != nil {
		return nil, err
	}
	return &Expr{n: n}, nil
}

func structure(seq Seq) (*node, error) {
	if len(seq) == 0 {
		return nil, &Error{Kind: StructuringError, Msg: "empty token sequence"}
	}
	items := make([]*node, 0, len(seq))
	for _, it := range seq {
		n, err := leaf(it)
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	if len(items) == 1 {
		return items[0], nil
	}
	for k := range Operators {
		items = reduce(items, func(op string) bool { return tier(op) == k })
	}
	items = reduce(items, func(string) bool { return true })
	switch len(items) {
	case 1:
		return items[0], nil
	case 2:
		return &node{kind: nodePair, left: items[0], right: items[1]}, nil
	default:
		return nil, &Error{Kind: StructuringError, Col: firstPos(seq), Msg: "unexpected elements remain: " + fmtnodes(items) + " from " + seq.String()}
	}
}

// leaf converts one sequence item to a node, structuring groups.
func leaf(it Item) (*node, error) {
	if it.IsGroup() {
		return structure(it.Group)
	}
	switch it.Token.Kind {
	case TokenInt:
		return &node{kind: nodeInt, name: it.Token.Text}, nil
	case TokenFloat:
		return &node{kind: nodeFloat, name: it.Token.Text}, nil
	case TokenSymbol:
		return &node{kind: nodeSym, name: it.Token.Text}, nil
	default:
		return nil, &Error{Kind: StructuringError, Col: it.Token.Pos, Msg: "invalid token " + it.Token.String()}
	}
}

// reduce makes one left-to-right pass over items, joining each symbol
// selected by match that has elements on both sides into a binary node with
// the previous output and the next input.
func reduce(items []*node, match func(op string) bool) []*node {
	out := make([]*node, 0, len(items))
	for i := 0; i < len(items); i++ {
		n := items[i]
		if i > 0 && i < len(items)-1 && n.kind == nodeSym && match(n.name) {
			l := out[len(out)-1]
			out[len(out)-1] = &node{kind: nodeBinary, name: n.name, left: l, right: items[i+1]}
			i++
			continue
		}
		out = append(out, n)
	}
	return out
}

// firstPos finds the column of the first token in a sequence.
func firstPos(seq Seq) int {
	for _, it := range seq {
		if it.IsGroup() {
			if p := firstPos(it.Group); p > 0 {
				return p
			}
			continue
		}
		return it.Token.Pos
	}
	return 0
}

func fmtnodes(items []*node) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, n := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		n.fmt(&b, false)
	}
	b.WriteByte(']')
	return b.String()
}

package arith

import (
	"strconv"
	"strings"
	"unicode"
)

// Item is one element of a token sequence. It is either a token or, when
// Group is non-nil, the contents of a parenthesized subexpression.
type Item struct {
	Token Token
	Group Seq
}

// IsGroup reports whether the item is a parenthesized subexpression.
func (it Item) IsGroup() bool {
	return it.Group != nil
}

func (it Item) String() string {
	if it.IsGroup() {
		return it.Group.String()
	}
	return it.Token.Text
}

// Seq is an ordered token sequence in source order. Parenthesized
// subexpressions appear as nested sequences.
type Seq []Item

// String formats the sequence with each group in brackets, e.g.
// "[-5 + [2 * 3]]".
func (s Seq) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, it := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(it.String())
	}
	b.WriteByte(']')
	return b.String()
}

// Tokens returns the flat tokens of the sequence in source order, descending
// into groups.
func (s Seq) Tokens() []Token {
	var r []Token
	for _, it := range s {
		if it.IsGroup() {
			r = append(r, it.Group.Tokens()...)
			continue
		}
		r = append(r, it.Token)
	}
	return r
}

// Tokenize checks the parentheses in src and splits it into a token
// sequence.
func Tokenize(src string) (Seq, error) {
	return tokenize([]rune(src), 0)
}

// tokenize is Tokenize with an optional limit on paren nesting. A limit of
// zero means no limit.
func tokenize(src []rune, maxDepth int) (Seq, error) {
	depth, err := checkBalance(src)
	if err != nil {
		return nil, err
	}
	if maxDepth > 0 && depth > maxDepth {
		return nil, &Error{
			Kind: NestingTooDeep,
			Msg:  "depth " + strconv.Itoa(depth) + " exceeds limit " + strconv.Itoa(maxDepth),
		}
	}
	return split(src, 0, len(src))
}

// split parses src[lo:hi] into a token sequence, recursing into
// parenthesized groups. src[lo:hi] must have balanced parentheses.
func split(src []rune, lo, hi int) (Seq, error) {
	var seq Seq
	i := lo
	for i < hi {
		for i < hi && unicode.IsSpace(src[i]) {
			i++
		}
		if i >= hi {
			break
		}
		switch src[i] {
		case '(':
			end, err := matchParen(src, i)
			if err != nil {
				return nil, err
			}
			sub, err := split(src, i+1, end)
			if err != nil {
				return nil, err
			}
			seq = append(seq, Item{Group: sub})
			i = end + 1
		case ')':
			return nil, &Error{Kind: Internal, Col: i + 1, Msg: "unexpected close paren while splitting"}
		default:
			tok, next, err := nextToken(src, i)
			if err != nil {
				return nil, err
			}
			seq = append(seq, Item{Token: tok})
			i = next
		}
	}
	if len(seq) == 0 {
		if lo == 0 {
			return nil, &Error{Kind: EmptyExpression, Msg: "no tokens in input"}
		}
		return nil, &Error{Kind: EmptyExpression, Col: lo, Msg: "nothing inside parentheses"}
	}
	return seq, nil
}

// Parse tokenizes and structures an expression so it can be evaluated with
// a context.
func Parse(src string) (*Expr, error) {
	seq, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return Structure(seq)
}

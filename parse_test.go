package arith

import (
	"errors"
	"testing"
)

func errKind(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindNone
}

func TestCheckBalance(t *testing.T) {
	cases := []struct {
		src   string
		depth int
		err   ErrorKind
		col   int
	}{
		{"", 0, KindNone, 0},
		{"1+2", 0, KindNone, 0},
		{"()", 1, KindNone, 0},
		{"(())()", 2, KindNone, 0},
		{"((1)+(2*(3)))", 3, KindNone, 0},
		{"(", 0, UnbalancedParentheses, 1},
		{")", 0, UnbalancedParentheses, 1},
		{"(1+2", 0, UnbalancedParentheses, 1},
		{"(1))(", 0, UnbalancedParentheses, 4},
		{"((1)", 0, UnbalancedParentheses, 1},
		{"1+(2", 0, UnbalancedParentheses, 3},
	}
	for _, c := range cases {
		depth, err := checkBalance([]rune(c.src))
		if k := errKind(err); k != c.err {
			t.Errorf("%q: want %v, got %v", c.src, c.err, err)
			continue
		}
		if err != nil {
			if p := err.(InputError).Pos(); p != c.col {
				t.Errorf("%q: want error at column %d, got %d", c.src, c.col, p)
			}
			continue
		}
		if depth != c.depth {
			t.Errorf("%q: want depth %d, got %d", c.src, c.depth, depth)
		}
	}
}

func TestMatchParen(t *testing.T) {
	cases := []struct {
		src   string
		start int
		end   int
		err   ErrorKind
	}{
		{"(1+2)", 0, 4, KindNone},
		{"((1)(2))", 0, 7, KindNone},
		{"((1)(2))", 1, 3, KindNone},
		{"((1)(2))", 4, 6, KindNone},
		{"1*(2)", 2, 4, KindNone},
		{"(1", 0, 0, UnbalancedParentheses},
		{"((1)", 0, 0, UnbalancedParentheses},
		{"1", 0, 0, Internal},
		{"()", 1, 0, Internal},
		{"()", 5, 0, Internal},
	}
	for _, c := range cases {
		end, err := matchParen([]rune(c.src), c.start)
		if k := errKind(err); k != c.err {
			t.Errorf("%q at %d: want %v, got %v", c.src, c.start, c.err, err)
			continue
		}
		if err == nil && end != c.end {
			t.Errorf("%q at %d: want %d, got %d", c.src, c.start, c.end, end)
		}
	}
}

func TestTokenize(t *testing.T) {
	cases := []struct {
		src string
		seq string
		err ErrorKind
	}{
		{"1", "[1]", KindNone},
		{"1 + 2", "[1 + 2]", KindNone},
		{"  1+2  ", "[1 + 2]", KindNone},
		{"(2+3)*4", "[[2 + 3] * 4]", KindNone},
		{"-(3+4)", "[- [3 + 4]]", KindNone},
		{"-5+2", "[-5 + 2]", KindNone},
		{"((1))", "[[[1]]]", KindNone},
		{"5 mul 2", "[5 mul 2]", KindNone},
		{"2 $ 3", "[2 $ 3]", KindNone},
		{"3*-2", "[3 *- 2]", KindNone},
		{"3*(-2)", "[3 * [-2]]", KindNone},
		{"1.5\t/\n.5", "[1.5 / .5]", KindNone},
		{"", "", EmptyExpression},
		{"   ", "", EmptyExpression},
		{"()", "", EmptyExpression},
		{"(1)( )", "", EmptyExpression},
		{"1..5+2", "", InvalidNumberFormat},
		{"(1 + .)", "", InvalidNumberFormat},
		{"(", "", UnbalancedParentheses},
		{")", "", UnbalancedParentheses},
		{"(1+2", "", UnbalancedParentheses},
		{"1+2)", "", UnbalancedParentheses},
	}
	for _, c := range cases {
		seq, err := Tokenize(c.src)
		if k := errKind(err); k != c.err {
			t.Errorf("%q: want %v, got %v", c.src, c.err, err)
			continue
		}
		if err != nil {
			continue
		}
		if s := seq.String(); s != c.seq {
			t.Errorf("%q: want %s, got %s", c.src, c.seq, s)
		}
	}
}

func TestTokenizePositions(t *testing.T) {
	seq, err := Tokenize("(2+3)*4")
	if err != nil {
		t.Fatal(err)
	}
	want := []Token{
		{Text: "2", Kind: TokenInt, Pos: 2},
		{Text: "+", Kind: TokenSymbol, Pos: 3},
		{Text: "3", Kind: TokenInt, Pos: 4},
		{Text: "*", Kind: TokenSymbol, Pos: 6},
		{Text: "4", Kind: TokenInt, Pos: 7},
	}
	got := seq.Tokens()
	if len(got) != len(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: want %v, got %v", i, want[i], got[i])
		}
	}
	if !seq[0].IsGroup() || seq[1].IsGroup() {
		t.Errorf("wrong grouping: %v", seq)
	}
}

func TestTokenizeMaxDepth(t *testing.T) {
	if _, err := tokenize([]rune("((1))"), 2); err != nil {
		t.Errorf("depth 2 under limit 2: %v", err)
	}
	if _, err := tokenize([]rune("((1))"), 1); errKind(err) != NestingTooDeep {
		t.Errorf("depth 2 over limit 1: want NestingTooDeep, got %v", err)
	}
	if _, err := tokenize([]rune("((((((1))))))"), 0); err != nil {
		t.Errorf("no limit: %v", err)
	}
}

func TestStructure(t *testing.T) {
	cases := []struct {
		src  string
		tree string
		err  ErrorKind
	}{
		{"7", "7", KindNone},
		{"(7)", "7", KindNone},
		{"2+3*4", "(2 + [3 * 4])", KindNone},
		{"2*3+4", "([2 * 3] + 4)", KindNone},
		{"2^3^2", "([2 ^ 3] ^ 2)", KindNone},
		{"2 pow 3 mul 4", "([2 pow 3] mul 4)", KindNone},
		{"(2+3)*4", "([2 + 3] * 4)", KindNone},
		{"-(3+4)", "(- [3 + 4])", KindNone},
		{"-(1)+2", "(- [1 + 2])", KindNone},
		{"-5+2", "(-5 + 2)", KindNone},
		{"1 - 2 - 3", "([1 - 2] - 3)", KindNone},
		{"8 / 4 % 3 * 2", "([(8 / 4) % 3] * 2)", KindNone},
		{"1 + 2 ^ 3 * 4", "(1 + [(2 ^ 3) * 4])", KindNone},
		{"1 foo 2", "(1 foo 2)", KindNone},
		{"2 + 3 foo 4 * 5", "([2 + 3] foo [4 * 5])", KindNone},
		{"3*-2", "(3 *- 2)", KindNone},
		{"2 3", "(2 3)", KindNone},
		{"2 * 3 +", "([2 * 3] +)", KindNone},
		{"+", "+", KindNone},
		{"1 2 3", "", StructuringError},
		{"(1 2 3) + 4", "", StructuringError},
	}
	for _, c := range cases {
		e, err := Parse(c.src)
		if k := errKind(err); k != c.err {
			t.Errorf("%q: want %v, got %v", c.src, c.err, err)
			continue
		}
		if err != nil {
			continue
		}
		if s := e.String(); s != c.tree {
			t.Errorf("%q: want %s, got %s", c.src, c.tree, s)
		}
	}
}

func TestStructureSingle(t *testing.T) {
	tok := Token{Text: "5", Kind: TokenInt, Pos: 1}
	e, err := Structure(Seq{{Token: tok}})
	if err != nil {
		t.Fatal(err)
	}
	if e.n.kind != nodeInt || e.n.name != "5" {
		t.Errorf("single token changed: %v", e)
	}
	sym := Token{Text: "mul", Kind: TokenSymbol, Pos: 1}
	e, err = Structure(Seq{{Token: sym}})
	if err != nil {
		t.Fatal(err)
	}
	if e.n.kind != nodeSym || e.n.name != "mul" {
		t.Errorf("single symbol changed: %v", e)
	}
}

func TestStructureEmpty(t *testing.T) {
	if _, err := Structure(nil); errKind(err) != StructuringError {
		t.Errorf("want StructuringError, got %v", err)
	}
	if _, err := Structure(Seq{{Token: Token{Text: "?", Pos: 1}}}); errKind(err) != StructuringError {
		t.Errorf("invalid token kind: want StructuringError, got %v", err)
	}
}

package arith_test

import (
	"errors"
	"fmt"

	"github.com/zephyrtronium/arith"
)

func ExampleEvaluate() {
	fmt.Println(arith.Evaluate("2+3*4"))
	fmt.Println(arith.Evaluate("2^3^2"))
	fmt.Println(arith.Evaluate("-(3+4)"))
	fmt.Println(arith.Evaluate("10 div 4"))
	fmt.Println(arith.Evaluate("10/0"))

	// Output:
	// 14
	// 64
	// -7
	// 2.5
	// Error: division by zero: 10 / 0
}

func ExampleContext_Parse() {
	ctx := arith.NewContext()
	e, _ := ctx.Parse("1 + 2 * 3 - 4")
	fmt.Println(e)
	v, _ := ctx.Eval(e)
	fmt.Println(v)

	// Output:
	// ([1 + (2 * 3)] - 4)
	// 3
}

func ExampleEvalString() {
	_, err := arith.EvalString("(1+2")
	fmt.Println(errors.Is(err, arith.ErrUnbalancedParentheses))
	fmt.Println(err)

	// Output:
	// true
	// column 1: unbalanced parentheses: open paren with no close paren
}

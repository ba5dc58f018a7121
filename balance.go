package arith

// checkBalance verifies that the parentheses in src are well formed and
// returns the maximum nesting depth.
func checkBalance(src []rune) (int, error) {
	// opens holds the columns of currently unclosed open parens.
	var opens []int
	deepest := 0
	for i, r := range src {
		switch r {
		case '(':
			opens = append(opens, i+1)
			if len(opens) > deepest {
				deepest = len(opens)
			}
		case ')':
			if len(opens) == 0 {
				return 0, &Error{Kind: UnbalancedParentheses, Col: i + 1, Msg: "close paren with no open paren"}
			}
			opens = opens[:len(opens)-1]
		}
	}
	if len(opens) != 0 {
		return 0, &Error{Kind: UnbalancedParentheses, Col: opens[len(opens)-1], Msg: "open paren with no close paren"}
	}
	return deepest, nil
}

// matchParen returns the index of the close paren matching the open paren at
// src[start].
func matchParen(src []rune, start int) (int, error) {
	if start < 0 || start >= len(src) || src[start] != '(' {
		return 0, &Error{Kind: Internal, Col: start + 1, Msg: "paren match does not start at an open paren"}
	}
	depth := 1
	for i := start + 1; i < len(src); i++ {
		switch src[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, &Error{Kind: UnbalancedParentheses, Col: start + 1, Msg: "open paren with no close paren"}
}

// Package arith evaluates arithmetic expressions given as text.
//
// Expressions use integers, floats written with a decimal point, the binary
// operators + - * / % ^ and their word aliases add sub mul div mod pow, and
// parentheses. "5 mul (2 + 1)" is 15.
//
// Precedence is resolved in three full left-to-right passes: first ^, then
// * / %, then + -. Every operator is therefore left-associative, so "2^3^2"
// is 64. A - at the start of the input or right after an operator or open
// paren is part of the number that follows it, so "-5+2" is -3; before a
// paren it negates the group, so "-(3+4)" is -7.
//
// Integers are arbitrary precision. Division always gives a float, and any
// operation mixing an integer with a float gives a float. Floats are computed
// to the context's precision, 53 bits by default. % is the floored remainder,
// which has the sign of the divisor.
//
// Evaluate never panics. Every failure is reported as an *Error with a Kind
// such as DivisionByZero or UnbalancedParentheses.
package arith

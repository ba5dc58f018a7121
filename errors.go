package arith

import (
	"errors"
	"strconv"
)

// ErrorKind classifies a failure from any stage of evaluation.
type ErrorKind int8

const (
	KindNone ErrorKind = iota

	// UnbalancedParentheses is an unmatched open or close parenthesis.
	UnbalancedParentheses
	// InvalidNumberFormat is a number with more than one decimal point, or
	// one that is only a point.
	InvalidNumberFormat
	// UnexpectedCharacter is a position where no token can start.
	UnexpectedCharacter
	// EmptyExpression is an input or parenthesized group with no tokens.
	EmptyExpression
	// StructuringError is a token sequence that does not reduce to a tree.
	StructuringError
	// DivisionByZero is a / or % with a zero divisor, or zero raised to a
	// negative power.
	DivisionByZero
	// InvalidOperator is a symbol in operator position that is not one of
	// the twelve operators.
	InvalidOperator
	// TypeMismatch is a symbol where a number is required.
	TypeMismatch
	// MalformedAst is a tree shape the evaluator does not understand.
	MalformedAst
	// DomainError is an operation outside its domain, e.g. a negative base
	// raised to a fractional power.
	DomainError
	// NestingTooDeep is parenthesis nesting beyond the context's MaxDepth.
	NestingTooDeep
	// Internal is a violated precondition or a recovered panic.
	Internal
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "no error"
	case UnbalancedParentheses:
		return "unbalanced parentheses"
	case InvalidNumberFormat:
		return "invalid number format"
	case UnexpectedCharacter:
		return "unexpected character"
	case EmptyExpression:
		return "empty expression"
	case StructuringError:
		return "structuring error"
	case DivisionByZero:
		return "division by zero"
	case InvalidOperator:
		return "invalid operator"
	case TypeMismatch:
		return "type mismatch"
	case MalformedAst:
		return "malformed AST"
	case DomainError:
		return "domain error"
	case NestingTooDeep:
		return "nesting too deep"
	case Internal:
		return "internal error"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Error is the error type returned by every stage. It implements InputError.
type Error struct {
	// Kind classifies the error.
	Kind ErrorKind
	// Col is the 1-based rune column in the input where the error was found,
	// or 0 for errors found during evaluation.
	Col int
	// Msg describes the error.
	Msg string
}

func (err *Error) Error() string {
	s := err.Kind.String()
	if err.Msg != "" {
		s += ": " + err.Msg
	}
	if err.Col > 0 {
		return errpos(err.Col, s)
	}
	return s
}

func (err *Error) Pos() int {
	return err.Col
}

// Is reports whether target is an *Error of the same kind, so that the
// Err* sentinels work with errors.Is.
func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == err.Kind
}

// Sentinels for use with errors.Is.
var (
	ErrUnbalancedParentheses = &Error{Kind: UnbalancedParentheses}
	ErrInvalidNumberFormat   = &Error{Kind: InvalidNumberFormat}
	ErrUnexpectedCharacter   = &Error{Kind: UnexpectedCharacter}
	ErrEmptyExpression       = &Error{Kind: EmptyExpression}
	ErrStructuring           = &Error{Kind: StructuringError}
	ErrDivisionByZero        = &Error{Kind: DivisionByZero}
	ErrInvalidOperator       = &Error{Kind: InvalidOperator}
	ErrTypeMismatch          = &Error{Kind: TypeMismatch}
	ErrMalformedAst          = &Error{Kind: MalformedAst}
	ErrDomain                = &Error{Kind: DomainError}
	ErrNestingTooDeep        = &Error{Kind: NestingTooDeep}
	ErrInternal              = &Error{Kind: Internal}
)

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return "column " + strconv.Itoa(pos) + ": " + msg
}

// failure converts any error into an *Error, wrapping foreign errors as
// Internal.
func failure(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: Internal, Msg: err.Error()}
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error, or 0 if the
	// error has no position.
	Pos() int
}

var _ InputError = (*Error)(nil)

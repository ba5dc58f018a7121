package arith

import (
	"strconv"
	"strings"
	"unicode"
)

// Token is a single lexical unit of an expression.
type Token struct {
	// Text is the token exactly as it appears in the input.
	Text string
	// Kind is the token type.
	Kind TokenKind
	// Pos is the 1-based rune column of the token's first rune.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the lexical type of a token.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenInt is a number without a decimal point.
	TokenInt
	// TokenFloat is a number with a decimal point.
	TokenFloat
	// TokenSymbol is a run of characters that are not digits, whitespace, or
	// parentheses. Operators, both symbolic and word aliases, are symbols.
	TokenSymbol
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenInt:
		return "Int"
	case TokenFloat:
		return "Float"
	case TokenSymbol:
		return "Symbol"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// IsNumber reports whether the token is an Int or Float.
func (t Token) IsNumber() bool {
	return t.Kind == TokenInt || t.Kind == TokenFloat
}

// unaryPrefix contains the runes after which a - begins a negative number.
const unaryPrefix = "+-*/%^("

func isNumRune(r rune) bool {
	return '0' <= r && r <= '9' || r == '.'
}

// isDelim reports whether r ends a symbol.
func isDelim(r rune) bool {
	return r == '(' || r == ')' || unicode.IsSpace(r) || unicode.IsDigit(r)
}

// nextToken scans exactly one token starting at src[start]. The result
// includes the index of the first rune after the token.
func nextToken(src []rune, start int) (Token, int, error) {
	if len(src) == 0 {
		return Token{}, start, &Error{Kind: Internal, Msg: "token requested from empty input"}
	}
	if start < 0 || start >= len(src) {
		return Token{}, start, &Error{Kind: Internal, Col: start + 1, Msg: "token requested past end of input"}
	}
	col := start + 1
	r := src[start]
	// A - begins a number at the start of input or immediately after an
	// operator or open paren, but only if a digit or point follows it.
	// There is no whitespace skipping to find the previous rune.
	neg := r == '-' && (start == 0 || strings.ContainsRune(unaryPrefix, src[start-1]))
	if neg && (start+1 >= len(src) || !isNumRune(src[start+1])) {
		neg = false
	}
	if neg || isNumRune(r) {
		i := start
		if neg {
			i++
		}
		dot := false
		for ; i < len(src) && isNumRune(src[i]); i++ {
			if src[i] != '.' {
				continue
			}
			if dot {
				return Token{}, start, &Error{
					Kind: InvalidNumberFormat,
					Col:  col,
					Msg:  "multiple '.' in " + strconv.Quote(string(src[start:i+1])),
				}
			}
			dot = true
		}
		text := string(src[start:i])
		if text == "." || text == "-." {
			return Token{}, start, &Error{Kind: InvalidNumberFormat, Col: col, Msg: "standalone " + strconv.Quote(text)}
		}
		tok := Token{Text: text, Kind: TokenInt, Pos: col}
		if dot {
			tok.Kind = TokenFloat
		}
		return tok, i, nil
	}

	i := start
	for i < len(src) && !isDelim(src[i]) {
		i++
	}
	if i == start {
		return Token{}, start, &Error{Kind: UnexpectedCharacter, Col: col, Msg: strconv.QuoteRune(r)}
	}
	return Token{Text: string(src[start:i]), Kind: TokenSymbol, Pos: col}, i, nil
}

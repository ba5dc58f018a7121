package arith

import (
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// maxPowBits bounds the estimated size in bits of an integer power.
const maxPowBits = 1 << 24

// binary applies an operator to two evaluated operands.
func (ctx *Context) binary(op string, a, b Value) (Value, error) {
	switch op {
	case "+", "add":
		return ctx.add(a, b), nil
	case "-", "sub":
		return ctx.sub(a, b), nil
	case "*", "mul":
		return ctx.mul(a, b), nil
	case "/", "div":
		return ctx.quo(a, b)
	case "%", "mod":
		return ctx.mod(a, b)
	case "^", "pow":
		return ctx.pow(a, b)
	default:
		return Value{}, &Error{Kind: InvalidOperator, Msg: strconv.Quote(op)}
	}
}

func (ctx *Context) newFloat() *big.Float {
	return new(big.Float).SetPrec(ctx.prec)
}

// float converts v to a new float at the context's precision.
func (ctx *Context) float(v Value) *big.Float {
	if v.f != nil {
		return ctx.newFloat().Set(v.f)
	}
	return ctx.newFloat().SetInt(v.i)
}

func bothInt(a, b Value) bool {
	return a.i != nil && b.i != nil
}

func (ctx *Context) add(a, b Value) Value {
	if bothInt(a, b) {
		return Value{i: new(big.Int).Add(a.i, b.i)}
	}
	return Value{f: ctx.newFloat().Add(ctx.float(a), ctx.float(b))}
}

func (ctx *Context) sub(a, b Value) Value {
	if bothInt(a, b) {
		return Value{i: new(big.Int).Sub(a.i, b.i)}
	}
	return Value{f: ctx.newFloat().Sub(ctx.float(a), ctx.float(b))}
}

func (ctx *Context) mul(a, b Value) Value {
	if bothInt(a, b) {
		return Value{i: new(big.Int).Mul(a.i, b.i)}
	}
	return Value{f: ctx.newFloat().Mul(ctx.float(a), ctx.float(b))}
}

// quo is true division. The result is always a float.
func (ctx *Context) quo(a, b Value) (Value, error) {
	if b.Sign() == 0 {
		return Value{}, &Error{Kind: DivisionByZero, Msg: a.String() + " / " + b.String()}
	}
	if bothInt(a, b) {
		// Divide exactly, then round once.
		r := new(big.Rat).SetFrac(a.i, b.i)
		return Value{f: ctx.newFloat().SetRat(r)}, nil
	}
	return Value{f: ctx.newFloat().Quo(ctx.float(a), ctx.float(b))}, nil
}

// mod is the floored remainder: the result has the sign of the divisor.
func (ctx *Context) mod(a, b Value) (Value, error) {
	if b.Sign() == 0 {
		return Value{}, &Error{Kind: DivisionByZero, Msg: a.String() + " % " + b.String()}
	}
	if bothInt(a, b) {
		// big.Int.Mod is Euclidean, so the result is in [0, |b|).
		m := new(big.Int).Mod(a.i, b.i)
		if b.i.Sign() < 0 && m.Sign() != 0 {
			m.Add(m, b.i)
		}
		return Value{i: m}, nil
	}
	x, y := ctx.float(a), ctx.float(b)
	if x.IsInf() || y.IsInf() {
		return Value{}, &Error{Kind: DomainError, Msg: "infinite operand to %"}
	}
	// Finite floats are exact rationals, so the remainder is exact until the
	// final rounding.
	xr, _ := x.Rat(nil)
	yr, _ := y.Rat(nil)
	q := new(big.Rat).Quo(xr, yr)
	// Rat denominators are positive, so Euclidean division floors.
	fl := new(big.Int).Div(q.Num(), q.Denom())
	r := new(big.Rat).Mul(yr, new(big.Rat).SetInt(fl))
	r.Sub(xr, r)
	return Value{f: ctx.newFloat().SetRat(r)}, nil
}

// pow raises a to the power b. An integer raised to a non-negative integer
// is an integer; every other combination is a float.
func (ctx *Context) pow(a, b Value) (Value, error) {
	if bothInt(a, b) && b.i.Sign() >= 0 {
		return powInt(a.i, b.i)
	}
	return ctx.powFloat(ctx.float(a), ctx.float(b))
}

func powInt(x, y *big.Int) (Value, error) {
	if x.CmpAbs(big.NewInt(1)) > 0 {
		bits := int64(x.BitLen() - 1)
		if !y.IsInt64() || y.Int64() > maxPowBits/bits {
			return Value{}, &Error{Kind: DomainError, Msg: x.String() + " ^ " + y.String() + " is too large"}
		}
	}
	return Value{i: new(big.Int).Exp(x, y, nil)}, nil
}

// powFloat computes x^y. x and y must not be used by the caller afterward.
func (ctx *Context) powFloat(x, y *big.Float) (Value, error) {
	switch {
	case y.Sign() == 0:
		return Value{f: ctx.newFloat().SetInt64(1)}, nil
	case x.IsInf() || y.IsInf():
		return Value{}, &Error{Kind: DomainError, Msg: "infinite operand to ^"}
	case x.Sign() == 0:
		if y.Sign() < 0 {
			return Value{}, &Error{Kind: DivisionByZero, Msg: "0 raised to negative power " + fmtfloat(y)}
		}
		return Value{f: ctx.newFloat()}, nil
	}
	odd := false
	if x.Signbit() {
		if !y.IsInt() {
			return Value{}, &Error{Kind: DomainError, Msg: "negative base " + fmtfloat(x) + " with fractional exponent " + fmtfloat(y)}
		}
		k, _ := y.Int(nil)
		odd = k.Bit(0) == 1
		x.Neg(x)
	}
	// Pow may return a result other than its receiver, at extra precision.
	z := ctx.newFloat().Set(bigfloat.Pow(ctx.newFloat(), x, y))
	if odd {
		z.Neg(z)
	}
	return Value{f: z}, nil
}

// neg negates v.
func neg(v Value) Value {
	if v.i != nil {
		return Value{i: new(big.Int).Neg(v.i)}
	}
	return Value{f: new(big.Float).Neg(v.f)}
}

package arith

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Value is the result of evaluating an expression: either an arbitrary
// precision integer or a floating-point number. The zero Value is invalid.
type Value struct {
	i *big.Int
	f *big.Float
}

// IntValue creates an integer Value holding a copy of x.
func IntValue(x *big.Int) Value {
	return Value{i: new(big.Int).Set(x)}
}

// FloatValue creates a float Value holding a copy of x.
func FloatValue(x *big.Float) Value {
	return Value{f: new(big.Float).Copy(x)}
}

// IsInt reports whether v is an integer.
func (v Value) IsInt() bool {
	return v.i != nil
}

// IsFloat reports whether v is a float.
func (v Value) IsFloat() bool {
	return v.f != nil
}

// Valid reports whether v holds a number.
func (v Value) Valid() bool {
	return v.i != nil || v.f != nil
}

// Int returns a copy of an integer value, or nil if v is not an integer.
func (v Value) Int() *big.Int {
	if v.i == nil {
		return nil
	}
	return new(big.Int).Set(v.i)
}

// Float returns a copy of v as a float. Integers are converted exactly.
// The result is nil if v is invalid.
func (v Value) Float() *big.Float {
	switch {
	case v.f != nil:
		return new(big.Float).Copy(v.f)
	case v.i != nil:
		return new(big.Float).SetInt(v.i)
	default:
		return nil
	}
}

// Float64 returns the nearest float64 to v.
func (v Value) Float64() float64 {
	f := v.Float()
	if f == nil {
		return 0
	}
	r, _ := f.Float64()
	return r
}

// Sign returns -1, 0, or +1 according to the sign of v.
func (v Value) Sign() int {
	switch {
	case v.i != nil:
		return v.i.Sign()
	case v.f != nil:
		return v.f.Sign()
	default:
		return 0
	}
}

// Equal reports whether two values have the same type and numeric value.
func (v Value) Equal(w Value) bool {
	switch {
	case v.i != nil && w.i != nil:
		return v.i.Cmp(w.i) == 0
	case v.f != nil && w.f != nil:
		return v.f.Cmp(w.f) == 0
	default:
		return false
	}
}

// String formats v. Integers are written in decimal. Floats are written with
// the shortest digits that round trip at their precision, always with a
// decimal point or exponent, switching to exponent form below 1e-4 or at
// 1e16 and above.
func (v Value) String() string {
	switch {
	case v.i != nil:
		return v.i.String()
	case v.f != nil:
		return fmtfloat(v.f)
	default:
		return "<invalid>"
	}
}

// Format implements fmt.Formatter. The %v and %s verbs use String; other
// verbs are passed to the underlying *big.Int or *big.Float.
func (v Value) Format(s fmt.State, verb rune) {
	switch {
	case verb == 'v' || verb == 's' || !v.Valid():
		fmt.Fprint(s, v.String())
	case v.i != nil:
		v.i.Format(s, verb)
	default:
		v.f.Format(s, verb)
	}
}

func fmtfloat(f *big.Float) string {
	if f.IsInf() {
		if f.Signbit() {
			return "-inf"
		}
		return "inf"
	}
	if f.Sign() == 0 {
		if f.Signbit() {
			return "-0.0"
		}
		return "0.0"
	}
	e := f.Text('e', -1)
	k := strings.LastIndexByte(e, 'e')
	exp, _ := strconv.Atoi(e[k+1:])
	if exp < -4 || exp >= 16 {
		return e
	}
	s := f.Text('f', -1)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

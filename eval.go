package arith

import (
	"fmt"
	"log/slog"
	"math/big"
	"strconv"
)

// DefaultPrec is the default precision of float calculations, matching an
// IEEE 754 double.
const DefaultPrec = 53

// Context is a context for evaluating expressions. A Context holds only
// configuration, so it is safe to use concurrently.
type Context struct {
	prec     uint
	maxDepth int
	log      *slog.Logger
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	precopt  uint
	depthopt int
	logopt   struct{ l *slog.Logger }
)

func (precopt) ctxOption()  {}
func (depthopt) ctxOption() {}
func (logopt) ctxOption()   {}

// Prec sets the precision in bits of float calculations. A precision of zero
// selects DefaultPrec.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// MaxDepth limits the nesting depth of parentheses. Deeper inputs fail with
// NestingTooDeep before any tokenizing. A limit of zero or less means no
// limit.
func MaxDepth(depth int) ContextOption {
	return depthopt(depth)
}

// Logger sets a logger to receive debug records for each stage of
// evaluation. A nil logger disables logging.
func Logger(l *slog.Logger) ContextOption {
	return logopt{l}
}

// NewContext creates a new evaluation context. If no precision is given, the
// default is DefaultPrec.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{prec: DefaultPrec}
	return ctx.Clone(opts...)
}

// Clone creates a copy of a context and applies options to it.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := *ctx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case precopt:
			n.prec = uint(opt)
			if n.prec == 0 {
				n.prec = DefaultPrec
			}
			if n.prec > big.MaxPrec {
				n.prec = big.MaxPrec
			}
		case depthopt:
			n.maxDepth = int(opt)
		case logopt:
			n.log = opt.l
		default:
			panic("arith: unknown option type")
		}
	}
	return &n
}

// Prec returns the precision to which floats are computed in the context.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// MaxDepth returns the context's paren nesting limit, or 0 if unlimited.
func (ctx *Context) MaxDepth() int {
	return ctx.maxDepth
}

func (ctx *Context) debug(msg string, args ...any) {
	if ctx.log != nil {
		ctx.log.Debug(msg, args...)
	}
}

// Tokenize splits src into a token sequence, applying the context's nesting
// limit.
func (ctx *Context) Tokenize(src string) (Seq, error) {
	seq, err := tokenize([]rune(src), ctx.maxDepth)
	if err != nil {
		ctx.debug("tokenize failed", "expr", src, "err", err)
		return nil, err
	}
	ctx.debug("tokenized", "expr", src, "tokens", seq)
	return seq, nil
}

// Parse tokenizes and structures src, applying the context's nesting limit.
func (ctx *Context) Parse(src string) (*Expr, error) {
	seq, err := ctx.Tokenize(src)
	if err != nil {
		return nil, err
	}
	e, err := Structure(seq)
	if err != nil {
		ctx.debug("structure failed", "expr", src, "err", err)
		return nil, err
	}
	ctx.debug("structured", "expr", src, "tree", e)
	return e, nil
}

// Eval evaluates a structured expression.
func (ctx *Context) Eval(e *Expr) (v Value, err error) {
	if e == nil || e.n == nil {
		return Value{}, &Error{Kind: MalformedAst, Msg: "nil expression"}
	}
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		// big.Float panics with ErrNaN for operations like inf - inf.
		nan, ok := r.(big.ErrNaN)
		if !ok {
			panic(r)
		}
		v, err = Value{}, &Error{Kind: DomainError, Msg: nan.Error()}
	}()
	if e.n.kind == nodeSym {
		// A symbol is only a type error as an operand.
		return Value{}, &Error{Kind: MalformedAst, Msg: "expression is only the symbol " + strconv.Quote(e.n.name)}
	}
	return e.n.eval(ctx)
}

// Evaluate parses and evaluates src. It never panics: any failure from any
// stage is returned in the result's Err.
func (ctx *Context) Evaluate(src string) (res Result) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		res = Result{Err: &Error{Kind: Internal, Msg: fmt.Sprint("panic: ", r)}}
		if ctx.log != nil {
			ctx.log.Error("recovered panic during evaluation", "expr", src, "panic", r)
		}
	}()
	e, err := ctx.Parse(src)
	if err != nil {
		return Result{Err: failure(err)}
	}
	v, err := ctx.Eval(e)
	if err != nil {
		ctx.debug("eval failed", "expr", src, "err", err)
		return Result{Err: failure(err)}
	}
	ctx.debug("evaluated", "expr", src, "value", v)
	return Result{Value: v}
}

// eval computes the node's value.
func (n *node) eval(ctx *Context) (Value, error) {
	switch n.kind {
	case nodeInt:
		x, ok := new(big.Int).SetString(n.name, 10)
		if !ok {
			return Value{}, &Error{Kind: InvalidNumberFormat, Msg: n.name}
		}
		return Value{i: x}, nil
	case nodeFloat:
		x, _, err := ctx.newFloat().Parse(n.name, 10)
		if err != nil {
			return Value{}, &Error{Kind: InvalidNumberFormat, Msg: n.name + ": " + err.Error()}
		}
		return Value{f: x}, nil
	case nodeSym:
		return Value{}, &Error{Kind: TypeMismatch, Msg: "symbol " + strconv.Quote(n.name) + " is not a number"}
	case nodePair:
		if n.left.kind == nodeSym && n.left.name == "-" {
			x, err := n.right.eval(ctx)
			if err != nil {
				return Value{}, err
			}
			return neg(x), nil
		}
		// Report errors inside the pair before its shape.
		for _, c := range [...]*node{n.left, n.right} {
			if c.kind == nodeSym {
				continue
			}
			if _, err := c.eval(ctx); err != nil {
				return Value{}, err
			}
		}
		return Value{}, &Error{Kind: MalformedAst, Msg: "expected operator and two operands, got " + n.String()}
	case nodeBinary:
		a, b, err := n.operands(ctx)
		if err != nil {
			return Value{}, err
		}
		return ctx.binary(n.name, a, b)
	default:
		return Value{}, &Error{Kind: MalformedAst, Msg: "invalid node " + n.kind.String()}
	}
}

// operands evaluates both sides of a binary node, left first. Errors from
// evaluating either side take precedence over a side being a bare symbol.
func (n *node) operands(ctx *Context) (a, b Value, err error) {
	if n.left.kind != nodeSym {
		if a, err = n.left.eval(ctx); err != nil {
			return a, b, err
		}
	}
	if n.right.kind != nodeSym {
		if b, err = n.right.eval(ctx); err != nil {
			return a, b, err
		}
	}
	for _, c := range [...]*node{n.left, n.right} {
		if c.kind == nodeSym {
			return a, b, &Error{Kind: TypeMismatch, Msg: "operand " + strconv.Quote(c.name) + " of " + strconv.Quote(n.name) + " is not a number"}
		}
	}
	return a, b, nil
}

// Result is the outcome of Evaluate: exactly one of Value and Err is set.
type Result struct {
	Value Value
	Err   *Error
}

// OK reports whether evaluation succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Get returns the result as a value and error pair.
func (r Result) Get() (Value, error) {
	if r.Err != nil {
		return Value{}, r.Err
	}
	return r.Value, nil
}

// String formats the value, or the error as "Error: msg".
func (r Result) String() string {
	if r.Err != nil {
		return "Error: " + r.Err.Error()
	}
	return r.Value.String()
}

// Evaluate is a shortcut to parse and evaluate an expression with a new
// context.
func Evaluate(src string, opts ...ContextOption) Result {
	return NewContext(opts...).Evaluate(src)
}

// EvalString is a shortcut to parse and evaluate a string expression,
// returning the failure as an error.
func EvalString(src string, opts ...ContextOption) (Value, error) {
	return Evaluate(src, opts...).Get()
}

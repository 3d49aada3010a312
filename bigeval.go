package functions

import (
	"errors"
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// Context carries settings for arbitrary-precision evaluation. Contexts
// are immutable once created and safe for concurrent use.
type Context struct {
	prec uint
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type precopt uint

func (precopt) ctxOption() {}

// Prec sets the precision of calculations in bits.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// NewContext creates a new evaluation context. If no precision is given,
// the default is 64.
func NewContext(opts ...ContextOption) *Context {
	ctx := &Context{prec: 64}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case precopt:
			ctx.prec = uint(opt)
		default:
			panic("functions: unknown option type")
		}
	}
	return ctx
}

// Prec returns the precision to which values are computed in the
// context.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// EvalBig evaluates f at x to the context's precision. A nil ctx uses
// the defaults.
//
// Unlike float64, *big.Float has no NaN, so arguments outside an
// operation's domain are reported as a *DomainError rather than
// propagated. The trigonometric kinds are computed through float64 and
// widened back, which bounds their accuracy; everything else is computed
// to the requested precision.
func (f *Func) EvalBig(ctx *Context, x *big.Float) (r *big.Float, err error) {
	if ctx == nil {
		ctx = NewContext()
	}
	defer func() {
		// bigfloat panics with big.ErrNaN on arguments it cannot
		// handle; surface that as the evaluation error.
		p := recover()
		if p == nil {
			return
		}
		e, ok := p.(error)
		if !ok {
			panic(p)
		}
		var nan big.ErrNaN
		if errors.As(e, &nan) {
			r, err = nil, e
			return
		}
		panic(p)
	}()
	return f.n.evalBig(ctx, x)
}

func (n *node) evalBig(ctx *Context, x *big.Float) (*big.Float, error) {
	prec := ctx.prec
	switch n.kind {
	case nodeConst:
		return big.NewFloat(n.c).SetPrec(prec), nil
	case nodeX:
		return new(big.Float).SetPrec(prec).Set(x), nil
	case nodeAdd:
		l, err := n.left.evalBig(ctx, x)
		if err != nil {
			return nil, err
		}
		r, err := n.right.evalBig(ctx, x)
		if err != nil {
			return nil, err
		}
		return l.Add(l, r), nil
	case nodeMul:
		l, err := n.left.evalBig(ctx, x)
		if err != nil {
			return nil, err
		}
		r, err := n.right.evalBig(ctx, x)
		if err != nil {
			return nil, err
		}
		return l.Mul(l, r), nil
	}
	v, err := n.left.evalBig(ctx, x)
	if err != nil {
		return nil, err
	}
	switch n.kind {
	case nodePow:
		return powBig(v, n.c, prec, "^")
	case nodeExpBase:
		if n.c < 0 {
			// TODO(zeph): allow negative base with integer exponent
			return nil, &DomainError{X: n.c, Func: "^"}
		}
		if n.c == 0 {
			switch {
			case v.Sign() > 0:
				return new(big.Float).SetPrec(prec), nil
			case v.Sign() == 0:
				return new(big.Float).SetPrec(prec).SetInt64(1), nil
			}
			return nil, domainErr(v, "^")
		}
		b := big.NewFloat(n.c).SetPrec(prec)
		return bigfloat.Pow(new(big.Float).SetPrec(prec), b, v), nil
	case nodeExp:
		return bigfloat.Exp(new(big.Float).SetPrec(prec), v), nil
	case nodeLogBase:
		if n.c <= 0 || n.c == 1 {
			return nil, &DomainError{X: n.c, Func: "log base"}
		}
		if v.Sign() <= 0 {
			return nil, domainErr(v, "log")
		}
		r := bigfloat.Log(new(big.Float).SetPrec(prec), v)
		b := bigfloat.Log(new(big.Float).SetPrec(prec), big.NewFloat(n.c).SetPrec(prec))
		return r.Quo(r, b), nil
	case nodeLog:
		if v.Sign() <= 0 {
			return nil, domainErr(v, "ln")
		}
		return bigfloat.Log(new(big.Float).SetPrec(prec), v), nil
	case nodeSin:
		return trigBig(v, math.Sin, prec, "sin")
	case nodeCos:
		return trigBig(v, math.Cos, prec, "cos")
	case nodeTan:
		return trigBig(v, math.Tan, prec, "tan")
	case nodeAsin:
		return arcBig(v, math.Asin, prec, "asin")
	case nodeAcos:
		return arcBig(v, math.Acos, prec, "acos")
	case nodeAtan:
		return trigBig(v, math.Atan, prec, "atan")
	case nodeSqrt:
		if v.Sign() < 0 {
			return nil, domainErr(v, "sqrt")
		}
		return new(big.Float).SetPrec(prec).Sqrt(v), nil
	case nodeCbrt:
		if v.Sign() < 0 {
			r, err := powBig(new(big.Float).SetPrec(prec).Neg(v), 1.0/3, prec, "cbrt")
			if err != nil {
				return nil, err
			}
			return r.Neg(r), nil
		}
		return powBig(v, 1.0/3, prec, "cbrt")
	case nodeRoot:
		return powBig(v, 1/n.c, prec, "root")
	default:
		panic("functions: invalid node kind " + n.kind.String())
	}
}

// powBig raises v to the scalar exponent c. Integer exponents use binary
// exponentiation so that negative bases stay in the real domain;
// everything else goes through bigfloat.Pow, which requires a positive
// base.
func powBig(v *big.Float, c float64, prec uint, name string) (*big.Float, error) {
	if ci := int64(c); c == float64(ci) && ci > -1<<16 && ci < 1<<16 {
		return intPowBig(v, ci, prec, name)
	}
	switch {
	case v.Sign() < 0:
		return nil, domainErr(v, name)
	case v.Sign() == 0:
		if c > 0 {
			return new(big.Float).SetPrec(prec), nil
		}
		return nil, domainErr(v, name)
	}
	e := big.NewFloat(c).SetPrec(prec)
	return bigfloat.Pow(new(big.Float).SetPrec(prec), v, e), nil
}

func intPowBig(v *big.Float, e int64, prec uint, name string) (*big.Float, error) {
	if e < 0 {
		if v.Sign() == 0 {
			return nil, domainErr(v, name)
		}
		p, err := intPowBig(v, -e, prec, name)
		if err != nil {
			return nil, err
		}
		one := new(big.Float).SetPrec(prec).SetInt64(1)
		return p.Quo(one, p), nil
	}
	r := new(big.Float).SetPrec(prec).SetInt64(1)
	b := new(big.Float).SetPrec(prec).Set(v)
	for e > 0 {
		if e%2 == 1 {
			r.Mul(r, b)
		}
		b.Mul(b, b)
		e /= 2
	}
	return r, nil
}

// trigBig applies a float64 transform to v and widens the result.
// bigfloat has no trigonometry, so this is the best available.
func trigBig(v *big.Float, f func(float64) float64, prec uint, name string) (*big.Float, error) {
	fv, _ := v.Float64()
	if math.IsInf(fv, 0) || math.IsNaN(fv) {
		return nil, domainErr(v, name)
	}
	r := f(fv)
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return nil, domainErr(v, name)
	}
	return new(big.Float).SetPrec(prec).SetFloat64(r), nil
}

// arcBig is trigBig for the inverse functions with domain [-1, 1].
func arcBig(v *big.Float, f func(float64) float64, prec uint, name string) (*big.Float, error) {
	fv, _ := v.Float64()
	if math.IsNaN(fv) || fv < -1 || fv > 1 {
		return nil, domainErr(v, name)
	}
	return new(big.Float).SetPrec(prec).SetFloat64(f(fv)), nil
}

func domainErr(v *big.Float, name string) error {
	f, _ := v.Float64()
	return &DomainError{X: f, Func: name}
}

package functions

import "math"

// EvalChecked evaluates f at x like Eval, but reports the first domain
// violation as a *DomainError instead of letting NaN propagate. It is a
// separate validating layer: the checks here never change what Eval
// computes, and for arguments inside every operation's domain the two
// return identical values.
//
// Pole cases are treated as violations too: where Eval returns an
// infinity from an argument on a domain boundary, such as a power or
// root of zero with a negative exponent, EvalChecked reports the error
// rather than the infinity.
func (f *Func) EvalChecked(x float64) (float64, error) {
	return f.n.evalChecked(x)
}

func (n *node) evalChecked(x float64) (float64, error) {
	switch n.kind {
	case nodeConst:
		return n.c, nil
	case nodeX:
		return x, nil
	case nodeAdd:
		l, err := n.left.evalChecked(x)
		if err != nil {
			return 0, err
		}
		r, err := n.right.evalChecked(x)
		if err != nil {
			return 0, err
		}
		return l + r, nil
	case nodeMul:
		l, err := n.left.evalChecked(x)
		if err != nil {
			return 0, err
		}
		r, err := n.right.evalChecked(x)
		if err != nil {
			return 0, err
		}
		return l * r, nil
	}
	// The remaining kinds are unary transforms of one child.
	v, err := n.left.evalChecked(x)
	if err != nil {
		return 0, err
	}
	switch n.kind {
	case nodePow:
		if v < 0 && n.c != math.Trunc(n.c) {
			return 0, &DomainError{X: v, Func: "^"}
		}
		if v == 0 && n.c < 0 {
			return 0, &DomainError{X: v, Func: "^"}
		}
		return math.Pow(v, n.c), nil
	case nodeExpBase:
		if n.c < 0 && v != math.Trunc(v) {
			return 0, &DomainError{X: v, Func: "^"}
		}
		if n.c == 0 && v < 0 {
			return 0, &DomainError{X: v, Func: "^"}
		}
		return math.Pow(n.c, v), nil
	case nodeExp:
		return math.Exp(v), nil
	case nodeLogBase:
		if n.c <= 0 || n.c == 1 {
			return 0, &DomainError{X: n.c, Func: "log base"}
		}
		if v <= 0 {
			return 0, &DomainError{X: v, Func: "log"}
		}
		return math.Log(v) / math.Log(n.c), nil
	case nodeLog:
		if v <= 0 {
			return 0, &DomainError{X: v, Func: "ln"}
		}
		return math.Log(v), nil
	case nodeSin:
		return math.Sin(v), nil
	case nodeCos:
		return math.Cos(v), nil
	case nodeTan:
		return math.Tan(v), nil
	case nodeAsin:
		if v < -1 || v > 1 {
			return 0, &DomainError{X: v, Func: "asin"}
		}
		return math.Asin(v), nil
	case nodeAcos:
		if v < -1 || v > 1 {
			return 0, &DomainError{X: v, Func: "acos"}
		}
		return math.Acos(v), nil
	case nodeAtan:
		return math.Atan(v), nil
	case nodeSqrt:
		if v < 0 {
			return 0, &DomainError{X: v, Func: "sqrt"}
		}
		return math.Sqrt(v), nil
	case nodeCbrt:
		return math.Cbrt(v), nil
	case nodeRoot:
		if v < 0 && 1/n.c != math.Trunc(1/n.c) {
			return 0, &DomainError{X: v, Func: "root"}
		}
		if v == 0 && n.c < 0 {
			return 0, &DomainError{X: v, Func: "root"}
		}
		return math.Pow(v, 1/n.c), nil
	default:
		panic("functions: invalid node kind " + n.kind.String())
	}
}

package functions

import "math"

// Eval evaluates f at x. Evaluation is a pure computation: it never
// mutates the tree, so a single Func may be evaluated concurrently from
// any number of goroutines.
//
// Arguments outside an operation's classical domain are not errors.
// They produce NaN or ±Inf exactly as the underlying float64 operations
// do, and those values propagate through the enclosing tree. Use
// EvalChecked to surface them as errors instead.
func (f *Func) Eval(x float64) float64 {
	return f.n.eval(x)
}

// eval computes the node's value at x.
func (n *node) eval(x float64) float64 {
	switch n.kind {
	case nodeConst:
		return n.c
	case nodeX:
		return x
	case nodeAdd:
		return n.left.eval(x) + n.right.eval(x)
	case nodeMul:
		return n.left.eval(x) * n.right.eval(x)
	case nodePow:
		return math.Pow(n.left.eval(x), n.c)
	case nodeExpBase:
		return math.Pow(n.c, n.left.eval(x))
	case nodeExp:
		return math.Exp(n.left.eval(x))
	case nodeLogBase:
		return math.Log(n.left.eval(x)) / math.Log(n.c)
	case nodeLog:
		return math.Log(n.left.eval(x))
	case nodeSin:
		return math.Sin(n.left.eval(x))
	case nodeCos:
		return math.Cos(n.left.eval(x))
	case nodeTan:
		return math.Tan(n.left.eval(x))
	case nodeAsin:
		return math.Asin(n.left.eval(x))
	case nodeAcos:
		return math.Acos(n.left.eval(x))
	case nodeAtan:
		return math.Atan(n.left.eval(x))
	case nodeSqrt:
		return math.Sqrt(n.left.eval(x))
	case nodeCbrt:
		return math.Cbrt(n.left.eval(x))
	case nodeRoot:
		// Root(n, f) is defined as Pow(f, 1/n); keep the computations
		// identical so the two agree exactly.
		return math.Pow(n.left.eval(x), 1/n.c)
	default:
		panic("functions: invalid node kind " + n.kind.String())
	}
}

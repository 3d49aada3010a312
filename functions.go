package functions

import "strconv"

// Func is a real-valued function of one real variable, represented as an
// immutable expression tree. The zero value is not a valid Func; use the
// package-level constructors.
type Func struct {
	n *node
}

// node is a node in the expression tree of a function.
type node struct {
	kind nodeKind

	// c is the node's scalar parameter: the value of a constant, the
	// exponent of a power, the base of an exponential or logarithm, or
	// the degree of a root. Unused by other kinds.
	c float64

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeConst // push c
	nodeX     // push x

	nodeAdd // evaluate left, add right
	nodeMul // evaluate left, mul right

	nodePow     // evaluate left, raise to c
	nodeExpBase // raise c to left
	nodeExp     // raise e to left
	nodeLogBase // log base c of left
	nodeLog     // natural log of left

	nodeSin
	nodeCos
	nodeTan
	nodeAsin
	nodeAcos
	nodeAtan

	nodeSqrt
	nodeCbrt
	nodeRoot // evaluate left, raise to 1/c
)

var kindNames = [...]string{
	nodeNone:    "None",
	nodeConst:   "Const",
	nodeX:       "X",
	nodeAdd:     "Add",
	nodeMul:     "Mul",
	nodePow:     "Pow",
	nodeExpBase: "ExpBase",
	nodeExp:     "Exp",
	nodeLogBase: "LogBase",
	nodeLog:     "Log",
	nodeSin:     "Sin",
	nodeCos:     "Cos",
	nodeTan:     "Tan",
	nodeAsin:    "Asin",
	nodeAcos:    "Acos",
	nodeAtan:    "Atan",
	nodeSqrt:    "Sqrt",
	nodeCbrt:    "Cbrt",
	nodeRoot:    "Root",
}

func (k nodeKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Const returns the constant function c: its value is c at every point.
func Const(c float64) *Func {
	return &Func{n: &node{kind: nodeConst, c: c}}
}

// X returns the identity function, the usual starting point for
// expressions of the controlling variable: Add(X(), Const(5)) is x + 5.
func X() *Func {
	return &Func{n: &node{kind: nodeX}}
}

// Add returns the pointwise sum f + g.
func Add(f, g *Func) *Func {
	return &Func{n: &node{kind: nodeAdd, left: f.n, right: g.n}}
}

// Mul returns the pointwise product f * g.
func Mul(f, g *Func) *Func {
	return &Func{n: &node{kind: nodeMul, left: f.n, right: g.n}}
}

// Pow returns f raised to the fixed exponent n, i.e. f(x)^n. As with
// float64 exponentiation, a fractional n with a negative f(x) evaluates
// to NaN.
func Pow(f *Func, n float64) *Func {
	return &Func{n: &node{kind: nodePow, c: n, left: f.n}}
}

// ExpBase returns the exponential of f in base a, i.e. a^f(x).
func ExpBase(a float64, f *Func) *Func {
	return &Func{n: &node{kind: nodeExpBase, c: a, left: f.n}}
}

// Exp returns the natural exponential of f, i.e. e^f(x).
func Exp(f *Func) *Func {
	return &Func{n: &node{kind: nodeExp, left: f.n}}
}

// LogBase returns the logarithm of f in base b. The base is not
// validated; a base that is not positive or is 1 evaluates to NaN or
// ±Inf per the underlying logarithm.
func LogBase(b float64, f *Func) *Func {
	return &Func{n: &node{kind: nodeLogBase, c: b, left: f.n}}
}

// Log returns the natural logarithm of f.
func Log(f *Func) *Func {
	return &Func{n: &node{kind: nodeLog, left: f.n}}
}

// Sin returns the sine of f, with f's value taken in radians.
func Sin(f *Func) *Func {
	return &Func{n: &node{kind: nodeSin, left: f.n}}
}

// Cos returns the cosine of f, with f's value taken in radians.
func Cos(f *Func) *Func {
	return &Func{n: &node{kind: nodeCos, left: f.n}}
}

// Tan returns the tangent of f, with f's value taken in radians.
func Tan(f *Func) *Func {
	return &Func{n: &node{kind: nodeTan, left: f.n}}
}

// Asin returns the arcsine of f. Values of f outside [-1, 1] evaluate
// to NaN.
func Asin(f *Func) *Func {
	return &Func{n: &node{kind: nodeAsin, left: f.n}}
}

// Acos returns the arccosine of f. Values of f outside [-1, 1] evaluate
// to NaN.
func Acos(f *Func) *Func {
	return &Func{n: &node{kind: nodeAcos, left: f.n}}
}

// Atan returns the arctangent of f.
func Atan(f *Func) *Func {
	return &Func{n: &node{kind: nodeAtan, left: f.n}}
}

// Sqrt returns the square root of f. Negative values of f evaluate to
// NaN.
func Sqrt(f *Func) *Func {
	return &Func{n: &node{kind: nodeSqrt, left: f.n}}
}

// Cbrt returns the real cube root of f. Negative values of f evaluate
// to the negative real root.
func Cbrt(f *Func) *Func {
	return &Func{n: &node{kind: nodeCbrt, left: f.n}}
}

// Root returns the nth root of f, i.e. f(x)^(1/n). Root panics if n is
// zero, since 1/n would be undefined; this is the only structural
// precondition in the package.
func Root(n float64, f *Func) *Func {
	if n == 0 {
		panic("functions: zero root degree")
	}
	return &Func{n: &node{kind: nodeRoot, c: n, left: f.n}}
}

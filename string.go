package functions

import (
	"strconv"
	"strings"
)

// String renders f in a readable infix form, e.g. "(x + 5)" or
// "sin((x ^ 2))". Scalar parameters of logarithms and roots render as a
// second argument: "log(x, 2)", "root(x, 3)". The form is for reading
// trees back out of test failures; it is not a parseable syntax.
func (f *Func) String() string {
	var b strings.Builder
	f.n.fmt(&b)
	return b.String()
}

func (n *node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeConst:
		b.WriteString(ftoa(n.c))
	case nodeX:
		b.WriteByte('x')
	case nodeAdd:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteString(" + ")
		n.right.fmt(b)
		b.WriteByte(')')
	case nodeMul:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteString(" * ")
		n.right.fmt(b)
		b.WriteByte(')')
	case nodePow:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteString(" ^ ")
		b.WriteString(ftoa(n.c))
		b.WriteByte(')')
	case nodeExpBase:
		b.WriteByte('(')
		b.WriteString(ftoa(n.c))
		b.WriteString(" ^ ")
		n.left.fmt(b)
		b.WriteByte(')')
	case nodeExp:
		n.call(b, "exp")
	case nodeLogBase:
		b.WriteString("log(")
		n.left.fmt(b)
		b.WriteString(", ")
		b.WriteString(ftoa(n.c))
		b.WriteByte(')')
	case nodeLog:
		n.call(b, "ln")
	case nodeSin:
		n.call(b, "sin")
	case nodeCos:
		n.call(b, "cos")
	case nodeTan:
		n.call(b, "tan")
	case nodeAsin:
		n.call(b, "asin")
	case nodeAcos:
		n.call(b, "acos")
	case nodeAtan:
		n.call(b, "atan")
	case nodeSqrt:
		n.call(b, "sqrt")
	case nodeCbrt:
		n.call(b, "cbrt")
	case nodeRoot:
		b.WriteString("root(")
		n.left.fmt(b)
		b.WriteString(", ")
		b.WriteString(ftoa(n.c))
		b.WriteByte(')')
	default:
		panic("functions: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

func (n *node) call(b *strings.Builder, name string) {
	b.WriteString(name)
	b.WriteByte('(')
	n.left.fmt(b)
	b.WriteByte(')')
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

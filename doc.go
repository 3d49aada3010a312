// Package functions implements a composable algebra of real-valued
// functions of one real variable.
//
// Expressions are built from two leaves, Const and X, and a catalogue of
// combinators: Add, Mul, Pow, Exp, ExpBase, Log, LogBase, the six
// trigonometric and inverse-trigonometric functions, and Sqrt, Cbrt, and
// Root. Combinators nest freely, so "x sin(x^2) + 5" is
//
//	functions.Add(
//		functions.Mul(functions.X(), functions.Sin(functions.Pow(functions.X(), 2))),
//		functions.Const(5),
//	)
//
// A built Func is an immutable tree. Eval computes its value at a point
// in float64 arithmetic; arguments outside an operation's classical
// domain yield NaN or ±Inf rather than errors, exactly as the underlying
// float64 operations do. EvalChecked reports those cases as errors
// instead, and EvalBig evaluates to arbitrary precision on *big.Float.
//
// Because trees never change after construction, a Func may be evaluated
// concurrently from any number of goroutines.
package functions

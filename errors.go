package functions

import "strconv"

// DomainError is an error reported by the checking evaluators when an
// operation is applied to an argument outside its classical domain. The
// plain Eval never produces it; there, domain violations propagate as
// NaN or ±Inf.
type DomainError struct {
	// X is the out-of-domain argument, as a float64 regardless of which
	// evaluator found it.
	X float64
	// Func is a name identifying the operation.
	Func string
}

func (err *DomainError) Error() string {
	r := strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	return r
}

package functions_test

import (
	"math"
	"sync"
	"testing"

	"github.com/zephyrtronium/functions"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		f    *functions.Func
		x    float64
		r    float64
	}{
		{"const", functions.Const(5), 3, 5},
		{"const-neg-x", functions.Const(5), -12.5, 5},
		{"ident", functions.X(), 4, 4},
		{"ident-neg", functions.X(), -2.25, -2.25},
		{"add", functions.Add(functions.X(), functions.Const(5)), 3, 8},
		{"add-nested", functions.Add(functions.Add(functions.X(), functions.X()), functions.Const(1)), 2, 5},
		{"mul", functions.Mul(functions.X(), functions.X()), 4, 16},
		{"mul-const", functions.Mul(functions.Const(3), functions.X()), -2, -6},
		{"pow", functions.Pow(functions.X(), 3), 2, 8},
		{"pow-zero", functions.Pow(functions.X(), 0), 17, 1},
		{"expbase", functions.ExpBase(2, functions.X()), 3, 8},
		{"exp", functions.Exp(functions.Const(1)), 99, math.E},
		{"exp-zero", functions.Exp(functions.Const(0)), 0, 1},
		{"logbase", functions.LogBase(2, functions.X()), 8, 3},
		{"ln", functions.Log(functions.Const(1)), -7, 0},
		{"ln-e", functions.Log(functions.Const(math.E)), 0, 1},
		{"sin", functions.Sin(functions.X()), 0, 0},
		{"cos", functions.Cos(functions.X()), 0, 1},
		{"tan", functions.Tan(functions.Const(0)), 5, 0},
		{"asin", functions.Asin(functions.Const(1)), 0, math.Pi / 2},
		{"acos", functions.Acos(functions.Const(1)), 0, 0},
		{"atan", functions.Atan(functions.Const(0)), 0, 0},
		{"sqrt", functions.Sqrt(functions.X()), 9, 3},
		{"root", functions.Root(2, functions.X()), 9, 3},
		{"root-neg-degree", functions.Root(-1, functions.X()), 4, 0.25},
		{"compose", functions.Sin(functions.Mul(functions.X(), functions.X())), 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.f.Eval(c.x); got != c.r {
				t.Errorf("%v at %g: want %g, got %g", c.f, c.x, c.r, got)
			}
		})
	}
}

func TestEvalLeafLaws(t *testing.T) {
	xs := []float64{-100, -2.5, -1, 0, 0.5, 1, 3, 1e6}
	id := functions.X()
	for _, x := range xs {
		if got := id.Eval(x); got != x {
			t.Errorf("x at %g: got %g", x, got)
		}
	}
	for _, c := range []float64{-3, 0, 2.75, 1e9} {
		f := functions.Const(c)
		for _, x := range xs {
			if got := f.Eval(x); got != c {
				t.Errorf("const %g at %g: got %g", c, x, got)
			}
		}
	}
}

// TestEvalCombinatorLaws verifies that Add and Mul agree exactly with
// float64 + and * applied to the children's results.
func TestEvalCombinatorLaws(t *testing.T) {
	f := functions.Sin(functions.X())
	g := functions.Add(functions.Pow(functions.X(), 2), functions.Const(-3))
	sum := functions.Add(f, g)
	prod := functions.Mul(f, g)
	for _, x := range []float64{-7, -1.25, 0, 0.1, 2, 55} {
		if want, got := f.Eval(x)+g.Eval(x), sum.Eval(x); got != want {
			t.Errorf("sum at %g: want %g, got %g", x, want, got)
		}
		if want, got := f.Eval(x)*g.Eval(x), prod.Eval(x); got != want {
			t.Errorf("prod at %g: want %g, got %g", x, want, got)
		}
	}
}

// TestPowRepeatedMul checks that small integer powers agree with
// repeated multiplication to within floating-point tolerance.
func TestPowRepeatedMul(t *testing.T) {
	f := functions.Add(functions.X(), functions.Const(0.5))
	for n := 1; n <= 5; n++ {
		p := functions.Pow(f, float64(n))
		for _, x := range []float64{-2, 0.25, 1, 3.5} {
			want := 1.0
			for i := 0; i < n; i++ {
				want *= f.Eval(x)
			}
			got := p.Eval(x)
			if math.Abs(got-want) > 1e-9*math.Abs(want) {
				t.Errorf("pow %d at %g: want %g, got %g", n, x, want, got)
			}
		}
	}
}

// TestRootMatchesPow checks the defining identity: Root(n, f) is the
// same computation as Pow(f, 1/n), so the two match exactly.
func TestRootMatchesPow(t *testing.T) {
	f := functions.Add(functions.X(), functions.Const(1))
	for _, n := range []float64{-3, -1, 0.5, 2, 3, 7} {
		r := functions.Root(n, f)
		p := functions.Pow(f, 1/n)
		for _, x := range []float64{0.5, 1, 8, 100} {
			if got, want := r.Eval(x), p.Eval(x); got != want {
				t.Errorf("root %g at %g: want %g, got %g", n, x, want, got)
			}
		}
	}
}

// TestLogExpRoundTrip checks ln(e^f(x)) ≈ f(x) where the value is
// finite.
func TestLogExpRoundTrip(t *testing.T) {
	f := functions.Add(functions.Sin(functions.X()), functions.Mul(functions.Const(0.25), functions.X()))
	rt := functions.Log(functions.Exp(f))
	for _, x := range []float64{-10, -1, 0, 0.75, 2, 40} {
		want := f.Eval(x)
		got := rt.Eval(x)
		if math.Abs(got-want) > 1e-12*(1+math.Abs(want)) {
			t.Errorf("round trip at %g: want %g, got %g", x, want, got)
		}
	}
}

// TestLogBase exercises bases where the log-ratio formula is not exact
// in the last ulp, so compare with tolerance. (Base 2 on powers of two
// happens to be exact and stays in TestEval.)
func TestLogBase(t *testing.T) {
	cases := []struct{ b, x, r float64 }{
		{3, 9, 2},
		{3, 27, 3},
		{10, 1000, 3},
		{5, 0.2, -1},
	}
	for _, c := range cases {
		f := functions.LogBase(c.b, functions.X())
		got := f.Eval(c.x)
		if math.Abs(got-c.r) > 1e-12*(1+math.Abs(c.r)) {
			t.Errorf("log base %g of %g: want %g, got %g", c.b, c.x, c.r, got)
		}
	}
}

// TestCbrt exercises the real cube root, including the negative branch.
// Perfect cubes are not guaranteed exact in every libm, so compare with
// tolerance.
func TestCbrt(t *testing.T) {
	f := functions.Cbrt(functions.X())
	cases := []struct{ x, r float64 }{
		{27, 3},
		{8, 2},
		{0, 0},
		{-8, -2},
		{-27, -3},
	}
	for _, c := range cases {
		got := f.Eval(c.x)
		if math.Abs(got-c.r) > 1e-12*(1+math.Abs(c.r)) {
			t.Errorf("cbrt(%g): want %g, got %g", c.x, c.r, got)
		}
	}
}

func TestEvalNaN(t *testing.T) {
	cases := []struct {
		name string
		f    *functions.Func
	}{
		{"sqrt-neg", functions.Sqrt(functions.Const(-1))},
		{"asin-out", functions.Asin(functions.Const(2))},
		{"acos-out", functions.Acos(functions.Const(-2))},
		{"ln-neg", functions.Log(functions.Const(-1))},
		{"log-bad-base", functions.LogBase(-2, functions.Const(3))},
		{"pow-frac-neg", functions.Pow(functions.Const(-2), 0.5)},
		{"root-even-neg", functions.Root(2, functions.Const(-4))},
		{"nan-through-add", functions.Add(functions.Sqrt(functions.Const(-1)), functions.X())},
		{"nan-through-sin", functions.Sin(functions.Log(functions.Const(-5)))},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for _, x := range []float64{-1, 0, 3} {
				if got := c.f.Eval(x); !math.IsNaN(got) {
					t.Errorf("%v at %g: want NaN, got %g", c.f, x, got)
				}
			}
		})
	}
}

func TestEvalInf(t *testing.T) {
	if got := functions.Log(functions.Const(0)).Eval(1); !math.IsInf(got, -1) {
		t.Errorf("ln(0): want -Inf, got %g", got)
	}
	if got := functions.Pow(functions.Const(0), -2).Eval(1); !math.IsInf(got, 1) {
		t.Errorf("0^-2: want +Inf, got %g", got)
	}
}

func TestRootZeroDegreePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Root(0, x) did not panic")
		}
	}()
	functions.Root(0, functions.X())
}

// TestEvalConcurrent evaluates one shared tree from many goroutines;
// the race detector verifies evaluation really is read-only.
func TestEvalConcurrent(t *testing.T) {
	f := functions.Add(
		functions.Mul(functions.X(), functions.Sin(functions.X())),
		functions.Sqrt(functions.Pow(functions.X(), 2)),
	)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				x := float64(i*100 + j)
				want := x*math.Sin(x) + math.Abs(x)
				if got := f.Eval(x); got != want {
					t.Errorf("at %g: want %g, got %g", x, want, got)
				}
			}
		}(i)
	}
	wg.Wait()
}

func BenchmarkEval(b *testing.B) {
	// A moderately deep tree touching every combinator family.
	f := functions.Add(
		functions.Mul(functions.Sin(functions.X()), functions.ExpBase(2, functions.Cos(functions.X()))),
		functions.Root(3, functions.Add(functions.Pow(functions.X(), 2), functions.Const(1))),
	)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		f.Eval(float64(i))
	}
}

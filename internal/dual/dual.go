// Package dual implements forward-mode automatic differentiation with
// vector-valued tangents.
//
// A Number carries a primal value and a tangent row. Seeding the inputs of
// a vector function with the rows of the identity matrix and evaluating the
// function once over Numbers propagates exact derivatives through every
// arithmetic step, so the full dense Jacobian falls out of a single
// evaluation with no truncation error.
//
// A Number with an empty tangent is a constant. Arithmetic between Numbers
// whose tangents disagree in length panics with Error; Jacobian recovers
// that panic and returns it as an ordinary error. Numbers are values:
// tangent slices must not be mutated after creation.
package dual

import (
	"fmt"
	"math"
)

// Number is a dual number with a vector tangent. Real is the primal value
// and Emag holds the directional derivatives with respect to each seeded
// variable. An empty Emag marks a constant.
type Number struct {
	Real float64
	Emag []float64
}

// Error describes a tangent-length mismatch between operands. It is the
// panic value raised by arithmetic on incompatible Numbers.
type Error struct {
	Op   string
	Want int
	Got  int
}

func (e Error) Error() string {
	return fmt.Sprintf("dual: %s: tangent length mismatch: %d vs %d", e.Op, e.Want, e.Got)
}

// Const returns a Number carrying no tangent.
func Const(v float64) Number { return Number{Real: v} }

// Var returns a Number for the i-th of n independent variables. Its
// tangent is the i-th row of the n×n identity seed.
func Var(v float64, i, n int) Number {
	e := make([]float64, n)
	e[i] = 1
	return Number{Real: v, Emag: e}
}

// Consts converts a slice of values into constant Numbers.
func Consts(v []float64) []Number {
	out := make([]Number, len(v))
	for i, vi := range v {
		out[i] = Const(vi)
	}
	return out
}

// Vars converts a slice of values into identity-seeded variables, one row
// of the identity per entry.
func Vars(v []float64) []Number {
	out := make([]Number, len(v))
	for i, vi := range v {
		out[i] = Var(vi, i, len(v))
	}
	return out
}

// Add returns x+y.
func Add(x, y Number) Number {
	return Number{Real: x.Real + y.Real, Emag: addTangent("Add", x.Emag, y.Emag)}
}

// Sub returns x-y.
func Sub(x, y Number) Number {
	return Number{Real: x.Real - y.Real, Emag: subTangent(x.Emag, y.Emag)}
}

// Mul returns x*y.
func Mul(x, y Number) Number {
	return Number{Real: x.Real * y.Real, Emag: mulTangent(x, y)}
}

// Div returns x/y.
func Div(x, y Number) Number {
	re := x.Real / y.Real
	switch {
	case len(x.Emag) == 0 && len(y.Emag) == 0:
		return Number{Real: re}
	case len(y.Emag) == 0:
		return Number{Real: re, Emag: scaleTangent(1/y.Real, x.Emag)}
	case len(x.Emag) == 0:
		return Number{Real: re, Emag: scaleTangent(-x.Real/(y.Real*y.Real), y.Emag)}
	}
	if len(x.Emag) != len(y.Emag) {
		panic(Error{Op: "Div", Want: len(x.Emag), Got: len(y.Emag)})
	}
	e := make([]float64, len(x.Emag))
	d2 := y.Real * y.Real
	for i := range e {
		e[i] = (x.Emag[i]*y.Real - x.Real*y.Emag[i]) / d2
	}
	return Number{Real: re, Emag: e}
}

// Inv returns the multiplicative inverse 1/d.
func Inv(d Number) Number {
	d2 := d.Real * d.Real
	return Number{Real: 1 / d.Real, Emag: scaleTangent(-1/d2, d.Emag)}
}

// Neg returns -d.
func Neg(d Number) Number { return Scale(-1, d) }

// Scale returns the scalar product f*d.
func Scale(f float64, d Number) Number {
	return Number{Real: f * d.Real, Emag: scaleTangent(f, d.Emag)}
}

// Shift returns f+d. The tangent is unchanged.
func Shift(f float64, d Number) Number {
	return Number{Real: f + d.Real, Emag: d.Emag}
}

// Abs returns |d|.
func Abs(d Number) Number {
	if !math.Signbit(d.Real) {
		return d
	}
	return Scale(-1, d)
}

// String returns the number formatted as (real+emagϵ).
func (d Number) String() string {
	if len(d.Emag) == 0 {
		return fmt.Sprintf("(%g+0ϵ)", d.Real)
	}
	return fmt.Sprintf("(%g+%vϵ)", d.Real, d.Emag)
}

// addTangent combines two tangents elementwise. A constant operand leaves
// the other tangent untouched; carried tangents must agree in length.
func addTangent(op string, a, b []float64) []float64 {
	switch {
	case len(a) == 0:
		return b
	case len(b) == 0:
		return a
	case len(a) != len(b):
		panic(Error{Op: op, Want: len(a), Got: len(b)})
	}
	e := make([]float64, len(a))
	for i := range e {
		e[i] = a[i] + b[i]
	}
	return e
}

func subTangent(a, b []float64) []float64 {
	switch {
	case len(b) == 0:
		return a
	case len(a) == 0:
		return scaleTangent(-1, b)
	case len(a) != len(b):
		panic(Error{Op: "Sub", Want: len(a), Got: len(b)})
	}
	e := make([]float64, len(a))
	for i := range e {
		e[i] = a[i] - b[i]
	}
	return e
}

// mulTangent applies the product rule x.Real*y.Emag + y.Real*x.Emag.
func mulTangent(x, y Number) []float64 {
	switch {
	case len(x.Emag) == 0 && len(y.Emag) == 0:
		return nil
	case len(x.Emag) == 0:
		return scaleTangent(x.Real, y.Emag)
	case len(y.Emag) == 0:
		return scaleTangent(y.Real, x.Emag)
	case len(x.Emag) != len(y.Emag):
		panic(Error{Op: "Mul", Want: len(x.Emag), Got: len(y.Emag)})
	}
	e := make([]float64, len(x.Emag))
	for i := range e {
		e[i] = x.Real*y.Emag[i] + y.Real*x.Emag[i]
	}
	return e
}

// scaleTangent returns f*e as a fresh slice, or nil for a constant.
func scaleTangent(f float64, e []float64) []float64 {
	if len(e) == 0 {
		return nil
	}
	s := make([]float64, len(e))
	for i, v := range e {
		s[i] = f * v
	}
	return s
}

// fillTangent returns a tangent of length n with every entry v, or nil
// when n is zero.
func fillTangent(v float64, n int) []float64 {
	if n == 0 {
		return nil
	}
	e := make([]float64, n)
	for i := range e {
		e[i] = v
	}
	return e
}

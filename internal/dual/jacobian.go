package dual

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Common errors returned by Jacobian.
var (
	ErrEmpty     = errors.New("dual: empty system")
	ErrNonFinite = errors.New("dual: non-finite value")
)

// Function is a vector function evaluated over dual numbers.
// Implementations must treat their argument as read-only.
type Function func(x []Number) []Number

// MulVec returns a·x where a holds ordinary constant entries, so row i of
// the result is Σ_j a[i,j]·x[j]. Rows that touch only constant entries of
// x stay constant. All non-constant entries of x must agree in tangent
// length; MulVec panics with Error otherwise.
func MulVec(a mat.Matrix, x []Number) []Number {
	r, c := a.Dims()
	if c != len(x) {
		panic(Error{Op: "MulVec", Want: c, Got: len(x)})
	}
	width := 0
	for _, xj := range x {
		if len(xj.Emag) == 0 {
			continue
		}
		if width == 0 {
			width = len(xj.Emag)
		} else if len(xj.Emag) != width {
			panic(Error{Op: "MulVec", Want: width, Got: len(xj.Emag)})
		}
	}

	out := make([]Number, r)
	for i := 0; i < r; i++ {
		var re float64
		var em []float64
		for j := 0; j < c; j++ {
			aij := a.At(i, j)
			re += aij * x[j].Real
			if aij == 0 || len(x[j].Emag) == 0 {
				continue
			}
			if em == nil {
				em = make([]float64, width)
			}
			floats.AddScaled(em, aij, x[j].Emag)
		}
		out[i] = Number{Real: re, Emag: em}
	}
	return out
}

// Jacobian evaluates f once at point with identity-seeded variables and
// returns the primal value f(point) together with the dense Jacobian
// J[i,j] = ∂f_i/∂x_j. The derivatives are exact: no finite-difference
// truncation is involved.
//
// Tangent-length panics raised by arithmetic inside f are recovered and
// returned as an Error. Non-finite primal or derivative entries yield an
// error wrapping ErrNonFinite. Constant output entries produce zero
// Jacobian rows.
func Jacobian(f Function, point []float64) (value []float64, jac *mat.Dense, err error) {
	n := len(point)
	if n == 0 {
		return nil, nil, ErrEmpty
	}
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(Error)
			if !ok {
				panic(r)
			}
			value, jac, err = nil, nil, e
		}
	}()

	out := f(Vars(point))
	m := len(out)
	if m == 0 {
		return nil, nil, ErrEmpty
	}

	value = make([]float64, m)
	jac = mat.NewDense(m, n, nil)
	for i, fi := range out {
		if !isFinite(fi.Real) {
			return nil, nil, fmt.Errorf("%w: f[%d] = %v", ErrNonFinite, i, fi.Real)
		}
		value[i] = fi.Real
		switch len(fi.Emag) {
		case 0:
			// Constant output: the row stays zero.
		case n:
			for j, g := range fi.Emag {
				if !isFinite(g) {
					return nil, nil, fmt.Errorf("%w: jacobian entry (%d,%d) = %v", ErrNonFinite, i, j, g)
				}
			}
			jac.SetRow(i, fi.Emag)
		default:
			return nil, nil, Error{Op: "Jacobian", Want: n, Got: len(fi.Emag)}
		}
	}
	return value, jac, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Package chebyshev builds pseudo-spectral collocation operators on the
// Chebyshev-Gauss-Lobatto grid rescaled to [0,1].
//
// The operators are dense and intended for grids of a few tens of points;
// the conditioning of the integration operator degrades as the grid grows.
package chebyshev

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Common errors.
var (
	ErrGridSize = errors.New("chebyshev: grid size must be at least 2")
	ErrSingular = errors.New("chebyshev: interior differentiation submatrix is singular")
)

// Operators holds the collocation grid and the spectral operators for a
// fixed grid size. It is immutable after construction: accessors return
// copies, and building twice with the same size yields bit-identical
// matrices.
type Operators struct {
	n     int
	x     []float64
	d     *mat.Dense
	integ *mat.Dense // nil unless requested at construction
}

// New builds the collocation grid and the differentiation matrix for n
// points. It returns ErrGridSize for n <= 1: a one-point grid cannot
// support differentiation.
func New(n int) (*Operators, error) {
	if n <= 1 {
		return nil, fmt.Errorf("%w: got %d", ErrGridSize, n)
	}
	x := points(n)
	return &Operators{n: n, x: x, d: diffMatrix(x)}, nil
}

// NewWithIntegration builds the grid and differentiation matrix like New
// and additionally the integration operator, the inverse of the
// differentiation matrix restricted to the non-anchor points.
func NewWithIntegration(n int) (*Operators, error) {
	op, err := New(n)
	if err != nil {
		return nil, err
	}
	integ, err := integMatrix(op.d)
	if err != nil {
		return nil, err
	}
	op.integ = integ
	return op, nil
}

// N returns the number of collocation points.
func (op *Operators) N() int { return op.n }

// Points returns a copy of the collocation points,
//
//	x_i = (1 - cos(π·i/(n-1))) / 2,  i = 0..n-1,
//
// strictly increasing with the endpoints exactly 0 and 1.
func (op *Operators) Points() []float64 {
	x := make([]float64, len(op.x))
	copy(x, op.x)
	return x
}

// Diff returns a copy of the first-derivative operator D. For a smooth
// function sampled at Points as a vector f, D·f approximates f' at every
// grid point; the approximation is exact for polynomials of degree below
// the grid size.
func (op *Operators) Diff() *mat.Dense {
	return mat.DenseCopyOf(op.d)
}

// SecondDiff returns the second-derivative operator, computed as the
// ordinary matrix product D·D. Squaring the first-derivative matrix trades
// a little spectral accuracy for simplicity compared with the dedicated
// second-derivative formula.
func (op *Operators) SecondDiff() *mat.Dense {
	var d2 mat.Dense
	d2.Mul(op.d, op.d)
	return &d2
}

// Integration returns a copy of the integration operator and true when the
// receiver was built with NewWithIntegration, or nil and false otherwise.
// Applying the operator to a vector of samples approximates the
// antiderivative anchored at the first grid point; its first row and
// column are identically zero.
func (op *Operators) Integration() (*mat.Dense, bool) {
	if op.integ == nil {
		return nil, false
	}
	return mat.DenseCopyOf(op.integ), true
}

// points returns the Chebyshev-Gauss-Lobatto points rescaled to [0,1].
func points(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = 0.5 * (1 - math.Cos(math.Pi*(float64(i)/float64(n-1))))
	}
	return x
}

// diffMatrix builds the first-derivative collocation matrix for the grid x.
// Off-diagonal entries follow the barycentric form
//
//	D[i,j] = (c_i/c_j) / (x_i - x_j),  c_i = (-1)^i · {2 at the endpoints, 1 inside},
//
// and each diagonal entry is the negated sum of its off-diagonal row. The
// diagonal must come from that summation, not a closed form, so that the
// zero-row-sum invariant (derivative of a constant is zero) survives
// rounding.
func diffMatrix(x []float64) *mat.Dense {
	n := len(x)
	c := make([]float64, n)
	for i := range c {
		c[i] = 1
		if i == 0 || i == n-1 {
			c[i] = 2
		}
		if i%2 == 1 {
			c[i] = -c[i]
		}
	}

	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			v := c[i] / c[j] / (x[i] - x[j])
			d.Set(i, j, v)
			sum += v
		}
		d.Set(i, i, -sum)
	}
	return d
}

// integMatrix inverts the differentiation matrix restricted to the
// non-anchor rows and columns (dropping the first point, which anchors the
// integration constant) and pads the inverse back to full size with a zero
// border. The inverse comes from an LU solve against the identity rather
// than an opaque inversion primitive.
func integMatrix(d *mat.Dense) (*mat.Dense, error) {
	n, _ := d.Dims()
	m := n - 1

	var lu mat.LU
	lu.Factorize(d.Slice(1, n, 1, n))

	eye := mat.NewDense(m, m, nil)
	for i := 0; i < m; i++ {
		eye.Set(i, i, 1)
	}
	var inv mat.Dense
	if err := lu.SolveTo(&inv, false, eye); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	integ := mat.NewDense(n, n, nil)
	for i := 1; i < n; i++ {
		for j := 1; j < n; j++ {
			integ.Set(i, j, inv.At(i-1, j-1))
		}
	}
	return integ, nil
}

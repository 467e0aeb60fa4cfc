// Package bvp discretizes and solves two-point boundary value problems
//
//	f''(x) = g(x, f(x)),  x in [0,1],  f(0) and f(1) given,
//
// by Chebyshev collocation. The unknowns are the interior grid values;
// the residual is the collocation second derivative minus the right-hand
// side, and its Jacobian comes from a single dual-number evaluation.
package bvp

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/go-spectral/spectral/internal/chebyshev"
	"github.com/go-spectral/spectral/internal/dual"
	"github.com/go-spectral/spectral/internal/nonlin"
)

// Common errors.
var (
	ErrGridSize  = errors.New("bvp: need at least 3 collocation points")
	ErrNoRHS     = errors.New("bvp: nil right-hand side")
	ErrDimension = errors.New("bvp: dimension mismatch")
)

// RHS is the right-hand side g of f'' = g(x, f), evaluated pointwise.
// It receives f as a dual number so one definition serves both residual
// and Jacobian evaluation; implementations must build their result with
// dual arithmetic rather than touching Real directly.
type RHS func(x float64, f dual.Number) dual.Number

// Problem describes a two-point boundary value problem on the unit
// interval with Dirichlet data at both ends.
type Problem struct {
	// N is the number of collocation points, at least 3.
	N int

	// Left and Right are the boundary values f(0) and f(1).
	Left, Right float64

	// RHS is the right-hand side g of f'' = g(x, f).
	RHS RHS

	// Guess optionally seeds the interior iterate and must then have
	// length N-2. Nil selects the zero guess.
	Guess []float64

	// Tolerance and MaxIterations configure the Newton iteration. Zero
	// values select the solver defaults of 1e-8 and 100.
	Tolerance     float64
	MaxIterations int
}

// Solution is a converged discrete solution.
type Solution struct {
	// X holds the collocation points and F the values of f at them. The
	// first and last entries of F are exactly the prescribed boundary
	// values.
	X, F []float64

	// Stats reports the work done by the Newton iteration.
	Stats nonlin.Stats
}

// System is the collocation discretization of a Problem: the grid, the
// second-derivative operator and the pinned boundary values, arranged as
// a residual over the interior unknowns.
type System struct {
	prob Problem
	x    []float64
	d2   *mat.Dense
}

// NewSystem validates p and builds its discretization.
func NewSystem(p Problem) (*System, error) {
	if p.N < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrGridSize, p.N)
	}
	if p.RHS == nil {
		return nil, ErrNoRHS
	}
	if p.Guess != nil && len(p.Guess) != p.N-2 {
		return nil, fmt.Errorf("%w: guess length %d, want %d", ErrDimension, len(p.Guess), p.N-2)
	}
	op, err := chebyshev.New(p.N)
	if err != nil {
		return nil, err
	}
	return &System{prob: p, x: op.Points(), d2: op.SecondDiff()}, nil
}

// Dim returns the number of interior unknowns, N-2.
func (s *System) Dim() int { return s.prob.N - 2 }

// Points returns a copy of the collocation grid, boundaries included.
func (s *System) Points() []float64 {
	x := make([]float64, len(s.x))
	copy(x, s.x)
	return x
}

// residual evaluates the collocation residual at the interior values u.
// The boundary entries enter as pinned constants, so derivatives flow
// only through the interior unknowns.
func (s *System) residual(u []dual.Number) []dual.Number {
	n := s.prob.N
	full := make([]dual.Number, n)
	full[0] = dual.Const(s.prob.Left)
	copy(full[1:n-1], u)
	full[n-1] = dual.Const(s.prob.Right)

	d2f := dual.MulVec(s.d2, full)
	res := make([]dual.Number, n-2)
	for i := range res {
		res[i] = dual.Sub(d2f[i+1], s.prob.RHS(s.x[i+1], u[i]))
	}
	return res
}

// Residual evaluates the residual at the interior iterate x into dst.
// It has the signature the Newton solver consumes.
func (s *System) Residual(dst, x []float64) error {
	if len(x) != s.Dim() || len(dst) != s.Dim() {
		return fmt.Errorf("%w: iterate length %d, want %d", ErrDimension, len(x), s.Dim())
	}
	for i, r := range s.residual(dual.Consts(x)) {
		dst[i] = r.Real
	}
	return nil
}

// Jacobian evaluates the residual Jacobian at the interior iterate x into
// dst from a single identity-seeded dual evaluation.
func (s *System) Jacobian(dst *mat.Dense, x []float64) error {
	if len(x) != s.Dim() {
		return fmt.Errorf("%w: iterate length %d, want %d", ErrDimension, len(x), s.Dim())
	}
	_, jac, err := dual.Jacobian(s.residual, x)
	if err != nil {
		return err
	}
	dst.Copy(jac)
	return nil
}

// Solve runs the damped Newton iteration on the system and reattaches the
// boundary values to the converged interior.
func (s *System) Solve() (*Solution, error) {
	x0 := make([]float64, s.Dim())
	if s.prob.Guess != nil {
		copy(x0, s.prob.Guess)
	}

	res, err := nonlin.Solve(s.Residual, s.Jacobian, x0, nonlin.Settings{
		Tolerance:     s.prob.Tolerance,
		MaxIterations: s.prob.MaxIterations,
	})
	if err != nil {
		return nil, err
	}

	n := s.prob.N
	sol := &Solution{X: s.Points(), F: make([]float64, n), Stats: res.Stats}
	sol.F[0] = s.prob.Left
	copy(sol.F[1:n-1], res.X)
	sol.F[n-1] = s.prob.Right
	return sol, nil
}

// Solve discretizes p and solves it from its guess. It is shorthand for
// NewSystem followed by System.Solve.
func Solve(p Problem) (*Solution, error) {
	sys, err := NewSystem(p)
	if err != nil {
		return nil, err
	}
	return sys.Solve()
}

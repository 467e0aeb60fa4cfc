// Package nonlin solves square systems of nonlinear equations F(x) = 0
// with a damped Newton iteration.
//
// Each iteration factorizes the Jacobian, solves for the Newton step and
// backtracks along it until the residual norm satisfies a sufficient
// decrease condition. The Jacobian can be supplied analytically or left
// nil, in which case a forward-difference approximation is used.
package nonlin

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Common errors.
var (
	ErrNoConvergence    = errors.New("nonlin: no convergence")
	ErrSingularJacobian = errors.New("nonlin: jacobian is singular to working precision")
)

// Default iteration controls, used when the corresponding Settings fields
// are zero.
const (
	defaultTolerance     = 1e-8
	defaultMaxIterations = 100
)

const (
	armijo        = 1e-4
	maxBacktracks = 30
)

// sqrtEps is the square root of the float64 machine epsilon, the classic
// forward-difference step scale.
var sqrtEps = math.Sqrt(math.Nextafter(1, 2) - 1)

// Func evaluates the residual F at x, storing the result into dst.
// dst and x have equal length and must not alias.
type Func func(dst, x []float64) error

// JacobianFunc evaluates the Jacobian of the residual at x into the
// preallocated square matrix dst.
type JacobianFunc func(dst *mat.Dense, x []float64) error

// Settings configure Solve. The zero value selects the defaults.
type Settings struct {
	// Tolerance bounds the residual norm and the scaled step norm that
	// count as convergence. If zero, 1e-8 is used.
	Tolerance float64

	// MaxIterations caps the number of Newton steps. If zero, 100 is used.
	MaxIterations int
}

// Stats describes the work performed by a Solve call.
type Stats struct {
	// Iterations is the number of accepted Newton steps.
	Iterations int
	// FuncEvals counts residual evaluations, including those spent on
	// backtracking and finite differences.
	FuncEvals int
	// JacobianEvals counts Jacobian evaluations.
	JacobianEvals int
	// Residual is the Euclidean norm of F at the final iterate.
	Residual float64
	// Runtime is the wall-clock duration of the solve.
	Runtime time.Duration
}

// Result is the outcome of a Solve call. X is the final iterate whether or
// not the iteration converged.
type Result struct {
	X         []float64
	Converged bool
	Stats     Stats
}

// Solve runs a damped Newton iteration on F(x) = 0 from the initial guess
// x0, which is not modified. jac may be nil to request forward-difference
// Jacobians.
//
// The iteration stops successfully once the residual norm drops to
// Tolerance or the damped step becomes smaller than Tolerance·(1+‖x‖).
// It returns ErrNoConvergence when the iteration budget is exhausted or
// backtracking cannot find a decrease, and ErrSingularJacobian when the
// factorized Jacobian cannot be solved against. The returned Result holds
// the final iterate and counters in all cases.
//
// Solve panics if the system dimension is zero.
func Solve(f Func, jac JacobianFunc, x0 []float64, settings Settings) (Result, error) {
	n := len(x0)
	if n == 0 {
		panic("nonlin: zero system dimension")
	}

	tol := settings.Tolerance
	if tol == 0 {
		tol = defaultTolerance
	}
	maxIter := settings.MaxIterations
	if maxIter == 0 {
		maxIter = defaultMaxIterations
	}

	start := time.Now()
	res := Result{X: make([]float64, n)}
	copy(res.X, x0)
	finish := func(err error) (Result, error) {
		res.Stats.Runtime = time.Since(start)
		return res, err
	}

	eval := func(dst, x []float64) error {
		res.Stats.FuncEvals++
		return f(dst, x)
	}
	evalJac := jac
	if evalJac == nil {
		evalJac = func(dst *mat.Dense, x []float64) error {
			return forwardDifference(eval, dst, x)
		}
	}

	fx := make([]float64, n)
	if err := eval(fx, res.X); err != nil {
		return finish(err)
	}
	res.Stats.Residual = floats.Norm(fx, 2)
	if res.Stats.Residual <= tol {
		res.Converged = true
		return finish(nil)
	}

	var lu mat.LU
	jm := mat.NewDense(n, n, nil)
	step := make([]float64, n)
	stepVec := mat.NewVecDense(n, step)
	rhs := make([]float64, n)
	rhsVec := mat.NewVecDense(n, rhs)
	trial := make([]float64, n)
	ftrial := make([]float64, n)

	for res.Stats.Iterations < maxIter {
		if err := evalJac(jm, res.X); err != nil {
			return finish(err)
		}
		res.Stats.JacobianEvals++

		lu.Factorize(jm)
		for i, v := range fx {
			rhs[i] = -v
		}
		if err := lu.SolveVecTo(stepVec, false, rhsVec); err != nil {
			return finish(fmt.Errorf("%w: %v", ErrSingularJacobian, err))
		}

		// Backtrack along the Newton direction until the residual norm
		// shows sufficient decrease. A NaN trial norm fails the test and
		// shrinks the step like any other rejection.
		lambda := 1.0
		accepted := false
		var trialNorm float64
		for k := 0; k <= maxBacktracks; k++ {
			floats.AddScaledTo(trial, res.X, lambda, step)
			if err := eval(ftrial, trial); err != nil {
				return finish(err)
			}
			trialNorm = floats.Norm(ftrial, 2)
			if trialNorm <= (1-armijo*lambda)*res.Stats.Residual {
				accepted = true
				break
			}
			lambda /= 2
		}
		if !accepted {
			return finish(fmt.Errorf("%w: line search stalled at iteration %d, residual %.3e",
				ErrNoConvergence, res.Stats.Iterations, res.Stats.Residual))
		}

		stepNorm := lambda * floats.Norm(step, 2)
		copy(res.X, trial)
		copy(fx, ftrial)
		res.Stats.Residual = trialNorm
		res.Stats.Iterations++

		if trialNorm <= tol || stepNorm <= tol*(1+floats.Norm(res.X, 2)) {
			res.Converged = true
			return finish(nil)
		}
	}
	return finish(fmt.Errorf("%w: after %d iterations, residual %.3e",
		ErrNoConvergence, maxIter, res.Stats.Residual))
}

// forwardDifference fills dst with a forward-difference approximation of
// the Jacobian of f at x. The step for column j keeps the sign of x_j and
// scales with its magnitude, which avoids cancellation far from the
// origin.
func forwardDifference(f Func, dst *mat.Dense, x []float64) error {
	n := len(x)
	fx := make([]float64, n)
	if err := f(fx, x); err != nil {
		return err
	}

	xp := make([]float64, n)
	fp := make([]float64, n)
	copy(xp, x)
	for j := 0; j < n; j++ {
		h := math.Copysign(sqrtEps*math.Max(1, math.Abs(x[j])), x[j])
		xp[j] = x[j] + h
		h = xp[j] - x[j]
		if err := f(fp, xp); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			dst.Set(i, j, (fp[i]-fx[i])/h)
		}
		xp[j] = x[j]
	}
	return nil
}

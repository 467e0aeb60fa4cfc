package nonlin

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestSolveLinear(t *testing.T) {
	// A linear system converges in a single full Newton step.
	a := mat.NewDense(2, 2, []float64{2, 1, 1, 3})
	b := []float64{3, 5}

	f := func(dst, x []float64) error {
		dst[0] = 2*x[0] + x[1] - b[0]
		dst[1] = x[0] + 3*x[1] - b[1]
		return nil
	}
	jac := func(dst *mat.Dense, x []float64) error {
		dst.Copy(a)
		return nil
	}

	res, err := Solve(f, jac, []float64{0, 0}, Settings{})
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Equal(t, 1, res.Stats.Iterations)
	assert.InDelta(t, 0.8, res.X[0], 1e-12)
	assert.InDelta(t, 1.4, res.X[1], 1e-12)
	assert.LessOrEqual(t, res.Stats.Residual, 1e-8)
}

func TestSolveScalar(t *testing.T) {
	f := func(dst, x []float64) error {
		dst[0] = math.Exp(-x[0]) - 0.5
		return nil
	}
	jac := func(dst *mat.Dense, x []float64) error {
		dst.Set(0, 0, -math.Exp(-x[0]))
		return nil
	}

	res, err := Solve(f, jac, []float64{0}, Settings{Tolerance: 1e-12})
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.InDelta(t, math.Ln2, res.X[0], 1e-10)
	assert.Positive(t, res.Stats.JacobianEvals)
}

func TestSolveFiniteDifference(t *testing.T) {
	// A nil Jacobian requests the forward-difference fallback.
	f := func(dst, x []float64) error {
		dst[0] = x[0]*x[0] + x[1]*x[1] - 4
		dst[1] = x[0] - x[1]
		return nil
	}

	res, err := Solve(f, nil, []float64{1, 0.5}, Settings{})
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.InDelta(t, math.Sqrt2, res.X[0], 1e-7)
	assert.InDelta(t, math.Sqrt2, res.X[1], 1e-7)
	// n+1 evaluations per difference Jacobian on top of the line search.
	assert.Greater(t, res.Stats.FuncEvals, 2*res.Stats.Iterations)
}

func TestForwardDifferenceAccuracy(t *testing.T) {
	f := func(dst, x []float64) error {
		dst[0] = x[0] * x[0] * x[1]
		dst[1] = math.Sin(x[0]) + x[1]*x[1]*x[1]
		return nil
	}
	x := []float64{1.3, -0.7}

	got := mat.NewDense(2, 2, nil)
	require.NoError(t, forwardDifference(f, got, x))

	want := mat.NewDense(2, 2, []float64{
		2 * x[0] * x[1], x[0] * x[0],
		math.Cos(x[0]), 3 * x[1] * x[1],
	})
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, want.At(i, j), got.At(i, j), 1e-6, "entry (%d,%d)", i, j)
		}
	}
}

func TestZeroIterationConvergence(t *testing.T) {
	// A guess that already satisfies the tolerance returns before any
	// Newton step.
	f := func(dst, x []float64) error {
		dst[0] = x[0] - 2
		return nil
	}

	res, err := Solve(f, nil, []float64{2}, Settings{})
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Equal(t, 0, res.Stats.Iterations)
	assert.Equal(t, 1, res.Stats.FuncEvals)
	assert.Equal(t, 0, res.Stats.JacobianEvals)
}

func TestIterationLimit(t *testing.T) {
	// exp(-x) has no root: the iterate marches right one unit per step
	// until the budget runs out.
	f := func(dst, x []float64) error {
		dst[0] = math.Exp(-x[0])
		return nil
	}
	jac := func(dst *mat.Dense, x []float64) error {
		dst.Set(0, 0, -math.Exp(-x[0]))
		return nil
	}

	res, err := Solve(f, jac, []float64{0}, Settings{MaxIterations: 5})
	require.ErrorIs(t, err, ErrNoConvergence)
	assert.False(t, res.Converged)
	assert.Equal(t, 5, res.Stats.Iterations)
	assert.InDelta(t, 5, res.X[0], 1e-12)
	assert.InDelta(t, math.Exp(-5), res.Stats.Residual, 1e-12)
}

func TestSingularJacobian(t *testing.T) {
	f := func(dst, x []float64) error {
		dst[0] = 1
		dst[1] = 1
		return nil
	}
	jac := func(dst *mat.Dense, x []float64) error {
		dst.Zero()
		return nil
	}

	res, err := Solve(f, jac, []float64{0, 0}, Settings{})
	require.ErrorIs(t, err, ErrSingularJacobian)
	assert.False(t, res.Converged)
}

func TestGuessNotModified(t *testing.T) {
	f := func(dst, x []float64) error {
		dst[0] = x[0]*x[0] - 2
		return nil
	}

	x0 := []float64{1}
	_, err := Solve(f, nil, x0, Settings{})
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, x0)
}

func TestZeroDimensionPanics(t *testing.T) {
	f := func(dst, x []float64) error { return nil }
	assert.Panics(t, func() { Solve(f, nil, nil, Settings{}) })
}

// Copyright 2026 The Spectral Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package bvp solves two-point boundary value problems
//
//	f''(x) = g(x, f(x)),  x in [0,1],
//
// with Dirichlet data at both ends, by Chebyshev collocation.
//
// # Overview
//
// This package contains:
//   - Problem: grid size, boundary values, right-hand side and options
//   - Solution: collocation points, solution values and solver counters
//   - Solve: discretize and run the damped Newton iteration
//   - SolveMany: solve independent problems concurrently
//   - Liouville, Bratu: canonical right-hand sides
//
// The unknowns are the values of f at the interior collocation points.
// The residual subtracts the right-hand side from the collocation second
// derivative, and its Jacobian comes from a single dual-number evaluation
// rather than finite differences.
//
// # Basic Usage
//
//	import (
//	    "fmt"
//	    "log"
//	    "math"
//
//	    "github.com/go-spectral/spectral/bvp"
//	)
//
//	func main() {
//	    sol, err := bvp.Solve(bvp.Problem{
//	        N:   32,
//	        RHS: bvp.Liouville(math.Pi),
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    for i := range sol.X {
//	        fmt.Printf("%.6f %.6f\n", sol.X[i], sol.F[i])
//	    }
//	}
//
// # Custom Equations
//
// A right-hand side receives f as a dual number and must build its result
// with dual arithmetic, so the same definition drives both the residual
// and the exact Jacobian:
//
//	// f'' = sin(f) + x
//	rhs := func(x float64, f dual.Number) dual.Number {
//	    return dual.Add(dual.Sin(f), dual.Const(x))
//	}
//
// # Parameter Sweeps
//
// Independent problems can run concurrently; results come back in input
// order with per-entry errors:
//
//	problems := make([]bvp.Problem, len(lambdas))
//	for i, l := range lambdas {
//	    problems[i] = bvp.Problem{N: 32, RHS: bvp.Bratu(l)}
//	}
//	for i, r := range bvp.SolveMany(problems, 0) {
//	    if r.Err != nil {
//	        log.Printf("λ=%v: %v", lambdas[i], r.Err)
//	        continue
//	    }
//	    // use r.Solution
//	}
//
// Warm starts reuse a nearby solution through Problem.Guess, which is how
// a continuation in a parameter tracks a solution branch cheaply.
package bvp

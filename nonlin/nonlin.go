// Copyright 2026 The Spectral Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nonlin provides the public API for solving square systems of
// nonlinear equations F(x) = 0 with a damped Newton iteration.
//
// Example:
//
//	f := func(dst, x []float64) error {
//	    dst[0] = math.Exp(-x[0]) - 0.5
//	    return nil
//	}
//	res, err := nonlin.Solve(f, nil, []float64{0}, nonlin.Settings{})
//	// res.X[0] ≈ ln 2
package nonlin

import (
	"github.com/go-spectral/spectral/internal/nonlin"
)

// Type aliases for public API

// Func evaluates the residual F at x into dst.
type Func = nonlin.Func

// JacobianFunc evaluates the Jacobian of the residual at x into dst.
type JacobianFunc = nonlin.JacobianFunc

// Settings configure Solve. The zero value selects the defaults: a
// tolerance of 1e-8 and at most 100 iterations.
type Settings = nonlin.Settings

// Stats describes the work performed by a Solve call.
type Stats = nonlin.Stats

// Result is the outcome of a Solve call.
type Result = nonlin.Result

// Common errors.
var (
	ErrNoConvergence    = nonlin.ErrNoConvergence
	ErrSingularJacobian = nonlin.ErrSingularJacobian
)

// Solve runs a damped Newton iteration on F(x) = 0 from x0. jac may be
// nil to request forward-difference Jacobians.
func Solve(f Func, jac JacobianFunc, x0 []float64, settings Settings) (Result, error) {
	return nonlin.Solve(f, jac, x0, settings)
}

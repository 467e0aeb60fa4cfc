// Copyright 2026 The Spectral Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package bvp

import (
	"github.com/go-spectral/spectral/internal/bvp"
)

// Type aliases for public API

// Problem describes a two-point boundary value problem f'' = g(x, f) on
// the unit interval.
type Problem = bvp.Problem

// Solution is a converged discrete solution on the collocation grid.
type Solution = bvp.Solution

// System is the collocation discretization of a Problem. It exposes the
// residual and Jacobian in the form the Newton solver consumes.
type System = bvp.System

// RHS is the right-hand side g of f'' = g(x, f).
type RHS = bvp.RHS

// SweepResult pairs one entry of a parameter sweep with its outcome.
type SweepResult = bvp.SweepResult

// Common errors.
var (
	ErrGridSize  = bvp.ErrGridSize
	ErrNoRHS     = bvp.ErrNoRHS
	ErrDimension = bvp.ErrDimension
)

// NewSystem validates p and builds its discretization without solving.
func NewSystem(p Problem) (*System, error) {
	return bvp.NewSystem(p)
}

// Solve discretizes p and runs the damped Newton iteration from its guess.
func Solve(p Problem) (*Solution, error) {
	return bvp.Solve(p)
}

// SolveMany solves the problems concurrently across at most workers
// goroutines and returns one result per problem, in input order.
// workers <= 0 selects one worker per CPU.
func SolveMany(problems []Problem, workers int) []SweepResult {
	return bvp.SolveMany(problems, workers)
}

// Canonical right-hand sides

// Liouville returns the right-hand side f'' = exp(alpha·f).
func Liouville(alpha float64) RHS { return bvp.Liouville(alpha) }

// Bratu returns the right-hand side f'' = -lambda·exp(f).
func Bratu(lambda float64) RHS { return bvp.Bratu(lambda) }

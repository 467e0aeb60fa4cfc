// Copyright 2026 The Spectral Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package chebyshev provides the public API for spectral collocation
// operators on the Chebyshev-Gauss-Lobatto grid rescaled to [0,1].
//
// The package builds the grid and its dense operator matrices for a fixed
// number of points:
//   - Operators: immutable bundle of grid points and operators
//   - New: grid plus first-derivative matrix
//   - NewWithIntegration: additionally the integration operator
//
// Example:
//
//	op, err := chebyshev.New(32)
//	x := op.Points()      // 32 points, 0 and 1 included
//	d2 := op.SecondDiff() // dense 32×32 second-derivative matrix
package chebyshev

import (
	"github.com/go-spectral/spectral/internal/chebyshev"
)

// Type aliases for public API

// Operators bundles a collocation grid with its spectral operators. It is
// immutable after construction and accessors return copies.
type Operators = chebyshev.Operators

// Common errors.
var (
	// ErrGridSize reports a grid too small to support differentiation.
	ErrGridSize = chebyshev.ErrGridSize
	// ErrSingular reports an interior differentiation block that cannot
	// be inverted into an integration operator.
	ErrSingular = chebyshev.ErrSingular
)

// New builds the collocation grid and the differentiation matrix for n
// points. n must be at least 2.
func New(n int) (*Operators, error) {
	return chebyshev.New(n)
}

// NewWithIntegration builds the grid and differentiation matrix like New
// and additionally the integration operator, available through
// Operators.Integration.
func NewWithIntegration(n int) (*Operators, error) {
	return chebyshev.NewWithIntegration(n)
}

// Copyright 2026 The Spectral Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dual provides the public API for forward-mode automatic
// differentiation with vector-valued tangents.
//
// A Number carries a primal value together with a tangent row. Evaluating
// a vector function once over identity-seeded Numbers yields the function
// value and its full dense Jacobian with no truncation error:
//   - Number: dual scalar, constant when its tangent is empty
//   - Var, Vars: identity-seeded variables
//   - Jacobian: value and exact Jacobian from one evaluation
//
// Example:
//
//	f := func(x []dual.Number) []dual.Number {
//	    return []dual.Number{dual.Mul(x[0], x[1])}
//	}
//	value, jac, err := dual.Jacobian(f, []float64{2, 3})
//	// value[0] == 6, jac row 0 == [3 2]
package dual

import (
	"gonum.org/v1/gonum/mat"

	"github.com/go-spectral/spectral/internal/dual"
)

// Type aliases for public API

// Number is a dual number with a vector tangent. An empty tangent marks a
// constant.
type Number = dual.Number

// Error is the panic value raised by arithmetic on Numbers whose tangents
// disagree in length. Jacobian recovers it into an ordinary error.
type Error = dual.Error

// Function is a vector function evaluated over dual numbers.
type Function = dual.Function

// Common errors.
var (
	ErrEmpty     = dual.ErrEmpty
	ErrNonFinite = dual.ErrNonFinite
)

// Construction

// Const returns a Number carrying no tangent.
func Const(v float64) Number { return dual.Const(v) }

// Var returns a Number for the i-th of n independent variables.
func Var(v float64, i, n int) Number { return dual.Var(v, i, n) }

// Consts converts a slice of values into constant Numbers.
func Consts(v []float64) []Number { return dual.Consts(v) }

// Vars converts a slice of values into identity-seeded variables.
func Vars(v []float64) []Number { return dual.Vars(v) }

// Arithmetic

// Add returns x+y.
func Add(x, y Number) Number { return dual.Add(x, y) }

// Sub returns x-y.
func Sub(x, y Number) Number { return dual.Sub(x, y) }

// Mul returns x*y.
func Mul(x, y Number) Number { return dual.Mul(x, y) }

// Div returns x/y.
func Div(x, y Number) Number { return dual.Div(x, y) }

// Inv returns the multiplicative inverse 1/d.
func Inv(d Number) Number { return dual.Inv(d) }

// Neg returns -d.
func Neg(d Number) Number { return dual.Neg(d) }

// Scale returns the scalar product f*d.
func Scale(f float64, d Number) Number { return dual.Scale(f, d) }

// Shift returns f+d.
func Shift(f float64, d Number) Number { return dual.Shift(f, d) }

// Abs returns |d|.
func Abs(d Number) Number { return dual.Abs(d) }

// Elementary functions

// Exp returns e**d, the base-e exponential of d.
func Exp(d Number) Number { return dual.Exp(d) }

// Log returns the natural logarithm of d.
func Log(d Number) Number { return dual.Log(d) }

// Pow returns d**p, the base-d exponential of p.
func Pow(d, p Number) Number { return dual.Pow(d, p) }

// PowReal returns d**p for a plain float exponent.
func PowReal(d Number, p float64) Number { return dual.PowReal(d, p) }

// Sqrt returns the square root of d.
func Sqrt(d Number) Number { return dual.Sqrt(d) }

// Sin returns the sine of d.
func Sin(d Number) Number { return dual.Sin(d) }

// Cos returns the cosine of d.
func Cos(d Number) Number { return dual.Cos(d) }

// Tan returns the tangent of d.
func Tan(d Number) Number { return dual.Tan(d) }

// Asin returns the inverse sine of d.
func Asin(d Number) Number { return dual.Asin(d) }

// Acos returns the inverse cosine of d.
func Acos(d Number) Number { return dual.Acos(d) }

// Atan returns the inverse tangent of d.
func Atan(d Number) Number { return dual.Atan(d) }

// Linear algebra and differentiation

// MulVec returns a·x for a constant matrix a applied to a dual vector.
func MulVec(a mat.Matrix, x []Number) []Number { return dual.MulVec(a, x) }

// Jacobian evaluates f once at point with identity-seeded variables and
// returns f(point) together with the exact dense Jacobian.
func Jacobian(f Function, point []float64) ([]float64, *mat.Dense, error) {
	return dual.Jacobian(f, point)
}

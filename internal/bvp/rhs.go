package bvp

import "github.com/go-spectral/spectral/internal/dual"

// Liouville returns the right-hand side of the Liouville equation
//
//	f'' = exp(alpha·f).
//
// With zero boundary values the continuous solution is unique, negative
// in the interior and symmetric about x = 1/2.
func Liouville(alpha float64) RHS {
	return func(_ float64, f dual.Number) dual.Number {
		return dual.Exp(dual.Scale(alpha, f))
	}
}

// Bratu returns the right-hand side of the Bratu problem
//
//	f'' = -lambda·exp(f),
//
// which has two solutions for lambda below the fold point near 3.51 and
// none above it.
func Bratu(lambda float64) RHS {
	return func(_ float64, f dual.Number) dual.Number {
		return dual.Scale(-lambda, dual.Exp(f))
	}
}

package dual

import "math"

// Exp returns e**d, the base-e exponential of d.
//
// Special cases are:
//
//	Exp(+Inf) = +Inf
//	Exp(NaN) = NaN
func Exp(d Number) Number {
	fnDeriv := math.Exp(d.Real)
	return Number{Real: fnDeriv, Emag: scaleTangent(fnDeriv, d.Emag)}
}

// Log returns the natural logarithm of d.
//
// Special cases are:
//
//	Log(+Inf) = (+Inf+0ϵ)
//	Log(0) = (-Inf±Infϵ)
//	Log(x < 0) = NaN
//	Log(NaN) = NaN
func Log(d Number) Number {
	switch d.Real {
	case 0:
		return Number{
			Real: math.Log(d.Real),
			Emag: fillTangent(math.Copysign(math.Inf(1), d.Real), len(d.Emag)),
		}
	case math.Inf(1):
		return Number{Real: math.Log(d.Real), Emag: scaleTangent(0, d.Emag)}
	}
	if d.Real < 0 {
		return Number{Real: math.NaN(), Emag: fillTangent(math.NaN(), len(d.Emag))}
	}
	return Number{Real: math.Log(d.Real), Emag: scaleTangent(1/d.Real, d.Emag)}
}

// Pow returns d**p, the base-d exponential of p.
func Pow(d, p Number) Number {
	return Exp(Mul(p, Log(d)))
}

// PowReal returns d**p, the base-d exponential of p.
//
// Special cases are (in order):
//
//	PowReal(NaN+xϵ, ±0) = 1+NaNϵ for any x
//	PowReal(x, ±0) = 1 for any x
//	PowReal(1+xϵ, y) = 1+xyϵ for any y
//	PowReal(x, 1) = x for any x
//	PowReal(NaN+xϵ, y) = NaN+NaNϵ
//	PowReal(x, NaN) = NaN+NaNϵ
func PowReal(d Number, p float64) Number {
	const tol = 1e-15

	r := d.Real
	if math.Abs(r) < tol {
		if r >= 0 {
			r = tol
		}
		if r < 0 {
			r = -tol
		}
	}
	deriv := p * math.Pow(r, p-1)
	return Number{Real: math.Pow(d.Real, p), Emag: scaleTangent(deriv, d.Emag)}
}

// Sqrt returns the square root of d.
//
// Special cases are:
//
//	Sqrt(+Inf) = +Inf
//	Sqrt(±0) = (±0+Infϵ)
//	Sqrt(x < 0) = NaN
//	Sqrt(NaN) = NaN
func Sqrt(d Number) Number {
	if d.Real <= 0 {
		if d.Real == 0 {
			return Number{Real: d.Real, Emag: fillTangent(math.Inf(1), len(d.Emag))}
		}
		return Number{Real: math.NaN(), Emag: fillTangent(math.NaN(), len(d.Emag))}
	}
	return PowReal(d, 0.5)
}

// Sin returns the sine of d.
//
// Special cases are:
//
//	Sin(±0) = (±0+Nϵ)
//	Sin(±Inf) = NaN
//	Sin(NaN) = NaN
func Sin(d Number) Number {
	if d.Real == 0 {
		return d
	}
	fn := math.Sin(d.Real)
	deriv := math.Cos(d.Real)
	return Number{Real: fn, Emag: scaleTangent(deriv, d.Emag)}
}

// Cos returns the cosine of d.
//
// Special cases are:
//
//	Cos(±Inf) = NaN
//	Cos(NaN) = NaN
func Cos(d Number) Number {
	fn := math.Cos(d.Real)
	deriv := -math.Sin(d.Real)
	return Number{Real: fn, Emag: scaleTangent(deriv, d.Emag)}
}

// Tan returns the tangent of d.
//
// Special cases are:
//
//	Tan(±0) = (±0+Nϵ)
//	Tan(±Inf) = NaN
//	Tan(NaN) = NaN
func Tan(d Number) Number {
	if d.Real == 0 {
		return d
	}
	fn := math.Tan(d.Real)
	deriv := 1 + fn*fn
	return Number{Real: fn, Emag: scaleTangent(deriv, d.Emag)}
}

// Asin returns the inverse sine of d.
//
// Special cases are:
//
//	Asin(±0) = (±0+Nϵ)
//	Asin(±1) = (±Pi/2+Infϵ)
//	Asin(x) = NaN if x < -1 or x > 1
func Asin(d Number) Number {
	if d.Real == 0 {
		return d
	} else if m := math.Abs(d.Real); m >= 1 {
		if m == 1 {
			return Number{Real: math.Asin(d.Real), Emag: fillTangent(math.Inf(1), len(d.Emag))}
		}
		return Number{Real: math.NaN(), Emag: fillTangent(math.NaN(), len(d.Emag))}
	}
	fn := math.Asin(d.Real)
	deriv := 1 / math.Sqrt(1-d.Real*d.Real)
	return Number{Real: fn, Emag: scaleTangent(deriv, d.Emag)}
}

// Acos returns the inverse cosine of d.
//
// Special cases are:
//
//	Acos(-1) = (Pi-Infϵ)
//	Acos(1) = (0-Infϵ)
//	Acos(x) = NaN if x < -1 or x > 1
func Acos(d Number) Number {
	if m := math.Abs(d.Real); m >= 1 {
		if m == 1 {
			return Number{Real: math.Acos(d.Real), Emag: fillTangent(math.Inf(-1), len(d.Emag))}
		}
		return Number{Real: math.NaN(), Emag: fillTangent(math.NaN(), len(d.Emag))}
	}
	fn := math.Acos(d.Real)
	deriv := -1 / math.Sqrt(1-d.Real*d.Real)
	return Number{Real: fn, Emag: scaleTangent(deriv, d.Emag)}
}

// Atan returns the inverse tangent of d.
//
// Special cases are:
//
//	Atan(±0) = (±0+Nϵ)
//	Atan(±Inf) = (±Pi/2+0ϵ)
func Atan(d Number) Number {
	if d.Real == 0 {
		return d
	}
	fn := math.Atan(d.Real)
	deriv := 1 / (1 + d.Real*d.Real)
	return Number{Real: fn, Emag: scaleTangent(deriv, d.Emag)}
}

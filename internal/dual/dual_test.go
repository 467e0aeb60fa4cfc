package dual

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	c := Const(3.5)
	assert.Equal(t, 3.5, c.Real)
	assert.Empty(t, c.Emag)

	v := Var(2.5, 1, 3)
	assert.Equal(t, 2.5, v.Real)
	assert.Equal(t, []float64{0, 1, 0}, v.Emag)

	vs := Vars([]float64{1, 2})
	require.Len(t, vs, 2)
	assert.Equal(t, []float64{1, 0}, vs[0].Emag)
	assert.Equal(t, []float64{0, 1}, vs[1].Emag)

	cs := Consts([]float64{1, 2})
	for _, ci := range cs {
		assert.Empty(t, ci.Emag)
	}
}

func TestArithmetic(t *testing.T) {
	x := Var(3, 0, 2)
	y := Var(5, 1, 2)

	sum := Add(x, y)
	assert.Equal(t, 8.0, sum.Real)
	assert.Equal(t, []float64{1, 1}, sum.Emag)

	diff := Sub(x, y)
	assert.Equal(t, -2.0, diff.Real)
	assert.Equal(t, []float64{1, -1}, diff.Emag)

	prod := Mul(x, y)
	assert.Equal(t, 15.0, prod.Real)
	assert.Equal(t, []float64{5, 3}, prod.Emag)

	quot := Div(x, y)
	assert.InDelta(t, 0.6, quot.Real, 1e-15)
	assert.InDelta(t, 0.2, quot.Emag[0], 1e-15)
	assert.InDelta(t, -0.12, quot.Emag[1], 1e-15)
}

func TestConstantMixing(t *testing.T) {
	y := Var(5, 1, 2)

	sum := Add(Const(2), y)
	assert.Equal(t, 7.0, sum.Real)
	assert.Equal(t, []float64{0, 1}, sum.Emag)

	prod := Mul(Const(2), y)
	assert.Equal(t, 10.0, prod.Real)
	assert.Equal(t, []float64{0, 2}, prod.Emag)

	// Constants stay constant through arithmetic.
	c := Mul(Add(Const(2), Const(3)), Const(4))
	assert.Equal(t, 20.0, c.Real)
	assert.Empty(t, c.Emag)
}

func TestInvNegScaleAbs(t *testing.T) {
	d := Var(4, 0, 1)

	inv := Inv(d)
	assert.Equal(t, 0.25, inv.Real)
	assert.InDelta(t, -1.0/16, inv.Emag[0], 1e-15)

	neg := Neg(d)
	assert.Equal(t, -4.0, neg.Real)
	assert.Equal(t, []float64{-1}, neg.Emag)

	sc := Scale(3, d)
	assert.Equal(t, 12.0, sc.Real)
	assert.Equal(t, []float64{3}, sc.Emag)

	sh := Shift(3, d)
	assert.Equal(t, 7.0, sh.Real)
	assert.Equal(t, []float64{1}, sh.Emag)
	assert.Equal(t, 2.5, Shift(2.5, Const(0)).Real)

	assert.Equal(t, d, Abs(d))
	abs := Abs(Var(-4, 0, 1))
	assert.Equal(t, 4.0, abs.Real)
	assert.Equal(t, []float64{-1}, abs.Emag)
}

func TestTangentMismatchPanics(t *testing.T) {
	a := Number{Real: 1, Emag: []float64{1, 0}}
	b := Number{Real: 2, Emag: []float64{0, 1, 0}}

	assert.PanicsWithValue(t, Error{Op: "Add", Want: 2, Got: 3}, func() { Add(a, b) })
	assert.PanicsWithValue(t, Error{Op: "Sub", Want: 2, Got: 3}, func() { Sub(a, b) })
	assert.PanicsWithValue(t, Error{Op: "Mul", Want: 2, Got: 3}, func() { Mul(a, b) })
	assert.PanicsWithValue(t, Error{Op: "Div", Want: 2, Got: 3}, func() { Div(a, b) })
}

func TestExp(t *testing.T) {
	d := Exp(Var(1.5, 0, 1))
	want := math.Exp(1.5)
	assert.Equal(t, want, d.Real)
	assert.Equal(t, want, d.Emag[0])

	// Constants stay constant.
	assert.Empty(t, Exp(Const(1.5)).Emag)
}

func TestLog(t *testing.T) {
	d := Log(Var(2, 0, 1))
	assert.InDelta(t, math.Log(2), d.Real, 1e-15)
	assert.InDelta(t, 0.5, d.Emag[0], 1e-15)

	// Log is the inverse of Exp, in value and in derivative.
	back := Log(Exp(Var(0.7, 0, 1)))
	assert.InDelta(t, 0.7, back.Real, 1e-12)
	assert.InDelta(t, 1.0, back.Emag[0], 1e-12)

	zero := Log(Var(0, 0, 1))
	assert.True(t, math.IsInf(zero.Real, -1))
	assert.True(t, math.IsInf(zero.Emag[0], 1))

	neg := Log(Var(-1, 0, 1))
	assert.True(t, math.IsNaN(neg.Real))
	assert.True(t, math.IsNaN(neg.Emag[0]))
}

func TestPow(t *testing.T) {
	sq := PowReal(Var(3, 0, 1), 2)
	assert.Equal(t, 9.0, sq.Real)
	assert.InDelta(t, 6.0, sq.Emag[0], 1e-12)

	cube := Pow(Var(2, 0, 1), Const(3))
	assert.InDelta(t, 8.0, cube.Real, 1e-12)
	assert.InDelta(t, 12.0, cube.Emag[0], 1e-11)
}

func TestSqrt(t *testing.T) {
	d := Sqrt(Var(4, 0, 1))
	assert.Equal(t, 2.0, d.Real)
	assert.Equal(t, 0.25, d.Emag[0])

	zero := Sqrt(Var(0, 0, 1))
	assert.Equal(t, 0.0, zero.Real)
	assert.True(t, math.IsInf(zero.Emag[0], 1))

	neg := Sqrt(Var(-1, 0, 1))
	assert.True(t, math.IsNaN(neg.Real))
	assert.True(t, math.IsNaN(neg.Emag[0]))
}

func TestTrig(t *testing.T) {
	d := Var(0.3, 0, 1)

	s, c := Sin(d), Cos(d)
	assert.InDelta(t, math.Sin(0.3), s.Real, 1e-15)
	assert.InDelta(t, math.Cos(0.3), s.Emag[0], 1e-15)
	assert.InDelta(t, -math.Sin(0.3), c.Emag[0], 1e-15)

	// sin²+cos² is the constant 1, so its derivative vanishes.
	one := Add(Mul(s, s), Mul(c, c))
	assert.InDelta(t, 1.0, one.Real, 1e-15)
	assert.InDelta(t, 0.0, one.Emag[0], 1e-15)

	tan := Tan(d)
	assert.InDelta(t, math.Tan(0.3), tan.Real, 1e-15)
	assert.InDelta(t, 1+tan.Real*tan.Real, tan.Emag[0], 1e-15)

	// The zero shortcut keeps the tangent slice as-is.
	z := Sin(Var(0, 0, 1))
	assert.Equal(t, []float64{1}, z.Emag)
}

func TestInverseTrig(t *testing.T) {
	d := Var(0.5, 0, 1)

	asin, acos := Asin(d), Acos(d)
	deriv := 1 / math.Sqrt(0.75)
	assert.InDelta(t, math.Asin(0.5), asin.Real, 1e-15)
	assert.InDelta(t, deriv, asin.Emag[0], 1e-15)
	assert.InDelta(t, -deriv, acos.Emag[0], 1e-15)

	// asin+acos is the constant π/2.
	half := Add(asin, acos)
	assert.InDelta(t, math.Pi/2, half.Real, 1e-15)
	assert.InDelta(t, 0.0, half.Emag[0], 1e-15)

	atan := Atan(Tan(Var(0.3, 0, 1)))
	assert.InDelta(t, 0.3, atan.Real, 1e-12)
	assert.InDelta(t, 1.0, atan.Emag[0], 1e-12)
}

func TestString(t *testing.T) {
	assert.Equal(t, "(2+0ϵ)", Const(2).String())
	assert.Equal(t, "(2+[0 1]ϵ)", Var(2, 1, 2).String())
}

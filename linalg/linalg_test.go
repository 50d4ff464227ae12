// SPDX-License-Identifier: MIT
// Package linalg_test covers constructors, operators, conversions and the
// documented scenarios of the vector and matrix families.
package linalg_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/detmath/linalg"
	"github.com/katalvlaran/detmath/sfloat"
)

func TestScenario_IdentityFloat2x2(t *testing.T) {
	t.Parallel()

	m := linalg.NewFloat2x2(f(1), f(0), f(0), f(1))
	require.Equal(t, linalg.IdentityFloat2x2(), m)
	require.Equal(t, sfloat.One, m.Determinant())
}

func TestScenario_InverseFloat2x2(t *testing.T) {
	t.Parallel()

	got := linalg.NewFloat2x2(f(2), f(0), f(0), f(2)).Inverse()
	want := linalg.NewFloat2x2(sfloat.Half, f(0), f(0), sfloat.Half)
	// The adjugate negates the zero off-diagonal, so compare by value: -0 == +0.
	require.True(t, got.Equal(want), "got %v", got)
}

func TestScenario_TransposeInt2x3(t *testing.T) {
	t.Parallel()

	m := linalg.NewInt2x3(1, 2, 3, 4, 5, 6)
	require.Equal(t, linalg.NewInt3x2(1, 4, 2, 5, 3, 6), m.Transpose())
}

func TestScenario_Bool2(t *testing.T) {
	t.Parallel()

	v := linalg.Bool2{true, false}
	require.Equal(t, linalg.Bool2{true, true}, v.Eq(linalg.Bool2{true, false}))
	require.Equal(t, linalg.Bool2{false, true}, v.Not())
}

func TestScenario_ZeroUInt4x2(t *testing.T) {
	t.Parallel()

	z := linalg.ZeroUInt4x2()
	for c := 0; c < 2; c++ {
		require.Equal(t, linalg.UInt4{}, z.At(c))
	}
	require.NotZero(t, z.Hash())
	require.Equal(t, z.Hash(), linalg.UInt4x2{}.Hash())
}

func TestRowMajorConstructor(t *testing.T) {
	t.Parallel()

	m := linalg.NewInt3x2(1, 2, 3, 4, 5, 6)
	// Three rows, two columns: column 0 is (1, 3, 5).
	require.Equal(t, linalg.Int3{1, 3, 5}, m[0])
	require.Equal(t, linalg.Int3{2, 4, 6}, m[1])
	require.Equal(t, linalg.Int3x2FromColumns(linalg.Int3{1, 3, 5}, linalg.Int3{2, 4, 6}), m)
}

func TestBroadcast_AllDomains(t *testing.T) {
	t.Parallel()

	require.Equal(t, linalg.Bool3{true, true, true}, linalg.BroadcastBool3(true))
	require.Equal(t, linalg.Int4{-7, -7, -7, -7}, linalg.BroadcastInt4(-7))
	require.Equal(t, linalg.UInt2{9, 9}, linalg.BroadcastUInt2(9))
	require.Equal(t, linalg.Float3{sfloat.Half, sfloat.Half, sfloat.Half}, linalg.BroadcastFloat3(sfloat.Half))

	m := linalg.BroadcastFloat2x3(sfloat.Two)
	for c := 0; c < 3; c++ {
		require.Equal(t, linalg.BroadcastFloat2(sfloat.Two), m.At(c))
	}
	require.Equal(t, linalg.Int3x3{{4, 4, 4}, {4, 4, 4}, {4, 4, 4}}, linalg.BroadcastInt3x3(4))
}

func TestVector_Arithmetic(t *testing.T) {
	t.Parallel()

	a := linalg.Int3{7, -8, 9}
	b := linalg.Int3{2, 3, -4}
	require.Equal(t, linalg.Int3{9, -5, 5}, a.Add(b))
	require.Equal(t, linalg.Int3{5, -11, 13}, a.Sub(b))
	require.Equal(t, linalg.Int3{14, -24, -36}, a.Mul(b))
	require.Equal(t, linalg.Int3{3, -2, -2}, a.Div(b))
	require.Equal(t, linalg.Int3{1, -2, 1}, a.Mod(b))
	require.Equal(t, linalg.Int3{17, 2, 19}, a.AddScalar(10))
	require.Equal(t, linalg.Int3{3, 18, 1}, a.ScalarSub(10))
	require.Equal(t, linalg.Int3{-7, 8, -9}, a.Neg())
	require.Equal(t, a, a.Plus())
	require.Equal(t, linalg.Int3{8, -7, 10}, a.Inc())
	require.Equal(t, linalg.Int3{6, -9, 8}, a.Dec())
	require.Equal(t, linalg.Int3{7, 8, 9}, a.Abs())
	require.Equal(t, int32(8), a.Csum())
	require.Equal(t, int32(-46), a.Dot(b))
	require.Equal(t, linalg.Int3{2, -8, -4}, a.Min(b))
	require.Equal(t, linalg.Int3{7, 3, 9}, a.Max(b))

	x := linalg.Float2{f(3), f(-1)}
	require.Equal(t, linalg.Float2{f(6), f(-2)}, x.MulScalar(sfloat.Two))
	require.Equal(t, linalg.Float2{sfloat.FromFloat32(1.5), sfloat.FromFloat32(-0.5)}, x.DivScalar(sfloat.Two))
	require.Equal(t, linalg.Float2{f(1), f(-1)}, x.ModScalar(sfloat.Two))
	require.Equal(t, linalg.Float2{f(-1), f(3)}, x.ScalarSub(sfloat.Two))
	require.Equal(t, linalg.Float2{f(3), f(1)}, x.Abs())
	require.Equal(t, f(2), x.Csum())
}

func TestVector_Comparisons(t *testing.T) {
	t.Parallel()

	a := linalg.Float3{f(1), f(2), f(3)}
	b := linalg.Float3{f(3), f(2), f(1)}
	require.Equal(t, linalg.Bool3{true, false, false}, a.Lt(b))
	require.Equal(t, linalg.Bool3{true, true, false}, a.Le(b))
	require.Equal(t, linalg.Bool3{false, false, true}, a.Gt(b))
	require.Equal(t, linalg.Bool3{false, true, true}, a.Ge(b))
	require.Equal(t, linalg.Bool3{false, true, false}, a.Eq(b))
	require.Equal(t, linalg.Bool3{true, false, true}, a.Ne(b))
	require.Equal(t, linalg.Bool3{true, false, false}, a.LtScalar(f(2)))
	require.Equal(t, linalg.Bool3{false, false, true}, a.ScalarLt(f(2)))

	u := linalg.UInt2{1, math.MaxUint32}
	require.Equal(t, linalg.Bool2{true, false}, u.LtScalar(2))

	nan := linalg.BroadcastFloat2(sfloat.NaN)
	require.Equal(t, linalg.Bool2{}, nan.Eq(nan))
	require.False(t, nan.Equal(nan))
}

func TestVector_Logical(t *testing.T) {
	t.Parallel()

	p := linalg.Bool4{true, true, false, false}
	q := linalg.Bool4{true, false, true, false}
	require.Equal(t, linalg.Bool4{true, false, false, false}, p.And(q))
	require.Equal(t, linalg.Bool4{true, true, true, false}, p.Or(q))
	require.Equal(t, linalg.Bool4{false, true, true, false}, p.Xor(q))
	require.Equal(t, linalg.Bool4{false, false, true, true}, p.Not())
	require.True(t, linalg.BroadcastBool4(true).All())
	require.False(t, p.All())
	require.True(t, p.Any())
	require.False(t, linalg.Bool4{}.Any())

	i := linalg.Int2{0b1100, -1}
	require.Equal(t, linalg.Int2{0b1000, 0b1010}, i.And(linalg.Int2{0b1010, 0b1010}))
	require.Equal(t, linalg.Int2{0b1110, -1}, i.OrScalar(0b0010))
	require.Equal(t, linalg.Int2{0b0110, -11}, i.XorScalar(0b1010))
	require.Equal(t, linalg.Int2{^int32(0b1100), 0}, i.BitNot())
}

func TestVector_Shifts(t *testing.T) {
	t.Parallel()

	i := linalg.Int2{1, -8}
	require.Equal(t, linalg.Int2{2, -16}, i.Shl(1))
	require.Equal(t, linalg.Int2{2, -16}, i.Shl(33), "count is taken mod 32")
	require.Equal(t, linalg.Int2{0, -4}, i.Shr(1), "int shifts right arithmetically")

	u := linalg.UInt2{1, 0x80000000}
	require.Equal(t, linalg.UInt2{0, 0x40000000}, u.Shr(1), "uint shifts right logically")
	require.Equal(t, u, u.Shl(32))
}

func TestVector_IntegerDivisionByZeroPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { linalg.Int2{1, 2}.Div(linalg.Int2{1, 0}) })
	require.Panics(t, func() { linalg.UInt3{1, 2, 3}.ModScalar(0) })
}

func TestVector_FloatDivisionByZero(t *testing.T) {
	t.Parallel()

	v := linalg.Float3{f(1), f(-1), f(0)}.DivScalar(sfloat.Zero)
	require.Equal(t, linalg.Float3{sfloat.Inf, sfloat.NegInf, sfloat.NaN}, v)
}

func TestSelect(t *testing.T) {
	t.Parallel()

	got := linalg.SelectInt3(linalg.Int3{1, 2, 3}, linalg.Int3{-1, -2, -3}, linalg.Bool3{true, false, true})
	require.Equal(t, linalg.Int3{-1, 2, -3}, got)
}

func TestExtendAndIndex(t *testing.T) {
	t.Parallel()

	v := linalg.NewFloat2(f(1), f(2)).Extend(f(3)).Extend(f(4))
	require.Equal(t, linalg.Float4{f(1), f(2), f(3), f(4)}, v)
	require.Equal(t, f(3), v.At(2))
	v.Set(2, f(9))
	require.Equal(t, f(9), v.Z())
}

func TestMatrix_ColumnAccess(t *testing.T) {
	t.Parallel()

	m := linalg.IdentityInt3x3()
	c := m.Col(1)
	c[0] = 5
	require.Equal(t, int32(5), m[1][0], "Col returns a live reference")

	m.SetCol(2, linalg.Int3{7, 8, 9})
	require.Equal(t, linalg.Int3{7, 8, 9}, m.At(2))
}

func TestMatrix_Columnwise(t *testing.T) {
	t.Parallel()

	a := linalg.NewInt2x2(1, 2, 3, 4)
	b := linalg.NewInt2x2(5, 6, 7, 8)
	require.Equal(t, linalg.NewInt2x2(5, 12, 21, 32), a.Mul(b), "Mul is componentwise")
	require.Equal(t, linalg.NewInt2x2(6, 8, 10, 12), a.Add(b))
	require.Equal(t, linalg.NewInt2x2(9, 8, 7, 6), a.ScalarSub(10))
	require.Equal(t, linalg.NewInt2x2(-1, -2, -3, -4), a.Neg())
	require.Equal(t, linalg.NewInt2x2(2, 3, 4, 5), a.Inc())
	require.Equal(t, linalg.NewInt2x2(2, 4, 6, 8), a.Shl(1))
	require.Equal(t, linalg.NewBool2x2(true, true, false, false), a.LtScalar(3))
	require.Equal(t, linalg.NewBool2x2(false, false, true, true), a.LtScalar(3).Not())
	require.True(t, a.Equal(a))
	require.False(t, a.Equal(b))
	require.True(t, linalg.IdentityBool2x2().Any())
	require.False(t, linalg.IdentityBool2x2().All())
}

func TestConversions(t *testing.T) {
	t.Parallel()

	b := linalg.Bool3{true, false, true}
	require.Equal(t, linalg.Int3{1, 0, 1}, linalg.Int3FromBool3(b))
	require.Equal(t, linalg.UInt3{1, 0, 1}, linalg.UInt3FromBool3(b))
	require.Equal(t, linalg.Float3{sfloat.One, sfloat.Zero, sfloat.One}, linalg.Float3FromBool3(b))

	i := linalg.Int2{-1, 5}
	require.Equal(t, linalg.UInt2{math.MaxUint32, 5}, linalg.UInt2FromInt2(i))
	require.Equal(t, i, linalg.Int2FromUInt2(linalg.UInt2FromInt2(i)))
	require.Equal(t, linalg.Float2{f(-1), f(5)}, linalg.Float2FromInt2(i))
	require.Equal(t, linalg.Float2{f(7), sfloat.FromFloat32(4294967296)}, linalg.Float2FromUInt2(linalg.UInt2{7, math.MaxUint32}))

	x := linalg.Float4{sfloat.FromFloat32(2.7), sfloat.FromFloat32(-2.7), sfloat.NaN, sfloat.Inf}
	require.Equal(t, linalg.Int4{2, -2, 0, math.MaxInt32}, linalg.Int4FromFloat4(x))
	require.Equal(t, linalg.UInt4{2, 0, 0, math.MaxUint32}, linalg.UInt4FromFloat4(x))

	m := linalg.NewBool2x3(true, false, true, false, true, false)
	require.Equal(t, linalg.NewFloat2x3(f(1), f(0), f(1), f(0), f(1), f(0)), linalg.Float2x3FromBool2x3(m))
	require.Equal(t, linalg.NewInt2x3(1, 0, 1, 0, 1, 0), linalg.Int2x3FromFloat2x3(linalg.Float2x3FromBool2x3(m)))
}

func TestIntFloatRoundTrip(t *testing.T) {
	t.Parallel()

	r := newRand(7)
	for n := 0; n < 1000; n++ {
		v := linalg.Int4{
			int32(r.Bounded(1<<25)) - 1<<24,
			int32(r.Bounded(1<<25)) - 1<<24,
			int32(r.Bounded(1<<25)) - 1<<24,
			int32(r.Bounded(1<<25)) - 1<<24,
		}
		require.Equal(t, v, linalg.Int4FromFloat4(linalg.Float4FromInt4(v)))
	}
}

func TestSwizzle(t *testing.T) {
	t.Parallel()

	v := linalg.Float2{f(1), f(2)}
	require.Equal(t, v, v.YX().YX())
	require.Equal(t, linalg.Float2{f(2), f(1)}, v.YX())

	w := linalg.Float2{f(8), f(9)}
	v.SetXY(w)
	require.Equal(t, w, v.XY())
	v.SetYX(w)
	require.Equal(t, linalg.Float2{f(9), f(8)}, v)

	q := linalg.Int4{1, 2, 3, 4}
	require.Equal(t, linalg.Int3{3, 2, 1}, q.ZYX())
	require.Equal(t, linalg.Int2{4, 4}, q.WW())
	require.Equal(t, linalg.Int4{4, 3, 2, 1}, q.Swizzle4(3, 2, 1, 0))
	require.Equal(t, linalg.Int4{1, 1, 2, 2}, q.XY().Swizzle4(0, 0, 1, 1))
	q.SetWX(linalg.Int2{40, 10})
	require.Equal(t, linalg.Int4{10, 2, 3, 40}, q)
}

func TestString(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		got  string
		want string
	}{
		{"Float3", linalg.Float3{f(1), sfloat.Half, f(-3)}.String(), "Float3(1f, 0.5f, -3f)"},
		{"Int2", linalg.Int2{1, -2}.String(), "Int2(1, -2)"},
		{"UInt2", linalg.UInt2{1, 2}.String(), "UInt2(1, 2)"},
		{"Bool2", linalg.Bool2{true, false}.String(), "Bool2(true, false)"},
		{"Float2x2", linalg.IdentityFloat2x2().String(), "Float2x2(1f, 0f,  0f, 1f)"},
		{"Int2x3", linalg.NewInt2x3(1, 2, 3, 4, 5, 6).String(), "Int2x3(1, 2, 3,  4, 5, 6)"},
		{"Bool3x2", linalg.NewBool3x2(true, false, false, true, true, true).String(),
			"Bool3x2(true, false,  false, true,  true, true)"},
		{"NonFinite", linalg.Float2{sfloat.Inf, sfloat.NaN}.String(), "Float2(+Inff, NaNf)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.got)
		})
	}
}

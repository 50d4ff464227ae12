// SPDX-License-Identifier: MIT
// Package sfloat_test contains unit tests for the deterministic scalar.
package sfloat_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/detmath/sfloat"
)

func TestConstants_Bits(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		f    sfloat.Float
		want float32
	}{
		{"Zero", sfloat.Zero, 0},
		{"One", sfloat.One, 1},
		{"NegOne", sfloat.NegOne, -1},
		{"Half", sfloat.Half, 0.5},
		{"Two", sfloat.Two, 2},
		{"MaxValue", sfloat.MaxValue, math.MaxFloat32},
		{"SmallestNonzero", sfloat.SmallestNonzero, math.SmallestNonzeroFloat32},
		{"Inf", sfloat.Inf, float32(math.Inf(1))},
		{"NegInf", sfloat.NegInf, float32(math.Inf(-1))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, math.Float32bits(tc.want), tc.f.Bits())
			require.Equal(t, tc.f, sfloat.FromFloat32(tc.want))
		})
	}
	require.True(t, sfloat.NaN.IsNaN())
	require.True(t, sfloat.NegZero.Signbit())
	require.True(t, sfloat.NegZero.Eq(sfloat.Zero))
}

func TestArithmetic_Basic(t *testing.T) {
	t.Parallel()

	three := sfloat.FromInt32(3)
	four := sfloat.FromInt32(4)

	require.Equal(t, sfloat.FromInt32(7), three.Add(four))
	require.Equal(t, sfloat.NegOne, three.Sub(four))
	require.Equal(t, sfloat.FromInt32(12), three.Mul(four))
	require.Equal(t, sfloat.FromFloat32(0.75), three.Div(four))
	require.Equal(t, sfloat.One, four.Mod(three))
	require.Equal(t, sfloat.NegOne, four.Neg().Mod(three), "remainder takes the sign of the dividend")
	require.Equal(t, sfloat.FromInt32(-3), three.Neg())
	require.Equal(t, three, three.Neg().Abs())
}

func TestArithmetic_RoundsToBinary32(t *testing.T) {
	t.Parallel()

	// 2^24 + 1 is not representable; the sum must round to even (2^24).
	big := sfloat.FromInt32(1 << 24)
	require.Equal(t, big, big.Add(sfloat.One))

	x, y := float32(0.1), float32(0.2)
	require.Equal(t, math.Float32bits(x+y), sfloat.FromFloat32(x).Add(sfloat.FromFloat32(y)).Bits())
}

func TestDivision_NonFinite(t *testing.T) {
	t.Parallel()

	require.Equal(t, sfloat.Inf, sfloat.One.Div(sfloat.Zero))
	require.Equal(t, sfloat.NegInf, sfloat.NegOne.Div(sfloat.Zero))
	require.Equal(t, sfloat.NegInf, sfloat.One.Div(sfloat.NegZero))

	// 0/0, Inf-Inf and x%0 all produce the one canonical NaN pattern.
	require.Equal(t, sfloat.NaN, sfloat.Zero.Div(sfloat.Zero))
	require.Equal(t, sfloat.NaN, sfloat.Inf.Sub(sfloat.Inf))
	require.Equal(t, sfloat.NaN, sfloat.One.Mod(sfloat.Zero))
	require.Equal(t, sfloat.NaN, sfloat.Zero.Mul(sfloat.Inf))
}

func TestNaN_Canonical(t *testing.T) {
	t.Parallel()

	odd := sfloat.FromBits(0xFFC00001)
	require.True(t, odd.IsNaN())
	require.Equal(t, uint32(0xFFC00001), odd.Bits(), "FromBits keeps the raw pattern")

	require.Equal(t, sfloat.NaN, odd.Add(sfloat.One))
	require.Equal(t, sfloat.NaN, odd.Neg())
	require.Equal(t, sfloat.NaN, odd.Abs())
	require.Equal(t, sfloat.NaN, sfloat.FromFloat32(float32(math.NaN())))
}

func TestComparisons_IEEE(t *testing.T) {
	t.Parallel()

	one, two := sfloat.One, sfloat.Two
	require.True(t, one.Less(two))
	require.True(t, one.LessEq(one))
	require.True(t, two.Greater(one))
	require.True(t, two.GreaterEq(two))
	require.True(t, one.Ne(two))

	nan := sfloat.NaN
	require.False(t, nan.Eq(nan))
	require.True(t, nan.Ne(nan))
	require.False(t, nan.Less(one))
	require.False(t, nan.GreaterEq(one))
}

func TestCompare_TotalOrder(t *testing.T) {
	t.Parallel()

	in := []sfloat.Float{
		sfloat.NaN, sfloat.One, sfloat.NegInf, sfloat.Zero, sfloat.Inf, sfloat.NegOne,
	}
	slices.SortFunc(in, sfloat.Compare)
	require.Equal(t, []sfloat.Float{
		sfloat.NegInf, sfloat.NegOne, sfloat.Zero, sfloat.One, sfloat.Inf, sfloat.NaN,
	}, in)

	require.Zero(t, sfloat.Compare(sfloat.Zero, sfloat.NegZero))
	require.Zero(t, sfloat.Compare(sfloat.NaN, sfloat.FromBits(0xFFC00001)))
}

func TestMinMax(t *testing.T) {
	t.Parallel()

	a, b := sfloat.FromInt32(-2), sfloat.FromInt32(5)
	require.Equal(t, a, sfloat.Min(a, b))
	require.Equal(t, a, sfloat.Min(b, a))
	require.Equal(t, b, sfloat.Max(a, b))
	require.Equal(t, b, sfloat.Max(b, a))

	require.Equal(t, b, sfloat.Min(sfloat.NaN, b))
	require.Equal(t, sfloat.NaN, sfloat.Max(b, sfloat.NaN))
}

func TestIntegerConversions(t *testing.T) {
	t.Parallel()

	t.Run("RoundTripExact", func(t *testing.T) {
		for _, i := range []int32{0, 1, -1, 42, -1000, 1 << 24, -(1 << 24), 16777215} {
			require.Equal(t, i, sfloat.FromInt32(i).Int32())
		}
		for _, u := range []uint32{0, 1, 42, 1 << 24, 65535} {
			require.Equal(t, u, sfloat.FromUint32(u).Uint32())
		}
	})

	t.Run("RoundsToNearestEven", func(t *testing.T) {
		// 2^24+1 sits halfway between 2^24 and 2^24+2.
		require.Equal(t, int32(1<<24), sfloat.FromInt32(1<<24+1).Int32())
		require.Equal(t, int32(1<<24+4), sfloat.FromInt32(1<<24+3).Int32())
	})

	t.Run("TruncatesTowardZero", func(t *testing.T) {
		require.Equal(t, int32(2), sfloat.FromFloat32(2.9).Int32())
		require.Equal(t, int32(-2), sfloat.FromFloat32(-2.9).Int32())
		require.Equal(t, uint32(2), sfloat.FromFloat32(2.9).Uint32())
	})

	t.Run("Saturates", func(t *testing.T) {
		require.Equal(t, int32(math.MaxInt32), sfloat.Inf.Int32())
		require.Equal(t, int32(math.MinInt32), sfloat.NegInf.Int32())
		require.Equal(t, int32(math.MaxInt32), sfloat.FromFloat32(3e9).Int32())
		require.Equal(t, uint32(math.MaxUint32), sfloat.FromFloat32(1e10).Uint32())
		require.Equal(t, uint32(0), sfloat.FromFloat32(-7).Uint32())
	})

	t.Run("NaNIsZero", func(t *testing.T) {
		require.Zero(t, sfloat.NaN.Int32())
		require.Zero(t, sfloat.NaN.Uint32())
	})

	require.Equal(t, sfloat.One, sfloat.FromBool(true))
	require.Equal(t, sfloat.Zero, sfloat.FromBool(false))
}

func TestClassification(t *testing.T) {
	t.Parallel()

	require.True(t, sfloat.Inf.IsInf())
	require.True(t, sfloat.NegInf.IsInf())
	require.False(t, sfloat.MaxValue.IsInf())
	require.True(t, sfloat.MaxValue.IsFinite())
	require.False(t, sfloat.NaN.IsFinite())
	require.False(t, sfloat.Inf.IsNaN())
	require.False(t, sfloat.Zero.Signbit())
	require.True(t, sfloat.NegOne.Signbit())
}

func TestStringParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   float32
		want string
	}{
		{1, "1"},
		{0.5, "0.5"},
		{-3.25, "-3.25"},
		{0.1, "0.1"},
		{1e7, "1e+07"},
		{float32(math.Inf(1)), "+Inf"},
		{float32(math.Inf(-1)), "-Inf"},
	}
	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			f := sfloat.FromFloat32(tc.in)
			require.Equal(t, tc.want, f.String())

			back, err := sfloat.Parse(f.String())
			require.NoError(t, err)
			require.Equal(t, f, back)
		})
	}

	require.Equal(t, "NaN", sfloat.NaN.String())
	nan, err := sfloat.Parse("NaN")
	require.NoError(t, err)
	require.Equal(t, sfloat.NaN, nan)

	require.Equal(t, "-0", sfloat.NegZero.String())
	nz, err := sfloat.Parse("-0")
	require.NoError(t, err)
	require.Equal(t, sfloat.NegZero, nz)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	_, err := sfloat.Parse("1.5x")
	require.ErrorIs(t, err, sfloat.ErrSyntax)

	_, err = sfloat.Parse("")
	require.ErrorIs(t, err, sfloat.ErrSyntax)

	_, err = sfloat.Parse("1e39")
	require.ErrorIs(t, err, sfloat.ErrRange)

	require.Panics(t, func() { sfloat.MustParse("nope") })
	require.Equal(t, sfloat.Half, sfloat.MustParse("0.5"))
}

// SPDX-License-Identifier: MIT
package literal_test

import (
	"testing"

	"github.com/MichaelTJones/pcg"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/detmath/linalg"
	"github.com/katalvlaran/detmath/literal"
	"github.com/katalvlaran/detmath/sfloat"
)

func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	values := []literal.Value{
		linalg.NewBool2(true, false),
		linalg.NewBool3x2(true, false, false, true, true, true),
		linalg.NewInt3(1, -2, 3),
		linalg.NewInt2x3(1, 2, 3, 4, 5, 6),
		linalg.NewInt2(-2147483648, 2147483647),
		linalg.NewUInt4(0, 1, 4294967295, 7),
		linalg.ZeroUInt4x2(),
		linalg.IdentityFloat4x4(),
		linalg.NewFloat2(sfloat.NegZero, sfloat.MaxValue),
		linalg.NewFloat3(sfloat.Inf, sfloat.NegInf, sfloat.NaN),
		linalg.NewFloat4(sfloat.SmallestNonzero, sfloat.SmallestNormal, sfloat.MustParse("1e7"), sfloat.MustParse("-0.1")),
	}
	for _, v := range values {
		got, err := literal.Parse(v.String())
		require.NoError(t, err, v.String())
		require.Equal(t, v, got)
		require.Equal(t, v.Hash(), got.Hash())
	}
}

func TestParse_NonCanonicalNaN(t *testing.T) {
	t.Parallel()

	v := linalg.NewFloat2(sfloat.FromBits(0xFFC00000), sfloat.One)
	require.Equal(t, "Float2(NaNf, 1f)", v.String())

	got, err := literal.Parse(v.String())
	require.NoError(t, err)
	require.Equal(t, linalg.NewFloat2(sfloat.NaN, sfloat.One), got)
	require.NotEqual(t, v.Hash(), got.Hash())
}

func TestParse_RoundTripRandomFloat4x4(t *testing.T) {
	t.Parallel()

	r := pcg.NewPCG32()
	r.Seed(7, 0xda3e39cb94b95bdb)
	for i := 0; i < 200; i++ {
		var m linalg.Float4x4
		for c := range m {
			for row := range m[c] {
				x := sfloat.FromBits(r.Random())
				if x.IsNaN() {
					x = sfloat.NaN
				}
				m[c][row] = x
			}
		}
		got, err := literal.Parse(m.String())
		require.NoError(t, err, m.String())
		require.Equal(t, m, got)
	}
}

func TestParseLiteral_Fields(t *testing.T) {
	t.Parallel()

	lit, err := literal.ParseLiteral("Int2x3(1, 2, 3,  4, 5, 6)")
	require.NoError(t, err)
	require.Equal(t, "Int2x3", lit.Name)
	require.Equal(t, "Int", lit.Domain)
	require.Equal(t, 2, lit.Rows)
	require.Equal(t, 3, lit.Cols)
	require.True(t, lit.IsMatrix())
	require.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, lit.Elems)
	require.Equal(t, [][]string{{"1", "2", "3"}, {"4", "5", "6"}}, lit.Grid())

	lit, err = literal.ParseLiteral("Float3(1f, -0.5f, NaNf)")
	require.NoError(t, err)
	require.Equal(t, "Float", lit.Domain)
	require.Equal(t, 3, lit.Rows)
	require.Zero(t, lit.Cols)
	require.False(t, lit.IsMatrix())
	require.Equal(t, [][]string{{"1f", "-0.5f", "NaNf"}}, lit.Grid())
}

func TestParse_Whitespace(t *testing.T) {
	t.Parallel()

	got, err := literal.Parse("  Int2( 1 ,2 )\n")
	require.NoError(t, err)
	require.Equal(t, linalg.NewInt2(1, 2), got)
}

func TestParse_FloatSuffix(t *testing.T) {
	t.Parallel()

	got, err := literal.Parse("Float4(1, 2.5f, Inf, -Inff)")
	require.NoError(t, err)
	require.Equal(t, linalg.NewFloat4(sfloat.One, sfloat.MustParse("2.5"), sfloat.Inf, sfloat.NegInf), got)

	_, err = literal.Parse("Float2(1, 2f)", literal.WithStrictSuffix(true))
	require.ErrorIs(t, err, literal.ErrMissingSuffix)
	require.NotErrorIs(t, err, literal.ErrElement)

	_, err = literal.Parse("Float2(Inf, 2f)", literal.WithStrictSuffix(true))
	require.ErrorIs(t, err, literal.ErrMissingSuffix)

	got, err = literal.Parse("Float2(Inff, 2f)", literal.WithStrictSuffix(true))
	require.NoError(t, err)
	require.Equal(t, linalg.NewFloat2(sfloat.Inf, sfloat.Two), got)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want error
	}{
		{"NoParens", "Int2 1, 2", literal.ErrSyntax},
		{"Unclosed", "Int2(1, 2", literal.ErrSyntax},
		{"Nested", "Int2((1), 2)", literal.ErrSyntax},
		{"BadIdent", "2Int(1, 2)", literal.ErrSyntax},
		{"EmptyElement", "Int2(1, )", literal.ErrSyntax},
		{"Empty", "", literal.ErrSyntax},
		{"UnknownDim", "Int5(1, 2, 3, 4, 5)", literal.ErrUnknownType},
		{"UnknownDomain", "Double2(1, 2)", literal.ErrUnknownType},
		{"TooMany", "Int2(1, 2, 3)", literal.ErrArity},
		{"NoElements", "Int2()", literal.ErrArity},
		{"MatrixArity", "Bool2x2(true, false, true)", literal.ErrArity},
		{"NotInt", "Int2(1, x)", literal.ErrElement},
		{"IntOverflow", "Int2(1, 2147483648)", literal.ErrElement},
		{"NegativeUInt", "UInt2(1, -1)", literal.ErrElement},
		{"UIntOverflow", "UInt2(4294967296, 0)", literal.ErrElement},
		{"NotBool", "Bool2(true, yes)", literal.ErrElement},
		{"NotFloat", "Float2(1f, abc)", literal.ErrElement},
		{"FloatRange", "Float2(1e39f, 0f)", literal.ErrElement},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			v, err := literal.Parse(tc.in)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, v)
			require.Contains(t, err.Error(), "Parse: ")

			_, err = literal.ParseLiteral(tc.in)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_MaxInputLen(t *testing.T) {
	t.Parallel()

	_, err := literal.Parse("Int2(1, 2)", literal.WithMaxInputLen(8))
	require.ErrorIs(t, err, literal.ErrTooLong)

	_, err = literal.Parse("Int2(1, 2)", literal.WithMaxInputLen(10))
	require.NoError(t, err)

	require.PanicsWithValue(t, "literal: WithMaxInputLen: n must be > 0", func() {
		literal.WithMaxInputLen(0)
	})
}

func TestParse_NilOptionIgnored(t *testing.T) {
	t.Parallel()

	got, err := literal.Parse("UInt2(3, 4)", nil)
	require.NoError(t, err)
	require.Equal(t, linalg.NewUInt2(3, 4), got)
}

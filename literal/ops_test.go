// SPDX-License-Identifier: MIT
package literal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/detmath/linalg"
	"github.com/katalvlaran/detmath/literal"
	"github.com/katalvlaran/detmath/sfloat"
)

func mustParse(t *testing.T, s string) literal.Value {
	t.Helper()
	v, err := literal.Parse(s)
	require.NoError(t, err)
	return v
}

func TestHashWide(t *testing.T) {
	t.Parallel()

	w, err := literal.HashWide(mustParse(t, "Bool2x2(true, false,  false, true)"))
	require.NoError(t, err)
	require.Equal(t, linalg.UInt2{0x21F5B8F4, 0x7D50304A}, w)

	v := linalg.NewInt3(1, -2, 3)
	w, err = literal.HashWide(v)
	require.NoError(t, err)
	require.Equal(t, v.HashWide(), w)

	m := linalg.NewFloat3x4(f(1), f(2), f(3), f(4), f(5), f(6), f(7), f(8), f(9), f(10), f(11), f(12))
	w, err = literal.HashWide(m)
	require.NoError(t, err)
	require.IsType(t, linalg.UInt3{}, w)
	require.Equal(t, m.HashWide(), w)
}

func TestTranspose(t *testing.T) {
	t.Parallel()

	got, err := literal.Transpose(mustParse(t, "Int2x3(1, 2, 3,  4, 5, 6)"))
	require.NoError(t, err)
	require.Equal(t, linalg.NewInt3x2(1, 4, 2, 5, 3, 6), got)
	require.Equal(t, "Int3x2(1, 4,  2, 5,  3, 6)", got.String())

	_, err = literal.Transpose(linalg.NewFloat4(f(1), f(2), f(3), f(4)))
	require.ErrorIs(t, err, literal.ErrUnsupported)
	require.Contains(t, err.Error(), "Transpose: linalg.Float4")
}

func TestDeterminant(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"Float2x2(1f, 0f,  0f, 1f)", "1"},
		{"Float2x2(1f, 2f,  3f, 4f)", "-2"},
		{"Float3x3(2f, 0f, 0f,  0f, 4f, 0f,  0f, 0f, 8f)", "64"},
		{"Float2x2(0.5f, 0f,  0f, 0.5f)", "0.25"},
		{"Int2x2(1, 2,  3, 4)", "-2"},
		{"Int3x3(1, 0, 0,  0, 1, 0,  0, 0, 1)", "1"},
		{"Int3x3(1, 2, 3,  4, 5, 6,  7, 8, 9)", "0"},
	}
	for _, tc := range cases {
		got, err := literal.Determinant(mustParse(t, tc.in))
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}

	for _, in := range []string{"Bool2x2(true, false,  false, true)", "UInt2x2(1, 0,  0, 1)", "Float4x4(1f, 0f, 0f, 0f,  0f, 1f, 0f, 0f,  0f, 0f, 1f, 0f,  0f, 0f, 0f, 1f)", "Int2x3(1, 2, 3,  4, 5, 6)"} {
		_, err := literal.Determinant(mustParse(t, in))
		require.ErrorIs(t, err, literal.ErrUnsupported, in)
	}
}

func TestInverse_Float(t *testing.T) {
	t.Parallel()

	got, err := literal.Inverse(mustParse(t, "Float2x2(2f, 0f,  0f, 2f)"))
	require.NoError(t, err)
	want := linalg.NewFloat2x2(sfloat.Half, sfloat.Zero, sfloat.Zero, sfloat.Half)
	require.True(t, got.(linalg.Float2x2).Equal(want), got.String())

	got, err = literal.Inverse(mustParse(t, "Float3x3(2f, 0f, 0f,  0f, 4f, 0f,  0f, 0f, 8f)"), literal.WithSingularGuard(true))
	require.NoError(t, err)
	want3 := linalg.NewFloat3x3(sfloat.Half, sfloat.Zero, sfloat.Zero, sfloat.Zero, sfloat.MustParse("0.25"), sfloat.Zero, sfloat.Zero, sfloat.Zero, sfloat.MustParse("0.125"))
	require.True(t, got.(linalg.Float3x3).Equal(want3), got.String())
}

func TestInverse_FloatSingular(t *testing.T) {
	t.Parallel()

	singular := mustParse(t, "Float2x2(1f, 2f,  2f, 4f)")

	got, err := literal.Inverse(singular)
	require.NoError(t, err)
	m := got.(linalg.Float2x2)
	require.False(t, m[0][0].IsFinite())

	_, err = literal.Inverse(singular, literal.WithSingularGuard(true))
	require.ErrorIs(t, err, literal.ErrSingular)

	_, err = literal.Inverse(mustParse(t, "Float3x3(1f, 2f, 3f,  4f, 5f, 6f,  7f, 8f, 9f)"), literal.WithSingularGuard(true))
	require.ErrorIs(t, err, literal.ErrSingular)
}

func TestInverse_Int(t *testing.T) {
	t.Parallel()

	got, err := literal.Inverse(mustParse(t, "Int2x2(1, 1,  0, 1)"))
	require.NoError(t, err)
	require.Equal(t, linalg.NewInt2x2(1, -1, 0, 1), got)

	got, err = literal.Inverse(mustParse(t, "Int3x3(1, 0, 0,  0, 1, 0,  0, 0, 1)"))
	require.NoError(t, err)
	require.Equal(t, linalg.IdentityInt3x3(), got)

	_, err = literal.Inverse(mustParse(t, "Int2x2(1, 2,  2, 4)"))
	require.ErrorIs(t, err, literal.ErrSingular)
	require.Contains(t, err.Error(), "Inverse: Int2x2(1, 2,  2, 4)")

	_, err = literal.Inverse(mustParse(t, "Int3x3(1, 2, 3,  4, 5, 6,  7, 8, 9)"))
	require.ErrorIs(t, err, literal.ErrSingular)

	_, err = literal.Inverse(mustParse(t, "UInt2x2(1, 0,  0, 1)"))
	require.ErrorIs(t, err, literal.ErrUnsupported)
}

func TestFastInverse(t *testing.T) {
	t.Parallel()

	got, err := literal.FastInverse(mustParse(t, "Float3x4(1f, 0f, 0f, 5f,  0f, 1f, 0f, 6f,  0f, 0f, 1f, 7f)"))
	require.NoError(t, err)
	want := linalg.NewFloat3x4(
		f(1), f(0), f(0), f(-5),
		f(0), f(1), f(0), f(-6),
		f(0), f(0), f(1), f(-7),
	)
	require.True(t, got.(linalg.Float3x4).Equal(want), got.String())

	_, err = literal.FastInverse(linalg.IdentityFloat4x4())
	require.ErrorIs(t, err, literal.ErrUnsupported)
}

func f(i int32) sfloat.Float { return sfloat.FromInt32(i) }

// SPDX-License-Identifier: MIT
package linalg_test

import (
	"testing"

	"github.com/MichaelTJones/pcg"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/detmath/internal/refmat"
	"github.com/katalvlaran/detmath/linalg"
	"github.com/katalvlaran/detmath/sfloat"
)

func TestTranspose_Involution(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		build func(r *pcg.PCG32) (any, any)
	}{
		{"Bool2x2", func(r *pcg.PCG32) (any, any) {
			m := linalg.Bool2x2FromColumns(rb2(r), rb2(r))
			return m, m.Transpose().Transpose()
		}},
		{"Bool2x3", func(r *pcg.PCG32) (any, any) {
			m := linalg.Bool2x3FromColumns(rb2(r), rb2(r), rb2(r))
			return m, m.Transpose().Transpose()
		}},
		{"Bool2x4", func(r *pcg.PCG32) (any, any) {
			m := linalg.Bool2x4FromColumns(rb2(r), rb2(r), rb2(r), rb2(r))
			return m, m.Transpose().Transpose()
		}},
		{"Bool3x2", func(r *pcg.PCG32) (any, any) {
			m := linalg.Bool3x2FromColumns(rb3(r), rb3(r))
			return m, m.Transpose().Transpose()
		}},
		{"Bool3x3", func(r *pcg.PCG32) (any, any) {
			m := linalg.Bool3x3FromColumns(rb3(r), rb3(r), rb3(r))
			return m, m.Transpose().Transpose()
		}},
		{"Bool3x4", func(r *pcg.PCG32) (any, any) {
			m := linalg.Bool3x4FromColumns(rb3(r), rb3(r), rb3(r), rb3(r))
			return m, m.Transpose().Transpose()
		}},
		{"Bool4x2", func(r *pcg.PCG32) (any, any) {
			m := linalg.Bool4x2FromColumns(rb4(r), rb4(r))
			return m, m.Transpose().Transpose()
		}},
		{"Bool4x3", func(r *pcg.PCG32) (any, any) {
			m := linalg.Bool4x3FromColumns(rb4(r), rb4(r), rb4(r))
			return m, m.Transpose().Transpose()
		}},
		{"Bool4x4", func(r *pcg.PCG32) (any, any) {
			m := linalg.Bool4x4FromColumns(rb4(r), rb4(r), rb4(r), rb4(r))
			return m, m.Transpose().Transpose()
		}},
		{"Int2x2", func(r *pcg.PCG32) (any, any) {
			m := linalg.Int2x2FromColumns(ri2(r), ri2(r))
			return m, m.Transpose().Transpose()
		}},
		{"Int2x3", func(r *pcg.PCG32) (any, any) {
			m := linalg.Int2x3FromColumns(ri2(r), ri2(r), ri2(r))
			return m, m.Transpose().Transpose()
		}},
		{"Int2x4", func(r *pcg.PCG32) (any, any) {
			m := linalg.Int2x4FromColumns(ri2(r), ri2(r), ri2(r), ri2(r))
			return m, m.Transpose().Transpose()
		}},
		{"Int3x2", func(r *pcg.PCG32) (any, any) {
			m := linalg.Int3x2FromColumns(ri3(r), ri3(r))
			return m, m.Transpose().Transpose()
		}},
		{"Int3x3", func(r *pcg.PCG32) (any, any) {
			m := linalg.Int3x3FromColumns(ri3(r), ri3(r), ri3(r))
			return m, m.Transpose().Transpose()
		}},
		{"Int3x4", func(r *pcg.PCG32) (any, any) {
			m := linalg.Int3x4FromColumns(ri3(r), ri3(r), ri3(r), ri3(r))
			return m, m.Transpose().Transpose()
		}},
		{"Int4x2", func(r *pcg.PCG32) (any, any) {
			m := linalg.Int4x2FromColumns(ri4(r), ri4(r))
			return m, m.Transpose().Transpose()
		}},
		{"Int4x3", func(r *pcg.PCG32) (any, any) {
			m := linalg.Int4x3FromColumns(ri4(r), ri4(r), ri4(r))
			return m, m.Transpose().Transpose()
		}},
		{"Int4x4", func(r *pcg.PCG32) (any, any) {
			m := linalg.Int4x4FromColumns(ri4(r), ri4(r), ri4(r), ri4(r))
			return m, m.Transpose().Transpose()
		}},
		{"UInt2x2", func(r *pcg.PCG32) (any, any) {
			m := linalg.UInt2x2FromColumns(ru2(r), ru2(r))
			return m, m.Transpose().Transpose()
		}},
		{"UInt2x3", func(r *pcg.PCG32) (any, any) {
			m := linalg.UInt2x3FromColumns(ru2(r), ru2(r), ru2(r))
			return m, m.Transpose().Transpose()
		}},
		{"UInt2x4", func(r *pcg.PCG32) (any, any) {
			m := linalg.UInt2x4FromColumns(ru2(r), ru2(r), ru2(r), ru2(r))
			return m, m.Transpose().Transpose()
		}},
		{"UInt3x2", func(r *pcg.PCG32) (any, any) {
			m := linalg.UInt3x2FromColumns(ru3(r), ru3(r))
			return m, m.Transpose().Transpose()
		}},
		{"UInt3x3", func(r *pcg.PCG32) (any, any) {
			m := linalg.UInt3x3FromColumns(ru3(r), ru3(r), ru3(r))
			return m, m.Transpose().Transpose()
		}},
		{"UInt3x4", func(r *pcg.PCG32) (any, any) {
			m := linalg.UInt3x4FromColumns(ru3(r), ru3(r), ru3(r), ru3(r))
			return m, m.Transpose().Transpose()
		}},
		{"UInt4x2", func(r *pcg.PCG32) (any, any) {
			m := linalg.UInt4x2FromColumns(ru4(r), ru4(r))
			return m, m.Transpose().Transpose()
		}},
		{"UInt4x3", func(r *pcg.PCG32) (any, any) {
			m := linalg.UInt4x3FromColumns(ru4(r), ru4(r), ru4(r))
			return m, m.Transpose().Transpose()
		}},
		{"UInt4x4", func(r *pcg.PCG32) (any, any) {
			m := linalg.UInt4x4FromColumns(ru4(r), ru4(r), ru4(r), ru4(r))
			return m, m.Transpose().Transpose()
		}},
		{"Float2x2", func(r *pcg.PCG32) (any, any) {
			m := linalg.Float2x2FromColumns(rf2(r), rf2(r))
			return m, m.Transpose().Transpose()
		}},
		{"Float2x3", func(r *pcg.PCG32) (any, any) {
			m := linalg.Float2x3FromColumns(rf2(r), rf2(r), rf2(r))
			return m, m.Transpose().Transpose()
		}},
		{"Float2x4", func(r *pcg.PCG32) (any, any) {
			m := linalg.Float2x4FromColumns(rf2(r), rf2(r), rf2(r), rf2(r))
			return m, m.Transpose().Transpose()
		}},
		{"Float3x2", func(r *pcg.PCG32) (any, any) {
			m := linalg.Float3x2FromColumns(rf3(r), rf3(r))
			return m, m.Transpose().Transpose()
		}},
		{"Float3x3", func(r *pcg.PCG32) (any, any) {
			m := linalg.Float3x3FromColumns(rf3(r), rf3(r), rf3(r))
			return m, m.Transpose().Transpose()
		}},
		{"Float3x4", func(r *pcg.PCG32) (any, any) {
			m := linalg.Float3x4FromColumns(rf3(r), rf3(r), rf3(r), rf3(r))
			return m, m.Transpose().Transpose()
		}},
		{"Float4x2", func(r *pcg.PCG32) (any, any) {
			m := linalg.Float4x2FromColumns(rf4(r), rf4(r))
			return m, m.Transpose().Transpose()
		}},
		{"Float4x3", func(r *pcg.PCG32) (any, any) {
			m := linalg.Float4x3FromColumns(rf4(r), rf4(r), rf4(r))
			return m, m.Transpose().Transpose()
		}},
		{"Float4x4", func(r *pcg.PCG32) (any, any) {
			m := linalg.Float4x4FromColumns(rf4(r), rf4(r), rf4(r), rf4(r))
			return m, m.Transpose().Transpose()
		}},
	}
	for i, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRand(uint64(i))
			for n := 0; n < 16; n++ {
				m, back := tc.build(r)
				require.Equal(t, m, back)
			}
		})
	}
}

func TestTranspose_Shape(t *testing.T) {
	t.Parallel()

	m := linalg.NewFloat2x4(f(1), f(2), f(3), f(4), f(5), f(6), f(7), f(8))
	want := linalg.NewFloat4x2(f(1), f(5), f(2), f(6), f(3), f(7), f(4), f(8))
	require.Equal(t, want, m.Transpose())
}

func TestDeterminant_Identity(t *testing.T) {
	t.Parallel()

	require.Equal(t, sfloat.One, linalg.IdentityFloat2x2().Determinant())
	require.Equal(t, sfloat.One, linalg.IdentityFloat3x3().Determinant())
	require.Equal(t, int32(1), linalg.IdentityInt2x2().Determinant())
	require.Equal(t, int32(1), linalg.IdentityInt3x3().Determinant())
}

func TestDeterminant_Values(t *testing.T) {
	t.Parallel()

	require.Equal(t, int32(-2), linalg.NewInt2x2(1, 2, 3, 4).Determinant())
	require.Equal(t, f(-2), linalg.NewFloat2x2(f(1), f(2), f(3), f(4)).Determinant())

	m := linalg.NewInt3x3(
		2, 0, 1,
		1, 3, 2,
		1, 1, 1,
	)
	// 2*(3-2) - 0*(1-2) + 1*(1-3) = 0
	require.Equal(t, int32(0), m.Determinant())

	n := linalg.NewFloat3x3(
		f(6), f(1), f(1),
		f(4), f(-2), f(5),
		f(2), f(8), f(7),
	)
	require.Equal(t, f(-306), n.Determinant())
	require.Equal(t, int32(-306), linalg.Int3x3FromFloat3x3(n).Determinant())
}

func TestInverse_Float2x2(t *testing.T) {
	t.Parallel()

	r := newRand(22)
	for n := 0; n < 200; n++ {
		m := linalg.NewFloat2x2(
			randSmall(r).Add(f(4)), randSmall(r),
			randSmall(r), randSmall(r).Add(f(4)),
		)
		inv := m.Inverse()
		assertIdentity(t, dense2(inv), dense2(m))
		assertIdentity(t, dense2(m), dense2(inv))
	}
}

func TestInverse_Float3x3(t *testing.T) {
	t.Parallel()

	r := newRand(33)
	for n := 0; n < 200; n++ {
		m := linalg.NewFloat3x3(
			randSmall(r).Add(f(4)), randSmall(r), randSmall(r),
			randSmall(r), randSmall(r).Add(f(4)), randSmall(r),
			randSmall(r), randSmall(r), randSmall(r).Add(f(4)),
		)
		inv := m.Inverse()
		assertIdentity(t, dense3(inv), dense3(m))
		assertIdentity(t, dense3(m), dense3(inv))
	}
}

func TestInverse_Int_Unimodular(t *testing.T) {
	t.Parallel()

	r := newRand(44)
	small := func() int32 { return int32(r.Bounded(7)) - 3 }
	for n := 0; n < 200; n++ {
		upper := linalg.NewInt3x3(1, small(), small(), 0, 1, small(), 0, 0, 1)
		lower := linalg.NewInt3x3(1, 0, 0, small(), 1, 0, small(), small(), 1)
		m := mulInt3(upper, lower)
		require.Equal(t, int32(1), m.Determinant())
		require.Equal(t, linalg.IdentityInt3x3(), mulInt3(m.Inverse(), m))
		require.Equal(t, linalg.IdentityInt3x3(), mulInt3(m, m.Inverse()))

		m2 := mulInt2(linalg.NewInt2x2(1, small(), 0, 1), linalg.NewInt2x2(1, 0, small(), 1))
		require.Equal(t, linalg.IdentityInt2x2(), mulInt2(m2.Inverse(), m2))
	}

	// det == -1 inverts exactly as well.
	swap := linalg.NewInt2x2(0, 1, 1, 0)
	require.Equal(t, swap, swap.Inverse())
}

func TestInverse_Int_NonUnimodular(t *testing.T) {
	t.Parallel()

	require.Equal(t, linalg.Int2x2{}, linalg.NewInt2x2(2, 0, 0, 2).Inverse())
	require.Panics(t, func() { linalg.NewInt2x2(1, 2, 2, 4).Inverse() })
	require.Panics(t, func() { linalg.ZeroInt3x3().Inverse() })
}

func TestInverse_SingularFloat(t *testing.T) {
	t.Parallel()

	inv := linalg.NewFloat2x2(f(1), f(2), f(2), f(4)).Inverse()
	for c := 0; c < 2; c++ {
		for row := 0; row < 2; row++ {
			require.False(t, inv[c][row].IsFinite(), "element [%d][%d] = %v", c, row, inv[c][row])
		}
	}

	inv3 := linalg.ZeroFloat3x3().Inverse()
	require.True(t, inv3[0][0].IsNaN())
}

func TestInverse_OperationOrder(t *testing.T) {
	t.Parallel()

	// Recompute the 2x2 inverse by hand in the documented order and compare bits.
	r := newRand(55)
	for n := 0; n < 100; n++ {
		m := linalg.Float2x2FromColumns(rf2(r), rf2(r))
		a, b, c, d := m[0][0], m[1][0], m[0][1], m[1][1]
		rcp := sfloat.One.Div(a.Mul(d).Sub(b.Mul(c)))
		want := linalg.Float2x2{
			{d.Mul(rcp), c.Neg().Mul(rcp)},
			{b.Neg().Mul(rcp), a.Mul(rcp)},
		}
		require.Equal(t, want, m.Inverse())
	}
}

func TestDeterminant3x3_OperationOrder(t *testing.T) {
	t.Parallel()

	r := newRand(56)
	for n := 0; n < 200; n++ {
		m := linalg.Float3x3FromColumns(rf3(r), rf3(r), rf3(r))
		c0, c1, c2 := m[0], m[1], m[2]
		minor := func(p, q, u, w sfloat.Float) sfloat.Float { return p.Mul(q).Sub(u.Mul(w)) }
		m00 := minor(c1[1], c2[2], c1[2], c2[1])
		m01 := minor(c0[1], c2[2], c0[2], c2[1])
		m02 := minor(c0[1], c1[2], c0[2], c1[1])
		want := c0[0].Mul(m00).Sub(c1[0].Mul(m01)).Add(c2[0].Mul(m02))
		require.Equal(t, want.Bits(), m.Determinant().Bits(), "m = %v", m)
	}
}

func TestInverse3x3_OperationOrder(t *testing.T) {
	t.Parallel()

	// Rows regrouped as t_k = (c1[k], c2[k], c0[k]); cofactors are cyclic
	// cross products; det = (t0.z*m0.x + t0.x*m0.y) + t0.y*m0.z.
	r := newRand(57)
	for n := 0; n < 200; n++ {
		m := linalg.Float3x3FromColumns(rf3(r), rf3(r), rf3(r))
		var tr [3][3]sfloat.Float
		for k := 0; k < 3; k++ {
			tr[k] = [3]sfloat.Float{m[1][k], m[2][k], m[0][k]}
		}
		t0, t1, t2 := tr[0], tr[1], tr[2]
		var m0, m1, m2 [3]sfloat.Float
		for i := 0; i < 3; i++ {
			j := (i + 1) % 3
			m0[i] = t1[i].Mul(t2[j]).Sub(t1[j].Mul(t2[i]))
			m1[i] = t0[j].Mul(t2[i]).Sub(t0[i].Mul(t2[j]))
			m2[i] = t0[i].Mul(t1[j]).Sub(t0[j].Mul(t1[i]))
		}
		det := t0[2].Mul(m0[0]).Add(t0[0].Mul(m0[1])).Add(t0[1].Mul(m0[2]))
		rcp := sfloat.One.Div(det)

		var want linalg.Float3x3
		for i := 0; i < 3; i++ {
			want[0][i] = m0[i].Mul(rcp)
			want[1][i] = m1[i].Mul(rcp)
			want[2][i] = m2[i].Mul(rcp)
		}
		require.Equal(t, want, m.Inverse(), "m = %v", m)
	}
}

func TestFastInverse_OperationOrder(t *testing.T) {
	t.Parallel()

	r := newRand(58)
	for n := 0; n < 200; n++ {
		m := linalg.Float3x4FromColumns(rf3(r), rf3(r), rf3(r), rf3(r))
		tv := m[3]

		var want linalg.Float3x4
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				want[i][j] = m[j][i]
			}
		}
		for i := 0; i < 3; i++ {
			acc := m[i][0].Mul(tv[0]).Add(m[i][1].Mul(tv[1])).Add(m[i][2].Mul(tv[2]))
			want[3][i] = acc.Neg()
		}
		require.Equal(t, want, m.FastInverse(), "m = %v", m)
	}
}

func TestFastInverse(t *testing.T) {
	t.Parallel()

	// 90° about Z, then translate by (1, 2, 3).
	m := linalg.NewFloat3x4(
		f(0), f(-1), f(0), f(1),
		f(1), f(0), f(0), f(2),
		f(0), f(0), f(1), f(3),
	)
	want := linalg.NewFloat3x4(
		f(0), f(1), f(0), f(-2),
		f(-1), f(0), f(0), f(1),
		f(0), f(0), f(1), f(-3),
	)
	require.Equal(t, want, m.FastInverse())

	// A rotation built from a unit quaternion-like set of cosines.
	c, s := sfloat.FromFloat32(0.6), sfloat.FromFloat32(0.8)
	rot := linalg.NewFloat3x3(
		c, s.Neg(), f(0),
		s, c, f(0),
		f(0), f(0), f(1),
	)
	tr := linalg.Float3x4FromRotationTranslation(rot, linalg.Float3{f(5), f(-7), f(2)})
	assertIdentity(t, dense4(linalg.Float4x4FromFloat3x4(tr.FastInverse())), dense4(linalg.Float4x4FromFloat3x4(tr)))
}

func TestTransformHelpers(t *testing.T) {
	t.Parallel()

	rot := linalg.NewFloat3x3(f(1), f(2), f(3), f(4), f(5), f(6), f(7), f(8), f(9))
	tr := linalg.Float3{f(10), f(11), f(12)}
	m := linalg.Float3x4FromRotationTranslation(rot, tr)
	require.Equal(t, rot, m.Rotation())
	require.Equal(t, tr, m.Translation())

	h := linalg.Float4x4FromRotationTranslation(rot, tr)
	require.Equal(t, linalg.Float4{f(10), f(11), f(12), f(1)}, h[3])
	require.Equal(t, linalg.Float4{f(1), f(4), f(7), f(0)}, h[0])
	require.Equal(t, rot, linalg.Float3x3FromFloat4x4(h))

	x := linalg.Float3{f(1), f(0), f(0)}
	y := linalg.Float3{f(0), f(1), f(0)}
	require.True(t, x.Cross(y).Equal(linalg.Float3{f(0), f(0), f(1)}))
	require.True(t, y.Cross(x).Equal(linalg.Float3{f(0), f(0), f(-1)}))
}

// assertIdentity checks a·b ≈ I in float64.
func assertIdentity(t *testing.T, a, b *refmat.Dense) {
	t.Helper()
	p, err := refmat.Mul(a, b)
	require.NoError(t, err)
	id, err := refmat.NewIdentity(p.Rows())
	require.NoError(t, err)
	ok, err := refmat.AllClose(p, id, 0, 1e-5)
	require.NoError(t, err)
	require.True(t, ok, "product is not the identity:\n%v", p)
}

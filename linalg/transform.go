// SPDX-License-Identifier: MIT

package linalg

import "github.com/katalvlaran/detmath/sfloat"

// Cross returns the cross product v × w.
func (v Float3) Cross(w Float3) Float3 {
	return v.Mul(w.YZX()).Sub(v.YZX().Mul(w)).YZX()
}

// Float3x4FromRotationTranslation returns the affine transform [r | t].
func Float3x4FromRotationTranslation(r Float3x3, t Float3) Float3x4 {
	return Float3x4{r[0], r[1], r[2], t}
}

// Float4x4FromRotationTranslation returns the homogeneous transform
// [[r, t], [0, 1]].
func Float4x4FromRotationTranslation(r Float3x3, t Float3) Float4x4 {
	return Float4x4{
		r[0].Extend(sfloat.Zero),
		r[1].Extend(sfloat.Zero),
		r[2].Extend(sfloat.Zero),
		t.Extend(sfloat.One),
	}
}

// Float4x4FromFloat3x4 appends the row (0, 0, 0, 1) to an affine transform.
func Float4x4FromFloat3x4(m Float3x4) Float4x4 {
	return Float4x4FromRotationTranslation(m.Rotation(), m.Translation())
}

// Float3x3FromFloat4x4 returns the upper-left 3×3 block of m.
func Float3x3FromFloat4x4(m Float4x4) Float3x3 {
	return Float3x3{m[0].XYZ(), m[1].XYZ(), m[2].XYZ()}
}

// Rotation returns the leading 3×3 block of m.
func (m Float3x4) Rotation() Float3x3 { return Float3x3{m[0], m[1], m[2]} }

// Translation returns the last column of m.
func (m Float3x4) Translation() Float3 { return m[3] }

// FastInverse inverts a rigid transform m = [R | t] as [Rᵀ | -Rᵀt].
//
// R must be orthonormal; this is not verified, and for any other matrix the
// result is not an inverse. The translation is accumulated as
// -((r0*t.x + r1*t.y) + r2*t.z), where r0..r2 are the rows of R.
//
// Complexity: 9 multiplications, no division.
func (m Float3x4) FastInverse() Float3x4 {
	c0, c1, c2, t := m[0], m[1], m[2], m[3]
	r0 := Float3{c0[0], c1[0], c2[0]}
	r1 := Float3{c0[1], c1[1], c2[1]}
	r2 := Float3{c0[2], c1[2], c2[2]}
	pos := r0.MulScalar(t[0]).Add(r1.MulScalar(t[1])).Add(r2.MulScalar(t[2])).Neg()

	return Float3x4{r0, r1, r2, pos}
}

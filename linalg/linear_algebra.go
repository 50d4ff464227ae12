// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - Closed-form determinant and inverse for the 2×2 and 3×3 Float and Int
//     matrices.
//
// Determinism:
//   - Every routine evaluates its products and sums in one fixed order. Two
//     algebraically equal formulas can round differently in sfloat, so the
//     order below is part of the contract and must not be "simplified".
//   - Singular inputs are not detected. A Float inverse of a singular matrix
//     carries ±Inf/NaN; an Int inverse divides by zero and panics.

package linalg

import "github.com/katalvlaran/detmath/sfloat"

// Determinant returns a*d - b*c for m = [[a, b], [c, d]].
func (m Float2x2) Determinant() sfloat.Float {
	a, b := m[0][0], m[1][0]
	c, d := m[0][1], m[1][1]

	return a.Mul(d).Sub(b.Mul(c))
}

// Inverse returns the adjugate [[d, -b], [-c, a]] scaled by 1/Determinant.
// Complexity: 6 multiplications, 1 division.
func (m Float2x2) Inverse() Float2x2 {
	a, b := m[0][0], m[1][0]
	c, d := m[0][1], m[1][1]
	det := a.Mul(d).Sub(b.Mul(c))

	return NewFloat2x2(d, b.Neg(), c.Neg(), a).MulScalar(sfloat.One.Div(det))
}

// Determinant returns the cofactor expansion of m along its first row.
// Blueprint:
//
//	Stage 1: minors m00, m01, m02 of the first-row elements, each as p*q - r*s.
//	Stage 2: (c0.x*m00 - c1.x*m01) + c2.x*m02, evaluated left to right.
func (m Float3x3) Determinant() sfloat.Float {
	c0, c1, c2 := m[0], m[1], m[2]
	m00 := c1[1].Mul(c2[2]).Sub(c1[2].Mul(c2[1]))
	m01 := c0[1].Mul(c2[2]).Sub(c0[2].Mul(c2[1]))
	m02 := c0[1].Mul(c1[2]).Sub(c0[2].Mul(c1[1]))

	return c0[0].Mul(m00).Sub(c1[0].Mul(m01)).Add(c2[0].Mul(m02))
}

// Inverse returns the adjugate of m scaled by the reciprocal determinant.
// Blueprint:
//
//	Stage 1: regroup the rows of m with a cyclic shift, t_r = (c1[r], c2[r], c0[r]).
//	Stage 2: the cofactor columns are cross products of those rows, computed
//	         through YZX shuffles: m0 = t1×t2, m1 = t2×t0, m2 = t0×t1.
//	Stage 3: the determinant reuses m0: Csum(t0.ZXY * m0).
//	Stage 4: scale the columns (m0, m1, m2) by 1/det.
//
// Complexity: 30 multiplications, 1 division.
func (m Float3x3) Inverse() Float3x3 {
	c0, c1, c2 := m[0], m[1], m[2]
	t0 := Float3{c1[0], c2[0], c0[0]}
	t1 := Float3{c1[1], c2[1], c0[1]}
	t2 := Float3{c1[2], c2[2], c0[2]}

	m0 := t1.Mul(t2.YZX()).Sub(t1.YZX().Mul(t2))
	m1 := t0.YZX().Mul(t2).Sub(t0.Mul(t2.YZX()))
	m2 := t0.Mul(t1.YZX()).Sub(t0.YZX().Mul(t1))
	rcp := sfloat.One.Div(t0.ZXY().Mul(m0).Csum())

	return Float3x3FromColumns(m0, m1, m2).MulScalar(rcp)
}

// Determinant returns a*d - b*c with int32 wraparound.
func (m Int2x2) Determinant() int32 {
	a, b := m[0][0], m[1][0]
	c, d := m[0][1], m[1][1]

	return a*d - b*c
}

// Inverse mirrors Float2x2.Inverse in integer arithmetic. The scale 1/det is
// an integer division, so the result is the true inverse only when det is ±1;
// for |det| > 1 it is the zero matrix and for det == 0 it panics.
func (m Int2x2) Inverse() Int2x2 {
	a, b := m[0][0], m[1][0]
	c, d := m[0][1], m[1][1]
	det := a*d - b*c

	return NewInt2x2(d, -b, -c, a).MulScalar(1 / det)
}

// Determinant mirrors Float3x3.Determinant with int32 wraparound.
func (m Int3x3) Determinant() int32 {
	c0, c1, c2 := m[0], m[1], m[2]
	m00 := c1[1]*c2[2] - c1[2]*c2[1]
	m01 := c0[1]*c2[2] - c0[2]*c2[1]
	m02 := c0[1]*c1[2] - c0[2]*c1[1]

	return c0[0]*m00 - c1[0]*m01 + c2[0]*m02
}

// Inverse mirrors Float3x3.Inverse in integer arithmetic; see Int2x2.Inverse
// for the meaning of the result when det is not ±1.
func (m Int3x3) Inverse() Int3x3 {
	c0, c1, c2 := m[0], m[1], m[2]
	t0 := Int3{c1[0], c2[0], c0[0]}
	t1 := Int3{c1[1], c2[1], c0[1]}
	t2 := Int3{c1[2], c2[2], c0[2]}

	m0 := t1.Mul(t2.YZX()).Sub(t1.YZX().Mul(t2))
	m1 := t0.YZX().Mul(t2).Sub(t0.Mul(t2.YZX()))
	m2 := t0.Mul(t1.YZX()).Sub(t0.YZX().Mul(t1))
	rcp := 1 / t0.ZXY().Mul(m0).Csum()

	return Int3x3FromColumns(m0, m1, m2).MulScalar(rcp)
}

// SPDX-License-Identifier: MIT
package linalg_test

import (
	"github.com/MichaelTJones/pcg"

	"github.com/katalvlaran/detmath/internal/refmat"
	"github.com/katalvlaran/detmath/linalg"
	"github.com/katalvlaran/detmath/sfloat"
)

// f is shorthand for an exactly representable integer-valued sfloat.
func f(i int32) sfloat.Float { return sfloat.FromInt32(i) }

// newRand returns a PCG32 stream seeded deterministically per test.
func newRand(seed uint64) *pcg.PCG32 {
	r := pcg.NewPCG32()
	r.Seed(seed, 0xda3e39cb94b95bdb)
	return r
}

// randSmall returns a float in [-1, 1) with 1/256 resolution (exact in binary32).
func randSmall(r *pcg.PCG32) sfloat.Float {
	return sfloat.FromInt32(int32(r.Bounded(512)) - 256).Div(f(256))
}

func randBits(r *pcg.PCG32) sfloat.Float { return sfloat.FromBits(r.Random()) }

func randBool(r *pcg.PCG32) bool { return r.Random()&1 == 1 }

func rb2(r *pcg.PCG32) linalg.Bool2 { return linalg.Bool2{randBool(r), randBool(r)} }
func rb3(r *pcg.PCG32) linalg.Bool3 { return linalg.Bool3{randBool(r), randBool(r), randBool(r)} }
func rb4(r *pcg.PCG32) linalg.Bool4 {
	return linalg.Bool4{randBool(r), randBool(r), randBool(r), randBool(r)}
}

func ri2(r *pcg.PCG32) linalg.Int2 { return linalg.Int2{int32(r.Random()), int32(r.Random())} }
func ri3(r *pcg.PCG32) linalg.Int3 {
	return linalg.Int3{int32(r.Random()), int32(r.Random()), int32(r.Random())}
}
func ri4(r *pcg.PCG32) linalg.Int4 {
	return linalg.Int4{int32(r.Random()), int32(r.Random()), int32(r.Random()), int32(r.Random())}
}

func ru2(r *pcg.PCG32) linalg.UInt2 { return linalg.UInt2{r.Random(), r.Random()} }
func ru3(r *pcg.PCG32) linalg.UInt3 { return linalg.UInt3{r.Random(), r.Random(), r.Random()} }
func ru4(r *pcg.PCG32) linalg.UInt4 {
	return linalg.UInt4{r.Random(), r.Random(), r.Random(), r.Random()}
}

func rf2(r *pcg.PCG32) linalg.Float2 { return linalg.Float2{randBits(r), randBits(r)} }
func rf3(r *pcg.PCG32) linalg.Float3 { return linalg.Float3{randBits(r), randBits(r), randBits(r)} }
func rf4(r *pcg.PCG32) linalg.Float4 {
	return linalg.Float4{randBits(r), randBits(r), randBits(r), randBits(r)}
}

// floats widens Float elements to float64.
func floats(v []sfloat.Float) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x.Float32())
	}
	return out
}

// dense2, dense3 and dense4 copy a matrix into the float64 reference type;
// linalg itself exports no matrix product.
func dense2(m linalg.Float2x2) *refmat.Dense {
	d, _ := refmat.FromColumns(floats(m[0][:]), floats(m[1][:]))
	return d
}

func dense3(m linalg.Float3x3) *refmat.Dense {
	d, _ := refmat.FromColumns(floats(m[0][:]), floats(m[1][:]), floats(m[2][:]))
	return d
}

func dense4(m linalg.Float4x4) *refmat.Dense {
	d, _ := refmat.FromColumns(floats(m[0][:]), floats(m[1][:]), floats(m[2][:]), floats(m[3][:]))
	return d
}

func mulInt3(a, b linalg.Int3x3) linalg.Int3x3 {
	var out linalg.Int3x3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			for k := 0; k < 3; k++ {
				out[col][row] += a[k][row] * b[col][k]
			}
		}
	}
	return out
}

func mulInt2(a, b linalg.Int2x2) linalg.Int2x2 {
	var out linalg.Int2x2
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			for k := 0; k < 2; k++ {
				out[col][row] += a[k][row] * b[col][k]
			}
		}
	}
	return out
}

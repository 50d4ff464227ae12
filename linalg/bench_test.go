// SPDX-License-Identifier: MIT
// Package linalg_test provides benchmarks for the hot paths of the package,
// using deterministic pcg-filled inputs.
package linalg_test

import (
	"testing"

	"github.com/katalvlaran/detmath/linalg"
	"github.com/katalvlaran/detmath/sfloat"
)

// sinks to defeat dead-code elimination
var (
	sinkF33 linalg.Float3x3
	sinkF34 linalg.Float3x4
	sinkF4  linalg.Float4
	sinkS   sfloat.Float
	sinkU   uint32
	sinkU4  linalg.UInt4
)

func benchFloat3x3() linalg.Float3x3 {
	r := newRand(9)
	return linalg.NewFloat3x3(
		randSmall(r).Add(f(4)), randSmall(r), randSmall(r),
		randSmall(r), randSmall(r).Add(f(4)), randSmall(r),
		randSmall(r), randSmall(r), randSmall(r).Add(f(4)),
	)
}

func BenchmarkFloat3x3_Inverse(b *testing.B) {
	m := benchFloat3x3()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkF33 = m.Inverse()
	}
}

func BenchmarkFloat3x3_Determinant(b *testing.B) {
	m := benchFloat3x3()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkS = m.Determinant()
	}
}

func BenchmarkFloat3x4_FastInverse(b *testing.B) {
	m := linalg.Float3x4FromRotationTranslation(linalg.IdentityFloat3x3(), linalg.Float3{f(1), f(2), f(3)})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkF34 = m.FastInverse()
	}
}

func BenchmarkFloat4_Add(b *testing.B) {
	r := newRand(10)
	v, w := rf4(r), rf4(r)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkF4 = v.Add(w)
	}
}

func BenchmarkFloat4x4_Hash(b *testing.B) {
	r := newRand(11)
	m := linalg.Float4x4FromColumns(rf4(r), rf4(r), rf4(r), rf4(r))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkU = m.Hash()
	}
}

func BenchmarkFloat4x4_HashWide(b *testing.B) {
	r := newRand(12)
	m := linalg.Float4x4FromColumns(rf4(r), rf4(r), rf4(r), rf4(r))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkU4 = m.HashWide()
	}
}

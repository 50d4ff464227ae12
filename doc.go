// SPDX-License-Identifier: MIT

// Package detmath is a deterministic vector and matrix algebra layer for
// lockstep simulations: every result is a pure function of its operand bits,
// on every GOARCH.
//
// What is in the box?
//
//	sfloat          Float, an IEEE-754 binary32 scalar rounded and
//	                NaN-canonicalised on every operation, with saturating
//	                integer conversions
//	linalg          Bool/Int/UInt/Float vectors (2..4) and every N×M matrix
//	                (N, M in 2..4): componentwise operators, conversions,
//	                swizzles, structural hashes, transpose, 2×2/3×3
//	                determinant and inverse, and the 3×4 fast inverse
//	literal         parse the String form back into values and apply
//	                operations without knowing the concrete type
//	cmd/detmath     inspect values and fingerprint a machine's arithmetic
//	cmd/detmathgen  regenerate the mechanical part of linalg and literal
//
// Quick start:
//
//	m := linalg.NewFloat2x2(sfloat.Two, sfloat.Zero, sfloat.Zero, sfloat.Two)
//	inv := m.Inverse()      // Float2x2(0.5f, -0f,  -0f, 0.5f)
//	h := inv.Hash()         // identical on amd64, arm64, wasm, ...
//
// Bounds checks on At/Set/Col/Swizzle are compiled in with -tags debug and
// compiled out otherwise.
package detmath

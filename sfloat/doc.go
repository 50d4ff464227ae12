// SPDX-License-Identifier: MIT

// Package sfloat provides Float, a deterministic 32-bit floating-point scalar.
//
// What & Why:
//
//	Float stores an IEEE-754 binary32 bit pattern in a named uint32. Every
//	arithmetic result is rounded through an explicit float32 conversion, which
//	the Go language definition forbids the compiler from fusing with neighbouring
//	operations (no FMA contraction), and every NaN result is replaced by the
//	single canonical pattern 0x7FC00000. The outcome of each operation is
//	therefore a pure function of the operand bits on every GOARCH.
//
// Conversions:
//
//	FromInt32 / FromUint32   round to nearest, ties to even (lossless below 2^24).
//	FromBool                 false → 0, true → 1.
//	Int32 / Uint32           truncate toward zero; NaN → 0; out-of-range values
//	                         saturate to the destination bounds.
//
// Ordering:
//
//	Less/LessEq/Greater/GreaterEq/Eq/Ne follow IEEE-754 (NaN is unordered and
//	-0 == +0). Compare is a total order on top of that: NaN sorts last.
//
// Complexity:
//
//	Every operation is O(1) and allocation-free.
package sfloat

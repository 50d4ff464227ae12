// SPDX-License-Identifier: MIT

// Package linalg provides fixed-size vectors and matrices over four scalar
// domains with bit-reproducible results on every platform.
//
// What & Why:
//
//	Lockstep simulations and replays need every machine to compute the same
//	bits. linalg routes all floating arithmetic through sfloat.Float and keeps
//	the operation order of every composite routine fixed, so a Float3x3
//	inverse computed on amd64 is bit-identical to the one computed on arm64.
//
// Types:
//
//	Vectors   Bool2..4, Int2..4, UInt2..4, Float2..4 (arrays of bool, int32,
//	          uint32, sfloat.Float).
//	Matrices  Bool2x2..Float4x4, 36 shapes. FloatNxM stores M columns of
//	          FloatN (column-major), so m[col][row] addresses one element and
//	          the NewFloatNxM constructors take their arguments row by row.
//
// Operators:
//
//	Go has no operator overloading, so every operator is a method with three
//	shapes: v.Add(w), v.AddScalar(s) (v + s) and v.ScalarAdd(s) (s + v).
//	Comparisons (Eq, Ne, Lt, Le, Gt, Ge) return the Bool type of the same
//	shape. Mul is componentwise for matrices too; there is no matrix product.
//	Integer division by zero panics like native Go; Float division by zero
//	yields ±Inf or NaN.
//
// Conversions:
//
//	Every allowed domain change is a named constructor, e.g. Float3FromInt3
//	(widening), Int3FromFloat3 (truncating), UInt2x2FromBool2x2 (0/1).
//	Nothing converts to the Bool domain.
//
// Hashing:
//
//	Hash multiplies each component's bit pattern by a fixed odd prime unique
//	to (type, component), sums the products and adds a final prime. HashWide
//	keeps one lane per row. The constant table is generated once from a fixed
//	seed and must never change; detmathgen --check guards it.
//	Hashing works on bits, so +0 and -0 are Equal but hash differently.
//
// Bounds:
//
//	Built with -tags debug, every indexed accessor (At, Set, Col, SetCol,
//	SwizzleN) panics with an error wrapping ErrIndexOutOfRange. Without the
//	tag the check compiles away and Go's native array bounds check applies.
//
// Linear algebra:
//
//	Transpose on every matrix; Determinant and Inverse on Float2x2, Float3x3,
//	Int2x2 and Int3x3; FastInverse on Float3x4 rigid transforms. A singular
//	Float matrix inverts to non-finite values without an error.
//
// Files named *_gen.go are produced by cmd/detmathgen from a single type table.
package linalg

//go:generate go run ../cmd/detmathgen --root ..

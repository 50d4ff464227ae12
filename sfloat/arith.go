// SPDX-License-Identifier: MIT

package sfloat

import "math"

// Add returns a + b rounded to binary32.
func (a Float) Add(b Float) Float { return canon(float32(a.Float32() + b.Float32())) }

// Sub returns a - b rounded to binary32.
func (a Float) Sub(b Float) Float { return canon(float32(a.Float32() - b.Float32())) }

// Mul returns a * b rounded to binary32.
func (a Float) Mul(b Float) Float { return canon(float32(a.Float32() * b.Float32())) }

// Div returns a / b rounded to binary32. Division by zero yields ±Inf, or NaN for 0/0.
func (a Float) Div(b Float) Float { return canon(float32(a.Float32() / b.Float32())) }

// Mod returns the truncated remainder of a / b; the result has the sign of a.
// The remainder of two binary32 values is exactly representable, so computing
// it in float64 introduces no rounding.
func (a Float) Mod(b Float) Float {
	return canon(float32(math.Mod(float64(a.Float32()), float64(b.Float32()))))
}

// Neg flips the sign bit. NaN stays canonical.
func (a Float) Neg() Float {
	if a.IsNaN() {
		return NaN
	}

	return a ^ signMask
}

// Abs clears the sign bit. NaN stays canonical.
func (a Float) Abs() Float {
	if a.IsNaN() {
		return NaN
	}

	return a &^ signMask
}

// Min returns a if a < b, otherwise b.
// With a NaN operand the result is the second argument.
func Min(a, b Float) Float {
	if a.Less(b) {
		return a
	}

	return b
}

// Max returns a if a > b, otherwise b.
// With a NaN operand the result is the second argument.
func Max(a, b Float) Float {
	if a.Greater(b) {
		return a
	}

	return b
}

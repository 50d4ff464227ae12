// SPDX-License-Identifier: MIT

package sfloat

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Float is a deterministic binary32 value stored as its raw bit pattern.
//
// Format: Sign (1 bit) | Exponent (8 bits, bias 127) | Mantissa (23 bits)
//
//	S | EEEEEEEE | MMMMMMMMMMMMMMMMMMMMMMM
//
// The zero value is +0.
type Float uint32

// Named constants (bit patterns).
const (
	Zero            Float = 0x00000000 // +0
	NegZero         Float = 0x80000000 // -0
	One             Float = 0x3F800000 // 1
	NegOne          Float = 0xBF800000 // -1
	Half            Float = 0x3F000000 // 0.5
	Two             Float = 0x40000000 // 2
	MaxValue        Float = 0x7F7FFFFF // largest finite value (~3.4028235e38)
	SmallestNormal  Float = 0x00800000 // 2^-126
	SmallestNonzero Float = 0x00000001 // 2^-149 (denormal)
	Inf             Float = 0x7F800000 // +Inf
	NegInf          Float = 0xFF800000 // -Inf
	NaN             Float = 0x7FC00000 // canonical quiet NaN

	signMask     = 0x80000000
	exponentMask = 0x7F800000
	mantissaMask = 0x007FFFFF
)

// canon wraps a native float32 result, replacing any NaN by the canonical NaN.
// Hardware disagrees on the sign and payload of generated NaNs (x86 yields
// 0xFFC00000 for 0/0, arm64 yields 0x7FC00000); canonicalising keeps bit
// patterns, and therefore hashes, identical everywhere.
func canon(x float32) Float {
	if x != x {
		return NaN
	}

	return Float(math.Float32bits(x))
}

// FromBits returns the Float with the given bit pattern, unchanged.
// Non-canonical NaN patterns are preserved until the next arithmetic operation.
func FromBits(b uint32) Float { return Float(b) }

// FromFloat32 converts a native float32; NaN inputs become the canonical NaN.
func FromFloat32(x float32) Float { return canon(x) }

// FromInt32 converts i with round-to-nearest-even (exact for |i| <= 2^24).
// The int32 → float64 step is exact, so exactly one rounding happens.
func FromInt32(i int32) Float { return canon(float32(float64(i))) }

// FromUint32 converts u with round-to-nearest-even (exact for u <= 2^24).
func FromUint32(u uint32) Float { return canon(float32(float64(u))) }

// FromBool maps false to 0 and true to 1.
func FromBool(b bool) Float {
	if b {
		return One
	}

	return Zero
}

// Bits returns the raw IEEE-754 bit pattern.
func (f Float) Bits() uint32 { return uint32(f) }

// Float32 returns the native float32 with the same bits.
func (f Float) Float32() float32 { return math.Float32frombits(uint32(f)) }

// Int32 truncates toward zero. NaN maps to 0; values outside the int32 range
// saturate to math.MinInt32 / math.MaxInt32.
func (f Float) Int32() int32 { return truncate[int32](f, math.MinInt32, math.MaxInt32) }

// Uint32 truncates toward zero. NaN and negative values map to 0; values above
// the uint32 range saturate to math.MaxUint32.
func (f Float) Uint32() uint32 { return truncate[uint32](f, 0, math.MaxUint32) }

// truncate converts f to an integer type with saturation. Go leaves the result
// of an out-of-range float→int conversion implementation-defined, so the
// bounds are resolved here before the conversion happens.
func truncate[T constraints.Integer](f Float, lo, hi T) T {
	x := float64(f.Float32())
	switch {
	case x != x:
		return 0
	case x <= float64(lo):
		return lo
	case x >= float64(hi):
		return hi
	}

	return T(x)
}

// IsNaN reports whether f is any NaN pattern.
func (f Float) IsNaN() bool {
	return uint32(f)&exponentMask == exponentMask && uint32(f)&mantissaMask != 0
}

// IsInf reports whether f is +Inf or -Inf.
func (f Float) IsInf() bool { return uint32(f)&^signMask == uint32(Inf) }

// IsFinite reports whether f is neither NaN nor an infinity.
func (f Float) IsFinite() bool { return uint32(f)&exponentMask != exponentMask }

// Signbit reports whether the sign bit is set (true for -0 and negative values).
func (f Float) Signbit() bool { return uint32(f)&signMask != 0 }

// String renders the shortest decimal that parses back to the same bits,
// e.g. "1", "0.5", "-3.25", "1e+07", "+Inf", "NaN".
func (f Float) String() string {
	return strconv.FormatFloat(float64(f.Float32()), 'g', -1, 32)
}

// Parse reads a decimal (or "Inf"/"NaN") literal rounded to the nearest binary32.
// Errors wrap ErrSyntax or ErrRange.
func Parse(s string) (Float, error) {
	x, err := strconv.ParseFloat(s, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Zero, fmt.Errorf("Parse(%q): %w", s, ErrRange)
		}
		return Zero, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
	}

	return canon(float32(x)), nil
}

// MustParse is like Parse but panics on error. Intended for constants in tests
// and static tables.
func MustParse(s string) Float {
	f, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return f
}

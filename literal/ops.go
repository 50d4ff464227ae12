// SPDX-License-Identifier: MIT

package literal

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/detmath/linalg"
	"github.com/katalvlaran/detmath/sfloat"
)

// HashWide returns v.HashWide(), a linalg.UInt2..4 with one lane per row.
func HashWide(v Value) (Value, error) {
	w, ok := hashWide(v)
	if !ok {
		return nil, literalErrorf("HashWide", unsupported(v))
	}

	return w, nil
}

// Transpose returns v.Transpose() for any matrix; vectors are unsupported.
func Transpose(v Value) (Value, error) {
	t, ok := transpose(v)
	if !ok {
		return nil, literalErrorf("Transpose", unsupported(v))
	}

	return t, nil
}

// Determinant returns the determinant of a Float2x2, Float3x3, Int2x2 or
// Int3x3 in its scalar String form ("-2", "0.5", "+Inf").
func Determinant(v Value) (string, error) {
	switch x := v.(type) {
	case linalg.Float2x2:
		return x.Determinant().String(), nil
	case linalg.Float3x3:
		return x.Determinant().String(), nil
	case linalg.Int2x2:
		return strconv.FormatInt(int64(x.Determinant()), 10), nil
	case linalg.Int3x3:
		return strconv.FormatInt(int64(x.Determinant()), 10), nil
	}

	return "", literalErrorf("Determinant", unsupported(v))
}

// Inverse returns the inverse of a Float2x2, Float3x3, Int2x2 or Int3x3.
//
// Int matrices with a zero determinant always fail with ErrSingular.
// Float matrices follow linalg and invert to non-finite elements unless
// WithSingularGuard(true) is given, in which case a zero determinant or any
// non-finite result element reports ErrSingular.
func Inverse(v Value, opts ...Option) (Value, error) {
	o := gatherOptions(opts...)
	switch x := v.(type) {
	case linalg.Float2x2:
		inv := x.Inverse()
		if o.singularGuard && (x.Determinant().Eq(sfloat.Zero) || !allFinite(inv[0][:], inv[1][:])) {
			return nil, literalErrorf("Inverse", singular(x))
		}
		return inv, nil
	case linalg.Float3x3:
		inv := x.Inverse()
		if o.singularGuard && (x.Determinant().Eq(sfloat.Zero) || !allFinite(inv[0][:], inv[1][:], inv[2][:])) {
			return nil, literalErrorf("Inverse", singular(x))
		}
		return inv, nil
	case linalg.Int2x2:
		if x.Determinant() == 0 {
			return nil, literalErrorf("Inverse", singular(x))
		}
		return x.Inverse(), nil
	case linalg.Int3x3:
		if x.Determinant() == 0 {
			return nil, literalErrorf("Inverse", singular(x))
		}
		return x.Inverse(), nil
	}

	return nil, literalErrorf("Inverse", unsupported(v))
}

// FastInverse returns the rigid-transform inverse of a Float3x4. The rotation
// block is not checked for orthonormality.
func FastInverse(v Value) (Value, error) {
	m, ok := v.(linalg.Float3x4)
	if !ok {
		return nil, literalErrorf("FastInverse", unsupported(v))
	}

	return m.FastInverse(), nil
}

func unsupported(v Value) error {
	return fmt.Errorf("%T: %w", v, ErrUnsupported)
}

func singular(v Value) error {
	return fmt.Errorf("%v: %w", v, ErrSingular)
}

// allFinite reports whether every component of the given columns is finite.
func allFinite(cols ...[]sfloat.Float) bool {
	for _, c := range cols {
		for _, e := range c {
			if !e.IsFinite() {
				return false
			}
		}
	}

	return true
}

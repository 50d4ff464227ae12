// SPDX-License-Identifier: MIT

package refmat

import (
	"fmt"
	"math"
)

// Mul returns the matrix product a·b.
// Stage 1 (Validate): a.Cols must equal b.Rows.
// Stage 2 (Execute): i-k-j loop over the flat slices, skipping zero a[i][k].
// Complexity: O(r*k*c).
func Mul(a, b *Dense) (*Dense, error) {
	if a.c != b.r {
		return nil, refmatErrorf("Mul", fmt.Errorf("%dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}
	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, refmatErrorf("Mul", err)
	}
	for i := 0; i < a.r; i++ {
		rowA, rowR := i*a.c, i*b.c
		for k := 0; k < a.c; k++ {
			av := a.data[rowA+k]
			if av == 0 {
				continue
			}
			rowB := k * b.c
			for j := 0; j < b.c; j++ {
				res.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}

	return res, nil
}

// AllClose reports whether |a-b| <= atol + rtol*|b| holds elementwise.
// NaN is never close to anything; equal infinities are.
// Negative tolerances are treated as their absolute values.
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, refmatErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if a.r != b.r || a.c != b.c {
		return false, refmatErrorf("AllClose", fmt.Errorf("%dx%d vs %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}
	for idx, x := range a.data {
		y := b.data[idx]
		if x == y {
			continue
		}
		if math.Abs(x-y) > atol+rtol*math.Abs(y) || math.IsNaN(x-y) {
			return false, nil
		}
	}

	return true, nil
}

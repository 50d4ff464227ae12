// SPDX-License-Identifier: MIT

package linalg

import "golang.org/x/exp/constraints"

// boolTo maps false to 0 and true to 1 in any integer type.
func boolTo[T constraints.Integer](b bool) T {
	if b {
		return 1
	}

	return 0
}

// pick returns t when c is true and f otherwise.
func pick[T any](f, t T, c bool) T {
	if c {
		return t
	}

	return f
}

// abs32 returns |x|; math.MinInt32 maps to itself.
func abs32(x int32) int32 {
	if x < 0 {
		return -x
	}

	return x
}

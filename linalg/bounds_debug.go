// SPDX-License-Identifier: MIT

//go:build debug

package linalg

// checkIndex panics when i is outside [0, n).
func checkIndex(i, n int) {
	if uint(i) >= uint(n) {
		panic(indexErrorf(i, n))
	}
}

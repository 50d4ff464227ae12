// SPDX-License-Identifier: MIT

package linalg

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is wrapped by the panic value of an indexed accessor
// built with -tags debug when the index is outside [0, n).
var ErrIndexOutOfRange = errors.New("linalg: index out of range")

// indexErrorf tags ErrIndexOutOfRange with the offending index and bound.
func indexErrorf(i, n int) error {
	return fmt.Errorf("index %d not in [0, %d): %w", i, n, ErrIndexOutOfRange)
}

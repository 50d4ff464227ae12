// SPDX-License-Identifier: MIT
// Package refmat: sentinel error set.
// Every message is prefixed with "refmat: ..."; callers match with errors.Is.

package refmat

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates a requested shape with r <= 0 or c <= 0,
	// or ragged input columns.
	ErrInvalidDimensions = errors.New("refmat: dimensions must be > 0 and uniform")

	// ErrIndexOutOfBounds indicates a row or column index outside the matrix.
	ErrIndexOutOfBounds = errors.New("refmat: index out of bounds")

	// ErrDimensionMismatch indicates operands of incompatible shapes.
	ErrDimensionMismatch = errors.New("refmat: dimension mismatch")

	// ErrNaNInf indicates a non-finite tolerance passed to AllClose.
	ErrNaNInf = errors.New("refmat: NaN or Inf tolerance")
)

// denseErrorf wraps err with Dense method and index context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// refmatErrorf wraps err with an operation tag.
func refmatErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

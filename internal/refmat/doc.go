// SPDX-License-Identifier: MIT

// Package refmat is a small row-major float64 matrix used as a reference
// oracle for linalg: linalg's Mul is componentwise and it has no matrix
// product, so inverse properties (Inverse(m)·m ≈ I) are checked here, in
// float64, away from the arithmetic under test.
//
// Policy:
//   - Every constructor validates its shape and returns ErrInvalidDimensions
//     instead of allocating a degenerate matrix.
//   - At/Set return ErrIndexOutOfBounds rather than panic.
//   - Mul and AllClose return ErrDimensionMismatch for incompatible operands.
//
// Determinism: fixed loop orders, no goroutines. Results are reproducible on
// a given GOARCH but may differ across them (FMA); do not use refmat for
// anything that is hashed.
package refmat

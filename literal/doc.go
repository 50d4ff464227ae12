// SPDX-License-Identifier: MIT

// Package literal reads linalg values back from their String form and applies
// the linalg operations to values whose concrete type is only known at run
// time.
//
// A literal is exactly what String prints: a type name followed by the
// elements in row-major order, e.g.
//
//	Float3(1f, 0.5f, -3f)
//	Int2x3(1, 2, 3,  4, 5, 6)
//	Bool2(true, false)
//
// Whitespace between elements is ignored. Float elements carry an optional
// "f" suffix (required under WithStrictSuffix(true)) and accept "+Inf",
// "-Inf" and "NaN". Parse(v.String()) reproduces v bit for bit, except that
// every NaN comes back as the canonical NaN.
//
// The package exists for tooling: replay diffing, desync reports and the
// detmath command. Simulation code should use linalg directly.
package literal

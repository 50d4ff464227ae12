// SPDX-License-Identifier: MIT

// Package gen emits the mechanical part of the detmath tree: the vector and
// matrix families of linalg, their swizzle accessors, the hash constant
// tables, and the type dispatch used by literal.
//
// What & Why:
//
//	Every (domain, shape) pair carries the same operator, conversion and hash
//	surface. Writing 48 types by hand invites one inconsistent conversion or
//	constant, which breaks cross-platform reproducibility. The surface is
//	therefore described once here, as data (Types, the binary operator table,
//	the conversion table) plus one emitter per file kind, and the output is
//	committed to the repository.
//
// Hash constants:
//
//	HashTable derives every multiplier from a SplitMix64 stream seeded with
//	DefaultSeed. A candidate is the top half of one draw and is accepted when
//	it is odd, at least 2^28, prime and not drawn before. Per type the table
//	holds, in order: one lane multiplier per element, the final constant, one
//	wide multiplier per element, and one wide final constant per row.
//
// Usage:
//
//	files, err := gen.New().Files()   // path (relative to the module root) → source
//
// The detmathgen command writes the files or checks them for drift.
package gen

// SPDX-License-Identifier: MIT

// Package literal: functional configuration for Parse and the dynamic
// operations. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions helper (internal).

package literal

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultStrictSuffix accepts Float elements with or without the "f" suffix.
	DefaultStrictSuffix = false

	// DefaultSingularGuard lets Float inverses of singular matrices return
	// non-finite elements, matching linalg.
	DefaultSingularGuard = false

	// DefaultMaxInputLen bounds the literal length in bytes; every String
	// output of a linalg value fits well within it.
	DefaultMaxInputLen = 4096
)

const panicMaxInputLenInvalid = "literal: WithMaxInputLen: n must be > 0"

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	strictSuffix  bool // DefaultStrictSuffix
	singularGuard bool // DefaultSingularGuard
	maxInputLen   int  // DefaultMaxInputLen
}

// WithStrictSuffix requires (true) or tolerates (false) the "f" suffix on
// Float elements.
func WithStrictSuffix(strict bool) Option {
	return func(o *Options) { o.strictSuffix = strict }
}

// WithSingularGuard makes Inverse report ErrSingular for Float matrices whose
// determinant is zero instead of returning non-finite elements.
// Int matrices are always guarded: their inverse would divide by zero.
func WithSingularGuard(guard bool) Option {
	return func(o *Options) { o.singularGuard = guard }
}

// WithMaxInputLen sets the maximum accepted literal length in bytes.
// Panics if n <= 0.
func WithMaxInputLen(n int) Option {
	if n <= 0 {
		panic(panicMaxInputLenInvalid)
	}

	return func(o *Options) { o.maxInputLen = n }
}

// gatherOptions applies user options over the defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		strictSuffix:  DefaultStrictSuffix,
		singularGuard: DefaultSingularGuard,
		maxInputLen:   DefaultMaxInputLen,
	}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

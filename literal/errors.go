// SPDX-License-Identifier: MIT
// Package literal: sentinel error set.
// Every error returned by this package wraps exactly one of these sentinels;
// callers match with errors.Is.

package literal

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax indicates input that is not of the form Name(e0, e1, ...).
	ErrSyntax = errors.New("literal: invalid syntax")

	// ErrUnknownType indicates a well-formed name that is not a linalg type.
	ErrUnknownType = errors.New("literal: unknown type")

	// ErrArity indicates an element count that does not match the type's shape.
	ErrArity = errors.New("literal: wrong number of elements")

	// ErrElement indicates an element that does not parse in the type's domain.
	ErrElement = errors.New("literal: invalid element")

	// ErrMissingSuffix indicates a Float element without the "f" suffix while
	// WithStrictSuffix(true) is in effect.
	ErrMissingSuffix = errors.New("literal: float element lacks f suffix")

	// ErrUnsupported indicates an operation that the value's type does not define,
	// e.g. Transpose of a vector or Determinant of a Bool matrix.
	ErrUnsupported = errors.New("literal: operation not supported for type")

	// ErrSingular is returned by Inverse for a zero determinant when the
	// singular guard applies (always for Int, opt-in for Float).
	ErrSingular = errors.New("literal: singular matrix")

	// ErrTooLong indicates input longer than the configured limit.
	ErrTooLong = errors.New("literal: input too long")
)

// literalErrorf wraps err with a call-site tag.
func literalErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

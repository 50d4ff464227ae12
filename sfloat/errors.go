// SPDX-License-Identifier: MIT

package sfloat

import "errors"

// ErrSyntax is returned by Parse when the input is not a decimal float literal.
var ErrSyntax = errors.New("sfloat: invalid syntax")

// ErrRange is returned by Parse when the literal does not fit a finite binary32.
// Spelled-out infinities ("+Inf", "-Inf") are accepted and never report it.
var ErrRange = errors.New("sfloat: value out of range")

// SPDX-License-Identifier: MIT

package literal

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/detmath/sfloat"
)

var (
	identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	typePattern  = regexp.MustCompile(`^(Bool|Int|UInt|Float)([234])(?:x([234]))?$`)
)

// Value is any linalg vector or matrix.
type Value interface {
	fmt.Stringer
	Hash() uint32
	HashCode() int32
}

// Literal is the syntactic form of a linalg value.
type Literal struct {
	Name   string   // type name, e.g. "Float3x4"
	Domain string   // "Bool", "Int", "UInt" or "Float"
	Rows   int      // N
	Cols   int      // M for matrices, 0 for vectors
	Elems  []string // element text in row-major order, suffixes included
}

// IsMatrix reports whether the literal names a matrix type.
func (l Literal) IsMatrix() bool { return l.Cols > 0 }

// Grid returns the elements as rows: one row for a vector, Rows rows of Cols
// elements for a matrix. The inner slices alias l.Elems.
func (l Literal) Grid() [][]string {
	if !l.IsMatrix() {
		return [][]string{l.Elems}
	}
	grid := make([][]string, l.Rows)
	for r := range grid {
		grid[r] = l.Elems[r*l.Cols : (r+1)*l.Cols]
	}

	return grid
}

// ParseLiteral splits s into type name and elements and validates both
// against the named type.
func ParseLiteral(s string, opts ...Option) (Literal, error) {
	o := gatherOptions(opts...)
	lit, err := parseLiteral(s, o)
	if err == nil {
		_, err = build(lit.Name, lit.Elems, o)
	}
	if err != nil {
		return Literal{}, literalErrorf("ParseLiteral", err)
	}

	return lit, nil
}

// Parse returns the linalg value written as s, e.g. linalg.Float2x2 for
// "Float2x2(1f, 0f,  0f, 1f)".
//
// String prints every NaN pattern as "NaNf", so Parse(v.String()) equals v
// (and hashes the same) only when each NaN component of v is sfloat.NaN.
func Parse(s string, opts ...Option) (Value, error) {
	o := gatherOptions(opts...)
	lit, err := parseLiteral(s, o)
	if err != nil {
		return nil, literalErrorf("Parse", err)
	}
	v, err := build(lit.Name, lit.Elems, o)
	if err != nil {
		return nil, literalErrorf("Parse", err)
	}

	return v, nil
}

// parseLiteral performs the syntactic checks: Name(e0, ..., ek) with a
// known type name and the matching element count.
func parseLiteral(s string, o Options) (Literal, error) {
	if len(s) > o.maxInputLen {
		return Literal{}, fmt.Errorf("%d bytes, limit %d: %w", len(s), o.maxInputLen, ErrTooLong)
	}
	s = strings.TrimSpace(s)
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return Literal{}, fmt.Errorf("%q: want Name(...): %w", s, ErrSyntax)
	}
	name := strings.TrimSpace(s[:open])
	body := s[open+1 : len(s)-1]
	if !identPattern.MatchString(name) || strings.ContainsAny(body, "()") {
		return Literal{}, fmt.Errorf("%q: %w", s, ErrSyntax)
	}

	m := typePattern.FindStringSubmatch(name)
	if m == nil {
		return Literal{}, fmt.Errorf("%q: %w", name, ErrUnknownType)
	}
	lit := Literal{Name: name, Domain: m[1], Rows: int(m[2][0] - '0')}
	if m[3] != "" {
		lit.Cols = int(m[3][0] - '0')
	}

	if strings.TrimSpace(body) != "" {
		parts := strings.Split(body, ",")
		lit.Elems = make([]string, len(parts))
		for i, p := range parts {
			p = strings.TrimSpace(p)
			if p == "" {
				return Literal{}, fmt.Errorf("%q: empty element %d: %w", s, i, ErrSyntax)
			}
			lit.Elems[i] = p
		}
	}

	if want := lit.Rows * max(lit.Cols, 1); len(lit.Elems) != want {
		return Literal{}, fmt.Errorf("%s takes %d elements, got %d: %w", name, want, len(lit.Elems), ErrArity)
	}

	return lit, nil
}

// parseElems parses every element with parse. Element failures wrap
// ErrElement unless they already carry ErrMissingSuffix.
func parseElems[T any](elems []string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, len(elems))
	for i, e := range elems {
		v, err := parse(e)
		if err != nil {
			if !errors.Is(err, ErrMissingSuffix) {
				err = fmt.Errorf("%w: %v", ErrElement, err)
			}
			return nil, fmt.Errorf("element %d %q: %w", i, e, err)
		}
		out[i] = v
	}

	return out, nil
}

func parseBools(elems []string) ([]bool, error) {
	return parseElems(elems, strconv.ParseBool)
}

func parseInts(elems []string) ([]int32, error) {
	return parseElems(elems, parseSigned[int32])
}

func parseUints(elems []string) ([]uint32, error) {
	return parseElems(elems, parseUnsigned[uint32])
}

func parseFloats(elems []string, o Options) ([]sfloat.Float, error) {
	return parseElems(elems, func(e string) (sfloat.Float, error) {
		return parseFloat(e, o.strictSuffix)
	})
}

// parseSigned parses a base-10 integer that must fit in T.
func parseSigned[T constraints.Signed](e string) (T, error) {
	n, err := strconv.ParseInt(e, 10, 64)
	if err != nil {
		return 0, err
	}
	if int64(T(n)) != n {
		return 0, fmt.Errorf("%s overflows %T", e, T(0))
	}

	return T(n), nil
}

// parseUnsigned parses a base-10 unsigned integer that must fit in T.
func parseUnsigned[T constraints.Unsigned](e string) (T, error) {
	n, err := strconv.ParseUint(e, 10, 64)
	if err != nil {
		return 0, err
	}
	if uint64(T(n)) != n {
		return 0, fmt.Errorf("%s overflows %T", e, T(0))
	}

	return T(n), nil
}

// parseFloat accepts "1.5f" and, unless strict, "1.5". "Inf" ends in an f of
// its own, so the suffix is only stripped when the rest still parses.
func parseFloat(e string, strict bool) (sfloat.Float, error) {
	if body, ok := strings.CutSuffix(e, "f"); ok {
		if v, err := sfloat.Parse(body); err == nil {
			return v, nil
		}
	}
	v, err := sfloat.Parse(e)
	if err != nil {
		return sfloat.Zero, err
	}
	if strict {
		return sfloat.Zero, ErrMissingSuffix
	}

	return v, nil
}

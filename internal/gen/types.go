// SPDX-License-Identifier: MIT

package gen

import "fmt"

// Kind identifies a scalar domain.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindUInt
	KindFloat
)

// Domain describes how one scalar domain is spelled in generated code.
type Domain struct {
	Name string // type-name prefix: "Bool", "Int", "UInt", "Float"
	Elem string // Go element type
	Verb string // fmt verb used by String, suffix included
	One  string // multiplicative unit literal
	Zero string // additive unit literal
	Kind Kind
}

// Numeric reports whether the domain has arithmetic and ordering.
func (d Domain) Numeric() bool { return d.Kind != KindBool }

// Integer reports whether the domain has shifts and bitwise complement.
func (d Domain) Integer() bool { return d.Kind == KindInt || d.Kind == KindUInt }

// Bitwise reports whether the domain has &, | and ^.
func (d Domain) Bitwise() bool { return d.Kind != KindFloat }

var (
	Bool  = Domain{Name: "Bool", Elem: "bool", Verb: "%t", One: "true", Zero: "false", Kind: KindBool}
	Int   = Domain{Name: "Int", Elem: "int32", Verb: "%d", One: "1", Zero: "0", Kind: KindInt}
	UInt  = Domain{Name: "UInt", Elem: "uint32", Verb: "%d", One: "1", Zero: "0", Kind: KindUInt}
	Float = Domain{Name: "Float", Elem: "sfloat.Float", Verb: "%vf", One: "sfloat.One", Zero: "sfloat.Zero", Kind: KindFloat}
)

// Domains lists the scalar domains in emission order.
var Domains = []Domain{Bool, Int, UInt, Float}

// Dims lists the supported vector lengths and matrix extents.
var Dims = []int{2, 3, 4}

// letters names vector components for constructors and swizzles.
const letters = "XYZW"

// Type is one generated linalg type: a vector when Cols == 0, otherwise a
// Rows×Cols matrix stored as Cols columns.
type Type struct {
	Domain Domain
	Rows   int
	Cols   int
}

// Name returns the Go type name, e.g. "Float3" or "Int2x4".
func (t Type) Name() string {
	if t.Cols > 0 {
		return matName(t.Domain, t.Rows, t.Cols)
	}

	return vecName(t.Domain, t.Rows)
}

// IsMatrix reports whether t is a matrix type.
func (t Type) IsMatrix() bool { return t.Cols > 0 }

// Size returns the number of scalar elements.
func (t Type) Size() int { return t.Rows * max(t.Cols, 1) }

// Types returns every linalg type: per domain the vectors 2..4, then the
// matrices in row-count then column-count order. The order fixes the hash
// constant assignment and must not change.
func Types() []Type {
	out := make([]Type, 0, len(Domains)*(len(Dims)+len(Dims)*len(Dims)))
	for _, d := range Domains {
		for _, n := range Dims {
			out = append(out, Type{Domain: d, Rows: n})
		}
		for _, r := range Dims {
			for _, c := range Dims {
				out = append(out, Type{Domain: d, Rows: r, Cols: c})
			}
		}
	}

	return out
}

func vecName(d Domain, n int) string { return fmt.Sprintf("%s%d", d.Name, n) }

func matName(d Domain, r, c int) string { return fmt.Sprintf("%s%dx%d", d.Name, r, c) }

// boolName returns the Bool type with the shape of t.
func boolName(t Type) string { return Type{Domain: Bool, Rows: t.Rows, Cols: t.Cols}.Name() }

func comps(prefix string, n int) []string { return indexed(prefix+"[%d]", n) }

// indexed formats format with 0..n-1.
func indexed(format string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf(format, i)
	}

	return out
}

// SPDX-License-Identifier: MIT

package gen

import (
	"fmt"
	"strings"
)

func (g *Generator) matrixFile(d Domain) []byte {
	deps := []string{"fmt"}
	if d.Kind == KindFloat {
		deps = append(deps, g.pkgPath("sfloat"))
	}
	f := g.newFile("linalg", deps...)
	for _, r := range Dims {
		for _, c := range Dims {
			emitMatrix(f, d, r, c)
		}
	}

	return f.bytes()
}

// emitMatrix writes one Rows×Cols matrix type. Everything except the
// constructors and Transpose delegates to the column vector methods.
func emitMatrix(f *file, d Domain, r, c int) {
	M, C, E := matName(d, r, c), vecName(d, r), d.Elem
	cols := func(format string) string { return join(indexed(format, c)) }

	f.doc(fmt.Sprintf("%s is a %d×%d matrix of %s stored as %d columns of %s.", M, r, c, E, c, C))
	f.pf("type %s [%d]%s", M, c, C)
	f.p("")

	params := make([]string, 0, r*c)
	for i := range r {
		for j := range c {
			params = append(params, fmt.Sprintf("m%d%d", i, j))
		}
	}
	colLits := make([]string, c)
	for j := range c {
		elems := make([]string, r)
		for i := range r {
			elems[i] = fmt.Sprintf("m%d%d", i, j)
		}
		colLits[j] = "{" + join(elems) + "}"
	}
	f.fn(fmt.Sprintf("New%s returns the matrix with the given elements in row-major order.", M),
		fmt.Sprintf("func New%s(%s %s) %s", M, join(params), E, M),
		fmt.Sprintf("return %s{%s}", M, join(colLits)))
	colParams := cols("c%d")
	f.fn(fmt.Sprintf("%sFromColumns returns the matrix with the given columns.", M),
		fmt.Sprintf("func %sFromColumns(%s %s) %s", M, colParams, C, M),
		fmt.Sprintf("return %s{%s}", M, colParams))
	f.fn(fmt.Sprintf("Broadcast%s returns a %s with every element set to s.", M, M),
		fmt.Sprintf("func Broadcast%s(s %s) %s", M, E, M),
		fmt.Sprintf("c := Broadcast%s(s)", C),
		fmt.Sprintf("return %s{%s}", M, join(repeat("c", c))))
	zero := "zero"
	if d.Kind == KindBool {
		zero = "false"
	}
	f.fn(fmt.Sprintf("Zero%s returns the all-%s matrix.", M, zero),
		fmt.Sprintf("func Zero%s() %s", M, M),
		fmt.Sprintf("return %s{}", M))
	if r == c {
		id := make([]string, c)
		for j := range c {
			elems := make([]string, r)
			for i := range r {
				elems[i] = d.Zero
				if i == j {
					elems[i] = d.One
				}
			}
			id[j] = "{" + join(elems) + "}"
		}
		f.fn(fmt.Sprintf("Identity%s returns the identity matrix.", M),
			fmt.Sprintf("func Identity%s() %s", M, M),
			fmt.Sprintf("return %s{%s}", M, join(id)))
	}
	for _, src := range convSources(d) {
		W := matName(src, r, c)
		f.fn(fmt.Sprintf("%sFrom%s converts w elementwise (%s).", M, W, convDoc[[2]Kind{src.Kind, d.Kind}]),
			fmt.Sprintf("func %sFrom%s(w %s) %s", M, W, W, M),
			fmt.Sprintf("return %s{%s}", M, cols(C+"From"+vecName(src, r)+"(w[%d])")))
	}
	f.fn("At returns column i.", fmt.Sprintf("func (m %s) At(i int) %s", M, C),
		fmt.Sprintf("checkIndex(i, %d)", c), "return m[i]")
	f.fn("Col returns a pointer to column i; writes through it modify m.",
		fmt.Sprintf("func (m *%s) Col(i int) *%s", M, C),
		fmt.Sprintf("checkIndex(i, %d)", c), "return &m[i]")
	f.fn("SetCol replaces column i with v.", fmt.Sprintf("func (m *%s) SetCol(i int, v %s)", M, C),
		fmt.Sprintf("checkIndex(i, %d)", c), "m[i] = v")

	for _, op := range binaryOps {
		if !op.appliesTo(d) {
			continue
		}
		R := op.result(Type{Domain: d, Rows: r, Cols: c})
		f.fn(fmt.Sprintf("%s returns m %s n elementwise.", op.name, op.symbol),
			fmt.Sprintf("func (m %s) %s(n %s) %s", M, op.name, M, R),
			fmt.Sprintf("return %s{%s}", R, cols("m[%[1]d]."+op.name+"(n[%[1]d])")))
		f.fn(fmt.Sprintf("%sScalar returns m %s s elementwise.", op.name, op.symbol),
			fmt.Sprintf("func (m %s) %sScalar(s %s) %s", M, op.name, E, R),
			fmt.Sprintf("return %s{%s}", R, cols("m[%d]."+op.name+"Scalar(s)")))
		f.fn(fmt.Sprintf("Scalar%s returns s %s m elementwise.", op.name, op.symbol),
			fmt.Sprintf("func (m %s) Scalar%s(s %s) %s", M, op.name, E, R),
			fmt.Sprintf("return %s{%s}", R, cols("m[%d].Scalar"+op.name+"(s)")))
	}

	type unary struct{ name, what string }
	var unaries []unary
	if d.Integer() {
		unaries = append(unaries,
			unary{"Shl", "shifts every element left by n mod 32 bits"},
			unary{"Shr", "shifts every element right by n mod 32 bits"})
	}
	if d.Numeric() {
		unaries = append(unaries,
			unary{"Neg", "returns -m elementwise"},
			unary{"Plus", ""},
			unary{"Inc", "returns m + 1 elementwise"},
			unary{"Dec", "returns m - 1 elementwise"})
	}
	if d.Kind == KindBool {
		unaries = append(unaries, unary{"Not", "returns !m elementwise"})
	}
	if d.Integer() {
		unaries = append(unaries, unary{"BitNot", "returns ^m elementwise"})
	}
	for _, u := range unaries {
		switch u.name {
		case "Plus":
			f.fn("Plus returns m unchanged (unary +).", fmt.Sprintf("func (m %s) Plus() %s", M, M), "return m")
		case "Shl", "Shr":
			f.fn(fmt.Sprintf("%s %s.", u.name, u.what),
				fmt.Sprintf("func (m %s) %s(n int) %s", M, u.name, M),
				fmt.Sprintf("return %s{%s}", M, cols("m[%d]."+u.name+"(n)")))
		default:
			f.fn(fmt.Sprintf("%s %s.", u.name, u.what),
				fmt.Sprintf("func (m %s) %s() %s", M, u.name, M),
				fmt.Sprintf("return %s{%s}", M, cols("m[%d]."+u.name+"()")))
		}
	}
	if d.Kind == KindBool {
		f.fn("All reports whether every element is true.", fmt.Sprintf("func (m %s) All() bool", M),
			"return "+strings.Join(indexed("m[%d].All()", c), " && "))
		f.fn("Any reports whether at least one element is true.", fmt.Sprintf("func (m %s) Any() bool", M),
			"return "+strings.Join(indexed("m[%d].Any()", c), " || "))
	}

	T := matName(d, c, r)
	targs := make([]string, 0, r*c)
	for i := range c {
		for j := range r {
			targs = append(targs, fmt.Sprintf("m[%d][%d]", i, j))
		}
	}
	f.fn(fmt.Sprintf("Transpose returns the %d×%d transpose of m.", c, r),
		fmt.Sprintf("func (m %s) Transpose() %s", M, T),
		fmt.Sprintf("return New%s(%s)", T, join(targs)))
	emitCommon(f, Type{Domain: d, Rows: r, Cols: c}, "m", "n")
}

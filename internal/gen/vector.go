// SPDX-License-Identifier: MIT

package gen

import (
	"fmt"
	"strings"
)

// opKind groups binary operators by the domains that define them.
type opKind int

const (
	opArith opKind = iota // numeric domains
	opEq                  // every domain, Bool result
	opCmp                 // numeric domains, Bool result
	opLogic               // non-float domains
)

// binaryOp is one componentwise operator in its three call shapes.
type binaryOp struct {
	name   string // method name
	symbol string // operator used in docs
	float  string // sfloat.Float method
	infix  string // int32/uint32 operator
	bool   string // bool operator, empty when undefined
	kind   opKind
}

var binaryOps = []binaryOp{
	{"Add", "+", "Add", "+", "", opArith},
	{"Sub", "-", "Sub", "-", "", opArith},
	{"Mul", "*", "Mul", "*", "", opArith},
	{"Div", "/", "Div", "/", "", opArith},
	{"Mod", "%", "Mod", "%", "", opArith},
	{"Eq", "==", "Eq", "==", "==", opEq},
	{"Ne", "!=", "Ne", "!=", "!=", opEq},
	{"Lt", "<", "Less", "<", "", opCmp},
	{"Le", "<=", "LessEq", "<=", "", opCmp},
	{"Gt", ">", "Greater", ">", "", opCmp},
	{"Ge", ">=", "GreaterEq", ">=", "", opCmp},
	{"And", "&", "", "&", "&&", opLogic},
	{"Or", "|", "", "|", "||", opLogic},
	{"Xor", "^", "", "^", "!=", opLogic},
}

func (op binaryOp) appliesTo(d Domain) bool {
	switch op.kind {
	case opArith, opCmp:
		return d.Numeric()
	case opEq:
		return true
	}

	return d.Bitwise()
}

// expr spells a op b for one scalar of d.
func (op binaryOp) expr(d Domain, a, b string) string {
	switch d.Kind {
	case KindFloat:
		return fmt.Sprintf("%s.%s(%s)", a, op.float, b)
	case KindBool:
		return fmt.Sprintf("%s %s %s", a, op.bool, b)
	}

	return fmt.Sprintf("%s %s %s", a, op.infix, b)
}

// result returns the type produced by op on t.
func (op binaryOp) result(t Type) string {
	if op.kind == opEq || op.kind == opCmp {
		return boolName(t)
	}

	return t.Name()
}

// convDoc explains the scalar conversion from one domain to another.
var convDoc = map[[2]Kind]string{
	{KindBool, KindInt}:   "false maps to 0 and true to 1",
	{KindBool, KindUInt}:  "false maps to 0 and true to 1",
	{KindBool, KindFloat}: "false maps to 0 and true to 1",
	{KindInt, KindUInt}:   "two's-complement reinterpretation",
	{KindUInt, KindInt}:   "two's-complement reinterpretation",
	{KindInt, KindFloat}:  "widening, rounds to nearest even",
	{KindUInt, KindFloat}: "widening, rounds to nearest even",
	{KindFloat, KindInt}:  "truncates toward zero, NaN maps to 0, out-of-range values saturate",
	{KindFloat, KindUInt}: "truncates toward zero, NaN maps to 0, out-of-range values saturate",
}

// convExpr converts scalar x from src to dst.
func convExpr(src, dst Domain, x string) string {
	switch {
	case src.Kind == KindBool && dst.Kind == KindFloat:
		return fmt.Sprintf("sfloat.FromBool(%s)", x)
	case src.Kind == KindBool:
		return fmt.Sprintf("boolTo[%s](%s)", dst.Elem, x)
	case dst.Kind == KindFloat && src.Kind == KindInt:
		return fmt.Sprintf("sfloat.FromInt32(%s)", x)
	case dst.Kind == KindFloat:
		return fmt.Sprintf("sfloat.FromUint32(%s)", x)
	case src.Kind == KindFloat && dst.Kind == KindInt:
		return x + ".Int32()"
	case src.Kind == KindFloat:
		return x + ".Uint32()"
	}

	return fmt.Sprintf("%s(%s)", dst.Elem, x)
}

// convSources lists the domains d converts from. Nothing converts into Bool.
func convSources(d Domain) []Domain {
	if d.Kind == KindBool {
		return nil
	}
	var out []Domain
	for _, s := range Domains {
		if s.Kind != d.Kind {
			out = append(out, s)
		}
	}

	return out
}

// bitsExpr reinterprets scalar x as the uint32 fed to the hash.
func bitsExpr(d Domain, x string) string {
	switch d.Kind {
	case KindBool:
		return "boolTo[uint32](" + x + ")"
	case KindInt:
		return "uint32(" + x + ")"
	case KindFloat:
		return x + ".Bits()"
	}

	return x
}

func (g *Generator) vectorFile(d Domain) []byte {
	deps := []string{"fmt"}
	if d.Kind == KindFloat {
		deps = append(deps, g.pkgPath("sfloat"))
	}
	f := g.newFile("linalg", deps...)
	for _, n := range Dims {
		emitVector(f, d, n)
	}

	return f.bytes()
}

func emitVector(f *file, d Domain, n int) {
	V, E := vecName(d, n), d.Elem
	params := strings.Split(strings.ToLower(letters[:n]), "")
	each := func(format string) string { return join(indexed(format, n)) }

	f.doc(fmt.Sprintf("%s is a %d-component vector of %s.", V, n, E))
	f.pf("type %s [%d]%s", V, n, E)
	f.p("")
	f.fn(fmt.Sprintf("New%s returns the vector (%s).", V, join(params)),
		fmt.Sprintf("func New%s(%s %s) %s", V, join(params), E, V),
		fmt.Sprintf("return %s{%s}", V, join(params)))
	f.fn(fmt.Sprintf("Broadcast%s returns a %s with every component set to s.", V, V),
		fmt.Sprintf("func Broadcast%s(s %s) %s", V, E, V),
		fmt.Sprintf("return %s{%s}", V, join(repeat("s", n))))
	for _, src := range convSources(d) {
		W := vecName(src, n)
		conv := make([]string, n)
		for i, x := range comps("w", n) {
			conv[i] = convExpr(src, d, x)
		}
		f.fn(fmt.Sprintf("%sFrom%s converts w componentwise (%s).", V, W, convDoc[[2]Kind{src.Kind, d.Kind}]),
			fmt.Sprintf("func %sFrom%s(w %s) %s", V, W, W, V),
			fmt.Sprintf("return %s{%s}", V, join(conv)))
	}
	if n < 4 {
		U := vecName(d, n+1)
		f.fn(fmt.Sprintf("Extend returns the %d-component vector (v, s).", n+1),
			fmt.Sprintf("func (v %s) Extend(s %s) %s", V, E, U),
			fmt.Sprintf("return %s{%s}", U, join(append(comps("v", n), "s"))))
	}
	f.fn("At returns component i.", fmt.Sprintf("func (v %s) At(i int) %s", V, E),
		fmt.Sprintf("checkIndex(i, %d)", n), "return v[i]")
	f.fn("Set replaces component i with s.", fmt.Sprintf("func (v *%s) Set(i int, s %s)", V, E),
		fmt.Sprintf("checkIndex(i, %d)", n), "v[i] = s")

	for _, op := range binaryOps {
		if !op.appliesTo(d) {
			continue
		}
		R := op.result(Type{Domain: d, Rows: n})
		vw, vs, sv := make([]string, n), make([]string, n), make([]string, n)
		for i := range n {
			vi := fmt.Sprintf("v[%d]", i)
			vw[i] = op.expr(d, vi, fmt.Sprintf("w[%d]", i))
			vs[i] = op.expr(d, vi, "s")
			sv[i] = op.expr(d, "s", vi)
		}
		f.fn(fmt.Sprintf("%s returns v %s w componentwise.", op.name, op.symbol),
			fmt.Sprintf("func (v %s) %s(w %s) %s", V, op.name, V, R),
			fmt.Sprintf("return %s{%s}", R, join(vw)))
		f.fn(fmt.Sprintf("%sScalar returns v %s s componentwise.", op.name, op.symbol),
			fmt.Sprintf("func (v %s) %sScalar(s %s) %s", V, op.name, E, R),
			fmt.Sprintf("return %s{%s}", R, join(vs)))
		f.fn(fmt.Sprintf("Scalar%s returns s %s v componentwise.", op.name, op.symbol),
			fmt.Sprintf("func (v %s) Scalar%s(s %s) %s", V, op.name, E, R),
			fmt.Sprintf("return %s{%s}", R, join(sv)))
	}

	if d.Integer() {
		shr := "shifts every component right (logical)"
		if d.Kind == KindInt {
			shr = "shifts every component right (arithmetic)"
		}
		for _, sh := range []struct{ name, sym, what string }{
			{"Shl", "<<", "shifts every component left"},
			{"Shr", ">>", shr},
		} {
			f.fn(fmt.Sprintf("%s %s by n mod 32 bits.", sh.name, sh.what),
				fmt.Sprintf("func (v %s) %s(n int) %s", V, sh.name, V),
				"s := uint(n) & 31",
				fmt.Sprintf("return %s{%s}", V, each("v[%d] "+sh.sym+" s")))
		}
	}
	if d.Numeric() {
		neg, inc, dec, abs := "-v[%d]", "v[%d] + 1", "v[%d] - 1", "abs32(v[%d])"
		if d.Kind == KindFloat {
			neg, inc, dec, abs = "v[%d].Neg()", "v[%d].Add(sfloat.One)", "v[%d].Sub(sfloat.One)", "v[%d].Abs()"
		}
		f.fn("Neg returns -v componentwise.", fmt.Sprintf("func (v %s) Neg() %s", V, V),
			fmt.Sprintf("return %s{%s}", V, each(neg)))
		f.fn("Plus returns v unchanged (unary +).", fmt.Sprintf("func (v %s) Plus() %s", V, V), "return v")
		f.fn("Inc returns v + 1 componentwise.", fmt.Sprintf("func (v %s) Inc() %s", V, V),
			fmt.Sprintf("return %s{%s}", V, each(inc)))
		f.fn("Dec returns v - 1 componentwise.", fmt.Sprintf("func (v %s) Dec() %s", V, V),
			fmt.Sprintf("return %s{%s}", V, each(dec)))
		if d.Kind != KindUInt {
			f.fn("Abs returns |v| componentwise.", fmt.Sprintf("func (v %s) Abs() %s", V, V),
				fmt.Sprintf("return %s{%s}", V, each(abs)))
		}
	}
	if d.Kind == KindBool {
		f.fn("Not returns !v componentwise.", fmt.Sprintf("func (v %s) Not() %s", V, V),
			fmt.Sprintf("return %s{%s}", V, each("!v[%d]")))
	}
	if d.Integer() {
		f.fn("BitNot returns ^v componentwise.", fmt.Sprintf("func (v %s) BitNot() %s", V, V),
			fmt.Sprintf("return %s{%s}", V, each("^v[%d]")))
	}
	if d.Numeric() {
		csum := strings.Join(comps("v", n), " + ")
		minFn, maxFn := "min", "max"
		if d.Kind == KindFloat {
			csum = "v[0]" + strings.Join(indexed(".Add(v[%d])", n)[1:], "")
			minFn, maxFn = "sfloat.Min", "sfloat.Max"
		}
		f.fn("Csum returns the sum of the components, accumulated left to right.",
			fmt.Sprintf("func (v %s) Csum() %s", V, E), "return "+csum)
		f.fn("Dot returns the dot product Csum(v * w).",
			fmt.Sprintf("func (v %s) Dot(w %s) %s", V, V, E), "return v.Mul(w).Csum()")
		for _, mm := range []struct{ name, fn, what string }{
			{"Min", minFn, "minimum"},
			{"Max", maxFn, "maximum"},
		} {
			f.fn(fmt.Sprintf("%s returns the componentwise %s of v and w.", mm.name, mm.what),
				fmt.Sprintf("func (v %s) %s(w %s) %s", V, mm.name, V, V),
				fmt.Sprintf("return %s{%s}", V, each(mm.fn+"(v[%[1]d], w[%[1]d])")))
		}
	}
	if d.Kind == KindBool {
		f.fn("All reports whether every component is true.",
			fmt.Sprintf("func (v %s) All() bool", V), "return "+strings.Join(comps("v", n), " && "))
		f.fn("Any reports whether at least one component is true.",
			fmt.Sprintf("func (v %s) Any() bool", V), "return "+strings.Join(comps("v", n), " || "))
	}
	f.fn(fmt.Sprintf("Select%s returns t[i] where c[i] is true and f[i] elsewhere.", V),
		fmt.Sprintf("func Select%s(f, t %s, c %s) %s", V, V, vecName(Bool, n), V),
		fmt.Sprintf("return %s{%s}", V, each("pick(f[%[1]d], t[%[1]d], c[%[1]d])")))
	emitCommon(f, Type{Domain: d, Rows: n}, "v", "w")
}

// emitCommon writes Equal, the hash methods, String and bits, shared by
// vectors (receiver v) and matrices (receiver m).
func emitCommon(f *file, t Type, r, o string) {
	T, d := t.Name(), t.Domain
	f.fn(fmt.Sprintf("Equal reports whether %s and %s are componentwise equal.", r, o),
		fmt.Sprintf("func (%s %s) Equal(%s %s) bool", r, T, o, T),
		fmt.Sprintf("return %s.Eq(%s).All()", r, o))
	f.fn(fmt.Sprintf("Hash returns a deterministic 32-bit digest of the bit pattern of %s.", r),
		fmt.Sprintf("func (%s %s) Hash() uint32", r, T),
		fmt.Sprintf("b := %s.bits()", r),
		fmt.Sprintf("return hash%s.hash(b[:])", T))
	U := vecName(UInt, t.Rows)
	f.fn(fmt.Sprintf("HashWide returns a %d-lane digest of the bit pattern of %s.", t.Rows, r),
		fmt.Sprintf("func (%s %s) HashWide() %s", r, T, U),
		"var out "+U,
		fmt.Sprintf("b := %s.bits()", r),
		fmt.Sprintf("hash%s.wide(b[:], out[:])", T),
		"return out")
	f.fn("HashCode returns the low 32 bits of Hash as a signed integer.",
		fmt.Sprintf("func (%s %s) HashCode() int32", r, T),
		fmt.Sprintf("return int32(%s.Hash())", r))

	var format string
	var args []string
	if t.IsMatrix() {
		groups := make([]string, t.Rows)
		for row := range t.Rows {
			groups[row] = join(repeat(d.Verb, t.Cols))
			for c := range t.Cols {
				args = append(args, fmt.Sprintf("m[%d][%d]", c, row))
			}
		}
		format = strings.Join(groups, ",  ")
	} else {
		format = join(repeat(d.Verb, t.Rows))
		args = comps("v", t.Rows)
	}
	f.fn(fmt.Sprintf("String formats %s as %s.", r, exampleString(t)),
		fmt.Sprintf("func (%s %s) String() string", r, T),
		fmt.Sprintf("return fmt.Sprintf(%q, %s)", T+"("+format+")", join(args)))

	emitBits(f, t, r)
}

// emitBits writes bits, the column-major bit patterns fed to the hash
// kernels. It returns an array so hashing does not allocate; matrices too
// wide for one line list one column per line.
func emitBits(f *file, t Type, r string) {
	A := fmt.Sprintf("[%d]uint32", t.Size())
	header := fmt.Sprintf("func (%s %s) bits() %s", r, t.Name(), A)
	if !t.IsMatrix() {
		bits := make([]string, t.Rows)
		for i, x := range comps("v", t.Rows) {
			bits[i] = bitsExpr(t.Domain, x)
		}
		f.fn("", header, fmt.Sprintf("return %s{%s}", A, join(bits)))
		return
	}

	cols := make([]string, t.Cols)
	var all []string
	for c := range t.Cols {
		col := make([]string, t.Rows)
		for row := range t.Rows {
			col[row] = bitsExpr(t.Domain, fmt.Sprintf("m[%d][%d]", c, row))
		}
		cols[c] = "\t" + join(col) + ","
		all = append(all, col...)
	}
	if one := fmt.Sprintf("return %s{%s}", A, join(all)); len(header)+len(one) <= oneLineMax {
		f.fn("", header, one)
		return
	}
	body := append([]string{"return " + A + "{"}, cols...)
	f.fn("", header, append(body, "}")...)
}

// exampleString renders a sample String output for the doc comment.
func exampleString(t Type) string {
	var sample [2]string
	switch t.Domain.Kind {
	case KindBool:
		sample = [2]string{"true", "false"}
	case KindInt:
		sample = [2]string{"1", "-2"}
	case KindUInt:
		sample = [2]string{"1", "2"}
	case KindFloat:
		sample = [2]string{"1f", "0.5f"}
	}
	if !t.IsMatrix() {
		elems := make([]string, t.Rows)
		for i := range elems {
			elems[i] = sample[i%2]
		}
		return fmt.Sprintf("%q", t.Name()+"("+join(elems)+")")
	}
	rows := make([]string, t.Rows)
	for row := range rows {
		elems := make([]string, t.Cols)
		for c := range elems {
			elems[c] = sample[(row+c)%2]
		}
		rows[row] = join(elems)
	}

	return fmt.Sprintf("%q", t.Name()+"("+strings.Join(rows, ",  ")+")")
}

func repeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}

	return out
}

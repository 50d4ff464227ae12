// SPDX-License-Identifier: MIT

package gen

// elemParsers names the literal package parser for each domain.
var elemParsers = map[Kind]string{
	KindBool:  "parseBools(elems)",
	KindInt:   "parseInts(elems)",
	KindUInt:  "parseUints(elems)",
	KindFloat: "parseFloats(elems, o)",
}

// dispatchFile writes the type switches that let package literal reach the
// concrete linalg types from a type name or a Value.
func (g *Generator) dispatchFile() []byte {
	f := g.newFile("literal", g.pkgPath("linalg"))
	types := Types()

	f.doc("build constructs the named linalg value from its row-major element literals.\n" +
		"The caller has already checked that len(elems) matches the shape of name.")
	f.p("func build(name string, elems []string, o Options) (Value, error) {")
	f.p("\tswitch name {")
	for _, t := range types {
		f.pf("\tcase %q:", t.Name())
		f.pf("\t\te, err := %s", elemParsers[t.Domain.Kind])
		f.p("\t\tif err != nil {")
		f.p("\t\t\treturn nil, err")
		f.p("\t\t}")
		f.pf("\t\treturn linalg.New%s(%s), nil", t.Name(), join(indexed("e[%d]", t.Size())))
	}
	f.p("\t}")
	f.p("")
	f.p("\treturn nil, ErrUnknownType")
	f.p("}")
	f.p("")

	typeSwitch(f, "hashWide returns v.HashWide() for every linalg type.", "hashWide", "HashWide", types)
	var matrices []Type
	for _, t := range types {
		if t.IsMatrix() {
			matrices = append(matrices, t)
		}
	}
	typeSwitch(f, "transpose returns v.Transpose() for every linalg matrix type.", "transpose", "Transpose", matrices)

	return f.bytes()
}

// typeSwitch writes func name(v Value) (Value, bool) returning v.method()
// for the listed types.
func typeSwitch(f *file, doc, name, method string, types []Type) {
	f.doc(doc)
	f.pf("func %s(v Value) (Value, bool) {", name)
	f.p("\tswitch x := v.(type) {")
	for _, t := range types {
		f.pf("\tcase linalg.%s:", t.Name())
		f.pf("\t\treturn x.%s(), true", method)
	}
	f.p("\t}")
	f.p("")
	f.p("\treturn nil, false")
	f.p("}")
	f.p("")
}

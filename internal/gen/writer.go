// SPDX-License-Identifier: MIT

package gen

import (
	"fmt"
	"strings"
)

// oneLineMax bounds header plus body for a function printed on one line.
// It stays below gofmt's own limit so the output is already formatted.
const oneLineMax = 95

// file accumulates the source text of one generated file.
type file struct {
	b strings.Builder
}

// p writes one line.
func (f *file) p(line string) {
	f.b.WriteString(line)
	f.b.WriteByte('\n')
}

// pf writes one formatted line.
func (f *file) pf(format string, args ...any) { f.p(fmt.Sprintf(format, args...)) }

// doc writes text as a line comment, one // line per text line.
func (f *file) doc(text string) {
	for _, l := range strings.Split(text, "\n") {
		if l == "" {
			f.p("//")
			continue
		}
		f.p("// " + l)
	}
}

// fn writes a function declaration followed by a blank line. A single short
// statement shares the header's line; an empty doc writes no comment.
func (f *file) fn(doc, header string, body ...string) {
	if doc != "" {
		f.doc(doc)
	}
	if len(body) == 1 && len(header)+len(body[0]) <= oneLineMax {
		f.pf("%s { %s }", header, body[0])
	} else {
		f.p(header + " {")
		for _, l := range body {
			f.p("\t" + l)
		}
		f.p("}")
	}
	f.p("")
}

// prelude writes the header, the package clause and the import section.
// Standard library paths are grouped before module paths.
func (f *file) prelude(header, pkg string, imports ...string) {
	f.b.WriteString(header)
	f.p("package " + pkg)
	f.p("")
	switch len(imports) {
	case 0:
		return
	case 1:
		f.pf("import %q", imports[0])
		f.p("")
		return
	}

	var std, ext []string
	for _, imp := range imports {
		if first, _, _ := strings.Cut(imp, "/"); strings.Contains(first, ".") {
			ext = append(ext, imp)
		} else {
			std = append(std, imp)
		}
	}
	f.p("import (")
	for _, imp := range std {
		f.pf("\t%q", imp)
	}
	if len(std) > 0 && len(ext) > 0 {
		f.p("")
	}
	for _, imp := range ext {
		f.pf("\t%q", imp)
	}
	f.p(")")
	f.p("")
}

// bytes returns the text ending in exactly one newline.
func (f *file) bytes() []byte {
	return []byte(strings.TrimRight(f.b.String(), "\n") + "\n")
}

func join(parts []string) string { return strings.Join(parts, ", ") }

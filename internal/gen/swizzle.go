// SPDX-License-Identifier: MIT

package gen

import "fmt"

// swizzleFile writes the named swizzle accessors of every vector: the single
// components, every 2- and 3-letter selection (repeats allowed), the
// permuting 2-letter setters, and the index-based Swizzle2/3/4. 4-letter
// selections go through Swizzle4 only.
func (g *Generator) swizzleFile() []byte {
	f := g.newFile("linalg", g.pkgPath("sfloat"))
	for _, d := range Domains {
		for _, n := range Dims {
			emitSwizzles(f, d, n)
		}
	}

	return f.bytes()
}

func emitSwizzles(f *file, d Domain, n int) {
	V, L := vecName(d, n), letters[:n]
	for i := range n {
		f.fn(fmt.Sprintf("%c returns component %d.", L[i], i),
			fmt.Sprintf("func (v %s) %c() %s", V, L[i], d.Elem),
			fmt.Sprintf("return v[%d]", i))
	}
	for _, k := range []int{2, 3} {
		R := vecName(d, k)
		for _, idx := range product(n, k) {
			name, sel := swizzleName(L, idx), join(selectors("v[%d]", idx))
			f.fn(fmt.Sprintf("%s returns the %s (%s).", name, R, sel),
				fmt.Sprintf("func (v %s) %s() %s", V, name, R),
				fmt.Sprintf("return %s{%s}", R, sel))
		}
	}
	for _, idx := range product(n, 2) {
		if idx[0] == idx[1] {
			continue
		}
		name := swizzleName(L, idx)
		f.fn(fmt.Sprintf("Set%s sets (v[%d], v[%d]) to w.", name, idx[0], idx[1]),
			fmt.Sprintf("func (v *%s) Set%s(w %s)", V, name, vecName(d, 2)),
			fmt.Sprintf("v[%d], v[%d] = w[0], w[1]", idx[0], idx[1]))
	}
	params := []string{"i", "j", "k", "l"}
	for _, k := range []int{2, 3, 4} {
		R, ps := vecName(d, k), params[:k]
		body := make([]string, 0, k+1)
		reads := make([]string, k)
		for i, p := range ps {
			body = append(body, fmt.Sprintf("checkIndex(%s, %d)", p, n))
			reads[i] = "v[" + p + "]"
		}
		body = append(body, fmt.Sprintf("return %s{%s}", R, join(reads)))
		f.fn(fmt.Sprintf("Swizzle%d returns the %s (%s).", k, R, join(reads)),
			fmt.Sprintf("func (v %s) Swizzle%d(%s int) %s", V, k, join(ps), R),
			body...)
	}
}

// product returns every length-k index tuple over [0, n) in lexicographic
// order.
func product(n, k int) [][]int {
	if k == 0 {
		return [][]int{nil}
	}
	var out [][]int
	for _, p := range product(n, k-1) {
		for i := range n {
			out = append(out, append(append([]int(nil), p...), i))
		}
	}

	return out
}

func swizzleName(letters string, idx []int) string {
	b := make([]byte, len(idx))
	for i, x := range idx {
		b[i] = letters[x]
	}

	return string(b)
}

func selectors(format string, idx []int) []string {
	out := make([]string, len(idx))
	for i, x := range idx {
		out[i] = fmt.Sprintf(format, x)
	}

	return out
}

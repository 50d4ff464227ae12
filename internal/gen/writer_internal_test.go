// SPDX-License-Identifier: MIT
package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFile_Fn(t *testing.T) {
	t.Parallel()

	f := &file{}
	f.fn("Short is short.", "func Short() int", "return 1")
	f.fn("", "func Two() int", "x := 1", "return x")
	f.fn("", "func Long() string", "return \""+strings.Repeat("a", oneLineMax)+"\"")
	got := string(f.bytes())

	require.Equal(t, "// Short is short.\nfunc Short() int { return 1 }\n\n"+
		"func Two() int {\n\tx := 1\n\treturn x\n}\n\n"+
		"func Long() string {\n\treturn \""+strings.Repeat("a", oneLineMax)+"\"\n}\n", got)
}

func TestFile_Prelude(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		imports []string
		want    string
	}{
		{"None", nil, "H\npackage p\n"},
		{"One", []string{"fmt"}, "H\npackage p\n\nimport \"fmt\"\n"},
		{"Grouped", []string{"fmt", "slices", "example.com/m/x"},
			"H\npackage p\n\nimport (\n\t\"fmt\"\n\t\"slices\"\n\n\t\"example.com/m/x\"\n)\n"},
		{"ModuleOnly", []string{"example.com/m/x", "example.com/m/y"},
			"H\npackage p\n\nimport (\n\t\"example.com/m/x\"\n\t\"example.com/m/y\"\n)\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f := &file{}
			f.prelude("H\n", "p", tc.imports...)
			require.Equal(t, tc.want, string(f.bytes()))
		})
	}
}

func TestProduct(t *testing.T) {
	t.Parallel()

	require.Equal(t, [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, product(2, 2))
	require.Len(t, product(4, 3), 64)
	require.Equal(t, "WZY", swizzleName(letters, []int{3, 2, 1}))
}

func TestConvExpr(t *testing.T) {
	t.Parallel()

	require.Equal(t, "sfloat.FromBool(x)", convExpr(Bool, Float, "x"))
	require.Equal(t, "boolTo[int32](x)", convExpr(Bool, Int, "x"))
	require.Equal(t, "sfloat.FromInt32(x)", convExpr(Int, Float, "x"))
	require.Equal(t, "sfloat.FromUint32(x)", convExpr(UInt, Float, "x"))
	require.Equal(t, "x.Int32()", convExpr(Float, Int, "x"))
	require.Equal(t, "x.Uint32()", convExpr(Float, UInt, "x"))
	require.Equal(t, "uint32(x)", convExpr(Int, UInt, "x"))
	require.Equal(t, "int32(x)", convExpr(UInt, Int, "x"))
	require.Empty(t, convSources(Bool))
	require.Equal(t, []Domain{Bool, Int, UInt}, convSources(Float))
}

func TestBinaryOps(t *testing.T) {
	t.Parallel()

	counts := map[Kind]int{}
	for _, d := range Domains {
		for _, op := range binaryOps {
			if op.appliesTo(d) {
				counts[d.Kind]++
			}
		}
	}
	require.Equal(t, map[Kind]int{KindBool: 5, KindInt: 14, KindUInt: 14, KindFloat: 11}, counts)

	xor := binaryOps[len(binaryOps)-1]
	require.Equal(t, "a != b", xor.expr(Bool, "a", "b"))
	require.Equal(t, "a ^ b", xor.expr(Int, "a", "b"))
	lt := binaryOps[7]
	require.Equal(t, "a.Less(b)", lt.expr(Float, "a", "b"))
	require.Equal(t, "Bool2x3", lt.result(Type{Domain: Float, Rows: 2, Cols: 3}))
}

func TestEmitBits(t *testing.T) {
	t.Parallel()

	f := &file{}
	emitBits(f, Type{Domain: Int, Rows: 2}, "v")
	emitBits(f, Type{Domain: Int, Rows: 2, Cols: 2}, "m")
	emitBits(f, Type{Domain: Bool, Rows: 3, Cols: 2}, "m")

	require.Equal(t, "func (v Int2) bits() [2]uint32 { return [2]uint32{uint32(v[0]), uint32(v[1])} }\n\n"+
		"func (m Int2x2) bits() [4]uint32 {\n"+
		"\treturn [4]uint32{\n"+
		"\t\tuint32(m[0][0]), uint32(m[0][1]),\n"+
		"\t\tuint32(m[1][0]), uint32(m[1][1]),\n"+
		"\t}\n}\n\n"+
		"func (m Bool3x2) bits() [6]uint32 {\n"+
		"\treturn [6]uint32{\n"+
		"\t\tboolTo[uint32](m[0][0]), boolTo[uint32](m[0][1]), boolTo[uint32](m[0][2]),\n"+
		"\t\tboolTo[uint32](m[1][0]), boolTo[uint32](m[1][1]), boolTo[uint32](m[1][2]),\n"+
		"\t}\n}\n", string(f.bytes()))
}

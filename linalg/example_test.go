// SPDX-License-Identifier: MIT
package linalg_test

import (
	"fmt"

	"github.com/katalvlaran/detmath/linalg"
	"github.com/katalvlaran/detmath/sfloat"
)

func ExampleFloat3x3_Inverse() {
	m := linalg.NewFloat3x3(
		f(2), f(0), f(0),
		f(0), f(4), f(0),
		f(0), f(0), f(8),
	)
	fmt.Println(m.Determinant())
	fmt.Println(m.Inverse())
	// Output:
	// 64
	// Float3x3(0.5f, 0f, 0f,  0f, 0.25f, 0f,  0f, 0f, 0.125f)
}

func ExampleNewInt2x3() {
	m := linalg.NewInt2x3(
		1, 2, 3,
		4, 5, 6,
	)
	fmt.Println(m)
	fmt.Println(m[0], m.Transpose())
	// Output:
	// Int2x3(1, 2, 3,  4, 5, 6)
	// Int2(1, 4) Int3x2(1, 4,  2, 5,  3, 6)
}

func ExampleInt3_Hash() {
	v := linalg.Int3{1, -2, 3}
	fmt.Printf("%#08x %d\n", v.Hash(), v.HashCode())
	// Output:
	// 0x8aa13739 -1969146055
}

func ExampleFloat4_XYZ() {
	v := linalg.NewFloat4(f(1), f(2), f(3), f(4))
	fmt.Println(v.XYZ(), v.WZ(), v.Swizzle4(3, 3, 0, 0))
	v.SetZW(linalg.Float2{sfloat.Half, sfloat.Two})
	fmt.Println(v)
	// Output:
	// Float3(1f, 2f, 3f) Float2(4f, 3f) Float4(4f, 4f, 1f, 1f)
	// Float4(1f, 2f, 0.5f, 2f)
}

func ExampleFloat3x4_FastInverse() {
	rot := linalg.NewFloat3x3(
		f(0), f(-1), f(0),
		f(1), f(0), f(0),
		f(0), f(0), f(1),
	)
	m := linalg.Float3x4FromRotationTranslation(rot, linalg.Float3{f(1), f(2), f(3)})
	fmt.Println(m.FastInverse())
	// Output:
	// Float3x4(0f, 1f, 0f, -2f,  -1f, 0f, 0f, 1f,  0f, 0f, 1f, -3f)
}

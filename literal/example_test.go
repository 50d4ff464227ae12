// SPDX-License-Identifier: MIT
package literal_test

import (
	"fmt"

	"github.com/katalvlaran/detmath/literal"
)

func ExampleParse() {
	v, err := literal.Parse("Int2x3(1, 2, 3,  4, 5, 6)")
	if err != nil {
		panic(err)
	}
	t, _ := literal.Transpose(v)
	fmt.Printf("%T\n%v\n", t, t)
	// Output:
	// linalg.Int3x2
	// Int3x2(1, 4,  2, 5,  3, 6)
}

func ExampleInverse() {
	v, _ := literal.Parse("Float2x2(1f, 2f,  2f, 4f)")
	_, err := literal.Inverse(v, literal.WithSingularGuard(true))
	fmt.Println(err)
	// Output:
	// Inverse: Float2x2(1f, 2f,  2f, 4f): literal: singular matrix
}

func ExampleDeterminant() {
	v, _ := literal.Parse("Int3x3(2, 0, 0,  0, 3, 0,  0, 0, 4)")
	d, _ := literal.Determinant(v)
	fmt.Println(d)
	// Output: 24
}

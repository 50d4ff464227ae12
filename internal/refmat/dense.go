// SPDX-License-Identifier: MIT

package refmat

import (
	"fmt"
	"strings"
)

// Dense is a row-major matrix of float64 values.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c zero matrix.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, refmatErrorf("NewDense", ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewIdentity creates the n×n identity matrix.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, refmatErrorf("NewIdentity", err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// FromColumns builds a matrix from column slices, the storage order of
// linalg matrices. All columns must have the same non-zero length.
func FromColumns(cols ...[]float64) (*Dense, error) {
	if len(cols) == 0 {
		return nil, refmatErrorf("FromColumns", ErrInvalidDimensions)
	}
	m, err := NewDense(len(cols[0]), len(cols))
	if err != nil {
		return nil, refmatErrorf("FromColumns", err)
	}
	for j, col := range cols {
		if len(col) != m.r {
			return nil, refmatErrorf("FromColumns", fmt.Errorf("column %d has %d rows, want %d: %w", j, len(col), m.r, ErrInvalidDimensions))
		}
		for i, v := range col {
			m.data[i*m.c+j] = v
		}
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// String renders one bracketed line per row, e.g. "[1, 0]\n[0, 1]\n".
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// SPDX-License-Identifier: MIT
package refmat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/detmath/internal/refmat"
)

func TestNewDense_Validation(t *testing.T) {
	t.Parallel()

	_, err := refmat.NewDense(0, 2)
	require.ErrorIs(t, err, refmat.ErrInvalidDimensions)
	_, err = refmat.NewIdentity(-1)
	require.ErrorIs(t, err, refmat.ErrInvalidDimensions)
	_, err = refmat.FromColumns()
	require.ErrorIs(t, err, refmat.ErrInvalidDimensions)
	_, err = refmat.FromColumns([]float64{1, 2}, []float64{3})
	require.ErrorIs(t, err, refmat.ErrInvalidDimensions)
}

func TestDense_AtSet(t *testing.T) {
	t.Parallel()

	m, err := refmat.FromColumns([]float64{1, 2}, []float64{3, 4}, []float64{5, 6})
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, "[1, 3, 5]\n[2, 4, 6]\n", m.String())

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	require.NoError(t, m.Set(0, 0, -1))
	v, _ = m.At(0, 0)
	require.Equal(t, -1.0, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, refmat.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.Set(0, 3, 1), refmat.ErrIndexOutOfBounds)
}

func TestMul(t *testing.T) {
	t.Parallel()

	// [1 2; 3 4] · [5 6; 7 8] = [19 22; 43 50]
	a, _ := refmat.FromColumns([]float64{1, 3}, []float64{2, 4})
	b, _ := refmat.FromColumns([]float64{5, 7}, []float64{6, 8})
	p, err := refmat.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, "[19, 22]\n[43, 50]\n", p.String())

	id, _ := refmat.NewIdentity(2)
	p, err = refmat.Mul(a, id)
	require.NoError(t, err)
	ok, err := refmat.AllClose(p, a, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)

	c, _ := refmat.NewDense(3, 1)
	_, err = refmat.Mul(a, c)
	require.ErrorIs(t, err, refmat.ErrDimensionMismatch)
}

func TestAllClose(t *testing.T) {
	t.Parallel()

	a, _ := refmat.FromColumns([]float64{1, math.Inf(1)})
	b, _ := refmat.FromColumns([]float64{1 + 1e-9, math.Inf(1)})
	ok, err := refmat.AllClose(a, b, 0, 1e-6)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = refmat.AllClose(a, b, 0, 1e-12)
	require.NoError(t, err)
	require.False(t, ok)

	n, _ := refmat.FromColumns([]float64{math.NaN(), math.Inf(1)})
	ok, err = refmat.AllClose(n, n, 1, 1)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = refmat.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, refmat.ErrNaNInf)

	w, _ := refmat.NewDense(2, 2)
	_, err = refmat.AllClose(a, w, 0, 0)
	require.ErrorIs(t, err, refmat.ErrDimensionMismatch)
}

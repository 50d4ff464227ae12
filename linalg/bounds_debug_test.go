// SPDX-License-Identifier: MIT

//go:build debug

package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/detmath/linalg"
)

// requireIndexPanic asserts that fn panics with an error wrapping ErrIndexOutOfRange.
func requireIndexPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %T is not an error", r)
		require.ErrorIs(t, err, linalg.ErrIndexOutOfRange)
	}()
	fn()
}

func TestBounds_Debug(t *testing.T) {
	t.Parallel()

	v := linalg.Float3{}
	m := linalg.ZeroInt2x3()
	requireIndexPanic(t, func() { v.At(3) })
	requireIndexPanic(t, func() { v.At(-1) })
	requireIndexPanic(t, func() { v.Set(5, 0) })
	requireIndexPanic(t, func() { v.Swizzle2(0, 3) })
	requireIndexPanic(t, func() { m.At(3) })
	requireIndexPanic(t, func() { m.Col(-1) })
	requireIndexPanic(t, func() { m.SetCol(4, linalg.Int2{}) })

	require.NotPanics(t, func() { v.At(2) })
	require.NotPanics(t, func() { m.At(2) })
}

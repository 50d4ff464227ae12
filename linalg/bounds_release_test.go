// SPDX-License-Identifier: MIT

//go:build !debug

package linalg_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/detmath/linalg"
)

func TestBounds_Release(t *testing.T) {
	t.Parallel()

	v := linalg.Float3{}
	i := 3
	defer func() {
		r := recover()
		require.NotNil(t, r, "array indexing still panics")
		err, ok := r.(error)
		require.True(t, ok)
		require.False(t, errors.Is(err, linalg.ErrIndexOutOfRange), "the debug check is compiled out")
	}()
	v.At(i)
}

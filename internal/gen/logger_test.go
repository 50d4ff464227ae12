// SPDX-License-Identifier: MIT
package gen_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/detmath/internal/gen"
)

// Not parallel: the logger is package state.
func TestLogger(t *testing.T) {
	t.Cleanup(func() { gen.SetLogger(nil) })

	require.NotNil(t, gen.Logger())

	core, logs := observer.New(zapcore.DebugLevel)
	gen.SetLogger(zap.New(core))
	_, err := gen.New().Files()
	require.NoError(t, err)
	require.Equal(t, len(wantFiles), logs.FilterMessage("rendered").Len())

	gen.SetLogger(nil)
	_, err = gen.New().Files()
	require.NoError(t, err)
	require.Equal(t, len(wantFiles), logs.Len())
}

func TestLogger_Concurrent(t *testing.T) {
	t.Cleanup(func() { gen.SetLogger(nil) })

	l := zap.NewNop()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			gen.SetLogger(l)
		}()
		go func() {
			defer wg.Done()
			gen.Logger().Debug("tick")
		}()
	}
	wg.Wait()
	require.Same(t, l, gen.Logger())
}

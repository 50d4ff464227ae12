// SPDX-License-Identifier: MIT
package gen_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/detmath/internal/gen"
)

func TestHashTable_Shape(t *testing.T) {
	t.Parallel()

	table := gen.HashTable(gen.DefaultSeed)
	require.Len(t, table, len(gen.Types()))
	for i, k := range table {
		require.Equal(t, gen.Types()[i], k.Type)
		require.Len(t, k.Lanes, k.Type.Size(), k.Type.Name())
		require.Len(t, k.WideLanes, k.Type.Size(), k.Type.Name())
		if k.Type.IsMatrix() {
			require.Len(t, k.WideFinal, k.Type.Rows, k.Type.Name())
		} else {
			require.Len(t, k.WideFinal, 1, k.Type.Name())
		}
	}
}

func TestHashTable_Constants(t *testing.T) {
	t.Parallel()

	seen := make(map[uint32]string)
	check := func(name string, c uint32) {
		require.EqualValues(t, 1, c&1, "%s: %#x is even", name, c)
		require.GreaterOrEqual(t, c, uint32(0x10000000), name)
		require.True(t, big.NewInt(int64(c)).ProbablyPrime(20), "%s: %#x", name, c)
		prev, dup := seen[c]
		require.False(t, dup, "%s: %#x already used by %s", name, c, prev)
		seen[c] = name
	}
	for _, k := range gen.HashTable(gen.DefaultSeed) {
		for _, c := range k.Lanes {
			check(k.Type.Name(), c)
		}
		check(k.Type.Name(), k.Final)
		for _, c := range k.WideLanes {
			check(k.Type.Name(), c)
		}
		for _, c := range k.WideFinal {
			check(k.Type.Name(), c)
		}
	}
}

func TestHashTable_Deterministic(t *testing.T) {
	t.Parallel()

	require.Equal(t, gen.HashTable(gen.DefaultSeed), gen.HashTable(gen.DefaultSeed))
	require.NotEqual(t, gen.HashTable(gen.DefaultSeed)[0].Lanes, gen.HashTable(42)[0].Lanes)
}

// SPDX-License-Identifier: MIT
package linalg

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// allHashKeys lists every generated table by type name.
func allHashKeys() map[string]hashKeys {
	return map[string]hashKeys{
		"Bool2": hashBool2,
		"Bool3": hashBool3,
		"Bool4": hashBool4,
		"Bool2x2": hashBool2x2,
		"Bool2x3": hashBool2x3,
		"Bool2x4": hashBool2x4,
		"Bool3x2": hashBool3x2,
		"Bool3x3": hashBool3x3,
		"Bool3x4": hashBool3x4,
		"Bool4x2": hashBool4x2,
		"Bool4x3": hashBool4x3,
		"Bool4x4": hashBool4x4,
		"Int2": hashInt2,
		"Int3": hashInt3,
		"Int4": hashInt4,
		"Int2x2": hashInt2x2,
		"Int2x3": hashInt2x3,
		"Int2x4": hashInt2x4,
		"Int3x2": hashInt3x2,
		"Int3x3": hashInt3x3,
		"Int3x4": hashInt3x4,
		"Int4x2": hashInt4x2,
		"Int4x3": hashInt4x3,
		"Int4x4": hashInt4x4,
		"UInt2": hashUInt2,
		"UInt3": hashUInt3,
		"UInt4": hashUInt4,
		"UInt2x2": hashUInt2x2,
		"UInt2x3": hashUInt2x3,
		"UInt2x4": hashUInt2x4,
		"UInt3x2": hashUInt3x2,
		"UInt3x3": hashUInt3x3,
		"UInt3x4": hashUInt3x4,
		"UInt4x2": hashUInt4x2,
		"UInt4x3": hashUInt4x3,
		"UInt4x4": hashUInt4x4,
		"Float2": hashFloat2,
		"Float3": hashFloat3,
		"Float4": hashFloat4,
		"Float2x2": hashFloat2x2,
		"Float2x3": hashFloat2x3,
		"Float2x4": hashFloat2x4,
		"Float3x2": hashFloat3x2,
		"Float3x3": hashFloat3x3,
		"Float3x4": hashFloat3x4,
		"Float4x2": hashFloat4x2,
		"Float4x3": hashFloat4x3,
		"Float4x4": hashFloat4x4,
	}
}

func TestHashKeys_Shape(t *testing.T) {
	t.Parallel()

	keys := allHashKeys()
	require.Len(t, keys, 48)
	require.Len(t, hashFloat3x4.lanes, 12)
	require.Len(t, hashFloat3x4.wideLanes, 12)
	require.Len(t, hashFloat3x4.wideFinal, 3)
	require.Len(t, hashInt4.lanes, 4)
	require.Len(t, hashInt4.wideFinal, 1)
	for name, k := range keys {
		require.Len(t, k.wideLanes, len(k.lanes), name)
	}
}

func TestHashKeys_OddUniquePrimes(t *testing.T) {
	t.Parallel()

	seen := make(map[uint32]string)
	check := func(name string, k uint32) {
		require.Equal(t, uint32(1), k&1, "%s: %#x is even", name, k)
		require.GreaterOrEqual(t, k, uint32(0x10000000), name)
		require.True(t, big.NewInt(int64(k)).ProbablyPrime(0), "%s: %#x is not prime", name, k)
		prev, dup := seen[k]
		require.False(t, dup, "%s: %#x already used by %s", name, k, prev)
		seen[k] = name
	}
	for name, k := range allHashKeys() {
		for _, c := range k.lanes {
			check(name, c)
		}
		check(name, k.final)
		for _, c := range k.wideLanes {
			check(name, c)
		}
		for _, c := range k.wideFinal {
			check(name, c)
		}
	}
}

func TestHash_ZeroIsFinalConstant(t *testing.T) {
	t.Parallel()

	require.Equal(t, hashUInt4x2.final, ZeroUInt4x2().Hash())
	require.Equal(t, hashBool3.final, Bool3{}.Hash())
	require.Equal(t, hashFloat2x2.final, ZeroFloat2x2().Hash())

	wide := ZeroUInt4x2().HashWide()
	for r := 0; r < 4; r++ {
		require.Equal(t, hashUInt4x2.wideFinal[r], wide[r])
	}
	vw := Int3{}.HashWide()
	require.Equal(t, UInt3{hashInt3.wideFinal[0], hashInt3.wideFinal[0], hashInt3.wideFinal[0]}, vw)
}

func TestHash_Formula(t *testing.T) {
	t.Parallel()

	v := Int2{3, -1}
	want := 3*hashInt2.lanes[0] + 0xFFFFFFFF*hashInt2.lanes[1] + hashInt2.final
	require.Equal(t, want, v.Hash())
	require.Equal(t, int32(want), v.HashCode())

	m := NewUInt2x2(1, 2, 3, 4) // columns (1, 3) and (2, 4)
	k := hashUInt2x2
	wide := m.HashWide()
	require.Equal(t, k.wideFinal[0]+1*k.wideLanes[0]+2*k.wideLanes[2], wide[0])
	require.Equal(t, k.wideFinal[1]+3*k.wideLanes[1]+4*k.wideLanes[3], wide[1])
	require.Equal(t, 1*k.lanes[0]+3*k.lanes[1]+2*k.lanes[2]+4*k.lanes[3]+k.final, m.Hash())

	b := Bool2{false, true}
	require.Equal(t, hashBool2.lanes[1]+hashBool2.final, b.Hash())

	x := Float2{0x3F800000, 0}
	require.Equal(t, 0x3F800000*hashFloat2.lanes[0]+hashFloat2.final, x.Hash())
}

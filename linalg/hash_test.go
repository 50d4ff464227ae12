// SPDX-License-Identifier: MIT
package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/detmath/linalg"
	"github.com/katalvlaran/detmath/sfloat"
)

func TestHash_Pure(t *testing.T) {
	t.Parallel()

	r := newRand(101)
	for n := 0; n < 100; n++ {
		m := linalg.Float4x4FromColumns(rf4(r), rf4(r), rf4(r), rf4(r))
		cp := m
		require.Equal(t, m.Hash(), cp.Hash())
		require.Equal(t, m.HashWide(), cp.HashWide())
		require.Equal(t, int32(m.Hash()), m.HashCode())
	}
}

var hashSink uint32

// Not parallel: AllocsPerRun counts every allocation in the process.
func TestHash_NoAllocs(t *testing.T) {
	r := newRand(103)
	v := rf4(r)
	m := linalg.Float4x4FromColumns(rf4(r), rf4(r), rf4(r), rf4(r))
	b := linalg.Bool3x2FromColumns(rb3(r), rb3(r))

	cases := []struct {
		name string
		fn   func()
	}{
		{"Float4.Hash", func() { hashSink += v.Hash() }},
		{"Float4.HashWide", func() { hashSink += v.HashWide()[0] }},
		{"Float4x4.Hash", func() { hashSink += m.Hash() }},
		{"Float4x4.HashWide", func() { hashSink += m.HashWide()[3] }},
		{"Bool3x2.Hash", func() { hashSink += b.Hash() }},
	}
	for _, tc := range cases {
		require.Zero(t, testing.AllocsPerRun(100, tc.fn), tc.name)
	}
}

func TestHash_SingleComponentSensitivity(t *testing.T) {
	t.Parallel()

	r := newRand(202)
	t.Run("Float4x4", func(t *testing.T) {
		m := linalg.Float4x4FromColumns(rf4(r), rf4(r), rf4(r), rf4(r))
		h, w := m.Hash(), m.HashWide()
		for c := 0; c < 4; c++ {
			for row := 0; row < 4; row++ {
				n := m
				n[c][row] = sfloat.FromBits(n[c][row].Bits() ^ (1 << (r.Bounded(32))))
				require.NotEqual(t, h, n.Hash(), "[%d][%d]", c, row)
				require.NotEqual(t, w[row], n.HashWide()[row], "[%d][%d]", c, row)
			}
		}
	})
	t.Run("Int3", func(t *testing.T) {
		v := ri3(r)
		for i := 0; i < 3; i++ {
			w := v
			w[i]++
			require.NotEqual(t, v.Hash(), w.Hash())
			require.NotEqual(t, v.HashWide(), w.HashWide())
		}
	})
	t.Run("Bool2x3", func(t *testing.T) {
		m := linalg.Bool2x3FromColumns(rb2(r), rb2(r), rb2(r))
		for c := 0; c < 3; c++ {
			for row := 0; row < 2; row++ {
				n := m
				n[c][row] = !n[c][row]
				require.NotEqual(t, m.Hash(), n.Hash())
			}
		}
	})
	t.Run("UInt4", func(t *testing.T) {
		v := ru4(r)
		for i := 0; i < 4; i++ {
			w := v
			w[i] ^= 0x80000000
			require.NotEqual(t, v.Hash(), w.Hash())
		}
	})
}

func TestHash_DistinguishesSignedZero(t *testing.T) {
	t.Parallel()

	a := linalg.Float2{sfloat.Zero, sfloat.One}
	b := linalg.Float2{sfloat.NegZero, sfloat.One}
	require.True(t, a.Equal(b))
	require.NotEqual(t, a.Hash(), b.Hash(), "hash follows bits, not IEEE equality")
}

func TestHash_TypesDiffer(t *testing.T) {
	t.Parallel()

	// Same bits, different types: different constant tables.
	require.NotEqual(t, linalg.UInt2{1, 2}.Hash(), linalg.Int2{1, 2}.Hash())
	require.NotEqual(t, linalg.ZeroFloat2x3().Hash(), linalg.ZeroFloat3x2().Hash())
}

// TestHash_Golden pins a handful of digests. These values are part of the
// cross-platform contract: a change here breaks every recorded replay.
func TestHash_Golden(t *testing.T) {
	t.Parallel()

	require.Equal(t, uint32(0x8E047DAF), linalg.IdentityFloat4x4().Hash())
	require.Equal(t, uint32(0x8AA13739), linalg.Int3{1, -2, 3}.Hash())
	require.Equal(t, linalg.UInt2{0x21F5B8F4, 0x7D50304A}, linalg.IdentityBool2x2().HashWide())
}

// SPDX-License-Identifier: MIT

package gen

import (
	"fmt"
	"math/big"
	"strings"
)

// DefaultSeed seeds the hash constant stream ("detmath" in ASCII).
const DefaultSeed uint64 = 0x006465746D617468

// minConstant keeps every multiplier wide enough to move the high bits.
const minConstant = 0x10000000

// HashKeys are the constants of one type, laid out as in linalg's hashKeys.
type HashKeys struct {
	Type      Type
	Lanes     []uint32 // one multiplier per element, column-major
	Final     uint32   // added after the lane sum
	WideLanes []uint32 // one multiplier per element for HashWide
	WideFinal []uint32 // one per row (a single one for vectors)
}

// splitMix64 is the SplitMix64 generator (Steele, Lea, Flood 2014).
type splitMix64 struct{ state uint64 }

func (s *splitMix64) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ z>>30) * 0xBF58476D1CE4E5B9
	z = (z ^ z>>27) * 0x94D049BB133111EB

	return z ^ z>>31
}

// primeStream draws distinct odd 32-bit primes of at least minConstant.
type primeStream struct {
	rng  splitMix64
	seen map[uint32]struct{}
}

func newPrimeStream(seed uint64) *primeStream {
	return &primeStream{rng: splitMix64{state: seed}, seen: make(map[uint32]struct{})}
}

func (p *primeStream) take() uint32 {
	for {
		c := uint32(p.rng.next() >> 32)
		if c&1 == 0 || c < minConstant {
			continue
		}
		if _, dup := p.seen[c]; dup {
			continue
		}
		// ProbablyPrime is exact below 2^64.
		if !new(big.Int).SetUint64(uint64(c)).ProbablyPrime(0) {
			continue
		}
		p.seen[c] = struct{}{}
		return c
	}
}

func (p *primeStream) takes(n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = p.take()
	}

	return out
}

// HashTable derives the constants of every type in Types order. The same
// seed always yields the same table.
func HashTable(seed uint64) []HashKeys {
	p := newPrimeStream(seed)
	types := Types()
	out := make([]HashKeys, 0, len(types))
	for _, t := range types {
		k := HashKeys{Type: t}
		k.Lanes = p.takes(t.Size())
		k.Final = p.take()
		k.WideLanes = p.takes(t.Size())
		if t.IsMatrix() {
			k.WideFinal = p.takes(t.Rows)
		} else {
			k.WideFinal = p.takes(1)
		}
		out = append(out, k)
	}

	return out
}

func (g *Generator) hashFile() []byte {
	f := g.newFile("linalg")
	for _, k := range HashTable(g.opts.seed) {
		f.pf("var hash%s = hashKeys{[]uint32{%s}, 0x%08X, []uint32{%s}, []uint32{%s}}",
			k.Type.Name(), hexList(k.Lanes), k.Final, hexList(k.WideLanes), hexList(k.WideFinal))
		f.p("")
	}

	return f.bytes()
}

func hexList(xs []uint32) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprintf("0x%08X", x)
	}

	return strings.Join(parts, ", ")
}

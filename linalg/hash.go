// SPDX-License-Identifier: MIT

package linalg

// hashKeys holds the multiplier table of one vector or matrix type.
//
//	lanes      one odd prime per component (column-major order), used by Hash
//	final      added to the Hash accumulator
//	wideLanes  one odd prime per component, used by HashWide
//	wideFinal  one prime per HashWide lane (vectors carry a single value
//	           shared by every lane)
//
// All arithmetic wraps modulo 2^32.
type hashKeys struct {
	lanes     []uint32
	final     uint32
	wideLanes []uint32
	wideFinal []uint32
}

// hash returns Σ bits[i]*lanes[i] + final.
func (k hashKeys) hash(bits []uint32) uint32 {
	var acc uint32
	for i, b := range bits {
		acc += b * k.lanes[i]
	}

	return acc + k.final
}

// wide writes one digest per row lane into out. Component i belongs to lane
// i % len(out), which for column-major matrices is its row.
func (k hashKeys) wide(bits []uint32, out []uint32) {
	n := len(out)
	for r := range out {
		out[r] = k.wideFinal[r%len(k.wideFinal)]
	}
	for i, b := range bits {
		out[i%n] += b * k.wideLanes[i]
	}
}

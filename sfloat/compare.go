// SPDX-License-Identifier: MIT

package sfloat

// Eq reports a == b under IEEE rules: NaN equals nothing and -0 == +0.
func (a Float) Eq(b Float) bool { return a.Float32() == b.Float32() }

// Ne reports a != b under IEEE rules (true whenever either side is NaN).
func (a Float) Ne(b Float) bool { return a.Float32() != b.Float32() }

// Less reports a < b.
func (a Float) Less(b Float) bool { return a.Float32() < b.Float32() }

// LessEq reports a <= b.
func (a Float) LessEq(b Float) bool { return a.Float32() <= b.Float32() }

// Greater reports a > b.
func (a Float) Greater(b Float) bool { return a.Float32() > b.Float32() }

// GreaterEq reports a >= b.
func (a Float) GreaterEq(b Float) bool { return a.Float32() >= b.Float32() }

// Compare returns -1, 0 or +1 according to a total order on Float:
//
//	-Inf < … < -0 == +0 < … < +Inf < NaN
//
// All NaN patterns compare equal to each other. The result is suitable for
// slices.SortFunc and friends.
func Compare(a, b Float) int {
	an, bn := a.IsNaN(), b.IsNaN()
	switch {
	case an && bn:
		return 0
	case an:
		return 1
	case bn:
		return -1
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	}

	return 0
}

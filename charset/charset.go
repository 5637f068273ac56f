// Package charset implements the 256-bit symbol algebra the CORE
// automata operate on: a mutable bitset over the 8-bit alphabet and
// an immutable Symbol predicate built on top of it.
package charset

import "math/bits"

// CharSet is a mutable 256-bit bitset over the 8-bit alphabet, stored
// as four 64-bit words. Because it is a plain array of comparable
// values, two CharSets compare equal with == iff they contain exactly
// the same members. That is what lets the rest of the package use a
// CharSet directly as a map key for content-addressed identity
// instead of hand-rolling a hash function.
type CharSet [4]uint64

// wordOf and bitOf split a byte into its word index and bit offset.
// c is already a byte (0..255), so there is no sign-extension
// concern here; callers that start from a signed char type must mask
// to 8 bits before converting to byte.
func wordOf(c byte) int  { return int(c >> 6) }
func bitOf(c byte) uint { return uint(c & 63) }

// Insert adds c to the set.
func (s *CharSet) Insert(c byte) { s[wordOf(c)] |= 1 << bitOf(c) }

// Remove deletes c from the set.
func (s *CharSet) Remove(c byte) { s[wordOf(c)] &^= 1 << bitOf(c) }

// Test reports whether c is a member of the set.
func (s CharSet) Test(c byte) bool { return s[wordOf(c)]&(1<<bitOf(c)) != 0 }

// Clear empties the set in place.
func (s *CharSet) Clear() { *s = CharSet{} }

// Empty reports whether the set has no members.
func (s CharSet) Empty() bool { return s == CharSet{} }

// Equal reports whether two sets contain exactly the same members.
func (s CharSet) Equal(o CharSet) bool { return s == o }

// Union returns the set of characters in s or o.
func (s CharSet) Union(o CharSet) CharSet {
	return CharSet{s[0] | o[0], s[1] | o[1], s[2] | o[2], s[3] | o[3]}
}

// Intersect returns the set of characters in both s and o.
func (s CharSet) Intersect(o CharSet) CharSet {
	return CharSet{s[0] & o[0], s[1] & o[1], s[2] & o[2], s[3] & o[3]}
}

// SymDiff returns the set of characters in exactly one of s or o.
func (s CharSet) SymDiff(o CharSet) CharSet {
	return CharSet{s[0] ^ o[0], s[1] ^ o[1], s[2] ^ o[2], s[3] ^ o[3]}
}

// Complement returns the set of characters not in s.
func (s CharSet) Complement() CharSet {
	return CharSet{^s[0], ^s[1], ^s[2], ^s[3]}
}

// Minus returns the set of characters in s but not in o.
func (s CharSet) Minus(o CharSet) CharSet {
	return CharSet{s[0] &^ o[0], s[1] &^ o[1], s[2] &^ o[2], s[3] &^ o[3]}
}

// Count returns the number of members.
func (s CharSet) Count() int {
	return bits.OnesCount64(s[0]) + bits.OnesCount64(s[1]) +
		bits.OnesCount64(s[2]) + bits.OnesCount64(s[3])
}

// ForEach calls f once for every member, in ascending order.
func (s CharSet) ForEach(f func(byte)) {
	for w := 0; w < 4; w++ {
		word := s[w]
		for word != 0 {
			bit := bits.TrailingZeros64(word)
			f(byte(w*64 + bit))
			word &^= 1 << uint(bit)
		}
	}
}

// Members returns the set's members as a sorted slice.
func (s CharSet) Members() []byte {
	out := make([]byte, 0, s.Count())
	s.ForEach(func(c byte) { out = append(out, c) })
	return out
}

// Full returns the set containing every byte 0..255.
func Full() CharSet {
	return CharSet{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}
}

// FromRange returns the set of characters c with lo <= c <= hi.
// The caller must ensure lo <= hi; FromRange itself performs no
// validation, that is Range's job (charset.Symbol is the validating
// front door).
func FromRange(lo, hi byte) CharSet {
	var s CharSet
	for c := int(lo); c <= int(hi); c++ {
		s.Insert(byte(c))
	}
	return s
}

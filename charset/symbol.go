package charset

import "fmt"

// Kind identifies which constructor produced a Symbol. It is kept
// purely for debug printing: two Symbols of different Kind can still
// be Equal if they denote the same 256-bit membership set.
type Kind uint8

const (
	KindChar Kind = iota
	KindRange
	KindSet
)

func (k Kind) String() string {
	switch k {
	case KindChar:
		return "Char"
	case KindRange:
		return "Range"
	case KindSet:
		return "Set"
	default:
		return "Unknown"
	}
}

// Symbol is an immutable predicate over the 8-bit alphabet. Every
// Symbol, regardless of which constructor built it, eagerly
// materializes its acceptance set into bits at construction time
// (charset.FromRange / a manual loop), so Equal and the map-keyed
// symbol sets used throughout the CORE are always comparing by
// semantic membership, never by constructor identity. This is the
// normalize-to-set-form discipline that makes structural equality
// imply semantic equality, applied uniformly.
type Symbol struct {
	kind   Kind
	lo, hi byte // informational only for KindChar/KindRange; ignored by Equal
	bits   CharSet
}

// Char returns the Symbol accepting exactly c.
func Char(c byte) Symbol {
	var bs CharSet
	bs.Insert(c)
	return Symbol{kind: KindChar, lo: c, hi: c, bits: bs}
}

// Range returns the Symbol accepting c with lo <= c <= hi.
// It panics if lo > hi: an inverted range is a programmer error to be
// rejected at construction, not recovered from.
func Range(lo, hi byte) Symbol {
	if lo > hi {
		panic(fmt.Sprintf("charset: invalid range [%d, %d]: lo > hi", lo, hi))
	}
	return Symbol{kind: KindRange, lo: lo, hi: hi, bits: FromRange(lo, hi)}
}

// Set returns the Symbol accepting exactly the members of bs. An
// empty bs is legal and yields a Symbol that accepts nothing, not an
// error.
func Set(bs CharSet) Symbol {
	return Symbol{kind: KindSet, bits: bs}
}

// Predicate materializes f into a Symbol by testing every byte
// 0..255, the bridge from predicate form to set form.
func Predicate(f func(byte) bool) Symbol {
	var bs CharSet
	for c := 0; c <= 255; c++ {
		if f(byte(c)) {
			bs.Insert(byte(c))
		}
	}
	return Set(bs)
}

// Test reports whether the symbol accepts c.
func (s Symbol) Test(c byte) bool { return s.bits.Test(c) }

// Bits returns the symbol's materialized membership set.
func (s Symbol) Bits() CharSet { return s.bits }

// Kind returns which constructor built the symbol, for debug
// printing only; it has no bearing on Equal.
func (s Symbol) Kind() Kind { return s.kind }

// Equal reports whether two symbols denote the same 256-bit
// membership set.
func (s Symbol) Equal(o Symbol) bool { return s.bits.Equal(o.bits) }

// Empty reports whether the symbol accepts no character.
func (s Symbol) Empty() bool { return s.bits.Empty() }

func (s Symbol) String() string {
	switch s.kind {
	case KindChar:
		return fmt.Sprintf("%q", s.lo)
	case KindRange:
		return fmt.Sprintf("[%q-%q]", s.lo, s.hi)
	default:
		return fmt.Sprintf("Set(%d chars)", s.bits.Count())
	}
}
